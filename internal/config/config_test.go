package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delivtools/delivsync/pkg/delivsync"
)

const fullConfig = `[Paths]
base_path_internal = /work/internal
base_path_external = /work/external

[Documents]
030 = 調査検討書, 調査報告書
040 = 設計書
050 =
060 = UD
070 =
080 = SD
090 =

[ExtraFiles]
include_files = 議事録.xlsx, 課題管理表.xlsx

[Project]
project_name = 案件A
quarter = 2025_4Q
item_name =
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_AllFields(t *testing.T) {
	cfg, err := Load(writeConfig(t, fullConfig))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/work/internal", cfg.BasePathInternal)
	assert.Equal(t, "/work/external", cfg.BasePathExternal)

	assert.Equal(t, []string{"調査検討書", "調査報告書"}, cfg.DocumentPrefixes[delivsync.Phase030])
	assert.Equal(t, []string{"設計書"}, cfg.DocumentPrefixes[delivsync.Phase040])
	assert.Empty(t, cfg.DocumentPrefixes[delivsync.Phase050])
	assert.Equal(t, []string{"SD"}, cfg.DocumentPrefixes[delivsync.Phase080])

	assert.Equal(t, []string{"議事録.xlsx", "課題管理表.xlsx"}, cfg.ExtraFiles)

	assert.Equal(t, "案件A", cfg.ProjectName)
	assert.Equal(t, "2025_4Q", cfg.Quarter)
	assert.Empty(t, cfg.ItemName, "blank item_name stays unset")
}

func TestLoad_PrefixOrderPreserved(t *testing.T) {
	cfg, err := Load(writeConfig(t, fullConfig))
	require.NoError(t, err)

	// Order within a phase follows the file; it drives scan order.
	assert.Equal(t, "調査検討書", cfg.DocumentPrefixes[delivsync.Phase030][0])
	assert.Equal(t, "調査報告書", cfg.DocumentPrefixes[delivsync.Phase030][1])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	assert.ErrorIs(t, err, delivsync.ErrConfigNotFound)
}

func TestLoad_MissingPathsSection(t *testing.T) {
	content := `[Documents]
030 =
040 =
050 =
060 =
070 =
080 =
090 =

[ExtraFiles]
include_files =
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorIs(t, err, delivsync.ErrMissingSection)
}

func TestLoad_MissingPhaseKey(t *testing.T) {
	content := `[Paths]
base_path_internal = /a
base_path_external = /b

[Documents]
030 = 調査検討書

[ExtraFiles]
include_files =
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorIs(t, err, delivsync.ErrMissingOption)
	assert.Contains(t, err.Error(), "040")
}

func TestLoad_MissingIncludeFiles(t *testing.T) {
	content := `[Paths]
base_path_internal = /a
base_path_external = /b

[Documents]
030 =
040 =
050 =
060 =
070 =
080 =
090 =

[ExtraFiles]
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorIs(t, err, delivsync.ErrMissingOption)
}

func TestLoad_ProjectSectionOptional(t *testing.T) {
	content := `[Paths]
base_path_internal = /a
base_path_external = /b

[Documents]
030 =
040 =
050 =
060 =
070 =
080 =
090 =

[ExtraFiles]
include_files =
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)
	assert.Empty(t, cfg.ProjectName)
	assert.Empty(t, cfg.Quarter)
	assert.Empty(t, cfg.ItemName)
	assert.Empty(t, cfg.ExtraFiles)
}

func TestLoad_EnvOverridesPaths(t *testing.T) {
	t.Setenv(EnvBaseInternal, "/override/internal")
	t.Setenv(EnvBaseExternal, "/override/external")

	cfg, err := Load(writeConfig(t, fullConfig))
	require.NoError(t, err)
	assert.Equal(t, "/override/internal", cfg.BasePathInternal)
	assert.Equal(t, "/override/external", cfg.BasePathExternal)
}

func TestSourceAndDestRoots(t *testing.T) {
	cfg := &Config{BasePathInternal: "/in", BasePathExternal: "/ex"}

	assert.Equal(t, "/in", cfg.SourceRoot(delivsync.DirectionOutgoing))
	assert.Equal(t, "/ex", cfg.DestRoot(delivsync.DirectionOutgoing))
	assert.Equal(t, "/ex", cfg.SourceRoot(delivsync.DirectionIncoming))
	assert.Equal(t, "/in", cfg.DestRoot(delivsync.DirectionIncoming))
}
