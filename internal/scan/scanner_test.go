package scan

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delivtools/delivsync/internal/config"
	"github.com/delivtools/delivsync/internal/logging"
	"github.com/delivtools/delivsync/pkg/delivsync"
)

// fixedNow is the injected wall clock for every recency test.
var fixedNow = time.Date(2026, time.August, 25, 14, 30, 0, 0, time.Local)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		BasePathInternal: filepath.Join(t.TempDir(), "internal"),
		BasePathExternal: filepath.Join(t.TempDir(), "external"),
		DocumentPrefixes: map[delivsync.Phase][]string{
			delivsync.Phase030: {"調査検討書", "調査報告書"},
		},
		ExtraFiles: []string{"議事録.xlsx"},
	}
}

func testService(t *testing.T, cfg *config.Config) *Service {
	t.Helper()
	return NewServiceWithClock(cfg, logging.NewNullLogger(), func() time.Time { return fixedNow })
}

func testTarget() delivsync.Target {
	return delivsync.Target{
		Project: "案件A",
		Quarter: "2025_4Q",
		Phase:   delivsync.Phase030,
	}
}

// writeFile creates a file (and its ancestors) with the given mtime.
func writeFile(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func paths(files []delivsync.FileDescriptor) []string {
	var out []string
	for _, f := range files {
		out = append(out, f.Path)
	}
	return out
}

func TestScanDocuments_PrefixAndRecency(t *testing.T) {
	cfg := testConfig(t)
	svc := testService(t, cfg)
	phaseDir := filepath.Join(cfg.BasePathInternal, "案件A", "2025_4Q", "030.調査")

	today := fixedNow
	yesterday := fixedNow.AddDate(0, 0, -1)

	writeFile(t, filepath.Join(phaseDir, "調査検討書_案件A.xlsx"), today)
	writeFile(t, filepath.Join(phaseDir, "調査検討書_old.xlsx"), yesterday)
	writeFile(t, filepath.Join(phaseDir, "調査検討書メモ.xlsx"), today)       // no underscore separator
	writeFile(t, filepath.Join(phaseDir, "調査検討書_draft.txt"), today)      // wrong extension
	writeFile(t, filepath.Join(phaseDir, "関係ない資料_x.xlsx"), today)        // unconfigured prefix
	writeFile(t, filepath.Join(phaseDir, "sub", "調査検討書_nested.xlsx"), today) // not immediate child

	found, err := svc.ScanDocuments(testTarget(), delivsync.DirectionOutgoing, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(phaseDir, "調査検討書_案件A.xlsx")}, paths(found))
	assert.Equal(t, delivsync.CategoryDocument, found[0].Category)
	assert.Equal(t, delivsync.Phase030, found[0].Phase)
}

func TestScanDocuments_WindowIncludesOlderFiles(t *testing.T) {
	cfg := testConfig(t)
	svc := testService(t, cfg)
	phaseDir := filepath.Join(cfg.BasePathInternal, "案件A", "2025_4Q", "030.調査")

	writeFile(t, filepath.Join(phaseDir, "調査検討書_old.xlsx"), fixedNow.AddDate(0, 0, -3))

	found, err := svc.ScanDocuments(testTarget(), delivsync.DirectionOutgoing, 3)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	// Same file falls outside a 2-day window.
	found, err = svc.ScanDocuments(testTarget(), delivsync.DirectionOutgoing, 2)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestScanDocuments_PrefixOrderAndOverlap(t *testing.T) {
	cfg := testConfig(t)
	cfg.DocumentPrefixes[delivsync.Phase030] = []string{"調査", "調査_報告"}
	svc := testService(t, cfg)
	phaseDir := filepath.Join(cfg.BasePathInternal, "案件A", "2025_4Q", "030.調査")

	writeFile(t, filepath.Join(phaseDir, "調査_報告_final.xlsx"), fixedNow)

	found, err := svc.ScanDocuments(testTarget(), delivsync.DirectionOutgoing, 0)
	require.NoError(t, err)
	// The file matches both prefixes; duplicates are accepted.
	assert.Len(t, found, 2)
}

func TestScanDocuments_NoPatternsConfigured(t *testing.T) {
	cfg := testConfig(t)
	svc := testService(t, cfg)

	target := testTarget()
	target.Phase = delivsync.Phase040 // no prefixes configured
	found, err := svc.ScanDocuments(target, delivsync.DirectionOutgoing, 0)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestScanDocuments_MissingDirIsEmpty(t *testing.T) {
	cfg := testConfig(t)
	svc := testService(t, cfg)

	found, err := svc.ScanDocuments(testTarget(), delivsync.DirectionOutgoing, 0)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestScanDocuments_IncomingReadsExternal(t *testing.T) {
	cfg := testConfig(t)
	svc := testService(t, cfg)
	phaseDir := filepath.Join(cfg.BasePathExternal, "案件A", "2025_4Q", "030.調査")

	writeFile(t, filepath.Join(phaseDir, "調査検討書_戻り.xlsx"), fixedNow)

	found, err := svc.ScanDocuments(testTarget(), delivsync.DirectionIncoming, 0)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestScanReviewRecords_LoosenedPattern(t *testing.T) {
	cfg := testConfig(t)
	svc := testService(t, cfg)
	reviewDir := filepath.Join(cfg.BasePathInternal, "案件A", "2025_4Q", "030.調査", "成果物", "外部レビュー")

	// Underscore-separated and bare-prefix names both match.
	writeFile(t, filepath.Join(reviewDir, "レビュー記録表(社外)_1回目.xlsx"), fixedNow)
	writeFile(t, filepath.Join(reviewDir, "レビュー記録表(社外)調査.xlsx"), fixedNow)
	writeFile(t, filepath.Join(reviewDir, "レビュー記録表(社内)_1回目.xlsx"), fixedNow)
	writeFile(t, filepath.Join(reviewDir, "レビュー記録表(社外)_1回目.pdf"), fixedNow)

	found, err := svc.ScanReviewRecords(testTarget(), delivsync.DirectionOutgoing, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(reviewDir, "レビュー記録表(社外)_1回目.xlsx"),
		filepath.Join(reviewDir, "レビュー記録表(社外)調査.xlsx"),
	}, paths(found))
	for _, f := range found {
		assert.Equal(t, delivsync.CategoryReviewRecord, f.Category)
	}
}

func TestScanReviewRecords_DateSubfolders(t *testing.T) {
	cfg := testConfig(t)
	svc := testService(t, cfg)
	reviewDir := filepath.Join(cfg.BasePathInternal, "案件A", "2025_4Q", "030.調査", "成果物", "外部レビュー")

	nested := filepath.Join(reviewDir, "20260820", "第2回", "レビュー記録表(社外)_2回目.xlsx")
	writeFile(t, nested, fixedNow)

	found, err := svc.ScanReviewRecords(testTarget(), delivsync.DirectionOutgoing, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{nested}, paths(found))
}

func TestScanReviewRecords_IncomingSearchesArtifacts(t *testing.T) {
	cfg := testConfig(t)
	svc := testService(t, cfg)

	// Incoming reads the external 成果物 tree, not 外部レビュー.
	artifacts := filepath.Join(cfg.BasePathExternal, "案件A", "2025_4Q", "030.調査", "成果物")
	writeFile(t, filepath.Join(artifacts, "レビュー記録表(社外)_1回目.xlsx"), fixedNow)

	found, err := svc.ScanReviewRecords(testTarget(), delivsync.DirectionIncoming, 0)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestScanReviewRecords_MissingRootIsEmpty(t *testing.T) {
	cfg := testConfig(t)
	svc := testService(t, cfg)

	found, err := svc.ScanReviewRecords(testTarget(), delivsync.DirectionOutgoing, 0)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestScanExtraFiles_ExactNameRecursive(t *testing.T) {
	cfg := testConfig(t)
	svc := testService(t, cfg)
	reviewDir := filepath.Join(cfg.BasePathInternal, "案件A", "2025_4Q", "030.調査", "成果物", "外部レビュー")

	nested := filepath.Join(reviewDir, "20260820", "議事録.xlsx")
	writeFile(t, nested, fixedNow)
	writeFile(t, filepath.Join(reviewDir, "議事録メモ.xlsx"), fixedNow)

	found, err := svc.ScanExtraFiles(testTarget(), delivsync.DirectionOutgoing, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{nested}, paths(found))
	assert.Equal(t, delivsync.CategoryExtraFile, found[0].Category)
}

func TestScanExtraFiles_IncomingAlwaysEmpty(t *testing.T) {
	cfg := testConfig(t)
	svc := testService(t, cfg)
	reviewDir := filepath.Join(cfg.BasePathExternal, "案件A", "2025_4Q", "030.調査", "成果物", "外部レビュー")
	writeFile(t, filepath.Join(reviewDir, "議事録.xlsx"), fixedNow)

	found, err := svc.ScanExtraFiles(testTarget(), delivsync.DirectionIncoming, 0)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestScanExtraFiles_EmptyListSkipsFilesystem(t *testing.T) {
	cfg := testConfig(t)
	cfg.ExtraFiles = nil
	svc := testService(t, cfg)

	found, err := svc.ScanExtraFiles(testTarget(), delivsync.DirectionOutgoing, 0)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestScanExtraFiles_GlobName(t *testing.T) {
	cfg := testConfig(t)
	cfg.ExtraFiles = []string{"議事録*.xlsx"}
	svc := testService(t, cfg)
	reviewDir := filepath.Join(cfg.BasePathInternal, "案件A", "2025_4Q", "030.調査", "成果物", "外部レビュー")

	writeFile(t, filepath.Join(reviewDir, "議事録_0820.xlsx"), fixedNow)
	writeFile(t, filepath.Join(reviewDir, "別資料.xlsx"), fixedNow)

	found, err := svc.ScanExtraFiles(testTarget(), delivsync.DirectionOutgoing, 0)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestScan_ItemLevelTarget(t *testing.T) {
	cfg := testConfig(t)
	svc := testService(t, cfg)

	target := testTarget()
	target.Item = "サブシステムX"
	phaseDir := filepath.Join(cfg.BasePathInternal, "案件A", "2025_4Q", "サブシステムX", "030.調査")
	writeFile(t, filepath.Join(phaseDir, "調査検討書_a.xlsx"), fixedNow)

	found, err := svc.ScanDocuments(target, delivsync.DirectionOutgoing, 0)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
