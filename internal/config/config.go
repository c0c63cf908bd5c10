// Package config loads the tool settings from an INI file.
//
// The settings file is the only external configuration contract:
//
//	[Paths]
//	base_path_internal = C:\work\internal
//	base_path_external = C:\work\external
//
//	[Documents]
//	030 = 調査検討書, 調査報告書
//	040 =
//	...one key per phase code, comma-separated name prefixes...
//
//	[ExtraFiles]
//	include_files = 議事録.xlsx
//
//	[Project]          ; optional defaults for the interactive prompts
//	project_name = 案件A
//	quarter = 2025_4Q
//	item_name =
//
// Missing file, section, or required key is fatal: no partial
// configuration is ever accepted. The loaded Config is immutable and
// shared by reference with every scan and copy call.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/delivtools/delivsync/pkg/delivsync"
)

// Environment variables that override [Paths] when set. They are
// typically supplied through an optional .env file loaded at the
// command boundary.
const (
	EnvBaseInternal = "DELIVSYNC_BASE_INTERNAL"
	EnvBaseExternal = "DELIVSYNC_BASE_EXTERNAL"
)

// Config holds the parsed settings. Prefix order within a phase follows
// the file and determines scan order.
type Config struct {
	BasePathInternal string
	BasePathExternal string

	// DocumentPrefixes has an entry for every phase, possibly empty.
	DocumentPrefixes map[delivsync.Phase][]string

	// ExtraFiles are exact file names included in outgoing transfers.
	ExtraFiles []string

	// Optional interactive-prompt defaults. Blank means unset; each
	// field falls back to a prompt independently.
	ProjectName string
	Quarter     string
	ItemName    string
}

// SourceRoot returns the root tree files are read from for a direction.
func (c *Config) SourceRoot(dir delivsync.Direction) string {
	if dir == delivsync.DirectionOutgoing {
		return c.BasePathInternal
	}
	return c.BasePathExternal
}

// DestRoot returns the root tree files are written to for a direction.
func (c *Config) DestRoot(dir delivsync.Direction) string {
	if dir == delivsync.DirectionOutgoing {
		return c.BasePathExternal
	}
	return c.BasePathInternal
}

// Load reads and validates the settings file at path.
// Returns delivsync.ErrConfigNotFound when the file does not exist and
// ErrMissingSection/ErrMissingOption for structural gaps; all are fatal
// to the run.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, delivsync.ErrConfigNotFound)
		}
		return nil, err
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg := &Config{
		DocumentPrefixes: make(map[delivsync.Phase][]string, len(delivsync.AllPhases)),
	}

	paths, err := requireSection(file, "Paths")
	if err != nil {
		return nil, err
	}
	if cfg.BasePathInternal, err = requireKey(paths, "base_path_internal"); err != nil {
		return nil, err
	}
	if cfg.BasePathExternal, err = requireKey(paths, "base_path_external"); err != nil {
		return nil, err
	}

	documents, err := requireSection(file, "Documents")
	if err != nil {
		return nil, err
	}
	for _, phase := range delivsync.AllPhases {
		value, err := requireKey(documents, phase.Code())
		if err != nil {
			return nil, err
		}
		cfg.DocumentPrefixes[phase] = splitList(value)
	}

	extra, err := requireSection(file, "ExtraFiles")
	if err != nil {
		return nil, err
	}
	includeFiles, err := requireKey(extra, "include_files")
	if err != nil {
		return nil, err
	}
	cfg.ExtraFiles = splitList(includeFiles)

	// Optional prompt defaults; blank-after-trim stays unset.
	if project, err := file.GetSection("Project"); err == nil {
		cfg.ProjectName = optionalKey(project, "project_name")
		cfg.Quarter = optionalKey(project, "quarter")
		cfg.ItemName = optionalKey(project, "item_name")
	}

	if v := strings.TrimSpace(os.Getenv(EnvBaseInternal)); v != "" {
		cfg.BasePathInternal = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvBaseExternal)); v != "" {
		cfg.BasePathExternal = v
	}

	return cfg, nil
}

func requireSection(file *ini.File, name string) (*ini.Section, error) {
	section, err := file.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("section [%s]: %w", name, delivsync.ErrMissingSection)
	}
	return section, nil
}

func requireKey(section *ini.Section, name string) (string, error) {
	if !section.HasKey(name) {
		return "", fmt.Errorf("option %s in section [%s]: %w", name, section.Name(), delivsync.ErrMissingOption)
	}
	return section.Key(name).String(), nil
}

func optionalKey(section *ini.Section, name string) string {
	if !section.HasKey(name) {
		return ""
	}
	return strings.TrimSpace(section.Key(name).String())
}

// splitList splits a comma-separated value, trimming whitespace and
// dropping empty entries. An all-blank value yields an empty list.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
