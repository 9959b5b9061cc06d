package domain

import (
	"path/filepath"
	"strings"
)

// Config represents the tasksplit configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string       `toml:"-"`
	Paths    PathsConfig    `toml:"paths" comment:"Document locations, relative to the project root unless absolute"`
	Pending  PreambleConfig `toml:"pending" comment:"Header of the pending document"`
	Archive  PreambleConfig `toml:"archive" comment:"Header of the archive document"`
	Log      LogConfig      `toml:"log" comment:"Logging to stderr"`
}

// PathsConfig holds document locations from the [paths] section.
// Relative paths are resolved against the project root.
type PathsConfig struct {
	Source  string `toml:"source,omitempty" comment:"Task document to read"`
	Pending string `toml:"pending,omitempty" comment:"Where sections with open tasks are written (may equal source)"`
	Archive string `toml:"archive,omitempty" comment:"Where sections without open tasks are written"`
}

// PreambleConfig holds the fixed header of one output document.
type PreambleConfig struct {
	Title string `toml:"title,omitempty" comment:"First line of the document"`
	Note  string `toml:"note,omitempty" comment:"Cross-reference note; {sibling} expands to the other output's path"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty" comment:"Log level: debug, info, warn, error"`
}

// SiblingPlaceholder is replaced in preamble notes with the other output's path.
const SiblingPlaceholder = "{sibling}"

// Default configuration values.
const (
	DefaultSourcePath   = "docs/900_tasks.md"
	DefaultPendingPath  = "docs/900_tasks.md"
	DefaultArchivePath  = "docs/901_tasks_archived.md"
	DefaultPendingTitle = "# Task Breakdown & Progress"
	DefaultPendingNote  = "> Completed tasks are archived in `{sibling}`"
	DefaultArchiveTitle = "# Completed Task Archive"
	DefaultArchiveNote  = "> History of completed tasks moved out of `{sibling}`."
	DefaultLogLevel     = "warn"
)

// Config file locations.
const (
	AppDirName         = "tasksplit"       // Directory name under the global config home
	ConfigFileName     = "config.toml"     // Global config file name
	RootConfigFileName = ".tasksplit.toml" // Config file name in the project root
)

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Source:  DefaultSourcePath,
			Pending: DefaultPendingPath,
			Archive: DefaultArchivePath,
		},
		Pending: PreambleConfig{
			Title: DefaultPendingTitle,
			Note:  DefaultPendingNote,
		},
		Archive: PreambleConfig{
			Title: DefaultArchiveTitle,
			Note:  DefaultArchiveNote,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Validate checks that the configured paths are usable.
// Output paths are compared after resolving them against root, so a relative
// and an absolute spelling of the same file are rejected.
func (c *Config) Validate(root string) error {
	if strings.TrimSpace(c.Paths.Source) == "" {
		return ErrEmptySourcePath
	}
	if strings.TrimSpace(c.Paths.Pending) == "" || strings.TrimSpace(c.Paths.Archive) == "" {
		return ErrEmptyOutputPath
	}
	if ResolvePath(root, c.Paths.Pending) == ResolvePath(root, c.Paths.Archive) {
		return ErrSameOutputPath
	}
	return nil
}

// SplitOptions builds the preambles for both outputs.
func (c *Config) SplitOptions() SplitOptions {
	return SplitOptions{
		PendingPreamble: c.Pending.Lines(c.Paths.Archive),
		ArchivePreamble: c.Archive.Lines(c.Paths.Pending),
	}
}

// Lines renders the preamble: title, blank, note, blank.
// The note and its blank line are omitted when Note is empty.
func (p PreambleConfig) Lines(sibling string) []string {
	lines := []string{p.Title, ""}
	if p.Note != "" {
		lines = append(lines, strings.ReplaceAll(p.Note, SiblingPlaceholder, filepath.ToSlash(sibling)), "")
	}
	return lines
}

// ResolvePath returns path joined to root unless it is already absolute.
func ResolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

// RootConfigPath returns the config path in the project root.
func RootConfigPath(root string) string {
	return filepath.Join(root, RootConfigFileName)
}

// GlobalConfigDir returns the global tasksplit directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}
