// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/tasksplit/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	root          string // Project root containing .tasksplit.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/tasksplit)
}

// NewLoader creates a new Loader.
func NewLoader(root string) *Loader {
	return &Loader{
		root:          root,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(root, globalConfDir string) *Loader {
	return &Loader{
		root:          root,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// GlobalPath returns the global config file path, or "" if unavailable.
func (l *Loader) GlobalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// RootPath returns the project root config file path.
func (l *Loader) RootPath() string {
	return domain.RootConfigPath(l.root)
}

// Load returns the merged configuration (global + project root).
// Project root config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	root, err := l.LoadRoot()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()

	// Merge: default <- global <- root (later takes precedence)
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if root != nil {
		base = mergeConfigs(base, root)
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	path := l.GlobalPath()
	if path == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(path)
}

// LoadRoot returns only the project root configuration.
func (l *Loader) LoadRoot() (*domain.Config, error) {
	return l.loadFile(l.RootPath())
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := convertRawToDomainConfig(raw)
	for i, w := range cfg.Warnings {
		cfg.Warnings[i] = fmt.Sprintf("%s: %s", path, w)
	}
	return cfg, nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}

		switch section {
		case "paths":
			for k, v := range m {
				s, _ := v.(string)
				switch k {
				case "source":
					res.Paths.Source = s
				case "pending":
					res.Paths.Pending = s
				case "archive":
					res.Paths.Archive = s
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [paths]: %s", k))
				}
			}
		case "pending":
			res.Pending, warnings = parsePreamble(section, m, warnings)
		case "archive":
			res.Archive, warnings = parsePreamble(section, m, warnings)
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parsePreamble parses a [pending] or [archive] section.
func parsePreamble(section string, m map[string]any, warnings []string) (domain.PreambleConfig, []string) {
	var p domain.PreambleConfig
	for k, v := range m {
		s, _ := v.(string)
		switch k {
		case "title":
			p.Title = s
		case "note":
			p.Note = s
		default:
			warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
		}
	}
	return p, warnings
}

// mergeConfigs returns base with every non-empty value of override applied.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	if len(override.Warnings) > 0 {
		result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)
	}

	mergeString(&result.Paths.Source, override.Paths.Source)
	mergeString(&result.Paths.Pending, override.Paths.Pending)
	mergeString(&result.Paths.Archive, override.Paths.Archive)
	mergeString(&result.Pending.Title, override.Pending.Title)
	mergeString(&result.Pending.Note, override.Pending.Note)
	mergeString(&result.Archive.Title, override.Archive.Title)
	mergeString(&result.Archive.Note, override.Archive.Note)
	mergeString(&result.Log.Level, override.Log.Level)

	return &result
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
