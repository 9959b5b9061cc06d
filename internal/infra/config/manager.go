package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/tasksplit/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager inspects and creates configuration files.
type Manager struct {
	loader *Loader
}

// NewManager creates a new Manager for the given loader's file locations.
func NewManager(loader *Loader) *Manager {
	return &Manager{loader: loader}
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	path := m.loader.GlobalPath()
	if path == "" {
		return domain.ConfigInfo{}
	}
	return getConfigInfo(path)
}

// GetRootConfigInfo returns information about the project root config file.
func (m *Manager) GetRootConfigInfo() domain.ConfigInfo {
	return getConfigInfo(m.loader.RootPath())
}

// getConfigInfo reads a config file and returns its info.
func getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitRootConfig writes the default configuration to the project root config file.
func (m *Manager) InitRootConfig() (string, error) {
	path := m.loader.RootPath()
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
	}

	content, err := m.Template()
	if err != nil {
		return path, err
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // Config is meant to be committed and shared
		return path, fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

// Template renders the default configuration.
func (m *Manager) Template() (string, error) {
	return RenderTemplate(domain.NewDefaultConfig())
}

const templateHeader = `# tasksplit configuration
#
# Relative paths resolve against the project root (the git working tree root).
# In preamble notes, {sibling} expands to the other output's path.

`

// RenderTemplate renders cfg as a TOML document with a comment on every key.
func RenderTemplate(cfg *domain.Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return templateHeader + string(data), nil
}
