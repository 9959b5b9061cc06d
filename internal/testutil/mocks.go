// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"

	"github.com/runoshun/tasksplit/internal/domain"
)

// MockDocumentStore is a test double for domain.DocumentStore.
// Fields are ordered to minimize memory padding.
type MockDocumentStore struct {
	Docs      map[string]string
	WriteErrs map[string]error // Per-path write failures
	ReadErr   error
	Writes    []string // Paths in the order they were written
}

// NewMockDocumentStore creates a new MockDocumentStore with initialized maps.
func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{
		Docs:      make(map[string]string),
		WriteErrs: make(map[string]error),
	}
}

// Read returns the stored document.
func (m *MockDocumentStore) Read(path string) (string, error) {
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	text, ok := m.Docs[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
	}
	return text, nil
}

// Write stores the document unless a failure is configured for path.
func (m *MockDocumentStore) Write(path, text string) error {
	if err, ok := m.WriteErrs[path]; ok {
		return err
	}
	m.Docs[path] = text
	m.Writes = append(m.Writes, path)
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a new MockConfigLoader returning default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// LoadRoot returns the configured config.
func (m *MockConfigLoader) LoadRoot() (*domain.Config, error) {
	return m.Load()
}

// GlobalPath returns a fixed path.
func (m *MockConfigLoader) GlobalPath() string {
	return "/global/tasksplit/config.toml"
}

// RootPath returns a fixed path.
func (m *MockConfigLoader) RootPath() string {
	return "/repo/.tasksplit.toml"
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr      error
	TemplateErr  error
	GlobalInfo   domain.ConfigInfo
	RootInfo     domain.ConfigInfo
	TemplateText string
	InitCalled   bool
}

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalInfo
}

// GetRootConfigInfo returns the configured root info.
func (m *MockConfigManager) GetRootConfigInfo() domain.ConfigInfo {
	return m.RootInfo
}

// InitRootConfig records the call and returns the root path.
func (m *MockConfigManager) InitRootConfig() (string, error) {
	m.InitCalled = true
	if m.InitErr != nil {
		return m.RootInfo.Path, m.InitErr
	}
	return m.RootInfo.Path, nil
}

// Template returns the configured template text.
func (m *MockConfigManager) Template() (string, error) {
	if m.TemplateErr != nil {
		return "", m.TemplateErr
	}
	return m.TemplateText, nil
}

// MockGit is a test double for domain.Git.
type MockGit struct {
	Dirty   map[string]bool
	RootErr error
	Err     error
	RootDir string
}

// Root returns the configured root.
func (m *MockGit) Root(_ string) (string, error) {
	if m.RootErr != nil {
		return "", m.RootErr
	}
	return m.RootDir, nil
}

// HasUncommittedChanges returns the configured dirty state for path.
func (m *MockGit) HasUncommittedChanges(_, path string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.Dirty[path], nil
}

// LogEntry is one entry recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger records log entries.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) add(level, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("debug", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("info", category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(category, msg string) { m.add("warn", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("error", category, msg) }

// Messages returns the messages logged at level.
func (m *MockLogger) Messages(level string) []string {
	var out []string
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e.Msg)
		}
	}
	return out
}
