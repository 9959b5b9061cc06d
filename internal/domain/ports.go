package domain

// DocumentStore reads and writes whole text documents.
type DocumentStore interface {
	// Read returns the full text of the document at path.
	// Returns an error wrapping ErrSourceNotFound if it does not exist.
	Read(path string) (string, error)

	// Write replaces the document at path with text.
	Write(path, text string) error
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- project).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// LoadRoot returns only the project root configuration.
	LoadRoot() (*Config, error)

	// GlobalPath returns the global config file path.
	GlobalPath() string

	// RootPath returns the project root config file path.
	RootPath() string
}

// ConfigInfo describes one configuration file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetRootConfigInfo returns information about the project root config file.
	GetRootConfigInfo() ConfigInfo

	// InitRootConfig writes a default project root config file and returns its path.
	// Returns ErrConfigExists if the file is already present.
	InitRootConfig() (string, error)

	// Template renders the default configuration as a TOML document with a comment on every key.
	Template() (string, error)
}

// Git provides the repository queries the split needs.
type Git interface {
	// Root returns the working tree root of the repository enclosing dir.
	// Returns ErrNotGitRepository when dir is not inside one.
	Root(dir string) (string, error)

	// HasUncommittedChanges reports whether path differs from HEAD or is untracked.
	HasUncommittedChanges(root, path string) (bool, error)
}

// Logger provides leveled logging by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all log entries.
type NopLogger struct{}

// Debug does nothing.
func (NopLogger) Debug(string, string) {}

// Info does nothing.
func (NopLogger) Info(string, string) {}

// Warn does nothing.
func (NopLogger) Warn(string, string) {}

// Error does nothing.
func (NopLogger) Error(string, string) {}
