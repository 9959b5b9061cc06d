package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/tasksplit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_RootConfigOnly(t *testing.T) {
	root := t.TempDir()
	globalDir := t.TempDir()

	rootConfig := `
[paths]
source = "TODO.md"
pending = "TODO.md"
archive = "DONE.md"

[pending]
title = "# Open work"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.RootConfigFileName), []byte(rootConfig), 0o644))

	cfg, err := NewLoaderWithGlobalDir(root, globalDir).Load()

	require.NoError(t, err)
	assert.Equal(t, "TODO.md", cfg.Paths.Source)
	assert.Equal(t, "TODO.md", cfg.Paths.Pending)
	assert.Equal(t, "DONE.md", cfg.Paths.Archive)
	assert.Equal(t, "# Open work", cfg.Pending.Title)
	// Unset keys keep their defaults.
	assert.Equal(t, domain.DefaultPendingNote, cfg.Pending.Note)
	assert.Equal(t, domain.DefaultArchiveTitle, cfg.Archive.Title)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_RootOverridesGlobal(t *testing.T) {
	root := t.TempDir()
	globalDir := t.TempDir()

	globalConfig := `
[archive]
title = "# Global archive"
note = "> global note"

[log]
level = "info"
`
	rootConfig := `
[archive]
title = "# Project archive"
`
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte(globalConfig), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.RootConfigFileName), []byte(rootConfig), 0o644))

	cfg, err := NewLoaderWithGlobalDir(root, globalDir).Load()

	require.NoError(t, err)
	assert.Equal(t, "# Project archive", cfg.Archive.Title)
	assert.Equal(t, "> global note", cfg.Archive.Note)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_Load_UnknownKeysBecomeWarnings(t *testing.T) {
	root := t.TempDir()

	rootConfig := `
stray = 1

[paths]
sourse = "typo.md"

[extra]
key = "value"
`
	path := filepath.Join(root, domain.RootConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(rootConfig), 0o644))

	cfg, err := NewLoaderWithGlobalDir(root, t.TempDir()).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSourcePath, cfg.Paths.Source)
	assert.Equal(t, []string{
		path + ": unknown key in [paths]: sourse",
		path + ": unknown key: stray",
		path + ": unknown section: extra",
	}, cfg.Warnings)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.RootConfigFileName), []byte("[paths\nsource ="), 0o644))

	_, err := NewLoaderWithGlobalDir(root, t.TempDir()).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.RootConfigFileName)
}

func TestLoader_LoadRoot_NotExist(t *testing.T) {
	_, err := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir()).LoadRoot()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_LoadGlobal_NoGlobalDir(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), "")

	_, err := loader.LoadGlobal()

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, loader.GlobalPath())
}

func TestLoader_Paths(t *testing.T) {
	loader := NewLoaderWithGlobalDir("/repo", "/home/u/.config/tasksplit")

	assert.Equal(t, filepath.Join("/repo", ".tasksplit.toml"), loader.RootPath())
	assert.Equal(t, filepath.Join("/home/u/.config/tasksplit", "config.toml"), loader.GlobalPath())
}
