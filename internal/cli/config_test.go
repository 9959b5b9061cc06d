package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/tasksplit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Config Command Tests
// =============================================================================

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	c, _ := newTestContainer(t)

	stdout, _, err := execute(t, c, "config")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Available Commands:")
	assert.Contains(t, stdout, "show")
	assert.Contains(t, stdout, "template")
	assert.Contains(t, stdout, "init")
}

// =============================================================================
// Config Show Subcommand Tests
// =============================================================================

func TestConfigShowCommand_DisplaysEffectiveConfig(t *testing.T) {
	c, root := newTestContainer(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(root, domain.RootConfigFileName),
		[]byte("[paths]\nsource = \"TODO.md\"\n"),
		0o644,
	))

	stdout, _, err := execute(t, c, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "[Loaded from]")
	assert.Contains(t, stdout, "config.toml (not found)")
	assert.Contains(t, stdout, "- "+filepath.Join(root, domain.RootConfigFileName)+"\n")
	assert.Contains(t, stdout, "[Effective Config]")
	assert.Contains(t, stdout, "TODO.md")
	assert.Contains(t, stdout, "901_tasks_archived.md")
}

func TestConfigShowCommand_InvalidTOML(t *testing.T) {
	c, root := newTestContainer(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(root, domain.RootConfigFileName),
		[]byte("[paths\n"),
		0o644,
	))

	_, _, err := execute(t, c, "config", "show")

	assert.Error(t, err)
}

// =============================================================================
// Config Template Subcommand Tests
// =============================================================================

func TestConfigTemplateCommand_OutputsTemplate(t *testing.T) {
	c, root := newTestContainer(t)
	// Broken config must not matter
	require.NoError(t, os.WriteFile(
		filepath.Join(root, domain.RootConfigFileName),
		[]byte("not toml at all ["),
		0o644,
	))

	stdout, _, err := execute(t, c, "config", "template")

	require.NoError(t, err)
	assert.Contains(t, stdout, "# tasksplit configuration")
	assert.Contains(t, stdout, "[paths]")
	assert.Contains(t, stdout, "[pending]")
	assert.Contains(t, stdout, "[archive]")
}

// =============================================================================
// Config Init Subcommand Tests
// =============================================================================

func TestConfigInitCommand_CreatesRootConfig(t *testing.T) {
	c, root := newTestContainer(t)

	stdout, _, err := execute(t, c, "config", "init")

	require.NoError(t, err)
	path := filepath.Join(root, domain.RootConfigFileName)
	assert.Contains(t, stdout, "Created config file: "+path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[paths]")
}

func TestConfigInitCommand_ErrorIfFileExists(t *testing.T) {
	c, root := newTestContainer(t)
	path := filepath.Join(root, domain.RootConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"info\"\n"), 0o644))

	_, _, err := execute(t, c, "config", "init")

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
