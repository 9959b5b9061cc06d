package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/tasksplit/internal/app"
	"github.com/runoshun/tasksplit/internal/domain"
	"github.com/runoshun/tasksplit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `# Tasks

## Setup
- [x] install
  - pinned versions

## Build
- [ ] compile
- [x] lint
`

// newTestContainer creates a container backed by a temporary project root.
func newTestContainer(t *testing.T) (*app.Container, string) {
	t.Helper()

	// Isolate global config
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := t.TempDir()
	container, err := app.New(root)
	require.NoError(t, err)

	return container, root
}

func writeSource(t *testing.T, root, text string) string {
	t.Helper()
	path := filepath.Join(root, domain.DefaultSourcePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func execute(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand(c, "test-version")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_SplitsDocument(t *testing.T) {
	c, root := newTestContainer(t)
	source := writeSource(t, root, sampleDoc)

	stdout, _, err := execute(t, c)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Split complete:")
	assert.Contains(t, stdout, "docs/900_tasks.md: 1 sections, 6 lines")
	assert.Contains(t, stdout, "docs/901_tasks_archived.md: 1 sections, 8 lines")

	pending, err := os.ReadFile(source)
	require.NoError(t, err)
	assert.Equal(t,
		"# Task Breakdown & Progress\n\n> Completed tasks are archived in `docs/901_tasks_archived.md`\n\n## Build\n- [ ] compile",
		string(pending))

	archive, err := os.ReadFile(filepath.Join(root, domain.DefaultArchivePath))
	require.NoError(t, err)
	assert.Equal(t,
		"# Completed Task Archive\n\n> History of completed tasks moved out of `docs/900_tasks.md`.\n\n## Setup\n- [x] install\n  - pinned versions\n",
		string(archive))
}

func TestRootCommand_SourceMissing(t *testing.T) {
	c, root := newTestContainer(t)

	stdout, _, err := execute(t, c)

	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
	assert.Empty(t, stdout)
	_, statErr := os.Stat(filepath.Join(root, domain.DefaultArchivePath))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	c, root := newTestContainer(t)
	writeSource(t, root, sampleDoc)

	_, _, err := execute(t, c, "extra")

	assert.Error(t, err)
}

func TestRootCommand_PrintsConfigWarnings(t *testing.T) {
	c, root := newTestContainer(t)
	writeSource(t, root, sampleDoc)
	require.NoError(t, os.WriteFile(
		filepath.Join(root, domain.RootConfigFileName),
		[]byte("[paths]\nsourc = \"typo.md\"\n"),
		0o644,
	))

	_, stderr, err := execute(t, c)

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning:")
	assert.Contains(t, stderr, "sourc")
}

func TestRootCommand_WriteError(t *testing.T) {
	docs := testutil.NewMockDocumentStore()
	docs.Docs[filepath.Join("/repo", domain.DefaultSourcePath)] = sampleDoc
	writeErr := errors.New("read-only file system")
	docs.WriteErrs[filepath.Join("/repo", domain.DefaultPendingPath)] = writeErr
	c := app.NewWithDeps(
		app.Config{Root: "/repo"},
		docs,
		testutil.NewMockConfigLoader(),
		&testutil.MockConfigManager{},
		nil,
		&testutil.MockLogger{},
	)

	_, _, err := execute(t, c)

	assert.ErrorIs(t, err, writeErr)
	assert.Empty(t, docs.Writes)
}

func TestRootCommand_Version(t *testing.T) {
	stdout, _, err := execute(t, nil, "--version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "test-version")
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := execute(t, nil, "--help")

	require.NoError(t, err)
	assert.Contains(t, stdout, "preview")
	assert.Contains(t, stdout, "config")
}
