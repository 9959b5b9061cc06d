// Package git provides git operations.
package git

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/runoshun/tasksplit/internal/domain"
)

// Ensure Client implements domain.Git.
var _ domain.Git = (*Client)(nil)

// Client provides git operations backed by go-git.
type Client struct{}

// NewClient creates a new git client.
func NewClient() *Client {
	return &Client{}
}

// open opens the repository containing dir, searching parent directories.
func open(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return repo, nil
}

// Root returns the working tree root of the repository enclosing dir.
func (c *Client) Root(dir string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", err
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return "", domain.ErrNotGitRepository
		}
		return "", fmt.Errorf("get worktree: %w", err)
	}

	return filepath.Clean(wt.Filesystem.Root()), nil
}

// HasUncommittedChanges reports whether path has staged, unstaged or untracked changes.
// path may be absolute or relative to root.
func (c *Client) HasUncommittedChanges(root, path string) (bool, error) {
	repo, err := open(root)
	if err != nil {
		return false, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("get worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("get status: %w", err)
	}

	rel := path
	if filepath.IsAbs(path) {
		rel, err = filepath.Rel(wt.Filesystem.Root(), path)
		if err != nil {
			return false, fmt.Errorf("relative path: %w", err)
		}
	}

	// Clean tracked files are absent from the status map.
	fs, ok := status[filepath.ToSlash(rel)]
	if !ok {
		return false, nil
	}
	return fs.Staging != git.Unmodified || fs.Worktree != git.Unmodified, nil
}
