// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/tasksplit/internal/domain"
	"github.com/runoshun/tasksplit/internal/infra/config"
	"github.com/runoshun/tasksplit/internal/infra/filestore"
	"github.com/runoshun/tasksplit/internal/infra/git"
	"github.com/runoshun/tasksplit/internal/infra/logging"
	"github.com/runoshun/tasksplit/internal/usecase"
)

// Config holds the resolved project location.
type Config struct {
	Root      string // Project root: the git working tree root, or the starting directory
	InGitRepo bool   // Whether Root is a git working tree
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Docs          domain.DocumentStore
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Git           domain.Git // nil outside a git repository
	Logger        domain.Logger

	// Configuration
	Config Config
}

// New creates a new Container rooted at the git working tree enclosing dir.
// Outside a git repository dir itself is the project root.
func New(dir string) (*Container, error) {
	return newContainer(dir, os.Stderr)
}

func newContainer(dir string, logOut io.Writer) (*Container, error) {
	// Detect project root
	gitClient := git.NewClient()
	cfg := Config{Root: dir}
	var gitPort domain.Git
	root, err := gitClient.Root(dir)
	switch {
	case err == nil:
		cfg.Root = root
		cfg.InGitRepo = true
		gitPort = gitClient
	case errors.Is(err, domain.ErrNotGitRepository):
		// Fall back to dir
	default:
		return nil, fmt.Errorf("detect project root: %w", err)
	}

	// Load config to determine the log level
	configLoader := config.NewLoader(cfg.Root)
	level := domain.DefaultLogLevel
	if appConfig, err := configLoader.Load(); err == nil {
		level = appConfig.Log.Level
	}
	logger := logging.New(logOut, logging.ParseLevel(level))

	return &Container{
		Docs:          filestore.New(),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(configLoader),
		Git:           gitPort,
		Logger:        logger,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	docs domain.DocumentStore,
	configLoader domain.ConfigLoader,
	configManager domain.ConfigManager,
	gitPort domain.Git,
	logger domain.Logger,
) *Container {
	return &Container{
		Docs:          docs,
		ConfigLoader:  configLoader,
		ConfigManager: configManager,
		Git:           gitPort,
		Logger:        logger,
		Config:        cfg,
	}
}

// UseCase factory methods

// SplitTasksUseCase returns a new SplitTasks use case.
func (c *Container) SplitTasksUseCase() *usecase.SplitTasks {
	return usecase.NewSplitTasks(c.Docs, c.ConfigLoader, c.Git, c.Logger, c.Config.Root)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate(c.ConfigManager)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
