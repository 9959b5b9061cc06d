// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/tasksplit/internal/domain"
)

// SplitTasksInput contains the parameters for splitting the task document.
type SplitTasksInput struct {
	DryRun bool // If true, compute the split without writing either document
}

// DocumentSummary describes one output document.
// Fields are ordered to minimize memory padding.
type DocumentSummary struct {
	Path     string // Path as configured (relative to the project root unless absolute)
	Sections int    // Number of sections routed to the document
	Lines    int    // Total line count including the preamble
}

// SplitTasksOutput contains the result of a split.
// Fields are ordered to minimize memory padding.
type SplitTasksOutput struct {
	Routes  []domain.SectionRoute
	Source  string
	Pending DocumentSummary
	Archive DocumentSummary
	DryRun  bool
}

// SplitTasks is the use case for splitting a task document into pending and archived documents.
type SplitTasks struct {
	docs         domain.DocumentStore
	configLoader domain.ConfigLoader
	git          domain.Git
	logger       domain.Logger
	root         string
}

// NewSplitTasks creates a new SplitTasks use case.
// git may be nil when the project is not a git repository.
func NewSplitTasks(
	docs domain.DocumentStore,
	configLoader domain.ConfigLoader,
	git domain.Git,
	logger domain.Logger,
	root string,
) *SplitTasks {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &SplitTasks{
		docs:         docs,
		configLoader: configLoader,
		git:          git,
		logger:       logger,
		root:         root,
	}
}

// Execute reads the source document, splits it, and writes both outputs.
// The archive document is not written if writing the pending document fails.
func (uc *SplitTasks) Execute(ctx context.Context, in SplitTasksInput) (*SplitTasksOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(uc.root); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	sourcePath := domain.ResolvePath(uc.root, cfg.Paths.Source)
	pendingPath := domain.ResolvePath(uc.root, cfg.Paths.Pending)
	archivePath := domain.ResolvePath(uc.root, cfg.Paths.Archive)

	text, err := uc.docs.Read(sourcePath)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("split", fmt.Sprintf("read %s (%d bytes)", sourcePath, len(text)))

	res := domain.SplitDocument(text, cfg.SplitOptions())
	for _, r := range res.Routes {
		uc.logger.Debug("split", fmt.Sprintf("%q -> %s (%d task blocks)", r.Header, r.Destination, r.Blocks))
	}

	out := &SplitTasksOutput{
		Source: cfg.Paths.Source,
		Routes: res.Routes,
		Pending: DocumentSummary{
			Path:     cfg.Paths.Pending,
			Sections: res.Pending.Sections,
			Lines:    res.Pending.LineCount(),
		},
		Archive: DocumentSummary{
			Path:     cfg.Paths.Archive,
			Sections: res.Archive.Sections,
			Lines:    res.Archive.LineCount(),
		},
		DryRun: in.DryRun,
	}

	if in.DryRun {
		return out, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uc.warnUncommitted(pendingPath)
	uc.warnUncommitted(archivePath)

	if err := uc.docs.Write(pendingPath, res.Pending.Text()); err != nil {
		return nil, fmt.Errorf("write pending document: %w", err)
	}
	uc.logger.Info("split", fmt.Sprintf("wrote %s: %d sections, %d lines", pendingPath, out.Pending.Sections, out.Pending.Lines))

	if err := uc.docs.Write(archivePath, res.Archive.Text()); err != nil {
		return nil, fmt.Errorf("write archive document: %w", err)
	}
	uc.logger.Info("split", fmt.Sprintf("wrote %s: %d sections, %d lines", archivePath, out.Archive.Sections, out.Archive.Lines))

	return out, nil
}

// warnUncommitted logs a warning when path is about to be overwritten
// while holding changes git cannot restore.
func (uc *SplitTasks) warnUncommitted(path string) {
	if uc.git == nil {
		return
	}
	dirty, err := uc.git.HasUncommittedChanges(uc.root, path)
	if err != nil {
		if !errors.Is(err, domain.ErrNotGitRepository) {
			uc.logger.Debug("split", fmt.Sprintf("git status for %s: %v", path, err))
		}
		return
	}
	if dirty {
		uc.logger.Warn("split", fmt.Sprintf("%s has uncommitted changes and will be overwritten", path))
	}
}
