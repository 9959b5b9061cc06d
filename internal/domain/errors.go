package domain

import "errors"

// Domain errors.
var (
	ErrSourceNotFound   = errors.New("task document not found")
	ErrInvalidEncoding  = errors.New("document is not valid UTF-8")
	ErrEmptySourcePath  = errors.New("source path cannot be empty")
	ErrEmptyOutputPath  = errors.New("output paths cannot be empty")
	ErrSameOutputPath   = errors.New("pending and archive outputs must be different files")
	ErrConfigExists     = errors.New("config file already exists")
	ErrNotGitRepository = errors.New("not a git repository (or any of the parent directories)")
)
