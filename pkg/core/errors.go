package core

import "errors"

// Common errors.
var (
	ErrNotFound              = errors.New("not found")
	ErrReadOnly              = errors.New("store is in read-only mode")
	ErrEmptyID               = errors.New("note ID cannot be empty")
	ErrEmptyNote             = errors.New("note needs text or an image")
	ErrInvalidFolder         = errors.New("folder name cannot be empty")
	ErrFolderExists          = errors.New("folder already exists")
	ErrProtectedFolder       = errors.New("folder is protected")
	ErrInsufficientStructure = errors.New("not enough structure found to build flashcards")
	ErrSessionInactive       = errors.New("study session is not running")
)
