package notoo

import (
	"log/slog"

	"github.com/aretw0/notoo/internal/platform"
	"github.com/aretw0/notoo/pkg/core"
	"github.com/aretw0/notoo/pkg/parser"
	"github.com/aretw0/notoo/pkg/study"
)

// --- Configuration ---

// Option defines a functional option for configuring notoo.
type Option = platform.Option

// WithLogger sets the logger for the service and its store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithAdapter selects the storage adapter by name ("fs" or "memory").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithMustExist ensures the store directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithLanguages adds folder/language rules ahead of the built-in ones.
func WithLanguages(rules ...core.LanguageRule) Option {
	return platform.WithLanguages(rules...)
}

// WithNativeLanguage overrides the language answers are given in.
func WithNativeLanguage(code string) Option {
	return platform.WithNativeLanguage(code)
}

// WithConfigFile reads settings from an explicit YAML file.
func WithConfigFile(path string) Option {
	return platform.WithConfigFile(path)
}

// WithWatcherErrorHandler registers a callback for watch loop errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a new notoo Service.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a store explicitly.
func Init(path string, opts ...Option) (core.Store, error) {
	return platform.Init(path, opts...)
}

// --- Study ---

// Flashcards builds the study deck of a note.
func Flashcards(n core.Note) []parser.Flashcard {
	return parser.Generate(n)
}

// Classify splits text into classified blocks.
func Classify(text string) []parser.Block {
	return parser.Classify(text)
}

// StartStudy generates the deck of n and starts a session on it.
// It returns core.ErrInsufficientStructure when the note yields no cards.
func StartStudy(svc *core.Service, n core.Note) (*study.Session, error) {
	s := study.ForNote(n, svc.Languages())
	if err := s.Start(parser.Generate(n)); err != nil {
		return nil, err
	}
	return s, nil
}

// --- Utils ---

// FindStoreRoot looks upwards for a store directory.
func FindStoreRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

// ResolveStorePath picks the store directory used by the CLI.
func ResolveStorePath(explicit string) (string, error) {
	return platform.ResolveStorePath(explicit)
}
