package platform

import (
	"log/slog"

	"github.com/aretw0/notoo/pkg/core"
)

// options holds the internal configuration for the notoo service.
type options struct {
	store        core.Store
	logger       *slog.Logger
	adapter      string
	readOnly     bool
	mustExist    bool
	languages    []core.LanguageRule
	native       string
	configFile   string
	errorHandler func(error)
}

// Option defines a functional option for configuring notoo.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "fs",
	}
}

// WithLogger sets the logger for the service and its store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom storage adapter (e.g. a mock).
// If provided, the adapter selected by name is skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithAdapter selects the storage adapter by name: "fs" (default) or "memory".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithReadOnly enables read-only mode.
// Writes return core.ErrReadOnly and the store directory is never created.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithMustExist ensures the store directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithLanguages adds folder/language rules. They take precedence over the
// config file and the built-in German and English rules.
func WithLanguages(rules ...core.LanguageRule) Option {
	return func(o *options) {
		o.languages = append(o.languages, rules...)
	}
}

// WithNativeLanguage overrides the language answers are given in (default "pl").
func WithNativeLanguage(code string) Option {
	return func(o *options) {
		o.native = code
	}
}

// WithConfigFile reads settings from the given YAML file instead of
// notoo.yaml in the store directory.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configFile = path
	}
}

// WithWatcherErrorHandler registers a callback for errors of the watch loop,
// which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
