package platform

import (
	"github.com/aretw0/notoo/pkg/core"
)

// New builds a ready service.
//
//	svc, err := notoo.New("~/.notoo", notoo.WithReadOnly(true))
//
// The URI argument is adapter-specific (a directory for 'fs').
func New(uri string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store, err := initStore(uri, o)
	if err != nil {
		return nil, err
	}

	var file FileConfig
	if path := configPath(uri, o); path != "" {
		if file, err = LoadConfig(path); err != nil {
			return nil, err
		}
	}

	return core.NewService(store, core.ServiceConfig{
		Logger:    o.logger,
		Languages: languageTable(o, file),
	}), nil
}
