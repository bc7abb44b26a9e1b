package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/notoo/pkg/adapters/fs"
	"github.com/aretw0/notoo/pkg/adapters/memory"
	"github.com/aretw0/notoo/pkg/core"
)

// Init prepares the store described by uri and the options.
// The 'uri' argument is adapter-specific (a directory for 'fs', ignored by 'memory').
func Init(uri string, opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initStore(uri, o)
}

func initStore(uri string, o *options) (core.Store, error) {
	if o.store != nil {
		return o.store, nil
	}

	var store core.Store
	switch o.adapter {
	case "fs":
		if uri == "" {
			return nil, fmt.Errorf("fs adapter needs a store path")
		}
		store = fs.NewStore(fs.Config{
			Path:         uri,
			MustExist:    o.mustExist,
			ReadOnly:     o.readOnly,
			Logger:       o.logger,
			ErrorHandler: o.errorHandler,
		})
	case "memory":
		store = memory.NewStore()
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}
	if o.logger != nil {
		o.logger.Debug("store ready", "adapter", o.adapter, "uri", uri, "read_only", o.readOnly)
	}
	return store, nil
}
