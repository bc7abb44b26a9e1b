package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notoo/pkg/adapters/lifecycle"
	"github.com/aretw0/notoo/pkg/core"
)

func TestSource_Forwards(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan core.Event, 1)
	src := lifecycle.NewSource(in)
	require.NoError(t, src.Start(ctx))

	in <- core.Event{Type: core.EventModify, Key: core.NotesKey}
	select {
	case e := <-src.Events():
		assert.Equal(t, "MODIFY @notoo_notes_v3", e.String())
	case <-time.After(2 * time.Second):
		t.Fatal("timeout")
	}

	close(in)
	select {
	case _, ok := <-src.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("source not closed")
	}
}
