package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notoo"
	"github.com/aretw0/notoo/pkg/core"
	"github.com/aretw0/notoo/pkg/media"
)

func writeImage(t *testing.T) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(src, []byte("png"), 0644))
	return src
}

func TestCreateNote_WithImage(t *testing.T) {
	svc, err := notoo.New("", notoo.WithAdapter("memory"))
	require.NoError(t, err)
	lib := media.NewLibrary(filepath.Join(t.TempDir(), "media"), nil)

	note, err := createNote(context.Background(), svc, lib, core.Draft{Text: "Eiffel Tower", Folder: "Travel"}, writeImage(t))
	require.NoError(t, err)
	assert.Equal(t, core.TypeMixed, note.Type)
	assert.True(t, lib.Contains(note.Content))
	assert.FileExists(t, note.Content)
}

func TestCreateNote_FailureRemovesImage(t *testing.T) {
	store := t.TempDir()
	svc, err := notoo.New(store, notoo.WithReadOnly(true))
	require.NoError(t, err)
	lib := media.NewLibrary(filepath.Join(t.TempDir(), "media"), nil)

	_, err = createNote(context.Background(), svc, lib, core.Draft{Text: "caption"}, writeImage(t))
	assert.ErrorIs(t, err, core.ErrReadOnly)

	entries, err := os.ReadDir(lib.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "imported image must be removed")
}
