package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notoo/internal/platform"
	"github.com/aretw0/notoo/pkg/adapters/fs"
	"github.com/aretw0/notoo/pkg/adapters/memory"
	"github.com/aretw0/notoo/pkg/core"
)

func TestInit_Adapters(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")

	store, err := platform.Init(dir)
	require.NoError(t, err)
	assert.IsType(t, &fs.Store{}, store)
	assert.DirExists(t, dir)

	store, err = platform.Init("", platform.WithAdapter("memory"))
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, store)

	injected := memory.NewStore()
	store, err = platform.Init(dir, platform.WithStore(injected))
	require.NoError(t, err)
	assert.Same(t, injected, store)

	_, err = platform.Init(dir, platform.WithAdapter("s3"))
	assert.Error(t, err)

	_, err = platform.Init("")
	assert.Error(t, err)

	_, err = platform.Init(filepath.Join(t.TempDir(), "missing"), platform.WithMustExist(true))
	assert.Error(t, err)
}

func TestNew_ReadOnly(t *testing.T) {
	dir := t.TempDir()
	svc, err := platform.New(dir, platform.WithReadOnly(true))
	require.NoError(t, err)
	assert.Equal(t, "fs", svc.State().(core.ServiceState).StoreType)

	_, err = svc.CreateNote(context.Background(), core.Draft{Text: "Hund - Dog"})
	assert.ErrorIs(t, err, core.ErrReadOnly)
}

func TestNew_LanguageConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := `native_language: uk
languages:
  - folder: Hiszpański
    prefix: es
    code: es-ES
  - folder: Niemiecki
    code: de-AT
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, platform.ConfigFileName), []byte(cfg), 0644))

	svc, err := platform.New(dir, platform.WithLanguages(core.LanguageRule{Folder: "Włoski", Code: "it-IT"}))
	require.NoError(t, err)

	langs := svc.Languages()
	assert.Equal(t, "uk", langs.Native())
	assert.Equal(t, "es-ES", langs.Resolve(core.Note{Folder: "Hiszpański"}))
	assert.Equal(t, "de-AT", langs.Resolve(core.Note{Folder: "Niemiecki"}), "file rules override the defaults")
	assert.Equal(t, "en-US", langs.Resolve(core.Note{Folder: "Angielski"}))
	assert.Equal(t, "it-IT", langs.Resolve(core.Note{Folder: "Włoski"}))

	svc, err = platform.New(dir, platform.WithNativeLanguage("pl"))
	require.NoError(t, err)
	assert.Equal(t, "pl", svc.Languages().Native())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := platform.LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Languages)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("languages:\n  - code: es\n"), 0644))
	_, err = platform.LoadConfig(bad)
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("languages: [\n"), 0644))
	_, err = platform.LoadConfig(broken)
	assert.Error(t, err)

	// An explicit config file that is invalid fails New.
	_, err = platform.New(dir, platform.WithConfigFile(bad))
	assert.Error(t, err)
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, core.NotesKey+fs.FileExt), []byte("[]"), 0644))

	found, err := platform.FindRoot(nested)
	require.NoError(t, err)
	want, _ := filepath.EvalSymlinks(root)
	got, _ := filepath.EvalSymlinks(found)
	assert.Equal(t, want, got)
}

func TestResolveStorePath(t *testing.T) {
	dir := t.TempDir()

	got, err := platform.ResolveStorePath(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	t.Setenv(platform.EnvStore, dir)
	got, err = platform.ResolveStorePath("")
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	assert.Equal(t, filepath.Join(dir, "media"), platform.MediaDir(dir))
}
