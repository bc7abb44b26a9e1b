package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/notoo/pkg/adapters/fs"
	"github.com/aretw0/notoo/pkg/core"
)

// EnvStore names the environment variable overriding the store location.
const EnvStore = "NOTOO_STORE"

// MediaDirName is the media subdirectory of a store.
const MediaDirName = "media"

// FindRoot looks upwards from startDir for a store directory, recognised by
// a notoo.yaml file or a notes file. It returns the absolute path.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	notesFile := core.NotesKey + fs.FileExt
	dir := abs
	for {
		if hasFile(dir, ConfigFileName) || hasFile(dir, notesFile) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("root not found")
}

// ResolveStorePath picks the store directory: the explicit path, then
// $NOTOO_STORE, then a store found above the working directory, then ~/.notoo.
func ResolveStorePath(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	if env := os.Getenv(EnvStore); env != "" {
		return filepath.Abs(env)
	}
	if wd, err := os.Getwd(); err == nil {
		if root, err := FindRoot(wd); err == nil {
			return root, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate store: %w", err)
	}
	return filepath.Join(home, ".notoo"), nil
}

// MediaDir returns the media directory of a store.
func MediaDir(storePath string) string {
	return filepath.Join(storePath, MediaDirName)
}

func hasFile(dir, name string) bool {
	path := filepath.Join(dir, name)
	_, err := os.Stat(path)
	return err == nil
}
