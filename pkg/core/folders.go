package core

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Built-in folder names.
const (
	FolderGerman        = "Niemiecki"
	FolderEnglish       = "Angielski"
	FolderStudy         = "Study"
	FolderUncategorized = "Uncategorized"
)

// DefaultFolders is the folder list of a fresh store.
func DefaultFolders() []string {
	return []string{FolderGerman, FolderEnglish, FolderStudy}
}

// IsProtectedFolder reports whether a folder cannot be deleted.
func IsProtectedFolder(name string) bool {
	for _, f := range DefaultFolders() {
		if f == name {
			return true
		}
	}
	return false
}

// SortFolders orders folder names the way a Polish-speaking user expects
// (locale collation, so "Ćwiczenia" sorts after "Angielski" and before "Dom").
func SortFolders(folders []string) {
	collate.New(language.Polish).SortStrings(folders)
}

func containsFolder(folders []string, name string) bool {
	for _, f := range folders {
		if f == name {
			return true
		}
	}
	return false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func trimSpace(s string) string {
	return strings.TrimSpace(s)
}
