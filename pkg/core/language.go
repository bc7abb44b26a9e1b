package core

import "strings"

// Language codes used by the default table.
const (
	LanguagePolish  = "pl"
	LanguageGerman  = "de-DE"
	LanguageEnglish = "en-US"
)

// LanguageRule binds a folder name and a language-code prefix to a language code.
type LanguageRule struct {
	Folder string `yaml:"folder" json:"folder"`
	Prefix string `yaml:"prefix" json:"prefix"`
	Code   string `yaml:"code" json:"code"`
}

// LanguageTable resolves the foreign language of a note.
// Rules are evaluated in order; the first match wins.
type LanguageTable struct {
	Rules    []LanguageRule
	Fallback string
}

// DefaultLanguageTable returns the built-in German/English table with Polish as fallback.
func DefaultLanguageTable() *LanguageTable {
	return &LanguageTable{
		Rules: []LanguageRule{
			{Folder: FolderGerman, Prefix: "de", Code: LanguageGerman},
			{Folder: FolderEnglish, Prefix: "en", Code: LanguageEnglish},
		},
		Fallback: LanguagePolish,
	}
}

// With returns a copy of the table with extra rules appended.
func (t *LanguageTable) With(rules ...LanguageRule) *LanguageTable {
	out := &LanguageTable{
		Rules:    make([]LanguageRule, 0, len(t.Rules)+len(rules)),
		Fallback: t.Fallback,
	}
	out.Rules = append(out.Rules, t.Rules...)
	out.Rules = append(out.Rules, rules...)
	return out
}

// Resolve returns the language code of the note's vocabulary.
func (t *LanguageTable) Resolve(n Note) string {
	for _, r := range t.Rules {
		if r.Folder != "" && n.Folder == r.Folder {
			return r.Code
		}
		if r.Prefix != "" && n.TargetLanguageCode != "" && strings.HasPrefix(n.TargetLanguageCode, r.Prefix) {
			return r.Code
		}
	}
	if n.TargetLanguageCode != "" {
		return n.TargetLanguageCode
	}
	return t.fallback()
}

// CodeForFolder returns the language code bound to a folder name.
func (t *LanguageTable) CodeForFolder(folder string) (string, bool) {
	for _, r := range t.Rules {
		if r.Folder != "" && r.Folder == folder {
			return r.Code, true
		}
	}
	return "", false
}

// IsLanguageFolder reports whether the folder is bound to a language.
func (t *LanguageTable) IsLanguageFolder(folder string) bool {
	_, ok := t.CodeForFolder(folder)
	return ok
}

// Native returns the user's own language (the fallback).
func (t *LanguageTable) Native() string {
	return t.fallback()
}

func (t *LanguageTable) fallback() string {
	if t.Fallback == "" {
		return LanguagePolish
	}
	return t.Fallback
}

// SpeechLanguage reduces a language code to the form speech engines accept:
// lower-case, region dropped ("de-DE" -> "de").
func SpeechLanguage(code string) string {
	if i := strings.Index(code, "-"); i >= 0 {
		code = code[:i]
	}
	return strings.ToLower(code)
}
