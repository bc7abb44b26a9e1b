// Package export renders notes as Markdown files with YAML frontmatter.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/notoo/pkg/core"
	"github.com/aretw0/notoo/pkg/parser"
)

// Frontmatter is the YAML header of an exported note.
type Frontmatter struct {
	ID       string `yaml:"id"`
	Folder   string `yaml:"folder"`
	Type     string `yaml:"type"`
	Anchor   string `yaml:"anchor"`
	Language string `yaml:"language,omitempty"`
	Image    string `yaml:"image,omitempty"`
	Created  string `yaml:"created"`
	Updated  string `yaml:"updated,omitempty"`
}

const titleWords = 6

// Markdown renders n. lang is the resolved note language.
func Markdown(n core.Note, lang string) ([]byte, error) {
	fm := Frontmatter{
		ID:       n.ID,
		Folder:   n.Folder,
		Type:     string(n.Type),
		Anchor:   n.Anchor.Name,
		Language: lang,
		Created:  stamp(n.CreatedAt),
		Updated:  stamp(n.UpdatedAt),
	}
	if n.Type.HasImage() {
		fm.Image = n.Content
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n")

	if fm.Image != "" {
		fmt.Fprintf(&buf, "\n![%s](%s)\n", n.Folder, fm.Image)
	}
	for _, b := range parser.Classify(parser.SourceText(n)) {
		buf.WriteString("\n")
		buf.WriteString(renderBlock(b))
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

func renderBlock(b parser.Block) string {
	switch b.Kind {
	case parser.KindFlashcard:
		return "**" + b.Term + "** — " + b.Definition
	case parser.KindQuote:
		return "> " + b.Text
	case parser.KindList:
		items := make([]string, len(b.Items))
		for i, item := range b.Items {
			items[i] = "- " + item
		}
		return strings.Join(items, "\n")
	default:
		return b.Content
	}
}

// FileName derives a stable file name from the first words of the note text
// and its ID.
func FileName(n core.Note) string {
	short := n.ID
	if len(short) > 8 {
		short = short[:8]
	}

	words := strings.Fields(core.EditableText(n))
	if len(words) > titleWords {
		words = words[:titleWords]
	}
	title := slug.Make(strings.Join(words, " "))
	if title == "" {
		title = "note"
	}
	if short == "" {
		return title + ".md"
	}
	return title + "-" + short + ".md"
}

// Write renders n into dir and returns the written path.
func Write(dir string, n core.Note, lang string) (string, error) {
	data, err := Markdown(n, lang)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, FileName(n))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func stamp(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
