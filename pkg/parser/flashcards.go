package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/aretw0/notoo/pkg/core"
)

// Flashcard is one study card.
type Flashcard struct {
	Front  string      `json:"front"`
	Back   string      `json:"back"`
	Anchor core.Anchor `json:"anchor"`
}

const (
	// DefaultHeader labels bullet cards that appear before any section header.
	DefaultHeader = "Recall Concept"
	// CategoryPrompt prefixes the front of bullet cards.
	CategoryPrompt = "Wymień z kategorii: "
	// NoImageContext replaces a missing caption on the image card.
	NoImageContext = "No text context provided."
)

// Separators are the term/definition separators, in tie-break order.
// "-" also matches inside hyphenated words ("well-known"); that split is kept.
var Separators = []string{":", " - ", "—", "–", "-", " : "}

// SourceText returns the text Generate parses for a note.
// Image notes carry only an image reference, which is never parsed: falling
// back to Content would split "file:///..." on ':' into a bogus card.
func SourceText(n core.Note) string {
	switch n.Type {
	case core.TypeMixed:
		return n.TextContent
	case core.TypeVocabList:
		if n.TextContent != "" {
			return n.TextContent
		}
		return n.Content
	case core.TypeImage:
		return ""
	default:
		return n.Content
	}
}

// Generate builds the flashcards of a note. Image and mixed notes start with
// a visual recall card; the rest follow the note's lines in order. An empty
// result means the note has not enough structure to study.
func Generate(n core.Note) []Flashcard {
	cards := make([]Flashcard, 0)
	if n.Type.HasImage() {
		cards = append(cards, imageCard(n))
	}
	return append(cards, textCards(n, SourceText(n))...)
}

func imageCard(n core.Note) Flashcard {
	caption := n.TextContent
	if caption == "" {
		caption = NoImageContext
	}
	return Flashcard{
		Front:  n.Anchor.Emoji + " Visual Recall: " + n.Folder,
		Back:   "Image Context: " + caption,
		Anchor: n.Anchor,
	}
}

func textCards(n core.Note, text string) []Flashcard {
	if text == "" {
		return nil
	}

	vocab := n.Type == core.TypeVocabList
	header := DefaultHeader

	var cards []Flashcard
	for _, line := range nonBlankLines(text) {
		if !vocab && isHeader(line) {
			header = strings.TrimSpace(strings.TrimSuffix(line, ":"))
			continue
		}

		if i, sep, ok := findSeparator(line); ok {
			front := strings.TrimSpace(line[:i])
			back := strings.TrimSpace(line[i+len(sep):])
			if front != "" && back != "" {
				cards = append(cards, Flashcard{Front: front, Back: back, Anchor: n.Anchor})
				continue
			}
		}

		if !vocab && hasBulletMarker(line) {
			if item := strings.TrimSpace(dropFirstRune(line)); item != "" {
				cards = append(cards, Flashcard{Front: CategoryPrompt + header, Back: item, Anchor: n.Anchor})
			}
		}
	}
	return cards
}

// isHeader reports whether a line opens a section ("Animals:").
func isHeader(line string) bool {
	return utf8.RuneCountInString(line) > 3 && strings.HasSuffix(line, ":")
}

func hasBulletMarker(line string) bool {
	return strings.HasPrefix(line, "*") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-")
}

// findSeparator returns the earliest separator of the line. Each candidate is
// located by its first occurrence, which disqualifies it when it sits at the
// very start of the line. Ties go to the candidate listed first.
func findSeparator(line string) (index int, sep string, ok bool) {
	index = -1
	for _, candidate := range Separators {
		i := strings.Index(line, candidate)
		if i <= 0 {
			continue
		}
		if index == -1 || i < index {
			index, sep = i, candidate
		}
	}
	return index, sep, index > 0
}
