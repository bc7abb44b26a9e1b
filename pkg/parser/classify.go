package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Kind tags a Block.
type Kind string

const (
	KindFlashcard Kind = "flashcard"
	KindQuote     Kind = "quote"
	KindList      Kind = "list"
	KindText      Kind = "text"
)

// Block is one classified paragraph. Only the fields of its Kind are set:
// Term/Definition for flashcards, Text for quotes, Items for lists and
// Content for plain text.
type Block struct {
	Kind       Kind     `json:"type"`
	Term       string   `json:"term,omitempty"`
	Definition string   `json:"definition,omitempty"`
	Text       string   `json:"text,omitempty"`
	Items      []string `json:"items,omitempty"`
	Content    string   `json:"content,omitempty"`
}

// rule recognizes one block shape. Rules are tried in table order.
type rule struct {
	kind  Kind
	match func(lines []string) (Block, bool)
}

var rules = []rule{
	{KindFlashcard, matchFlashcard},
	{KindList, matchList},
	{KindQuote, matchQuote},
}

// Classify splits text into paragraphs and classifies each one, preserving order.
func Classify(text string) []Block {
	blocks := make([]Block, 0)
	for _, p := range paragraphs(text) {
		blocks = append(blocks, classifyParagraph(p))
	}
	return blocks
}

func classifyParagraph(raw []string) Block {
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}

	for _, r := range rules {
		if b, ok := r.match(lines); ok {
			return b
		}
	}
	return Block{Kind: KindText, Content: strings.TrimSpace(strings.Join(raw, "\n"))}
}

// matchFlashcard accepts a single "term: definition" or "term - definition" line.
// The separator is the first ':' or '-' after the first character.
func matchFlashcard(lines []string) (Block, bool) {
	if len(lines) != 1 {
		return Block{}, false
	}
	line := lines[0]
	_, first := utf8.DecodeRuneInString(line)
	i := strings.IndexAny(line[first:], ":-")
	if i < 0 {
		return Block{}, false
	}
	i += first

	term := strings.TrimSpace(line[:i])
	definition := strings.TrimSpace(line[i+1:])
	if term == "" || definition == "" {
		return Block{}, false
	}
	return Block{Kind: KindFlashcard, Term: term, Definition: definition}, true
}

var bulletPattern = regexp.MustCompile(`^(?:[*•-]|\d+\.)\s+`)

// matchList accepts two or more lines that all start with a bullet marker.
func matchList(lines []string) (Block, bool) {
	if len(lines) < 2 {
		return Block{}, false
	}
	for _, l := range lines {
		if !bulletPattern.MatchString(l) {
			return Block{}, false
		}
	}

	items := make([]string, len(lines))
	for i, l := range lines {
		items[i] = strings.TrimSpace(bulletPattern.ReplaceAllString(l, ""))
	}
	return Block{Kind: KindList, Items: items}, true
}

// quotePairs lists the accepted opening/closing quotation marks.
var quotePairs = [][2]string{
	{`"`, `"`},
	{"“", "”"},
	{"„", "”"},
	{"„", "“"},
	{"«", "»"},
	{"'", "'"},
	{"‘", "’"},
	{"‚", "‘"},
}

// matchQuote accepts a single line wrapped in a matching pair of quotes.
// Quote marks inside the pair mean several fragments, which stay text.
func matchQuote(lines []string) (Block, bool) {
	if len(lines) != 1 {
		return Block{}, false
	}
	line := lines[0]
	for _, q := range quotePairs {
		if len(line) < len(q[0])+len(q[1]) {
			continue
		}
		if !strings.HasPrefix(line, q[0]) || !strings.HasSuffix(line, q[1]) {
			continue
		}
		inner := strings.TrimSpace(line[len(q[0]) : len(line)-len(q[1])])
		if inner == "" || containsQuoteMark(inner) {
			continue
		}
		return Block{Kind: KindQuote, Text: inner}, true
	}
	return Block{}, false
}

func containsQuoteMark(s string) bool {
	for _, q := range quotePairs {
		if strings.Contains(s, q[0]) || strings.Contains(s, q[1]) {
			return true
		}
	}
	return false
}
