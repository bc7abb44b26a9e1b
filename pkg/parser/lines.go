package parser

import (
	"strings"
	"unicode/utf8"
)

// splitLines splits text on '\n', dropping the '\r' of CRLF endings.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// nonBlankLines returns the trimmed non-blank lines of text, in order.
func nonBlankLines(text string) []string {
	var out []string
	for _, l := range splitLines(text) {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// paragraphs groups consecutive non-blank lines; blank lines separate groups.
func paragraphs(text string) [][]string {
	var (
		out     [][]string
		current []string
	)
	for _, l := range splitLines(text) {
		if isBlank(l) {
			if len(current) > 0 {
				out = append(out, current)
				current = nil
			}
			continue
		}
		current = append(current, l)
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}

// dropFirstRune removes the first character of s.
func dropFirstRune(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[size:]
}
