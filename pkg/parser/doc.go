// Package parser turns free-form note text into study material.
//
// Two independent, pure entry points are provided:
//
//   - Classify segments text into paragraphs and tags each one as a
//     flashcard, list, quote or plain text Block.
//   - Generate walks a note line by line and produces the front/back
//     Flashcards used by study mode.
//
// Neither function returns an error. Text without usable structure is
// absorbed into plain text blocks or skipped; an empty flashcard slice
// means the note did not contain enough structure to study.
package parser
