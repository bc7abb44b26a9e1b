// Package core holds the note domain: notes, folders, anchors and the
// language table, plus the Service that persists them through a Store.
package core

import (
	"time"

	"github.com/google/uuid"
)

// NoteType governs which field of a Note carries the text to parse.
type NoteType string

const (
	TypeText      NoteType = "text"
	TypeImage     NoteType = "image"
	TypeMixed     NoteType = "mixed"
	TypeVocabList NoteType = "vocab_list"
)

// Valid reports whether t is one of the known note types.
func (t NoteType) Valid() bool {
	switch t {
	case TypeText, TypeImage, TypeMixed, TypeVocabList:
		return true
	}
	return false
}

// HasImage reports whether notes of this type carry an image reference in Content.
func (t NoteType) HasImage() bool {
	return t == TypeImage || t == TypeMixed
}

// Anchor is the display value object ("memory anchor") attached to a note.
type Anchor struct {
	Emoji string `json:"emoji" yaml:"emoji"`
	Color string `json:"color" yaml:"color"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Palette of memory anchors offered to the user.
var (
	AnchorRed    = Anchor{Emoji: "🔴", Color: "#FF453A", Name: "RED"}
	AnchorBlue   = Anchor{Emoji: "🔵", Color: "#0A84FF", Name: "BLUE"}
	AnchorGreen  = Anchor{Emoji: "🟢", Color: "#32D74B", Name: "GREEN"}
	AnchorPurple = Anchor{Emoji: "🟣", Color: "#AF52DE", Name: "PURPLE"}
	AnchorYellow = Anchor{Emoji: "🟡", Color: "#FFD60A", Name: "YELLOW"}

	DefaultAnchor = AnchorBlue
)

// Anchors returns the palette in display order.
func Anchors() []Anchor {
	return []Anchor{AnchorRed, AnchorBlue, AnchorGreen, AnchorPurple, AnchorYellow}
}

// AnchorByName looks up a palette entry by its name (case-sensitive, e.g. "RED").
func AnchorByName(name string) (Anchor, bool) {
	for _, a := range Anchors() {
		if a.Name == name {
			return a, true
		}
	}
	return Anchor{}, false
}

// Note is the central entity of the domain.
// Timestamps are Unix milliseconds.
type Note struct {
	ID                 string   `json:"id"`
	Content            string   `json:"content"`
	TextContent        string   `json:"textContent,omitempty"`
	CreatedAt          int64    `json:"createdAt"`
	UpdatedAt          int64    `json:"updatedAt,omitempty"`
	Folder             string   `json:"folder"`
	Type               NoteType `json:"type"`
	Anchor             Anchor   `json:"anchor"`
	TargetLanguageCode string   `json:"targetLanguageCode,omitempty"`
}

// Draft is the user input used to create a note.
type Draft struct {
	Text   string
	Image  string // stored media path, empty when the note has no image
	Folder string
	Anchor *Anchor
}

// NotePatch is a partial update. Nil fields are left untouched.
type NotePatch struct {
	Content            *string
	TextContent        *string
	Folder             *string
	TargetLanguageCode *string
}

// EventType represents the type of change in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of a store key.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Key
}

// NewNote builds a note from a draft. The type is inferred from the presence
// of an image and text: image+text is mixed, image alone is image, anything
// else is text.
func NewNote(d Draft, now time.Time) (Note, error) {
	text := d.Text
	if isBlank(text) && d.Image == "" {
		return Note{}, ErrEmptyNote
	}

	folder := trimSpace(d.Folder)
	if folder == "" {
		folder = FolderUncategorized
	}

	anchor := DefaultAnchor
	if d.Anchor != nil {
		anchor = *d.Anchor
	}

	n := Note{
		ID:        uuid.NewString(),
		CreatedAt: now.UnixMilli(),
		Folder:    folder,
		Anchor:    anchor,
	}

	switch {
	case d.Image != "" && text != "":
		n.Type = TypeMixed
		n.Content = d.Image
		n.TextContent = text
	case d.Image != "":
		n.Type = TypeImage
		n.Content = d.Image
	default:
		n.Type = TypeText
		n.Content = text
		n.TextContent = text
	}

	return n, nil
}

// EditableText returns the text an editor should show for the note.
func EditableText(n Note) string {
	switch n.Type {
	case TypeImage, TypeMixed:
		return n.TextContent
	case TypeVocabList:
		if n.TextContent != "" {
			return n.TextContent
		}
		return n.Content
	default:
		return n.Content
	}
}

// TextPatch returns the patch that stores edited text in the field editing targets:
// TextContent for image, mixed and vocabulary notes, Content otherwise.
func TextPatch(n Note, text string) NotePatch {
	if n.Type == TypeText {
		return NotePatch{Content: &text}
	}
	return NotePatch{TextContent: &text}
}
