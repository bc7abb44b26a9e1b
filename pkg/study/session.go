// Package study drives a flashcard review session.
package study

import (
	"github.com/aretw0/notoo/pkg/core"
	"github.com/aretw0/notoo/pkg/parser"
)

// State of a session.
type State string

const (
	StateIdle     State = "idle"
	StateStudying State = "studying"
	StateComplete State = "complete"
)

// Direction selects which side of a card is asked.
type Direction string

const (
	// ForeignToNative asks the card front (the foreign word).
	ForeignToNative Direction = "foreignToNative"
	// NativeToForeign asks the card back.
	NativeToForeign Direction = "nativeToForeign"
)

// Side is the text shown on one face of a card together with its language.
type Side struct {
	Text string
	Lang string
}

// Session walks a deck once. After the last card it is complete and must be
// restarted with a freshly generated deck.
type Session struct {
	foreign string
	native  string

	cards     []parser.Flashcard
	index     int
	flipped   bool
	direction Direction
	state     State
	known     int
	unknown   int
}

// NewSession creates an idle session for a note written in the given foreign
// language, answered in the native one.
func NewSession(foreign, native string) *Session {
	if native == "" {
		native = core.LanguagePolish
	}
	if foreign == "" {
		foreign = native
	}
	return &Session{
		foreign:   foreign,
		native:    native,
		direction: ForeignToNative,
		state:     StateIdle,
	}
}

// ForNote creates an idle session using the language table to resolve the note language.
func ForNote(n core.Note, languages *core.LanguageTable) *Session {
	return NewSession(languages.Resolve(n), languages.Native())
}

// Start begins a session on cards. An empty deck means the note has not
// enough structure and the session stays idle.
func (s *Session) Start(cards []parser.Flashcard) error {
	if len(cards) == 0 {
		return core.ErrInsufficientStructure
	}
	s.cards = cards
	s.index = 0
	s.flipped = false
	s.direction = ForeignToNative
	s.state = StateStudying
	s.known = 0
	s.unknown = 0
	return nil
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Direction returns the current direction.
func (s *Session) Direction() Direction { return s.direction }

// Flipped reports whether the answer side is showing.
func (s *Session) Flipped() bool { return s.flipped }

// Index returns the position of the current card.
func (s *Session) Index() int { return s.index }

// Len returns the deck size.
func (s *Session) Len() int { return len(s.cards) }

// Tally returns how many cards were marked known and unknown.
func (s *Session) Tally() (known, unknown int) { return s.known, s.unknown }

// Card returns the current card.
func (s *Session) Card() (parser.Flashcard, error) {
	if s.state != StateStudying {
		return parser.Flashcard{}, core.ErrSessionInactive
	}
	return s.cards[s.index], nil
}

// Flip turns the current card over.
func (s *Session) Flip() error {
	if s.state != StateStudying {
		return core.ErrSessionInactive
	}
	s.flipped = !s.flipped
	return nil
}

// Next records the answer for the current card and moves on. Moving past the
// last card completes the session.
func (s *Session) Next(known bool) error {
	if s.state != StateStudying {
		return core.ErrSessionInactive
	}
	if known {
		s.known++
	} else {
		s.unknown++
	}
	s.flipped = false

	if s.index < len(s.cards)-1 {
		s.index++
		return nil
	}
	s.index = 0
	s.state = StateComplete
	return nil
}

// ToggleDirection swaps the asked side and shows the question again.
func (s *Session) ToggleDirection() {
	if s.direction == ForeignToNative {
		s.direction = NativeToForeign
	} else {
		s.direction = ForeignToNative
	}
	s.flipped = false
}

// Front returns the question side of the current card.
func (s *Session) Front() (Side, error) {
	c, err := s.Card()
	if err != nil {
		return Side{}, err
	}
	if s.direction == ForeignToNative {
		return Side{Text: c.Front, Lang: s.foreign}, nil
	}
	return Side{Text: c.Back, Lang: s.native}, nil
}

// Back returns the answer side of the current card.
func (s *Session) Back() (Side, error) {
	c, err := s.Card()
	if err != nil {
		return Side{}, err
	}
	if s.direction == ForeignToNative {
		return Side{Text: c.Back, Lang: s.native}, nil
	}
	return Side{Text: c.Front, Lang: s.foreign}, nil
}

// ExpectedResponseLanguage is the language the answer is given in.
func (s *Session) ExpectedResponseLanguage() string {
	if s.direction == ForeignToNative {
		return s.native
	}
	return s.foreign
}
