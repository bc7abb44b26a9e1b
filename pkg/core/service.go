package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
)

// ServiceConfig holds the collaborators of a Service.
type ServiceConfig struct {
	Logger    *slog.Logger
	Languages *LanguageTable
	Clock     func() time.Time
}

// Service handles the business logic for notes and folders.
// Every mutation is a read-modify-write of a whole collection, serialized by mu.
type Service struct {
	store     Store
	logger    *slog.Logger
	languages *LanguageTable
	now       func() time.Time

	mu sync.RWMutex
}

// NewService creates a new Service.
func NewService(store Store, cfg ServiceConfig) *Service {
	s := &Service{
		store:     store,
		logger:    cfg.Logger,
		languages: cfg.Languages,
		now:       cfg.Clock,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.languages == nil {
		s.languages = DefaultLanguageTable()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Languages returns the language table used by the service.
func (s *Service) Languages() *LanguageTable {
	return s.languages
}

// Language resolves the foreign language of a note.
func (s *Service) Language(n Note) string {
	return s.languages.Resolve(n)
}

// Filter narrows ListNotes.
type Filter struct {
	// Folder is either an exact folder name or a doublestar glob ("Nie*", "{Study,Angielski}").
	Folder string
	// Search matches case-insensitively against Content and TextContent.
	Search string
}

// --- Notes ---

// ListNotes returns the notes matching the filter, newest first.
func (s *Service) ListNotes(ctx context.Context, f Filter) ([]Note, error) {
	s.mu.RLock()
	notes, err := s.loadNotes(ctx)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	if f.Folder == "" && f.Search == "" {
		return notes, nil
	}

	if f.Folder != "" && !doublestar.ValidatePattern(f.Folder) {
		return nil, fmt.Errorf("invalid folder pattern %q: %w", f.Folder, doublestar.ErrBadPattern)
	}

	fold := cases.Fold()
	query := fold.String(f.Search)

	var out []Note
	for _, n := range notes {
		if f.Folder != "" {
			ok, err := doublestar.Match(f.Folder, n.Folder)
			if err != nil {
				return nil, fmt.Errorf("invalid folder pattern %q: %w", f.Folder, err)
			}
			if !ok {
				continue
			}
		}
		if query != "" {
			if !strings.Contains(fold.String(n.Content), query) &&
				!strings.Contains(fold.String(n.TextContent), query) {
				continue
			}
		}
		out = append(out, n)
	}
	return out, nil
}

// GetNote retrieves a note by ID.
func (s *Service) GetNote(ctx context.Context, id string) (Note, error) {
	if id == "" {
		return Note{}, ErrEmptyID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes, err := s.loadNotes(ctx)
	if err != nil {
		return Note{}, err
	}
	for _, n := range notes {
		if n.ID == id {
			return n, nil
		}
	}
	return Note{}, fmt.Errorf("note %s: %w", id, ErrNotFound)
}

// CreateNote builds a note from a draft, stores it and registers its folder.
func (s *Service) CreateNote(ctx context.Context, d Draft) (Note, error) {
	n, err := NewNote(d, s.now())
	if err != nil {
		return Note{}, err
	}
	if code, ok := s.languages.CodeForFolder(n.Folder); ok {
		n.TargetLanguageCode = code
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.loadNotes(ctx)
	if err != nil {
		return Note{}, err
	}
	notes = append([]Note{n}, notes...)
	sortNewestFirst(notes)

	if err := s.saveNotes(ctx, notes); err != nil {
		return Note{}, err
	}
	if err := s.ensureFolder(ctx, n.Folder); err != nil {
		return Note{}, err
	}

	s.logger.Debug("note created", "id", n.ID, "type", n.Type, "folder", n.Folder)
	return n, nil
}

// UpdateNote applies a partial update and bumps UpdatedAt.
// Moving a note into a language folder sets its TargetLanguageCode.
func (s *Service) UpdateNote(ctx context.Context, id string, p NotePatch) (Note, error) {
	if id == "" {
		return Note{}, ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.loadNotes(ctx)
	if err != nil {
		return Note{}, err
	}

	idx := -1
	for i := range notes {
		if notes[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Note{}, fmt.Errorf("note %s: %w", id, ErrNotFound)
	}

	n := notes[idx]
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.TextContent != nil {
		n.TextContent = *p.TextContent
	}
	if p.TargetLanguageCode != nil {
		n.TargetLanguageCode = *p.TargetLanguageCode
	}
	if p.Folder != nil {
		folder := trimSpace(*p.Folder)
		if folder == "" {
			folder = FolderUncategorized
		}
		if folder != n.Folder {
			n.Folder = folder
			if code, ok := s.languages.CodeForFolder(folder); ok {
				n.TargetLanguageCode = code
			}
		}
	}
	n.UpdatedAt = s.now().UnixMilli()
	notes[idx] = n

	if err := s.saveNotes(ctx, notes); err != nil {
		return Note{}, err
	}
	if err := s.ensureFolder(ctx, n.Folder); err != nil {
		return Note{}, err
	}

	s.logger.Debug("note updated", "id", n.ID)
	return n, nil
}

// EditNoteText replaces the text the note's editor targets.
func (s *Service) EditNoteText(ctx context.Context, id, text string) (Note, error) {
	n, err := s.GetNote(ctx, id)
	if err != nil {
		return Note{}, err
	}
	return s.UpdateNote(ctx, id, TextPatch(n, text))
}

// DeleteNote removes a note by ID.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.loadNotes(ctx)
	if err != nil {
		return err
	}
	kept := notes[:0]
	found := false
	for _, n := range notes {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return fmt.Errorf("note %s: %w", id, ErrNotFound)
	}

	s.logger.Debug("note deleted", "id", id)
	return s.saveNotes(ctx, kept)
}

// --- Folders ---

// Folders returns the folder list.
func (s *Service) Folders(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadFolders(ctx)
}

// AddFolder registers a new folder.
func (s *Service) AddFolder(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = trimSpace(name)
	if name == "" {
		return ErrInvalidFolder
	}
	folders, err := s.loadFolders(ctx)
	if err != nil {
		return err
	}
	if containsFolder(folders, name) {
		return fmt.Errorf("%q: %w", name, ErrFolderExists)
	}
	return s.saveFolders(ctx, append(folders, name))
}

// DeleteFolder removes a folder and moves its notes to the Study folder.
func (s *Service) DeleteFolder(ctx context.Context, name string) error {
	if IsProtectedFolder(name) {
		return fmt.Errorf("%q: %w", name, ErrProtectedFolder)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Notes move first so a failed write never leaves notes in a missing folder.
	folders, err := s.loadFolders(ctx)
	if err != nil {
		return err
	}
	notes, err := s.loadNotes(ctx)
	if err != nil {
		return err
	}

	now := s.now().UnixMilli()
	moved := 0
	for i := range notes {
		if notes[i].Folder == name {
			notes[i].Folder = FolderStudy
			notes[i].UpdatedAt = now
			moved++
		}
	}

	if moved > 0 {
		if err := s.saveNotes(ctx, notes); err != nil {
			return err
		}
	}

	kept := make([]string, 0, len(folders))
	for _, f := range folders {
		if f != name {
			kept = append(kept, f)
		}
	}
	if err := s.saveFolders(ctx, kept); err != nil {
		return err
	}

	s.logger.Debug("folder deleted", "folder", name, "moved", moved)
	return nil
}

// Watch observes changes in the store if supported.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx, "@notoo_*")
}

// --- persistence ---

// ensureFolder registers a folder if it is unknown. Caller holds mu.
func (s *Service) ensureFolder(ctx context.Context, name string) error {
	name = trimSpace(name)
	if name == "" {
		return nil
	}
	folders, err := s.loadFolders(ctx)
	if err != nil {
		return err
	}
	if containsFolder(folders, name) {
		return nil
	}
	return s.saveFolders(ctx, append(folders, name))
}

func (s *Service) loadNotes(ctx context.Context) ([]Note, error) {
	data, err := s.store.Get(ctx, NotesKey)
	if errors.Is(err, ErrNotFound) {
		return []Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}

	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		s.logger.Warn("notes are unreadable, starting empty", "key", NotesKey, "error", err)
		return []Note{}, nil
	}
	for i := range notes {
		if !notes[i].Type.Valid() {
			s.logger.Warn("unknown note type, reading as text", "id", notes[i].ID, "type", notes[i].Type)
			notes[i].Type = TypeText
		}
	}
	return notes, nil
}

func (s *Service) saveNotes(ctx context.Context, notes []Note) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	if err := s.store.Set(ctx, NotesKey, data); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	return nil
}

func (s *Service) loadFolders(ctx context.Context) ([]string, error) {
	data, err := s.store.Get(ctx, FoldersKey)
	if errors.Is(err, ErrNotFound) {
		return DefaultFolders(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read folders: %w", err)
	}

	var folders []string
	if err := json.Unmarshal(data, &folders); err != nil {
		s.logger.Warn("folders are unreadable, using defaults", "key", FoldersKey, "error", err)
		return DefaultFolders(), nil
	}
	return folders, nil
}

func (s *Service) saveFolders(ctx context.Context, folders []string) error {
	SortFolders(folders)
	data, err := json.Marshal(folders)
	if err != nil {
		return fmt.Errorf("failed to encode folders: %w", err)
	}
	if err := s.store.Set(ctx, FoldersKey, data); err != nil {
		return fmt.Errorf("failed to save folders: %w", err)
	}
	return nil
}

func sortNewestFirst(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt > notes[j].CreatedAt
	})
}
