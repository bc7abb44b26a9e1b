package core_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/aretw0/notoo/pkg/core"
)

// MockStore implements core.Store in memory.
// It deliberately does NOT implement core.Watchable to test fallback/errors.
type MockStore struct {
	values map[string][]byte
	failOn string
}

func NewMockStore() *MockStore {
	return &MockStore{values: make(map[string][]byte)}
}

func (m *MockStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, core.ErrNotFound
	}
	return v, nil
}

func (m *MockStore) Set(ctx context.Context, key string, value []byte) error {
	if key == m.failOn {
		return errors.New("disk full")
	}
	m.values[key] = value
	return nil
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func (m *MockStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MockStore) Initialize(ctx context.Context) error { return nil }

// tickingClock returns a clock advancing one second per call.
func tickingClock() func() time.Time {
	t := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newService(store core.Store) *core.Service {
	return core.NewService(store, core.ServiceConfig{Clock: tickingClock()})
}

func TestService_CRUD(t *testing.T) {
	service := newService(NewMockStore())
	ctx := context.TODO()

	// 1. Create
	first, err := service.CreateNote(ctx, core.Draft{Text: "Hund - Dog", Folder: "Niemiecki"})
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	if first.Type != core.TypeText {
		t.Errorf("expected text note, got %s", first.Type)
	}

	// 2. Get
	got, err := service.GetNote(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if got.Content != "Hund - Dog" {
		t.Errorf("expected content 'Hund - Dog', got '%s'", got.Content)
	}

	// 3. List, newest first
	second, _ := service.CreateNote(ctx, core.Draft{Text: "second"})
	notes, err := service.ListNotes(ctx, core.Filter{})
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != second.ID {
		t.Errorf("expected newest note first")
	}

	// 4. Delete
	if err := service.DeleteNote(ctx, first.ID); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	_, err = service.GetNote(ctx, first.ID)
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound after deletion, got %v", err)
	}
	if err := service.DeleteNote(ctx, first.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestService_CreateNote_RegistersFolder(t *testing.T) {
	service := newService(NewMockStore())
	ctx := context.TODO()

	if _, err := service.CreateNote(ctx, core.Draft{Text: "x", Folder: "  Travel "}); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	folders, _ := service.Folders(ctx)
	want := []string{"Angielski", "Niemiecki", "Study", "Travel"}
	if len(folders) != len(want) {
		t.Fatalf("expected %v, got %v", want, folders)
	}
	for i := range want {
		if folders[i] != want[i] {
			t.Errorf("folder %d: expected %s, got %s", i, want[i], folders[i])
		}
	}
}

func TestService_CreateNote_Empty(t *testing.T) {
	service := newService(NewMockStore())
	_, err := service.CreateNote(context.TODO(), core.Draft{Text: "   "})
	if !errors.Is(err, core.ErrEmptyNote) {
		t.Errorf("expected ErrEmptyNote, got %v", err)
	}
}

func TestService_UpdateNote_FolderSetsLanguage(t *testing.T) {
	service := newService(NewMockStore())
	ctx := context.TODO()

	n, _ := service.CreateNote(ctx, core.Draft{Text: "Katze - Cat"})
	folder := "Niemiecki"
	updated, err := service.UpdateNote(ctx, n.ID, core.NotePatch{Folder: &folder})
	if err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}
	if updated.TargetLanguageCode != core.LanguageGerman {
		t.Errorf("expected %s, got %s", core.LanguageGerman, updated.TargetLanguageCode)
	}
	if updated.UpdatedAt <= n.CreatedAt {
		t.Errorf("expected UpdatedAt to move forward")
	}

	blank := "  "
	updated, _ = service.UpdateNote(ctx, n.ID, core.NotePatch{Folder: &blank})
	if updated.Folder != core.FolderUncategorized {
		t.Errorf("expected Uncategorized, got %s", updated.Folder)
	}
	if updated.TargetLanguageCode != core.LanguageGerman {
		t.Errorf("leaving a language folder keeps the code, got %s", updated.TargetLanguageCode)
	}
}

func TestService_EditNoteText(t *testing.T) {
	service := newService(NewMockStore())
	ctx := context.TODO()

	n, _ := service.CreateNote(ctx, core.Draft{Text: "caption", Image: "/media/image_1.jpg"})
	edited, err := service.EditNoteText(ctx, n.ID, "new caption")
	if err != nil {
		t.Fatalf("EditNoteText failed: %v", err)
	}
	if edited.Content != "/media/image_1.jpg" || edited.TextContent != "new caption" {
		t.Errorf("unexpected note after edit: %+v", edited)
	}
}

func TestService_Folders(t *testing.T) {
	service := newService(NewMockStore())
	ctx := context.TODO()

	folders, err := service.Folders(ctx)
	if err != nil {
		t.Fatalf("Folders failed: %v", err)
	}
	if len(folders) != 3 {
		t.Errorf("expected the 3 default folders, got %v", folders)
	}

	if err := service.AddFolder(ctx, "Ideas"); err != nil {
		t.Fatalf("AddFolder failed: %v", err)
	}
	if err := service.AddFolder(ctx, " Ideas "); !errors.Is(err, core.ErrFolderExists) {
		t.Errorf("expected ErrFolderExists, got %v", err)
	}
	if err := service.AddFolder(ctx, ""); !errors.Is(err, core.ErrInvalidFolder) {
		t.Errorf("expected ErrInvalidFolder, got %v", err)
	}
	if err := service.DeleteFolder(ctx, "Study"); !errors.Is(err, core.ErrProtectedFolder) {
		t.Errorf("expected ErrProtectedFolder, got %v", err)
	}

	n, _ := service.CreateNote(ctx, core.Draft{Text: "idea", Folder: "Ideas"})
	if err := service.DeleteFolder(ctx, "Ideas"); err != nil {
		t.Fatalf("DeleteFolder failed: %v", err)
	}
	moved, _ := service.GetNote(ctx, n.ID)
	if moved.Folder != core.FolderStudy {
		t.Errorf("expected note moved to Study, got %s", moved.Folder)
	}
	folders, _ = service.Folders(ctx)
	for _, f := range folders {
		if f == "Ideas" {
			t.Errorf("folder Ideas should be gone: %v", folders)
		}
	}
}

func TestService_DeleteFolder_NotesWriteFails(t *testing.T) {
	store := NewMockStore()
	service := newService(store)
	ctx := context.TODO()

	n, _ := service.CreateNote(ctx, core.Draft{Text: "idea", Folder: "Ideas"})
	store.failOn = core.NotesKey

	if err := service.DeleteFolder(ctx, "Ideas"); err == nil {
		t.Fatal("expected the write error to surface")
	}

	folders, _ := service.Folders(ctx)
	found := false
	for _, f := range folders {
		if f == "Ideas" {
			found = true
		}
	}
	if !found {
		t.Errorf("folder Ideas must survive a failed move, got %v", folders)
	}
	kept, _ := service.GetNote(ctx, n.ID)
	if kept.Folder != "Ideas" {
		t.Errorf("note should stay in Ideas, got %s", kept.Folder)
	}
}

func TestService_UnknownTypeReadsAsText(t *testing.T) {
	store := NewMockStore()
	store.values[core.NotesKey] = []byte(`[{"id":"n1","content":"Hund - Dog","folder":"Study","type":"sketch","createdAt":1}]`)
	service := newService(store)

	n, err := service.GetNote(context.TODO(), "n1")
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if n.Type != core.TypeText {
		t.Errorf("expected unknown type to read as text, got %q", n.Type)
	}
}

func TestService_ListNotes_Filter(t *testing.T) {
	service := newService(NewMockStore())
	ctx := context.TODO()

	_, _ = service.CreateNote(ctx, core.Draft{Text: "Hund - Dog", Folder: "Niemiecki"})
	_, _ = service.CreateNote(ctx, core.Draft{Text: "Dog - Pies", Folder: "Angielski"})
	_, _ = service.CreateNote(ctx, core.Draft{Text: "Groceries", Folder: "Study"})

	byGlob, err := service.ListNotes(ctx, core.Filter{Folder: "*ki"})
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(byGlob) != 2 {
		t.Errorf("expected 2 notes in *ki folders, got %d", len(byGlob))
	}

	bySearch, _ := service.ListNotes(ctx, core.Filter{Search: "DOG"})
	if len(bySearch) != 2 {
		t.Errorf("expected 2 notes matching DOG, got %d", len(bySearch))
	}

	both, _ := service.ListNotes(ctx, core.Filter{Folder: "Angielski", Search: "pies"})
	if len(both) != 1 {
		t.Errorf("expected 1 note, got %d", len(both))
	}

	if _, err := service.ListNotes(ctx, core.Filter{Folder: "[unclosed"}); err == nil {
		t.Error("expected error for a bad pattern")
	}
}

func TestService_CorruptData(t *testing.T) {
	store := NewMockStore()
	store.values[core.NotesKey] = []byte("{not json")
	store.values[core.FoldersKey] = []byte("42")
	service := newService(store)
	ctx := context.TODO()

	notes, err := service.ListNotes(ctx, core.Filter{})
	if err != nil || len(notes) != 0 {
		t.Errorf("expected an empty list without error, got %v, %v", notes, err)
	}
	folders, err := service.Folders(ctx)
	if err != nil || len(folders) != 3 {
		t.Errorf("expected default folders, got %v, %v", folders, err)
	}
}

func TestService_SaveFailure(t *testing.T) {
	store := NewMockStore()
	store.failOn = core.NotesKey
	service := newService(store)

	_, err := service.CreateNote(context.TODO(), core.Draft{Text: "x"})
	if err == nil {
		t.Fatal("expected the write error to surface")
	}
}

func TestService_Watch_Unsupported(t *testing.T) {
	service := newService(NewMockStore())
	if _, err := service.Watch(context.TODO()); err == nil {
		t.Fatal("expected error for non-watchable store")
	}
}
