// Package notoo is the composition root of the notoo note taker.
//
// It connects the core domain (notes, folders, languages) with the storage
// adapters and re-exports the functional options used to configure them.
//
// Notes are free-form text, images or both. The parser package classifies
// note text into flashcards, quotes, lists and plain text, and derives a
// deck of study cards that the study package walks through.
//
// Usage:
//
//	svc, err := notoo.New("./notes",
//		notoo.WithLogger(logger),
//	)
//
//	note, err := svc.CreateNote(ctx, core.Draft{Text: "Hund - Dog", Folder: "Niemiecki"})
//	cards := notoo.Flashcards(note)
package notoo
