package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notoo/internal/platform"
	"github.com/aretw0/notoo/pkg/core"
	"github.com/aretw0/notoo/pkg/media"
)

var (
	addImage  string
	addFolder string
	addAnchor string
)

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add a note",
	Long: `Add creates a note from the given text, an image, or both.
Pass "-" as text to read it from stdin. The image is copied into the store.`,
	Run: func(cmd *cobra.Command, args []string) {
		text := strings.Join(args, " ")
		if text == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Error reading stdin", err)
			}
			text = string(data)
		}

		draft := core.Draft{Text: text, Folder: addFolder}
		if addAnchor != "" {
			anchor, ok := core.AnchorByName(strings.ToUpper(addAnchor))
			if !ok {
				fatal("Error parsing anchor", fmt.Errorf("unknown anchor %q", addAnchor))
			}
			draft.Anchor = &anchor
		}

		path := storePath()
		svc := openService(false)
		lib := media.NewLibrary(platform.MediaDir(path), slog.Default())

		note, err := createNote(context.Background(), svc, lib, draft, addImage)
		if err != nil {
			fatal("Error creating note", err)
		}

		fmt.Printf("Note created: %s (%s, %s)\n", note.ID, note.Type, note.Folder)
	},
}

// createNote imports image (if any) and stores the note. The imported copy is
// removed again when the note cannot be stored.
func createNote(ctx context.Context, svc *core.Service, lib *media.Library, draft core.Draft, image string) (core.Note, error) {
	if image != "" {
		saved, err := lib.Save(image)
		if err != nil {
			return core.Note{}, err
		}
		draft.Image = saved
	}

	note, err := svc.CreateNote(ctx, draft)
	if err != nil {
		if draft.Image != "" {
			if derr := lib.Delete(draft.Image); derr != nil {
				slog.Warn("image left behind", "path", draft.Image, "error", derr)
			}
		}
		return core.Note{}, err
	}
	return note, nil
}

func init() {
	addCmd.Flags().StringVar(&addImage, "image", "", "Image file to attach")
	addCmd.Flags().StringVarP(&addFolder, "folder", "f", "", "Folder (default Uncategorized)")
	addCmd.Flags().StringVarP(&addAnchor, "anchor", "a", "", "Memory anchor: red, blue, green, purple or yellow")
	rootCmd.AddCommand(addCmd)
}
