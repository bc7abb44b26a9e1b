package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/notoo/internal/platform"
	"github.com/aretw0/notoo/pkg/media"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long:  `Delete permanently removes a note and the image it owns in the store.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		path := storePath()
		svc := openService(false)
		note := findNote(ctx, svc, args[0])

		if err := svc.DeleteNote(ctx, note.ID); err != nil {
			fatal("Error deleting note", err)
		}

		if note.Type.HasImage() {
			lib := media.NewLibrary(platform.MediaDir(path), slog.Default())
			if lib.Contains(note.Content) {
				if err := lib.Delete(note.Content); err != nil {
					slog.Warn("image left behind", "path", note.Content, "error", err)
				}
			}
		}

		fmt.Printf("Note deleted: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
