package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notoo/pkg/core"
)

var (
	editText   string
	editFolder string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit the text or the folder of a note",
	Long: `Edit replaces the editable text of a note (the caption of image notes)
and/or moves it to another folder. Moving into a language folder sets the
note language.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		textSet := cmd.Flags().Changed("text")
		folderSet := cmd.Flags().Changed("folder")
		if !textSet && !folderSet {
			fatal("Nothing to edit", fmt.Errorf("use --text and/or --folder"))
		}

		ctx := context.Background()
		svc := openService(false)
		note := findNote(ctx, svc, args[0])

		patch := core.NotePatch{}
		if textSet {
			patch = core.TextPatch(note, editText)
		}
		if folderSet {
			patch.Folder = &editFolder
		}

		updated, err := svc.UpdateNote(ctx, note.ID, patch)
		if err != nil {
			fatal("Error updating note", err)
		}
		fmt.Printf("Note updated: %s (%s, %s)\n", updated.ID, updated.Folder, svc.Language(updated))
	},
}

func init() {
	editCmd.Flags().StringVar(&editText, "text", "", "New text")
	editCmd.Flags().StringVarP(&editFolder, "folder", "f", "", "New folder")
	rootCmd.AddCommand(editCmd)
}
