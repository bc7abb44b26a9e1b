package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aretw0/notoo/pkg/core"
)

var (
	listJSON   bool
	listFolder string
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService(true)

		notes, err := svc.ListNotes(context.Background(), core.Filter{
			Folder: listFolder,
			Search: listSearch,
		})
		if err != nil {
			fatal("Error listing notes", err)
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(notes); err != nil {
				fatal("Error encoding notes", err)
			}
			return
		}

		if len(notes) == 0 {
			fmt.Println("No notes.")
			return
		}

		folder := color.New(color.FgCyan).SprintFunc()
		for _, n := range notes {
			fmt.Printf("%s %s %s %-10s %s\n",
				shortID(n.ID),
				n.Anchor.Emoji,
				folder(fmt.Sprintf("%-12s", n.Folder)),
				n.Type,
				firstLine(core.EditableText(n), 50),
			)
		}
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().StringVarP(&listFolder, "folder", "f", "", "Filter by folder name or glob (e.g. 'Nie*')")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive text search")
	rootCmd.AddCommand(listCmd)
}
