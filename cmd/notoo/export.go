package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notoo/pkg/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export a note as Markdown with YAML frontmatter",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService(true)
		note := findNote(ctx, svc, args[0])

		path, err := export.Write(exportOut, note, svc.Language(note))
		if err != nil {
			fatal("Error exporting note", err)
		}
		fmt.Printf("Note exported: %s\n", path)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "Output directory")
	rootCmd.AddCommand(exportCmd)
}
