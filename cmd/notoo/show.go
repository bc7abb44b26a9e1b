package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aretw0/notoo/pkg/core"
	"github.com/aretw0/notoo/pkg/parser"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note with its text classified into blocks",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService(true)
		note := findNote(ctx, svc, args[0])
		blocks := parser.Classify(parser.SourceText(note))

		if showJSON {
			out := struct {
				Note     core.Note      `json:"note"`
				Language string         `json:"language"`
				Blocks   []parser.Block `json:"blocks"`
			}{note, svc.Language(note), blocks}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				fatal("Error encoding note", err)
			}
			return
		}

		printNoteHeader(note, svc.Language(note))
		for _, b := range blocks {
			fmt.Println()
			printBlock(b)
		}
	},
}

func printNoteHeader(n core.Note, lang string) {
	bold := color.New(color.Bold)
	bold.Printf("%s %s", n.Anchor.Emoji, n.Folder)
	fmt.Printf("  %s  %s  %s\n", n.Type, lang, time.UnixMilli(n.CreatedAt).Format("2006-01-02 15:04"))
	color.New(color.Faint).Println(n.ID)
	if n.Type.HasImage() {
		color.Magenta("image: %s", n.Content)
	}
}

func printBlock(b parser.Block) {
	switch b.Kind {
	case parser.KindFlashcard:
		term := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Printf("%s  %s\n", term(b.Term), b.Definition)
	case parser.KindQuote:
		color.New(color.FgYellow, color.Italic).Printf("“%s”\n", b.Text)
	case parser.KindList:
		bullet := color.GreenString("•")
		for _, item := range b.Items {
			fmt.Printf("%s %s\n", bullet, item)
		}
	default:
		fmt.Println(b.Content)
	}
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(showCmd)
}
