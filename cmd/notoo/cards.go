package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aretw0/notoo/pkg/parser"
)

var cardsJSON bool

var cardsCmd = &cobra.Command{
	Use:   "cards [id]",
	Short: "Print the flashcards generated from a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		svc := openService(true)
		note := findNote(ctx, svc, args[0])
		cards := parser.Generate(note)

		if cardsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(cards); err != nil {
				fatal("Error encoding cards", err)
			}
			return
		}

		if len(cards) == 0 {
			fmt.Println("Not enough structure found to build flashcards.")
			return
		}
		front := color.New(color.Bold).SprintFunc()
		for i, c := range cards {
			fmt.Printf("%3d. %s %s → %s\n", i+1, c.Anchor.Emoji, front(c.Front), c.Back)
		}
	},
}

func init() {
	cardsCmd.Flags().BoolVar(&cardsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(cardsCmd)
}
