package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notoo"
	"github.com/aretw0/notoo/pkg/core"
)

var (
	verbose  bool
	storeDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notoo",
	Short: "Notes that turn into flashcards",
	Long: `notoo keeps short text and image notes sorted in folders.
Vocabulary written as "term - definition" lines, headers and bullet lists
becomes a deck of flashcards you can study from the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storeDir, "store", "", "Store directory (default: $NOTOO_STORE, a store above the working directory, or ~/.notoo)")
}

// storePath resolves the store directory or exits.
func storePath() string {
	path, err := notoo.ResolveStorePath(storeDir)
	if err != nil {
		fatal("Error locating store", err)
	}
	return path
}

// openService opens the store. Read-only commands never create it.
func openService(readOnly bool) *core.Service {
	svc, err := notoo.New(storePath(),
		notoo.WithReadOnly(readOnly),
		notoo.WithLogger(slog.Default()),
	)
	if err != nil {
		fatal("Error opening store", err)
	}
	return svc
}

// findNote resolves a full ID or an unambiguous ID prefix.
func findNote(ctx context.Context, svc *core.Service, ref string) core.Note {
	n, err := svc.GetNote(ctx, ref)
	if err == nil {
		return n
	}

	notes, lerr := svc.ListNotes(ctx, core.Filter{})
	if lerr != nil {
		fatal("Error listing notes", lerr)
	}
	var matches []core.Note
	for _, candidate := range notes {
		if ref != "" && strings.HasPrefix(candidate.ID, ref) {
			matches = append(matches, candidate)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0]
	case 0:
		fatal("Error finding note", err)
	default:
		fatal("Error finding note", fmt.Errorf("prefix %q matches %d notes", ref, len(matches)))
	}
	return core.Note{}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// firstLine returns the first non-empty line of s, cut to max runes.
func firstLine(s string, max int) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if r := []rune(line); len(r) > max {
			return string(r[:max-1]) + "…"
		}
		return line
	}
	return ""
}
