package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/notoo/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print changes of the store as they happen",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		svc := openService(true)
		events, err := svc.Watch(ctx)
		if err != nil {
			fatal("Error starting watcher", err)
		}

		source := lifecycle.NewSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("Error starting event source", err)
		}

		fmt.Println("Watching for changes (Ctrl+C to stop)...")
		for e := range source.Events() {
			fmt.Printf("%s %s\n", time.Now().Format("15:04:05"), e)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
