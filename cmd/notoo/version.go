package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notoo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notoo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notoo version %s\n", strings.TrimSpace(notoo.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
