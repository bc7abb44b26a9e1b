package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "Manage folders",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		foldersListCmd.Run(cmd, args)
	},
}

var foldersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List folders",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService(true)
		folders, err := svc.Folders(context.Background())
		if err != nil {
			fatal("Error listing folders", err)
		}
		langs := svc.Languages()
		for _, f := range folders {
			if code, ok := langs.CodeForFolder(f); ok {
				fmt.Printf("%s (%s)\n", f, code)
				continue
			}
			fmt.Println(f)
		}
	},
}

var foldersAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a folder",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService(false)
		if err := svc.AddFolder(context.Background(), args[0]); err != nil {
			fatal("Error adding folder", err)
		}
		fmt.Printf("Folder added: %s\n", args[0])
	},
}

var foldersDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a folder, moving its notes to Study",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService(false)
		if err := svc.DeleteFolder(context.Background(), args[0]); err != nil {
			fatal("Error deleting folder", err)
		}
		fmt.Printf("Folder deleted: %s\n", args[0])
	},
}

func init() {
	foldersCmd.AddCommand(foldersListCmd, foldersAddCmd, foldersDeleteCmd)
	rootCmd.AddCommand(foldersCmd)
}
