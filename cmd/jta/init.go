package main

import (
	"fmt"
	"os"

	"github.com/callummcdougall/jupyter-to-anki/internal/core"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Init new project",
	Long:  `Set up local directory with a default .jta/config file.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current working directory: %v\n", err)
			os.Exit(1)
		}
		config, err := core.InitConfigFromDirectory(cwd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error while initializing configuration: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Initialized project in %s\n", config.RootDirectory)
	},
}
