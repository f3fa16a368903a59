package main

import (
	"fmt"
	"os"

	"github.com/callummcdougall/jupyter-to-anki/internal/core"
	"github.com/callummcdougall/jupyter-to-anki/internal/medias"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint <notebook>",
	Short: "Lint",
	Long:  `Convert the cards of a notebook and print them without writing any file.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		collection, warnings, err := convert(args[0], medias.NewMemoryStore(), core.BuildOptions{
			Sanitize: core.CurrentConfig().ConfigFile.Render.Sanitize,
		})
		if err != nil {
			exitOnError(err)
		}
		fmt.Print(FormatCards(collection))
		printWarnings(os.Stdout, warnings)
	},
}
