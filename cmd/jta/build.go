package main

import (
	"fmt"
	"os"

	"github.com/callummcdougall/jupyter-to-anki/internal/core"
	"github.com/spf13/cobra"
)

var startCell int
var limit int
var dryRun bool

func init() {
	buildCmd.Flags().IntVarP(&startCell, "start", "s", 0, "index of the first cell to convert")
	buildCmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum number of cards to convert (0 = all)")
	buildCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "convert without writing any file")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build <notebook>",
	Short: "Build decks",
	Long:  `Convert the cards of a notebook and export one file per deck.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := core.CurrentConfig().SetDryRun(dryRun)
		store, err := config.MediaStore()
		if err != nil {
			exitOnError(err)
		}

		collection, warnings, err := convert(args[0], store, core.BuildOptions{
			StartCell: startCell,
			Limit:     limit,
			Sanitize:  config.ConfigFile.Render.Sanitize,
		})
		if err != nil {
			exitOnError(err)
		}

		var paths []string
		if !config.DryRun {
			paths, err = core.Export(collection, args[0], config.ExportOptions(args[0]))
			if err != nil {
				exitOnError(err)
			}
		}
		fmt.Print(FormatSummary(collection, paths))
		printWarnings(os.Stdout, warnings)
	},
}
