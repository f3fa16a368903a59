package main

import (
	"fmt"
	"strings"

	"github.com/callummcdougall/jupyter-to-anki/internal/core"
)

// FormatSummary describes the decks of a collection.
func FormatSummary(collection *core.Collection, paths []string) string {
	var sb strings.Builder
	for i, deck := range collection.Decks {
		fmt.Fprintf(&sb, "%s: %d cards", deck.Name, deck.CountNotes())
		if i < len(paths) {
			fmt.Fprintf(&sb, " => %s", paths[i])
		}
		sb.WriteString("\n")
		for _, model := range deck.Models {
			fmt.Fprintf(&sb, "  %12s: %d\n", model.Name, len(model.Notes))
		}
	}
	fmt.Fprintf(&sb, "%d cards in %d decks\n", collection.CountNotes(), len(collection.Decks))
	return sb.String()
}

// FormatCards lists every card with its fields.
func FormatCards(collection *core.Collection) string {
	var sb strings.Builder
	for _, deck := range collection.Decks {
		for _, model := range deck.Models {
			for _, note := range model.Notes {
				fmt.Fprintf(&sb, "[%s] cell %d (%s)\n", deck.Name, note.Cell, model.Name)
				for i, field := range note.Fields {
					fmt.Fprintf(&sb, "  %s: %s\n", model.Fields[i], field)
				}
			}
		}
	}
	return sb.String()
}
