package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/callummcdougall/jupyter-to-anki/internal/core"
	"github.com/callummcdougall/jupyter-to-anki/internal/flashcard"
	"github.com/callummcdougall/jupyter-to-anki/internal/notebook"
	"github.com/fatih/color"
)

// Printed when the notebook cannot be decoded.
const invalidJSONHint = "Try restarting kernel, clearing all output, and saving, then running again."

// convert reads a notebook and builds its decks.
func convert(path string, store flashcard.MediaStore, options core.BuildOptions) (*core.Collection, *flashcard.Warnings, error) {
	nb, err := notebook.Read(path)
	if err != nil {
		return nil, nil, err
	}
	builder := core.NewBuilder(store, options)
	collection, err := builder.Build(nb)
	return collection, builder.Warnings(), err
}

// exitOnError prints the error with an optional hint and exits.
func exitOnError(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, notebook.ErrInvalidJSON) {
		fmt.Fprintln(os.Stderr, invalidJSONHint)
	}
	os.Exit(1)
}

// printWarnings outputs the collected warnings, if any.
func printWarnings(w io.Writer, warnings *flashcard.Warnings) {
	if warnings == nil {
		return
	}
	yellow := color.New(color.FgYellow)
	for _, message := range warnings.Messages() {
		yellow.Fprintf(w, "[WARNING] %s\n", message)
	}
}
