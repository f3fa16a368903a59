package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

type ExportOptions struct {
	Dir       string
	Format    string // yaml or json
	Overwrite bool
}

// ExportOptions returns the options to export the decks of the given notebook.
func (c *Config) ExportOptions(notebookPath string) ExportOptions {
	return ExportOptions{
		Dir:       c.ExportDir(notebookPath),
		Format:    c.ExportFormat(),
		Overwrite: c.ConfigFile.Export.Overwrite,
	}
}

// ExportPath determines the file to write a deck to.
// Ex: "notebook.ipynb" + deck "Go Basics" => "notebook_go-basics.yaml"
//
// When the file already exists and must not be overwritten, a numeric suffix is added
// (ex: "notebook_go-basics_01.yaml").
func ExportPath(options ExportOptions, notebookPath string, deckName string) string {
	stem := strings.TrimSuffix(filepath.Base(notebookPath), filepath.Ext(notebookPath))
	base := filepath.Join(options.Dir, stem+"_"+slug.Make(deckName))
	path := base + "." + options.Format
	if options.Overwrite || !fileExists(path) {
		return path
	}
	for counter := 1; ; counter++ {
		path = fmt.Sprintf("%s_%02d.%s", base, counter, options.Format)
		if !fileExists(path) {
			return path
		}
	}
}

// MarshalDeck serializes a deck in the given format.
func MarshalDeck(deck *Deck, format string) ([]byte, error) {
	switch format {
	case "", "yaml":
		return yaml.Marshal(deck)
	case "json":
		return json.MarshalIndent(deck, "", "  ")
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}

// Export writes every deck of the collection to its own file.
// The paths of the written files are returned in deck order.
func Export(collection *Collection, notebookPath string, options ExportOptions) ([]string, error) {
	if options.Format == "" {
		options.Format = "yaml"
	}
	if err := os.MkdirAll(options.Dir, 0755); err != nil {
		return nil, err
	}

	var paths []string
	for _, deck := range collection.Decks {
		data, err := MarshalDeck(deck, options.Format)
		if err != nil {
			return nil, err
		}
		path := ExportPath(options, notebookPath, deck.Name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("unable to export deck %q: %w", deck.Name, err)
		}
		CurrentLogger().Infof("Deck %q exported to %s", deck.Name, path)
		paths = append(paths, path)
	}
	return paths, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
