package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/callummcdougall/jupyter-to-anki/internal/flashcard"
	"github.com/callummcdougall/jupyter-to-anki/internal/notebook"
)

// ErrMissingDeck is returned when a card is found before any deck was declared.
var ErrMissingDeck = errors.New("missing deck")

type BuildOptions struct {
	// Skip cards in cells before this index
	StartCell int
	// Maximum number of cards to convert (0 = no limit)
	Limit int
	// Remove any markup not generated by the renderer
	Sanitize bool
}

// Builder converts the markdown cells of a notebook into decks.
type Builder struct {
	options  BuildOptions
	warnings *flashcard.Warnings
	renderer *flashcard.Renderer
}

func NewBuilder(store flashcard.MediaStore, options BuildOptions) *Builder {
	warnings := flashcard.NewWarnings()
	renderer := flashcard.NewRenderer(store, warnings)
	renderer.OnScan(func(lines []string, regions *flashcard.Regions) {
		if !regions.Empty() {
			CurrentLogger().Dump("Regions", lines, regions)
		}
	})
	return &Builder{
		options:  options,
		warnings: warnings,
		renderer: renderer,
	}
}

// Warnings returns the problems found during the build that did not abort it.
func (b *Builder) Warnings() *flashcard.Warnings {
	return b.warnings
}

// Build converts every card of the notebook.
//
// Metadata cells (deck = ..., tags = ...) apply to the following cards.
// Heading cells are appended to the description of the current deck.
// Any other non-blank markdown cell is a card.
func (b *Builder) Build(nb *notebook.Notebook) (*Collection, error) {
	collection := NewCollection()

	var metadata Metadata
	count := 0
	missingTagsReported := false

	for _, cell := range nb.MarkdownCells() {
		if cell.Empty() {
			continue
		}
		if IsMetadataCell(cell.Lines) {
			metadata.Update(cell.Lines)
			CurrentLogger().Debugf("Cell %d: deck=%q tags=%q url=%q", cell.Index, metadata.Deck, metadata.Tags, metadata.URL)
			continue
		}
		if cell.Index < b.options.StartCell {
			CurrentLogger().Tracef("Cell %d: skipped", cell.Index)
			continue
		}

		if IsHeadingCell(cell.Lines) {
			if metadata.Deck != "" {
				deck := collection.GetOrCreateDeck(metadata.Deck)
				deck.AppendDescription(MarkdownToHTML(strings.Join(cell.Lines, "\n")))
			}
			continue
		}

		if metadata.Deck == "" {
			return nil, fmt.Errorf("%w: cell %d does not belong to a deck. Add a markdown cell containing the text \"deck = <name>\" before your cards", ErrMissingDeck, cell.Index)
		}
		if metadata.Tags == "" && !missingTagsReported {
			b.warnings.Addf("Reminder - some of your cards don't have tags. You can add tags by putting a markdown cell with \"tags = ...\" before your cards.")
			missingTagsReported = true
		}

		card, err := b.renderer.RenderCard(cell.Lines, flashcard.Attachments(cell.Attachments))
		if err != nil {
			return nil, fmt.Errorf("unable to convert cell %d: %w", cell.Index, err)
		}

		fields := card.Fields
		if b.options.Sanitize {
			for i, field := range fields {
				fields[i] = SanitizeField(field)
			}
		}

		note := &Note{
			GUID:   NoteGUID(metadata.Deck, card.Kind, fields),
			Cell:   cell.Index,
			Fields: fields,
			Tags:   metadata.TagList(),
			URL:    metadata.URL,
		}
		collection.GetOrCreateDeck(metadata.Deck).AddNote(card.Kind, note)
		CurrentLogger().Debugf("Cell %d: %s card added to deck %q", cell.Index, card.Kind, metadata.Deck)

		count++
		if b.options.Limit > 0 && count >= b.options.Limit {
			break
		}
	}

	collection.removeEmptyDecks()
	return collection, nil
}
