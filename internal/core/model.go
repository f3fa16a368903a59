package core

import (
	"strings"

	"github.com/callummcdougall/jupyter-to-anki/internal/flashcard"
	"github.com/callummcdougall/jupyter-to-anki/internal/helpers"
	"github.com/google/uuid"
)

// Note is a single card inside a deck.
type Note struct {
	// Stable identifier derived from the content
	GUID string `yaml:"guid" json:"guid"`
	// Index of the notebook cell
	Cell int `yaml:"cell" json:"cell"`
	// Fields in HTML in the order of the model fields
	Fields []string `yaml:"fields" json:"fields"`
	Tags   []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	URL    string   `yaml:"url,omitempty" json:"url,omitempty"`
}

// Model regroups the notes of the same kind (= Anki note type).
type Model struct {
	ID     int64    `yaml:"id" json:"id"`
	Name   string   `yaml:"name" json:"name"`
	Fields []string `yaml:"fields" json:"fields"`
	Notes  []*Note  `yaml:"notes" json:"notes"`
}

type Deck struct {
	ID          int64    `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Models      []*Model `yaml:"models" json:"models"`
}

// DeckID returns the identifier of a deck. The same name always gives the same ID.
func DeckID(name string) int64 {
	return helpers.NumericID(name)
}

// ModelID returns the identifier of the model used by cards of the given kind.
func ModelID(kind flashcard.Kind) int64 {
	return helpers.NumericID(string(kind) + "0")
}

// NoteGUID returns a deterministic identifier for a note so that
// reimporting an unchanged card updates the existing one.
func NoteGUID(deck string, kind flashcard.Kind, fields []string) string {
	name := deck + "\x1f" + string(kind) + "\x1f" + strings.Join(fields, "\x1f")
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

func NewDeck(name string) *Deck {
	return &Deck{
		ID:   DeckID(name),
		Name: name,
	}
}

// Model returns the model for the given kind, creating it if missing.
func (d *Deck) Model(kind flashcard.Kind) *Model {
	for _, model := range d.Models {
		if model.Name == string(kind) {
			return model
		}
	}
	model := &Model{
		ID:     ModelID(kind),
		Name:   string(kind),
		Fields: kind.FieldNames(),
	}
	d.Models = append(d.Models, model)
	return model
}

func (d *Deck) AddNote(kind flashcard.Kind, note *Note) {
	model := d.Model(kind)
	model.Notes = append(model.Notes, note)
}

// CountNotes returns the number of notes for all kinds.
func (d *Deck) CountNotes() int {
	count := 0
	for _, model := range d.Models {
		count += len(model.Notes)
	}
	return count
}

// AppendDescription adds a HTML fragment to the description.
func (d *Deck) AppendDescription(html string) {
	if html == "" {
		return
	}
	if d.Description != "" {
		d.Description += "\n"
	}
	d.Description += html
}

// Collection contains all decks generated from a notebook in the order they were first used.
type Collection struct {
	Decks []*Deck
}

func NewCollection() *Collection {
	return &Collection{}
}

// Deck returns the deck with the given name, or nil if missing.
func (c *Collection) Deck(name string) *Deck {
	for _, deck := range c.Decks {
		if deck.Name == name {
			return deck
		}
	}
	return nil
}

// GetOrCreateDeck returns the deck with the given name, creating it if missing.
func (c *Collection) GetOrCreateDeck(name string) *Deck {
	if deck := c.Deck(name); deck != nil {
		return deck
	}
	deck := NewDeck(name)
	c.Decks = append(c.Decks, deck)
	return deck
}

// CountNotes returns the number of notes for all decks.
func (c *Collection) CountNotes() int {
	count := 0
	for _, deck := range c.Decks {
		count += deck.CountNotes()
	}
	return count
}

// removeEmptyDecks drops the decks without notes (ex: a deck only containing headings).
func (c *Collection) removeEmptyDecks() {
	var result []*Deck
	for _, deck := range c.Decks {
		if deck.CountNotes() > 0 {
			result = append(result, deck)
		}
	}
	c.Decks = result
}
