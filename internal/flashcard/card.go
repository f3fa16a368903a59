package flashcard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/callummcdougall/jupyter-to-anki/pkg/text"
)

// Separators are lines starting with a dash.
const (
	SeparatorFrontBack = "-"
	SeparatorImage     = "-i"
	SeparatorHint      = "-h"
)

// A card contains at most a front/back separator and a hint separator.
const maxSeparators = 2

// ErrInvalidSeparators is returned when the separators of a card cannot be interpreted.
var ErrInvalidSeparators = errors.New("invalid separators")

// Kind determines the fields of a card.
type Kind string

const (
	// KindFront cards have only a front (and an optional hint).
	KindFront Kind = "front"
	// KindFrontBack cards have a front and a back separated by "-".
	KindFrontBack Kind = "front-back"
	// KindImage cards have a front and a back separated by "-i" and display the back as an illustration.
	KindImage Kind = "image"
)

// Kinds lists all supported kinds.
var Kinds = []Kind{KindFront, KindFrontBack, KindImage}

// HasBack returns if cards of this kind have a back field.
func (k Kind) HasBack() bool {
	return k == KindFrontBack || k == KindImage
}

// FieldNames returns the field names in the order fields are rendered.
func (k Kind) FieldNames() []string {
	if k.HasBack() {
		return []string{"Front", "Back", "Hint"}
	}
	return []string{"Front", "Hint"}
}

// Layout is a card split into the lines of its fields.
type Layout struct {
	Kind  Kind
	Front []string
	Back  []string
	Hint  []string
}

// Split splits the lines of a card using separator lines.
func Split(lines []string) (*Layout, error) {
	separators := make(map[string]int)
	count := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "-") {
			continue
		}
		count++
		switch trimmed {
		case SeparatorFrontBack, SeparatorImage, SeparatorHint:
		default:
			return nil, fmt.Errorf("%w: only %q (front/back), %q (image) and %q (hint) are allowed, found %q on line %d",
				ErrInvalidSeparators, SeparatorFrontBack, SeparatorImage, SeparatorHint, trimmed, i+1)
		}
		if _, ok := separators[trimmed]; ok {
			return nil, fmt.Errorf("%w: separator %q is present more than once", ErrInvalidSeparators, trimmed)
		}
		separators[trimmed] = i
	}
	if count > maxSeparators {
		return nil, fmt.Errorf("%w: at most %d separators are allowed, found %d", ErrInvalidSeparators, maxSeparators, count)
	}

	_, hasFrontBack := separators[SeparatorFrontBack]
	_, hasImage := separators[SeparatorImage]
	hint, hasHint := separators[SeparatorHint]
	if hasFrontBack && hasImage {
		return nil, fmt.Errorf("%w: %q and %q cannot be used in the same card", ErrInvalidSeparators, SeparatorFrontBack, SeparatorImage)
	}

	end := len(lines)
	if hasHint {
		end = hint
	}

	layout := &Layout{Kind: KindFront}
	back := -1
	if hasFrontBack {
		layout.Kind = KindFrontBack
		back = separators[SeparatorFrontBack]
	}
	if hasImage {
		layout.Kind = KindImage
		back = separators[SeparatorImage]
	}

	if back >= 0 {
		if hasHint && hint < back {
			return nil, fmt.Errorf("%w: %q must come after %q", ErrInvalidSeparators, SeparatorHint, lines[back])
		}
		layout.Front = trimSeparatorLines(lines[:back])
		layout.Back = trimSeparatorLines(lines[back+1 : end])
	} else {
		layout.Front = trimSeparatorLines(lines[:end])
	}
	if hasHint {
		layout.Hint = trimSeparatorLines(lines[hint+1:])
	}

	if len(layout.Front) == 0 {
		return nil, fmt.Errorf("%w: the front of the card is empty", ErrInvalidSeparators)
	}
	return layout, nil
}

// trimSeparatorLines drops the blank lines surrounding a separator.
func trimSeparatorLines(lines []string) []string {
	if len(lines) > 0 && text.IsBlank(lines[0]) {
		lines = lines[1:]
	}
	if len(lines) > 0 && text.IsBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Card is a rendered card.
type Card struct {
	Kind Kind
	// Fields in HTML in the order Front, Back (if any), Hint
	Fields []string
}

func (c *Card) Front() string {
	return c.Fields[0]
}

func (c *Card) Back() string {
	if !c.Kind.HasBack() {
		return ""
	}
	return c.Fields[1]
}

func (c *Card) Hint() string {
	return c.Fields[len(c.Fields)-1]
}

// Renderer converts the lines of cards into HTML.
type Renderer struct {
	store     MediaStore
	warnings  *Warnings
	listeners []func(lines []string, regions *Regions)
}

// NewRenderer creates a renderer saving images into the given store.
func NewRenderer(store MediaStore, warnings *Warnings) *Renderer {
	return &Renderer{
		store:    store,
		warnings: warnings,
	}
}

// OnScan registers a callback invoked every time regions are detected in a field.
func (r *Renderer) OnScan(fn func(lines []string, regions *Regions)) {
	r.listeners = append(r.listeners, fn)
}

func (r *Renderer) notifyListeners(lines []string, regions *Regions) {
	for _, fn := range r.listeners {
		fn(lines, regions)
	}
}

// RenderCard splits a card and renders every field.
func (r *Renderer) RenderCard(lines []string, attachments Attachments) (*Card, error) {
	layout, err := Split(lines)
	if err != nil {
		return nil, err
	}

	card := &Card{Kind: layout.Kind}
	fields := [][]string{layout.Front}
	if layout.Kind.HasBack() {
		fields = append(fields, layout.Back)
	}
	for _, lines := range fields {
		html, err := r.RenderField(lines, attachments)
		if err != nil {
			return nil, err
		}
		card.Fields = append(card.Fields, html)
	}

	// A missing hint is an empty field
	hint := ""
	if layout.Hint != nil {
		hint, err = r.RenderField(layout.Hint, attachments)
		if err != nil {
			return nil, err
		}
	}
	card.Fields = append(card.Fields, hint)
	return card, nil
}
