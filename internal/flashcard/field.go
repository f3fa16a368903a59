package flashcard

import (
	"sort"
	"strings"
)

// Line is a line of a field, remembering its position in the original field.
type Line struct {
	Index int
	Text  string
}

// Field is an ordered sequence of lines.
//
// Once a region is rendered, its lines are collapsed into a single line
// keeping the index of the first line of the region. Indices of the remaining
// lines never change, so that regions detected on the original lines remain valid.
type Field []Line

// NewField creates a field from raw lines.
func NewField(lines []string) Field {
	result := make(Field, len(lines))
	for i, line := range lines {
		result[i] = Line{Index: i, Text: line}
	}
	return result
}

// Lines returns the remaining lines whose original index is inside [start, end].
func (f Field) Lines(start, end int) []Line {
	var result []Line
	for _, line := range f {
		if line.Index >= start && line.Index <= end {
			result = append(result, line)
		}
	}
	return result
}

// Texts is similar to Lines but returns only the text.
func (f Field) Texts(start, end int) []string {
	var result []string
	for _, line := range f.Lines(start, end) {
		result = append(result, line.Text)
	}
	return result
}

// Strings returns the text of all lines.
func (f Field) Strings() []string {
	result := make([]string, len(f))
	for i, line := range f {
		result[i] = line.Text
	}
	return result
}

// Replacement substitutes all the lines of a span by a single line.
type Replacement struct {
	Span Span
	Text string
}

// Replace returns a new field where every replacement collapses its span.
// Replacements must not overlap.
func (f Field) Replace(replacements ...Replacement) Field {
	pending := make([]Replacement, len(replacements))
	copy(pending, replacements)
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Span.Start < pending[j].Span.Start
	})

	var result Field
	for _, line := range f {
		// Emit replacements starting at or before the current line
		for len(pending) > 0 && pending[0].Span.Start <= line.Index {
			result = append(result, Line{Index: pending[0].Span.Start, Text: pending[0].Text})
			pending = pending[1:]
		}
		if replacedBy(replacements, line.Index) {
			continue
		}
		result = append(result, line)
	}
	for _, replacement := range pending {
		result = append(result, Line{Index: replacement.Span.Start, Text: replacement.Text})
	}
	return result
}

func replacedBy(replacements []Replacement, index int) bool {
	for _, replacement := range replacements {
		if replacement.Span.Contains(index) {
			return true
		}
	}
	return false
}

// Join concatenates the lines using line breaks.
func (f Field) Join() string {
	return strings.Join(f.Strings(), LineBreak)
}
