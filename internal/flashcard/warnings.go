package flashcard

import "fmt"

// Warnings collects non-fatal problems found while rendering cards.
type Warnings struct {
	messages []string
}

// NewWarnings creates an empty collector.
func NewWarnings() *Warnings {
	return &Warnings{}
}

// Addf appends a new warning.
func (w *Warnings) Addf(format string, args ...any) {
	w.messages = append(w.messages, fmt.Sprintf(format, args...))
}

// Messages returns all warnings in the order they were added.
func (w *Warnings) Messages() []string {
	return w.messages
}

// Len returns the number of warnings.
func (w *Warnings) Len() int {
	return len(w.messages)
}
