package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToHTML(t *testing.T) {
	assert.Equal(t, "<p>Hello</p>", MarkdownToHTML("Hello"))

	html := MarkdownToHTML("# Goroutines\n\nLightweight *threads*.")
	assert.Contains(t, html, "<h1>Goroutines</h1>")
	assert.Contains(t, html, "<p>Lightweight <em>threads</em>.</p>")
}
