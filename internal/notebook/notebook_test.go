package notebook

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	nb, err := Read(filepath.Join("testdata", "sample.ipynb"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("testdata", "sample.ipynb"), nb.Path)
	require.Len(t, nb.Cells, 5)

	// Source as an array
	assert.Equal(t, &Cell{
		Index: 0,
		Type:  CellTypeMarkdown,
		Lines: []string{"deck = Go", "tags = go basics"},
	}, nb.Cells[0])

	// Source as a string
	assert.Equal(t, []string{"# Goroutines", "", "Lightweight threads."}, nb.Cells[1].Lines)

	// Code cells are cleaned too
	assert.Equal(t, CellTypeCode, nb.Cells[2].Type)
	assert.Equal(t, []string{"print(1 &lt; 2)"}, nb.Cells[2].Lines)

	// HTML tags are stripped and attachments are kept
	card := nb.Cells[3]
	assert.Equal(t, []string{"Who is the gopher?", "-i", "![a.png](attachment:a.png)"}, card.Lines)
	assert.Equal(t, map[string]map[string]string{
		"a.png": {"image/png": "aGVsbG8="},
	}, card.Attachments)

	// Empty source
	assert.Equal(t, CellTypeRaw, nb.Cells[4].Type)
	assert.Empty(t, nb.Cells[4].Lines)
	assert.True(t, nb.Cells[4].Empty())
}

func TestMarkdownCells(t *testing.T) {
	nb, err := Read(filepath.Join("testdata", "sample.ipynb"))
	require.NoError(t, err)

	cells := nb.MarkdownCells()
	require.Len(t, cells, 3)
	assert.Equal(t, 0, cells[0].Index)
	assert.Equal(t, 1, cells[1].Index)
	assert.Equal(t, 3, cells[2].Index)
}

func TestReadInvalidJSON(t *testing.T) {
	_, err := Read(filepath.Join("testdata", "broken.ipynb"))
	assert.ErrorIs(t, err, ErrInvalidJSON)

	_, err = Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrInvalidJSON)

	_, err = Parse(strings.NewReader(`{"cells": [`))
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join("testdata", "missing.ipynb"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidJSON)
}

func TestParseAttachmentsAsArray(t *testing.T) {
	nb, err := Parse(strings.NewReader(`{
		"cells": [{
			"cell_type": "markdown",
			"source": "![a.png](attachment:a.png)",
			"attachments": {"a.png": {"image/png": ["aGVs", "bG8="], "application/json": {"ignored": true}}}
		}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]string{
		"a.png": {"image/png": "aGVsbG8="},
	}, nb.Cells[0].Attachments)
}

func TestClean(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain text",
			input:    "Hello world",
			expected: "Hello world",
		},
		{
			name:     "Tags are stripped",
			input:    `a <b>bold</b> and <span class="x">span</span>`,
			expected: "a bold and span",
		},
		{
			name:     "Special characters are escaped",
			input:    "if a < b && c > d",
			expected: "if a &lt; b &amp;&amp; c &gt; d",
		},
		{
			name:     "Escaped tags are stripped",
			input:    "&lt;b&gt;bold",
			expected: "bold",
		},
		{
			name:     "Entities are decoded twice",
			input:    "&amp;lt;b&amp;gt;bold",
			expected: "&lt;b&gt;bold",
		},
		{
			name:     "Entity for a lone bracket",
			input:    "x &lt; y",
			expected: "x &lt; y",
		},
		{
			name:     "Inputs",
			input:    "    if a {{{<}}} b:",
			expected: "    if a {{{&lt;}}} b:",
		},
		{
			name:     "Newlines are preserved",
			input:    "line 1\n\n    line 2\n",
			expected: "line 1\n\n    line 2\n",
		},
		{
			name:     "Markdown is left untouched",
			input:    "**bold** *it* `code` ![a.png](attachment:a.png)",
			expected: "**bold** *it* `code` ![a.png](attachment:a.png)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}
