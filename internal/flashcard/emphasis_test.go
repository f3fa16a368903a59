package flashcard

import (
	"testing"

	"github.com/callummcdougall/jupyter-to-anki/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestEmphasize(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		expected string
		warnings int
	}{
		{
			name:     "All markers",
			input:    "*it* and **bold** and ”code” and (S)secret(S)",
			expected: "<i>it</i> and <b>bold</b> and <font color='#ff5500'>code</font> and <span class='spoiler'>secret</span>",
		},
		{
			name:     "Inline code is protected",
			input:    "Use ”a*b*c” here with *emphasis*",
			expected: "Use <font color='#ff5500'>a*b*c</font> here with <i>emphasis</i>",
		},
		{
			name:     "Code blocks are protected",
			input:    "Text **bold**<br><div class='exerciseprecontainer'><pre>x = a**b<br>y = *c*</pre></div>",
			expected: "Text <b>bold</b><br><div class='exerciseprecontainer'><pre>x = a**b<br>y = *c*</pre></div>",
		},
		{
			name:     "Unbalanced marker closed before the first line break",
			input:    "**bold<br>next line",
			expected: "<b>bold</b><br>next line",
			warnings: 1,
		},
		{
			name:     "Unbalanced marker closed at the end",
			input:    "*alone",
			expected: "<i>alone</i>",
			warnings: 1,
		},
		{
			name:     "Trailing line break is ignored",
			input:    "*alone<br>",
			expected: "<i>alone<br></i>",
			warnings: 1,
		},
		{
			name:     "Short code before protected code",
			input:    "Call ”f” then ”g(*args)”",
			expected: "Call <font color='#ff5500'>f</font> then <font color='#ff5500'>g(*args)</font>",
		},
		{
			name:     "Markers inside the second code span",
			input:    "text *it* and ”code” and ”longer code *x*” end",
			expected: "text <i>it</i> and <font color='#ff5500'>code</font> and <font color='#ff5500'>longer code *x*</font> end",
		},
		{
			name:     "Unbalanced code font",
			input:    "x ”abc” and ”unfinished code",
			expected: "x <font color='#ff5500'>abc</font> and <font color='#ff5500'>unfinished code</font>",
			warnings: 1,
		},
		{
			name:     "Unbalanced spoiler",
			input:    "(S)secret<br>visible",
			expected: "<span class='spoiler'>secret</span><br>visible",
			warnings: 1,
		},
		{
			name:     "No marker",
			input:    "Hello<br>world",
			expected: "Hello<br>world",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := NewWarnings()
			actual := Emphasize(text.UnescapeTestContent(tt.input), warnings)
			assert.Equal(t, tt.expected, actual)
			assert.Equal(t, tt.warnings, warnings.Len())
		})
	}
}

func TestEmphasizeReportsEveryUnbalancedMarker(t *testing.T) {
	warnings := NewWarnings()
	Emphasize("**a *b", warnings)
	assert.Equal(t, 2, warnings.Len())
	assert.Contains(t, warnings.Messages()[0], "'**'")
	assert.Contains(t, warnings.Messages()[1], "'*'")
}
