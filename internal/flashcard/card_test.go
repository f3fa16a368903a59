package flashcard

import (
	"testing"

	"github.com/callummcdougall/jupyter-to-anki/internal/medias"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	var tests = []struct {
		name     string
		lines    []string
		expected *Layout
	}{
		{
			name:  "Front only",
			lines: []string{"What is Go?"},
			expected: &Layout{
				Kind:  KindFront,
				Front: []string{"What is Go?"},
			},
		},
		{
			name:  "Front and back",
			lines: []string{"Q", "-", "A"},
			expected: &Layout{
				Kind:  KindFrontBack,
				Front: []string{"Q"},
				Back:  []string{"A"},
			},
		},
		{
			name:  "Blank lines around separators",
			lines: []string{"Q", "", "-", "", "A", "", "-h", "", "H"},
			expected: &Layout{
				Kind:  KindFrontBack,
				Front: []string{"Q"},
				Back:  []string{"A"},
				Hint:  []string{"H"},
			},
		},
		{
			name:  "Image",
			lines: []string{"Who?", "-i", "![a.png](attachment:a.png)"},
			expected: &Layout{
				Kind:  KindImage,
				Front: []string{"Who?"},
				Back:  []string{"![a.png](attachment:a.png)"},
			},
		},
		{
			name:  "Front with hint",
			lines: []string{"Q", "-h", "H"},
			expected: &Layout{
				Kind:  KindFront,
				Front: []string{"Q"},
				Hint:  []string{"H"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := Split(tt.lines)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestSplitInvalid(t *testing.T) {
	var tests = []struct {
		name  string
		lines []string
	}{
		{
			name:  "Unknown separator",
			lines: []string{"Q", "-x", "A"},
		},
		{
			name:  "Duplicate separator",
			lines: []string{"Q", "-", "A", "-", "B"},
		},
		{
			name:  "Too many separators",
			lines: []string{"Q", "-", "-h", "-i"},
		},
		{
			name:  "Back and image",
			lines: []string{"Q", "-", "A", "-i", "B"},
		},
		{
			name:  "Hint before back",
			lines: []string{"Q", "-h", "H", "-", "A"},
		},
		{
			name:  "Empty front",
			lines: []string{"-", "A"},
		},
		{
			name:  "Blank front",
			lines: []string{"", "-", "A"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(tt.lines)
			assert.ErrorIs(t, err, ErrInvalidSeparators)
		})
	}
}

func TestKind(t *testing.T) {
	assert.False(t, KindFront.HasBack())
	assert.True(t, KindFrontBack.HasBack())
	assert.True(t, KindImage.HasBack())
	assert.Equal(t, []string{"Front", "Hint"}, KindFront.FieldNames())
	assert.Equal(t, []string{"Front", "Back", "Hint"}, KindImage.FieldNames())
}

func TestRenderCard(t *testing.T) {
	store := medias.NewMemoryStore()
	renderer := NewRenderer(store, NewWarnings())

	t.Run("Front and back", func(t *testing.T) {
		card, err := renderer.RenderCard([]string{"What is **2+2**?", "-", "4", "-h", "Think"}, nil)
		require.NoError(t, err)
		assert.Equal(t, KindFrontBack, card.Kind)
		assert.Equal(t, []string{"What is <b>2+2</b>?", "4", "Think"}, card.Fields)
		assert.Equal(t, "What is <b>2+2</b>?", card.Front())
		assert.Equal(t, "4", card.Back())
		assert.Equal(t, "Think", card.Hint())
	})

	t.Run("Front without hint", func(t *testing.T) {
		card, err := renderer.RenderCard([]string{"Q"}, nil)
		require.NoError(t, err)
		assert.Equal(t, KindFront, card.Kind)
		assert.Equal(t, []string{"Q", ""}, card.Fields)
		assert.Equal(t, "", card.Back())
	})

	t.Run("Image", func(t *testing.T) {
		attachments := Attachments{
			"a.png": {"image/png": "aGVsbG8="},
		}
		card, err := renderer.RenderCard([]string{"Who?", "-i", "![a.png](attachment:a.png)"}, attachments)
		require.NoError(t, err)
		assert.Equal(t, KindImage, card.Kind)
		assert.Equal(t, "<img src='333d6b3a3c1f5db6c9bdda5939b136986d170f4649172a68368d54ecb44c2ff2.jpg'>", card.Back())

		data, err := store.GetObject("333d6b3a3c1f5db6c9bdda5939b136986d170f4649172a68368d54ecb44c2ff2.jpg")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), data)
	})

	t.Run("Invalid separators", func(t *testing.T) {
		_, err := renderer.RenderCard([]string{"Q", "-x"}, nil)
		assert.ErrorIs(t, err, ErrInvalidSeparators)
	})
}
