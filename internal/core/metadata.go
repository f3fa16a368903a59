package core

import (
	"regexp"
	"strings"

	"github.com/callummcdougall/jupyter-to-anki/pkg/text"
	"golang.org/x/net/html"
)

// Ex: "deck = Go", "TAGS=go basics", "url = https://go.dev"
var reMetadata = regexp.MustCompile(`(?i)^(deck|tags|url)\s*=\s*(.*)$`)

// Metadata applies to all cards following the cell where it was defined.
type Metadata struct {
	Deck string
	Tags string
	URL  string
}

// ParseMetadataLine extracts the keyword (lowercase) and the value of a metadata line.
func ParseMetadataLine(line string) (string, string, bool) {
	match := reMetadata.FindStringSubmatch(line)
	if match == nil {
		return "", "", false
	}
	return strings.ToLower(match[1]), strings.TrimSpace(html.UnescapeString(match[2])), true
}

// IsMetadataCell returns if every non-blank line is a metadata line.
func IsMetadataCell(lines []string) bool {
	for _, line := range lines {
		if text.IsBlank(line) {
			continue
		}
		if _, _, ok := ParseMetadataLine(line); !ok {
			return false
		}
	}
	return true
}

// IsHeadingCell returns if the cell starts with a Markdown heading.
func IsHeadingCell(lines []string) bool {
	return len(lines) > 0 && strings.HasPrefix(lines[0], "#")
}

// Update overrides the metadata present in the lines.
func (m *Metadata) Update(lines []string) {
	for _, line := range lines {
		keyword, value, ok := ParseMetadataLine(line)
		if !ok {
			continue
		}
		switch keyword {
		case "deck":
			m.Deck = value
		case "tags":
			m.Tags = value
		case "url":
			m.URL = value
		}
	}
}

// TagList returns the space-separated tags.
func (m Metadata) TagList() []string {
	return strings.Fields(m.Tags)
}
