package core

import (
	"strings"

	"github.com/gomarkdown/markdown"
)

// MarkdownToHTML converts the text of a heading cell (ex: deck descriptions).
func MarkdownToHTML(md string) string {
	html := markdown.ToHTML([]byte(md), nil, nil)
	return strings.TrimSpace(string(html))
}
