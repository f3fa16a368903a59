package notebook

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Clean removes HTML markup from the raw text of a cell.
//
// Tags are stripped and entities decoded twice. The remaining special characters
// are then escaped so that the text can be embedded as is in the generated HTML.
// Ex: "a <b>bold</b> &lt; c" => "a bold &lt; c"
func Clean(s string) string {
	s = stripTags(s)
	s = stripTags(s)
	return htmlEscaper.Replace(s)
}

func stripTags(s string) string {
	tok := html.NewTokenizer(strings.NewReader(s))
	var output bytes.Buffer
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return output.String()
		case html.TextToken:
			output.Write(tok.Text())
		}
	}
}
