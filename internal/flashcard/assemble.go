package flashcard

import (
	"regexp"

	"github.com/callummcdougall/jupyter-to-anki/pkg/text"
)

// Line breaks next to block elements create unwanted gaps.
var lineBreakCleanups = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(<br>)+<ul>`), "<ul>"},
	{regexp.MustCompile(`</ul>(<br>)+`), "</ul>"},
	{regexp.MustCompile(`(<br>)+<ol>`), "<ol>"},
	{regexp.MustCompile(`</ol>(<br>)+`), "</ol>"},
	{regexp.MustCompile(`</pre></div><br><br>`), "</pre></div><br>"},
	{regexp.MustCompile(`</div><br><br>`), "</div><br>"},
}

// RenderField converts the lines of a field into HTML.
//
// Regions are rendered in a fixed order: lists, code blocks, quoteboxes, and finally images.
// Each region is collapsed into a single line before the lines are joined with line breaks.
// Regions cannot be nested except for lists and code blocks inside quoteboxes.
func (r *Renderer) RenderField(lines []string, attachments Attachments) (string, error) {
	lines = text.TrimRightLines(lines)

	regions, err := Scan(lines)
	if err != nil {
		return "", err
	}
	r.notifyListeners(lines, regions)

	field := NewField(lines)

	var replacements []Replacement
	for _, list := range regions.UnorderedLists {
		replacements = append(replacements, Replacement{Span: list.Span(), Text: RenderList(field, list)})
	}
	field = field.Replace(replacements...)

	replacements = nil
	for _, list := range regions.OrderedLists {
		replacements = append(replacements, Replacement{Span: list.Span(), Text: RenderList(field, list)})
	}
	field = field.Replace(replacements...)

	replacements = nil
	for _, span := range regions.Codeblocks {
		replacements = append(replacements, Replacement{Span: span, Text: RenderCodeblock(field, span)})
	}
	field = field.Replace(replacements...)

	replacements = nil
	for _, quotebox := range regions.Quoteboxes {
		replacements = append(replacements, Replacement{Span: quotebox.Span(), Text: RenderQuotebox(field, quotebox)})
	}
	field = field.Replace(replacements...)

	// Images inside other regions are left as is
	images := make(map[int]bool)
	for _, index := range regions.Images {
		images[index] = true
	}
	for i, line := range field {
		if !images[line.Index] {
			continue
		}
		html, err := RenderImages(line.Text, attachments, r.store)
		if err != nil {
			return "", err
		}
		field[i].Text = html
	}

	html := field.Join()
	for _, cleanup := range lineBreakCleanups {
		html = cleanup.re.ReplaceAllString(html, cleanup.replacement)
	}

	return Emphasize(html, r.warnings), nil
}
