package flashcard

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/callummcdougall/jupyter-to-anki/internal/helpers"
)

// LineBreak joins the lines of a field once rendered.
const LineBreak = "<br>"

const (
	codeblockOpen  = "<div class='exerciseprecontainer'><pre>"
	codeblockClose = "</pre></div>"
)

var (
	// `{{{x}}}` and {{{`x`}}} are both typing accidents for {{{x}}}
	reCodeAroundInput = regexp.MustCompile("`\\{\\{\\{[^{}]*\\}\\}\\}`")
	reCodeInsideInput = regexp.MustCompile("\\{\\{\\{`[^{}]*`\\}\\}\\}")
	reInput           = regexp.MustCompile(`\{\{\{([^{}]*)\}\}\}`)
	reEscapedBracket  = regexp.MustCompile(`&[gl]t;`)
)

// RenderList converts list items into a <ul> or <ol> element.
// Lines of the span that are not items continue the previous item after a paragraph break.
func RenderList(f Field, list List) string {
	tag := "ul"
	if list.Ordered {
		tag = "ol"
	}

	var sb strings.Builder
	sb.WriteString("<" + tag + ">")

	var item string
	var continuation []string
	inItem := false
	flush := func() {
		if !inItem {
			return
		}
		sb.WriteString("<li>")
		sb.WriteString(item)
		if len(continuation) > 0 {
			sb.WriteString(LineBreak + LineBreak)
			sb.WriteString(strings.Join(continuation, LineBreak))
		}
		sb.WriteString("</li>")
	}

	span := list.Span()
	for _, line := range f.Lines(span.Start, span.End) {
		if list.IsItem(line.Index) {
			flush()
			item = trimListItemPrefix(line.Text, list.Ordered)
			continuation = nil
			inItem = true
			continue
		}
		if line.Text == "" {
			if continuation == nil {
				continuation = []string{}
			}
			continue
		}
		continuation = append(continuation, line.Text)
	}
	flush()

	sb.WriteString("</" + tag + ">")
	return sb.String()
}

func trimListItemPrefix(line string, ordered bool) string {
	if ordered {
		return reOrderedItem.ReplaceAllString(line, "")
	}
	return strings.TrimPrefix(line, unorderedItemPrefix)
}

// RenderCodeblock converts indented lines into a preformatted block.
// Inputs ({{{text}}}) are replaced by text inputs sized after their content.
func RenderCodeblock(f Field, span Span) string {
	var lines []string
	for _, line := range f.Lines(span.Start, span.End) {
		lines = append(lines, strings.TrimRight(strings.TrimPrefix(line.Text, codeIndent), " \t"))
	}
	codeblock := codeblockOpen + strings.Join(lines, LineBreak) + codeblockClose

	codeblock = reCodeAroundInput.ReplaceAllStringFunc(codeblock, func(s string) string {
		return s[1 : len(s)-1]
	})
	codeblock = reCodeInsideInput.ReplaceAllStringFunc(codeblock, func(s string) string {
		return "{{{" + s[4:len(s)-4] + "}}}"
	})

	return RenderInputs(codeblock)
}

// RenderInputs replaces every {{{text}}} by an <input> element.
//
// The name of an input is determined by its text and by the number of identical inputs before it,
// so that repeated inputs get different names that stay the same between runs.
func RenderInputs(s string) string {
	seen := make(map[string]int)
	return reInput.ReplaceAllStringFunc(s, func(match string) string {
		value := match[3 : len(match)-3]
		occurrence := seen[value]
		seen[value]++
		return renderInput(value, occurrence)
	})
}

func renderInput(value string, occurrence int) string {
	// An escaped character (ex: &lt;) is displayed as a single character
	length := utf8.RuneCountInString(value) - 3*len(reEscapedBracket.FindAllString(value, -1))
	seed := helpers.InputSeed(value, occurrence)
	return fmt.Sprintf("<input maxlength='%d' name='%s_%s' style='width: %dch;'>", length, value, seed, length)
}

// RenderQuotebox converts the lines between quotebox markers into a quote with an optional source.
//
// The source is a single caption when written on one line. Otherwise, the first line is the main
// caption and the remaining lines are a secondary caption.
func RenderQuotebox(f Field, q Quotebox) string {
	content := f.Texts(q.Markers[0]+1, q.Markers[1]-1)

	var sb strings.Builder
	sb.WriteString("<div class='quotebox'>")
	sb.WriteString(strings.Join(content, LineBreak))
	if len(q.Markers) == 3 {
		source := f.Texts(q.Markers[1]+1, q.Markers[2]-1)
		if len(source) > 0 {
			sb.WriteString("<div class='q-desc q-desc-1'>")
			sb.WriteString(source[0])
			sb.WriteString("</div>")
		}
		if len(source) > 1 {
			sb.WriteString("<div class='q-desc q-desc-2'>")
			sb.WriteString(strings.Join(source[1:], LineBreak))
			sb.WriteString("</div>")
		}
	}
	sb.WriteString("</div>")
	return sb.String()
}
