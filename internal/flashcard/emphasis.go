package flashcard

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// SpoilerMarker surrounds a text hidden until clicked.
const SpoilerMarker = "(S)"

// Code must be at least this long to be protected from emphasis.
// Shorter code is still rendered with the code font.
const minProtectedCodeLength = 5

var reProtectedCodeblock = regexp.MustCompile(`<div class='exerciseprecontainer'><pre>(.{5,}?)</pre></div>`)

// Emphasis describes how an inline marker is converted to HTML.
type Emphasis struct {
	Marker      string
	Description string
	Open        string
	Close       string
}

// Emphases are applied in this order. ** must be processed before *.
var Emphases = []Emphasis{
	{Marker: "**", Description: "bold", Open: "<b>", Close: "</b>"},
	{Marker: "*", Description: "italic", Open: "<i>", Close: "</i>"},
	{Marker: "`", Description: "code font", Open: "<font color='#ff5500'>", Close: "</font>"},
	{Marker: SpoilerMarker, Description: "a spoiler", Open: "<span class='spoiler'>", Close: "</span>"},
}

// segment is a part of a field. Protected segments are never rewritten.
type segment struct {
	text      string
	protected bool
}

type segments []segment

func (s segments) String() string {
	var sb strings.Builder
	for _, seg := range s {
		sb.WriteString(seg.text)
	}
	return sb.String()
}

// protect splits the literal segments using the given regex.
// The first submatch of every match becomes a protected segment.
func (s segments) protect(re *regexp.Regexp) segments {
	var result segments
	for _, seg := range s {
		if seg.protected {
			result = append(result, seg)
			continue
		}
		last := 0
		for _, loc := range re.FindAllStringSubmatchIndex(seg.text, -1) {
			start, end := loc[2], loc[3]
			result = append(result, segment{text: seg.text[last:start]})
			result = append(result, segment{text: seg.text[start:end], protected: true})
			last = end
		}
		result = append(result, segment{text: seg.text[last:]})
	}
	return result
}

// protectInlineCode pairs the backticks of literal segments in order
// (1st with 2nd, 3rd with 4th...) and protects the content of long enough pairs.
// An odd trailing backtick stays literal.
func (s segments) protectInlineCode() segments {
	var result segments
	for _, seg := range s {
		if seg.protected {
			result = append(result, seg)
			continue
		}
		var ticks []int
		for i := 0; i < len(seg.text); i++ {
			if seg.text[i] == '`' {
				ticks = append(ticks, i)
			}
		}
		last := 0
		for i := 0; i+1 < len(ticks); i += 2 {
			start, end := ticks[i]+1, ticks[i+1]
			if utf8.RuneCountInString(seg.text[start:end]) < minProtectedCodeLength {
				continue
			}
			result = append(result, segment{text: seg.text[last:start]})
			result = append(result, segment{text: seg.text[start:end], protected: true})
			last = end
		}
		result = append(result, segment{text: seg.text[last:]})
	}
	return result
}

// count returns the number of markers present in literal segments.
func (s segments) count(marker string) int {
	count := 0
	for _, seg := range s {
		if !seg.protected {
			count += strings.Count(seg.text, marker)
		}
	}
	return count
}

// balance inserts the marker just before the first line break,
// or at the end when the field contains no line break.
func (s segments) balance(marker string) segments {
	result := make(segments, len(s))
	copy(result, s)
	for i, seg := range result {
		if seg.protected {
			continue
		}
		pos := strings.Index(seg.text, LineBreak)
		// A line break ending the field does not count
		if pos >= 0 && i == len(result)-1 && pos+len(LineBreak) == len(seg.text) {
			pos = -1
		}
		if pos >= 0 {
			result[i].text = seg.text[:pos] + marker + seg.text[pos:]
			return result
		}
	}
	if n := len(result); n > 0 && !result[n-1].protected {
		result[n-1].text += marker
		return result
	}
	return append(result, segment{text: marker})
}

// replace substitutes markers alternatively with the opening and the closing tags.
func (s segments) replace(e Emphasis) segments {
	result := make(segments, len(s))
	opened := false
	for i, seg := range s {
		if seg.protected || !strings.Contains(seg.text, e.Marker) {
			result[i] = seg
			continue
		}
		parts := strings.Split(seg.text, e.Marker)
		var sb strings.Builder
		sb.WriteString(parts[0])
		for _, part := range parts[1:] {
			if opened {
				sb.WriteString(e.Close)
			} else {
				sb.WriteString(e.Open)
			}
			opened = !opened
			sb.WriteString(part)
		}
		result[i] = segment{text: sb.String()}
	}
	return result
}

// Emphasize converts Markdown-like emphasis markers into HTML tags.
//
// Code blocks and inline code are left untouched. Unbalanced markers are reported
// as warnings and balanced by adding a marker before the first line break.
func Emphasize(field string, warnings *Warnings) string {
	segs := segments{{text: field}}
	segs = segs.protect(reProtectedCodeblock)
	segs = segs.protectInlineCode()

	for _, e := range Emphases {
		if segs.count(e.Marker)%2 == 1 {
			warnings.Addf("Found an unmatched '%s' in one of your cards. It is interpreted as %s and must come in pairs. "+
				"A closing '%s' was added before the first line break but the card may not render as expected.",
				e.Marker, e.Description, e.Marker)
			segs = segs.balance(e.Marker)
		}
		segs = segs.replace(e)
	}

	return segs.String()
}
