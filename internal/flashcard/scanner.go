package flashcard

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// QuoteboxMarker delimits the sections of a quotebox when alone on a line.
const QuoteboxMarker = "(Q)"

// Code lines are indented by 4 spaces.
const codeIndent = "    "

// Maximum distance between two line indices to consider they belong to the same region.
// Code blocks tolerate a blank line between code lines. List items must be adjacent.
const (
	maxCodeLineDistance = 2
	maxListItemDistance = 1
)

const unorderedItemPrefix = "* "

var (
	reOrderedItem = regexp.MustCompile(`^\d{1,2}\. `)
	reImageLine   = regexp.MustCompile(`^!\[(.*)\]`)
)

// ErrMalformedQuotebox is returned when a quotebox does not contain 2 or 3 markers.
var ErrMalformedQuotebox = errors.New("malformed quotebox")

// Span is an inclusive range of line indices.
type Span struct {
	Start int
	End   int
}

// Contains returns if the line index is inside the span.
func (s Span) Contains(index int) bool {
	return index >= s.Start && index <= s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d]", s.Start, s.End)
}

// Quotebox lists the line indices of the markers of a single quotebox.
//
// The content is between the first two markers.
// The optional source is between the second and the third marker.
type Quotebox struct {
	Markers []int
}

func (q Quotebox) Span() Span {
	return Span{Start: q.Markers[0], End: q.Markers[len(q.Markers)-1]}
}

// List lists the line indices of the items of a single list.
type List struct {
	Ordered bool
	Items   []int
}

func (l List) Span() Span {
	return Span{Start: l.Items[0], End: l.Items[len(l.Items)-1]}
}

// IsItem returns if the line index is a list item.
func (l List) IsItem(index int) bool {
	for _, item := range l.Items {
		if item == index {
			return true
		}
	}
	return false
}

// Regions regroups all structural regions found in a field.
// Regions of the same kind never overlap.
type Regions struct {
	UnorderedLists []List
	OrderedLists   []List
	Codeblocks     []Span
	Quoteboxes     []Quotebox
	Images         []int
}

// Empty returns if no region was found.
func (r *Regions) Empty() bool {
	return len(r.UnorderedLists) == 0 &&
		len(r.OrderedLists) == 0 &&
		len(r.Codeblocks) == 0 &&
		len(r.Quoteboxes) == 0 &&
		len(r.Images) == 0
}

// Scan searches for regions in the lines of a field.
// Lines must have been right-trimmed.
func Scan(lines []string) (*Regions, error) {
	quoteboxes, err := scanQuoteboxes(lines)
	if err != nil {
		return nil, err
	}
	return &Regions{
		UnorderedLists: scanLists(lines, false),
		OrderedLists:   scanLists(lines, true),
		Codeblocks:     scanCodeblocks(lines),
		Quoteboxes:     quoteboxes,
		Images:         scanImages(lines),
	}, nil
}

func scanQuoteboxes(lines []string) ([]Quotebox, error) {
	var result []Quotebox
	var markers []int
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == QuoteboxMarker {
			markers = append(markers, i)
		}
		// A blank line (or the end of the field) closes the current quotebox
		if trimmed != "" && i != len(lines)-1 {
			continue
		}
		if len(markers) == 0 {
			continue
		}
		if len(markers) != 2 && len(markers) != 3 {
			return nil, fmt.Errorf("%w: expected 2 or 3 %s markers but found %d (line %d)", ErrMalformedQuotebox, QuoteboxMarker, len(markers), markers[0]+1)
		}
		result = append(result, Quotebox{Markers: markers})
		markers = nil
	}
	return result, nil
}

// IsCodeLine returns if the line is part of an indented code block.
func IsCodeLine(line string) bool {
	return strings.HasPrefix(line, codeIndent) && strings.TrimSpace(line) != ""
}

func scanCodeblocks(lines []string) []Span {
	var result []Span
	for i, line := range lines {
		if !IsCodeLine(line) {
			continue
		}
		if n := len(result); n > 0 && i-result[n-1].End <= maxCodeLineDistance {
			result[n-1].End = i
			continue
		}
		result = append(result, Span{Start: i, End: i})
	}
	return result
}

// IsListItem returns if the line starts a list item of the given type.
func IsListItem(line string, ordered bool) bool {
	if ordered {
		return reOrderedItem.MatchString(line)
	}
	return strings.HasPrefix(line, unorderedItemPrefix)
}

func scanLists(lines []string, ordered bool) []List {
	var result []List
	for i, line := range lines {
		if !IsListItem(line, ordered) {
			continue
		}
		if n := len(result); n > 0 && i-result[n-1].Span().End <= maxListItemDistance {
			result[n-1].Items = append(result[n-1].Items, i)
			continue
		}
		result = append(result, List{Ordered: ordered, Items: []int{i}})
	}
	return result
}

// IsImageLine returns if the line starts with an image reference.
func IsImageLine(line string) bool {
	return reImageLine.MatchString(line)
}

func scanImages(lines []string) []int {
	var result []int
	for i, line := range lines {
		if IsImageLine(line) {
			result = append(result, i)
		}
	}
	return result
}
