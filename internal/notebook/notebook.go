package notebook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/callummcdougall/jupyter-to-anki/pkg/text"
)

// ErrInvalidJSON is returned when the notebook file is not valid JSON.
// This usually happens when outputs were saved in a broken state.
var ErrInvalidJSON = errors.New("invalid notebook JSON")

type CellType string

const (
	CellTypeMarkdown CellType = "markdown"
	CellTypeCode     CellType = "code"
	CellTypeRaw      CellType = "raw"
)

// Cell is a notebook cell ready to be converted into a card.
type Cell struct {
	// Position of the cell in the notebook (starting at 0)
	Index int
	Type  CellType
	// Cleaned lines (see Clean)
	Lines []string
	// Embedded images. Ex: {"image.png": {"image/png": "iVBORw0KGgo..."}}
	Attachments map[string]map[string]string
}

// IsMarkdown returns if the cell is a markdown cell.
func (c *Cell) IsMarkdown() bool {
	return c.Type == CellTypeMarkdown
}

// Empty returns if the cell contains only blank lines.
func (c *Cell) Empty() bool {
	return text.CountBlankLines(c.Lines) == len(c.Lines)
}

type Notebook struct {
	Path  string
	Cells []*Cell
}

// MarkdownCells returns only the markdown cells, preserving their index.
func (n *Notebook) MarkdownCells() []*Cell {
	var result []*Cell
	for _, cell := range n.Cells {
		if cell.IsMarkdown() {
			result = append(result, cell)
		}
	}
	return result
}

/* JSON */

type notebookFile struct {
	Cells    []notebookCell `json:"cells"`
	NBFormat int            `json:"nbformat"`
}

type notebookCell struct {
	CellType    string                                `json:"cell_type"`
	Source      json.RawMessage                       `json:"source"`
	Attachments map[string]map[string]json.RawMessage `json:"attachments"`
}

// Read reads a notebook from a .ipynb file.
func Read(path string) (*Notebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	nb, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("unable to read notebook %q: %w", path, err)
	}
	nb.Path = path
	return nb, nil
}

// Parse decodes the JSON content of a notebook.
func Parse(r io.Reader) (*Notebook, error) {
	var file notebookFile
	err := json.NewDecoder(r).Decode(&file)
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return nil, fmt.Errorf("%w: %v (offset %d)", ErrInvalidJSON, err, syntaxErr.Offset)
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if err != nil {
		return nil, err
	}

	result := &Notebook{}
	for i, cell := range file.Cells {
		source, err := parseSource(cell.Source)
		if err != nil {
			return nil, fmt.Errorf("invalid source for cell %d: %w", i, err)
		}
		result.Cells = append(result.Cells, &Cell{
			Index:       i,
			Type:        CellType(cell.CellType),
			Lines:       text.SplitLines(Clean(source)),
			Attachments: parseAttachments(cell.Attachments),
		})
	}
	return result, nil
}

// parseSource extracts the source from a cell.
// Source can be a string or an array of strings.
func parseSource(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var arr []string
	if err := json.Unmarshal(raw, &arr); err != nil {
		return "", err
	}
	return strings.Join(arr, ""), nil
}

// parseAttachments keeps only the representations encoded as strings (ex: base64 images).
func parseAttachments(raw map[string]map[string]json.RawMessage) map[string]map[string]string {
	if len(raw) == 0 {
		return nil
	}
	result := make(map[string]map[string]string)
	for name, representations := range raw {
		result[name] = make(map[string]string)
		for mime, value := range representations {
			var s string
			if err := json.Unmarshal(value, &s); err == nil {
				result[name][mime] = s
				continue
			}
			// Multiline payloads are sometimes saved as an array
			var arr []string
			if err := json.Unmarshal(value, &arr); err == nil {
				result[name][mime] = strings.Join(arr, "")
			}
		}
	}
	return result
}
