package text

import (
	"strings"
	"unicode"
)

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// SplitLines splits a text on newlines. A trailing newline does not produce an empty last line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// TrimRightLines removes trailing whitespaces (including newlines) from every line.
func TrimRightLines(lines []string) []string {
	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return result
}

// CountBlankLines returns how many lines are blank.
func CountBlankLines(lines []string) int {
	count := 0
	for _, line := range lines {
		if IsBlank(line) {
			count++
		}
	}
	return count
}
