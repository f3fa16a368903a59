package text

import "strings"

// UnescapeTestContent supports content using a special character instead of backticks.
func UnescapeTestContent(content string) string {
	// Backticks mark inline code in cards but multiline strings in Golang cannot contain backticks.
	// We allow the ” character instead as suggested here: https://stackoverflow.com/a/59900008
	//
	// Example: ”x = 1” will become `x = 1`
	result := strings.ReplaceAll(content, "”", "`")

	// We allow the ‛ character too
	result = strings.ReplaceAll(result, "‛", "`")

	return result
}

// UnescapeTestLines applies UnescapeTestContent on every line.
func UnescapeTestLines(lines ...string) []string {
	var result []string
	for _, line := range lines {
		result = append(result, UnescapeTestContent(line))
	}
	return result
}
