package core

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizePolicyOnce sync.Once
	sanitizePolicy     *bluemonday.Policy
)

// fieldPolicy allows exactly the markup generated when rendering cards.
func fieldPolicy() *bluemonday.Policy {
	sanitizePolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("b", "i", "br", "ul", "ol", "li", "pre")
		policy.AllowAttrs("class").Matching(regexp.MustCompile(`^(exerciseprecontainer|quotebox|q-desc q-desc-[12])$`)).OnElements("div")
		policy.AllowAttrs("class").Matching(regexp.MustCompile(`^spoiler$`)).OnElements("span")
		policy.AllowAttrs("color").Matching(regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)).OnElements("font")
		policy.AllowAttrs("maxlength").Matching(bluemonday.Integer).OnElements("input")
		policy.AllowAttrs("name").OnElements("input")
		policy.AllowAttrs("style").Matching(regexp.MustCompile(`^width: \d+ch;$`)).OnElements("input")
		policy.AllowAttrs("src").Matching(regexp.MustCompile(`^[0-9a-f]+\.(jpg|gif)$`)).OnElements("img")
		sanitizePolicy = policy
	})
	return sanitizePolicy
}

// SanitizeField removes any markup not generated by the card renderer.
// Ex: an <script> element written in a notebook cell.
func SanitizeField(html string) string {
	return fieldPolicy().Sanitize(html)
}
