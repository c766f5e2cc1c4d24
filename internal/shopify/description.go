package shopify

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	styleBlockRe = regexp.MustCompile(`style\s*{[^}]*}`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanDescription strips HTML markup from a product description and
// collapses it to single-spaced plain text.
func CleanDescription(bodyHTML string) string {
	if bodyHTML == "" {
		return ""
	}

	text := htmlTagRe.ReplaceAllString(bodyHTML, "")
	text = html.UnescapeString(text)
	text = styleBlockRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
