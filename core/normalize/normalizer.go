// Package normalize converts HTML fragments into Markdown text. The
// extractor uses it for pattern descriptions that carry inline markup
// (links, emphasis, inline code), so that markup survives the trip into
// the Markdown artifact instead of being flattened to plain text.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Inline converts an HTML fragment into a single line of Markdown.
// Newlines introduced by the conversion are collapsed to single spaces,
// since descriptions occupy exactly one line in the Markdown artifact.
func Inline(fragment string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("converting fragment to markdown: %w", err)
	}
	return strings.Join(strings.Fields(markdown), " "), nil
}
