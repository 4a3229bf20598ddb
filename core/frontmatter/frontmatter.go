// Package frontmatter reads and writes the YAML metadata block prefixed to
// Markdown pattern files. It wraps the YAML library so callers never touch
// the dependency directly.
package frontmatter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/swistaczek/ruby-snippets/core"
)

// blockPattern matches a front-matter block at the very start of the file:
// a --- fence, the YAML body, and a closing --- fence.
var blockPattern = regexp.MustCompile(`(?s)\A---\s*\n(.*?)\n---\s*\n`)

// Split separates a Markdown document into its front matter and body.
// A document without a front-matter block yields zero metadata and the
// content unchanged. Malformed YAML inside the block is an error; callers
// decide whether that is fatal or a skip.
func Split(content string) (core.FrontMatter, string, error) {
	var meta core.FrontMatter

	m := blockPattern.FindStringSubmatchIndex(content)
	if m == nil {
		return meta, content, nil
	}

	block := content[m[2]:m[3]]
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return core.FrontMatter{}, content, fmt.Errorf("parsing front matter: %w", err)
	}
	return meta, content[m[1]:], nil
}

// Render serializes metadata into a fenced front-matter block, ready to be
// prepended to a Markdown document.
func Render(meta core.FrontMatter) (string, error) {
	body, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshaling front matter: %w", err)
	}
	var b strings.Builder
	b.WriteString("---\n")
	b.Write(body)
	b.WriteString("---\n")
	return b.String(), nil
}
