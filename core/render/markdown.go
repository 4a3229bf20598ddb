// Package render provides output renderers for ruby-snippets guides.
// This file implements the Markdown renderer, which produces the pattern
// file that later feeds the publish pipeline. Its output shape is the
// contract surface with the Markdown parser: anything rendered here must
// parse back to the same structural fields.
package render

import (
	"fmt"
	"strings"

	"github.com/swistaczek/ruby-snippets/core"
	"github.com/swistaczek/ruby-snippets/core/frontmatter"
)

// MarkdownRenderer serializes a guide into a Markdown pattern file.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render emits front matter, the title and intro, a table of contents, and
// each section's patterns. Output ordering exactly mirrors input ordering;
// absent optional fields omit their lines entirely.
func (r *MarkdownRenderer) Render(g core.Guide) ([]byte, error) {
	block, err := frontmatter.Render(g.Meta)
	if err != nil {
		return nil, err
	}

	var lines []string
	lines = append(lines, strings.TrimRight(block, "\n"), "")

	if g.Meta.Title != "" {
		lines = append(lines, "# "+g.Meta.Title, "")
	}
	if g.Intro != "" {
		lines = append(lines, g.Intro, "")
	}

	lines = append(lines, "## Table of Contents", "")
	for _, sec := range g.Sections {
		lines = append(lines, fmt.Sprintf("- [%s](#%s) (%d patterns)", sec.Name, anchor(sec), len(sec.Patterns)))
	}
	lines = append(lines, "",
		fmt.Sprintf("**Total: %d patterns**", core.TotalPatterns(g.Sections)), "")

	for _, sec := range g.Sections {
		lines = append(lines, "## "+sec.Name, "")
		for _, p := range sec.Patterns {
			lines = appendPattern(lines, p)
		}
	}

	return []byte(strings.Join(lines, "\n")), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// appendPattern emits one pattern's lines: title, then each present field.
func appendPattern(lines []string, p core.Pattern) []string {
	lines = append(lines, "### "+p.Title, "")

	if p.Description != "" {
		lines = append(lines, p.Description, "")
	}
	if p.DocsURL != "" {
		lines = append(lines, fmt.Sprintf("%s [%s](%s)", core.DocsLinePrefix, p.DocsLabel, p.DocsURL), "")
	}
	if p.SourceURL != "" && p.SourceFile != "" {
		lines = append(lines, fmt.Sprintf("%s [%s](%s)", core.SourceLinePrefix, p.SourceFile, p.SourceURL), "")
	}
	if p.Code != "" {
		lines = append(lines, "```"+core.CodeLanguage, p.Code, "```", "")
	}

	return lines
}

// anchor picks the table-of-contents anchor for a section: the captured
// HTML id when present, otherwise a slug of the name.
func anchor(sec core.Section) string {
	if sec.ID != "" {
		return sec.ID
	}
	return slugify(sec.Name)
}

// slugify lowercases a name and collapses non-alphanumeric runs to dashes.
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, ch := range strings.ToLower(name) {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			b.WriteRune(ch)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
