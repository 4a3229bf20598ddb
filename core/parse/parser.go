// Package parse reconstructs pattern sections from a Markdown pattern file
// (front matter already stripped). It is a single forward pass over lines,
// recognizing line-initial markers: H2 opens a section, H3 opens a pattern,
// labeled lines carry links, fenced blocks carry code. Parse state lives
// entirely on the stack, so parser values are safe to reuse across files.
package parse

import (
	"html"
	"regexp"
	"strings"

	"github.com/swistaczek/ruby-snippets/core"
)

// linkPattern extracts a Markdown link: [label](url).
var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// Parser turns Markdown pattern files back into sections.
type Parser struct{}

// New creates a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse scans the Markdown body and returns the sections it describes, in
// document order. Lines before the first pattern opens (intro paragraphs,
// the table of contents, the total line) are ignored without any special
// header check. Code block text is HTML-escaped at capture time, ready for
// direct insertion into the published page.
func (p *Parser) Parse(markdown string) []core.Section {
	var sections []core.Section
	curSection := -1
	curPattern := -1

	lines := strings.Split(markdown, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		// H2 opens a section; the table-of-contents header is not one.
		if strings.HasPrefix(line, "## ") && !strings.HasPrefix(line, "## Table") {
			sections = append(sections, core.Section{
				Name: strings.TrimSpace(line[3:]),
			})
			curSection = len(sections) - 1
			curPattern = -1
			continue
		}

		// H3 opens a pattern under the current section, with its category
		// derived immediately from the section name.
		if strings.HasPrefix(line, "### ") && curSection >= 0 {
			sec := &sections[curSection]
			sec.Patterns = append(sec.Patterns, core.Pattern{
				Title:    strings.TrimSpace(line[4:]),
				Category: core.Categorize(sec.Name),
			})
			curPattern = len(sec.Patterns) - 1
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		// Anything outside a pattern is surrounding prose; skip it.
		if curSection < 0 || curPattern < 0 {
			continue
		}
		pat := &sections[curSection].Patterns[curPattern]

		if strings.HasPrefix(line, core.DocsLinePrefix) {
			if m := linkPattern.FindStringSubmatch(line); m != nil {
				pat.DocsLabel, pat.DocsURL = m[1], m[2]
			}
			continue
		}

		if strings.HasPrefix(line, core.SourceLinePrefix) {
			if m := linkPattern.FindStringSubmatch(line); m != nil {
				pat.SourceFile, pat.SourceURL = m[1], m[2]
			}
			continue
		}

		// Fenced code block: consume verbatim until the closing fence.
		if strings.HasPrefix(line, "```") {
			var code []string
			for i++; i < len(lines) && !strings.HasPrefix(lines[i], "```"); i++ {
				code = append(code, lines[i])
			}
			pat.Code = html.EscapeString(strings.Join(code, "\n"))
			continue
		}

		// First remaining non-blank line becomes the description; later
		// ones are ignored, only the first contributes. Only the two label
		// prefixes above are reserved, so a description may itself start
		// with bold text.
		if pat.Description == "" {
			pat.Description = strings.TrimSpace(line)
		}
	}

	return sections
}
