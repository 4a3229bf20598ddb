// Package render — HTML page renderer.
// Builds the published, searchable page from merged sections. Each pattern
// becomes a fragment carrying data attributes for client-side filtering,
// and the assembled content is substituted into an HTML template by
// literal placeholder replacement.
package render

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/swistaczek/ruby-snippets/core"
	"github.com/swistaczek/ruby-snippets/core/index"
)

// defaultPageTitle is used when no title reaches the renderer, from flags
// or from front matter.
const defaultPageTitle = "Ruby & Rails Patterns"

// timestampLayout formats the {{TIMESTAMP}} placeholder value.
const timestampLayout = "2006-01-02 15:04:05 UTC"

// PageRenderer renders merged sections into the final HTML page.
type PageRenderer struct {
	// Now supplies the {{TIMESTAMP}} value. Tests pin it.
	Now func() time.Time
}

// NewPageRenderer creates a PageRenderer using the wall clock.
func NewPageRenderer() *PageRenderer {
	return &PageRenderer{Now: time.Now}
}

// RenderPage assembles the content fragments and substitutes them into the
// template. Sections left empty after merging contribute nothing. The
// placeholders {{TITLE}}, {{PROJECT_NAME}}, {{DESCRIPTION}}, {{CONTENT}},
// and {{TIMESTAMP}} are replaced literally; a placeholder missing from the
// template is simply not replaced. Returns the page and the total pattern
// count across rendered sections.
func (r *PageRenderer) RenderPage(sections []core.Section, meta core.FrontMatter, template string) ([]byte, int) {
	var fragments []string
	total := 0

	for _, sec := range sections {
		if len(sec.Patterns) == 0 {
			continue
		}
		// Section anchors are keyed by the derived category slug, not the
		// id the Markdown came with.
		fragments = append(fragments, fmt.Sprintf(`<h2 id="%s">%s (%d patterns)</h2>`,
			core.Categorize(sec.Name), sec.Name, len(sec.Patterns)))

		for _, p := range sec.Patterns {
			total++
			fragments = append(fragments, patternFragment(p))
		}
	}

	title := meta.Title
	if title == "" {
		title = defaultPageTitle
	}

	page := template
	page = strings.ReplaceAll(page, "{{TITLE}}", title)
	page = strings.ReplaceAll(page, "{{PROJECT_NAME}}", title)
	page = strings.ReplaceAll(page, "{{DESCRIPTION}}", meta.Description)
	page = strings.ReplaceAll(page, "{{CONTENT}}", strings.Join(fragments, "\n"))
	page = strings.ReplaceAll(page, "{{TIMESTAMP}}", r.Now().UTC().Format(timestampLayout))

	return []byte(page), total
}

// patternFragment renders one pattern container. The data attributes drive
// the page's client-side category filter and keyword search. Code arrives
// already HTML-escaped from the Markdown parser and is inserted as-is.
func patternFragment(p core.Pattern) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<div class=\"pattern\" data-category=\"%s\" data-keywords=\"%s\" data-name=\"%s\">\n",
		p.Category, index.Keywords(p.Title, p.Description), strings.ToLower(p.Title))
	fmt.Fprintf(&b, "  <h3>%s</h3>\n", p.Title)
	fmt.Fprintf(&b, "  <p>%s</p>", inlineHTML(p.Description))

	if p.DocsURL != "" {
		fmt.Fprintf(&b, "\n  <div class=\"docs\">Rails Docs: <a href=\"%s\" target=\"_blank\">%s</a></div>",
			p.DocsURL, p.DocsLabel)
	}
	if p.SourceURL != "" && p.SourceFile != "" {
		fmt.Fprintf(&b, "\n  <div class=\"file\">source: <a href=\"%s\" target=\"_blank\">%s</a></div>",
			p.SourceURL, p.SourceFile)
	}
	if p.Code != "" {
		fmt.Fprintf(&b, "\n  <pre><code>%s</code><button class=\"copy-btn\" onclick=\"copyCode(this)\">Copy</button></pre>",
			p.Code)
	}

	b.WriteString("\n</div>\n")
	return b.String()
}

// Inline Markdown forms a description can carry (the extractor's rich
// descriptions produce exactly these).
var (
	inlineCode = regexp.MustCompile("`([^`]+)`")
	inlineLink = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)
	inlineBold = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	inlineEm   = regexp.MustCompile(`\*([^*]+)\*`)
)

// inlineHTML converts inline Markdown in a description back into HTML for
// the published page. Plain text passes through unchanged.
func inlineHTML(text string) string {
	text = inlineCode.ReplaceAllString(text, "<code>$1</code>")
	text = inlineLink.ReplaceAllString(text, `<a href="$2" target="_blank">$1</a>`)
	text = inlineBold.ReplaceAllString(text, "<strong>$1</strong>")
	text = inlineEm.ReplaceAllString(text, "<em>$1</em>")
	return text
}
