// Package extract implements the Extractor interface. It scans a pattern
// guide — a fixed-schema HTML document of <h2 id=…> section headers
// followed by <div class="pattern…"> blocks — and pulls each block's
// fields into structured records. Extraction is deliberately permissive:
// a field that does not match its expected shape is simply absent from
// the record, never an error.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/swistaczek/ruby-snippets/core"
	"github.com/swistaczek/ruby-snippets/core/normalize"
)

// markerSelector matches the two node kinds that drive extraction, in
// document order: section headers and pattern containers. The class
// prefix match mirrors the guide's "pattern", "pattern highlight", …
// container variants.
const markerSelector = `h2[id], div[class^='pattern']`

// GuideExtractor extracts pattern sections from raw guide HTML.
type GuideExtractor struct{}

// New creates a GuideExtractor.
func New() *GuideExtractor {
	return &GuideExtractor{}
}

// Extract walks the document's section headers and pattern containers in
// order, grouping each container under the most recent header. Containers
// before the first header are discarded. A document with no headers
// yields an empty sequence, not an error.
func (e *GuideExtractor) Extract(html string) ([]core.Section, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var sections []core.Section
	doc.Find(markerSelector).Each(func(_ int, sel *goquery.Selection) {
		if sel.Is("h2") {
			sections = append(sections, core.Section{
				ID:   sel.AttrOr("id", ""),
				Name: strings.TrimSpace(sel.Text()),
			})
			return
		}
		if len(sections) == 0 {
			return
		}
		cur := &sections[len(sections)-1]
		cur.Patterns = append(cur.Patterns, extractPattern(sel))
	})

	return sections, nil
}

// extractPattern mines one pattern container for its five fields. Each
// field is mined independently; a missing field leaves its zero value.
func extractPattern(block *goquery.Selection) core.Pattern {
	var p core.Pattern

	if h3 := block.Find("h3").First(); h3.Length() > 0 {
		p.Title = strings.TrimSpace(h3.Text())
	}

	p.Description = extractDescription(block)

	// Link pairs are captured from a single anchor, so URL and label are
	// always set together or not at all.
	if a := block.Find("div.docs a[href]").First(); a.Length() > 0 {
		p.DocsURL = a.AttrOr("href", "")
		p.DocsLabel = strings.TrimSpace(a.Text())
	}
	if a := block.Find("div.file a[href]").First(); a.Length() > 0 {
		p.SourceURL = a.AttrOr("href", "")
		p.SourceFile = strings.TrimSpace(a.Text())
	}

	// The HTML parser has already decoded entities, so the code text comes
	// out unescaped (&lt; → <).
	if code := block.Find("pre code").First(); code.Length() > 0 {
		p.Code = strings.TrimSpace(code.Text())
	}

	return p
}

// extractDescription pulls the first paragraph. Plain-text paragraphs are
// taken verbatim; paragraphs carrying child markup are converted to inline
// Markdown so links and emphasis survive into the Markdown artifact.
func extractDescription(block *goquery.Selection) string {
	para := block.Find("p").First()
	if para.Length() == 0 {
		return ""
	}
	if para.Children().Length() > 0 {
		if inner, err := para.Html(); err == nil {
			if markdown, err := normalize.Inline(inner); err == nil && markdown != "" {
				return markdown
			}
		}
	}
	return strings.TrimSpace(para.Text())
}
