// Package cmd — publish command.
// Pipeline B: parse Markdown pattern files, merge their sections by name,
// and render the searchable HTML page from a template. A missing or
// unparsable pattern file is skipped with a warning; a missing template
// aborts the run.
package cmd

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swistaczek/ruby-snippets/core"
	"github.com/swistaczek/ruby-snippets/core/frontmatter"
	"github.com/swistaczek/ruby-snippets/core/merge"
	"github.com/swistaczek/ruby-snippets/core/output"
	"github.com/swistaczek/ruby-snippets/core/parse"
	"github.com/swistaczek/ruby-snippets/core/render"
)

// Flag variables.
var (
	flagTemplate        string
	flagOut             string
	flagPageTitle       string
	flagPageDescription string
	flagPublishPDF      bool
)

var publishCmd = &cobra.Command{
	Use:   "publish <patterns.md> [more.md ...]",
	Short: "Merge Markdown pattern files into a searchable HTML page",
	Long: `Publish parses one or more Markdown pattern files, merges sections with
the same name across files (patterns concatenated in file order), and
substitutes the rendered content into an HTML template.

Examples:
  snippets publish once-campfire/rails-patterns.md fizzy/rails-patterns.md
  snippets publish patterns.md --template template.html -o docs/index.html
  snippets publish patterns.md --pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)

	publishCmd.Flags().StringVar(&flagTemplate, "template", "template.html", "HTML template with {{...}} placeholders")
	publishCmd.Flags().StringVarP(&flagOut, "out", "o", "docs/index.html", "Output HTML path")
	publishCmd.Flags().StringVar(&flagPageTitle, "title", "", "Page title (default: first file's front matter)")
	publishCmd.Flags().StringVar(&flagPageDescription, "description", "", "Page description (default: first file's front matter)")
	publishCmd.Flags().BoolVar(&flagPublishPDF, "pdf", false, "Also write a PDF of the merged collection")
}

func runPublish(cmd *cobra.Command, args []string) error {
	template, err := os.ReadFile(flagTemplate)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	parser := parse.New()
	var sources [][]core.Section
	var firstMeta core.FrontMatter
	haveMeta := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠ Skipping %s: %v\n", path, err)
			continue
		}

		meta, body, err := frontmatter.Split(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠ Skipping %s: %v\n", path, err)
			continue
		}
		if !haveMeta {
			firstMeta = meta
			haveMeta = true
		}

		sections := parser.Parse(body)
		fmt.Fprintf(os.Stdout, "✓ Parsed %s: %d patterns\n", path, core.TotalPatterns(sections))
		sources = append(sources, sections)
	}

	merged := merge.Sections(sources...)

	pageMeta := core.FrontMatter{
		Title:       flagPageTitle,
		Description: flagPageDescription,
	}
	if pageMeta.Title == "" {
		pageMeta.Title = firstMeta.Title
	}
	if pageMeta.Description == "" {
		pageMeta.Description = firstMeta.Description
	}

	renderer := render.NewPageRenderer()
	page, total := renderer.RenderPage(merged, pageMeta, string(template))

	path, err := output.WritePath(flagOut, page)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s (%d patterns)\n", path, total)

	if flagPublishPDF {
		if err := writeCollectionPDF(merged, pageMeta); err != nil {
			return err
		}
	}
	return nil
}

// writeCollectionPDF renders the merged collection as a PDF next to the
// HTML output.
func writeCollectionPDF(sections []core.Section, meta core.FrontMatter) error {
	pdfRenderer := render.NewPDFRenderer()
	data, err := pdfRenderer.Render(core.Guide{Meta: meta, Sections: unescapedSections(sections)})
	if err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}

	pdfPath := strings.TrimSuffix(flagOut, ".html") + pdfRenderer.Extension()
	path, err := output.WritePath(pdfPath, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// unescapedSections undoes the parser's HTML escaping of code blocks.
// Parsed code is stored ready for the web page; the PDF prints raw text.
// Inputs are not mutated.
func unescapedSections(sections []core.Section) []core.Section {
	out := make([]core.Section, len(sections))
	for i, sec := range sections {
		out[i] = sec
		out[i].Patterns = append([]core.Pattern(nil), sec.Patterns...)
		for j := range out[i].Patterns {
			out[i].Patterns[j].Code = html.UnescapeString(out[i].Patterns[j].Code)
		}
	}
	return out
}
