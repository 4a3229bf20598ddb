// Package cmd — convert command.
// Pipeline A: read a guide (local file or URL), extract pattern sections,
// render to the chosen format, write the artifact.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swistaczek/ruby-snippets/core"
	"github.com/swistaczek/ruby-snippets/core/extract"
	"github.com/swistaczek/ruby-snippets/core/fetch"
	"github.com/swistaczek/ruby-snippets/core/output"
	"github.com/swistaczek/ruby-snippets/core/render"
)

// Flag variables.
var (
	flagMarkdown    bool
	flagJSON        bool
	flagPDF         bool
	flagOutputDir   string
	flagTitle       string
	flagDescription string
	flagTopics      string
	flagSource      string
	flagIntro       string
)

var convertCmd = &cobra.Command{
	Use:   "convert <guide.html | url>",
	Short: "Convert an HTML pattern guide to Markdown, JSON, or PDF",
	Long: `Convert reads a pattern guide (a local HTML file, or a URL when the
argument has an http/https scheme), extracts its sections and patterns,
and writes the result in the chosen format (Markdown by default).

Examples:
  snippets convert docs/basecamp-rails-guide.html
  snippets convert docs/guide.html --json --output_dir ./out
  snippets convert https://example.com/guide.html --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Output format flags (mutually exclusive; Markdown is the default).
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output a Markdown pattern file (default)")
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")

	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")

	// Front-matter metadata for the artifact.
	convertCmd.Flags().StringVar(&flagTitle, "title", "Ruby & Rails Patterns", "Guide title")
	convertCmd.Flags().StringVar(&flagDescription, "description", "", "Guide description")
	convertCmd.Flags().StringVar(&flagTopics, "topics", "", "Comma-separated topic tags")
	convertCmd.Flags().StringVar(&flagSource, "source", "", "Source repository URL")
	convertCmd.Flags().StringVar(&flagIntro, "intro", "", "Introduction paragraph placed below the title")
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	html, err := readGuide(fetch.New(), source)
	if err != nil {
		return err
	}

	extractor := extract.New()
	sections, err := extractor.Extract(html)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Found %d sections\n", len(sections))
	for _, sec := range sections {
		fmt.Fprintf(os.Stdout, "  - %s: %d patterns\n", sec.Name, len(sec.Patterns))
	}

	guide := core.Guide{
		Meta: core.FrontMatter{
			Title:       flagTitle,
			Description: flagDescription,
			Topics:      flagTopics,
			Source:      flagSource,
		},
		Intro:    flagIntro,
		Sections: sections,
	}

	data, err := renderer.Render(guide)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	path, err := writer.WriteArtifact(output.Stem(source), data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s (%d patterns)\n", path, core.TotalPatterns(sections))
	return nil
}

// readGuide loads the guide HTML from a local file, or over HTTP when the
// source has an http(s) scheme. Either failure is fatal for the run.
func readGuide(fetcher core.Fetcher, source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		html, err := fetcher.Fetch(context.Background(), source)
		if err != nil {
			return "", fmt.Errorf("fetch: %w", err)
		}
		return html, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("reading guide: %w", err)
	}
	return string(data), nil
}

// selectRenderer checks the format flags are mutually exclusive and
// creates the matching Renderer. No flag means Markdown.
func selectRenderer() (core.Renderer, error) {
	formatCount := 0
	if flagMarkdown {
		formatCount++
	}
	if flagJSON {
		formatCount++
	}
	if flagPDF {
		formatCount++
	}
	if formatCount > 1 {
		return nil, fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	switch {
	case flagJSON:
		return render.NewJSONRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return render.NewMarkdownRenderer(), nil
	}
}
