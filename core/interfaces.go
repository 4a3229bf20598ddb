// Package core defines the shared data model and pipeline interfaces for
// ruby-snippets. Each stage of a conversion is a clean, testable interface.
package core

import (
	"context"
	"strings"
)

// Category classifies a section for HTML anchors and client-side filtering.
type Category string

// The fixed set of categories a section name can resolve to.
const (
	CategoryModels         Category = "models"
	CategoryControllers    Category = "controllers"
	CategoryFrontend       Category = "frontend"
	CategoryInfrastructure Category = "infrastructure"
	CategoryOther          Category = "other"
)

// Categorize maps a section name to its category by case-insensitive
// substring match. Evaluation order is fixed: a name matching several
// keywords always resolves to the first matching category.
func Categorize(sectionName string) Category {
	name := strings.ToLower(sectionName)
	switch {
	case strings.Contains(name, "model"):
		return CategoryModels
	case strings.Contains(name, "controller"):
		return CategoryControllers
	case strings.Contains(name, "frontend"), strings.Contains(name, "hotwire"):
		return CategoryFrontend
	case strings.Contains(name, "infrastructure"):
		return CategoryInfrastructure
	default:
		return CategoryOther
	}
}

// Pattern is a single documented code example. All fields are optional,
// including Title (a block without a heading is kept): an absent field
// simply omits the corresponding fragment from rendered output. Link
// fields come in pairs captured from the same structural match, so one
// half of a pair is never set without the other.
type Pattern struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DocsURL     string   `json:"docs_url,omitempty"`
	DocsLabel   string   `json:"docs_label,omitempty"`
	SourceURL   string   `json:"source_url,omitempty"`
	SourceFile  string   `json:"source_file,omitempty"`
	Code        string   `json:"code,omitempty"`
	Category    Category `json:"category,omitempty"`
}

// Section is a named grouping of patterns, corresponding to an H2-level
// heading in both the HTML and Markdown representations. Name is the merge
// identity; ID is the HTML anchor captured from the source document.
type Section struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	Patterns []Pattern `json:"patterns"`
}

// TotalPatterns counts patterns across a section sequence.
func TotalPatterns(sections []Section) int {
	total := 0
	for _, s := range sections {
		total += len(s.Patterns)
	}
	return total
}

// FrontMatter is the YAML metadata block prefixed to a Markdown artifact.
type FrontMatter struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Topics      string `yaml:"topics" json:"topics,omitempty"`
	Source      string `yaml:"source" json:"source,omitempty"`
}

// Guide is one pattern collection: front-matter metadata, an optional
// introduction paragraph, and the ordered sections.
type Guide struct {
	Meta     FrontMatter `json:"meta"`
	Intro    string      `json:"intro,omitempty"`
	Sections []Section   `json:"sections"`
}

// Markdown line markers shared by the Markdown renderer and parser. The
// docs-link label is deliberately distinct from the source-link label so a
// single line prefix identifies the field.
const (
	DocsLinePrefix   = "**Rails Docs:**"
	SourceLinePrefix = "**Source:**"
	CodeLanguage     = "ruby"
)

// Fetcher retrieves raw HTML for a guide source given as a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Extractor pulls pattern sections out of a raw HTML guide.
type Extractor interface {
	Extract(html string) ([]Section, error)
}

// Renderer serializes a guide into a single-file output format.
type Renderer interface {
	Render(guide Guide) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md").
	Extension() string
}
