// Package render — JSON renderer.
// Emits the extracted guide as a structured JSON document for downstream
// tooling: metadata, sections with per-section pattern counts and derived
// categories, and overall totals.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/swistaczek/ruby-snippets/core"
)

// guideDocument is the JSON output shape.
type guideDocument struct {
	Meta          core.FrontMatter `json:"meta"`
	Intro         string           `json:"intro,omitempty"`
	Sections      []sectionSummary `json:"sections"`
	TotalSections int              `json:"total_sections"`
	TotalPatterns int              `json:"total_patterns"`
}

// sectionSummary is one section plus its derived category and count.
type sectionSummary struct {
	ID           string         `json:"id,omitempty"`
	Name         string         `json:"name"`
	Category     core.Category  `json:"category"`
	PatternCount int            `json:"pattern_count"`
	Patterns     []core.Pattern `json:"patterns"`
}

// JSONRenderer produces structured JSON output for a guide.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the guide with per-section summaries.
func (r *JSONRenderer) Render(g core.Guide) ([]byte, error) {
	doc := guideDocument{
		Meta:          g.Meta,
		Intro:         g.Intro,
		Sections:      make([]sectionSummary, 0, len(g.Sections)),
		TotalSections: len(g.Sections),
		TotalPatterns: core.TotalPatterns(g.Sections),
	}

	for _, sec := range g.Sections {
		doc.Sections = append(doc.Sections, sectionSummary{
			ID:           sec.ID,
			Name:         sec.Name,
			Category:     core.Categorize(sec.Name),
			PatternCount: len(sec.Patterns),
			Patterns:     sec.Patterns,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
