// Package render — PDF renderer.
// Produces a printable version of a guide using gofpdf: title block,
// section headings with pattern counts, and per-pattern title,
// description, link lines, and shaded monospace code blocks.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/swistaczek/ruby-snippets/core"
)

// PDFRenderer renders a guide as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the guide into PDF bytes.
func (r *PDFRenderer) Render(g core.Guide) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if g.Meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, g.Meta.Title, "", "L", false)
		pdf.Ln(2)
	}

	if g.Meta.Source != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, "Source: "+g.Meta.Source, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	if g.Intro != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, g.Intro, "", "L", false)
		pdf.Ln(4)
	}

	for _, sec := range g.Sections {
		if len(sec.Patterns) == 0 {
			continue
		}
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 15)
		pdf.MultiCell(0, 9, fmt.Sprintf("%s (%d patterns)", sec.Name, len(sec.Patterns)), "", "L", false)
		pdf.Ln(2)

		for _, p := range sec.Patterns {
			renderPatternPDF(pdf, p)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderPatternPDF writes one pattern: bold title, description, link
// lines in gray italic, then the code block in shaded monospace.
func renderPatternPDF(pdf *gofpdf.Fpdf, p core.Pattern) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 7, p.Title, "", "L", false)

	if p.Description != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, p.Description, "", "L", false)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	if p.DocsURL != "" {
		pdf.MultiCell(0, 4.5, "Rails Docs: "+p.DocsLabel+" ("+p.DocsURL+")", "", "L", false)
	}
	if p.SourceURL != "" && p.SourceFile != "" {
		pdf.MultiCell(0, 4.5, "Source: "+p.SourceFile+" ("+p.SourceURL+")", "", "L", false)
	}
	pdf.SetTextColor(0, 0, 0)

	if p.Code != "" {
		pdf.Ln(2)
		pdf.SetFont("Courier", "", 9)
		pdf.SetFillColor(245, 245, 245)
		for _, line := range strings.Split(p.Code, "\n") {
			pdf.MultiCell(0, 4.5, line, "", "L", true)
		}
		pdf.Ln(2)
	}
}
