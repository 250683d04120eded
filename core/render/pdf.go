// Package render: PDF renderer.
// Lays out the Markdown export as a PDF using gofpdf.
// Handles headings (variable font sizes), paragraphs, code blocks, check items and lists.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/docmark/core"
	"github.com/gaurav-prasanna/docmark/core/markdown"
)

// PDFRenderer renders a document as a PDF.
type PDFRenderer struct {
	emitter *markdown.Emitter
}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer(emitter *markdown.Emitter) *PDFRenderer {
	return &PDFRenderer{emitter: emitter}
}

// Render lays out the document's Markdown export into PDF bytes.
func (r *PDFRenderer) Render(doc *core.Document) ([]byte, error) {
	md, err := r.emitter.Format(doc.Content)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(doc.Title, true)
	pdf.AddPage()
	// Core fonts are cp1252; translate the UTF-8 text before layout.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if title := headerTitle(doc); title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(title), "", "L", false)
		pdf.Ln(4)
	}

	if doc.Source != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+doc.Source), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	inCodeBlock := false
	for _, line := range strings.Split(md, markdown.LineTerminator) {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", true)
			continue
		}

		if strings.TrimSpace(line) == "" {
			pdf.Ln(3)
			continue
		}

		if level := headingDepth(line); level > 0 {
			renderHeading(pdf, tr(strings.TrimSpace(line[level:])), level)
			continue
		}

		trimmed := strings.TrimSpace(line)
		pdf.SetFont("Helvetica", "", 10)
		switch {
		case strings.HasPrefix(trimmed, "[] "):
			pdf.MultiCell(0, 5, tr("[ ] "+cleanInlineMarkdown(trimmed[3:])), "", "L", false)
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			pdf.MultiCell(0, 5, tr("• "+cleanInlineMarkdown(trimmed[2:])), "", "L", false)
		case numberedItem.MatchString(trimmed):
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
		default:
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(line)), "", "L", false)
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

// headerTitle returns the title to print above the content, or "" when
// the content already opens with the same Title step.
func headerTitle(doc *core.Document) string {
	title := strings.TrimSpace(doc.Title)
	if title == "" {
		return ""
	}
	if indices := doc.Content.Indices(); len(indices) > 0 {
		first := doc.Content[indices[0]]
		if first.Type == core.StoryTypeTitle && strings.TrimSpace(first.Text) == title {
			return ""
		}
	}
	return title
}

// headingDepth returns the ATX heading level of line, or 0.
func headingDepth(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level == len(line) || line[level] != ' ' {
		return 0
	}
	return level
}

var headingSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	size, ok := headingSizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, cleanInlineMarkdown(text), "", "L", false)
	pdf.Ln(2)
}

var (
	numberedItem = regexp.MustCompile(`^\d+\.\s`)
	italicRegex  = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	codeRegex    = regexp.MustCompile("`([^`]+)`")
)

// cleanInlineMarkdown strips inline Markdown formatting.
func cleanInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = italicRegex.ReplaceAllString(text, " $1 ")
	text = codeRegex.ReplaceAllString(text, "$1")
	text = linkRegex.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
