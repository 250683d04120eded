// Package render provides output renderers for exported documents.
// Markdown is the canonical format: the other renderers start from the
// Markdown produced by the emitter.
package render

import (
	"github.com/gaurav-prasanna/docmark/core"
	"github.com/gaurav-prasanna/docmark/core/markdown"
	"github.com/gaurav-prasanna/docmark/core/output"
)

// MarkdownRenderer renders a document with the Markdown emitter.
type MarkdownRenderer struct {
	emitter *markdown.Emitter
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(emitter *markdown.Emitter) *MarkdownRenderer {
	return &MarkdownRenderer{emitter: emitter}
}

// Render returns the document as Markdown.
func (r *MarkdownRenderer) Render(doc *core.Document) ([]byte, error) {
	md, err := r.emitter.Format(doc.Content)
	if err != nil {
		return nil, err
	}
	return []byte(md), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return output.MarkdownExtension
}
