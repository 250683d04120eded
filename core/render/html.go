// Package render: HTML renderer.
// Renders the Markdown export to a standalone HTML page with goldmark.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/gaurav-prasanna/docmark/core"
	"github.com/gaurav-prasanna/docmark/core/markdown"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}</body>
</html>
`))

// HTMLRenderer renders a document as an HTML page.
type HTMLRenderer struct {
	emitter *markdown.Emitter
	engine  goldmark.Markdown
}

// NewHTMLRenderer creates an HTMLRenderer using GitHub-flavoured Markdown.
func NewHTMLRenderer(emitter *markdown.Emitter) *HTMLRenderer {
	return &HTMLRenderer{
		emitter: emitter,
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render converts the document's Markdown export to HTML.
func (r *HTMLRenderer) Render(doc *core.Document) ([]byte, error) {
	md, err := r.emitter.Format(doc.Content)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := r.engine.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("markdown to html: %w", err)
	}

	var page bytes.Buffer
	err = pageTemplate.Execute(&page, struct {
		Title string
		Body  template.HTML
	}{Title: doc.Title, Body: template.HTML(body.String())})
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return page.Bytes(), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
