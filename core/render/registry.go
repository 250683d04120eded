package render

import (
	"fmt"
	"sort"

	"github.com/gaurav-prasanna/docmark/core"
	"github.com/gaurav-prasanna/docmark/core/markdown"
)

// Format names accepted by ForFormat.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatPDF      = "pdf"
	FormatHTML     = "html"
)

// renderers maps a format name to its constructor.
var renderers = map[string]func(*markdown.Emitter) core.Renderer{
	FormatMarkdown: func(e *markdown.Emitter) core.Renderer { return NewMarkdownRenderer(e) },
	FormatJSON:     func(e *markdown.Emitter) core.Renderer { return NewJSONRenderer(e) },
	FormatPDF:      func(e *markdown.Emitter) core.Renderer { return NewPDFRenderer(e) },
	FormatHTML:     func(e *markdown.Emitter) core.Renderer { return NewHTMLRenderer(e) },
}

// ForFormat returns the renderer registered for format. All renderers share
// an emitter using the built-in step renderer.
func ForFormat(format string, prettyPrint bool) (core.Renderer, error) {
	ctor, ok := renderers[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (want one of %v)", format, Formats())
	}
	return ctor(markdown.NewEmitter(markdown.RenderStep, prettyPrint)), nil
}

// Formats returns the registered format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
