package markdown

import (
	"errors"

	"github.com/gaurav-prasanna/docmark/core"
)

// ErrNoRenderer is returned by a nil Emitter or one without a StepRenderer.
var ErrNoRenderer = errors.New("markdown: emitter has no step renderer")

// Emitter drives a StepRenderer across a document's content and applies the
// spacing policy. It keeps no state between calls and is safe for
// concurrent use.
type Emitter struct {
	Render      StepRenderer
	PrettyPrint bool
}

// NewEmitter creates an Emitter.
func NewEmitter(render StepRenderer, prettyPrint bool) *Emitter {
	return &Emitter{Render: render, PrettyPrint: prettyPrint}
}

// Emit renders content in ascending index order and pushes the lines to
// sink. Steps the renderer drops produce nothing, not even spacing. The
// first sink error stops the walk and is returned unchanged.
func (e *Emitter) Emit(content core.Content, sink LineSink) error {
	if e == nil || e.Render == nil {
		return ErrNoRenderer
	}

	for _, idx := range content.Indices() {
		r, ok := e.Render(content[idx])
		if !ok {
			continue
		}

		if e.PrettyPrint && r.Spacing.LineBefore() {
			if err := sink.WriteLine(BlankLine); err != nil {
				return err
			}
		}

		if err := sink.WriteLine(TextLine(r.Text)); err != nil {
			return err
		}

		if e.PrettyPrint && r.Spacing.LineAfter() {
			if err := sink.WriteLine(BlankLine); err != nil {
				return err
			}
		}
	}
	return nil
}

// Format renders content into a single Markdown string.
func (e *Emitter) Format(content core.Content) (string, error) {
	var sink StringSink
	if err := e.Emit(content, &sink); err != nil {
		return "", err
	}
	return sink.String(), nil
}

// Format renders content into a single Markdown string with a one-off Emitter.
func Format(content core.Content, render StepRenderer, prettyPrint bool) (string, error) {
	return NewEmitter(render, prettyPrint).Format(content)
}
