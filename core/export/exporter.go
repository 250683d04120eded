// Package export writes documents to Markdown files.
//
// It combines the collaborators around the Markdown emitter: a selector that
// keeps only documents out of a menu listing, the output path resolver, and
// a sink provider that owns the destination files.
package export

import (
	"context"
	"errors"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/gaurav-prasanna/docmark/core"
	"github.com/gaurav-prasanna/docmark/core/markdown"
	"github.com/gaurav-prasanna/docmark/core/output"
	"github.com/gaurav-prasanna/docmark/internal/logging"
)

// DocumentWriter exports documents to a destination format.
type DocumentWriter interface {
	// WriteDocuments exports every document in items. With usePath, path is
	// a directory and files are named after the documents; otherwise path
	// is the destination file itself.
	WriteDocuments(ctx context.Context, items []core.MenuItem, path string, usePath bool) ([]output.Result, error)
	// WriteDocument exports a single document to path.
	WriteDocument(ctx context.Context, doc *core.Document, path string) (output.Result, error)
}

// SelectDocuments keeps the documents of items, in order.
func SelectDocuments(items []core.MenuItem) []*core.Document {
	docs := make([]*core.Document, 0, len(items))
	for _, item := range items {
		if doc, ok := item.(*core.Document); ok && doc != nil {
			docs = append(docs, doc)
		}
	}
	return docs
}

// MarkdownExporter is the Markdown DocumentWriter.
type MarkdownExporter struct {
	emitter  *markdown.Emitter
	provider output.SinkProvider
	logger   glog.Logger
}

var _ DocumentWriter = (*MarkdownExporter)(nil)

// Option configures a MarkdownExporter.
type Option func(*MarkdownExporter)

// WithLogger sets the exporter logger.
func WithLogger(logger glog.Logger) Option {
	return func(e *MarkdownExporter) {
		e.logger = logging.OrNoOp(logger)
	}
}

// WithSinkProvider replaces the filesystem sink provider.
func WithSinkProvider(provider output.SinkProvider) Option {
	return func(e *MarkdownExporter) {
		if provider != nil {
			e.provider = provider
		}
	}
}

// NewMarkdownExporter creates an exporter rendering with emitter.
func NewMarkdownExporter(emitter *markdown.Emitter, opts ...Option) *MarkdownExporter {
	e := &MarkdownExporter{
		emitter:  emitter,
		provider: output.NewFileProvider(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Format renders doc into a Markdown string.
func (e *MarkdownExporter) Format(doc *core.Document) (string, error) {
	return e.emitter.Format(doc.Content)
}

// WriteDocuments exports the documents of items one after the other. It
// stops at the first failure and returns the results written before it.
func (e *MarkdownExporter) WriteDocuments(ctx context.Context, items []core.MenuItem, path string, usePath bool) ([]output.Result, error) {
	docs := SelectDocuments(items)
	e.logger.Debug("export.selected", "items", len(items), "documents", len(docs))

	results := make([]output.Result, 0, len(docs))
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := e.write(doc, output.Resolve(doc, path, usePath, output.MarkdownExtension))
		if err != nil {
			e.logger.Error("export.failed", "document", doc.ID, "error", err)
			return results, err
		}
		e.logger.Info("export.written", "document", doc.ID, "path", res.Path, "lines", res.Lines)
		results = append(results, res)
	}
	return results, nil
}

// WriteDocument exports doc to path, appending the Markdown extension when
// missing.
func (e *MarkdownExporter) WriteDocument(ctx context.Context, doc *core.Document, path string) (output.Result, error) {
	if err := ctx.Err(); err != nil {
		return output.Result{}, err
	}
	if doc == nil {
		return output.Result{}, errors.New("export: nil document")
	}
	res, err := e.write(doc, output.Resolve(doc, path, false, output.MarkdownExtension))
	if err != nil {
		e.logger.Error("export.failed", "document", doc.ID, "error", err)
		return output.Result{}, err
	}
	e.logger.Info("export.written", "document", doc.ID, "path", res.Path, "lines", res.Lines)
	return res, nil
}

func (e *MarkdownExporter) write(doc *core.Document, path string) (res output.Result, err error) {
	// No destination is opened without a step renderer.
	if e.emitter == nil || e.emitter.Render == nil {
		return output.Result{}, markdown.ErrNoRenderer
	}

	w, err := e.provider.Open(path)
	if err != nil {
		return output.Result{}, err
	}
	defer func() {
		if closeErr := w.Close(); err == nil && closeErr != nil {
			res, err = output.Result{}, closeErr
		}
	}()

	if err := e.emitter.Emit(doc.Content, w); err != nil {
		return output.Result{}, err
	}
	return w.Result(), nil
}
