package ingest

import (
	"context"
	"fmt"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/gaurav-prasanna/docmark/core"
	"github.com/gaurav-prasanna/docmark/internal/logging"
)

// Pages is a DocumentSource that fetches and ingests a list of URLs.
type Pages struct {
	URLs    []string
	Fetcher core.Fetcher
	Builder *Builder
	// SkipErrors logs failing pages and carries on instead of aborting.
	SkipErrors bool
	Logger     glog.Logger
}

var _ core.DocumentSource = (*Pages)(nil)

// Items fetches every URL in order and returns one document per page.
func (p *Pages) Items(ctx context.Context) ([]core.MenuItem, error) {
	logger := logging.OrNoOp(p.Logger)
	builder := p.Builder
	if builder == nil {
		builder = New()
	}

	items := make([]core.MenuItem, 0, len(p.URLs))
	for i, url := range p.URLs {
		if err := ctx.Err(); err != nil {
			return items, err
		}

		logger.Info("ingest.page", "index", i+1, "total", len(p.URLs), "url", url)
		doc, err := p.ingest(ctx, builder, url)
		if err != nil {
			if !p.SkipErrors {
				return items, err
			}
			logger.Warn("ingest.skipped", "url", url, "error", err)
			continue
		}
		items = append(items, doc)
	}
	return items, nil
}

func (p *Pages) ingest(ctx context.Context, builder *Builder, url string) (*core.Document, error) {
	res, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	doc, err := builder.Build(res.HTML, res.URL)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", url, err)
	}
	return doc, nil
}
