// Package cmd: convert command.
// This is the main command that orchestrates the pipeline:
// load (JSON file, or fetch → ingest) → select documents → render → write.
//
// It handles flag validation, renderer selection, and the --all crawl mode.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/docmark/core"
	"github.com/gaurav-prasanna/docmark/core/export"
	"github.com/gaurav-prasanna/docmark/core/fetch"
	"github.com/gaurav-prasanna/docmark/core/ingest"
	"github.com/gaurav-prasanna/docmark/core/load"
	"github.com/gaurav-prasanna/docmark/core/markdown"
	"github.com/gaurav-prasanna/docmark/core/output"
	"github.com/gaurav-prasanna/docmark/core/render"
	"github.com/gaurav-prasanna/docmark/crawl"
	"github.com/gaurav-prasanna/docmark/internal/logging"
)

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <source>",
		Short: "Export the documents of a source to the specified output format",
		Long: `Convert loads documents from a JSON listing or a web page and writes each
document in the specified output format (Markdown, JSON, PDF or HTML).

Examples:
  docmark convert notes.json --markdown --pretty
  docmark convert notes.json --markdown --output ./out/all.md
  docmark convert https://example.com --json --output_dir ./out
  docmark convert https://example.com --all --html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Source = args[0]
			return runConvert(cmd.Context(), cmd.OutOrStdout(), *opts)
		},
	}

	flags := cmd.Flags()

	// Output format flags (mutually exclusive).
	flags.BoolVar(&opts.Markdown, "markdown", false, "Output Markdown")
	flags.BoolVar(&opts.JSON, "json", false, "Output structured JSON")
	flags.BoolVar(&opts.PDF, "pdf", false, "Output PDF")
	flags.BoolVar(&opts.HTML, "html", false, "Output HTML")

	flags.BoolVar(&opts.Pretty, "pretty", false, "Surround headings with blank lines")
	flags.BoolVar(&opts.All, "all", false, "Convert all discovered pages of a URL source")

	// Destination.
	flags.StringVar(&opts.OutputDir, "output_dir", "", "Output directory, files named after documents (default: current directory)")
	flags.StringVar(&opts.Output, "output", "", "Literal output file, extension appended when missing")

	flags.StringVar(&opts.LogLevel, "log_level", "warn", "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.LogFormat, "log_format", "console", "Log format (console, json, pretty)")

	return cmd
}

func runConvert(ctx context.Context, out io.Writer, opts convertOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := opts.Validate(); err != nil {
		return wrapValidationError(err)
	}

	logs, err := logging.NewProvider(logging.Config{Level: opts.LogLevel, Format: opts.LogFormat})
	if err != nil {
		return wrapValidationError(err)
	}

	source, err := newSource(ctx, out, opts, logs)
	if err != nil {
		return wrapSourceError(err)
	}

	items, err := source.Items(ctx)
	if err != nil {
		return wrapSourceError(err)
	}

	var results []output.Result
	if opts.Markdown {
		results, err = exportMarkdown(ctx, opts, items, logs)
	} else {
		results, err = exportRendered(ctx, opts, items, logs)
	}

	// Report what was written even when a later document failed.
	for _, res := range results {
		fmt.Fprintf(out, "✓ Written: %s\n", res.Path)
	}
	if err != nil {
		return wrapExportError(err)
	}
	if len(results) == 0 {
		fmt.Fprintln(out, "No documents to export")
	}
	return nil
}

// newSource selects the document source: a JSON file, a single page, or
// every page discovered from a start URL.
func newSource(ctx context.Context, out io.Writer, opts convertOptions, logs *logging.Provider) (core.DocumentSource, error) {
	if !opts.isURL() {
		return load.File{Path: opts.Source}, nil
	}

	fetcher := fetch.New()
	urls := []string{opts.Source}

	if opts.All {
		fmt.Fprintf(out, "Discovering pages from %s...\n", opts.Source)

		discoverer := crawl.NewDiscoverer(fetcher)
		discoverer.Logger = logs.GetLogger(logging.CrawlModule)

		discovered, err := discoverer.Discover(ctx, opts.Source)
		if err != nil {
			return nil, fmt.Errorf("discovering pages: %w", err)
		}
		urls = discovered
		fmt.Fprintf(out, "Found %d pages to process\n", len(urls))
	}

	return &ingest.Pages{
		URLs:       urls,
		Fetcher:    fetcher,
		Builder:    ingest.New(),
		SkipErrors: opts.All,
		Logger:     logs.GetLogger(logging.IngestModule),
	}, nil
}

// exportMarkdown streams every document through the Markdown exporter.
func exportMarkdown(ctx context.Context, opts convertOptions, items []core.MenuItem, logs *logging.Provider) ([]output.Result, error) {
	exporter := export.NewMarkdownExporter(
		markdown.NewEmitter(markdown.RenderStep, opts.Pretty),
		export.WithLogger(logs.GetLogger(logging.ExportModule)),
	)

	if opts.Output != "" {
		return exporter.WriteDocuments(ctx, items, opts.Output, false)
	}

	dir, err := outputDir(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	return exporter.WriteDocuments(ctx, items, dir, true)
}

// exportRendered renders every document to a byte format and writes it.
func exportRendered(ctx context.Context, opts convertOptions, items []core.MenuItem, logs *logging.Provider) ([]output.Result, error) {
	logger := logs.GetLogger(logging.ExportModule)

	renderer, err := render.ForFormat(opts.format(), opts.Pretty)
	if err != nil {
		return nil, err
	}

	writer, err := output.New(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output writer: %w", err)
	}

	docs := export.SelectDocuments(items)
	results := make([]output.Result, 0, len(docs))
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		data, err := renderer.Render(doc)
		if err != nil {
			return results, fmt.Errorf("render %s: %w", doc.ID, err)
		}

		var res output.Result
		if opts.Output != "" {
			res, err = writer.Write(output.Resolve(doc, opts.Output, false, renderer.Extension()), data)
		} else {
			res, err = writer.WriteDocument(doc, data, renderer.Extension())
		}
		if err != nil {
			logger.Error("export.failed", "document", doc.ID, "error", err)
			return results, err
		}
		logger.Info("export.written", "document", doc.ID, "path", res.Path, "bytes", res.Bytes)
		results = append(results, res)
	}
	return results, nil
}

func outputDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return wd, nil
}
