// Package logging wires go-logger for docmark and provides a no-op logger
// for library callers that do not configure one.
package logging

import (
	"context"
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Module names used for child loggers.
const (
	RootModule   = "docmark"
	ExportModule = "docmark.export"
	IngestModule = "docmark.ingest"
	CrawlModule  = "docmark.crawl"
)

// Config captures the options exposed by the go-logger adapter.
type Config struct {
	Level     string
	Format    string
	AddSource bool
}

// Provider hands out module loggers backed by a single go-logger root.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider constructs a provider from cfg.
func NewProvider(cfg Config) (*Provider, error) {
	options := []glog.Option{}

	if level := normalizeLevel(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}

	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}

	return &Provider{root: glog.NewLogger(options...)}, nil
}

// GetLogger returns the logger for module, or the root logger when module
// is empty. A nil provider yields a no-op logger.
func (p *Provider) GetLogger(module string) glog.Logger {
	if p == nil || p.root == nil {
		return NoOp()
	}
	module = strings.TrimSpace(module)
	if module == "" {
		return p.root
	}
	return p.root.GetLogger(module)
}

// OrNoOp returns logger, or a no-op logger when it is nil.
func OrNoOp(logger glog.Logger) glog.Logger {
	if logger == nil {
		return NoOp()
	}
	return logger
}

// NoOp returns a logger that discards everything.
func NoOp() glog.Logger {
	return noop{}
}

type noop struct{}

func (noop) Trace(string, ...any)                      {}
func (noop) Debug(string, ...any)                      {}
func (noop) Info(string, ...any)                       {}
func (noop) Warn(string, ...any)                       {}
func (noop) Error(string, ...any)                      {}
func (noop) Fatal(string, ...any)                      {}
func (n noop) WithContext(context.Context) glog.Logger { return n }

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	case "fatal":
		return glog.Fatal
	default:
		return ""
	}
}
