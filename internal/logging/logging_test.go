package logging

import (
	"context"
	"testing"

	glog "github.com/goliatone/go-logger/glog"
)

func TestNewProviderCreatesLogger(t *testing.T) {
	p, err := NewProvider(Config{Level: "debug", Format: "console"})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}

	logger := p.GetLogger(ExportModule)
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}
	logger.Debug("provider.initialised", "module", ExportModule)

	if root := p.GetLogger(""); root == nil {
		t.Fatal("expected root logger, got nil")
	}
}

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNilProviderIsNoOp(t *testing.T) {
	var p *Provider
	logger := p.GetLogger(ExportModule)
	if _, ok := logger.(noop); !ok {
		t.Fatalf("expected no-op logger, got %T", logger)
	}
	logger.WithContext(context.Background()).Info("ignored")
}

func TestOrNoOp(t *testing.T) {
	if _, ok := OrNoOp(nil).(noop); !ok {
		t.Fatal("expected no-op logger for nil input")
	}
	var custom glog.Logger = noop{}
	if OrNoOp(custom) != custom {
		t.Fatal("expected logger to be passed through")
	}
}

func TestNormalizeLevel(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"DEBUG":   glog.Debug,
		" warn ":  glog.Warn,
		"warning": glog.Warn,
		"bogus":   "",
	}
	for in, want := range tests {
		if got := normalizeLevel(in); got != want {
			t.Errorf("normalizeLevel(%q) = %q, want %q", in, got, want)
		}
	}
}
