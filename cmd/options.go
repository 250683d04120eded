package cmd

import (
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gaurav-prasanna/docmark/core/render"
)

// convertOptions collects the flags of the convert command.
type convertOptions struct {
	Source string

	Markdown bool
	JSON     bool
	PDF      bool
	HTML     bool

	Pretty    bool
	All       bool
	OutputDir string
	Output    string

	LogLevel  string
	LogFormat string
}

// format returns the selected output format. Validate guarantees exactly one.
func (o convertOptions) format() string {
	switch {
	case o.Markdown:
		return render.FormatMarkdown
	case o.JSON:
		return render.FormatJSON
	case o.PDF:
		return render.FormatPDF
	case o.HTML:
		return render.FormatHTML
	}
	return ""
}

func (o convertOptions) formatCount() int {
	n := 0
	for _, set := range []bool{o.Markdown, o.JSON, o.PDF, o.HTML} {
		if set {
			n++
		}
	}
	return n
}

// isURL reports whether the source is a web page rather than a JSON file.
func (o convertOptions) isURL() bool {
	return isWebURL(o.Source)
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Validate checks the option combination before anything is fetched or written.
func (o convertOptions) Validate() error {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Source, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("convert.source_required", "source is required")
			}
			return nil
		})),
		validation.Field(&o.All, validation.By(func(value any) error {
			if value.(bool) && !o.isURL() {
				return validation.NewError("convert.all_requires_url", "--all needs an http(s) URL source")
			}
			return nil
		})),
		validation.Field(&o.Output, validation.By(func(value any) error {
			if value.(string) != "" && o.OutputDir != "" {
				return validation.NewError("convert.output_conflict", "--output and --output_dir are mutually exclusive")
			}
			return nil
		})),
		validation.Field(&o.LogLevel, validation.In("trace", "debug", "info", "warn", "warning", "error", "fatal")),
		validation.Field(&o.LogFormat, validation.In("console", "json", "pretty")),
	)
	if err != nil {
		return err
	}

	switch o.formatCount() {
	case 0:
		return validation.Errors{
			"format": validation.NewError("convert.format_required",
				"exactly one output format is required: --markdown, --json, --pdf or --html"),
		}
	case 1:
		return nil
	default:
		return validation.Errors{
			"format": validation.NewError("convert.format_conflict", "only one output format allowed per run"),
		}
	}
}
