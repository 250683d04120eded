// Package core defines the document model and the pipeline interfaces for docmark.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"time"
)

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL         string
	StatusCode  int
	ContentType string
	HTML        string
}

// DocumentMetadata describes an exported document.
type DocumentMetadata struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Source     string `json:"source,omitempty"`
	Blocks     int    `json:"blocks"`
	ExportedAt string `json:"exported_at"` // ISO8601
}

// MetadataFor builds the export metadata of doc.
func MetadataFor(doc *Document, now time.Time) DocumentMetadata {
	return DocumentMetadata{
		ID:         doc.ID,
		Title:      doc.Title,
		Source:     doc.Source,
		Blocks:     len(doc.Content),
		ExportedAt: now.UTC().Format(time.RFC3339),
	}
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// DocumentSource produces the menu items to export.
type DocumentSource interface {
	Items(ctx context.Context) ([]MenuItem, error)
}

// Renderer converts a document into a final output format.
type Renderer interface {
	Render(doc *Document) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
