// Package output resolves export destinations and writes exported documents
// to disk.
package output

import (
	"path/filepath"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/gaurav-prasanna/docmark/core"
)

// MarkdownExtension is the extension of exported Markdown files.
const MarkdownExtension = ".md"

const untitled = "untitled"

// Resolve computes the destination of doc. With usePath the file is named
// after the document inside the directory path; otherwise path is used as
// is, with ext appended when it does not already end with it.
func Resolve(doc *core.Document, path string, usePath bool, ext string) string {
	if usePath {
		return filepath.Join(path, Name(doc)+ext)
	}
	if strings.HasSuffix(path, ext) {
		return path
	}
	return path + ext
}

// Name derives a file name (without extension) from the document title,
// falling back to its ID, then to "untitled" when neither yields a slug.
func Name(doc *core.Document) string {
	for _, candidate := range []string{doc.Title, doc.ID} {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		normalized, err := slug.Normalize(candidate)
		if err == nil && normalized != "" {
			return normalized
		}
	}
	return untitled
}

