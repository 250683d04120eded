package output

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/gaurav-prasanna/docmark/core"
)

// Writer writes fully rendered outputs (JSON, PDF, HTML) to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WriteDocument writes data into OutputDir, in a file named after doc.
func (w *Writer) WriteDocument(doc *core.Document, data []byte, ext string) (Result, error) {
	return w.Write(Resolve(doc, w.OutputDir, true, ext), data)
}

// Write stores data at path, creating parent directories as needed.
func (w *Writer) Write(path string, data []byte) (Result, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return Result{}, fmt.Errorf("writing file %s: %w", path, err)
	}

	sum := blake3.Sum256(data)
	return Result{
		Path:   path,
		Lines:  strings.Count(string(data), "\n"),
		Bytes:  int64(len(data)),
		Digest: hex.EncodeToString(sum[:]),
	}, nil
}
