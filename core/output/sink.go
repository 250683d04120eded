package output

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/gaurav-prasanna/docmark/core/markdown"
)

// Result describes one written file.
type Result struct {
	Path   string `json:"path"`
	Lines  int    `json:"lines"`
	Bytes  int64  `json:"bytes"`
	Digest string `json:"blake3"`
}

// LineWriteCloser is an open destination accepting emitted lines.
type LineWriteCloser interface {
	markdown.LineSink
	io.Closer
	Result() Result
}

// SinkProvider opens destinations for writing.
type SinkProvider interface {
	Open(path string) (LineWriteCloser, error)
}

// FileProvider opens files on the local filesystem.
type FileProvider struct {
	DirPerm  os.FileMode
	FilePerm os.FileMode
}

// NewFileProvider creates a FileProvider with the usual permissions.
func NewFileProvider() *FileProvider {
	return &FileProvider{DirPerm: 0755, FilePerm: 0644}
}

// Open creates path (and its parent directories), truncating an existing file.
func (p *FileProvider) Open(path string) (LineWriteCloser, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, p.DirPerm); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, p.FilePerm)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return newFileLineWriter(path, f), nil
}

// FileLineWriter writes lines to a file, hashing everything it writes.
type FileLineWriter struct {
	path   string
	f      io.WriteCloser
	hasher *blake3.Hasher
	sink   *markdown.WriterSink
	lines  int
	bytes  int64
	closed bool
}

func newFileLineWriter(path string, f io.WriteCloser) *FileLineWriter {
	w := &FileLineWriter{
		path:   path,
		f:      f,
		hasher: blake3.New(),
	}
	w.sink = markdown.NewWriterSink(io.MultiWriter(f, countWriter{w}, w.hasher))
	return w
}

// WriteLine writes one line. Write errors are returned unchanged.
func (w *FileLineWriter) WriteLine(line markdown.Line) error {
	if w.closed {
		return os.ErrClosed
	}
	if err := w.sink.WriteLine(line); err != nil {
		return err
	}
	w.lines++
	return nil
}

// Close closes the file. It is safe to call more than once.
func (w *FileLineWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("closing %s: %w", w.path, err)
	}
	return nil
}

// Result reports what was written so far.
func (w *FileLineWriter) Result() Result {
	return Result{
		Path:   w.path,
		Lines:  w.lines,
		Bytes:  w.bytes,
		Digest: hex.EncodeToString(w.hasher.Sum(nil)),
	}
}

type countWriter struct{ w *FileLineWriter }

func (c countWriter) Write(p []byte) (int, error) {
	c.w.bytes += int64(len(p))
	return len(p), nil
}
