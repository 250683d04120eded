package markdown

import (
	"io"
	"strings"
)

// LineTerminator ends every emitted line.
const LineTerminator = "\n"

// Line is one emitted line. A Blank line is distinct from a text line whose
// Text is empty: the first comes from spacing, the second from content.
type Line struct {
	Text  string
	Blank bool
}

// BlankLine is the line injected by spacing directives.
var BlankLine = Line{Blank: true}

// TextLine returns a content line.
func TextLine(text string) Line {
	return Line{Text: text}
}

// LineSink consumes emitted lines in order.
type LineSink interface {
	WriteLine(line Line) error
}

// LineSinkFunc adapts a function to LineSink.
type LineSinkFunc func(line Line) error

// WriteLine calls f(line).
func (f LineSinkFunc) WriteLine(line Line) error {
	return f(line)
}

// StringSink accumulates lines into a single string. Every line, blank or
// not, is followed by LineTerminator.
type StringSink struct {
	b strings.Builder
}

// WriteLine appends line. It never fails.
func (s *StringSink) WriteLine(line Line) error {
	if !line.Blank {
		s.b.WriteString(line.Text)
	}
	s.b.WriteString(LineTerminator)
	return nil
}

// String returns everything written so far.
func (s *StringSink) String() string {
	return s.b.String()
}

// WriterSink forwards each line to an io.Writer with a single Write call.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a WriterSink over w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteLine writes line followed by LineTerminator. Errors from the
// underlying writer are returned as is.
func (s *WriterSink) WriteLine(line Line) error {
	text := LineTerminator
	if !line.Blank {
		text = line.Text + LineTerminator
	}
	_, err := io.WriteString(s.w, text)
	return err
}
