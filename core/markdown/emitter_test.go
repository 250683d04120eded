package markdown

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/gaurav-prasanna/docmark/core"
)

func text(s string, tags ...core.Tag) core.StoryStep {
	return core.StoryStep{Type: core.StoryTypeText, Text: s, Tags: tags}
}

func TestFormatExamples(t *testing.T) {
	tests := []struct {
		name    string
		content core.Content
		pretty  bool
		want    string
	}{
		{
			name:    "title",
			content: core.Content{0: {Type: core.StoryTypeTitle, Text: "Hello"}},
			want:    "# Hello\n",
		},
		{
			name:    "pretty h2",
			content: core.Content{0: text("Intro", core.TagH2)},
			pretty:  true,
			want:    "\n## Intro\n\n",
		},
		{
			name:    "pretty plain check item",
			content: core.Content{0: {Type: core.StoryTypeCheckItem, Text: "Buy milk"}},
			pretty:  true,
			want:    "[] Buy milk\n",
		},
		{
			name: "list items compact",
			content: core.Content{
				0: {Type: core.StoryTypeUnorderedListItem, Text: "Item A"},
				1: {Type: core.StoryTypeUnorderedListItem, Text: "Item B"},
			},
			want: "- Item A\n- Item B\n",
		},
		{
			name: "list items pretty",
			content: core.Content{
				0: {Type: core.StoryTypeUnorderedListItem, Text: "Item A"},
				1: {Type: core.StoryTypeUnorderedListItem, Text: "Item B"},
			},
			pretty: true,
			want:   "- Item A\n- Item B\n",
		},
		{
			name:    "compact ignores spacing",
			content: core.Content{0: text("Intro", core.TagH2), 1: text("body")},
			want:    "## Intro\nbody\n",
		},
		{
			name:    "empty content",
			content: core.Content{},
			pretty:  true,
			want:    "",
		},
		{
			name:    "empty text is a content line",
			content: core.Content{0: text(""), 1: text("x")},
			want:    "\nx\n",
		},
		{
			name: "sparse indices in ascending order",
			content: core.Content{
				10: text("third"),
				-3: text("first"),
				4:  text("second"),
			},
			want: "first\nsecond\nthird\n",
		},
		{
			name: "adjacent headings keep both blanks",
			content: core.Content{
				0: text("A", core.TagH1),
				1: text("B", core.TagH2),
			},
			pretty: true,
			want:   "\n# A\n\n\n## B\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.content, RenderStep, tt.pretty)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmitSpacingDirections(t *testing.T) {
	render := func(step core.StoryStep) (Rendered, bool) {
		switch step.Text {
		case "before":
			return Rendered{Spacing: BlankBefore, Text: "before"}, true
		case "after":
			return Rendered{Spacing: BlankAfter, Text: "after"}, true
		}
		return Rendered{Text: step.Text}, true
	}
	content := core.Content{0: text("before"), 1: text("mid"), 2: text("after")}

	got, err := Format(content, render, true)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if want := "\nbefore\nmid\nafter\n\n"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestEmitSkipsDroppedSteps(t *testing.T) {
	render := func(step core.StoryStep) (Rendered, bool) {
		if step.Type == core.StoryTypeOther {
			return Rendered{Spacing: BlankBeforeAndAfter}, false
		}
		return RenderStep(step)
	}
	content := core.Content{
		0: text("a"),
		1: {Type: core.StoryTypeOther, Text: "hidden"},
		2: text("b"),
	}

	for _, pretty := range []bool{false, true} {
		got, err := Format(content, render, pretty)
		if err != nil {
			t.Fatalf("Format: %v", err)
		}
		if got != "a\nb\n" {
			t.Errorf("pretty=%v: Format = %q, want %q", pretty, got, "a\nb\n")
		}
	}
}

func TestPrettyOutputOnlyAddsBlankLines(t *testing.T) {
	content := core.Content{
		0: {Type: core.StoryTypeTitle, Text: "Doc"},
		1: text("Section", core.TagH2),
		2: text("para"),
		3: {Type: core.StoryTypeCheckItem, Text: "todo", Tags: []core.Tag{core.TagH4}},
		4: {Type: core.StoryTypeUnorderedListItem, Text: ""},
		5: {Type: core.StoryTypeOther, Text: "---"},
	}

	var compact, pretty []Line
	collect := func(dst *[]Line) LineSink {
		return LineSinkFunc(func(l Line) error {
			*dst = append(*dst, l)
			return nil
		})
	}
	if err := NewEmitter(RenderStep, false).Emit(content, collect(&compact)); err != nil {
		t.Fatalf("compact Emit: %v", err)
	}
	if err := NewEmitter(RenderStep, true).Emit(content, collect(&pretty)); err != nil {
		t.Fatalf("pretty Emit: %v", err)
	}

	var stripped []Line
	for _, l := range pretty {
		if !l.Blank {
			stripped = append(stripped, l)
		}
	}
	if len(stripped) != len(compact) {
		t.Fatalf("stripped pretty has %d lines, compact has %d", len(stripped), len(compact))
	}
	for i := range compact {
		if compact[i] != stripped[i] {
			t.Errorf("line %d: compact %+v, pretty %+v", i, compact[i], stripped[i])
		}
		if compact[i].Blank {
			t.Errorf("line %d: compact output contains a blank line", i)
		}
	}
	if len(pretty) != len(compact)+4 {
		t.Errorf("pretty has %d lines, want %d", len(pretty), len(compact)+4)
	}
}

func TestEmitStopsOnSinkError(t *testing.T) {
	errFull := errors.New("disk full")
	var calls int
	sink := LineSinkFunc(func(Line) error {
		calls++
		if calls == 2 {
			return errFull
		}
		return nil
	})
	content := core.Content{0: text("a"), 1: text("b"), 2: text("c")}

	err := NewEmitter(RenderStep, false).Emit(content, sink)
	if err != errFull {
		t.Fatalf("Emit error = %v, want the sink error unchanged", err)
	}
	if calls != 2 {
		t.Errorf("sink called %d times after failure, want 2", calls)
	}
}

func TestEmitWithoutRenderer(t *testing.T) {
	err := NewEmitter(nil, false).Emit(core.Content{0: text("a")}, &StringSink{})
	if !errors.Is(err, ErrNoRenderer) {
		t.Fatalf("Emit error = %v, want ErrNoRenderer", err)
	}
}

func TestEmitterFormat(t *testing.T) {
	content := core.Content{0: {Type: core.StoryTypeTitle, Text: "Hello"}, 1: text("Intro", core.TagH2)}
	got, err := NewEmitter(RenderStep, true).Format(content)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if want := "# Hello\n\n## Intro\n\n"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}

	var nilEmitter *Emitter
	if _, err := nilEmitter.Format(content); !errors.Is(err, ErrNoRenderer) {
		t.Errorf("nil emitter error = %v, want ErrNoRenderer", err)
	}
}

func TestWriterSinkMatchesStringSink(t *testing.T) {
	content := core.Content{
		0: {Type: core.StoryTypeTitle, Text: "Hello"},
		1: text("Intro", core.TagH2),
		2: text(""),
	}
	emitter := NewEmitter(RenderStep, true)

	var buf bytes.Buffer
	if err := emitter.Emit(content, NewWriterSink(&buf)); err != nil {
		t.Fatalf("Emit to writer: %v", err)
	}
	var sink StringSink
	if err := emitter.Emit(content, &sink); err != nil {
		t.Fatalf("Emit to string: %v", err)
	}
	if buf.String() != sink.String() {
		t.Errorf("writer output %q differs from string output %q", buf.String(), sink.String())
	}
}

type countingWriter struct{ writes []string }

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, string(p))
	return len(p), nil
}

func TestWriterSinkWritesOncePerLine(t *testing.T) {
	w := &countingWriter{}
	content := core.Content{0: text("Intro", core.TagH1), 1: text("x")}
	if err := NewEmitter(RenderStep, true).Emit(content, NewWriterSink(w)); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	want := []string{"\n", "# Intro\n", "\n", "x\n"}
	if strings.Join(w.writes, "|") != strings.Join(want, "|") {
		t.Errorf("writes = %q, want %q", w.writes, want)
	}
}

func TestEmitterConcurrentUse(t *testing.T) {
	emitter := NewEmitter(RenderStep, true)
	content := core.Content{0: text("Intro", core.TagH2), 1: text("body")}
	want := "\n## Intro\n\nbody\n"

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var sink StringSink
			if err := emitter.Emit(content, &sink); err != nil {
				errs <- err.Error()
				return
			}
			if sink.String() != want {
				errs <- sink.String()
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Errorf("concurrent emit produced %q", e)
	}
}
