// Package markdown serializes the story-step document model into Markdown text.
//
// RenderStep classifies and formats a single step, the Emitter walks a
// document's content in index order and pushes the resulting lines into a
// LineSink. Nothing here performs I/O of its own.
package markdown

import "github.com/gaurav-prasanna/docmark/core"

// ContentAdd tells the emitter whether a rendered line wants blank lines
// around it. It is honoured only in pretty-print mode.
type ContentAdd int

const (
	None ContentAdd = iota
	BlankBefore
	BlankAfter
	BlankBeforeAndAfter
)

// LineBefore reports whether a blank line goes before the rendered line.
func (c ContentAdd) LineBefore() bool {
	return c == BlankBefore || c == BlankBeforeAndAfter
}

// LineAfter reports whether a blank line goes after the rendered line.
func (c ContentAdd) LineAfter() bool {
	return c == BlankAfter || c == BlankBeforeAndAfter
}

func (c ContentAdd) String() string {
	switch c {
	case BlankBefore:
		return "blank_before"
	case BlankAfter:
		return "blank_after"
	case BlankBeforeAndAfter:
		return "blank_before_and_after"
	default:
		return "none"
	}
}

// Rendered is the output of a StepRenderer for one step.
type Rendered struct {
	Spacing ContentAdd
	Text    string
}

// StepRenderer renders one story step. A false second result means the
// step produces no line at all and is left out of the output.
type StepRenderer func(step core.StoryStep) (Rendered, bool)

const (
	checkItemPrefix = "[] "
	listItemPrefix  = "- "
)

// headingPrefixes is indexed by heading level.
var headingPrefixes = [...]string{"", "# ", "## ", "### ", "#### "}

// headingTags lists the recognised heading tags in priority order.
var headingTags = [...]core.Tag{core.TagH1, core.TagH2, core.TagH3, core.TagH4}

// RenderStep is the built-in StepRenderer. It is total: every step yields a
// line, unknown step types fall back to their raw text.
func RenderStep(step core.StoryStep) (Rendered, bool) {
	switch step.Type {
	case core.StoryTypeTitle:
		return Rendered{Spacing: None, Text: headingPrefixes[1] + step.Text}, true
	case core.StoryTypeText:
		return RenderTagged(step), true
	case core.StoryTypeCheckItem:
		return prefixed(checkItemPrefix, RenderTagged(step)), true
	case core.StoryTypeUnorderedListItem:
		return prefixed(listItemPrefix, RenderTagged(step)), true
	default:
		return Rendered{Spacing: None, Text: step.Text}, true
	}
}

// RenderTagged renders a step from its heading tag alone. Headings are
// surrounded by blank lines; untagged steps render as plain text.
func RenderTagged(step core.StoryStep) Rendered {
	level := HeadingLevel(step)
	if level == 0 {
		return Rendered{Spacing: None, Text: step.Text}
	}
	return Rendered{Spacing: BlankBeforeAndAfter, Text: headingPrefixes[level] + step.Text}
}

// HeadingLevel returns 1-4 for the first heading tag found in H1..H4 order,
// or 0 when the step carries none.
func HeadingLevel(step core.StoryStep) int {
	for i, tag := range headingTags {
		if step.HasTag(tag) {
			return i + 1
		}
	}
	return 0
}

func prefixed(prefix string, r Rendered) Rendered {
	r.Text = prefix + r.Text
	return r
}
