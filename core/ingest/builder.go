package ingest

import (
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/gaurav-prasanna/docmark/core"
)

const (
	blockSelector = "h1,h2,h3,h4,h5,h6,p,li,pre,blockquote"
	// Blocks nested in these are already covered by the enclosing block.
	coveringSelector = "h1,h2,h3,h4,h5,h6,p,pre,blockquote"
	// A list item's text includes its paragraphs and headings, but nested
	// list items stay separate steps.
	itemCoveringSelector = coveringSelector + ",li"
)

var headingTags = map[string]core.Tag{
	"h1": core.TagH1,
	"h2": core.TagH2,
	"h3": core.TagH3,
	"h4": core.TagH4,
}

// Builder converts HTML pages into documents.
type Builder struct {
	now   func() time.Time
	newID func() string
}

// New creates a Builder.
func New() *Builder {
	return &Builder{now: time.Now, newID: uuid.NewString}
}

// Build converts html into a document. sourceURL is recorded on the
// document and may be empty.
func (b *Builder) Build(html, sourceURL string) (*core.Document, error) {
	page, container, err := parse(html)
	if err != nil {
		return nil, err
	}

	now := b.now().UTC()
	doc := &core.Document{
		ID:        b.newID(),
		Title:     pageTitle(page),
		Source:    sourceURL,
		Content:   core.Content{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	next := 0
	add := func(step core.StoryStep) {
		doc.Content[next] = step
		next++
	}

	if title := collapse(page.Find("head title").First().Text()); title != "" {
		add(core.StoryStep{Type: core.StoryTypeTitle, Text: title})
	}

	container.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		if step, ok := classify(s); ok {
			add(step)
		}
	})

	return doc, nil
}

// classify maps one block element to a story step.
func classify(s *goquery.Selection) (core.StoryStep, bool) {
	name := goquery.NodeName(s)
	covering := itemCoveringSelector
	if name == "li" {
		covering = coveringSelector
	}
	if s.ParentsFiltered(covering).Length() > 0 {
		return core.StoryStep{}, false
	}

	switch name {
	case "h1", "h2", "h3", "h4":
		return textStep(core.StoryTypeText, inlineText(s), headingTags[name])
	case "h5", "h6", "p", "blockquote":
		return textStep(core.StoryTypeText, inlineText(s), "")
	case "pre":
		return textStep(core.StoryTypeOther, strings.Trim(s.Text(), "\n"), "")
	case "li":
		return listItem(s)
	}
	return core.StoryStep{}, false
}

func listItem(s *goquery.Selection) (core.StoryStep, bool) {
	item := s.Clone()
	item.Find("ul,ol").Remove()

	checkboxes := item.Find(`input[type="checkbox"]`)
	checked := checkboxes.Length() > 0
	checkboxes.Remove()
	item.Find("input").Remove()

	text := inlineText(item)
	switch {
	case checked:
		return textStep(core.StoryTypeCheckItem, text, "")
	case goquery.NodeName(s.Parent()) == "ol":
		return textStep(core.StoryTypeOther, text, "")
	default:
		return textStep(core.StoryTypeUnorderedListItem, text, "")
	}
}

func textStep(typ core.StoryType, text string, tag core.Tag) (core.StoryStep, bool) {
	if text == "" {
		return core.StoryStep{}, false
	}
	step := core.StoryStep{Type: typ, Text: text}
	if tag != "" {
		step.Tags = []core.Tag{tag}
	}
	return step, true
}

// inlineText renders the inner HTML of s as single-line Markdown.
func inlineText(s *goquery.Selection) string {
	inner, err := s.Html()
	if err != nil {
		return collapse(s.Text())
	}
	md, err := htmltomarkdown.ConvertString(inner)
	if err != nil {
		return collapse(s.Text())
	}
	return collapse(md)
}
