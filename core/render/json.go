// Package render: JSON renderer.
// Builds a structured JSON view of a document: metadata, the Markdown
// export, heading-delimited sections and structural counts.
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gaurav-prasanna/docmark/core"
	"github.com/gaurav-prasanna/docmark/core/markdown"
)

// Section is a heading-delimited part of a document.
type Section struct {
	Heading string `json:"heading"`
	Level   int    `json:"level"`
	Text    string `json:"text"`
}

// Heading is a single heading of a document.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link is a Markdown link found in the document text.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// DocumentContent holds the Markdown export and its sections.
type DocumentContent struct {
	Markdown string    `json:"markdown"`
	Sections []Section `json:"sections"`
}

// DocumentStructure summarises the blocks of a document.
type DocumentStructure struct {
	Headings   []Heading      `json:"headings"`
	Links      []Link         `json:"links"`
	Blocks     map[string]int `json:"blocks"`
	CheckItems int            `json:"check_items"`
	ListItems  int            `json:"list_items"`
}

// DocumentJSON is the complete JSON output for a single document.
type DocumentJSON struct {
	Metadata  core.DocumentMetadata `json:"metadata"`
	Content   DocumentContent       `json:"content"`
	Structure DocumentStructure     `json:"structure"`
}

// JSONRenderer produces structured JSON output for a document.
type JSONRenderer struct {
	emitter *markdown.Emitter
	now     func() time.Time
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer(emitter *markdown.Emitter) *JSONRenderer {
	return &JSONRenderer{emitter: emitter, now: time.Now}
}

// Render converts the document into the JSON structure.
func (r *JSONRenderer) Render(doc *core.Document) ([]byte, error) {
	md, err := r.emitter.Format(doc.Content)
	if err != nil {
		return nil, err
	}

	structure := DocumentStructure{
		Headings: extractHeadings(doc),
		Links:    extractLinks(md),
		Blocks:   map[string]int{},
	}
	for _, step := range doc.Content {
		structure.Blocks[step.Type.String()]++
	}
	structure.CheckItems = structure.Blocks[core.StoryTypeCheckItem.String()]
	structure.ListItems = structure.Blocks[core.StoryTypeUnorderedListItem.String()]

	out := DocumentJSON{
		Metadata: core.MetadataFor(doc, r.now()),
		Content: DocumentContent{
			Markdown: md,
			Sections: buildSections(doc),
		},
		Structure: structure,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// headingOf returns the heading level of step: 1 for titles, the tag level
// for text steps, 0 otherwise.
func headingOf(step core.StoryStep) int {
	switch step.Type {
	case core.StoryTypeTitle:
		return 1
	case core.StoryTypeText:
		return markdown.HeadingLevel(step)
	}
	return 0
}

func extractHeadings(doc *core.Document) []Heading {
	headings := []Heading{}
	for _, idx := range doc.Content.Indices() {
		step := doc.Content[idx]
		if level := headingOf(step); level > 0 {
			headings = append(headings, Heading{Level: level, Text: strings.TrimSpace(step.Text)})
		}
	}
	return headings
}

// linkRegex matches Markdown links [text](url).
var linkRegex = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

func extractLinks(md string) []Link {
	matches := linkRegex.FindAllStringSubmatch(md, -1)
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, Link{Text: m[1], Href: m[2]})
	}
	return links
}

// buildSections groups the rendered lines under the heading preceding them.
// Content before the first heading is not part of any section.
func buildSections(doc *core.Document) []Section {
	var sections []Section
	var current *Section
	var lines []string

	flush := func() {
		if current != nil {
			current.Text = strings.TrimSpace(strings.Join(lines, "\n"))
			sections = append(sections, *current)
		}
	}

	for _, idx := range doc.Content.Indices() {
		step := doc.Content[idx]
		if level := headingOf(step); level > 0 {
			flush()
			current = &Section{Heading: strings.TrimSpace(step.Text), Level: level}
			lines = nil
			continue
		}
		if current == nil {
			continue
		}
		if r, ok := markdown.RenderStep(step); ok {
			lines = append(lines, r.Text)
		}
	}
	flush()

	if sections == nil {
		return []Section{}
	}
	return sections
}
