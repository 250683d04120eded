// Package ingest turns HTML pages into story-step documents.
//
// The page is reduced to its main content container, then every block-level
// element becomes one story step. Headings h1-h4 keep their level as a tag,
// list items become list or check items, and inline markup inside a block is
// kept as Markdown text.
package ingest

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are HTML elements removed before extraction.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"nav", "footer", "header", "aside",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// containerTags are tried in order to find the main content.
var containerTags = []string{"main", "article", "body"}

// parse reads html and returns the document together with its main
// content container.
func parse(html string) (*goquery.Document, *goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	for _, tag := range containerTags {
		if sel := doc.Find(tag); sel.Length() > 0 {
			return doc, sel.First(), nil
		}
	}
	return nil, nil, fmt.Errorf("no content container found in HTML")
}

// pageTitle returns the <title> text, or the first h1 when there is none.
func pageTitle(doc *goquery.Document) string {
	if title := collapse(doc.Find("head title").First().Text()); title != "" {
		return title
	}
	return collapse(doc.Find("h1").First().Text())
}

// collapse joins whitespace runs into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
