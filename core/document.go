package core

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// StoryType classifies a story step. The set is closed: anything the
// exporter does not know about is StoryTypeOther.
type StoryType int

const (
	StoryTypeOther StoryType = iota
	StoryTypeTitle
	StoryTypeText
	StoryTypeCheckItem
	StoryTypeUnorderedListItem
)

var storyTypeNames = map[StoryType]string{
	StoryTypeOther:             "other",
	StoryTypeTitle:             "title",
	StoryTypeText:              "text",
	StoryTypeCheckItem:         "check_item",
	StoryTypeUnorderedListItem: "unordered_list_item",
}

func (t StoryType) String() string {
	if name, ok := storyTypeNames[t]; ok {
		return name
	}
	return storyTypeNames[StoryTypeOther]
}

// ParseStoryType maps a type name to a StoryType. Unknown names map to
// StoryTypeOther.
func ParseStoryType(name string) StoryType {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range storyTypeNames {
		if n == name {
			return t
		}
	}
	return StoryTypeOther
}

// MarshalText implements encoding.TextMarshaler.
func (t StoryType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *StoryType) UnmarshalText(text []byte) error {
	*t = ParseStoryType(string(text))
	return nil
}

// UnmarshalJSON accepts a type name or a numeric type code. Unknown names
// and codes decode to StoryTypeOther.
func (t *StoryType) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err == nil {
		if _, ok := storyTypeNames[StoryType(code)]; !ok {
			code = int(StoryTypeOther)
		}
		*t = StoryType(code)
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("story type must be a name or a number: %s", data)
	}
	*t = ParseStoryType(name)
	return nil
}

// Tag is a semantic annotation on a story step.
type Tag string

// Heading tags. Other tag values are carried but carry no Markdown meaning.
const (
	TagH1 Tag = "H1"
	TagH2 Tag = "H2"
	TagH3 Tag = "H3"
	TagH4 Tag = "H4"
)

// StoryStep is one unit of document content.
type StoryStep struct {
	Type StoryType `json:"type"`
	Text string    `json:"text"`
	Tags []Tag     `json:"tags,omitempty"`
}

// HasTag reports whether the step carries tag.
func (s StoryStep) HasTag(tag Tag) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Content maps a block index to its story step. Indices order the blocks
// and need not be contiguous.
type Content map[int]StoryStep

// Indices returns the block indices in ascending order.
func (c Content) Indices() []int {
	indices := make([]int, 0, len(c))
	for i := range c {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// MenuItem is an entry of a document listing: a Document or a Folder.
type MenuItem interface {
	ItemID() string
	ItemTitle() string
}

// Document is a titled, ordered collection of story steps.
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ParentID  string    `json:"parent_id,omitempty"`
	Source    string    `json:"source,omitempty"`
	Content   Content   `json:"content"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

func (d *Document) ItemID() string    { return d.ID }
func (d *Document) ItemTitle() string { return d.Title }

// Folder groups menu items. It has no content of its own.
type Folder struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ParentID string `json:"parent_id,omitempty"`
}

func (f *Folder) ItemID() string    { return f.ID }
func (f *Folder) ItemTitle() string { return f.Title }
