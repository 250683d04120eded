package load

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/gaurav-prasanna/docmark/core"
)

const listingJSON = `{
  "items": [
    {"kind": "folder", "id": "f1", "title": "Notes"},
    {"kind": "document", "id": "d1", "title": "Groceries", "parent_id": "f1",
     "content": {
       "2": {"type": "check_item", "text": "Buy milk"},
       "0": {"type": "title", "text": "Groceries"},
       "1": {"type": "text", "text": "Today", "tags": ["H2", "HIGHLIGHT"]},
       "3": {"type": "image", "text": "photo.png"},
       "4": {"type": "unordered_list_item", "text": null}
     }},
    {"title": "No kind, no id"}
  ]
}`

func TestReadItemsListing(t *testing.T) {
	items, err := ReadItems(strings.NewReader(listingJSON))
	if err != nil {
		t.Fatalf("ReadItems: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	folder, ok := items[0].(*core.Folder)
	if !ok || folder.ID != "f1" || folder.Title != "Notes" {
		t.Fatalf("item 0 = %#v, want folder f1", items[0])
	}

	doc, ok := items[1].(*core.Document)
	if !ok {
		t.Fatalf("item 1 = %T, want *core.Document", items[1])
	}
	if doc.ParentID != "f1" || len(doc.Content) != 5 {
		t.Fatalf("document = %+v", doc)
	}
	if got := doc.Content.Indices(); len(got) != 5 || got[0] != 0 || got[4] != 4 {
		t.Errorf("indices = %v", got)
	}
	if doc.Content[2].Type != core.StoryTypeCheckItem {
		t.Errorf("step 2 type = %v", doc.Content[2].Type)
	}
	if !doc.Content[1].HasTag(core.TagH2) || !doc.Content[1].HasTag("HIGHLIGHT") {
		t.Errorf("step 1 tags = %v", doc.Content[1].Tags)
	}
	if doc.Content[3].Type != core.StoryTypeOther {
		t.Errorf("unknown type decoded as %v, want other", doc.Content[3].Type)
	}
	if doc.Content[4].Text != "" {
		t.Errorf("null text decoded as %q", doc.Content[4].Text)
	}

	generated, ok := items[2].(*core.Document)
	if !ok {
		t.Fatalf("item 2 = %T, want *core.Document", items[2])
	}
	if _, err := uuid.Parse(generated.ID); err != nil {
		t.Errorf("generated id %q is not a UUID: %v", generated.ID, err)
	}
	if generated.Content == nil {
		t.Error("expected empty content map, got nil")
	}
}

func TestReadItemsSingleDocument(t *testing.T) {
	items, err := ReadItems(strings.NewReader(`{"id": "x", "title": "Solo", "content": {"0": {"type": "title", "text": "Solo"}}}`))
	if err != nil {
		t.Fatalf("ReadItems: %v", err)
	}
	if len(items) != 1 || items[0].ItemID() != "x" {
		t.Fatalf("items = %v", items)
	}
}

func TestReadItemsNumericTypes(t *testing.T) {
	items, err := ReadItems(strings.NewReader(`{"id": "n", "content": {
  "0": {"type": 1, "text": "Heading"},
  "1": {"type": 3, "text": "Task"},
  "2": {"type": "text", "text": "Body"}
}}`))
	if err != nil {
		t.Fatalf("ReadItems: %v", err)
	}
	doc := items[0].(*core.Document)
	want := []core.StoryType{core.StoryTypeTitle, core.StoryTypeCheckItem, core.StoryTypeText}
	for i, typ := range want {
		if doc.Content[i].Type != typ {
			t.Errorf("step %d type = %v, want %v", i, doc.Content[i].Type, typ)
		}
	}
}

func TestReadItemsErrors(t *testing.T) {
	tests := map[string]string{
		"not json":       `{"items": [`,
		"unknown kind":   `{"items": [{"kind": "widget"}]}`,
		"bad content":    `{"items": [{"content": {"abc": {"type": "text"}}}]}`,
		"top-level list": `[]`,
	}
	for name, input := range tests {
		if _, err := ReadItems(strings.NewReader(input)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.json")
	if err := os.WriteFile(path, []byte(listingJSON), 0644); err != nil {
		t.Fatal(err)
	}

	items, err := File{Path: path}.Items(context.Background())
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	if _, err := (File{Path: filepath.Join(t.TempDir(), "missing.json")}).Items(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}
