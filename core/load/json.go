// Package load reads document listings from JSON.
//
// A listing is either a single document object or an object with an
// "items" array mixing documents and folders:
//
//	{"items": [
//	  {"kind": "folder", "id": "f1", "title": "Notes"},
//	  {"kind": "document", "title": "Hello", "content": {"0": {"type": "title", "text": "Hello"}}}
//	]}
//
// Items without a kind are documents. A step type is either its name or
// its numeric code (0 other, 1 title, 2 text, 3 check_item,
// 4 unordered_list_item).
package load

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/gaurav-prasanna/docmark/core"
)

const (
	kindDocument = "document"
	kindFolder   = "folder"
)

type listing struct {
	Items []json.RawMessage `json:"items"`
}

type itemKind struct {
	Kind string `json:"kind"`
}

// ReadItems decodes a listing from r.
func ReadItems(r io.Reader) ([]core.MenuItem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading listing: %w", err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decoding listing: %w", err)
	}

	raw := []json.RawMessage{data}
	if _, ok := probe["items"]; ok {
		var l listing
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("decoding listing: %w", err)
		}
		raw = l.Items
	}

	items := make([]core.MenuItem, 0, len(raw))
	for i, msg := range raw {
		item, err := decodeItem(msg)
		if err != nil {
			return nil, fmt.Errorf("decoding item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeItem(msg json.RawMessage) (core.MenuItem, error) {
	var k itemKind
	if err := json.Unmarshal(msg, &k); err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(k.Kind)) {
	case "", kindDocument:
		var doc core.Document
		if err := json.Unmarshal(msg, &doc); err != nil {
			return nil, err
		}
		if doc.ID == "" {
			doc.ID = uuid.NewString()
		}
		if doc.Content == nil {
			doc.Content = core.Content{}
		}
		return &doc, nil
	case kindFolder:
		var f core.Folder
		if err := json.Unmarshal(msg, &f); err != nil {
			return nil, err
		}
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		return &f, nil
	default:
		return nil, fmt.Errorf("unknown item kind %q", k.Kind)
	}
}

// File is a DocumentSource reading a listing from a JSON file.
type File struct {
	Path string
}

var _ core.DocumentSource = File{}

// Items opens and decodes the file.
func (f File) Items(ctx context.Context) ([]core.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.Path, err)
	}
	defer fh.Close()
	return ReadItems(fh)
}
