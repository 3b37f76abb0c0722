package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// itemsKey is the top-level member holding the catalog items.
const itemsKey = "items"

// File describes one output file of an item.
type File struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// Item is one publishable catalog entry.
type Item struct {
	Name                 string   `json:"name"`
	Type                 string   `json:"type"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Files                []File   `json:"files"`
	Dependencies         []string `json:"dependencies,omitempty"`
	RegistryDependencies []string `json:"registryDependencies,omitempty"`

	// raw is the JSON an item was loaded from. It is written back unchanged.
	raw json.RawMessage
}

// itemFields breaks the MarshalJSON/UnmarshalJSON recursion.
type itemFields Item

// MarshalJSON writes loaded items exactly as they were read.
func (it Item) MarshalJSON() ([]byte, error) {
	if it.raw != nil {
		return it.raw, nil
	}
	return marshal(itemFields(it))
}

// UnmarshalJSON decodes the modeled fields and keeps the original JSON.
func (it *Item) UnmarshalJSON(data []byte) error {
	var f itemFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*it = Item(f)
	it.raw = append(json.RawMessage(nil), data...)
	return nil
}

// member is a top-level member of the catalog object.
type member struct {
	key   string
	value json.RawMessage // nil for the items member
}

// Document is a parsed catalog. Members other than items are kept verbatim
// and in file order.
type Document struct {
	Items []Item

	members []member
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("catalog must be a JSON object")
	}

	doc := &Document{}
	haveItems := false
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading catalog: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in catalog", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("reading catalog member %q: %w", key, err)
		}

		if key != itemsKey {
			doc.members = append(doc.members, member{key: key, value: value})
			continue
		}
		if haveItems {
			return nil, fmt.Errorf("duplicate %q member in catalog", itemsKey)
		}
		haveItems = true
		if err := json.Unmarshal(value, &doc.Items); err != nil {
			return nil, fmt.Errorf("decoding catalog items: %w", err)
		}
		doc.members = append(doc.members, member{key: itemsKey})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after catalog object")
	}

	if !haveItems {
		return nil, fmt.Errorf("catalog has no %q member", itemsKey)
	}
	if doc.Items == nil {
		doc.Items = []Item{}
	}
	if name, ok := duplicateName(doc.Items); ok {
		return nil, fmt.Errorf("duplicate item name %q in catalog", name)
	}

	return doc, nil
}

// Marshal encodes the document with 2-space indentation. HTML characters are
// not escaped and there is no trailing newline.
func (d *Document) Marshal() ([]byte, error) {
	items := d.Items
	if items == nil {
		items = []Item{}
	}

	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, m := range d.members {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := marshal(m.key)
		if err != nil {
			return nil, err
		}
		compact.Write(key)
		compact.WriteByte(':')

		value := []byte(m.value)
		if m.key == itemsKey {
			if value, err = marshal(items); err != nil {
				return nil, fmt.Errorf("encoding catalog items: %w", err)
			}
		}
		compact.Write(value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("indenting catalog: %w", err)
	}
	return out.Bytes(), nil
}

// Names returns the set of item names.
func (d *Document) Names() map[string]bool {
	names := make(map[string]bool, len(d.Items))
	for _, it := range d.Items {
		names[it.Name] = true
	}
	return names
}

// Sort orders items ascending by name using byte-wise comparison.
func (d *Document) Sort() {
	slices.SortStableFunc(d.Items, func(a, b Item) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// CountByType returns the number of items per item type.
func (d *Document) CountByType() map[string]int {
	counts := make(map[string]int)
	for _, it := range d.Items {
		counts[it.Type]++
	}
	return counts
}

func duplicateName(items []Item) (string, bool) {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.Name] {
			return it.Name, true
		}
		seen[it.Name] = true
	}
	return "", false
}

// marshal encodes v as compact JSON without HTML escaping.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
