package model

import (
	"encoding/json"
)

// Document is a schema-less profile tree as returned by the enrichment API.
// The upstream owns the shape, so fields are read through optional lookups
// rather than decoded into fixed structs.
type Document map[string]any

// ParseDocument decodes a raw JSON object into a Document.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Str returns the string value at key, if present and a string.
func (d Document) Str(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Section returns the nested object at key.
func (d Document) Section(key string) (Document, bool) {
	v, ok := d[key]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Document(m), true
}

// Items returns the array of objects at key. Non-object elements are skipped.
func (d Document) Items(key string) []Document {
	v, ok := d[key]
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	items := make([]Document, 0, len(arr))
	for _, el := range arr {
		if m, ok := el.(map[string]any); ok {
			items = append(items, Document(m))
		}
	}
	return items
}
