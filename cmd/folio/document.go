package main

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// doc is a document descriptor loaded from disk. The raw bytes are
// kept so updates preserve fields folio does not know about.
type doc struct {
	path     string
	raw      []byte
	Title    string
	Value    string
	Geometry string
}

func readDocument(path string) (*doc, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("read document: %s is not valid JSON", path)
	}
	return &doc{
		path:     path,
		raw:      raw,
		Title:    gjson.GetBytes(raw, "title").String(),
		Value:    gjson.GetBytes(raw, "value").String(),
		Geometry: gjson.GetBytes(raw, "geometry").String(),
	}, nil
}

// writeValue updates the descriptor's value and page count in place,
// leaving all other fields untouched.
func (d *doc) writeValue(value string, pageCount int) error {
	raw, err := sjson.SetBytes(d.raw, "value", value)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	raw, err = sjson.SetBytes(raw, "pageCount", pageCount)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if err := os.WriteFile(d.path, raw, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	d.raw = raw
	d.Value = value
	return nil
}
