package export

import (
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/brookplot/internal/palette"
)

// Entry is one palette in the YAML document
type Entry struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Purpose  string   `json:"purpose"`
	Colors   []string `json:"colors"`
	Advisory string   `json:"advisory,omitempty"`
}

// Document is the top level of the YAML export
type Document struct {
	Palettes []Entry `json:"palettes"`
}

// NewDocument converts palettes to their exported form
func NewDocument(palettes []palette.Palette) Document {
	doc := Document{Palettes: make([]Entry, 0, len(palettes))}
	for _, p := range palettes {
		e := Entry{
			Name:    string(p.Name()),
			Kind:    string(p.Kind()),
			Purpose: string(p.Purpose()),
			Colors:  p.Hex(),
		}
		if msg, ok := p.Advisory(); ok {
			e.Advisory = msg
		}
		doc.Palettes = append(doc.Palettes, e)
	}
	return doc
}

// YAML writes palettes as a YAML document
func YAML(w io.Writer, palettes []palette.Palette) error {
	data, err := yaml.Marshal(NewDocument(palettes))
	if err != nil {
		return fmt.Errorf("failed to marshal palettes: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write yaml: %w", err)
	}
	return nil
}

// ReadYAML parses a document written by YAML
func ReadYAML(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read yaml: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return doc, nil
}
