package dataset

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed tide.yaml
var tideYAML []byte

// doc is the package-level dataset, set by init().
var doc *Document

func init() {
	d, err := Parse(tideYAML)
	if err != nil {
		panic(fmt.Sprintf("dataset: invalid embedded data: %v", err))
	}
	doc = d
}

// Default returns the embedded quiz dataset. Callers must not modify it.
func Default() *Document {
	return doc
}

// Parse decodes and validates a YAML dataset.
func Parse(data []byte) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validateShape(raw); err != nil {
		return nil, err
	}

	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := validateDocument(&d); err != nil {
		return nil, err
	}
	return &d, nil
}
