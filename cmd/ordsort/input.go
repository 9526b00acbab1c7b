package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the YAML input. Sequence mode reads elements, map mode reads
// entries; a list of pairs is used instead of a YAML mapping so that
// duplicate keys reach the map and are reported like any other duplicate.
type document struct {
	Elements []string `yaml:"elements"`
	Entries  []entry  `yaml:"entries"`
}

type entry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// decodeDocument reads one YAML document from r. Empty input is an empty
// document; unknown fields are rejected.
func decodeDocument(r io.Reader) (document, error) {
	var doc document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return doc, fmt.Errorf("decoding input: %w", err)
	}

	return doc, nil
}
