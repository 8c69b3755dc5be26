package jx

import (
	"fmt"

	"github.com/jx-format/go-jx/ir"

	"github.com/goccy/go-yaml"
)

// FromYAML decodes one YAML document and converts it to a Node via the
// FromAny category rules (YAML integers become float64 Numbers).
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return node, nil
}
