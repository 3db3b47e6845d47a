package gamedata

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// decodeYAML strictly decodes a YAML catalog; unknown keys are rejected
func decodeYAML(raw []byte) (*catalogFile, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML catalog: %w", err)
	}
	return &f, nil
}
