package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/unity-forge/backend/internal/models"
)

// EmptyManifest is the package manifest written into new projects.
const EmptyManifest = "{\n  \"dependencies\": {}\n}\n"

// Manifest is a Packages/manifest.json document. Dependencies are editable;
// other top-level keys such as scopedRegistries are carried through as-is.
type Manifest struct {
	Dependencies map[string]string
	extra        map[string]json.RawMessage
}

// ParseManifest reads a package manifest. Empty input yields an empty manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	m := &Manifest{
		Dependencies: make(map[string]string),
		extra:        make(map[string]json.RawMessage),
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return m, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing manifest: %v: %w", err, models.ErrInvalidInput)
	}
	for key, value := range raw {
		if key == "dependencies" {
			if err := json.Unmarshal(value, &m.Dependencies); err != nil {
				return nil, fmt.Errorf("parsing manifest dependencies: %v: %w", err, models.ErrInvalidInput)
			}
			if m.Dependencies == nil {
				m.Dependencies = make(map[string]string)
			}
			continue
		}
		m.extra[key] = value
	}
	return m, nil
}

// Merge adds or overwrites the given package versions.
func (m *Manifest) Merge(packages map[string]string) {
	if m.Dependencies == nil {
		m.Dependencies = make(map[string]string)
	}
	for name, version := range packages {
		m.Dependencies[name] = version
	}
}

// Encode writes the manifest as indented JSON with sorted keys.
func (m *Manifest) Encode() ([]byte, error) {
	doc := make(map[string]any, len(m.extra)+1)
	for k, v := range m.extra {
		doc[k] = v
	}
	deps := m.Dependencies
	if deps == nil {
		deps = map[string]string{}
	}
	doc["dependencies"] = deps

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return append(data, '\n'), nil
}
