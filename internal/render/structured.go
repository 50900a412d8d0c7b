package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the machine-readable envelope shared by JSON and YAML.
type document struct {
	Report `yaml:",inline"`
	Empty  bool   `json:"empty" yaml:"empty"`
	Notice string `json:"notice,omitempty" yaml:"notice,omitempty"`
}

func newDocument(rep Report) document {
	doc := document{Report: rep, Empty: rep.Result.Empty()}
	if doc.Empty {
		doc.Notice = NoCandidates
	}

	return doc
}

// JSON writes the report as indented JSON.
type JSON struct{}

// Render implements Renderer.
func (JSON) Render(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(newDocument(rep))
}

// YAML writes the report as a YAML document.
type YAML struct{}

// Render implements Renderer.
func (YAML) Render(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(rep)); err != nil {
		return err
	}

	return enc.Close()
}
