// Package render writes a filter report as plain text, JSON, YAML or a
// lipgloss-styled terminal view.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/searchadvisor/catalogue"
)

// ErrUnknownFormat is returned by New for an unsupported format name.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format names accepted by New.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatPretty = "pretty"
)

// NoCandidates is printed when the filter retains nothing.
const NoCandidates = "No candidate algorithms can satisfy this problem's requirements."

// Report is everything a renderer needs for one query.
type Report struct {
	Requirement catalogue.Requirement `json:"requirement" yaml:"requirement"`
	Result      catalogue.Result      `json:"result" yaml:"result"`
	// Eliminated is filled only when the caller asked for explanations.
	Eliminated []catalogue.Verdict `json:"eliminated,omitempty" yaml:"eliminated,omitempty"`
}

// NewReport filters cat for req. When explain is set, the verdicts of the
// eliminated records are attached as well.
func NewReport(cat *catalogue.Catalogue, req catalogue.Requirement, explain bool) Report {
	rep := Report{Requirement: req, Result: cat.Filter(req)}
	if explain {
		for _, v := range cat.Evaluate(req) {
			if !v.Retained() {
				rep.Eliminated = append(rep.Eliminated, v)
			}
		}
	}

	return rep
}

// Renderer writes a Report.
type Renderer interface {
	Render(w io.Writer, rep Report) error
}

// New returns the renderer for format (case-insensitive).
func New(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return Text{}, nil
	case FormatJSON:
		return JSON{}, nil
	case FormatYAML:
		return YAML{}, nil
	case FormatPretty:
		return NewPretty(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// joinReasons formats a verdict's reasons on one line.
func joinReasons(rs []catalogue.Reason) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}

	return strings.Join(parts, "; ")
}
