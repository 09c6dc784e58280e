// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the translator's reference tables (constants,
// equation templates, examples and observable predictions) to a single
// YAML or JSON document.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gift-translator/internal/calculator"
	"github.com/pdiddy/gift-translator/pkg/types"
)

// Format selects the export encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" and "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml", "":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown export format %q: use yaml or json", s)
}

// Source provides the translator tables.
type Source interface {
	ListConstants() []types.Constant
	ListEquationTemplates() []types.TemplateInfo
	Examples() []types.Example
}

// Predictor provides observable predictions.
type Predictor interface {
	PredictAll() []types.Prediction
}

// Document is the exported catalog.
type Document struct {
	Constants   []types.Constant        `json:"constants" yaml:"constants"`
	Templates   []types.TemplateInfo    `json:"templates" yaml:"templates"`
	Examples    []types.Example         `json:"examples" yaml:"examples"`
	Predictions []types.Prediction      `json:"predictions" yaml:"predictions"`
	Summary     types.PredictionSummary `json:"summary" yaml:"summary"`
}

// Build assembles the document from src and pred.
func Build(src Source, pred Predictor) (Document, error) {
	preds := pred.PredictAll()
	summary, err := calculator.Summarize(preds)
	if err != nil {
		return Document{}, fmt.Errorf("summarizing predictions: %w", err)
	}
	return Document{
		Constants:   src.ListConstants(),
		Templates:   src.ListEquationTemplates(),
		Examples:    src.Examples(),
		Predictions: preds,
		Summary:     summary,
	}, nil
}

// Write stores doc as <dir>/catalog.yaml or <dir>/catalog.json and returns
// the path written.
func Write(dir string, doc Document, f Format) (string, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	default:
		return "", fmt.Errorf("unknown export format %q", f)
	}
	if err != nil {
		return "", fmt.Errorf("marshaling %s: %w", f, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(dir, "catalog."+string(f))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Read loads a document written by Write. JSON is valid YAML, so both
// formats decode the same way.
func Read(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading export: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parsing export %s: %w", path, err)
	}
	return doc, nil
}
