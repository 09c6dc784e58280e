// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch translates a file of expressions concurrently and writes a
// report with one result per expression, in input order.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/gift-translator/pkg/types"
)

const defaultWorkers = 4

// Translator is the part of the translation orchestrator a batch run needs.
type Translator interface {
	Translate(expr string, d types.Direction) types.TranslationResult
}

// Input is the batch file format.
type Input struct {
	Direction   types.Direction `json:"direction" yaml:"direction"`
	Expressions []string        `json:"expressions" yaml:"expressions"`
}

// Item is one translated expression.
type Item struct {
	Index      int                     `json:"index" yaml:"index"`
	Expression string                  `json:"expression" yaml:"expression"`
	Result     types.TranslationResult `json:"result" yaml:"result"`
}

// Report is the output of a batch run.
type Report struct {
	RunID     string               `json:"run_id" yaml:"run_id"`
	Direction types.Direction      `json:"direction" yaml:"direction"`
	StartedAt time.Time            `json:"started_at" yaml:"started_at"`
	ElapsedMS int64                `json:"elapsed_ms" yaml:"elapsed_ms"`
	Total     int                  `json:"total" yaml:"total"`
	Failed    int                  `json:"failed" yaml:"failed"`
	Methods   map[types.Method]int `json:"methods" yaml:"methods"`
	Items     []Item               `json:"items" yaml:"items"`
}

// LoadInput reads a YAML (or JSON, which is valid YAML) batch file.
func LoadInput(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("reading batch file: %w", err)
	}
	var in Input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return Input{}, fmt.Errorf("parsing batch file %s: %w", path, err)
	}
	if len(in.Expressions) == 0 {
		return Input{}, fmt.Errorf("batch file %s has no expressions", path)
	}
	return in, nil
}

// Run translates every expression of in with at most cfg.Workers
// concurrent translations. Progress goes to w. Results keep input order.
func Run(ctx context.Context, tr Translator, in Input, cfg types.BatchConfig, w io.Writer) (Report, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	report := Report{
		RunID:     uuid.NewString(),
		Direction: in.Direction,
		StartedAt: time.Now().UTC(),
		Total:     len(in.Expressions),
		Methods:   make(map[types.Method]int),
		Items:     make([]Item, len(in.Expressions)),
	}
	fmt.Fprintf(w, "batch %s: %d expressions, %s, %d workers\n",
		report.RunID, report.Total, in.Direction.Label(), workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	var done atomic.Int64
	for i, expr := range in.Expressions {
		i, expr := i, expr
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Items[i] = Item{
				Index:      i,
				Expression: expr,
				Result:     tr.Translate(expr, in.Direction),
			}
			if n := done.Add(1); n%100 == 0 {
				fmt.Fprintf(w, "  %d/%d translated\n", n, report.Total)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("batch %s interrupted: %w", report.RunID, err)
	}

	for _, item := range report.Items {
		if !item.Result.Success {
			report.Failed++
			continue
		}
		report.Methods[item.Result.Method]++
	}
	report.ElapsedMS = time.Since(report.StartedAt).Milliseconds()
	fmt.Fprintf(w, "batch %s: %d translated, %d failed\n", report.RunID, report.Total-report.Failed, report.Failed)
	return report, nil
}

// WriteReport writes r to path as JSON when the extension is .json and as
// YAML otherwise.
func WriteReport(path string, r Report) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(r, "", "  ")
	} else {
		data, err = yaml.Marshal(r)
	}
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
