// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gift-translator/internal/translate"
	"github.com/pdiddy/gift-translator/pkg/types"
)

func newTranslator(t *testing.T) *translate.Translator {
	t.Helper()
	tr, err := translate.New(types.TranslatorConfig{})
	require.NoError(t, err)
	return tr
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadInput(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "in.yaml", `direction: gift-to-sm
expressions:
  - "ξ × τ"
  - "x = 1 + 1"
`)
	in, err := LoadInput(path)
	require.NoError(t, err)
	assert.Equal(t, types.TargetToSource, in.Direction)
	assert.Equal(t, []string{"ξ × τ", "x = 1 + 1"}, in.Expressions)
}

func TestLoadInputDefaultsToSourceToTarget(t *testing.T) {
	path := writeFile(t, t.TempDir(), "in.yaml", "expressions: [\"E = mc²\"]\n")
	in, err := LoadInput(path)
	require.NoError(t, err)
	assert.Equal(t, types.SourceToTarget, in.Direction)
}

func TestLoadInputErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadInput(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadInput(writeFile(t, dir, "empty.yaml", "direction: sm-to-gift\n"))
	assert.ErrorContains(t, err, "no expressions")

	_, err = LoadInput(writeFile(t, dir, "baddir.yaml", "direction: sideways\nexpressions: [a]\n"))
	assert.ErrorContains(t, err, "unknown direction")
}

func TestRunPreservesOrder(t *testing.T) {
	var exprs []string
	for i := 0; i < 50; i++ {
		exprs = append(exprs, fmt.Sprintf("x = %d + 1", i))
	}
	exprs = append(exprs, "α = e²/(4πε₀ℏc)", "ξ × τ", "α + 1", "")

	var log bytes.Buffer
	report, err := Run(context.Background(), newTranslator(t),
		Input{Direction: types.SourceToTarget, Expressions: exprs},
		types.BatchConfig{Workers: 3}, &log)
	require.NoError(t, err)

	require.Len(t, report.Items, len(exprs))
	for i, item := range report.Items {
		assert.Equal(t, i, item.Index)
		assert.Equal(t, exprs[i], item.Expression)
	}
	assert.Equal(t, 54, report.Total)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 50, report.Methods[types.MethodNoTranslationNeeded])
	assert.Equal(t, 1, report.Methods[types.MethodPatternMatching])
	assert.Equal(t, 1, report.Methods[types.MethodMathematicalEvaluation])
	assert.Equal(t, 1, report.Methods[types.MethodSymbolicReplacement])

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)
	assert.Contains(t, log.String(), report.RunID)
	assert.Contains(t, log.String(), "53 translated, 1 failed")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, newTranslator(t),
		Input{Expressions: []string{"a", "b", "c"}}, types.BatchConfig{Workers: 1}, io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteReport(t *testing.T) {
	report, err := Run(context.Background(), newTranslator(t),
		Input{Direction: types.TargetToSource, Expressions: []string{"ξ × τ", "α_gift"}},
		types.BatchConfig{}, io.Discard)
	require.NoError(t, err)

	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "out", "report.yaml")
	require.NoError(t, WriteReport(yamlPath, report))
	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	var fromYAML Report
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Equal(t, report.RunID, fromYAML.RunID)
	assert.Equal(t, types.TargetToSource, fromYAML.Direction)
	require.Len(t, fromYAML.Items, 2)
	assert.Equal(t, report.Items[0].Result.Translated, fromYAML.Items[0].Result.Translated)
	assert.Contains(t, string(data), "direction: gift-to-sm")

	jsonPath := filepath.Join(dir, "report.json")
	require.NoError(t, WriteReport(jsonPath, report))
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON Report
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, 1, fromJSON.Methods[types.MethodSymbolicReplacement])
	require.NotNil(t, fromJSON.Items[0].Result.CalculatedValue)
	assert.InDelta(t, 3.825447, *fromJSON.Items[0].Result.CalculatedValue, 1e-6)
}
