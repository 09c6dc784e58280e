// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gift-translator/pkg/types"
)

func loadConfig(t *testing.T, content string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "gift-translator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())
}

func TestTranslatorConfigFromFile(t *testing.T) {
	loadConfig(t, `translator:
  max_input_length: 512
  evaluator:
    max_depth: 50
  rewrite:
    fractions: true
    fraction_rules:
      - tag: halves
        denominator: 2
        format: "({n} × 0.5)"
batch:
  workers: 8
server:
  addr: "127.0.0.1:9090"
  request_timeout: 3s
`)
	cfg, err := translatorConfig()
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.MaxInputLength)
	assert.Equal(t, 50, cfg.Evaluator.MaxDepth)
	assert.Equal(t, 0, cfg.Evaluator.MaxLength)
	assert.True(t, cfg.Rewrite.Fractions)
	assert.Equal(t, []types.FractionRuleConfig{{Tag: "halves", Denominator: 2, Format: "({n} × 0.5)"}}, cfg.Rewrite.FractionRules)

	assert.Equal(t, 8, batchConfig().Workers)
	srv := serverConfig()
	assert.Equal(t, "127.0.0.1:9090", srv.Addr)
	assert.Equal(t, 3*time.Second, srv.RequestTimeout)

	tr, err := newTranslator()
	require.NoError(t, err)
	res := tr.Translate("α + 1/2", types.SourceToTarget)
	assert.Contains(t, res.Explanation, "halves")
}

func TestTranslatorConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := translatorConfig()
	require.NoError(t, err)
	assert.Equal(t, types.TranslatorConfig{}, cfg)

	_, err = newTranslator()
	assert.NoError(t, err)
}

func TestNewTranslatorRejectsBadRules(t *testing.T) {
	loadConfig(t, `translator:
  rewrite:
    fractions: true
    fraction_rules:
      - tag: broken
        denominator: -3
        format: "x"
`)
	_, err := newTranslator()
	assert.Error(t, err)
}

func TestParseDirectionFlag(t *testing.T) {
	d, err := parseDirection("")
	require.NoError(t, err)
	assert.Equal(t, types.SourceToTarget, d)

	d, err = parseDirection("gift-to-sm")
	require.NoError(t, err)
	assert.Equal(t, types.TargetToSource, d)

	_, err = parseDirection("up")
	assert.Error(t, err)
}
