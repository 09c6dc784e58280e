// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/pdiddy/gift-translator/internal/translate"
	"github.com/pdiddy/gift-translator/pkg/types"
)

// Config keys. Nested keys map to sections of gift-translator.yaml and to
// GIFT_TRANSLATOR_* environment variables with dots replaced by underscores.
const (
	keyMaxInputLength = "translator.max_input_length"
	keyMaxDepth       = "translator.evaluator.max_depth"
	keyMaxLength      = "translator.evaluator.max_length"
	keyFractions      = "translator.rewrite.fractions"
	keyFractionRules  = "translator.rewrite.fraction_rules"
	keyWorkers        = "batch.workers"
	keyAddr           = "server.addr"
	keyRequestTimeout = "server.request_timeout"
	keyMaxBodyBytes   = "server.max_body_bytes"
)

// yamlTags makes viper decode structs by their yaml tags, so config files
// use the same field names as batch and export files.
func yamlTags(c *mapstructure.DecoderConfig) {
	c.TagName = "yaml"
}

func translatorConfig() (types.TranslatorConfig, error) {
	cfg := types.TranslatorConfig{
		MaxInputLength: viper.GetInt(keyMaxInputLength),
		Evaluator: types.EvaluatorConfig{
			MaxDepth:  viper.GetInt(keyMaxDepth),
			MaxLength: viper.GetInt(keyMaxLength),
		},
		Rewrite: types.RewriteConfig{
			Fractions: viper.GetBool(keyFractions),
		},
	}
	if viper.IsSet(keyFractionRules) {
		if err := viper.UnmarshalKey(keyFractionRules, &cfg.Rewrite.FractionRules, yamlTags); err != nil {
			return types.TranslatorConfig{}, fmt.Errorf("reading %s: %w", keyFractionRules, err)
		}
	}
	return cfg, nil
}

func newTranslator() (*translate.Translator, error) {
	cfg, err := translatorConfig()
	if err != nil {
		return nil, err
	}
	return translate.New(cfg)
}

func batchConfig() types.BatchConfig {
	return types.BatchConfig{Workers: viper.GetInt(keyWorkers)}
}

func serverConfig() types.ServerConfig {
	return types.ServerConfig{
		Addr:           viper.GetString(keyAddr),
		RequestTimeout: viper.GetDuration(keyRequestTimeout),
		MaxBodyBytes:   viper.GetInt64(keyMaxBodyBytes),
	}
}

// parseDirection reads the --direction flag.
func parseDirection(raw string) (types.Direction, error) {
	if raw == "" {
		return types.SourceToTarget, nil
	}
	return types.ParseDirection(raw)
}
