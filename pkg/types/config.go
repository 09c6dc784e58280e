package types

import "time"

// EvaluatorConfig bounds the restricted-grammar evaluator.
type EvaluatorConfig struct {
	// MaxDepth is the maximum nesting depth of the parse (default 200).
	MaxDepth int `json:"max_depth" yaml:"max_depth"`

	// MaxLength is the maximum expression length in bytes (default 4096).
	MaxLength int `json:"max_length" yaml:"max_length"`
}

// FractionRuleConfig describes one fraction heuristic for the symbol
// rewriter. These encode domain conventions of the GIFT project and are
// approximate by nature.
type FractionRuleConfig struct {
	// Tag names the convention (e.g. "fine-structure").
	Tag string `json:"tag" yaml:"tag"`

	// Denominator selects fractions n/Denominator. Zero matches any
	// denominator and should be the last rule.
	Denominator int `json:"denominator" yaml:"denominator"`

	// Format is the replacement text. "{n}" expands to the numerator,
	// "{d}" to the denominator, "{v}" to the fraction's decimal value.
	Format string `json:"format" yaml:"format"`
}

// RewriteConfig controls the symbol rewriter fallback.
type RewriteConfig struct {
	// Fractions enables the fraction heuristics for SM→GIFT rewriting.
	Fractions bool `json:"fractions" yaml:"fractions"`

	// FractionRules overrides the built-in rule set when non-empty.
	FractionRules []FractionRuleConfig `json:"fraction_rules,omitempty" yaml:"fraction_rules,omitempty"`
}

// TranslatorConfig groups the settings of the translation orchestrator.
type TranslatorConfig struct {
	Evaluator EvaluatorConfig `json:"evaluator" yaml:"evaluator"`
	Rewrite   RewriteConfig   `json:"rewrite" yaml:"rewrite"`

	// MaxInputLength rejects longer inputs as malformed (default 8192 bytes).
	MaxInputLength int `json:"max_input_length" yaml:"max_input_length"`
}

// BatchConfig holds settings for batch translation runs.
type BatchConfig struct {
	// Workers bounds the number of concurrent translations (default 4).
	Workers int `json:"workers" yaml:"workers"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// RequestTimeout bounds each request (default 10s).
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout"`

	// MaxBodyBytes limits request bodies (default 64 KiB).
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes"`
}
