// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Prediction compares a GIFT closed-form value with its experimental
// reference for one observable.
type Prediction struct {
	// Key is the observable identifier (e.g. "alpha_inv_0").
	Key string `json:"key" yaml:"key"`

	Name string `json:"name" yaml:"name"`
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`

	// GIFTPrediction is the value of the observable's closed form.
	GIFTPrediction float64 `json:"gift_prediction" yaml:"gift_prediction"`

	// ExperimentalValue is nil when no reference value is known.
	ExperimentalValue *float64 `json:"experimental_value,omitempty" yaml:"experimental_value,omitempty"`

	// DeviationPercent is |gift - experimental| / experimental × 100, nil
	// when the experimental value is missing or zero.
	DeviationPercent *float64 `json:"deviation_percent,omitempty" yaml:"deviation_percent,omitempty"`

	Formula    string `json:"formula" yaml:"formula"`
	Derivation string `json:"derivation" yaml:"derivation"`
}

// PredictionSummary aggregates deviations over a set of predictions.
type PredictionSummary struct {
	Count     int     `json:"count" yaml:"count"`
	Compared  int     `json:"compared" yaml:"compared"`
	MeanDev   float64 `json:"mean_deviation_percent" yaml:"mean_deviation_percent"`
	MedianDev float64 `json:"median_deviation_percent" yaml:"median_deviation_percent"`
	MaxDev    float64 `json:"max_deviation_percent" yaml:"max_deviation_percent"`
	StdDev    float64 `json:"stddev_deviation_percent" yaml:"stddev_deviation_percent"`
	Excellent int     `json:"excellent" yaml:"excellent"`
	Good      int     `json:"good" yaml:"good"`
	Poor      int     `json:"poor" yaml:"poor"`
	WorstKey  string  `json:"worst_key,omitempty" yaml:"worst_key,omitempty"`
}
