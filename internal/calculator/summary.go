// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package calculator

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/pdiddy/gift-translator/pkg/types"
)

// Deviation classes.
const (
	ClassExcellent = "excellent"
	ClassGood      = "good"
	ClassPoor      = "poor"
)

// DeviationClass grades a deviation: below 0.1% is excellent, below 1%
// good, anything else poor. A missing deviation counts as excellent.
func DeviationClass(dev *float64) string {
	switch {
	case dev == nil, *dev < 0.1:
		return ClassExcellent
	case *dev < 1.0:
		return ClassGood
	}
	return ClassPoor
}

// DeviationText renders a deviation with four decimals, or "N/A".
func DeviationText(dev *float64) string {
	if dev == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.4f%%", *dev)
}

// FormatValue renders a value with the precision customary for its unit.
func FormatValue(v *float64, unit string) string {
	if v == nil {
		return "N/A"
	}
	switch unit {
	case "°":
		return fmt.Sprintf("%.2f°", *v)
	case "GeV":
		return fmt.Sprintf("%.3f GeV", *v)
	case "MeV":
		return fmt.Sprintf("%.1f MeV", *v)
	case "km/s/Mpc":
		return fmt.Sprintf("%.2f km/s/Mpc", *v)
	}
	return fmt.Sprintf("%.6f", *v)
}

// Summarize aggregates the deviations of preds. Predictions without a
// deviation are counted but not compared.
func Summarize(preds []types.Prediction) (types.PredictionSummary, error) {
	sum := types.PredictionSummary{Count: len(preds)}

	var devs stats.Float64Data
	worst := -1.0
	for _, p := range preds {
		if p.DeviationPercent == nil {
			continue
		}
		dev := *p.DeviationPercent
		devs = append(devs, dev)
		switch DeviationClass(p.DeviationPercent) {
		case ClassExcellent:
			sum.Excellent++
		case ClassGood:
			sum.Good++
		default:
			sum.Poor++
		}
		if dev > worst {
			worst = dev
			sum.WorstKey = p.Key
		}
	}
	sum.Compared = len(devs)
	if sum.Compared == 0 {
		return sum, nil
	}

	var err error
	if sum.MeanDev, err = stats.Mean(devs); err != nil {
		return sum, fmt.Errorf("mean deviation: %w", err)
	}
	if sum.MedianDev, err = stats.Median(devs); err != nil {
		return sum, fmt.Errorf("median deviation: %w", err)
	}
	if sum.MaxDev, err = stats.Max(devs); err != nil {
		return sum, fmt.Errorf("max deviation: %w", err)
	}
	if sum.StdDev, err = stats.StandardDeviation(devs); err != nil {
		return sum, fmt.Errorf("deviation spread: %w", err)
	}
	return sum, nil
}
