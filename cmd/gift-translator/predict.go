// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gift-translator/internal/calculator"
	"github.com/pdiddy/gift-translator/internal/constants"
	"github.com/pdiddy/gift-translator/pkg/types"
)

var predictCmd = &cobra.Command{
	Use:   "predict [observable]",
	Short: "Compute GIFT predictions for physical observables",
	Long: `Predict evaluates an observable's closed form with the GIFT constants and
compares it with the experimental reference value. Use --experimental to
compare against a different measurement, or --all for the full table with
summary statistics.

Observables: ` + strings.Join(calculator.New(constants.New()).Keys(), ", "),
	Args: cobra.MaximumNArgs(1),
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().Float64("experimental", 0, "experimental value to compare against")
	predictCmd.Flags().Bool("all", false, "predict every observable and summarize the deviations")
	predictCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(predictCmd)
}

type predictAllOutput struct {
	Predictions []types.Prediction      `json:"predictions"`
	Summary     types.PredictionSummary `json:"summary"`
}

func runPredict(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	calc := calculator.New(constants.New())

	if all || len(args) == 0 {
		preds := calc.PredictAll()
		summary, err := calculator.Summarize(preds)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(predictAllOutput{Predictions: preds, Summary: summary})
		}
		for _, p := range preds {
			fmt.Printf("%-14s %-22s %-22s %-10s %s\n", p.Key,
				calculator.FormatValue(&p.GIFTPrediction, p.Unit),
				calculator.FormatValue(p.ExperimentalValue, p.Unit),
				calculator.DeviationText(p.DeviationPercent),
				calculator.DeviationClass(p.DeviationPercent))
		}
		printSummary(os.Stdout, summary)
		return nil
	}

	var experimental *float64
	if cmd.Flags().Changed("experimental") {
		v, _ := cmd.Flags().GetFloat64("experimental")
		experimental = &v
	}
	p, err := calc.Predict(args[0], experimental)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(p)
	}
	fmt.Printf("%s (%s)\n", p.Name, p.Key)
	fmt.Printf("  Formula:      %s\n", p.Formula)
	fmt.Printf("  Derivation:   %s\n", p.Derivation)
	fmt.Printf("  GIFT:         %s\n", calculator.FormatValue(&p.GIFTPrediction, p.Unit))
	fmt.Printf("  Experimental: %s\n", calculator.FormatValue(p.ExperimentalValue, p.Unit))
	fmt.Printf("  Deviation:    %s (%s)\n", calculator.DeviationText(p.DeviationPercent), calculator.DeviationClass(p.DeviationPercent))
	return nil
}

func printSummary(w io.Writer, s types.PredictionSummary) {
	fmt.Fprintf(w, "\n%d observables, %d compared: %d excellent, %d good, %d poor\n",
		s.Count, s.Compared, s.Excellent, s.Good, s.Poor)
	if s.Compared == 0 {
		return
	}
	fmt.Fprintf(w, "deviation mean %.4f%%, median %.4f%%, std-dev %.4f%%, max %.4f%% (%s)\n",
		s.MeanDev, s.MedianDev, s.StdDev, s.MaxDev, s.WorstKey)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
