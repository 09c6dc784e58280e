// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gift-translator/internal/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch <input.yaml>",
	Short: "Translate a file of expressions concurrently",
	Long: `Batch reads a YAML file of the form

  direction: sm-to-gift
  expressions:
    - "α = e²/(4πε₀ℏc)"
    - "ξ × τ"

translates every expression with a bounded pool of workers and writes a
report (YAML, or JSON when the output path ends in .json) with one result per
expression in input order.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("output", "batch-report.yaml", "report path (.yaml or .json)")
	batchCmd.Flags().Int("workers", 4, "maximum concurrent translations")
	batchCmd.Flags().String("direction", "", "override the direction given in the input file")

	viper.BindPFlag(keyWorkers, batchCmd.Flags().Lookup("workers"))

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	in, err := batch.LoadInput(args[0])
	if err != nil {
		return err
	}
	if raw, _ := cmd.Flags().GetString("direction"); raw != "" {
		if in.Direction, err = parseDirection(raw); err != nil {
			return err
		}
	}

	tr, err := newTranslator()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := batch.Run(ctx, tr, in, batchConfig(), os.Stderr)
	if err != nil {
		return err
	}
	if err := batch.WriteReport(output, report); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d results, %d failed, %dms)\n", output, report.Total, report.Failed, report.ElapsedMS)

	if report.Failed > 0 {
		return fmt.Errorf("%d expression(s) could not be translated", report.Failed)
	}
	return nil
}
