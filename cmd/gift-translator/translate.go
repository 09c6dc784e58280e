// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gift-translator/pkg/types"
)

var translateCmd = &cobra.Command{
	Use:   "translate [expression]",
	Short: "Translate one expression, or one per line from stdin",
	Long: `Translate renders an expression in the other notation. With no argument,
every non-empty line of stdin is translated in turn.

Use --direction gift-to-sm to evaluate GIFT constants numerically, and
--fractions to apply the approximate fraction conventions when rewriting
toward GIFT form.`,
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().String("direction", "sm-to-gift", "sm-to-gift or gift-to-sm")
	translateCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("direction")
	d, err := parseDirection(raw)
	if err != nil {
		return err
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	tr, err := newTranslator()
	if err != nil {
		return err
	}

	var exprs []string
	if len(args) > 0 {
		exprs = []string{strings.Join(args, " ")}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				exprs = append(exprs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}
	if len(exprs) == 0 {
		return fmt.Errorf("provide an expression as an argument or on stdin")
	}

	failed := 0
	results := make([]types.TranslationResult, 0, len(exprs))
	for _, expr := range exprs {
		res := tr.Translate(expr, d)
		if !res.Success {
			failed++
		}
		results = append(results, res)
	}

	if jsonOutput {
		var v any = results
		if len(results) == 1 {
			v = results[0]
		}
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling results: %w", err)
		}
		fmt.Println(string(data))
	} else {
		for i, res := range results {
			if i > 0 {
				fmt.Println()
			}
			printResult(os.Stdout, exprs[i], d, res)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d expression(s) could not be translated", failed)
	}
	return nil
}

func printResult(w io.Writer, expr string, d types.Direction, res types.TranslationResult) {
	fmt.Fprintf(w, "Input:       %s\n", expr)
	fmt.Fprintf(w, "Direction:   %s\n", d.Label())
	if !res.Success {
		fmt.Fprintf(w, "Error:       %s\n", res.Error)
		return
	}
	fmt.Fprintf(w, "Translated:  %s\n", res.Translated)
	fmt.Fprintf(w, "Method:      %s (confidence %.2f)\n", res.Method, res.Confidence)
	if res.EquationType != "" {
		fmt.Fprintf(w, "Equation:    %s\n", res.EquationType)
	}
	if res.CalculatedValue != nil {
		fmt.Fprintf(w, "Value:       %.6f\n", *res.CalculatedValue)
	}
	if res.Explanation != "" {
		fmt.Fprintf(w, "Explanation: %s\n", res.Explanation)
	}
}
