// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gift-translator/internal/constants"
	"github.com/pdiddy/gift-translator/pkg/types"
)

var constantsCmd = &cobra.Command{
	Use:   "constants [symbol]",
	Short: "List the constant table, or show one constant",
	Long: `Constants prints the fixed constant table in declaration order. Pass a
symbol (ξ) or its ASCII alias (xi) to show a single entry. Only geometric,
mathematical and derived constants are substituted during evaluation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConstants,
}

func init() {
	constantsCmd.Flags().String("category", "", "filter by category: geometric, mathematical, derived, physical, unit")
	constantsCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(constantsCmd)
}

func runConstants(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	category, _ := cmd.Flags().GetString("category")
	table := constants.New()

	var list []types.Constant
	switch {
	case len(args) == 1:
		c, ok := table.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown constant %q", args[0])
		}
		list = []types.Constant{c}
	case category != "":
		list = table.ByCategory(types.ConstantCategory(category))
		if len(list) == 0 {
			return fmt.Errorf("no constants in category %q", category)
		}
	default:
		list = table.List()
	}

	if jsonOutput {
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling constants: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	for _, c := range list {
		fmt.Printf("%-10s %-14s %-16.10g %s", c.Symbol, c.Category, c.Value, c.Description)
		if c.Expression != "" {
			fmt.Printf(" [%s]", c.Expression)
		}
		fmt.Println()
	}
	return nil
}
