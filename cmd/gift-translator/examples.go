// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Show the example Lagrangians in both notations",
	Long: `Examples lists the built-in example Lagrangian pairs. With --translate,
each example is also run through the translator in the chosen direction.`,
	RunE: runExamples,
}

func init() {
	examplesCmd.Flags().Bool("translate", false, "translate each example")
	examplesCmd.Flags().String("direction", "sm-to-gift", "direction used with --translate")

	rootCmd.AddCommand(examplesCmd)
}

func runExamples(cmd *cobra.Command, args []string) error {
	doTranslate, _ := cmd.Flags().GetBool("translate")
	raw, _ := cmd.Flags().GetString("direction")
	d, err := parseDirection(raw)
	if err != nil {
		return err
	}

	tr, err := newTranslator()
	if err != nil {
		return err
	}

	for i, ex := range tr.Examples() {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s\n  SM:   %s\n  GIFT: %s\n", ex.Name, ex.SM, ex.GIFT)
		if doTranslate {
			fmt.Println()
			printResult(os.Stdout, ex.For(d), d, tr.Translate(ex.For(d), d))
		}
	}
	return nil
}
