// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the equation templates in matching order",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		tr, err := newTranslator()
		if err != nil {
			return err
		}
		templates := tr.ListEquationTemplates()

		if jsonOutput {
			data, err := json.MarshalIndent(templates, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling templates: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}
		for _, t := range templates {
			mode := "bidirectional"
			if !t.Bidirectional {
				mode = "one-way"
			}
			fmt.Printf("%-16s %-14s %s\n", t.Name, mode, t.Derivation)
		}
		return nil
	},
}

func init() {
	templatesCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(templatesCmd)
}
