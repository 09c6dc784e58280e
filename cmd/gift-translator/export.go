// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gift-translator/internal/calculator"
	"github.com/pdiddy/gift-translator/internal/constants"
	"github.com/pdiddy/gift-translator/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the constants, templates and predictions to a catalog file",
	Long: `Export writes the constant table, the equation templates, the example
Lagrangians and every observable prediction (with summary statistics) to
catalog.yaml or catalog.json in the chosen directory.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("dir", ".", "output directory")
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	rawFormat, _ := cmd.Flags().GetString("format")
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return err
	}

	tr, err := newTranslator()
	if err != nil {
		return err
	}
	doc, err := export.Build(tr, calculator.New(constants.New()))
	if err != nil {
		return err
	}
	path, err := export.Write(dir, doc, format)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d constants, %d templates, %d examples, %d predictions to %s\n",
		len(doc.Constants), len(doc.Templates), len(doc.Examples), len(doc.Predictions), path)
	return nil
}
