// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gift-translator CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the gift-translator CLI.
var rootCmd = &cobra.Command{
	Use:   "gift-translator",
	Short: "Translate formulas between Standard-Model notation and GIFT geometric form",
	Long: `gift-translator renders physics expressions written in Standard-Model
notation into the geometric form of the GIFT framework and back.

Known equations are matched against a catalog of templates; expressions that
mention GIFT constants are evaluated numerically; anything else falls back to
symbol-by-symbol rewriting. The calculator subcommand (predict) compares the
framework's closed-form predictions against experimental values.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		if err := godotenv.Load(envFile); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
		fmt.Fprintln(os.Stderr, "Loaded environment from", envFile)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gift-translator.yaml or ~/.config/gift-translator/gift-translator.yaml)")
	rootCmd.PersistentFlags().String("env-file", ".env", "optional dotenv file with GIFT_TRANSLATOR_* settings")
	rootCmd.PersistentFlags().Bool("fractions", false, "apply the approximate fraction conventions when rewriting SM→GIFT")

	viper.BindPFlag("translator.rewrite.fractions", rootCmd.PersistentFlags().Lookup("fractions"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gift-translator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gift-translator"))
		}
	}

	viper.SetEnvPrefix("GIFT_TRANSLATOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
