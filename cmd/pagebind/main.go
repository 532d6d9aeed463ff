// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pagebind CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pagebind CLI.
var rootCmd = &cobra.Command{
	Use:   "pagebind",
	Short: "Bind directories of images into paginated PDFs",
	Long: `pagebind collects the image files of a directory, scales each one onto a
fixed-size page cell, and binds the cells into a single paginated PDF.

Images are ordered naturally (img2 before img10) or by file time, optionally
labeled with a running number, and stacked several to a page. Options come
from flags, a pagebind.yaml config file, or PAGEBIND_* environment variables.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pagebind.yaml or ~/.config/pagebind/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pagebind")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pagebind"))
		}
	}

	viper.SetEnvPrefix("PAGEBIND")
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
