// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sdrconv CLI, which converts SDR#
// bookmark files into SDR++ frequency manager configuration.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/sdrconv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the sdrconv CLI.
var rootCmd = &cobra.Command{
	Use:   "sdrconv",
	Short: "Convert SDR# bookmarks into SDR++ frequency manager lists",
	Long: `sdrconv reads an SDR# Frequencies.xml bookmark file and merges its entries
into an SDR++ frequency_manager_config.json document, grouping bookmarks into
lists by their SDR# group name. The base document is never modified; the
merged result is written to a new file.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sdrconv.yaml or ~/.config/sdrconv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sdrconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sdrconv"))
		}
	}

	viper.SetEnvPrefix("SDRCONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(types.ExitCode(err))
	}
}
