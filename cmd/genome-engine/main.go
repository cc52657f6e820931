// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the genome-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/genome-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultUserAgent = "genome-engine/0.1"

// rootCmd is the base command for the genome-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "genome-engine",
	Short: "Search and retrieve public genomic datasets",
	Long: `genome-engine queries public genomic-data repositories. It searches the
European Nucleotide Archive, resolves sequencing-run download URLs, fetches
run files, looks up bioproject details and NCBI taxonomy, and lists curated
Galaxy analysis workflows from the IWC catalog.

Each operation is a subcommand: search, fastq, fetch, bioproject, taxonomy,
workflows, and history.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./genome-engine.yaml or ~/.config/genome-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("genome-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "genome-engine"))
		}
	}

	viper.SetEnvPrefix("GENOME_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configString reads a config key, falling back when unset.
func configString(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

// configDuration reads a duration config key, falling back when unset.
func configDuration(key string, fallback time.Duration) time.Duration {
	if v := viper.GetDuration(key); v != 0 {
		return v
	}
	return fallback
}

// commandTimeout resolves a command's timeout from its flag, the config
// file, and the command's own default, in that order.
func commandTimeout(cmd *cobra.Command, fallback time.Duration) time.Duration {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = configDuration("timeout", fallback)
	}
	return timeout
}

// httpConfig assembles the shared HTTP settings for one invocation.
func httpConfig(timeout time.Duration) types.HTTPConfig {
	return types.HTTPConfig{
		Timeout:   timeout,
		UserAgent: configString("user_agent", defaultUserAgent),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(1)
	}
}
