// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pdiddy/genome-engine/internal/ena"
	"github.com/pdiddy/genome-engine/internal/fetch"
	"github.com/pdiddy/genome-engine/pkg/types"
)

const (
	defaultFetchTimeout = 60 * time.Second
	defaultFetchDelay   = 1 * time.Second
	defaultDatasetsDir  = "datasets"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [run-accessions...]",
	Short: "Download sequencing run files",
	Long: `Fetch resolves each run accession and downloads its files into the
datasets directory, one run at a time. Files already on disk are skipped,
and downloads are verified against the archive's MD5 checksums where
available.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	fetchCmd.Flags().Duration("delay", 0, "delay between consecutive runs (default 1s)")
	fetchCmd.Flags().String("dest", "", "datasets directory (default datasets)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = configDuration("delay", defaultFetchDelay)
	}
	dest, _ := cmd.Flags().GetString("dest")
	if dest == "" {
		dest = configString("datasets_dir", defaultDatasetsDir)
	}

	cfg := types.FetchConfig{
		HTTPConfig:    httpConfig(commandTimeout(cmd, defaultFetchTimeout)),
		DownloadDelay: delay,
		DatasetsDir:   dest,
	}
	client := &http.Client{Timeout: cfg.Timeout}
	searcher := &ena.Searcher{Client: client}

	result := fetch.FetchBatch(context.Background(), searcher, client, args, cfg, os.Stdout)
	if result.HasFailures() {
		return errors.Newf("%d run(s) failed to fetch", result.Failed)
	}
	return nil
}
