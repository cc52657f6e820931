package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pdiddy/genome-engine/internal/ena"
	"github.com/pdiddy/genome-engine/pkg/types"
)

const defaultFastqTimeout = 30 * time.Second

var fastqCmd = &cobra.Command{
	Use:   "fastq [run-accessions...]",
	Short: "Resolve download URLs for sequencing runs",
	Long: `Fastq looks up each run accession in the archive and lists its file
download URLs, sizes, and MD5 checksums. Accessions are resolved one at
a time; failures do not stop the remaining lookups.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFastq,
}

func init() {
	fastqCmd.Flags().Bool("json", false, "output file listings as JSON")
	fastqCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(fastqCmd)
}

func runFastq(cmd *cobra.Command, args []string) error {
	cfg := httpConfig(commandTimeout(cmd, defaultFastqTimeout))
	searcher := &ena.Searcher{Client: &http.Client{Timeout: cfg.Timeout}}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	var listings []types.RunFiles
	var failed, printed int
	for _, accession := range args {
		files, err := searcher.FetchRunFiles(context.Background(), accession, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed:  %s (%v)\n", accession, err)
			failed++
			continue
		}
		if jsonOutput {
			listings = append(listings, files)
			continue
		}
		if printed > 0 {
			fmt.Println()
		}
		printed++
		ena.FormatRunFiles(files, os.Stdout)
	}

	if jsonOutput && len(listings) > 0 {
		if err := ena.FormatRunFilesJSON(listings, os.Stdout); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errors.Newf("%d run(s) failed to resolve", failed)
	}
	return nil
}
