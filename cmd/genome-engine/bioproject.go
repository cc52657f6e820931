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
)

const defaultBioprojectTimeout = 30 * time.Second

var bioprojectCmd = &cobra.Command{
	Use:   "bioproject [accessions...]",
	Short: "Show bioproject (study) details",
	Long: `Bioproject fetches the study record behind each accession: title,
description, organism, submitting center, and registration dates.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBioproject,
}

func init() {
	bioprojectCmd.Flags().Bool("json", false, "output study details as JSON")
	bioprojectCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(bioprojectCmd)
}

func runBioproject(cmd *cobra.Command, args []string) error {
	cfg := httpConfig(commandTimeout(cmd, defaultBioprojectTimeout))
	searcher := &ena.Searcher{Client: &http.Client{Timeout: cfg.Timeout}}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	var failed, printed int
	for _, accession := range args {
		rec, err := searcher.FetchStudy(context.Background(), accession, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed:  %s (%v)\n", accession, err)
			failed++
			continue
		}
		if printed > 0 {
			fmt.Println()
		}
		printed++
		if jsonOutput {
			if err := ena.FormatStudyJSON(accession, rec, os.Stdout); err != nil {
				return err
			}
			continue
		}
		ena.FormatStudy(accession, rec, os.Stdout)
	}

	if failed > 0 {
		return errors.Newf("%d bioproject(s) failed to resolve", failed)
	}
	return nil
}
