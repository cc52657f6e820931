package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pdiddy/genome-engine/internal/taxonomy"
	"github.com/pdiddy/genome-engine/pkg/types"
)

const defaultTaxonomyTimeout = 10 * time.Second

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy [organism-name]",
	Short: "Resolve organism names against the NCBI taxonomy",
	Long: `Taxonomy resolves an organism name (scientific or common) to its NCBI
taxonomy entry, or looks an entry up directly with --tax-id. Provide
exactly one of the two.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTaxonomy,
}

func init() {
	taxonomyCmd.Flags().Int("tax-id", 0, "taxonomy ID to look up instead of a name")
	taxonomyCmd.Flags().Bool("detailed", false, "include the full lineage")
	taxonomyCmd.Flags().Bool("json", false, "output the taxon as JSON")
	taxonomyCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 10s)")

	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	taxID, _ := cmd.Flags().GetInt("tax-id")
	if (taxID > 0) == (len(args) > 0) {
		return errors.New("provide exactly one of an organism name or --tax-id")
	}

	cfg := httpConfig(commandTimeout(cmd, defaultTaxonomyTimeout))
	resolver := &taxonomy.Resolver{Client: &http.Client{Timeout: cfg.Timeout}}

	var info *types.TaxonInfo
	var err error
	if taxID > 0 {
		info, err = resolver.Lookup(context.Background(), taxID, cfg)
	} else {
		info, err = resolver.ResolveName(context.Background(), args[0], cfg)
	}
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return taxonomy.FormatTaxonJSON(info, os.Stdout)
	}
	detailed, _ := cmd.Flags().GetBool("detailed")
	taxonomy.FormatTaxon(info, os.Stdout, detailed)
	return nil
}
