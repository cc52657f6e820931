// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pdiddy/genome-engine/internal/catalog"
	"github.com/pdiddy/genome-engine/internal/ena"
	"github.com/pdiddy/genome-engine/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and re-display recorded searches",
	Long: `History lists searches recorded in the local catalog, newest first.
Use "history show" with an entry ID to re-render a recorded result set
without querying the portal again.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return catalog.FormatEntriesJSON(entries, os.Stdout)
	}
	catalog.FormatEntries(entries, os.Stdout)
	return nil
}

// --- show subcommand ---

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Re-render a recorded search result set",
	Long: `Show loads one catalog entry and renders its stored records the way the
original search did, including bioproject grouping for read runs. No
network request is made.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.Newf("invalid catalog entry ID %q", args[0])
	}

	store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	e, err := store.Get(context.Background(), id)
	if err != nil {
		return err
	}

	out := &ena.Outcome{
		Query:      e.Query,
		ResultType: ena.ResultType(e.ResultType),
		Fields:     e.Fields,
		Count:      e.RecordCount,
		Records:    e.Records,
	}
	if out.ResultType == ena.ResultTypeReadRun && len(out.Records) > 0 {
		out.Bioprojects = ena.GroupByBioproject(out.Records)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return ena.FormatOutcomeJSON(out, os.Stdout)
	}
	showURLs, _ := cmd.Flags().GetBool("show-urls")
	ena.FormatOutcome(out, os.Stdout, showURLs)
	return nil
}

// --- shared helpers ---

// openCatalog resolves the catalog directory (flag, then config, then
// default) and opens the store.
func openCatalog(cmd *cobra.Command) (*catalog.Store, error) {
	dir, _ := cmd.Flags().GetString("catalog-dir")
	if dir == "" {
		dir = configString("catalog_dir", defaultCatalogDir)
	}
	return catalog.Open(types.CatalogConfig{Dir: dir})
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	historyCmd.PersistentFlags().String("catalog-dir", "", "search catalog directory (default catalog)")
	historyCmd.PersistentFlags().Bool("json", false, "output results as JSON")

	// List flags.
	historyCmd.Flags().Int("limit", 0, "maximum entries to list (default 20)")

	// Show flags.
	historyShowCmd.Flags().Bool("show-urls", false, "expand ftp fields into full download URLs")

	// Wire subcommands.
	historyCmd.AddCommand(historyShowCmd)

	rootCmd.AddCommand(historyCmd)
}
