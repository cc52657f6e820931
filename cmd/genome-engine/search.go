package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/pdiddy/genome-engine/internal/catalog"
	"github.com/pdiddy/genome-engine/internal/ena"
)

const (
	defaultSearchTimeout = 30 * time.Second
	defaultCatalogDir    = "catalog"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the European Nucleotide Archive",
	Long: `Search queries the ENA portal API. Free-form queries are normalized into
the portal's query grammar: numeric input becomes a taxonomy-subtree match,
anything already in the grammar passes through unchanged, and plain text
becomes a quoted scientific-name match.

Read-run results are grouped by originating bioproject. Every successful
search is recorded in the local search catalog unless --no-history is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("data-type", "fastq", "result category: read, fastq, assembly, wgs, sequence, study, sample, analysis, taxon")
	searchCmd.Flags().String("fields", "", "comma-separated return fields (default depends on data type)")
	searchCmd.Flags().Int("limit", 0, "maximum results (default 10)")
	searchCmd.Flags().Int("offset", 0, "number of results to skip")
	searchCmd.Flags().Bool("show-urls", false, "expand ftp fields into full download URLs")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("out", "", "write the result set to a YAML snapshot file")
	searchCmd.Flags().Bool("no-history", false, "do not record the search in the catalog")
	searchCmd.Flags().String("catalog-dir", "", "search catalog directory (default catalog)")
	searchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	rawQuery := args[0]

	dataType, _ := cmd.Flags().GetString("data-type")
	resultType, ok := ena.ResolveCategory(dataType)
	if !ok {
		err := errors.Newf("unknown data type %q", dataType)
		return errors.WithHintf(err, "Valid data types: %s", strings.Join(ena.Categories(), ", "))
	}

	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")
	fields := splitFields(cmd)

	cfg := httpConfig(commandTimeout(cmd, defaultSearchTimeout))
	client := &http.Client{Timeout: cfg.Timeout}
	searcher := &ena.Searcher{Client: client}

	out, err := searcher.Search(context.Background(), ena.Request{
		Query:      ena.NormalizeQuery(rawQuery),
		ResultType: resultType,
		Fields:     fields,
		Limit:      limit,
		Offset:     offset,
	}, cfg)
	if err != nil {
		return err
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		recordSearch(cmd, rawQuery, out)
	}

	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		if err := ena.WriteSnapshot(outPath, out); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved snapshot to %s\n", outPath)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return ena.FormatOutcomeJSON(out, os.Stdout)
	}
	showURLs, _ := cmd.Flags().GetBool("show-urls")
	ena.FormatOutcome(out, os.Stdout, showURLs)
	return nil
}

func splitFields(cmd *cobra.Command) []string {
	fieldsFlag, _ := cmd.Flags().GetString("fields")
	if fieldsFlag == "" {
		return nil
	}
	var fields []string
	for _, f := range strings.Split(fieldsFlag, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// recordSearch appends the search to the local catalog. Catalog failures
// only warn; the search result still renders.
func recordSearch(cmd *cobra.Command, rawQuery string, out *ena.Outcome) {
	store, err := openCatalog(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: opening search catalog: %v\n", err)
		return
	}
	defer store.Close()

	_, err = store.Record(context.Background(), catalog.Entry{
		RawQuery:        rawQuery,
		Query:           out.Query,
		ResultType:      string(out.ResultType),
		RecordCount:     out.Count,
		BioprojectCount: len(out.Bioprojects),
		Fields:          out.Fields,
		Records:         out.Records,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording search: %v\n", err)
	}
}
