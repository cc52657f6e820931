// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatEntries writes a tabular catalog listing to w.
func FormatEntries(entries []Entry, w io.Writer) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No recorded searches.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-16s  %-10s  %-44s  %s\n",
		"ID", "Executed", "Type", "Query", "Records")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, e := range entries {
		query := e.Query
		if len(query) > 44 {
			query = query[:41] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-16s  %-10s  %-44s  %d\n",
			e.ID, e.ExecutedAt.Local().Format("2006-01-02 15:04"),
			e.ResultType, query, e.RecordCount)
	}

	fmt.Fprintf(w, "\n%d recorded search(es)\n", len(entries))
}

// FormatEntriesJSON writes the catalog listing as indented JSON.
func FormatEntriesJSON(entries []Entry, w io.Writer) error {
	payload := struct {
		Count   int     `json:"count"`
		Entries []Entry `json:"entries"`
	}{Count: len(entries), Entries: entries}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
