// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/genome-engine/pkg/types"
)

// FormatTaxon writes a human-readable taxon summary to w. detailed adds
// the lineage as a list of taxonomy IDs.
func FormatTaxon(info *types.TaxonInfo, w io.Writer, detailed bool) {
	fmt.Fprintf(w, "Taxonomy ID: %d\n", info.TaxID)
	fmt.Fprintf(w, "Scientific Name: %s\n", info.ScientificName)
	if info.CommonName != "" {
		fmt.Fprintf(w, "Common Name: %s\n", info.CommonName)
	}
	fmt.Fprintf(w, "Rank: %s\n", info.Rank)

	if detailed && len(info.Lineage) > 0 {
		ids := make([]string, len(info.Lineage))
		for i, id := range info.Lineage {
			ids[i] = strconv.Itoa(id)
		}
		fmt.Fprintf(w, "\nLineage (taxonomy IDs): %s\n", strings.Join(ids, ", "))
	}
}

// FormatTaxonJSON writes the taxon as indented JSON to w.
func FormatTaxonJSON(info *types.TaxonInfo, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}
