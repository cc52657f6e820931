// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ena

import (
	"sort"

	"github.com/pdiddy/genome-engine/pkg/types"
)

// unknownBioproject groups read runs whose records carry no
// study_accession field at all. A record with a present-but-empty
// accession keeps the empty string as its group key.
const unknownBioproject = "Unknown"

// GroupByBioproject groups read-run records by study accession in a
// single pass. Groups form in first-seen order, each keeps its runs in
// input order and the first non-empty study title, and the final list is
// sorted by read count descending; equal counts keep first-seen order.
func GroupByBioproject(records []types.Record) []types.BioprojectGroup {
	index := make(map[string]int) // accession → position in groups
	var groups []types.BioprojectGroup

	for _, rec := range records {
		acc, ok := rec[FieldStudyAccession]
		if !ok {
			acc = unknownBioproject
		}
		i, seen := index[acc]
		if !seen {
			i = len(groups)
			index[acc] = i
			groups = append(groups, types.BioprojectGroup{Accession: acc})
		}
		groups[i].Runs = append(groups[i].Runs, rec)
		if groups[i].StudyTitle == "" {
			groups[i].StudyTitle = rec[FieldStudyTitle]
		}
	}

	for i := range groups {
		groups[i].ReadCount = len(groups[i].Runs)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].ReadCount > groups[j].ReadCount
	})
	return groups
}
