// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ena

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/genome-engine/pkg/types"
)

// maxSampleRuns is how many sample runs a bioproject group lists.
const maxSampleRuns = 3

// FormatOutcome writes a human-readable rendering of out to w. Grouped
// read-run results show the bioproject view; other result sets list each
// record's requested fields in request order, skipping empty values.
// showURLs expands ftp path fields into full URLs.
func FormatOutcome(out *Outcome, w io.Writer, showURLs bool) {
	fmt.Fprintf(w, "Query: %s\n", out.Query)
	fmt.Fprintf(w, "Result Type: %s\n", out.ResultType)
	fmt.Fprintf(w, "Results Found: %d\n", out.Count)
	if len(out.Bioprojects) > 0 {
		fmt.Fprintf(w, "Total BioProjects: %d\n", len(out.Bioprojects))
	}
	if out.Message != "" {
		fmt.Fprintf(w, "\n%s\n", out.Message)
	}

	if len(out.Bioprojects) > 0 {
		formatBioprojects(out.Bioprojects, w)
		return
	}
	if len(out.Records) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
	for i, rec := range out.Records {
		fmt.Fprintf(w, "\nResult %d:\n", i+1)
		for _, field := range out.Fields {
			value := rec[field]
			if value == "" {
				continue
			}
			label := titleWords(field)
			if showURLs && strings.Contains(field, "ftp") {
				formatFTPField(label, value, w)
				continue
			}
			fmt.Fprintf(w, "  %s: %s\n", label, truncate(value, 100))
		}
		fmt.Fprintln(w, strings.Repeat("-", 60))
	}
}

// FormatOutcomeJSON writes out as indented JSON to w.
func FormatOutcomeJSON(out *Outcome, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// FormatRunFiles writes a human-readable file listing for one run to w.
// Size and checksum entries are matched to URLs by index and omitted
// where the archive reported fewer of them.
func FormatRunFiles(files types.RunFiles, w io.Writer) {
	fmt.Fprintf(w, "Run: %s\n", files.RunAccession)
	if len(files.URLs) == 0 {
		fmt.Fprintln(w, "No files reported for this run.")
		return
	}
	fmt.Fprintln(w, "Files:")
	for i, u := range files.URLs {
		fmt.Fprintf(w, "  %d. %s\n", i+1, u)
		if i < len(files.Sizes) && files.Sizes[i] != "" {
			fmt.Fprintf(w, "     size: %s bytes\n", files.Sizes[i])
		}
		if i < len(files.Checksums) && files.Checksums[i] != "" {
			fmt.Fprintf(w, "     md5:  %s\n", files.Checksums[i])
		}
	}
}

// FormatRunFilesJSON writes the file listings as indented JSON to w.
func FormatRunFilesJSON(listings []types.RunFiles, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(listings) == 1 {
		return enc.Encode(listings[0])
	}
	return enc.Encode(listings)
}

// FormatStudy writes a human-readable bioproject detail view to w.
func FormatStudy(accession string, rec types.Record, w io.Writer) {
	fmt.Fprintf(w, "BioProject: %s\n", accession)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Title: %s\n", rec.Get(FieldStudyTitle, "N/A"))
	fmt.Fprintln(w, "\nDescription:")
	fmt.Fprintln(w, rec.Get("study_description", "N/A"))
	fmt.Fprintf(w, "\nOrganism: %s (Tax ID: %s)\n",
		rec.Get(FieldScientificName, "N/A"), rec.Get(FieldTaxID, "N/A"))
	fmt.Fprintf(w, "Center: %s\n", rec.Get("center_name", "N/A"))
	fmt.Fprintf(w, "Alias: %s\n", rec.Get("study_alias", "N/A"))
	fmt.Fprintf(w, "First Public: %s\n", rec.Get("first_public", "N/A"))
	fmt.Fprintf(w, "Last Updated: %s\n", rec.Get("last_updated", "N/A"))
}

// FormatStudyJSON writes one bioproject detail record as indented JSON.
func FormatStudyJSON(accession string, rec types.Record, w io.Writer) error {
	payload := struct {
		Accession string       `json:"accession"`
		Details   types.Record `json:"details"`
	}{Accession: accession, Details: rec}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func formatBioprojects(groups []types.BioprojectGroup, w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintln(w, "RESULTS GROUPED BY BIOPROJECT")
	fmt.Fprintln(w, strings.Repeat("=", 60))

	for i, g := range groups {
		fmt.Fprintf(w, "\nBioProject %d:\n", i+1)
		fmt.Fprintf(w, "  Accession: %s\n", g.Accession)
		fmt.Fprintf(w, "  Number of Reads: %d\n", g.ReadCount)
		if g.StudyTitle != "" {
			fmt.Fprintf(w, "  Title: %s\n", g.StudyTitle)
		}
		fmt.Fprintln(w, "  Sample Runs:")
		for j, run := range g.Runs {
			if j >= maxSampleRuns {
				break
			}
			fmt.Fprintf(w, "    %d. %s - %s\n", j+1,
				run.Get(FieldRunAccession, "N/A"), run.Get(FieldLibraryLayout, "N/A"))
		}
		if len(g.Runs) > maxSampleRuns {
			fmt.Fprintf(w, "    ... and %d more\n", len(g.Runs)-maxSampleRuns)
		}
		fmt.Fprintln(w, strings.Repeat("-", 60))
	}
}

func formatFTPField(label, value string, w io.Writer) {
	if !strings.Contains(value, ";") {
		fmt.Fprintf(w, "  %s: %s\n", label, qualifyURL(value))
		return
	}
	fmt.Fprintf(w, "  %s:\n", label)
	for _, u := range strings.Split(value, ";") {
		fmt.Fprintf(w, "    - %s\n", qualifyURL(u))
	}
}

// titleWords turns a field name like "run_accession" into "Run Accession".
func titleWords(field string) string {
	words := strings.Split(field, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
