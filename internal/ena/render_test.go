// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ena

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pdiddy/genome-engine/pkg/types"
)

func TestFormatOutcomeGrouped(t *testing.T) {
	out := &Outcome{
		Query:      "tax_tree(5833)",
		ResultType: ResultTypeReadRun,
		Count:      5,
		Records:    make([]types.Record, 5),
		Bioprojects: []types.BioprojectGroup{
			{
				Accession:  "PRJEB1787",
				StudyTitle: "Pf3K pilot",
				ReadCount:  4,
				Runs: []types.Record{
					{FieldRunAccession: "ERR164407", FieldLibraryLayout: "PAIRED"},
					{FieldRunAccession: "ERR164408", FieldLibraryLayout: "PAIRED"},
					{FieldRunAccession: "ERR164409", FieldLibraryLayout: "PAIRED"},
					{FieldRunAccession: "ERR164410", FieldLibraryLayout: "PAIRED"},
				},
			},
			{
				Accession: "Unknown",
				ReadCount: 1,
				Runs:      []types.Record{{FieldRunAccession: "SRR000001"}},
			},
		},
	}

	var buf strings.Builder
	FormatOutcome(out, &buf, false)
	got := buf.String()

	for _, want := range []string{
		"Query: tax_tree(5833)",
		"Result Type: read_run",
		"Results Found: 5",
		"Total BioProjects: 2",
		"RESULTS GROUPED BY BIOPROJECT",
		"Accession: PRJEB1787",
		"Number of Reads: 4",
		"Title: Pf3K pilot",
		"1. ERR164407 - PAIRED",
		"3. ERR164409 - PAIRED",
		"... and 1 more",
		"Accession: Unknown",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "ERR164410") {
		t.Errorf("output lists a fourth sample run:\n%s", got)
	}
	// Missing titles are left out rather than printed blank.
	if strings.Contains(got, "Title: \n") {
		t.Errorf("output has an empty Title line:\n%s", got)
	}
}

func TestFormatOutcomeFlat(t *testing.T) {
	long := strings.Repeat("x", 150)
	out := &Outcome{
		Query:      "tax_tree(5833)",
		ResultType: ResultTypeAssembly,
		Fields:     []string{FieldAccession, FieldScientificName, "assembly_title"},
		Count:      1,
		Records: []types.Record{{
			FieldAccession:      "GCA_000002765",
			FieldScientificName: "",
			"assembly_title":    long,
		}},
	}

	var buf strings.Builder
	FormatOutcome(out, &buf, false)
	got := buf.String()

	if !strings.Contains(got, "Result 1:") {
		t.Errorf("output missing result header:\n%s", got)
	}
	if !strings.Contains(got, "Accession: GCA_000002765") {
		t.Errorf("output missing accession:\n%s", got)
	}
	if strings.Contains(got, "Scientific Name") {
		t.Errorf("output shows an empty field:\n%s", got)
	}
	if !strings.Contains(got, long[:97]+"...") || strings.Contains(got, long) {
		t.Errorf("long value not truncated to 100:\n%s", got)
	}
	// Fields render in request order.
	if strings.Index(got, "Accession:") > strings.Index(got, "Assembly Title:") {
		t.Errorf("fields out of order:\n%s", got)
	}
}

func TestFormatOutcomeShowURLs(t *testing.T) {
	out := &Outcome{
		Query:      "run_accession=ERR164407",
		ResultType: ResultTypeReadRun,
		Fields:     []string{FieldRunAccession, FieldFastqFTP},
		Count:      1,
		Records: []types.Record{{
			FieldRunAccession: "ERR164407",
			FieldFastqFTP:     "ftp.sra.ebi.ac.uk/vol1/a_1.fastq.gz;ftp.sra.ebi.ac.uk/vol1/a_2.fastq.gz",
		}},
	}

	var buf strings.Builder
	FormatOutcome(out, &buf, true)
	got := buf.String()

	if !strings.Contains(got, "- https://ftp.sra.ebi.ac.uk/vol1/a_1.fastq.gz") {
		t.Errorf("output missing first expanded URL:\n%s", got)
	}
	if !strings.Contains(got, "- https://ftp.sra.ebi.ac.uk/vol1/a_2.fastq.gz") {
		t.Errorf("output missing second expanded URL:\n%s", got)
	}

	buf.Reset()
	FormatOutcome(out, &buf, false)
	if strings.Contains(buf.String(), "https://") {
		t.Errorf("ftp field expanded without showURLs:\n%s", buf.String())
	}
}

func TestFormatOutcomeMessage(t *testing.T) {
	out := &Outcome{
		Query:      `scientific_name="no such thing"`,
		ResultType: ResultTypeReadRun,
		Records:    []types.Record{},
		Message:    "No results found",
	}

	var buf strings.Builder
	FormatOutcome(out, &buf, false)
	got := buf.String()

	if !strings.Contains(got, "Results Found: 0") {
		t.Errorf("output missing zero count:\n%s", got)
	}
	if !strings.Contains(got, "No results found") {
		t.Errorf("output missing message:\n%s", got)
	}
	if strings.Contains(got, "Result 1:") {
		t.Errorf("output shows records for an empty result:\n%s", got)
	}
}

func TestFormatOutcomeJSON(t *testing.T) {
	out := &Outcome{
		Query:      "tax_tree(5833)",
		ResultType: ResultTypeReadRun,
		Fields:     []string{FieldRunAccession},
		Count:      1,
		Records:    []types.Record{{FieldRunAccession: "ERR164407"}},
	}

	var buf strings.Builder
	if err := FormatOutcomeJSON(out, &buf); err != nil {
		t.Fatalf("FormatOutcomeJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["query"] != "tax_tree(5833)" {
		t.Errorf("query = %v", decoded["query"])
	}
	if _, ok := decoded["grouped_by_bioproject"]; ok {
		t.Error("empty bioproject grouping serialized, want omitted")
	}
}

func TestFormatRunFiles(t *testing.T) {
	files := types.RunFiles{
		RunAccession: "ERR164407",
		URLs: []string{
			"https://ftp.sra.ebi.ac.uk/vol1/a_1.fastq.gz",
			"https://ftp.sra.ebi.ac.uk/vol1/a_2.fastq.gz",
		},
		Sizes:     []string{"1170191188"},
		Checksums: []string{"0d45ee44c0b8cbf4", "bd2bb55c4f66f2ee"},
	}

	var buf strings.Builder
	FormatRunFiles(files, &buf)
	got := buf.String()

	if !strings.Contains(got, "Run: ERR164407") {
		t.Errorf("output missing run header:\n%s", got)
	}
	if !strings.Contains(got, "1. https://ftp.sra.ebi.ac.uk/vol1/a_1.fastq.gz") {
		t.Errorf("output missing first file:\n%s", got)
	}
	if !strings.Contains(got, "size: 1170191188 bytes") {
		t.Errorf("output missing first size:\n%s", got)
	}
	// The second URL has no size entry; the line must simply be absent.
	if strings.Count(got, "size:") != 1 {
		t.Errorf("want exactly one size line:\n%s", got)
	}
}

func TestFormatRunFilesEmpty(t *testing.T) {
	var buf strings.Builder
	FormatRunFiles(types.RunFiles{RunAccession: "ERR000000"}, &buf)
	if !strings.Contains(buf.String(), "No files reported for this run.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestFormatRunFilesJSON(t *testing.T) {
	one := []types.RunFiles{{RunAccession: "ERR164407", URLs: []string{"https://x/a.gz"}}}

	var buf strings.Builder
	if err := FormatRunFilesJSON(one, &buf); err != nil {
		t.Fatalf("FormatRunFilesJSON: %v", err)
	}
	// A single listing encodes as a bare object, not a one-element array.
	if strings.HasPrefix(strings.TrimSpace(buf.String()), "[") {
		t.Errorf("single listing encoded as array:\n%s", buf.String())
	}

	buf.Reset()
	two := append(one, types.RunFiles{RunAccession: "ERR164408"})
	if err := FormatRunFilesJSON(two, &buf); err != nil {
		t.Fatalf("FormatRunFilesJSON: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "[") {
		t.Errorf("two listings not encoded as array:\n%s", buf.String())
	}
}

func TestFormatStudy(t *testing.T) {
	rec := types.Record{
		FieldStudyTitle:     "Pf3K pilot",
		"study_description": "Sequencing of field isolates",
		FieldScientificName: "Plasmodium falciparum",
		FieldTaxID:          "5833",
		"center_name":       "",
	}

	var buf strings.Builder
	FormatStudy("PRJEB1787", rec, &buf)
	got := buf.String()

	for _, want := range []string{
		"BioProject: PRJEB1787",
		"Title: Pf3K pilot",
		"Description:",
		"Sequencing of field isolates",
		"Organism: Plasmodium falciparum (Tax ID: 5833)",
		"Center: N/A",
		"Alias: N/A",
		"First Public: N/A",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestFormatStudyJSON(t *testing.T) {
	var buf strings.Builder
	err := FormatStudyJSON("PRJEB1787", types.Record{FieldStudyTitle: "Pf3K pilot"}, &buf)
	if err != nil {
		t.Fatalf("FormatStudyJSON: %v", err)
	}

	var decoded struct {
		Accession string       `json:"accession"`
		Details   types.Record `json:"details"`
	}
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Accession != "PRJEB1787" || decoded.Details[FieldStudyTitle] != "Pf3K pilot" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestTitleWords(t *testing.T) {
	cases := map[string]string{
		"run_accession":   "Run Accession",
		"fastq_ftp":       "Fastq Ftp",
		"accession":       "Accession",
		"first_public":    "First Public",
		"base_count":      "Base Count",
		"tax_id":          "Tax Id",
		"scientific_name": "Scientific Name",
	}
	for in, want := range cases {
		if got := titleWords(in); got != want {
			t.Errorf("titleWords(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 100); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	long := strings.Repeat("a", 101)
	got := truncate(long, 100)
	if len(got) != 100 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncate(long) = %q (len %d)", got, len(got))
	}
}
