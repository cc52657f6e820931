// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ena

import (
	"sort"
	"testing"
)

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name   string
		want   ResultType
		wantOK bool
	}{
		{"read", ResultTypeReadRun, true},
		{"fastq", ResultTypeReadRun, true},
		{"assembly", ResultTypeAssembly, true},
		{"wgs", ResultTypeWGSSet, true},
		{"sequence", ResultTypeSequence, true},
		{"study", ResultTypeStudy, true},
		{"sample", ResultTypeSample, true},
		{"analysis", ResultTypeAnalysis, true},
		{"taxon", ResultTypeTaxon, true},
		{"protein", "", false},
		{"", "", false},
		{"READ", "", false},
	}
	for _, tt := range tests {
		got, ok := ResolveCategory(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ResolveCategory(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCategoryName(t *testing.T) {
	if got := CategoryName(ResultTypeReadRun); got != "read" {
		t.Errorf("CategoryName(read_run) = %q, want %q", got, "read")
	}
	if got := CategoryName(ResultTypeWGSSet); got != "wgs" {
		t.Errorf("CategoryName(wgs_set) = %q, want %q", got, "wgs")
	}
	if got := CategoryName(ResultType("coding_release")); got != "coding_release" {
		t.Errorf("CategoryName(unknown) = %q, want the raw value", got)
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 9 {
		t.Fatalf("len(Categories()) = %d, want 9", len(cats))
	}
	if !sort.StringsAreSorted(cats) {
		t.Errorf("Categories() = %v, want sorted", cats)
	}
	seen := make(map[string]bool, len(cats))
	for _, c := range cats {
		seen[c] = true
	}
	if !seen["read"] || !seen["fastq"] {
		t.Errorf("Categories() = %v, want both read and fastq aliases", cats)
	}
}

func TestDefaultFields(t *testing.T) {
	read := DefaultFields(ResultTypeReadRun)
	if len(read) != 10 {
		t.Fatalf("len(DefaultFields(read_run)) = %d, want 10", len(read))
	}
	if read[0] != FieldRunAccession {
		t.Errorf("DefaultFields(read_run)[0] = %q, want %q", read[0], FieldRunAccession)
	}
	if read[len(read)-1] != FieldStudyTitle {
		t.Errorf("DefaultFields(read_run) last = %q, want %q", read[len(read)-1], FieldStudyTitle)
	}

	sample := DefaultFields(ResultTypeSample)
	if len(sample) != 6 || sample[0] != FieldSampleAccession {
		t.Errorf("DefaultFields(sample) = %v", sample)
	}
}

func TestDefaultFieldsFallback(t *testing.T) {
	for _, rt := range []ResultType{ResultTypeTaxon, ResultTypeSequence, ResultTypeAnalysis, ResultTypeWGSSet} {
		fields := DefaultFields(rt)
		if len(fields) != 2 || fields[0] != FieldAccession || fields[1] != FieldScientificName {
			t.Errorf("DefaultFields(%s) = %v, want the two-field fallback", rt, fields)
		}
	}
}

func TestDefaultFieldsReturnsCopy(t *testing.T) {
	first := DefaultFields(ResultTypeReadRun)
	first[0] = "mutated"
	second := DefaultFields(ResultTypeReadRun)
	if second[0] != FieldRunAccession {
		t.Errorf("DefaultFields shares backing storage: got %q after mutation", second[0])
	}
}
