// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ena

import "sort"

// ResultType is an ENA portal result set identifier, sent as the "result"
// request parameter.
type ResultType string

// Result sets served by the portal API.
const (
	ResultTypeReadRun  ResultType = "read_run"
	ResultTypeAssembly ResultType = "assembly"
	ResultTypeWGSSet   ResultType = "wgs_set"
	ResultTypeSequence ResultType = "sequence"
	ResultTypeStudy    ResultType = "study"
	ResultTypeSample   ResultType = "sample"
	ResultTypeAnalysis ResultType = "analysis"
	ResultTypeTaxon    ResultType = "taxon"
)

// Record fields referenced by name across the package.
const (
	FieldAccession       = "accession"
	FieldRunAccession    = "run_accession"
	FieldStudyAccession  = "study_accession"
	FieldSampleAccession = "sample_accession"
	FieldScientificName  = "scientific_name"
	FieldStudyTitle      = "study_title"
	FieldLibraryLayout   = "library_layout"
	FieldFastqFTP        = "fastq_ftp"
	FieldFastqBytes      = "fastq_bytes"
	FieldFastqMD5        = "fastq_md5"
	FieldTaxID           = "tax_id"
)

// categories maps user-facing data-type names to portal result sets.
// "read" and "fastq" are aliases for the same result set.
var categories = map[string]ResultType{
	"read":     ResultTypeReadRun,
	"fastq":    ResultTypeReadRun,
	"assembly": ResultTypeAssembly,
	"wgs":      ResultTypeWGSSet,
	"sequence": ResultTypeSequence,
	"study":    ResultTypeStudy,
	"sample":   ResultTypeSample,
	"analysis": ResultTypeAnalysis,
	"taxon":    ResultTypeTaxon,
}

// categoryNames maps each result set back to its primary data-type name.
// read_run reports "read", which also answers for the "fastq" alias.
var categoryNames = map[ResultType]string{
	ResultTypeReadRun:  "read",
	ResultTypeAssembly: "assembly",
	ResultTypeWGSSet:   "wgs",
	ResultTypeSequence: "sequence",
	ResultTypeStudy:    "study",
	ResultTypeSample:   "sample",
	ResultTypeAnalysis: "analysis",
	ResultTypeTaxon:    "taxon",
}

// ResolveCategory returns the result set for a user-facing data-type name.
func ResolveCategory(name string) (ResultType, bool) {
	rt, ok := categories[name]
	return rt, ok
}

// CategoryName returns the primary data-type name for rt, or the raw
// result type string when rt is not a known result set.
func CategoryName(rt ResultType) string {
	if name, ok := categoryNames[rt]; ok {
		return name
	}
	return string(rt)
}

// Categories returns the accepted data-type names, sorted.
func Categories() []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultFields holds the curated field list requested for each result
// set when the caller does not name fields.
var defaultFields = map[ResultType][]string{
	ResultTypeReadRun: {
		FieldRunAccession, FieldStudyAccession, FieldSampleAccession,
		FieldScientificName, "instrument_platform", FieldLibraryLayout,
		FieldFastqFTP, FieldFastqBytes, "library_strategy", FieldStudyTitle,
	},
	ResultTypeAssembly: {
		FieldAccession, FieldScientificName, "assembly_level",
		"genome_representation", "assembly_name", "assembly_title",
	},
	ResultTypeStudy: {
		FieldStudyAccession, FieldStudyTitle, "study_alias",
		FieldScientificName, "study_description",
	},
	ResultTypeSample: {
		FieldSampleAccession, FieldScientificName, "collection_date",
		"country", "host", "isolation_source",
	},
}

// fallbackFields serves result sets without a curated list.
var fallbackFields = []string{FieldAccession, FieldScientificName}

// DefaultFields returns the default field list for rt. The caller owns
// the returned slice.
func DefaultFields(rt ResultType) []string {
	fields, ok := defaultFields[rt]
	if !ok {
		fields = fallbackFields
	}
	return append([]string(nil), fields...)
}
