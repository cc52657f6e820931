// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the genome-engine
// pipeline: archive records, bioproject groupings, run file listings,
// taxon details, workflow entries, and stage configuration.
package types

// Record is one row returned by an archive query: a flat mapping of field
// name to string value. The archive serves every field as text, so values
// keep whatever form the archive sent; a missing field and an empty field
// both read as "". Display order comes from the requested field list, not
// from the map.
type Record map[string]string

// Get returns the value for field, or fallback when the field is absent
// or empty.
func (r Record) Get(field, fallback string) string {
	if v := r[field]; v != "" {
		return v
	}
	return fallback
}

// BioprojectGroup collects the read-run records that share one bioproject
// (study) accession.
type BioprojectGroup struct {
	// Accession is the study accession shared by the grouped runs, or
	// "Unknown" for runs whose records carry no study_accession field.
	Accession string `json:"bioproject_accession" yaml:"bioproject_accession"`

	// StudyTitle is the first non-empty study title seen among the runs.
	StudyTitle string `json:"study_title,omitempty" yaml:"study_title,omitempty"`

	// ReadCount is the number of runs in the group.
	ReadCount int `json:"read_count" yaml:"read_count"`

	// Runs holds the grouped records in the order the archive returned them.
	Runs []Record `json:"runs" yaml:"runs"`
}

// RunFiles holds the per-file download details resolved from one read-run
// record. The three slices are resolved independently from the archive's
// semicolon-delimited fields and may differ in length.
type RunFiles struct {
	// RunAccession identifies the sequencing run.
	RunAccession string `json:"run_accession" yaml:"run_accession"`

	// URLs lists the downloadable file URLs, scheme-qualified.
	URLs []string `json:"fastq_urls" yaml:"fastq_urls"`

	// Sizes lists the file sizes in bytes, as reported by the archive.
	Sizes []string `json:"file_sizes" yaml:"file_sizes"`

	// Checksums lists the MD5 digests published for the files.
	Checksums []string `json:"md5_checksums" yaml:"md5_checksums"`
}
