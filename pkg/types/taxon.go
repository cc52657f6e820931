// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TaxonInfo describes one node of the NCBI taxonomy.
type TaxonInfo struct {
	// TaxID is the NCBI taxonomy identifier.
	TaxID int `json:"tax_id" yaml:"tax_id"`

	// ScientificName is the organism's scientific name (e.g. "Homo sapiens").
	ScientificName string `json:"scientific_name" yaml:"scientific_name"`

	// CommonName is the organism's common name, when one is recorded.
	CommonName string `json:"common_name,omitempty" yaml:"common_name,omitempty"`

	// Rank is the taxonomic rank (e.g. "SPECIES", "GENUS").
	Rank string `json:"rank,omitempty" yaml:"rank,omitempty"`

	// Lineage lists ancestor taxonomy IDs from the root down.
	Lineage []int `json:"lineage,omitempty" yaml:"lineage,omitempty"`

	// ParentTaxID is the immediate parent's taxonomy ID.
	ParentTaxID int `json:"parent_tax_id,omitempty" yaml:"parent_tax_id,omitempty"`
}
