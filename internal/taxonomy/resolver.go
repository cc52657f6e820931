// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package taxonomy resolves organism names and taxonomy IDs against the
// NCBI Datasets taxonomy API.
package taxonomy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/pdiddy/genome-engine/internal/httputil"
	"github.com/pdiddy/genome-engine/pkg/types"
)

// suggestAPIBase is the NCBI name-suggestion endpoint. Declared as a var
// so tests can substitute an httptest server.
var suggestAPIBase = "https://api.ncbi.nlm.nih.gov/datasets/v2/taxonomy/taxon_suggest"

// taxonAPIBase is the NCBI taxon detail endpoint. Declared as a var so
// tests can substitute an httptest server.
var taxonAPIBase = "https://api.ncbi.nlm.nih.gov/datasets/v2/taxonomy/taxon"

// ErrNotFound marks lookups for which NCBI has no matching taxon.
var ErrNotFound = errors.New("taxon not found")

// Resolver queries the NCBI Datasets taxonomy API.
type Resolver struct {
	Client *http.Client
}

// ResolveName resolves an organism name (scientific or common) to full
// taxonomy information. The suggestion endpoint ranks matches by
// relevance; the first one wins and is looked up by ID.
func (r *Resolver) ResolveName(ctx context.Context, name string, cfg types.HTTPConfig) (*types.TaxonInfo, error) {
	reqURL := suggestAPIBase + "/" + url.PathEscape(name)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	httpReq.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.FetchJSON(ctx, r.Client, httpReq)
	if err != nil {
		return nil, err
	}

	var sr suggestResponse
	if !resp.NoContent {
		if err := json.Unmarshal(resp.Body, &sr); err != nil {
			return nil, errors.Wrap(err, "parsing suggestion response")
		}
	}
	if len(sr.SciNameAndIDs) == 0 {
		err := errors.Newf("no taxonomy match for %q", name)
		err = errors.WithHint(err, "Try the organism's full scientific name")
		return nil, errors.Mark(err, ErrNotFound)
	}

	taxID, err := strconv.Atoi(sr.SciNameAndIDs[0].TaxID)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing suggested tax id %q", sr.SciNameAndIDs[0].TaxID)
	}
	return r.Lookup(ctx, taxID, cfg)
}

// Lookup fetches full taxonomy information for one taxonomy ID. The
// common name prefers the curated common_names list and falls back to
// the GenBank common name.
func (r *Resolver) Lookup(ctx context.Context, taxID int, cfg types.HTTPConfig) (*types.TaxonInfo, error) {
	reqURL := taxonAPIBase + "/" + strconv.Itoa(taxID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	httpReq.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.FetchJSON(ctx, r.Client, httpReq)
	if err != nil {
		return nil, err
	}

	var tr taxonResponse
	if !resp.NoContent {
		if err := json.Unmarshal(resp.Body, &tr); err != nil {
			return nil, errors.Wrap(err, "parsing taxon response")
		}
	}
	if len(tr.TaxonomyNodes) == 0 {
		err := errors.Newf("taxonomy ID %d not found", taxID)
		err = errors.WithHint(err, "Check that the taxonomy ID is correct")
		return nil, errors.Mark(err, ErrNotFound)
	}

	tax := tr.TaxonomyNodes[0].Taxonomy
	commonName := tax.GenbankCommonName
	if len(tax.CommonNames) > 0 {
		commonName = tax.CommonNames[0]
	}

	return &types.TaxonInfo{
		TaxID:          tax.TaxID,
		ScientificName: tax.OrganismName,
		CommonName:     commonName,
		Rank:           tax.Rank,
		Lineage:        tax.Lineage,
		ParentTaxID:    tax.ParentTaxID,
	}, nil
}

// NCBI Datasets API JSON structures.
type suggestResponse struct {
	SciNameAndIDs []suggestMatch `json:"sci_name_and_ids"`
}

type suggestMatch struct {
	SciName string `json:"sci_name"`
	TaxID   string `json:"tax_id"`
}

type taxonResponse struct {
	TaxonomyNodes []taxonNode `json:"taxonomy_nodes"`
}

type taxonNode struct {
	Taxonomy taxonRecord `json:"taxonomy"`
}

type taxonRecord struct {
	TaxID             int      `json:"tax_id"`
	OrganismName      string   `json:"organism_name"`
	CommonNames       []string `json:"common_names"`
	GenbankCommonName string   `json:"genbank_common_name"`
	Rank              string   `json:"rank"`
	Lineage           []int    `json:"lineage"`
	ParentTaxID       int      `json:"parent_tax_id"`
}
