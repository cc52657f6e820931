// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ena

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pdiddy/genome-engine/internal/httputil"
	"github.com/pdiddy/genome-engine/pkg/types"
)

// studyFields is the field set requested for bioproject detail lookups.
var studyFields = []string{
	FieldStudyAccession, FieldStudyTitle, "study_description",
	"study_alias", "center_name", "first_public", "last_updated",
	FieldScientificName, FieldTaxID,
}

// FetchStudy retrieves the detail record for one bioproject (study)
// accession. Both a 204 reply and an empty result set map to ErrNotFound.
// Unlike Search, the request carries no limit or offset.
func (s *Searcher) FetchStudy(ctx context.Context, accession string, cfg types.HTTPConfig) (types.Record, error) {
	params := url.Values{
		"result": {string(ResultTypeStudy)},
		"query":  {FieldStudyAccession + "=" + accession},
		"format": {outputFormat},
		"fields": {strings.Join(studyFields, ",")},
	}
	reqURL := searchAPIBase + "?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	httpReq.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.FetchJSON(ctx, s.Client, httpReq)
	if err != nil {
		if errors.Is(err, httputil.ErrRemote) {
			err = errors.WithHint(err, "Try again or check the accession")
		}
		return nil, err
	}

	if !resp.NoContent {
		if records := decodeRecords(resp.Body); len(records) > 0 {
			return records[0], nil
		}
	}
	err = errors.Newf("bioproject %s not found", accession)
	err = errors.WithHint(err, "Check that the accession is correct")
	return nil, errors.Mark(err, ErrNotFound)
}
