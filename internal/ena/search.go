// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ena queries the European Nucleotide Archive portal API and
// normalizes its responses into flat records.
package ena

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pdiddy/genome-engine/internal/httputil"
	"github.com/pdiddy/genome-engine/pkg/types"
)

// searchAPIBase is the ENA portal search endpoint. Declared as a var so
// tests can substitute an httptest server.
var searchAPIBase = "https://www.ebi.ac.uk/ena/portal/api/search"

// DefaultLimit caps the record count when a request does not set one.
const DefaultLimit = 10

// outputFormat is the serialization requested from the portal.
const outputFormat = "json"

// ErrNotFound marks lookups whose accession matched nothing.
var ErrNotFound = errors.New("not found")

// Searcher queries the ENA portal API.
type Searcher struct {
	Client *http.Client
}

// Request holds the parameters of one portal search.
type Request struct {
	// Query is the search expression, already in portal grammar
	// (see NormalizeQuery).
	Query string

	// ResultType selects the portal result set to search.
	ResultType ResultType

	// Fields lists the record fields to request; empty means the
	// default list for ResultType.
	Fields []string

	// Limit caps the number of records returned (default DefaultLimit).
	Limit int

	// Offset skips records for pagination.
	Offset int
}

// Outcome is the decoded result of one search.
type Outcome struct {
	Query       string                  `json:"query" yaml:"query"`
	ResultType  ResultType              `json:"result_type" yaml:"result_type"`
	Fields      []string                `json:"fields" yaml:"fields"`
	Count       int                     `json:"count" yaml:"count"`
	Records     []types.Record          `json:"results" yaml:"results"`
	Bioprojects []types.BioprojectGroup `json:"grouped_by_bioproject,omitempty" yaml:"grouped_by_bioproject,omitempty"`
	Message     string                  `json:"message,omitempty" yaml:"message,omitempty"`
}

// Search executes one query against the portal. A 204 reply is an empty
// success carrying a message, not an error; read_run results additionally
// get grouped by bioproject.
func (s *Searcher) Search(ctx context.Context, req Request, cfg types.HTTPConfig) (*Outcome, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	fields := req.Fields
	if len(fields) == 0 {
		fields = DefaultFields(req.ResultType)
	}

	params := url.Values{
		"result": {string(req.ResultType)},
		"query":  {req.Query},
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(req.Offset)},
		"format": {outputFormat},
		"fields": {strings.Join(fields, ",")},
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
			err = errors.WithHint(err, "Try a different search term or check the query syntax")
		}
		return nil, err
	}

	out := &Outcome{
		Query:      req.Query,
		ResultType: req.ResultType,
		Fields:     fields,
	}
	if resp.NoContent {
		out.Records = []types.Record{}
		out.Message = "No results found"
		return out, nil
	}

	out.Records = decodeRecords(resp.Body)
	out.Count = len(out.Records)
	if req.ResultType == ResultTypeReadRun && len(out.Records) > 0 {
		out.Bioprojects = GroupByBioproject(out.Records)
	}
	return out, nil
}

// decodeRecords converts a response body into records. Only a top-level
// JSON array contributes records; any other shape decodes to none.
func decodeRecords(body []byte) []types.Record {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return []types.Record{}
	}
	rows, ok := decoded.([]any)
	if !ok {
		return []types.Record{}
	}

	records := make([]types.Record, 0, len(rows))
	for _, row := range rows {
		obj, ok := row.(map[string]any)
		if !ok {
			continue
		}
		rec := make(types.Record, len(obj))
		for k, v := range obj {
			rec[k] = fieldString(v)
		}
		records = append(records, rec)
	}
	return records
}

// fieldString renders one decoded JSON value as a record field. The
// portal serves strings; other JSON shapes are flattened to text.
func fieldString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
