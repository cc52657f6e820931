// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ena

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/pdiddy/genome-engine/internal/httputil"
)

func TestFetchStudy(t *testing.T) {
	var gotQuery url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"study_accession":"PRJEB1787","study_title":"Pf3K pilot",
			"study_description":"Sequencing of P. falciparum field isolates",
			"center_name":"Wellcome Sanger Institute","study_alias":"pf3k-pilot",
			"first_public":"2013-03-26","last_updated":"2018-11-16",
			"scientific_name":"Plasmodium falciparum","tax_id":"5833"}]`)
	}))
	defer ts.Close()

	old := searchAPIBase
	searchAPIBase = ts.URL
	defer func() { searchAPIBase = old }()

	s := &Searcher{Client: ts.Client()}
	rec, err := s.FetchStudy(context.Background(), "PRJEB1787", testCfg())
	if err != nil {
		t.Fatalf("FetchStudy: %v", err)
	}

	if got := gotQuery.Get("result"); got != "study" {
		t.Errorf("result param = %q", got)
	}
	if got := gotQuery.Get("query"); got != "study_accession=PRJEB1787" {
		t.Errorf("query param = %q", got)
	}
	if got := gotQuery.Get("format"); got != "json" {
		t.Errorf("format param = %q", got)
	}
	if got := gotQuery.Get("fields"); !strings.Contains(got, "study_description") {
		t.Errorf("fields param = %q, want study detail fields", got)
	}
	// Detail lookups fetch the full record set for the accession.
	if _, ok := gotQuery["limit"]; ok {
		t.Error("limit param present, want absent")
	}
	if _, ok := gotQuery["offset"]; ok {
		t.Error("offset param present, want absent")
	}

	if rec["study_title"] != "Pf3K pilot" {
		t.Errorf("study_title = %q", rec["study_title"])
	}
	if rec["center_name"] != "Wellcome Sanger Institute" {
		t.Errorf("center_name = %q", rec["center_name"])
	}
}

func TestFetchStudyNoContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	old := searchAPIBase
	searchAPIBase = ts.URL
	defer func() { searchAPIBase = old }()

	s := &Searcher{Client: ts.Client()}
	_, err := s.FetchStudy(context.Background(), "PRJEB0000", testCfg())
	if err == nil {
		t.Fatal("FetchStudy: want error for 204")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), "PRJEB0000") {
		t.Errorf("error = %v, want the accession named", err)
	}
}

func TestFetchStudyEmptyResult(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, "[]")
	}))
	defer ts.Close()

	old := searchAPIBase
	searchAPIBase = ts.URL
	defer func() { searchAPIBase = old }()

	s := &Searcher{Client: ts.Client()}
	_, err := s.FetchStudy(context.Background(), "PRJEB0000", testCfg())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestFetchStudyRemoteError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	old := searchAPIBase
	searchAPIBase = ts.URL
	defer func() { searchAPIBase = old }()

	s := &Searcher{Client: ts.Client()}
	_, err := s.FetchStudy(context.Background(), "PRJEB1787", testCfg())
	if !errors.Is(err, httputil.ErrRemote) {
		t.Fatalf("error = %v, want ErrRemote", err)
	}
	hints := errors.GetAllHints(err)
	if len(hints) == 0 || !strings.Contains(hints[0], "check the accession") {
		t.Errorf("hints = %v", hints)
	}
}
