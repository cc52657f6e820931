// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ena

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/pdiddy/genome-engine/pkg/types"
)

func TestResolveRunFiles(t *testing.T) {
	tests := []struct {
		name          string
		rec           types.Record
		wantURLs      []string
		wantSizes     []string
		wantChecksums []string
	}{
		{
			name: "paired files",
			rec: types.Record{
				FieldRunAccession: "ERR164407",
				FieldFastqFTP:     "ftp.sra.ebi.ac.uk/vol1/fastq/ERR164/ERR164407/ERR164407_1.fastq.gz;ftp.sra.ebi.ac.uk/vol1/fastq/ERR164/ERR164407/ERR164407_2.fastq.gz",
				FieldFastqBytes:   "1170191188;1246874858",
				FieldFastqMD5:     "6a6b07b4098e1bc5dce9b29b5f4cfbcc;a695f68a4a4b31e1310c45a9d6fb2306",
			},
			wantURLs: []string{
				"https://ftp.sra.ebi.ac.uk/vol1/fastq/ERR164/ERR164407/ERR164407_1.fastq.gz",
				"https://ftp.sra.ebi.ac.uk/vol1/fastq/ERR164/ERR164407/ERR164407_2.fastq.gz",
			},
			wantSizes:     []string{"1170191188", "1246874858"},
			wantChecksums: []string{"6a6b07b4098e1bc5dce9b29b5f4cfbcc", "a695f68a4a4b31e1310c45a9d6fb2306"},
		},
		{
			name: "empty fields keep the split asymmetry",
			rec: types.Record{
				FieldRunAccession: "ERR000001",
				FieldFastqFTP:     "",
				FieldFastqBytes:   "",
				FieldFastqMD5:     "",
			},
			wantURLs:      nil,
			wantSizes:     []string{""},
			wantChecksums: []string{""},
		},
		{
			name: "http url passes through unprefixed",
			rec: types.Record{
				FieldRunAccession: "SRR000001",
				FieldFastqFTP:     "https://example.org/SRR000001.fastq.gz",
				FieldFastqBytes:   "1024",
				FieldFastqMD5:     "d41d8cd98f00b204e9800998ecf8427e",
			},
			wantURLs:      []string{"https://example.org/SRR000001.fastq.gz"},
			wantSizes:     []string{"1024"},
			wantChecksums: []string{"d41d8cd98f00b204e9800998ecf8427e"},
		},
		{
			name: "unequal list lengths are not reconciled",
			rec: types.Record{
				FieldRunAccession: "ERR999999",
				FieldFastqFTP:     "host/a.fastq.gz;host/b.fastq.gz",
				FieldFastqBytes:   "100",
				FieldFastqMD5:     "m1;m2;m3",
			},
			wantURLs:      []string{"https://host/a.fastq.gz", "https://host/b.fastq.gz"},
			wantSizes:     []string{"100"},
			wantChecksums: []string{"m1", "m2", "m3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRunFiles(tt.rec)
			if got.RunAccession != tt.rec[FieldRunAccession] {
				t.Errorf("RunAccession = %q, want %q", got.RunAccession, tt.rec[FieldRunAccession])
			}
			if strings.Join(got.URLs, "|") != strings.Join(tt.wantURLs, "|") {
				t.Errorf("URLs = %v, want %v", got.URLs, tt.wantURLs)
			}
			if strings.Join(got.Sizes, "|") != strings.Join(tt.wantSizes, "|") {
				t.Errorf("Sizes = %v, want %v", got.Sizes, tt.wantSizes)
			}
			if strings.Join(got.Checksums, "|") != strings.Join(tt.wantChecksums, "|") {
				t.Errorf("Checksums = %v, want %v", got.Checksums, tt.wantChecksums)
			}
		})
	}
}

func TestFetchRunFiles(t *testing.T) {
	body := `[{"run_accession":"ERR164407","fastq_ftp":"ftp.sra.ebi.ac.uk/vol1/a_1.fastq.gz;ftp.sra.ebi.ac.uk/vol1/a_2.fastq.gz","fastq_md5":"m1;m2","fastq_bytes":"10;20"}]`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("query"); got != "run_accession=ERR164407" {
			t.Errorf("query param = %q", got)
		}
		if got := q.Get("result"); got != "read_run" {
			t.Errorf("result param = %q", got)
		}
		if got := q.Get("limit"); got != "1" {
			t.Errorf("limit param = %q", got)
		}
		if got := q.Get("fields"); got != "run_accession,fastq_ftp,fastq_md5,fastq_bytes" {
			t.Errorf("fields param = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	defer ts.Close()

	old := searchAPIBase
	searchAPIBase = ts.URL
	defer func() { searchAPIBase = old }()

	s := &Searcher{Client: ts.Client()}
	files, err := s.FetchRunFiles(context.Background(), "ERR164407", testCfg())
	if err != nil {
		t.Fatalf("FetchRunFiles: %v", err)
	}
	if files.RunAccession != "ERR164407" {
		t.Errorf("RunAccession = %q", files.RunAccession)
	}
	if len(files.URLs) != 2 || files.URLs[0] != "https://ftp.sra.ebi.ac.uk/vol1/a_1.fastq.gz" {
		t.Errorf("URLs = %v", files.URLs)
	}
	if len(files.Sizes) != 2 || len(files.Checksums) != 2 {
		t.Errorf("Sizes = %v, Checksums = %v", files.Sizes, files.Checksums)
	}
}

func TestFetchRunFilesNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, "[]")
	}))
	defer ts.Close()

	old := searchAPIBase
	searchAPIBase = ts.URL
	defer func() { searchAPIBase = old }()

	s := &Searcher{Client: ts.Client()}
	_, err := s.FetchRunFiles(context.Background(), "ERR000000", testCfg())
	if err == nil {
		t.Fatal("FetchRunFiles: want error for unknown accession")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), "ERR000000") {
		t.Errorf("error %q should name the accession", err)
	}
}
