// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ena

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pdiddy/genome-engine/pkg/types"
)

// fastqFields is the field set requested when resolving a run's files.
var fastqFields = []string{
	FieldRunAccession, FieldFastqFTP, FieldFastqMD5, FieldFastqBytes,
}

// FetchRunFiles looks up a single run by accession and resolves its file
// listing. A run that matches nothing returns ErrNotFound.
func (s *Searcher) FetchRunFiles(ctx context.Context, runAccession string, cfg types.HTTPConfig) (types.RunFiles, error) {
	out, err := s.Search(ctx, Request{
		Query:      FieldRunAccession + "=" + runAccession,
		ResultType: ResultTypeReadRun,
		Fields:     append([]string(nil), fastqFields...),
		Limit:      1,
	}, cfg)
	if err != nil {
		return types.RunFiles{}, err
	}
	if len(out.Records) == 0 {
		err := errors.Newf("run accession %s not found", runAccession)
		err = errors.WithHint(err, "Check that the accession is correct")
		return types.RunFiles{}, errors.Mark(err, ErrNotFound)
	}
	return ResolveRunFiles(out.Records[0]), nil
}

// ResolveRunFiles expands the semicolon-delimited file fields of one
// read-run record into per-file entries. An empty fastq_ftp field yields
// no URLs, while empty size and checksum fields each yield one empty
// entry; the three slices are not reconciled against each other.
func ResolveRunFiles(rec types.Record) types.RunFiles {
	files := types.RunFiles{
		RunAccession: rec[FieldRunAccession],
		Sizes:        strings.Split(rec[FieldFastqBytes], ";"),
		Checksums:    strings.Split(rec[FieldFastqMD5], ";"),
	}
	if ftp := rec[FieldFastqFTP]; ftp != "" {
		for _, path := range strings.Split(ftp, ";") {
			files.URLs = append(files.URLs, qualifyURL(path))
		}
	}
	return files
}

// qualifyURL prepends https:// to paths the archive reports without a
// scheme.
func qualifyURL(path string) string {
	if strings.HasPrefix(path, "http") {
		return path
	}
	return "https://" + path
}
