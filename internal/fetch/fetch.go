// Package fetch downloads sequencing run files into a local datasets
// directory.
package fetch

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/pdiddy/genome-engine/pkg/types"
)

// RunResolver resolves a run accession to its file listing.
// *ena.Searcher implements it.
type RunResolver interface {
	FetchRunFiles(ctx context.Context, runAccession string, cfg types.HTTPConfig) (types.RunFiles, error)
}

// Result summarizes a batch download run. Downloaded and Skipped count
// files; Failed counts runs.
type Result struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// HasFailures reports whether any run failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// FetchBatch resolves and downloads the files of several runs, strictly
// in order, printing per-item status to w. It continues after individual
// run failures and applies a delay between consecutive runs.
func FetchBatch(ctx context.Context, resolver RunResolver, client *http.Client, accessions []string, cfg types.FetchConfig, w io.Writer) Result {
	var result Result
	for i, accession := range accessions {
		if i > 0 && cfg.DownloadDelay > 0 {
			time.Sleep(cfg.DownloadDelay)
		}

		files, err := resolver.FetchRunFiles(ctx, accession, cfg.HTTPConfig)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", accession, err)
			result.Failed++
			continue
		}
		if files.RunAccession == "" {
			files.RunAccession = accession
		}

		downloaded, skipped, err := FetchRun(client, files, cfg, w)
		result.Downloaded += downloaded
		result.Skipped += skipped
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", accession, err)
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d files downloaded, %d skipped, %d runs failed\n",
		result.Downloaded, result.Skipped, result.Failed)
	return result
}

// FetchRun downloads every file of one resolved run into
// cfg.DatasetsDir/<run accession>/. Files already on disk are skipped.
// A file with a checksum at the matching index is verified after
// download; a shorter checksum list leaves trailing files unverified.
func FetchRun(client *http.Client, files types.RunFiles, cfg types.FetchConfig, w io.Writer) (downloaded, skipped int, err error) {
	if len(files.URLs) == 0 {
		return 0, 0, errors.Newf("no files reported for run %s", files.RunAccession)
	}

	runDir := filepath.Join(cfg.DatasetsDir, files.RunAccession)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return 0, 0, errors.Wrapf(err, "creating directory %s", runDir)
	}

	for i, fileURL := range files.URLs {
		name, err := fileName(fileURL)
		if err != nil {
			return downloaded, skipped, err
		}
		destPath := filepath.Join(runDir, name)

		if _, statErr := os.Stat(destPath); statErr == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", name)
			skipped++
			continue
		}

		var checksum string
		if i < len(files.Checksums) {
			checksum = files.Checksums[i]
		}

		fmt.Fprintf(w, "downloading: %s\n", name)
		if err := downloadFile(client, fileURL, destPath, checksum, cfg); err != nil {
			return downloaded, skipped, errors.Wrapf(err, "downloading %s", name)
		}
		downloaded++
	}
	return downloaded, skipped, nil
}

// fileName extracts the base file name from a download URL.
func fileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrapf(err, "parsing URL %s", rawURL)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", errors.Newf("no file name in URL %s", rawURL)
	}
	return name, nil
}

// downloadFile fetches fileURL to destPath using a temporary file,
// verifying the MD5 checksum when one is known. The archive publishes
// MD5 digests, so that is what gets checked.
func downloadFile(client *http.Client, fileURL, destPath, checksum string, cfg types.FetchConfig) error {
	req, err := http.NewRequest(http.MethodGet, fileURL, nil)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "HTTP request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf("HTTP %d from %s", resp.StatusCode, fileURL)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpPath := tmpFile.Name()

	hash := md5.New()
	_, copyErr := io.Copy(io.MultiWriter(tmpFile, hash), resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return errors.Wrap(copyErr, "writing download")
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return errors.Wrap(closeErr, "closing temp file")
	}

	if checksum != "" {
		if sum := hex.EncodeToString(hash.Sum(nil)); sum != checksum {
			os.Remove(tmpPath)
			return errors.Newf("MD5 mismatch: got %s, want %s", sum, checksum)
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "renaming temp file")
	}
	return nil
}
