package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "genome-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the run-file download stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// DownloadDelay is the delay between consecutive run downloads (default 1s).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`

	// DatasetsDir is the base directory for downloaded run files
	// (one subdirectory per run accession).
	DatasetsDir string `json:"datasets_dir" yaml:"datasets_dir"`
}

// CatalogConfig holds settings for the local search history catalog.
type CatalogConfig struct {
	// Dir is the directory holding the catalog database.
	Dir string `json:"dir" yaml:"dir"`
}
