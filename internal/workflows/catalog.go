// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workflows searches the IWC (Intergalactic Workflow Commission)
// manifest of curated Galaxy workflows.
package workflows

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/pdiddy/genome-engine/internal/httputil"
	"github.com/pdiddy/genome-engine/pkg/types"
)

// manifestAPIBase is the IWC workflow manifest location. Declared as a
// var so tests can substitute an httptest server.
var manifestAPIBase = "https://iwc.galaxyproject.org/workflow_manifest.json"

// Catalog fetches and caches the IWC workflow manifest. The manifest is
// fetched at most once per Catalog; a fetch failure is not cached, so a
// later call retries.
type Catalog struct {
	Client *http.Client

	mu        sync.Mutex
	workflows []types.Workflow
	fetched   bool
}

// Search returns workflows, optionally filtered to those whose category
// list matches category (case-insensitive substring). limit <= 0 returns
// all matches.
func (c *Catalog) Search(ctx context.Context, category string, limit int, cfg types.HTTPConfig) ([]types.Workflow, error) {
	workflows, err := c.load(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if category != "" {
		workflows = filterByCategory(workflows, category)
	}
	if limit > 0 && limit < len(workflows) {
		workflows = workflows[:limit]
	}
	return workflows, nil
}

// ListCategories returns the sorted set of collection names across all
// cataloged workflows.
func (c *Catalog) ListCategories(ctx context.Context, cfg types.HTTPConfig) ([]string, error) {
	workflows, err := c.load(ctx, cfg)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, wf := range workflows {
		for _, cat := range wf.Categories {
			seen[cat] = struct{}{}
		}
	}
	categories := make([]string, 0, len(seen))
	for cat := range seen {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	return categories, nil
}

func (c *Catalog) load(ctx context.Context, cfg types.HTTPConfig) ([]types.Workflow, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fetched {
		return c.workflows, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, manifestAPIBase, nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.FetchJSON(ctx, c.Client, req)
	if err != nil {
		return nil, err
	}

	var manifest []manifestRepo
	if err := json.Unmarshal(resp.Body, &manifest); err != nil {
		return nil, errors.Wrap(err, "parsing workflow manifest")
	}

	c.workflows = extractWorkflows(manifest)
	c.fetched = true
	return c.workflows, nil
}

// extractWorkflows flattens the manifest's repo/workflow hierarchy.
// Workflows without a tests entry are incomplete and skipped.
func extractWorkflows(manifest []manifestRepo) []types.Workflow {
	var workflows []types.Workflow
	for _, repo := range manifest {
		for _, wf := range repo.Workflows {
			if wf.Tests == nil {
				continue
			}

			name := wf.Definition.Name
			if name == "" {
				name = "Unknown"
			}
			var creators []string
			for _, creator := range wf.Definition.Creator {
				if creator.Name != "" {
					creators = append(creators, creator.Name)
				}
			}

			workflows = append(workflows, types.Workflow{
				Name:        name,
				Description: wf.Definition.Annotation,
				TRSID:       wf.TrsID,
				IWCID:       wf.IwcID,
				Release:     wf.Definition.Release,
				Categories:  wf.Collections,
				License:     wf.Definition.License,
				Creators:    creators,
				Tags:        wf.Definition.Tags,
			})
		}
	}
	return workflows
}

func filterByCategory(workflows []types.Workflow, category string) []types.Workflow {
	needle := strings.ToLower(category)
	var matched []types.Workflow
	for _, wf := range workflows {
		for _, cat := range wf.Categories {
			if strings.Contains(strings.ToLower(cat), needle) {
				matched = append(matched, wf)
				break
			}
		}
	}
	return matched
}

// IWC manifest JSON structures. Tests stays raw: only its presence
// matters, and an absent key decodes to a nil RawMessage.
type manifestRepo struct {
	Workflows []manifestWorkflow `json:"workflows"`
}

type manifestWorkflow struct {
	Definition  manifestDefinition `json:"definition"`
	TrsID       string             `json:"trsID"`
	IwcID       string             `json:"iwcID"`
	Collections []string           `json:"collections"`
	Tests       json.RawMessage    `json:"tests"`
}

type manifestDefinition struct {
	Name       string            `json:"name"`
	Annotation string            `json:"annotation"`
	Release    string            `json:"release"`
	License    string            `json:"license"`
	Creator    []manifestCreator `json:"creator"`
	Tags       []string          `json:"tags"`
}

type manifestCreator struct {
	Class string `json:"class"`
	Name  string `json:"name"`
}
