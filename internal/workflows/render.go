// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflows

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/genome-engine/pkg/types"
)

// maxTags caps how many tags a workflow entry lists.
const maxTags = 5

// FormatWorkflows writes a human-readable workflow listing to w.
func FormatWorkflows(category string, workflows []types.Workflow, w io.Writer) {
	if category != "" {
		fmt.Fprintf(w, "Category Filter: %s\n", category)
	}
	fmt.Fprintf(w, "Workflows Found: %d\n", len(workflows))
	if len(workflows) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintln(w, "WORKFLOWS")
	fmt.Fprintln(w, strings.Repeat("=", 60))

	for i, wf := range workflows {
		fmt.Fprintf(w, "\nWorkflow %d:\n", i+1)
		fmt.Fprintf(w, "  Name: %s\n", wf.Name)
		if wf.Description != "" {
			fmt.Fprintf(w, "  Description: %s\n", truncate(wf.Description, 150))
		}
		if len(wf.Categories) > 0 {
			fmt.Fprintf(w, "  Categories: %s\n", strings.Join(wf.Categories, ", "))
		}
		fmt.Fprintf(w, "  TRS ID: %s\n", wf.TRSID)
		if wf.IWCID != "" {
			fmt.Fprintf(w, "  IWC ID: %s\n", wf.IWCID)
		}
		if wf.Release != "" {
			fmt.Fprintf(w, "  Release: v%s\n", wf.Release)
		}
		if len(wf.Tags) > 0 {
			tags := wf.Tags
			if len(tags) > maxTags {
				tags = tags[:maxTags]
			}
			fmt.Fprintf(w, "  Tags: %s\n", strings.Join(tags, ", "))
		}
		fmt.Fprintln(w, strings.Repeat("-", 60))
	}
}

// FormatWorkflowsJSON writes the workflow search result as indented JSON.
func FormatWorkflowsJSON(category string, workflows []types.Workflow, w io.Writer) error {
	payload := struct {
		Category  string           `json:"category,omitempty"`
		Count     int              `json:"count"`
		Workflows []types.Workflow `json:"workflows"`
	}{Category: category, Count: len(workflows), Workflows: workflows}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// FormatCategories writes a human-readable category listing to w.
func FormatCategories(categories []string, w io.Writer) {
	fmt.Fprintf(w, "Available Workflow Categories (%d):\n", len(categories))
	fmt.Fprintln(w, strings.Repeat("=", 60))
	for _, cat := range categories {
		fmt.Fprintf(w, "  - %s\n", cat)
	}
}

// FormatCategoriesJSON writes the category listing as indented JSON.
func FormatCategoriesJSON(categories []string, w io.Writer) error {
	payload := struct {
		Categories []string `json:"categories"`
		Count      int      `json:"count"`
	}{Categories: categories, Count: len(categories)}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
