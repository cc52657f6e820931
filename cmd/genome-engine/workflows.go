package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/genome-engine/internal/workflows"
)

const defaultWorkflowsTimeout = 30 * time.Second

var workflowsCmd = &cobra.Command{
	Use:   "workflows",
	Short: "Search the IWC catalog of curated Galaxy workflows",
	Long: `Workflows lists analysis workflows from the IWC (Intergalactic Workflow
Commission) manifest. Results can be narrowed to a category with
--category; --list-categories prints the categories instead.`,
	RunE: runWorkflows,
}

func init() {
	workflowsCmd.Flags().String("category", "", "filter workflows by category (case-insensitive substring)")
	workflowsCmd.Flags().Int("limit", 0, "maximum workflows to list (0 lists all)")
	workflowsCmd.Flags().Bool("list-categories", false, "list available categories instead of workflows")
	workflowsCmd.Flags().Bool("json", false, "output results as JSON")
	workflowsCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(workflowsCmd)
}

func runWorkflows(cmd *cobra.Command, args []string) error {
	cfg := httpConfig(commandTimeout(cmd, defaultWorkflowsTimeout))
	catalog := &workflows.Catalog{Client: &http.Client{Timeout: cfg.Timeout}}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if listCategories, _ := cmd.Flags().GetBool("list-categories"); listCategories {
		categories, err := catalog.ListCategories(context.Background(), cfg)
		if err != nil {
			return err
		}
		if jsonOutput {
			return workflows.FormatCategoriesJSON(categories, os.Stdout)
		}
		workflows.FormatCategories(categories, os.Stdout)
		return nil
	}

	category, _ := cmd.Flags().GetString("category")
	limit, _ := cmd.Flags().GetInt("limit")

	found, err := catalog.Search(context.Background(), category, limit, cfg)
	if err != nil {
		return err
	}
	if jsonOutput {
		return workflows.FormatWorkflowsJSON(category, found, os.Stdout)
	}
	workflows.FormatWorkflows(category, found, os.Stdout)
	return nil
}
