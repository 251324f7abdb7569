package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pablomv/esios-mcp/internal/ui"
	"github.com/pablomv/esios-mcp/internal/validate"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search ESIOS indicators by name or description",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().String("format", "json", "Output format: json, table")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	if err := validate.Query(query); err != nil {
		return err
	}

	client, err := buildClient()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")

	spin := ui.NewSpinner(fmt.Sprintf("Searching indicators for %q...", query))
	spin.Start()
	indicators, err := client.SearchIndicators(context.Background(), query)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	switch format {
	case "table":
		printIndicatorsTable(indicators)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(indicators)
	}

	return nil
}
