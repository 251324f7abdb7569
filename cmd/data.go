package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pablomv/esios-mcp/internal/esios"
	"github.com/pablomv/esios-mcp/internal/ui"
	"github.com/pablomv/esios-mcp/internal/validate"
)

var dataCmd = &cobra.Command{
	Use:   "data [indicator-id]",
	Short: "Retrieve time-series data for an indicator",
	Args:  cobra.ExactArgs(1),
	RunE:  runData,
}

func init() {
	dataCmd.Flags().String("start", "", "Start of the date range (ISO8601, required)")
	dataCmd.Flags().String("end", "", "End of the date range (ISO8601, required)")
	dataCmd.Flags().String("time-trunc", "hour", "Time granularity: hour, day, month, year")
	dataCmd.Flags().String("time-agg", "sum", "Aggregation: sum, avg")
	dataCmd.Flags().String("format", "json", "Output format: json, table")
	dataCmd.MarkFlagRequired("start")
	dataCmd.MarkFlagRequired("end")
	rootCmd.AddCommand(dataCmd)
}

func runData(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("indicator-id must be an integer: %q", args[0])
	}
	if err := validate.IndicatorID(id); err != nil {
		return err
	}

	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	dateRange, err := validate.ParseDateRange(start, end)
	if err != nil {
		return err
	}

	timeTrunc, _ := cmd.Flags().GetString("time-trunc")
	if err := validate.TimeTrunc(timeTrunc); err != nil {
		return err
	}
	timeAgg, _ := cmd.Flags().GetString("time-agg")
	if err := validate.TimeAgg(timeAgg); err != nil {
		return err
	}

	client, err := buildClient()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")

	spin := ui.NewSpinner(fmt.Sprintf("Fetching data for indicator %d...", id))
	spin.Start()
	points, err := client.GetIndicatorData(context.Background(), id, esios.DataRequest{
		Range:     dateRange,
		TimeTrunc: timeTrunc,
		TimeAgg:   timeAgg,
	})
	spin.Stop()
	if err != nil {
		return fmt.Errorf("data retrieval failed: %w", err)
	}

	switch format {
	case "table":
		printPointsTable(points)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(points)
	}

	return nil
}
