package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pablomv/esios-mcp/internal/esios"
	"github.com/pablomv/esios-mcp/internal/validate"
)

// toolset binds the tool handlers to one API client. Handlers share nothing
// mutable, so concurrent invocations need no coordination.
type toolset struct {
	client *esios.Client
}

func registerTools(s *server.MCPServer, client *esios.Client) {
	ts := &toolset{client: client}

	// search_indicators
	searchTool := mcp.NewTool("search_indicators",
		mcp.WithDescription(
			"Search energy indicators published by ESIOS (Spanish Electricity "+
				"System Operator). The provider matches the query against indicator "+
				"names and descriptions. Use this to discover indicator IDs before "+
				"requesting their data. Returns matching indicators with id, name, "+
				"short name and description, in the provider's order."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search term matched against indicator names and descriptions"),
		),
	)
	s.AddTool(searchTool, ts.handleSearchIndicators)

	// get_indicator_data
	dataTool := mcp.NewTool("get_indicator_data",
		mcp.WithDescription(
			"Retrieve the time series of one ESIOS indicator within a date range. "+
				"Indicator IDs come from search_indicators. Dates are ISO8601 "+
				"(YYYY-MM-DD or full timestamps). Values can be electricity prices, "+
				"generation, demand or other market metrics depending on the "+
				"indicator. Returns data points with timestamp, value and geographic "+
				"zone, chronologically ordered."),
		mcp.WithNumber("indicator_id",
			mcp.Required(),
			mcp.Description("Numeric ID of the indicator to retrieve"),
		),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Description("Start of the date range (ISO8601)"),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Description("End of the date range (ISO8601)"),
		),
		mcp.WithString("time_trunc",
			mcp.Description("Time granularity: hour, day, month or year (default: hour)"),
		),
		mcp.WithString("time_agg",
			mcp.Description("Aggregation: sum or avg (default: sum; use sum for generation, avg for prices)"),
		),
	)
	s.AddTool(dataTool, ts.handleGetIndicatorData)
}

func (ts *toolset) handleSearchIndicators(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")
	if err := validate.Query(query); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	indicators, err := ts.client.SearchIndicators(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, _ := json.MarshalIndent(indicators, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}

func (ts *toolset) handleGetIndicatorData(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetInt("indicator_id", 0)
	if err := validate.IndicatorID(id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dateRange, err := validate.ParseDateRange(
		request.GetString("start_date", ""),
		request.GetString("end_date", ""),
	)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	timeTrunc := request.GetString("time_trunc", "hour")
	if err := validate.TimeTrunc(timeTrunc); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	timeAgg := request.GetString("time_agg", "sum")
	if err := validate.TimeAgg(timeAgg); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	points, err := ts.client.GetIndicatorData(ctx, id, esios.DataRequest{
		Range:     dateRange,
		TimeTrunc: timeTrunc,
		TimeAgg:   timeAgg,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, _ := json.MarshalIndent(points, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}
