package cmd

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/pablomv/esios-mcp/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP stdio server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}

	logger.Info("starting ESIOS MCP server on stdio")
	return mcpserver.Serve(client)
}
