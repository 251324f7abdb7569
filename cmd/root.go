package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/pablomv/esios-mcp/config"
	"github.com/pablomv/esios-mcp/internal/esios"
	"github.com/pablomv/esios-mcp/internal/httputil"
)

var (
	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "esios-mcp",
	Short: "ESIOS MCP - Spanish electricity market data as MCP tools",
	Long:  "MCP server and CLI exposing indicator search and time-series retrieval from the ESIOS API of Red Eléctrica de España.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log detail (-v verbose, -vv debug)")
	rootCmd.PersistentFlags().String("base-url", "", "Override the ESIOS API base URL")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetCount("verbose"); v > 0 {
		if v == 1 {
			cfg.Verbosity = "verbose"
		} else {
			cfg.Verbosity = "debug"
		}
	}
	if v, _ := rootCmd.PersistentFlags().GetString("base-url"); v != "" {
		cfg.BaseURL = v
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           logLevel(cfg.Verbosity),
	})
}

// logLevel maps the configured verbosity to a log level. Verbosity changes
// log detail only, never behavior.
func logLevel(verbosity string) log.Level {
	switch verbosity {
	case "debug":
		return log.DebugLevel
	case "verbose":
		return log.InfoLevel
	default:
		return log.WarnLevel
	}
}

// buildClient constructs the ESIOS API client from config. A missing token
// is fatal here, before any tool call or network attempt.
func buildClient() (*esios.Client, error) {
	if cfg.Token == "" {
		return nil, errors.New("ESIOS_API_TOKEN is not set; an API token is required to access the ESIOS API")
	}

	httpClient := httputil.NewHTTPClient(nil, time.Duration(cfg.TimeoutSeconds)*time.Second)
	limiter := rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst)

	return esios.New(esios.Options{
		BaseURL: cfg.BaseURL,
		Token:   cfg.Token,
		HTTP:    httpClient,
		Limiter: limiter,
		Logger:  logger,
	}), nil
}
