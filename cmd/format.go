package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pablomv/esios-mcp/internal/models"
)

// printIndicatorsTable prints indicators in a human-friendly card layout.
func printIndicatorsTable(indicators []models.Indicator) {
	if len(indicators) == 0 {
		fmt.Fprintln(os.Stdout, "No indicators found.")
		return
	}
	for i, ind := range indicators {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintf(os.Stdout, " %d. [%d] %s\n", i+1, ind.ID, ind.Name)
		if ind.ShortName != "" && ind.ShortName != ind.Name {
			fmt.Fprintf(os.Stdout, "    Short name: %s\n", ind.ShortName)
		}
		if desc := stripTags(ind.Description); desc != "" {
			fmt.Fprintf(os.Stdout, "    %s\n", truncate(desc, 160))
		}
	}
}

// printPointsTable prints data points one per line.
func printPointsTable(points []models.DataPoint) {
	if len(points) == 0 {
		fmt.Fprintln(os.Stdout, "No data points in the requested range.")
		return
	}
	for _, p := range points {
		line := fmt.Sprintf("%s  %12.3f", p.Datetime.Format(time.RFC3339), p.Value)
		if p.GeoName != "" {
			line += "  " + p.GeoName
		}
		fmt.Fprintln(os.Stdout, line)
	}
}

// stripTags removes the HTML markup ESIOS embeds in descriptions.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
