package app

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/librec/internal/recommend"
)

func newBenchCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Probe the recommendation cache (cold vs warm timings)",
		Long: `Run recommendations for a small panel of rated users twice (once
against a cleared cache, once warm) and report average per-user
latency for each pass and the speedup ratio. Purely diagnostic; the
recommendation results themselves are identical either way.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			panel := recommend.RatedUsers(snap.Ratings)
			if len(panel) == 0 {
				return fmt.Errorf("no users with ratings in the catalog")
			}

			report := recCache.Measure(panel, snap.Ratings, snap.Books)

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			header("Cache probe (%d users)", report.UsersTested)
			printField("cold avg", report.ColdAvg.String())
			printField("warm avg", report.WarmAvg.String())
			if report.Speedup > 0 {
				printField("speedup", fmt.Sprintf("%.1fx", report.Speedup))
			} else {
				printField("speedup", "warm pass below timer resolution")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
