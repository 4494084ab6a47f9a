package app

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/librec/internal/validate"
)

func newAnalyzeCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "analyze <book-id>",
		Short: "Show a book's title and average rating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, found := validate.SafeBookAnalysis(snap.Books, args[0], snap.Ratings).Get()
			if !found {
				return fmt.Errorf("book %q not found", args[0])
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(analysis)
			}

			header("Book: %s", args[0])
			printField("title", analysis.Title)
			printField("avg rating", fmt.Sprintf("%.2f", analysis.AvgRating))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
