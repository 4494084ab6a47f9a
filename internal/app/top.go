package app

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/librec/internal/catalog"
)

func newTopCmd() *cobra.Command {
	var (
		n       int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Rank books by average rating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			top := catalog.TopBooksByAvg(snap.Ratings, snap.Books, n)
			if len(top) == 0 {
				warn("Catalog is empty.")
				return nil
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(top)
			}

			header("Top %d by average rating", len(top))
			for i, entry := range top {
				title := "(unknown)"
				if b := catalog.BookByID(snap.Books, entry.BookID); b != nil {
					title = b.Title
				}
				fmt.Printf("  %2d. %-12s  %.2f  %s\n", i+1, entry.BookID, entry.Avg, title)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 5, "How many books to show")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
