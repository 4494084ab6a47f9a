package app

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/librec/internal/catalog"
)

type overviewReport struct {
	Books      int     `json:"books"`
	Authors    int     `json:"authors"`
	Users      int     `json:"users"`
	Ratings    int     `json:"ratings"`
	Reviews    int     `json:"reviews"`
	Loans      int     `json:"loans"`
	Genres     int     `json:"genres"`
	Tags       int     `json:"tags"`
	CatalogAvg float64 `json:"catalog_avg"`
}

func newOverviewCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show catalog counts and the catalog-wide average rating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := overviewReport{
				Books:   len(snap.Books),
				Authors: len(snap.Authors),
				Users:   len(snap.Users),
				Ratings: len(snap.Ratings),
				Reviews: len(snap.Reviews),
				Loans:   len(snap.Loans),
				Genres:  len(snap.Genres),
				Tags:    len(snap.Tags),
			}

			// mean of per-book averages, not of raw rating values
			if len(snap.Books) > 0 {
				total := 0.0
				for _, b := range snap.Books {
					total += catalog.AvgRatingForBook(snap.Ratings, b.ID)
				}
				report.CatalogAvg = total / float64(len(snap.Books))
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			header("Catalog overview")
			printField("books", fmt.Sprintf("%d", report.Books))
			printField("authors", fmt.Sprintf("%d", report.Authors))
			printField("users", fmt.Sprintf("%d", report.Users))
			printField("ratings", fmt.Sprintf("%d", report.Ratings))
			printField("reviews", fmt.Sprintf("%d", report.Reviews))
			printField("loans", fmt.Sprintf("%d", report.Loans))
			printField("genres", fmt.Sprintf("%d", report.Genres))
			printField("tags", fmt.Sprintf("%d", report.Tags))
			printField("avg rating", fmt.Sprintf("%.2f", report.CatalogAvg))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
