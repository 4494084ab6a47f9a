package app

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/librec/internal/catalog"
	"github.com/blackwell-systems/librec/internal/validate"
)

type recommendation struct {
	Rank   int      `json:"rank"`
	BookID string   `json:"book_id"`
	Title  string   `json:"title"`
	Genres []string `json:"genres,omitempty"`
}

func newRecommendCmd() *cobra.Command {
	var (
		limit   int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "recommend <user-id>",
		Short: "Recommend unread books for a user",
		Long: `Build the user's taste profile from their ratings and rank the books
they haven't rated by similarity. Results come through the memoizing
cache, so repeated queries against the same snapshot are cheap.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := args[0]
			user, found := validate.SafeUser(snap.Users, userID).Get()
			if !found {
				return fmt.Errorf("user %q not found", userID)
			}

			ids := recCache.ForUser(userID, snap.Ratings, snap.Books)
			if limit > 0 && len(ids) > limit {
				ids = ids[:limit]
			}
			if len(ids) == 0 {
				warn("No recommendations for %s (no ratings yet, or nothing unread left).", user.Name)
				return nil
			}

			recs := make([]recommendation, 0, len(ids))
			for i, id := range ids {
				rec := recommendation{Rank: i + 1, BookID: id, Title: "(unknown)"}
				if b := catalog.BookByID(snap.Books, id); b != nil {
					rec.Title = b.Title
					rec.Genres = b.Genres
				}
				recs = append(recs, rec)
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(recs)
			}

			header("Recommendations for %s", user.Name)
			for _, rec := range recs {
				fmt.Printf("  %2d. %-12s  %s\n", rec.Rank, rec.BookID, rec.Title)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Cap the number of results (default: config recommend.limit)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("limit") && cfg != nil {
			limit = cfg.Recommend.Limit
		}
	}
	return cmd
}
