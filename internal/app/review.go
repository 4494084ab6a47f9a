package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/librec/internal/catalog"
	"github.com/blackwell-systems/librec/internal/validate"
)

func newReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review <user-id> <book-id> <text...>",
		Short: "Validate and add a review (in memory)",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rv := catalog.Review{
				ID:     uuid.NewString(),
				UserID: args[0],
				BookID: args[1],
				Text:   strings.Join(args[2:], " "),
				TS:     time.Now().UTC().Format(time.RFC3339),
			}

			result := validate.AddReview(rv, snap.Reviews, snap.Books, snap.Users, snap.Ratings)
			reviews, accepted := result.Get()
			if !accepted {
				errs, _ := result.Err()
				warn("Review rejected:")
				printErrorMap(errs)
				return fmt.Errorf("%d validation error(s)", len(errs))
			}

			snap = snap.WithReviews(reviews)
			ok("Review accepted: %s on %s (%d reviews total)", rv.UserID, rv.BookID, len(reviews))
			return nil
		},
	}
}
