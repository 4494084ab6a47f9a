package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/librec/internal/catalog"
	"github.com/blackwell-systems/librec/internal/validate"
)

func newRateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate <user-id> <book-id> <value>",
		Short: "Validate and add a rating (in memory)",
		Long: `Run a candidate rating through the validation pipeline.

All violated checks are reported together: value range, book existence,
user existence, and duplicate detection. The catalog on disk is never
modified; an accepted rating extends the in-memory snapshot for this
invocation only.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("value must be an integer, got %q", args[2])
			}
			r := catalog.Rating{UserID: args[0], BookID: args[1], Value: value}

			result := validate.AddRating(r, snap.Ratings, snap.Books, snap.Users)
			ratings, accepted := result.Get()
			if !accepted {
				errs, _ := result.Err()
				warn("Rating rejected:")
				printErrorMap(errs)
				return fmt.Errorf("%d validation error(s)", len(errs))
			}

			snap = snap.WithRatings(ratings)
			ok("Rating accepted: %s on %s = %d (%d ratings total)",
				r.UserID, r.BookID, r.Value, len(ratings))

			if b := catalog.BookByID(snap.Books, r.BookID); b != nil {
				avg := catalog.AvgRatingForBook(snap.Ratings, b.ID)
				printField("new avg", fmt.Sprintf("%.2f  (%s)", avg, b.Title))
			}
			return nil
		},
	}
}
