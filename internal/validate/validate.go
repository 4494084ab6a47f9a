// Package validate checks candidate ratings and reviews against a catalog
// snapshot and threads accepted ones into new collections. Violations are
// values: every failed check lands in an ErrorMap inside a Left, and all
// violated checks for one candidate are reported together.
package validate

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/librec/internal/catalog"
	"github.com/blackwell-systems/librec/internal/fx"
)

// ErrorMap maps a violated field name to a human-readable message.
type ErrorMap map[string]string

// MinReviewLen is the minimum review text length after trimming whitespace.
const MinReviewLen = 10

// CheckRating validates a candidate rating. All four checks run
// independently; the Left carries every violation at once, with keys among
// value, book_id, user_id, duplicate.
func CheckRating(r catalog.Rating, books []catalog.Book, users []catalog.User, existing []catalog.Rating) fx.Either[ErrorMap, catalog.Rating] {
	errs := ErrorMap{}

	if r.Value < 1 || r.Value > 5 {
		errs["value"] = "rating must be between 1 and 5"
	}
	if catalog.BookByID(books, r.BookID) == nil {
		errs["book_id"] = fmt.Sprintf("book with ID %s not found", r.BookID)
	}
	if catalog.UserByID(users, r.UserID) == nil {
		errs["user_id"] = fmt.Sprintf("user with ID %s not found", r.UserID)
	}
	for _, e := range existing {
		if e.UserID == r.UserID && e.BookID == r.BookID {
			errs["duplicate"] = "user already rated this book"
			break
		}
	}

	if len(errs) > 0 {
		return fx.LeftOf[ErrorMap, catalog.Rating](errs)
	}
	return fx.RightOf[ErrorMap](r)
}

// CheckReview validates a candidate review. Keys among book_id, user_id,
// text.
func CheckReview(rv catalog.Review, books []catalog.Book, users []catalog.User) fx.Either[ErrorMap, catalog.Review] {
	errs := ErrorMap{}

	if catalog.BookByID(books, rv.BookID) == nil {
		errs["book_id"] = fmt.Sprintf("book with ID %s not found", rv.BookID)
	}
	if catalog.UserByID(users, rv.UserID) == nil {
		errs["user_id"] = fmt.Sprintf("user with ID %s not found", rv.UserID)
	}
	if len(strings.TrimSpace(rv.Text)) < MinReviewLen {
		errs["text"] = fmt.Sprintf("review text must contain at least %d characters", MinReviewLen)
	}

	if len(errs) > 0 {
		return fx.LeftOf[ErrorMap, catalog.Review](errs)
	}
	return fx.RightOf[ErrorMap](rv)
}

// AddRating is CheckRating bound into an append: on Right the result holds
// a new ratings slice with r included; on Left the input slice is untouched
// and the error map is surfaced as-is.
func AddRating(r catalog.Rating, ratings []catalog.Rating, books []catalog.Book, users []catalog.User) fx.Either[ErrorMap, []catalog.Rating] {
	return fx.BindEither(CheckRating(r, books, users, ratings),
		func(valid catalog.Rating) fx.Either[ErrorMap, []catalog.Rating] {
			return fx.RightOf[ErrorMap](catalog.AddRating(ratings, valid))
		})
}

// AddReview is CheckReview bound into an append, analogous to AddRating.
// The ratings slice is accepted for signature symmetry with callers that
// hold a whole snapshot; review validity does not depend on it.
func AddReview(rv catalog.Review, reviews []catalog.Review, books []catalog.Book, users []catalog.User, _ []catalog.Rating) fx.Either[ErrorMap, []catalog.Review] {
	return fx.BindEither(CheckReview(rv, books, users),
		func(valid catalog.Review) fx.Either[ErrorMap, []catalog.Review] {
			return fx.RightOf[ErrorMap](catalog.AddReview(reviews, valid))
		})
}

// SafeBook looks a book up by id: Just iff it exists.
func SafeBook(books []catalog.Book, id string) fx.Maybe[catalog.Book] {
	return fx.FromPtr(catalog.BookByID(books, id))
}

// SafeUser looks a user up by id: Just iff it exists.
func SafeUser(users []catalog.User, id string) fx.Maybe[catalog.User] {
	return fx.FromPtr(catalog.UserByID(users, id))
}

// BookAnalysis pairs a book's title with its average rating.
type BookAnalysis struct {
	Title     string  `json:"title"`
	AvgRating float64 `json:"avg_rating"`
}

// SafeBookAnalysis is SafeBook bound into an average-rating computation.
// Nothing iff the book does not exist; a book with no ratings is Just with
// an average of 0.0.
func SafeBookAnalysis(books []catalog.Book, id string, ratings []catalog.Rating) fx.Maybe[BookAnalysis] {
	return fx.Bind(SafeBook(books, id), func(b catalog.Book) fx.Maybe[BookAnalysis] {
		return fx.JustOf(BookAnalysis{
			Title:     b.Title,
			AvgRating: catalog.AvgRatingForBook(ratings, b.ID),
		})
	})
}
