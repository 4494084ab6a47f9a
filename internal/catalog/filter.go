package catalog

import (
	"sort"
	"strings"
)

// Filter applies all non-empty criteria and returns matching books.
type Filter struct {
	Genre  string
	Tag    string
	Search string // matches id, title, or any tag (case-insensitive)
	Year   int    // exact publication year, 0 means any
}

// Apply returns the subset of books matching all non-empty filter fields.
func (f Filter) Apply(books []Book) []Book {
	var out []Book
	for _, b := range books {
		if f.Genre != "" && !BookInGenreDirect(b, f.Genre) {
			continue
		}
		if f.Tag != "" && !BookHasTag(b, f.Tag) {
			continue
		}
		if f.Year != 0 && b.Year != f.Year {
			continue
		}
		if f.Search != "" && !matchesSearch(b, f.Search) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// BookByID returns the first book with the given ID, or nil.
func BookByID(books []Book, id string) *Book {
	for i := range books {
		if books[i].ID == id {
			return &books[i]
		}
	}
	return nil
}

// UserByID returns the first user with the given ID, or nil.
func UserByID(users []User, id string) *User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

// BookInGenreDirect reports whether the book is tagged with exactly this
// genre id. Subgenres are the genre package's concern.
func BookInGenreDirect(b Book, genreID string) bool {
	for _, g := range b.Genres {
		if g == genreID {
			return true
		}
	}
	return false
}

// BookHasTag reports whether the book carries the given tag id.
func BookHasTag(b Book, tagID string) bool {
	for _, t := range b.Tags {
		if t == tagID {
			return true
		}
	}
	return false
}

// UserHasActiveLoan reports whether the user has at least one active loan.
func UserHasActiveLoan(loans []Loan, userID string) bool {
	for _, l := range loans {
		if l.UserID == userID && l.Status == LoanActive {
			return true
		}
	}
	return false
}

// BookHasReviews reports whether at least one review exists for the book.
func BookHasReviews(reviews []Review, bookID string) bool {
	for _, r := range reviews {
		if r.BookID == bookID {
			return true
		}
	}
	return false
}

// BooksOfGenre returns the books tagged directly with the given genre id.
func BooksOfGenre(books []Book, genreID string) []Book {
	var out []Book
	for _, b := range books {
		if BookInGenreDirect(b, genreID) {
			out = append(out, b)
		}
	}
	return out
}

// BooksWithAvgAtLeast returns the books whose average rating meets the
// threshold. Unrated books average 0.0 and only pass a threshold of 0.
func BooksWithAvgAtLeast(ratings []Rating, books []Book, threshold float64) []Book {
	var out []Book
	for _, b := range books {
		if AvgRatingForBook(ratings, b.ID) >= threshold {
			out = append(out, b)
		}
	}
	return out
}

// BookAvg pairs a book id with its average rating.
type BookAvg struct {
	BookID string  `json:"book_id"`
	Avg    float64 `json:"avg"`
}

// TopBooksByAvg ranks all books by average rating descending and returns
// the first n. Ties keep catalog order.
func TopBooksByAvg(ratings []Rating, books []Book, n int) []BookAvg {
	avgs := make([]BookAvg, 0, len(books))
	for _, b := range books {
		avgs = append(avgs, BookAvg{BookID: b.ID, Avg: AvgRatingForBook(ratings, b.ID)})
	}
	sort.SliceStable(avgs, func(i, j int) bool { return avgs[i].Avg > avgs[j].Avg })
	if n > len(avgs) {
		n = len(avgs)
	}
	if n < 0 {
		n = 0
	}
	return avgs[:n]
}

func matchesSearch(b Book, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(b.ID), q) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Title), q) {
		return true
	}
	for _, t := range b.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
