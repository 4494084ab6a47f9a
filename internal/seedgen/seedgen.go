// Package seedgen builds demo catalogs for trying librec without real
// data. Generation is deterministic for a given seed: the same inputs
// always produce the same snapshot, which keeps recommendation demos and
// cache benchmarks reproducible run to run.
package seedgen

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/blackwell-systems/librec/internal/catalog"
)

// Options controls the size and shape of a generated catalog.
type Options struct {
	Books   int
	Users   int
	Authors int
	Seed    int64 // rand seed; same seed, same catalog
}

var genreForest = []catalog.Genre{
	{ID: "fiction", Name: "Fiction"},
	{ID: "fantasy", Name: "Fantasy", ParentID: "fiction"},
	{ID: "scifi", Name: "Science Fiction", ParentID: "fiction"},
	{ID: "mystery", Name: "Mystery", ParentID: "fiction"},
	{ID: "nonfiction", Name: "Non-Fiction"},
	{ID: "science", Name: "Science", ParentID: "nonfiction"},
	{ID: "history", Name: "History", ParentID: "nonfiction"},
	{ID: "biography", Name: "Biography", ParentID: "nonfiction"},
}

var tagForest = []catalog.Tag{
	{ID: "classic", Name: "Classic"},
	{ID: "award-winner", Name: "Award Winner"},
	{ID: "space", Name: "Space"},
	{ID: "magic", Name: "Magic"},
	{ID: "adventure", Name: "Adventure"},
	{ID: "translated", Name: "Translated"},
}

// leafGenres are the ids books get tagged with; parents stay structural.
var leafGenres = []string{"fantasy", "scifi", "mystery", "science", "history", "biography"}

var reviewPhrases = []string{
	"kept me up reading far too late, absolutely worth it",
	"a slow start but the second half really delivers",
	"not what I expected, in the best possible way",
	"solid entry in the genre, though the ending felt rushed",
	"beautifully written and genuinely hard to put down",
}

// Generate produces a complete demo snapshot. Ratings are skewed positive
// so taste profiles have signal; every user rates a random subset of books
// at most once, keeping the (user, book) uniqueness invariant.
func Generate(opts Options) catalog.Snapshot {
	if opts.Books <= 0 {
		opts.Books = 40
	}
	if opts.Users <= 0 {
		opts.Users = 8
	}
	if opts.Authors <= 0 {
		opts.Authors = opts.Books/3 + 1
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	// uuids drawn from the seeded rng keep ids stable across runs
	newID := func() string {
		var b [16]byte
		rng.Read(b[:])
		id, _ := uuid.FromBytes(b[:])
		return id.String()
	}

	var snap catalog.Snapshot
	snap.Genres = append(snap.Genres, genreForest...)
	snap.Tags = append(snap.Tags, tagForest...)

	for i := 0; i < opts.Authors; i++ {
		snap.Authors = append(snap.Authors, catalog.Author{
			ID:   fmt.Sprintf("author-%02d", i+1),
			Name: fmt.Sprintf("Author %02d", i+1),
		})
	}
	for i := 0; i < opts.Users; i++ {
		snap.Users = append(snap.Users, catalog.User{
			ID:   fmt.Sprintf("user-%02d", i+1),
			Name: fmt.Sprintf("Reader %02d", i+1),
		})
	}

	for i := 0; i < opts.Books; i++ {
		genreID := leafGenres[rng.Intn(len(leafGenres))]
		tags := []string{tagForest[rng.Intn(len(tagForest))].ID}
		if rng.Intn(3) == 0 {
			extra := tagForest[rng.Intn(len(tagForest))].ID
			if extra != tags[0] {
				tags = append(tags, extra)
			}
		}
		snap.Books = append(snap.Books, catalog.Book{
			ID:        fmt.Sprintf("book-%03d", i+1),
			Title:     fmt.Sprintf("Sample Book %03d", i+1),
			AuthorIDs: []string{snap.Authors[rng.Intn(len(snap.Authors))].ID},
			Genres:    []string{genreID},
			Tags:      tags,
			Year:      1950 + rng.Intn(75),
		})
	}

	for _, u := range snap.Users {
		rated := rng.Perm(len(snap.Books))
		n := 3 + rng.Intn(5)
		if n > len(rated) {
			n = len(rated)
		}
		for _, idx := range rated[:n] {
			// skew positive: 1..5 weighted toward 4s and 5s
			value := []int{2, 3, 3, 4, 4, 4, 5, 5}[rng.Intn(8)]
			snap.Ratings = append(snap.Ratings, catalog.Rating{
				UserID: u.ID,
				BookID: snap.Books[idx].ID,
				Value:  value,
			})
		}
	}

	for i, r := range snap.Ratings {
		if r.Value < 4 || rng.Intn(3) != 0 {
			continue
		}
		snap.Reviews = append(snap.Reviews, catalog.Review{
			ID:     newID(),
			UserID: r.UserID,
			BookID: r.BookID,
			Text:   reviewPhrases[rng.Intn(len(reviewPhrases))],
			TS:     fmt.Sprintf("2026-0%d-%02dT12:00:00Z", 1+i%8, 1+i%27),
		})
	}

	for i := 0; i < opts.Users && i < opts.Books; i++ {
		status := catalog.LoanActive
		end := ""
		if rng.Intn(2) == 0 {
			status = catalog.LoanReturned
			end = "2026-06-15"
		}
		snap.Loans = append(snap.Loans, catalog.Loan{
			ID:     newID(),
			UserID: snap.Users[i].ID,
			BookID: snap.Books[rng.Intn(len(snap.Books))].ID,
			Start:  "2026-05-01",
			End:    end,
			Status: status,
		})
	}

	return snap
}
