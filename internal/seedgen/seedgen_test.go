package seedgen_test

import (
	"testing"

	"github.com/blackwell-systems/librec/internal/catalog"
	"github.com/blackwell-systems/librec/internal/seedgen"
	"github.com/blackwell-systems/librec/internal/validate"
)

func TestGenerate_Counts(t *testing.T) {
	snap := seedgen.Generate(seedgen.Options{Books: 20, Users: 5, Authors: 4, Seed: 1})

	if len(snap.Books) != 20 {
		t.Errorf("books = %d, want 20", len(snap.Books))
	}
	if len(snap.Users) != 5 {
		t.Errorf("users = %d, want 5", len(snap.Users))
	}
	if len(snap.Authors) != 4 {
		t.Errorf("authors = %d, want 4", len(snap.Authors))
	}
	if len(snap.Ratings) == 0 || len(snap.Genres) == 0 || len(snap.Tags) == 0 {
		t.Error("ratings, genres, and tags should all be populated")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := seedgen.Options{Books: 10, Users: 3, Seed: 42}
	a := seedgen.Generate(opts)
	b := seedgen.Generate(opts)

	if catalog.BooksFingerprint(a.Books) != catalog.BooksFingerprint(b.Books) {
		t.Error("same seed should generate identical books")
	}
	if catalog.RatingsFingerprint(a.Ratings) != catalog.RatingsFingerprint(b.Ratings) {
		t.Error("same seed should generate identical ratings")
	}

	c := seedgen.Generate(seedgen.Options{Books: 10, Users: 3, Seed: 43})
	if catalog.RatingsFingerprint(a.Ratings) == catalog.RatingsFingerprint(c.Ratings) {
		t.Error("different seeds should diverge")
	}
}

func TestGenerate_ConsistentReferences(t *testing.T) {
	snap := seedgen.Generate(seedgen.Options{Books: 15, Users: 4, Seed: 7})

	for _, r := range snap.Ratings {
		if catalog.BookByID(snap.Books, r.BookID) == nil {
			t.Errorf("rating references unknown book %s", r.BookID)
		}
		if catalog.UserByID(snap.Users, r.UserID) == nil {
			t.Errorf("rating references unknown user %s", r.UserID)
		}
		if r.Value < 1 || r.Value > 5 {
			t.Errorf("rating value %d out of range", r.Value)
		}
	}

	seen := make(map[[2]string]bool)
	for _, r := range snap.Ratings {
		key := [2]string{r.UserID, r.BookID}
		if seen[key] {
			t.Errorf("duplicate rating for %v", key)
		}
		seen[key] = true
	}
}

func TestGenerate_ReviewsPassValidation(t *testing.T) {
	snap := seedgen.Generate(seedgen.Options{Books: 30, Users: 6, Seed: 3})
	for _, rv := range snap.Reviews {
		if res := validate.CheckReview(rv, snap.Books, snap.Users); res.IsLeft() {
			e, _ := res.Err()
			t.Errorf("generated review %s fails validation: %v", rv.ID, e)
		}
	}
}

func TestGenerate_GenreForestIsAcyclic(t *testing.T) {
	snap := seedgen.Generate(seedgen.Options{Seed: 1})
	byID := make(map[string]catalog.Genre)
	for _, g := range snap.Genres {
		byID[g.ID] = g
	}
	for _, g := range snap.Genres {
		steps := 0
		for cur := g; cur.ParentID != ""; steps++ {
			if steps > len(snap.Genres) {
				t.Fatalf("cycle reachable from genre %s", g.ID)
			}
			cur = byID[cur.ParentID]
		}
	}
}
