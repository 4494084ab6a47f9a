// Package recommend builds per-user taste profiles from ratings and scores
// unrated books against them. Scoring is a deterministic additive
// heuristic (no model, no randomness), so equal inputs always produce
// equal rankings.
package recommend

import (
	"sort"

	"github.com/blackwell-systems/librec/internal/catalog"
)

// MaxResults caps the length of a recommendation list.
const MaxResults = 10

// profile is a user's accumulated positive-feedback weights.
type profile struct {
	genres  map[string]float64
	authors map[string]float64
	tags    map[string]float64
}

// ForUser returns up to MaxResults book ids the user has not rated, ranked
// by similarity to the user's taste profile, best first. Ties keep catalog
// order. A user with no ratings has no profile and gets an empty result.
func ForUser(userID string, ratings []catalog.Rating, books []catalog.Book) []string {
	var userRatings []catalog.Rating
	rated := make(map[string]bool)
	for _, r := range ratings {
		if r.UserID == userID {
			userRatings = append(userRatings, r)
			rated[r.BookID] = true
		}
	}
	if len(userRatings) == 0 {
		return nil
	}

	p := buildProfile(userRatings, books)

	type scored struct {
		id    string
		score float64
	}
	var candidates []scored
	for _, b := range books {
		if rated[b.ID] {
			continue
		}
		candidates = append(candidates, scored{id: b.ID, score: similarity(p, b)})
	}

	// Stable keeps catalog order among equal scores, so rankings are
	// reproducible call to call.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	n := len(candidates)
	if n > MaxResults {
		n = MaxResults
	}
	out := make([]string, 0, n)
	for _, c := range candidates[:n] {
		out = append(out, c.id)
	}
	return out
}

// buildProfile accumulates weight max(0, value-3) from each rated book
// onto every genre, author, and tag it carries. Ratings of 3 or below add
// nothing: neutral and negative feedback does not penalize, it just fails
// to reinforce.
func buildProfile(userRatings []catalog.Rating, books []catalog.Book) profile {
	p := profile{
		genres:  make(map[string]float64),
		authors: make(map[string]float64),
		tags:    make(map[string]float64),
	}
	for _, r := range userRatings {
		b := catalog.BookByID(books, r.BookID)
		if b == nil {
			continue
		}
		weight := float64(r.Value - 3)
		if weight <= 0 {
			continue
		}
		for _, g := range b.Genres {
			p.genres[g] += weight
		}
		for _, a := range b.AuthorIDs {
			p.authors[a] += weight
		}
		for _, t := range b.Tags {
			p.tags[t] += weight
		}
	}
	return p
}

// similarity sums the profile weights of everything the book carries.
// Missing keys contribute 0.
func similarity(p profile, b catalog.Book) float64 {
	score := 0.0
	for _, g := range b.Genres {
		score += p.genres[g]
	}
	for _, a := range b.AuthorIDs {
		score += p.authors[a]
	}
	for _, t := range b.Tags {
		score += p.tags[t]
	}
	return score
}
