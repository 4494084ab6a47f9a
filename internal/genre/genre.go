// Package genre answers hierarchy queries over the catalog's parent-linked
// genre forest. The walks are iterative with a visited-set guard, so a
// corrupt graph with a parent cycle fails fast with ErrCycle instead of
// recursing forever.
package genre

import (
	"errors"

	"github.com/blackwell-systems/librec/internal/catalog"
)

// ErrCycle is returned when a parent walk revisits a genre id.
var ErrCycle = errors.New("genre hierarchy contains a cycle")

// Ancestors returns the chain from the immediate parent of genreID up to
// its root, in that order. Roots and unknown ids have no ancestors.
func Ancestors(genres []catalog.Genre, genreID string) ([]catalog.Genre, error) {
	byID := make(map[string]catalog.Genre, len(genres))
	for _, g := range genres {
		byID[g.ID] = g
	}

	var chain []catalog.Genre
	visited := map[string]bool{genreID: true}

	cur, ok := byID[genreID]
	for ok && cur.ParentID != "" {
		parent, exists := byID[cur.ParentID]
		if !exists {
			break // dangling parent link, treat as root
		}
		if visited[parent.ID] {
			return nil, ErrCycle
		}
		visited[parent.ID] = true
		chain = append(chain, parent)
		cur = parent
	}
	return chain, nil
}

// Descendants returns the set of ids transitively below genreID, not
// including genreID itself. Computed with an explicit work list over the
// inverted parent relation.
func Descendants(genres []catalog.Genre, genreID string) (map[string]bool, error) {
	children := make(map[string][]string, len(genres))
	for _, g := range genres {
		if g.ParentID != "" {
			children[g.ParentID] = append(children[g.ParentID], g.ID)
		}
	}

	out := make(map[string]bool)
	work := []string{genreID}
	for len(work) > 0 {
		id := work[len(work)-1]
		work = work[:len(work)-1]
		for _, child := range children[id] {
			if child == genreID || out[child] {
				return nil, ErrCycle
			}
			out[child] = true
			work = append(work, child)
		}
	}
	return out, nil
}

// BookInGenre reports whether any genre tagged on the book equals
// targetGenreID or descends from it.
func BookInGenre(book catalog.Book, genres []catalog.Genre, targetGenreID string) (bool, error) {
	desc, err := Descendants(genres, targetGenreID)
	if err != nil {
		return false, err
	}
	for _, gid := range book.Genres {
		if gid == targetGenreID || desc[gid] {
			return true, nil
		}
	}
	return false, nil
}
