package genre_test

import (
	"errors"
	"testing"

	"github.com/blackwell-systems/librec/internal/catalog"
	"github.com/blackwell-systems/librec/internal/genre"
)

// g1 ── g2 ── g4
//        └── g5
// g3 (unrelated root)
var genres = []catalog.Genre{
	{ID: "g1", Name: "Fiction"},
	{ID: "g2", Name: "Fantasy", ParentID: "g1"},
	{ID: "g3", Name: "Reference"},
	{ID: "g4", Name: "Epic Fantasy", ParentID: "g2"},
	{ID: "g5", Name: "Urban Fantasy", ParentID: "g2"},
}

func ids(gs []catalog.Genre) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.ID
	}
	return out
}

func TestAncestors(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want []string
	}{
		{"leaf to root", "g4", []string{"g2", "g1"}},
		{"mid level", "g2", []string{"g1"}},
		{"root", "g1", nil},
		{"unknown id", "nope", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := genre.Ancestors(genres, tt.id)
			if err != nil {
				t.Fatalf("Ancestors(%s): %v", tt.id, err)
			}
			gotIDs := ids(got)
			if len(gotIDs) != len(tt.want) {
				t.Fatalf("Ancestors(%s) = %v, want %v", tt.id, gotIDs, tt.want)
			}
			for i := range tt.want {
				if gotIDs[i] != tt.want[i] {
					t.Errorf("Ancestors(%s)[%d] = %s, want %s", tt.id, i, gotIDs[i], tt.want[i])
				}
			}
		})
	}
}

func TestAncestors_DanglingParentStopsCleanly(t *testing.T) {
	broken := []catalog.Genre{{ID: "g1", Name: "Orphan", ParentID: "missing"}}
	got, err := genre.Ancestors(broken, "g1")
	if err != nil {
		t.Fatalf("dangling parent should not error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("dangling parent should yield no ancestors, got %v", ids(got))
	}
}

func TestAncestors_CycleDetected(t *testing.T) {
	cyclic := []catalog.Genre{
		{ID: "a", ParentID: "b"},
		{ID: "b", ParentID: "a"},
	}
	_, err := genre.Ancestors(cyclic, "a")
	if !errors.Is(err, genre.ErrCycle) {
		t.Errorf("err = %v, want ErrCycle", err)
	}
}

func TestDescendants(t *testing.T) {
	desc, err := genre.Descendants(genres, "g1")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"g2", "g4", "g5"} {
		if !desc[want] {
			t.Errorf("missing descendant %s in %v", want, desc)
		}
	}
	if desc["g1"] {
		t.Error("a genre is not its own descendant")
	}
	if desc["g3"] {
		t.Error("unrelated root g3 should not be a descendant of g1")
	}

	leaf, err := genre.Descendants(genres, "g4")
	if err != nil {
		t.Fatal(err)
	}
	if len(leaf) != 0 {
		t.Errorf("leaf should have no descendants, got %v", leaf)
	}
}

func TestDescendants_CycleDetected(t *testing.T) {
	cyclic := []catalog.Genre{
		{ID: "a", ParentID: "c"},
		{ID: "b", ParentID: "a"},
		{ID: "c", ParentID: "b"},
	}
	_, err := genre.Descendants(cyclic, "a")
	if !errors.Is(err, genre.ErrCycle) {
		t.Errorf("err = %v, want ErrCycle", err)
	}
}

func TestBookInGenre(t *testing.T) {
	book := catalog.Book{ID: "b1", Title: "The Last Unicorn", Genres: []string{"g2"}}

	tests := []struct {
		name   string
		target string
		want   bool
	}{
		{"direct match", "g2", true},
		{"ancestor includes subgenre", "g1", true},
		{"unrelated root", "g3", false},
		{"child of the book's genre", "g4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := genre.BookInGenre(book, genres, tt.target)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("BookInGenre(%s) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}
