package recommend_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/blackwell-systems/librec/internal/catalog"
	"github.com/blackwell-systems/librec/internal/recommend"
)

var books = []catalog.Book{
	{ID: "b1", Title: "A Wizard of Earthsea", AuthorIDs: []string{"a1"}, Genres: []string{"fiction"}, Tags: []string{"classic"}, Year: 1968},
	{ID: "b2", Title: "Cosmos", AuthorIDs: []string{"a2"}, Genres: []string{"non-fiction"}, Tags: []string{"space"}, Year: 1980},
	{ID: "b3", Title: "The Tombs of Atuan", AuthorIDs: []string{"a1"}, Genres: []string{"fiction"}, Tags: []string{"classic"}, Year: 1971},
}

func TestForUser_NoRatings(t *testing.T) {
	got := recommend.ForUser("stranger", nil, books)
	if len(got) != 0 {
		t.Errorf("user with no ratings should get nothing, got %v", got)
	}
}

func TestForUser_EmptyCatalog(t *testing.T) {
	ratings := []catalog.Rating{{UserID: "u1", BookID: "b1", Value: 5}}
	if got := recommend.ForUser("u1", ratings, nil); len(got) != 0 {
		t.Errorf("empty catalog should yield nothing, got %v", got)
	}
}

func TestForUser_GenrePreferenceRanksFirst(t *testing.T) {
	ratings := []catalog.Rating{{UserID: "u1", BookID: "b1", Value: 5}}

	got := recommend.ForUser("u1", ratings, books)
	if len(got) != 2 {
		t.Fatalf("got %v, want two unrated books", got)
	}
	// b3 shares genre, author, and tag with the liked b1; b2 shares nothing.
	if got[0] != "b3" || got[1] != "b2" {
		t.Errorf("ranking = %v, want [b3 b2]", got)
	}
}

func TestForUser_ExcludesRatedBooks(t *testing.T) {
	ratings := []catalog.Rating{
		{UserID: "u1", BookID: "b1", Value: 5},
		{UserID: "u1", BookID: "b3", Value: 2},
	}
	got := recommend.ForUser("u1", ratings, books)
	for _, id := range got {
		if id == "b1" || id == "b3" {
			t.Errorf("rated book %s leaked into recommendations %v", id, got)
		}
	}
}

func TestForUser_LowRatingsBuildNoWeight(t *testing.T) {
	// All ratings <= 3 contribute zero weight, so every unrated book scores
	// 0, and zero-score books are still returned, in catalog order.
	ratings := []catalog.Rating{{UserID: "u1", BookID: "b1", Value: 2}}
	got := recommend.ForUser("u1", ratings, books)
	if len(got) != 2 || got[0] != "b2" || got[1] != "b3" {
		t.Errorf("zero-score result = %v, want catalog order [b2 b3]", got)
	}
}

func TestForUser_CapsAtMaxResults(t *testing.T) {
	var many []catalog.Book
	many = append(many, catalog.Book{ID: "liked", Genres: []string{"fiction"}})
	for i := 0; i < 30; i++ {
		many = append(many, catalog.Book{ID: fmt.Sprintf("x%02d", i), Genres: []string{"fiction"}})
	}
	ratings := []catalog.Rating{{UserID: "u1", BookID: "liked", Value: 5}}

	got := recommend.ForUser("u1", ratings, many)
	if len(got) != recommend.MaxResults {
		t.Errorf("len = %d, want %d", len(got), recommend.MaxResults)
	}
	// Equal scores: stable sort keeps catalog order.
	for i, id := range got {
		if want := fmt.Sprintf("x%02d", i); id != want {
			t.Errorf("got[%d] = %s, want %s", i, id, want)
		}
	}
}

func TestForUser_WeightScale(t *testing.T) {
	// A 5 on one fantasy book outweighs a 4 on one romance book.
	cat := []catalog.Book{
		{ID: "f1", Genres: []string{"fantasy"}},
		{ID: "r1", Genres: []string{"romance"}},
		{ID: "r2", Genres: []string{"romance"}},
		{ID: "f2", Genres: []string{"fantasy"}},
	}
	ratings := []catalog.Rating{
		{UserID: "u1", BookID: "f1", Value: 5},
		{UserID: "u1", BookID: "r1", Value: 4},
	}
	got := recommend.ForUser("u1", ratings, cat)
	if len(got) != 2 || got[0] != "f2" || got[1] != "r2" {
		t.Errorf("ranking = %v, want [f2 r2]", got)
	}
}

func TestCache_HitEqualsFreshComputation(t *testing.T) {
	ratings := []catalog.Rating{{UserID: "u1", BookID: "b1", Value: 5}}
	c := recommend.NewCache(8)

	first := c.ForUser("u1", ratings, books)
	second := c.ForUser("u1", ratings, books)
	fresh := recommend.ForUser("u1", ratings, books)

	if len(first) != len(fresh) || len(second) != len(fresh) {
		t.Fatalf("lengths differ: %v / %v / %v", first, second, fresh)
	}
	for i := range fresh {
		if first[i] != fresh[i] || second[i] != fresh[i] {
			t.Errorf("cached results diverge from fresh at %d: %v / %v / %v", i, first, second, fresh)
		}
	}

	hits, misses, size := c.Stats()
	if hits != 1 || misses != 1 || size != 1 {
		t.Errorf("stats = (%d hits, %d misses, %d entries), want (1, 1, 1)", hits, misses, size)
	}
}

func TestCache_ValueEqualSnapshotsShareEntry(t *testing.T) {
	c := recommend.NewCache(8)

	r1 := []catalog.Rating{{UserID: "u1", BookID: "b1", Value: 5}}
	r2 := []catalog.Rating{{UserID: "u1", BookID: "b1", Value: 5}} // rebuilt, equal by value

	c.ForUser("u1", r1, books)
	c.ForUser("u1", r2, books)

	hits, _, size := c.Stats()
	if hits != 1 || size != 1 {
		t.Errorf("rebuilt-but-equal snapshot should hit: hits=%d size=%d", hits, size)
	}
}

func TestCache_DistinctInputsDistinctEntries(t *testing.T) {
	c := recommend.NewCache(8)
	ratings := []catalog.Rating{{UserID: "u1", BookID: "b1", Value: 5}}

	c.ForUser("u1", ratings, books)
	c.ForUser("u2", ratings, books)
	changed := []catalog.Rating{{UserID: "u1", BookID: "b1", Value: 4}}
	c.ForUser("u1", changed, books)

	if got := c.Len(); got != 3 {
		t.Errorf("Len = %d, want 3 distinct entries", got)
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := recommend.NewCache(2)
	books := []catalog.Book{{ID: "b1", Genres: []string{"g"}}}

	rate := func(user string) []catalog.Rating {
		return []catalog.Rating{{UserID: user, BookID: "b1", Value: 5}}
	}

	c.ForUser("u1", rate("u1"), books)
	c.ForUser("u2", rate("u2"), books)
	c.ForUser("u1", rate("u1"), books) // refresh u1
	c.ForUser("u3", rate("u3"), books) // evicts u2

	c.ForUser("u2", rate("u2"), books)
	_, misses, size := c.Stats()
	// u1, u2, u3 cold = 3 misses; the final u2 call must miss again.
	if misses != 4 {
		t.Errorf("misses = %d, want 4 (u2 was evicted)", misses)
	}
	if size != 2 {
		t.Errorf("size = %d, want capacity 2", size)
	}
}

func TestCache_ResultIsACopy(t *testing.T) {
	c := recommend.NewCache(4)
	ratings := []catalog.Rating{{UserID: "u1", BookID: "b1", Value: 5}}

	got := c.ForUser("u1", ratings, books)
	if len(got) == 0 {
		t.Fatal("expected recommendations")
	}
	got[0] = "tampered"

	again := c.ForUser("u1", ratings, books)
	if again[0] == "tampered" {
		t.Error("cache returned aliased storage")
	}
}

func TestCache_Clear(t *testing.T) {
	c := recommend.NewCache(4)
	ratings := []catalog.Rating{{UserID: "u1", BookID: "b1", Value: 5}}
	c.ForUser("u1", ratings, books)
	c.Clear()
	if c.Len() != 0 {
		t.Error("Clear left entries behind")
	}
	hits, misses, _ := c.Stats()
	if hits != 0 || misses != 0 {
		t.Error("Clear should reset counters")
	}
}

func TestCache_ConcurrentCallers(t *testing.T) {
	c := recommend.NewCache(recommend.DefaultCacheCapacity)
	ratings := []catalog.Rating{{UserID: "u1", BookID: "b1", Value: 5}}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.ForUser("u1", ratings, books)
			}
		}()
	}
	wg.Wait()

	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1 shared entry", c.Len())
	}
}

func TestMeasure(t *testing.T) {
	ratings := []catalog.Rating{
		{UserID: "u1", BookID: "b1", Value: 5},
		{UserID: "u2", BookID: "b2", Value: 4},
	}
	c := recommend.NewCache(recommend.DefaultCacheCapacity)

	report := c.Measure(recommend.RatedUsers(ratings), ratings, books)
	if report.UsersTested != 2 {
		t.Errorf("UsersTested = %d, want 2", report.UsersTested)
	}
	if report.ColdAvg < 0 || report.WarmAvg < 0 || report.Speedup < 0 {
		t.Errorf("negative timings in %+v", report)
	}
}

func TestMeasure_EmptyPanel(t *testing.T) {
	c := recommend.NewCache(4)
	report := c.Measure(nil, nil, books)
	if report != (recommend.Report{}) {
		t.Errorf("empty panel should zero the report, got %+v", report)
	}
}

func TestRatedUsers(t *testing.T) {
	ratings := []catalog.Rating{
		{UserID: "u2", BookID: "b1", Value: 3},
		{UserID: "u1", BookID: "b2", Value: 4},
		{UserID: "u2", BookID: "b3", Value: 5},
	}
	got := recommend.RatedUsers(ratings)
	if len(got) != 2 || got[0] != "u2" || got[1] != "u1" {
		t.Errorf("RatedUsers = %v, want [u2 u1] in first-seen order", got)
	}
}
