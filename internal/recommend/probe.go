package recommend

import (
	"time"

	"github.com/blackwell-systems/librec/internal/catalog"
)

// probePanelSize is how many rated users the probe exercises at most.
const probePanelSize = 5

// Report summarizes one cold/warm timing probe of the cache. It is an
// observability aid: nothing about the recommendation contract depends on
// the numbers it reports.
type Report struct {
	ColdAvg     time.Duration `json:"cold_avg"`
	WarmAvg     time.Duration `json:"warm_avg"`
	Speedup     float64       `json:"speedup"`
	UsersTested int           `json:"users_tested"`
}

// Measure clears the cache, runs a small panel of users cold, runs the
// same panel again warm, and reports average per-user latency for each
// pass plus the speedup ratio. Speedup is 0 when the warm pass is too fast
// to measure. An empty panel yields a zero report.
func (c *Cache) Measure(userIDs []string, ratings []catalog.Rating, books []catalog.Book) Report {
	if len(userIDs) > probePanelSize {
		userIDs = userIDs[:probePanelSize]
	}
	if len(userIDs) == 0 {
		return Report{}
	}

	c.Clear()

	start := time.Now()
	for _, id := range userIDs {
		c.ForUser(id, ratings, books)
	}
	cold := time.Since(start)

	start = time.Now()
	for _, id := range userIDs {
		c.ForUser(id, ratings, books)
	}
	warm := time.Since(start)

	n := time.Duration(len(userIDs))
	report := Report{
		ColdAvg:     cold / n,
		WarmAvg:     warm / n,
		UsersTested: len(userIDs),
	}
	if warm > 0 {
		report.Speedup = float64(cold) / float64(warm)
	}
	return report
}

// RatedUsers returns the ids of users that have at least one rating, in
// first-seen order. The probe panel is drawn from this list.
func RatedUsers(ratings []catalog.Rating) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range ratings {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			out = append(out, r.UserID)
		}
	}
	return out
}
