package catalog

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
)

// Snapshot is the full catalog state at one point in time. Receivers may
// read the slices freely but must not mutate them; every transform in this
// package returns fresh slices and leaves its input alone.
type Snapshot struct {
	Authors []Author `json:"authors" yaml:"authors"`
	Books   []Book   `json:"books" yaml:"books"`
	Users   []User   `json:"users" yaml:"users"`
	Ratings []Rating `json:"ratings" yaml:"ratings"`
	Reviews []Review `json:"reviews" yaml:"reviews"`
	Loans   []Loan   `json:"loans" yaml:"loans"`
	Tags    []Tag    `json:"tags" yaml:"tags"`
	Genres  []Genre  `json:"genres" yaml:"genres"`
}

// WithRatings returns a copy of the snapshot with the given ratings slice.
func (s Snapshot) WithRatings(ratings []Rating) Snapshot {
	s.Ratings = ratings
	return s
}

// WithReviews returns a copy of the snapshot with the given reviews slice.
func (s Snapshot) WithReviews(reviews []Review) Snapshot {
	s.Reviews = reviews
	return s
}

// WithLoans returns a copy of the snapshot with the given loans slice.
func (s Snapshot) WithLoans(loans []Loan) Snapshot {
	s.Loans = loans
	return s
}

// writeField appends one length-prefixed string to h so that field
// boundaries survive concatenation ("ab","c" hashes differently from
// "a","bc").
func writeField(h hash.Hash, s string) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(s)))
	h.Write(n[:])
	h.Write([]byte(s))
}

func writeInt(h hash.Hash, v int) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(v))
	h.Write(n[:])
}

// RatingsFingerprint returns a sha256 content hash of a ratings slice.
// Two value-equal slices always produce the same fingerprint, regardless
// of where or when they were built.
func RatingsFingerprint(ratings []Rating) string {
	h := sha256.New()
	for _, r := range ratings {
		writeField(h, r.UserID)
		writeField(h, r.BookID)
		writeInt(h, r.Value)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// BooksFingerprint returns a sha256 content hash of a books slice.
func BooksFingerprint(books []Book) string {
	h := sha256.New()
	for _, b := range books {
		writeField(h, b.ID)
		writeField(h, b.Title)
		writeInt(h, len(b.AuthorIDs))
		for _, id := range b.AuthorIDs {
			writeField(h, id)
		}
		writeInt(h, len(b.Genres))
		for _, id := range b.Genres {
			writeField(h, id)
		}
		writeInt(h, len(b.Tags))
		for _, id := range b.Tags {
			writeField(h, id)
		}
		writeInt(h, b.Year)
	}
	return hex.EncodeToString(h.Sum(nil))
}
