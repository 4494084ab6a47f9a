package catalog

// LoanStatus is the lifecycle state of a Loan.
type LoanStatus string

const (
	LoanActive   LoanStatus = "active"
	LoanReturned LoanStatus = "returned"
	LoanOverdue  LoanStatus = "overdue"
)

// Author is one writer in the catalog.
type Author struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Book is one entry in a catalog snapshot. IDs are unique within a snapshot.
type Book struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	AuthorIDs []string `json:"author_ids" yaml:"author_ids"`
	Genres    []string `json:"genres" yaml:"genres"`
	Tags      []string `json:"tags" yaml:"tags"`
	Year      int      `json:"year" yaml:"year"`
}

// User is a library member.
type User struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Rating is one user's 1..5 score for one book. At most one rating per
// (user, book) pair exists in a consistent catalog; the validate package
// enforces that, not this type.
type Rating struct {
	UserID string `json:"user_id" yaml:"user_id"`
	BookID string `json:"book_id" yaml:"book_id"`
	Value  int    `json:"value" yaml:"value"`
}

// Review is free-text feedback on a book.
type Review struct {
	ID     string `json:"id" yaml:"id"`
	UserID string `json:"user_id" yaml:"user_id"`
	BookID string `json:"book_id" yaml:"book_id"`
	Text   string `json:"text" yaml:"text"`
	TS     string `json:"ts" yaml:"ts"` // ISO-8601
}

// Loan records a book checked out by a user. End is empty while the loan
// is active.
type Loan struct {
	ID     string     `json:"id" yaml:"id"`
	UserID string     `json:"user_id" yaml:"user_id"`
	BookID string     `json:"book_id" yaml:"book_id"`
	Start  string     `json:"start" yaml:"start"`
	End    string     `json:"end,omitempty" yaml:"end,omitempty"`
	Status LoanStatus `json:"status" yaml:"status"`
}

// Tag is a label node in the tag forest. ParentID is empty for roots.
type Tag struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	ParentID string `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
}

// Genre is a node in the genre forest. ParentID is empty for roots.
type Genre struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	ParentID string `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
}
