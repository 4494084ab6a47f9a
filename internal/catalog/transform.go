package catalog

// Pure transforms over catalog collections. None of these mutate their
// inputs; "updates" are fresh slices.

// AddRating returns a new ratings slice with r appended. The input slice
// is never modified, even when it has spare capacity.
func AddRating(ratings []Rating, r Rating) []Rating {
	out := make([]Rating, len(ratings), len(ratings)+1)
	copy(out, ratings)
	return append(out, r)
}

// AddReview returns a new reviews slice with rv appended.
func AddReview(reviews []Review, rv Review) []Review {
	out := make([]Review, len(reviews), len(reviews)+1)
	copy(out, reviews)
	return append(out, rv)
}

// UpdatedLoanStatus returns a new loans slice where the loan with loanID
// carries the given status and end date; every other loan is copied
// unchanged. An unknown loanID yields an identical copy.
func UpdatedLoanStatus(loans []Loan, loanID string, status LoanStatus, end string) []Loan {
	out := make([]Loan, len(loans))
	for i, l := range loans {
		if l.ID == loanID {
			l.Status = status
			l.End = end
		}
		out[i] = l
	}
	return out
}

// AvgRatingForBook computes the mean rating value for one book.
// A book with no ratings averages 0.0.
func AvgRatingForBook(ratings []Rating, bookID string) float64 {
	sum, n := 0, 0
	for _, r := range ratings {
		if r.BookID == bookID {
			sum += r.Value
			n++
		}
	}
	if n == 0 {
		return 0.0
	}
	return float64(sum) / float64(n)
}
