package model

// Status represents the user-visible result of a registry operation
type Status string

const (
	// StatusSuccess means the operation applied its change
	StatusSuccess Status = "Success"

	// StatusAlreadyBorrowed means the book is checked out by someone else
	StatusAlreadyBorrowed Status = "AlreadyBorrowed"

	// StatusNotBorrowed means a return was requested for an available book
	StatusNotBorrowed Status = "NotBorrowed"

	// StatusNotFound means no book matched the title or author
	StatusNotFound Status = "NotFound"

	// StatusEmpty means the registry holds no books
	StatusEmpty Status = "Empty"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsSuccess returns true if the operation applied its change
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// Outcome is an informational result. It is never an error: not found,
// already borrowed, not borrowed and empty are normal answers.
type Outcome struct {
	Status   Status
	Title    string // title the operation was asked about
	Borrower string // current borrower (AlreadyBorrowed) or new borrower (Success on borrow)
}
