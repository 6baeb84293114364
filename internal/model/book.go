package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Input errors reported by BookInput.Validate
var (
	ErrMissingTitle  = errors.New("title is required")
	ErrMissingAuthor = errors.New("author is required")
	ErrMissingPages  = errors.New("pages is required")
	ErrMissingPrice  = errors.New("price is required")
)

// Book represents a single library record
type Book struct {
	Title    string
	Author   string
	Pages    int
	Price    decimal.Decimal
	Borrower string // empty when the book is available
}

// IsBorrowed returns true if somebody has the book checked out
func (b Book) IsBorrowed() bool {
	return b.Borrower != ""
}

// BookInput carries the fields collected by the add-book form.
// Nil Pages or Price means the field was left empty.
type BookInput struct {
	Title  string
	Author string
	Pages  *int
	Price  *decimal.Decimal
}

// Validate checks that every field is present. Values are not range checked:
// negative pages or prices are accepted.
func (in BookInput) Validate() error {
	switch {
	case in.Title == "":
		return ErrMissingTitle
	case in.Author == "":
		return ErrMissingAuthor
	case in.Pages == nil:
		return ErrMissingPages
	case in.Price == nil:
		return ErrMissingPrice
	}
	return nil
}

// Book builds the record for a validated input. The new book has no borrower.
func (in BookInput) Book() Book {
	b := Book{Title: in.Title, Author: in.Author}
	if in.Pages != nil {
		b.Pages = *in.Pages
	}
	if in.Price != nil {
		b.Price = *in.Price
	}
	return b
}
