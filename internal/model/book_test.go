package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func intPtr(v int) *int { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestBook_IsBorrowed(t *testing.T) {
	tests := []struct {
		borrower string
		expected bool
	}{
		{"", false},
		{"Alice", true},
	}

	for _, test := range tests {
		book := Book{Title: "1984", Borrower: test.borrower}
		if book.IsBorrowed() != test.expected {
			t.Errorf("IsBorrowed() with borrower='%s' = %v, expected %v", test.borrower, book.IsBorrowed(), test.expected)
		}
	}
}

func TestBookInput_Validate(t *testing.T) {
	tests := []struct {
		name     string
		input    BookInput
		expected error
	}{
		{"complete", BookInput{"Dune", "Frank Herbert", intPtr(412), decPtr("12.50")}, nil},
		{"negative values accepted", BookInput{"Dune", "Frank Herbert", intPtr(-1), decPtr("-3")}, nil},
		{"missing title", BookInput{"", "Frank Herbert", intPtr(412), decPtr("12.50")}, ErrMissingTitle},
		{"missing author", BookInput{"Dune", "", intPtr(412), decPtr("12.50")}, ErrMissingAuthor},
		{"missing pages", BookInput{"Dune", "Frank Herbert", nil, decPtr("12.50")}, ErrMissingPages},
		{"missing price", BookInput{"Dune", "Frank Herbert", intPtr(412), nil}, ErrMissingPrice},
	}

	for _, test := range tests {
		err := test.input.Validate()
		if !errors.Is(err, test.expected) {
			t.Errorf("%s: Validate() = %v, expected %v", test.name, err, test.expected)
		}
	}
}

func TestBookInput_Book(t *testing.T) {
	input := BookInput{"Dune", "Frank Herbert", intPtr(412), decPtr("12.50")}
	book := input.Book()

	if book.Title != "Dune" || book.Author != "Frank Herbert" || book.Pages != 412 {
		t.Errorf("Unexpected book %+v", book)
	}
	if !book.Price.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("Expected price 12.5, got %s", book.Price)
	}
	if book.IsBorrowed() {
		t.Error("New book should not be borrowed")
	}
}
