package registry

import (
	"github.com/shopspring/decimal"

	"github.com/ytget/library-manager/internal/model"
)

// SeedBooks returns the sample books loaded at startup, in display order.
func SeedBooks() []model.Book {
	return []model.Book{
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Pages: 180, Price: decimal.RequireFromString("10.99")},
		{Title: "1984", Author: "George Orwell", Pages: 328, Price: decimal.RequireFromString("8.99")},
		{Title: "To Kill a Mockingbird", Author: "Harper Lee", Pages: 281, Price: decimal.RequireFromString("7.99")},
		{Title: "Pride and Prejudice", Author: "Jane Austen", Pages: 279, Price: decimal.RequireFromString("6.99")},
		{Title: "The Catcher in the Rye", Author: "J.D. Salinger", Pages: 277, Price: decimal.RequireFromString("9.99")},
	}
}

// Seed appends the sample books. Calling it twice adds them twice.
func (r *Registry) Seed() {
	seed := SeedBooks()
	for _, book := range seed {
		r.appendBook(book)
	}
	r.log.Info().Int("added", len(seed)).Int("count", r.count).Msg("registry seeded")
}
