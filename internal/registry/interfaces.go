package registry

import (
	"github.com/ytget/library-manager/internal/model"
)

// Catalog defines the operations the UI needs from the book registry.
type Catalog interface {
	Add(in model.BookInput) (model.Book, error)
	ListAll() ([]model.Book, model.Outcome)
	ListByAuthor(author string) ([]model.Book, model.Outcome, error)
	Borrow(title, borrower string) (model.Outcome, error)
	Return(title string) (model.Outcome, error)
	Count() int
}
