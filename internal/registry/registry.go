package registry

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ytget/library-manager/internal/model"
)

// Registry is an ordered collection of books. Insertion order is display order.
type Registry struct {
	books []*model.Book
	count int
	log   zerolog.Logger
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger used for registry events
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = logger.With().Str("component", "registry").Logger()
	}
}

// New creates an empty registry
func New(opts ...Option) *Registry {
	r := &Registry{
		books: make([]*model.Book, 0),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// appendBook is the only path that grows the list, so count tracks len(books).
func (r *Registry) appendBook(book model.Book) {
	b := book
	r.books = append(r.books, &b)
	r.count++
}

// Add validates the input and appends a new, available book
func (r *Registry) Add(in model.BookInput) (model.Book, error) {
	if err := in.Validate(); err != nil {
		r.log.Debug().Err(err).Msg("add rejected")
		return model.Book{}, fmt.Errorf("%w: %w", ErrInput, err)
	}

	book := in.Book()
	r.appendBook(book)

	r.log.Info().
		Str("title", book.Title).
		Str("author", book.Author).
		Int("pages", book.Pages).
		Str("price", book.Price.String()).
		Int("count", r.count).
		Msg("book added")
	return book, nil
}

// ListAll returns a copy of every book in insertion order.
// The outcome is StatusEmpty when the registry holds no books.
func (r *Registry) ListAll() ([]model.Book, model.Outcome) {
	if len(r.books) == 0 {
		return nil, model.Outcome{Status: model.StatusEmpty}
	}

	books := make([]model.Book, 0, len(r.books))
	for _, book := range r.books {
		books = append(books, *book)
	}
	return books, model.Outcome{Status: model.StatusSuccess}
}

// ListByAuthor returns books whose author matches exactly (case-sensitive)
func (r *Registry) ListByAuthor(author string) ([]model.Book, model.Outcome, error) {
	if author == "" {
		return nil, model.Outcome{}, fmt.Errorf("%w: author is required", ErrInput)
	}

	var books []model.Book
	for _, book := range r.books {
		if book.Author == author {
			books = append(books, *book)
		}
	}

	if len(books) == 0 {
		r.log.Debug().Str("author", author).Msg("no books by author")
		return nil, model.Outcome{Status: model.StatusNotFound}, nil
	}
	return books, model.Outcome{Status: model.StatusSuccess}, nil
}

// Borrow checks out the first book with the given title
func (r *Registry) Borrow(title, borrower string) (model.Outcome, error) {
	if title == "" || borrower == "" {
		return model.Outcome{}, fmt.Errorf("%w: title and borrower are required", ErrInput)
	}

	book := r.findByTitle(title)
	if book == nil {
		return model.Outcome{Status: model.StatusNotFound, Title: title}, nil
	}

	if book.IsBorrowed() {
		r.log.Debug().Str("title", title).Str("borrower", book.Borrower).Msg("book already borrowed")
		return model.Outcome{Status: model.StatusAlreadyBorrowed, Title: title, Borrower: book.Borrower}, nil
	}

	book.Borrower = borrower
	r.log.Info().Str("title", title).Str("borrower", borrower).Msg("book borrowed")
	return model.Outcome{Status: model.StatusSuccess, Title: title, Borrower: borrower}, nil
}

// Return checks in the first book with the given title
func (r *Registry) Return(title string) (model.Outcome, error) {
	if title == "" {
		return model.Outcome{}, fmt.Errorf("%w: title is required", ErrInput)
	}

	book := r.findByTitle(title)
	if book == nil {
		return model.Outcome{Status: model.StatusNotFound, Title: title}, nil
	}

	if !book.IsBorrowed() {
		return model.Outcome{Status: model.StatusNotBorrowed, Title: title}, nil
	}

	previous := book.Borrower
	book.Borrower = ""
	r.log.Info().Str("title", title).Str("borrower", previous).Msg("book returned")
	return model.Outcome{Status: model.StatusSuccess, Title: title}, nil
}

// Count returns the maintained number of books
func (r *Registry) Count() int {
	return r.count
}

// findByTitle returns the first book in insertion order with an exact title match
func (r *Registry) findByTitle(title string) *model.Book {
	for _, book := range r.books {
		if book.Title == title {
			return book
		}
	}
	return nil
}
