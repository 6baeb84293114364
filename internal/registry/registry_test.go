package registry

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/library-manager/internal/model"
)

func intPtr(v int) *int { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func seeded(t *testing.T) *Registry {
	t.Helper()
	r := New()
	r.Seed()
	return r
}

func titles(books []model.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}

func TestSeed(t *testing.T) {
	r := seeded(t)

	assert.Equal(t, 5, r.Count())

	books, outcome := r.ListAll()
	require.Equal(t, model.StatusSuccess, outcome.Status)
	require.Len(t, books, 5)

	expected := []struct {
		title  string
		author string
		pages  int
		price  string
	}{
		{"The Great Gatsby", "F. Scott Fitzgerald", 180, "10.99"},
		{"1984", "George Orwell", 328, "8.99"},
		{"To Kill a Mockingbird", "Harper Lee", 281, "7.99"},
		{"Pride and Prejudice", "Jane Austen", 279, "6.99"},
		{"The Catcher in the Rye", "J.D. Salinger", 277, "9.99"},
	}
	for i, want := range expected {
		assert.Equal(t, want.title, books[i].Title)
		assert.Equal(t, want.author, books[i].Author)
		assert.Equal(t, want.pages, books[i].Pages)
		assert.Equal(t, want.price, books[i].Price.String())
		assert.False(t, books[i].IsBorrowed())
	}
}

func TestAdd(t *testing.T) {
	r := seeded(t)

	book, err := r.Add(model.BookInput{
		Title:  "Dune",
		Author: "Frank Herbert",
		Pages:  intPtr(412),
		Price:  decPtr("12.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)
	assert.Empty(t, book.Borrower)
	assert.Equal(t, 6, r.Count())

	books, _ := r.ListAll()
	require.Len(t, books, 6)
	assert.Equal(t, "Dune", books[5].Title)
	assert.False(t, books[5].IsBorrowed())
}

func TestAdd_AcceptsNegativeValues(t *testing.T) {
	r := New()

	_, err := r.Add(model.BookInput{Title: "Odd", Author: "Anon", Pages: intPtr(-5), Price: decPtr("-1.25")})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Count())
}

func TestAdd_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		input model.BookInput
	}{
		{"missing title", model.BookInput{Author: "A", Pages: intPtr(1), Price: decPtr("1")}},
		{"missing author", model.BookInput{Title: "T", Pages: intPtr(1), Price: decPtr("1")}},
		{"missing pages", model.BookInput{Title: "T", Author: "A", Price: decPtr("1")}},
		{"missing price", model.BookInput{Title: "T", Author: "A", Pages: intPtr(1)}},
		{"all missing", model.BookInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := seeded(t)
			before, _ := r.ListAll()

			_, err := r.Add(tt.input)
			require.ErrorIs(t, err, ErrInput)

			after, _ := r.ListAll()
			assert.Equal(t, before, after)
			assert.Equal(t, 5, r.Count())
		})
	}
}

func TestListAll_Empty(t *testing.T) {
	r := New()

	books, outcome := r.ListAll()
	assert.Nil(t, books)
	assert.Equal(t, model.StatusEmpty, outcome.Status)
	assert.Equal(t, 0, r.Count())
}

func TestListAll_ReturnsCopies(t *testing.T) {
	r := seeded(t)

	books, _ := r.ListAll()
	books[0].Borrower = "Mallory"

	again, _ := r.ListAll()
	assert.False(t, again[0].IsBorrowed())
}

func TestListByAuthor(t *testing.T) {
	r := seeded(t)

	books, outcome, err := r.ListByAuthor("George Orwell")
	require.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, outcome.Status)
	assert.Equal(t, []string{"1984"}, titles(books))

	books, outcome, err = r.ListByAuthor("Nonexistent Author")
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotFound, outcome.Status)
	assert.Empty(t, books)

	// Match is exact and case-sensitive.
	_, outcome, err = r.ListByAuthor("george orwell")
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotFound, outcome.Status)
}

func TestListByAuthor_PreservesInsertionOrder(t *testing.T) {
	r := seeded(t)
	_, err := r.Add(model.BookInput{Title: "Animal Farm", Author: "George Orwell", Pages: intPtr(112), Price: decPtr("5.99")})
	require.NoError(t, err)

	books, _, err := r.ListByAuthor("George Orwell")
	require.NoError(t, err)
	assert.Equal(t, []string{"1984", "Animal Farm"}, titles(books))
}

func TestListByAuthor_EmptyAuthor(t *testing.T) {
	r := seeded(t)

	_, _, err := r.ListByAuthor("")
	assert.ErrorIs(t, err, ErrInput)
}

func TestBorrow(t *testing.T) {
	r := seeded(t)

	outcome, err := r.Borrow("1984", "Alice")
	require.NoError(t, err)
	assert.Equal(t, model.Outcome{Status: model.StatusSuccess, Title: "1984", Borrower: "Alice"}, outcome)

	books, _ := r.ListAll()
	assert.Equal(t, "Alice", books[1].Borrower)

	outcome, err = r.Borrow("1984", "Bob")
	require.NoError(t, err)
	assert.Equal(t, model.StatusAlreadyBorrowed, outcome.Status)
	assert.Equal(t, "Alice", outcome.Borrower)

	books, _ = r.ListAll()
	assert.Equal(t, "Alice", books[1].Borrower)
}

func TestBorrow_NotFound(t *testing.T) {
	r := seeded(t)
	before, _ := r.ListAll()

	outcome, err := r.Borrow("Missing", "Alice")
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotFound, outcome.Status)
	assert.Equal(t, "Missing", outcome.Title)

	after, _ := r.ListAll()
	assert.Equal(t, before, after)
}

func TestBorrow_MissingInput(t *testing.T) {
	r := seeded(t)

	_, err := r.Borrow("", "Alice")
	assert.ErrorIs(t, err, ErrInput)

	_, err = r.Borrow("1984", "")
	assert.ErrorIs(t, err, ErrInput)

	books, _ := r.ListAll()
	for _, b := range books {
		assert.False(t, b.IsBorrowed())
	}
}

func TestBorrow_DuplicateTitlesActOnFirst(t *testing.T) {
	r := New()
	for _, author := range []string{"First", "Second"} {
		_, err := r.Add(model.BookInput{Title: "Twin", Author: author, Pages: intPtr(1), Price: decPtr("1")})
		require.NoError(t, err)
	}

	outcome, err := r.Borrow("Twin", "Alice")
	require.NoError(t, err)
	assert.True(t, outcome.Status.IsSuccess())

	// The first copy is taken, so the second never becomes reachable.
	outcome, err = r.Borrow("Twin", "Bob")
	require.NoError(t, err)
	assert.Equal(t, model.StatusAlreadyBorrowed, outcome.Status)

	books, _ := r.ListAll()
	assert.Equal(t, "Alice", books[0].Borrower)
	assert.False(t, books[1].IsBorrowed())
}

func TestReturn(t *testing.T) {
	r := seeded(t)
	_, err := r.Borrow("Pride and Prejudice", "Carol")
	require.NoError(t, err)

	outcome, err := r.Return("Pride and Prejudice")
	require.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, outcome.Status)

	books, _ := r.ListAll()
	assert.False(t, books[3].IsBorrowed())

	outcome, err = r.Return("Pride and Prejudice")
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotBorrowed, outcome.Status)

	outcome, err = r.Return("Missing")
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotFound, outcome.Status)

	after, _ := r.ListAll()
	assert.Equal(t, books, after)
}

func TestReturn_MissingTitle(t *testing.T) {
	r := seeded(t)

	_, err := r.Return("")
	assert.ErrorIs(t, err, ErrInput)
}

func TestReadsAreIdempotent(t *testing.T) {
	r := seeded(t)
	_, err := r.Borrow("1984", "Alice")
	require.NoError(t, err)

	first, firstOutcome := r.ListAll()
	firstCount := r.Count()
	for i := 0; i < 3; i++ {
		books, outcome := r.ListAll()
		assert.Equal(t, first, books)
		assert.Equal(t, firstOutcome, outcome)
		assert.Equal(t, firstCount, r.Count())
	}
}

func TestCountTracksLength(t *testing.T) {
	r := New()
	r.Seed()
	r.Seed()

	books, _ := r.ListAll()
	assert.Equal(t, len(books), r.Count())
	assert.Equal(t, 10, r.Count())
}
