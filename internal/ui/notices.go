package ui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ytget/library-manager/internal/model"
	"github.com/ytget/library-manager/internal/registry"
)

// Notice is a message shown to the user in a modal dialog
type Notice struct {
	Title   string
	Message string
	Warning bool
}

func infoNotice(title, message string) Notice {
	return Notice{Title: title, Message: message}
}

func warningNotice(title, message string) Notice {
	return Notice{Title: title, Message: message, Warning: true}
}

// parseBookForm converts add-book form text into an input.
// Numbers that are empty or do not parse count as missing.
func parseBookForm(title, author, pages, price string) model.BookInput {
	in := model.BookInput{Title: title, Author: author}

	if n, err := strconv.Atoi(strings.TrimSpace(pages)); err == nil {
		in.Pages = &n
	}
	if d, err := decimal.NewFromString(strings.TrimSpace(price)); err == nil {
		in.Price = &d
	}
	return in
}

// addNotice reports the result of adding a book
func addNotice(l *Localization, err error) Notice {
	if err != nil {
		return warningNotice(l.GetText(KeyInputError), l.GetText(KeyFillAllFields))
	}
	return infoNotice(l.GetText(KeySuccess), l.GetText(KeyBookAdded))
}

// borrowNotice reports the result of a borrow request
func borrowNotice(l *Localization, outcome model.Outcome, err error) Notice {
	if errors.Is(err, registry.ErrInput) {
		return warningNotice(l.GetText(KeyInputError), l.GetText(KeyBorrowInputError))
	}

	switch outcome.Status {
	case model.StatusSuccess:
		return infoNotice(l.GetText(KeySuccess), l.Textf(KeyBorrowed, outcome.Title, outcome.Borrower))
	case model.StatusAlreadyBorrowed:
		return infoNotice(l.GetText(KeyInfo), l.Textf(KeyAlreadyBorrowed, outcome.Title, outcome.Borrower))
	default:
		return infoNotice(l.GetText(KeyInfo), l.Textf(KeyBookNotFound, outcome.Title))
	}
}

// returnNotice reports the result of a return request
func returnNotice(l *Localization, outcome model.Outcome, err error) Notice {
	if errors.Is(err, registry.ErrInput) {
		return warningNotice(l.GetText(KeyInputError), l.GetText(KeyReturnInputError))
	}

	switch outcome.Status {
	case model.StatusSuccess:
		return infoNotice(l.GetText(KeySuccess), l.Textf(KeyReturned, outcome.Title))
	case model.StatusNotBorrowed:
		return infoNotice(l.GetText(KeyInfo), l.Textf(KeyNotBorrowed, outcome.Title))
	default:
		return infoNotice(l.GetText(KeyInfo), l.Textf(KeyBookNotFound, outcome.Title))
	}
}

// authorNotice reports a list-by-author request that produced no table
func authorNotice(l *Localization, err error) Notice {
	if errors.Is(err, registry.ErrInput) {
		return warningNotice(l.GetText(KeyInputError), l.GetText(KeyAuthorRequired))
	}
	return infoNotice(l.GetText(KeyInfo), l.GetText(KeyNoBooksByAuthor))
}

// emptyNotice reports that there is nothing to display
func emptyNotice(l *Localization) Notice {
	return infoNotice(l.GetText(KeyInfo), l.GetText(KeyNoBooks))
}

// countNotice reports the number of books
func countNotice(l *Localization, count int) Notice {
	return infoNotice(l.GetText(KeyCount), l.Textf(KeyCountMessage, count))
}

// bookCell returns the text of one book table cell
func bookCell(l *Localization, book model.Book, col int) string {
	switch col {
	case ColBookName:
		return book.Title
	case ColAuthor:
		return book.Author
	case ColPages:
		return strconv.Itoa(book.Pages)
	case ColPrice:
		return book.Price.String()
	case ColBorrower:
		if book.IsBorrowed() {
			return book.Borrower
		}
		return l.GetText(KeyAvailable)
	default:
		return ""
	}
}

// columnHeaders returns the localized book table headers
func columnHeaders(l *Localization) []string {
	return []string{
		l.GetText(KeyColBookName),
		l.GetText(KeyColAuthor),
		l.GetText(KeyColPages),
		l.GetText(KeyColPrice),
		l.GetText(KeyColBorrower),
	}
}
