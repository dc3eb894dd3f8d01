// Package admin implements the administration facade: catalog mutation,
// user registration and read-only reporting. It carries no invariants of its
// own beyond what the catalog and the ledgers already guarantee, with one
// exception: a checked-out book cannot be removed, so no user is left holding
// a book that no longer exists.
package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"library/pkg/domain"
	"library/pkg/logger"
	"library/pkg/semerr"
	"library/pkg/storage"
)

// Service exposes catalog administration and reporting.
type Service interface {
	// AddBook adds a new book to the catalog. Duplicate ISBNs are rejected.
	AddBook(ctx context.Context, title, author string, isbn domain.ISBN) (*domain.Book, error)
	// RemoveBook removes a book from the catalog. Checked-out books are
	// rejected until returned.
	RemoveBook(ctx context.Context, isbn domain.ISBN) error
	// RegisterUser registers a new user. Duplicate identifiers are rejected.
	RegisterUser(ctx context.Context, name string, id domain.UserID) (*domain.User, error)
	// Inventory returns all books in the catalog, in the order they were added.
	Inventory(ctx context.Context) ([]domain.Book, error)
	// UserSummary reports a user's ledger together with the held books and
	// the loan history.
	UserSummary(ctx context.Context, id domain.UserID) (*Summary, error)
}

// Summary composes a user's ledger with the resolved held books and the full
// loan history, for display by the caller.
type Summary struct {
	// User is the user's ledger: held set and fine balance.
	User domain.User `json:"user"`
	// Books are the resolved records of the currently held books, in borrow
	// order.
	Books []domain.Book `json:"books"`
	// Loans is the user's loan history, open and closed, oldest first.
	Loans []domain.Loan `json:"loans"`
}

// service is the concrete implementation of the Service interface.
type service struct {
	storage storage.Storage
}

// New creates an administration facade backed by the provided storage.
func New(strg storage.Storage) Service {
	return &service{storage: strg}
}

func (s *service) AddBook(ctx context.Context, title, author string, isbn domain.ISBN) (*domain.Book, error) {
	if strings.TrimSpace(string(isbn)) == "" {
		return nil, semerr.With(semerr.ErrBadRequest, "ISBN must not be empty")
	}
	if strings.TrimSpace(title) == "" {
		return nil, semerr.With(semerr.ErrBadRequest, "title must not be empty")
	}

	book, err := s.storage.StoreBook(ctx, domain.NewBook(title, author, isbn))
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, semerr.Wrap(semerr.ErrDuplicate, err, "book %q is already in the catalog", isbn)
		}

		return nil, fmt.Errorf("could not store book: %w", err)
	}

	logger.Info(ctx, "book added to catalog",
		zap.String("isbn", string(isbn)),
		zap.String("title", title),
	)

	return book, nil
}

func (s *service) RemoveBook(ctx context.Context, isbn domain.ISBN) error {
	book, err := s.storage.BookByISBN(ctx, isbn)
	if err != nil {
		return fmt.Errorf("could not load book: %w", err)
	}
	if book == nil {
		return semerr.With(semerr.ErrNotFound, "book %q is not in the catalog", isbn)
	}
	if !book.Available {
		return semerr.With(semerr.ErrCheckedOut, "book %q is on loan and cannot be removed", isbn)
	}

	if _, err := s.storage.DeleteBook(ctx, isbn); err != nil {
		return fmt.Errorf("could not delete book: %w", err)
	}

	logger.Info(ctx, "book removed from catalog", zap.String("isbn", string(isbn)))

	return nil
}

func (s *service) RegisterUser(ctx context.Context, name string, id domain.UserID) (*domain.User, error) {
	if strings.TrimSpace(string(id)) == "" {
		return nil, semerr.With(semerr.ErrBadRequest, "user ID must not be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, semerr.With(semerr.ErrBadRequest, "name must not be empty")
	}

	user, err := s.storage.StoreUser(ctx, domain.NewUser(name, id))
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, semerr.Wrap(semerr.ErrDuplicate, err, "user %q is already registered", id)
		}

		return nil, fmt.Errorf("could not store user: %w", err)
	}

	logger.Info(ctx, "user registered", zap.String("user_id", string(id)))

	return user, nil
}

func (s *service) Inventory(ctx context.Context) ([]domain.Book, error) {
	books, err := s.storage.Books(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list books: %w", err)
	}

	return books, nil
}

func (s *service) UserSummary(ctx context.Context, id domain.UserID) (*Summary, error) {
	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not load user: %w", err)
	}
	if user == nil {
		return nil, semerr.With(semerr.ErrNotFound, "user %q is not registered", id)
	}

	books := make([]domain.Book, 0, len(user.Borrowed))
	for _, isbn := range user.Borrowed {
		book, err := s.storage.BookByISBN(ctx, isbn)
		if err != nil {
			return nil, fmt.Errorf("could not load book: %w", err)
		}
		if book == nil {
			return nil, semerr.With(semerr.ErrInternal, "book %q is held by user %q but missing from the catalog",
				isbn, id)
		}
		books = append(books, *book)
	}

	loans, err := s.storage.UserLoans(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not load loans: %w", err)
	}

	return &Summary{User: *user, Books: books, Loans: loans}, nil
}
