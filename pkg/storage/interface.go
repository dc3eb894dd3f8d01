// Package storage defines the repository interfaces the library service
// relies on. It abstracts the lookup tables for books, users and loans so
// that different backends (currently only the in-memory one) can provide
// concrete implementations.
//
// Lookup methods return (nil, nil) when the requested record does not exist;
// callers translate absence into their own semantic errors.
package storage

import (
	"context"

	"library/pkg/domain"
)

// BookStorage defines the catalog: the lookup table of books keyed by ISBN.
type BookStorage interface {
	// StoreBook inserts a new book and returns the stored record. It fails
	// with ErrDuplicateKey when a book with the same ISBN already exists.
	StoreBook(ctx context.Context, book domain.Book) (*domain.Book, error)
	// BookByISBN fetches a book by its ISBN. Returns nil when not found.
	BookByISBN(ctx context.Context, isbn domain.ISBN) (*domain.Book, error)
	// UpdateBook replaces the stored record for the book's ISBN and returns
	// the updated record, or nil when no such book exists.
	UpdateBook(ctx context.Context, book domain.Book) (*domain.Book, error)
	// DeleteBook removes a book and returns the deleted record, or nil when
	// no such book exists.
	DeleteBook(ctx context.Context, isbn domain.ISBN) (*domain.Book, error)
	// Books returns all books in insertion order.
	Books(ctx context.Context) ([]domain.Book, error)
}

// UserStorage defines the registry of users keyed by their identifier.
type UserStorage interface {
	// StoreUser inserts a new user and returns the stored record. It fails
	// with ErrDuplicateKey when a user with the same ID already exists.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID fetches a user by ID. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UpdateUser replaces the stored record for the user's ID and returns
	// the updated record, or nil when no such user exists.
	UpdateUser(ctx context.Context, user domain.User) (*domain.User, error)
}

// LoanStorage defines the audit trail of borrow transactions.
type LoanStorage interface {
	// StoreLoan inserts a new loan record and returns it as stored.
	StoreLoan(ctx context.Context, loan domain.Loan) (*domain.Loan, error)
	// UpdateLoan replaces the stored record for the loan's ID and returns
	// the updated record, or nil when no such loan exists.
	UpdateLoan(ctx context.Context, loan domain.Loan) (*domain.Loan, error)
	// ActiveLoan returns the open loan of the given user for the given book,
	// or nil when the user has no open loan for it.
	ActiveLoan(ctx context.Context, userID domain.UserID, isbn domain.ISBN) (*domain.Loan, error)
	// UserLoans returns all loans of the given user, open and closed, in
	// insertion order.
	UserLoans(ctx context.Context, userID domain.UserID) ([]domain.Loan, error)
}

// AllStorage is a composite interface that includes all repository
// capabilities required by the application.
type AllStorage interface {
	BookStorage
	UserStorage
	LoanStorage
}

// Storage describes a storage handle with lifecycle management. Its lifetime
// is the process lifetime; Close releases whatever the backend holds.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation.
	// After Close, the instance should not be used.
	Close() error
}
