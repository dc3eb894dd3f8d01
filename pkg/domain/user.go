package domain

import (
	"github.com/shopspring/decimal"

	"library/pkg/semerr"
)

// UserID uniquely identifies a registered user.
// It is a thin wrapper around string to provide type safety at the domain layer.
type UserID string

// User represents a registered library patron together with their ledger:
// the set of books currently held and the accumulated fine balance.
type User struct {
	// ID is the unique, immutable identifier of the user.
	ID UserID `json:"id"`
	// Name is the display name of the user.
	Name string `json:"name"`

	// Borrowed lists the books currently held, in borrow order, without
	// duplicates. A book appears in at most one user's Borrowed set.
	Borrowed []ISBN `json:"borrowed"`
	// FineBalance is the accumulated, unpaid fine amount. Never negative.
	FineBalance decimal.Decimal `json:"fineBalance"`
}

// NewUser creates a user with an empty ledger.
func NewUser(name string, id UserID) User {
	return User{ID: id, Name: name, FineBalance: decimal.Zero}
}

// Holds reports whether the user currently has the given book on loan.
func (u *User) Holds(isbn ISBN) bool {
	for _, held := range u.Borrowed {
		if held == isbn {
			return true
		}
	}

	return false
}

// RecordBorrow adds the book to the user's held set. Adding a book the user
// already holds is a no-op, keeping the set duplicate-free.
func (u *User) RecordBorrow(isbn ISBN) {
	if u.Holds(isbn) {
		return
	}
	u.Borrowed = append(u.Borrowed, isbn)
}

// RecordReturn removes the book from the user's held set. It fails with
// semerr.ErrNotBorrowed when the user does not hold the book.
func (u *User) RecordReturn(isbn ISBN) error {
	for i, held := range u.Borrowed {
		if held == isbn {
			u.Borrowed = append(u.Borrowed[:i], u.Borrowed[i+1:]...)

			return nil
		}
	}

	return semerr.With(semerr.ErrNotBorrowed, "user %q has not borrowed book %q", u.ID, isbn)
}

// AddFine accumulates the given amount into the user's balance.
// Negative amounts are rejected with semerr.ErrBadRequest.
func (u *User) AddFine(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return semerr.With(semerr.ErrBadRequest, "fine amount must not be negative, got %s", amount)
	}
	u.FineBalance = u.FineBalance.Add(amount)

	return nil
}

// PayFine reduces the balance by amount. A payment exceeding the balance is
// rejected as a whole with semerr.ErrOverpayment; no partial amount is
// applied. Negative amounts are rejected with semerr.ErrBadRequest.
func (u *User) PayFine(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return semerr.With(semerr.ErrBadRequest, "payment amount must not be negative, got %s", amount)
	}
	if amount.GreaterThan(u.FineBalance) {
		return semerr.With(semerr.ErrOverpayment,
			"payment of %s exceeds outstanding fines of %s", amount, u.FineBalance)
	}
	u.FineBalance = u.FineBalance.Sub(amount)

	return nil
}

// Clone returns a deep copy of the user. The Borrowed slice is copied so
// mutating the clone never aliases the original.
func (u User) Clone() User {
	c := u
	if u.Borrowed != nil {
		c.Borrowed = append([]ISBN(nil), u.Borrowed...)
	}

	return c
}
