package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanID uniquely identifies a loan record.
// It wraps uuid.UUID to provide type safety at the domain layer.
type LoanID uuid.UUID

// NewLoanID returns a freshly generated loan identifier.
func NewLoanID() LoanID { return LoanID(uuid.New()) }

// String returns the canonical textual form of the loan identifier.
func (id LoanID) String() string { return uuid.UUID(id).String() }

// Loan is the audit record of a single borrow transaction. One is opened for
// every successful borrow and closed on return, capturing any fine assessed.
type Loan struct {
	// ID is the unique identifier of the loan record.
	ID LoanID `json:"id"`
	// UserID is the borrower.
	UserID UserID `json:"userId"`
	// ISBN is the borrowed book.
	ISBN ISBN `json:"isbn"`

	// BorrowedAt is the time the loan was opened.
	BorrowedAt time.Time `json:"borrowedAt"`
	// DueAt is the time the book is due back.
	DueAt time.Time `json:"dueAt"`
	// ReturnedAt is the time the book came back; nil while the loan is open.
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`

	// Fine is the fine assessed at return time. Zero for on-time returns and
	// while the loan is open.
	Fine decimal.Decimal `json:"fine"`
}

// Active reports whether the book is still out on this loan.
func (l *Loan) Active() bool { return l.ReturnedAt == nil }

// Close marks the loan as returned at the given time with the given fine.
func (l *Loan) Close(returnedAt time.Time, fine decimal.Decimal) {
	l.ReturnedAt = &returnedAt
	l.Fine = fine
}

// Clone returns a deep copy of the loan.
func (l Loan) Clone() Loan {
	c := l
	if l.ReturnedAt != nil {
		at := *l.ReturnedAt
		c.ReturnedAt = &at
	}

	return c
}
