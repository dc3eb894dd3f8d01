package lending

import (
	"context"

	"github.com/shopspring/decimal"

	"library/pkg/domain"
)

// Service is the lending engine: it orchestrates borrow and return operations
// against the catalog and the user ledgers, applying due-date and fine rules.
type Service interface {
	// Borrow lends the book to the user and returns the opened loan,
	// including its due time.
	Borrow(ctx context.Context, userID domain.UserID, isbn domain.ISBN) (*domain.Loan, error)
	// Return takes the book back, assesses any overdue fine and returns a
	// receipt describing the outcome.
	Return(ctx context.Context, userID domain.UserID, isbn domain.ISBN) (*Receipt, error)
	// PayFine applies a payment against the user's fine balance and returns
	// the remaining balance.
	PayFine(ctx context.Context, userID domain.UserID, amount decimal.Decimal) (decimal.Decimal, error)
}
