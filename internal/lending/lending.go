// Package lending implements the borrowing lifecycle and fine-calculation
// engine. A book moves between exactly two states, Available and CheckedOut,
// and the engine keeps book availability and the users' held sets mutually
// consistent under every operation. Fines are computed once, at return time,
// from the injected clock; there is no background accrual.
package lending

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"library/internal/config"
	"library/pkg/domain"
	"library/pkg/logger"
	"library/pkg/metrics"
	"library/pkg/semerr"
	"library/pkg/storage"
)

// Options configure the lending policy. These settings are typically derived
// from application configuration.
type Options struct {
	// LoanDuration is how long a borrowed book may be kept before it is due.
	LoanDuration time.Duration
	// FineRatePerSecond is the currency amount owed per second a return is
	// overdue. The fine is exactly linear in the overdue duration, with no
	// rounding or cap.
	FineRatePerSecond decimal.Decimal
}

// NewOptions constructs an Options value from the provided application config.
// The fine rate is parsed as an exact decimal.
func NewOptions(cfg *config.Config) (Options, error) {
	rate, err := decimal.NewFromString(cfg.Lending.FineRatePerSecond)
	if err != nil {
		return Options{}, fmt.Errorf("could not parse fine rate %q: %w", cfg.Lending.FineRatePerSecond, err)
	}
	if rate.IsNegative() {
		return Options{}, fmt.Errorf("fine rate must not be negative, got %s", rate)
	}

	return Options{
		LoanDuration:      cfg.Lending.LoanDuration,
		FineRatePerSecond: rate,
	}, nil
}

// Receipt describes the outcome of a return operation.
type Receipt struct {
	// Loan is the closed loan record.
	Loan domain.Loan
	// Overdue is how far past the due time the book came back; zero for
	// on-time returns.
	Overdue time.Duration
	// Fine is the fine assessed for this return; zero when not overdue.
	Fine decimal.Decimal
	// Balance is the user's fine balance after the fine was added.
	Balance decimal.Decimal
}

// engine is the concrete implementation of the Service interface. It
// coordinates the book catalog, the user ledgers and the loan audit trail.
type engine struct {
	options Options
	storage storage.Storage
	clock   clock.Clock
}

// New creates a lending engine backed by the provided storage, reading time
// from the given clock. Tests inject a mock clock for deterministic fines.
func New(strg storage.Storage, clk clock.Clock, options Options) Service {
	return &engine{
		options: options,
		storage: strg,
		clock:   clk,
	}
}

// Borrow transitions the book from Available to CheckedOut, sets its due time
// to now + LoanDuration, records the book in the user's held set and opens a
// loan record. A checked-out book is rejected without any state change.
func (e *engine) Borrow(ctx context.Context, userID domain.UserID, isbn domain.ISBN) (*domain.Loan, error) {
	// time is read once so the due time and the loan record agree
	now := e.clock.Now()

	user, err := e.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not load user: %w", err)
	}
	if user == nil {
		return nil, semerr.With(semerr.ErrNotFound, "user %q is not registered", userID)
	}

	book, err := e.storage.BookByISBN(ctx, isbn)
	if err != nil {
		return nil, fmt.Errorf("could not load book: %w", err)
	}
	if book == nil {
		return nil, semerr.With(semerr.ErrNotFound, "book %q is not in the catalog", isbn)
	}

	if !book.Available {
		return nil, semerr.With(semerr.ErrUnavailable, "book %q is checked out until %s",
			isbn, book.DueAt.Format(time.RFC3339))
	}

	due := now.Add(e.options.LoanDuration)
	book.CheckOut(due)
	user.RecordBorrow(isbn)

	if _, err := e.storage.UpdateBook(ctx, *book); err != nil {
		return nil, fmt.Errorf("could not update book: %w", err)
	}
	if _, err := e.storage.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}

	loan := domain.Loan{
		ID:         domain.NewLoanID(),
		UserID:     userID,
		ISBN:       isbn,
		BorrowedAt: now,
		DueAt:      due,
		Fine:       decimal.Zero,
	}
	stored, err := e.storage.StoreLoan(ctx, loan)
	if err != nil {
		return nil, fmt.Errorf("could not store loan: %w", err)
	}

	metrics.Borrows.Inc()
	logger.Debug(ctx, "book borrowed",
		zap.String("user_id", string(userID)),
		zap.String("isbn", string(isbn)),
		zap.Time("due_at", due),
	)

	return stored, nil
}

// Return transitions the book back to Available, removes it from the user's
// held set and assesses the overdue fine, if any. The fine is
// overdue-seconds × FineRatePerSecond, added to the user's balance and
// recorded on the closed loan.
func (e *engine) Return(ctx context.Context, userID domain.UserID, isbn domain.ISBN) (*Receipt, error) {
	now := e.clock.Now()

	user, err := e.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not load user: %w", err)
	}
	if user == nil {
		return nil, semerr.With(semerr.ErrNotFound, "user %q is not registered", userID)
	}

	if !user.Holds(isbn) {
		return nil, semerr.With(semerr.ErrNotBorrowed, "user %q has not borrowed book %q", userID, isbn)
	}

	book, err := e.storage.BookByISBN(ctx, isbn)
	if err != nil {
		return nil, fmt.Errorf("could not load book: %w", err)
	}
	if book == nil {
		// a held book cannot leave the catalog, see admin.RemoveBook
		return nil, semerr.With(semerr.ErrInternal, "book %q is held by user %q but missing from the catalog",
			isbn, userID)
	}

	overdue := book.OverdueBy(now)
	fine := decimal.Zero
	if overdue > 0 {
		fine = e.options.FineRatePerSecond.Mul(decimal.NewFromFloat(overdue.Seconds()))
	}

	if err := user.RecordReturn(isbn); err != nil {
		return nil, err
	}
	if err := user.AddFine(fine); err != nil {
		return nil, err
	}
	book.CheckIn()

	if _, err := e.storage.UpdateBook(ctx, *book); err != nil {
		return nil, fmt.Errorf("could not update book: %w", err)
	}
	if _, err := e.storage.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}

	loan, err := e.storage.ActiveLoan(ctx, userID, isbn)
	if err != nil {
		return nil, fmt.Errorf("could not load loan: %w", err)
	}
	if loan == nil {
		return nil, semerr.With(semerr.ErrInternal, "no open loan for user %q and book %q", userID, isbn)
	}
	loan.Close(now, fine)
	if _, err := e.storage.UpdateLoan(ctx, *loan); err != nil {
		return nil, fmt.Errorf("could not update loan: %w", err)
	}

	metrics.Returns.Inc()
	if fine.IsPositive() {
		metrics.OverdueReturns.Inc()
		metrics.FinesAssessed.Add(fine.InexactFloat64())
	}
	logger.Debug(ctx, "book returned",
		zap.String("user_id", string(userID)),
		zap.String("isbn", string(isbn)),
		zap.Duration("overdue", overdue),
		zap.String("fine", fine.String()),
	)

	return &Receipt{
		Loan:    *loan,
		Overdue: overdue,
		Fine:    fine,
		Balance: user.FineBalance,
	}, nil
}

// PayFine applies a payment against the user's outstanding fines. A payment
// exceeding the balance is rejected as a whole.
func (e *engine) PayFine(ctx context.Context, userID domain.UserID, amount decimal.Decimal) (decimal.Decimal, error) {
	user, err := e.storage.UserByID(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not load user: %w", err)
	}
	if user == nil {
		return decimal.Zero, semerr.With(semerr.ErrNotFound, "user %q is not registered", userID)
	}

	if err := user.PayFine(amount); err != nil {
		return decimal.Zero, err
	}

	if _, err := e.storage.UpdateUser(ctx, *user); err != nil {
		return decimal.Zero, fmt.Errorf("could not update user: %w", err)
	}

	metrics.FinePayments.Add(amount.InexactFloat64())
	logger.Debug(ctx, "fine paid",
		zap.String("user_id", string(userID)),
		zap.String("amount", amount.String()),
		zap.String("remaining", user.FineBalance.String()),
	)

	return user.FineBalance, nil
}
