package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"library/pkg/domain"
	"library/pkg/storage"
	"library/pkg/storage/memory"
)

func TestStoreBookRejectsDuplicateISBN(t *testing.T) {
	ctx := context.Background()
	m := memory.New()

	_, err := m.StoreBook(ctx, domain.NewBook("Dune", "Frank Herbert", "isbn-1"))
	require.NoError(t, err)

	_, err = m.StoreBook(ctx, domain.NewBook("Dune (reprint)", "Frank Herbert", "isbn-1"))
	require.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestBooksKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	m := memory.New()

	for _, isbn := range []domain.ISBN{"c", "a", "b"} {
		_, err := m.StoreBook(ctx, domain.NewBook(string(isbn), "author", isbn))
		require.NoError(t, err)
	}

	books, err := m.Books(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)
	require.Equal(t, domain.ISBN("c"), books[0].ISBN)
	require.Equal(t, domain.ISBN("a"), books[1].ISBN)
	require.Equal(t, domain.ISBN("b"), books[2].ISBN)

	// deleting from the middle keeps the remaining order
	deleted, err := m.DeleteBook(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, deleted)

	books, err = m.Books(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.Equal(t, domain.ISBN("c"), books[0].ISBN)
	require.Equal(t, domain.ISBN("b"), books[1].ISBN)
}

func TestLookupsReturnNilWhenAbsent(t *testing.T) {
	ctx := context.Background()
	m := memory.New()

	book, err := m.BookByISBN(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, book)

	user, err := m.UserByID(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, user)

	deleted, err := m.DeleteBook(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, deleted)

	updated, err := m.UpdateBook(ctx, domain.NewBook("t", "a", "missing"))
	require.NoError(t, err)
	require.Nil(t, updated)
}

func TestStoredRecordsDoNotAliasCallerState(t *testing.T) {
	ctx := context.Background()
	m := memory.New()

	book := domain.NewBook("Dune", "Frank Herbert", "isbn-1")
	stored, err := m.StoreBook(ctx, book)
	require.NoError(t, err)

	// mutating what the caller holds must not touch the store
	stored.CheckOut(time.Now())
	book.CheckOut(time.Now())

	fetched, err := m.BookByISBN(ctx, "isbn-1")
	require.NoError(t, err)
	require.True(t, fetched.Available)
	require.Nil(t, fetched.DueAt)
}

func TestUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := memory.New()

	u := domain.NewUser("Ada", "U001")
	_, err := m.StoreUser(ctx, u)
	require.NoError(t, err)

	_, err = m.StoreUser(ctx, domain.NewUser("Imposter", "U001"))
	require.ErrorIs(t, err, storage.ErrDuplicateKey)

	u.RecordBorrow("isbn-1")
	require.NoError(t, u.AddFine(decimal.NewFromInt(4)))

	updated, err := m.UpdateUser(ctx, u)
	require.NoError(t, err)
	require.NotNil(t, updated)

	fetched, err := m.UserByID(ctx, "U001")
	require.NoError(t, err)
	require.Equal(t, []domain.ISBN{"isbn-1"}, fetched.Borrowed)
	require.True(t, fetched.FineBalance.Equal(decimal.NewFromInt(4)))
}

func TestActiveLoanScansOpenLoansOnly(t *testing.T) {
	ctx := context.Background()
	m := memory.New()

	closed := domain.Loan{
		ID:         domain.NewLoanID(),
		UserID:     "U001",
		ISBN:       "isbn-1",
		BorrowedAt: time.Now(),
		DueAt:      time.Now(),
		Fine:       decimal.Zero,
	}
	closed.Close(time.Now(), decimal.Zero)
	_, err := m.StoreLoan(ctx, closed)
	require.NoError(t, err)

	open := domain.Loan{
		ID:         domain.NewLoanID(),
		UserID:     "U001",
		ISBN:       "isbn-1",
		BorrowedAt: time.Now(),
		DueAt:      time.Now(),
		Fine:       decimal.Zero,
	}
	_, err = m.StoreLoan(ctx, open)
	require.NoError(t, err)

	found, err := m.ActiveLoan(ctx, "U001", "isbn-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, open.ID, found.ID)

	none, err := m.ActiveLoan(ctx, "U002", "isbn-1")
	require.NoError(t, err)
	require.Nil(t, none)

	loans, err := m.UserLoans(ctx, "U001")
	require.NoError(t, err)
	require.Len(t, loans, 2)
}

func TestClosedStoreRejectsOperations(t *testing.T) {
	ctx := context.Background()
	m := memory.New()
	require.NoError(t, m.Close())

	_, err := m.Books(ctx)
	require.ErrorIs(t, err, storage.ErrClosed)

	_, err = m.StoreBook(ctx, domain.NewBook("t", "a", "i"))
	require.ErrorIs(t, err, storage.ErrClosed)
}
