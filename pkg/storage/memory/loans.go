package memory

import (
	"context"

	"library/pkg/domain"
	"library/pkg/storage"
)

// StoreLoan inserts a new loan record. Insertion order is preserved for
// UserLoans.
func (m *Memory) StoreLoan(_ context.Context, loan domain.Loan) (*domain.Loan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, storage.ErrClosed
	}

	if _, ok := m.loans[loan.ID]; ok {
		return nil, storage.ErrDuplicateKey
	}

	m.loans[loan.ID] = loan.Clone()
	m.loanOrder = append(m.loanOrder, loan.ID)

	stored := loan.Clone()

	return &stored, nil
}

// UpdateLoan replaces the record stored under the loan's ID.
func (m *Memory) UpdateLoan(_ context.Context, loan domain.Loan) (*domain.Loan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, storage.ErrClosed
	}

	if _, ok := m.loans[loan.ID]; !ok {
		return nil, nil
	}

	m.loans[loan.ID] = loan.Clone()
	updated := loan.Clone()

	return &updated, nil
}

// ActiveLoan returns the open loan of the user for the given book, or nil.
// At most one open loan can exist per book because the lending engine refuses
// to lend a checked-out book.
func (m *Memory) ActiveLoan(_ context.Context, userID domain.UserID, isbn domain.ISBN) (*domain.Loan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, storage.ErrClosed
	}

	for _, id := range m.loanOrder {
		loan := m.loans[id]
		if loan.UserID == userID && loan.ISBN == isbn && loan.Active() {
			found := loan.Clone()

			return &found, nil
		}
	}

	return nil, nil
}

// UserLoans returns all loans of the user in insertion order.
func (m *Memory) UserLoans(_ context.Context, userID domain.UserID) ([]domain.Loan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, storage.ErrClosed
	}

	var loans []domain.Loan
	for _, id := range m.loanOrder {
		loan := m.loans[id]
		if loan.UserID == userID {
			loans = append(loans, loan.Clone())
		}
	}

	return loans, nil
}
