// Package memory provides the in-memory storage backend. All records live in
// process memory and are lost when the process exits, which matches the
// service's lifetime. Records are stored and returned by value (deep-cloned)
// so callers never share state with the store.
package memory

import (
	"sync"

	"library/pkg/domain"
)

// Memory is an in-memory implementation of storage.Storage. A single RWMutex
// serializes all access so the store can be shared with auxiliary goroutines
// such as the ops server.
type Memory struct {
	mu     sync.RWMutex
	closed bool

	books     map[domain.ISBN]domain.Book
	bookOrder []domain.ISBN

	users map[domain.UserID]domain.User

	loans     map[domain.LoanID]domain.Loan
	loanOrder []domain.LoanID
}

// New creates an empty in-memory store.
func New() *Memory {
	return &Memory{
		books: make(map[domain.ISBN]domain.Book),
		users: make(map[domain.UserID]domain.User),
		loans: make(map[domain.LoanID]domain.Loan),
	}
}

// Close marks the store as closed. Further operations fail with
// storage.ErrClosed.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true

	return nil
}
