package memory

import (
	"context"

	"library/pkg/domain"
	"library/pkg/storage"
)

// StoreUser inserts a new user.
func (m *Memory) StoreUser(_ context.Context, user domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, storage.ErrClosed
	}

	if _, ok := m.users[user.ID]; ok {
		return nil, storage.ErrDuplicateKey
	}

	m.users[user.ID] = user.Clone()
	stored := user.Clone()

	return &stored, nil
}

// UserByID fetches a user by ID, returning nil when absent.
func (m *Memory) UserByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, storage.ErrClosed
	}

	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	found := user.Clone()

	return &found, nil
}

// UpdateUser replaces the record stored under the user's ID.
func (m *Memory) UpdateUser(_ context.Context, user domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, storage.ErrClosed
	}

	if _, ok := m.users[user.ID]; !ok {
		return nil, nil
	}

	m.users[user.ID] = user.Clone()
	updated := user.Clone()

	return &updated, nil
}
