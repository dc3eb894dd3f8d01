package memory

import (
	"context"

	"library/pkg/domain"
	"library/pkg/storage"
)

// StoreBook inserts a new book. Insertion order is preserved for Books.
func (m *Memory) StoreBook(_ context.Context, book domain.Book) (*domain.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, storage.ErrClosed
	}

	if _, ok := m.books[book.ISBN]; ok {
		return nil, storage.ErrDuplicateKey
	}

	m.books[book.ISBN] = book.Clone()
	m.bookOrder = append(m.bookOrder, book.ISBN)

	stored := book.Clone()

	return &stored, nil
}

// BookByISBN fetches a book by ISBN, returning nil when absent.
func (m *Memory) BookByISBN(_ context.Context, isbn domain.ISBN) (*domain.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, storage.ErrClosed
	}

	book, ok := m.books[isbn]
	if !ok {
		return nil, nil
	}
	found := book.Clone()

	return &found, nil
}

// UpdateBook replaces the record stored under the book's ISBN.
func (m *Memory) UpdateBook(_ context.Context, book domain.Book) (*domain.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, storage.ErrClosed
	}

	if _, ok := m.books[book.ISBN]; !ok {
		return nil, nil
	}

	m.books[book.ISBN] = book.Clone()
	updated := book.Clone()

	return &updated, nil
}

// DeleteBook removes a book and returns the deleted record, or nil when absent.
func (m *Memory) DeleteBook(_ context.Context, isbn domain.ISBN) (*domain.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, storage.ErrClosed
	}

	book, ok := m.books[isbn]
	if !ok {
		return nil, nil
	}

	delete(m.books, isbn)
	for i, id := range m.bookOrder {
		if id == isbn {
			m.bookOrder = append(m.bookOrder[:i], m.bookOrder[i+1:]...)

			break
		}
	}

	deleted := book.Clone()

	return &deleted, nil
}

// Books returns all books in insertion order.
func (m *Memory) Books(_ context.Context) ([]domain.Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, storage.ErrClosed
	}

	books := make([]domain.Book, 0, len(m.bookOrder))
	for _, isbn := range m.bookOrder {
		books = append(books, m.books[isbn].Clone())
	}

	return books, nil
}
