package domain

import "time"

// ISBN uniquely identifies a book in the catalog.
// It is a thin wrapper around string to provide type safety at the domain layer.
type ISBN string

// Book represents a single physical book in the catalog.
//
// Availability and DueAt move together: DueAt is non-nil exactly when the book
// is checked out. CheckOut and CheckIn are the only mutators, which keeps that
// invariant in one place.
type Book struct {
	// ISBN is the unique, immutable identifier of the book.
	ISBN ISBN `json:"isbn"`
	// Title is the display title of the book.
	Title string `json:"title"`
	// Author is the display author of the book.
	Author string `json:"author"`

	// Available reports whether the book can currently be borrowed.
	Available bool `json:"available"`
	// DueAt is the time the current loan is due. It is nil while the book is
	// on the shelf.
	DueAt *time.Time `json:"dueAt,omitempty"`
}

// NewBook creates a book that is on the shelf and available for borrowing.
func NewBook(title, author string, isbn ISBN) Book {
	return Book{
		ISBN:      isbn,
		Title:     title,
		Author:    author,
		Available: true,
	}
}

// CheckOut marks the book as borrowed with the given due time.
func (b *Book) CheckOut(due time.Time) {
	b.Available = false
	b.DueAt = &due
}

// CheckIn marks the book as returned and clears its due time.
func (b *Book) CheckIn() {
	b.Available = true
	b.DueAt = nil
}

// OverdueBy returns how far past its due time the book is at the given moment.
// It returns zero when the book is not checked out or not yet due.
func (b *Book) OverdueBy(now time.Time) time.Duration {
	if b.DueAt == nil {
		return 0
	}
	overdue := now.Sub(*b.DueAt)
	if overdue < 0 {
		return 0
	}

	return overdue
}

// Clone returns a deep copy of the book. DueAt is copied so mutating the clone
// never aliases the original.
func (b Book) Clone() Book {
	c := b
	if b.DueAt != nil {
		due := *b.DueAt
		c.DueAt = &due
	}

	return c
}
