// Package semerr provides semantic error kinds for the library service.
// A Kind is a comparable sentinel describing the category of a failure
// (not found, duplicate identifier, overpayment, ...). Operations return an
// *Error that carries a Kind, an optional wrapped cause and an optional
// message, and that cooperates with errors.Is/errors.As for both.
package semerr

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It distinguishes semantic sentinels from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind with the given name. Kinds are
// comparable sentinels and match through errors.Is on the Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// The error taxonomy of the lending domain. Every operation of the catalog,
// the ledger and the lending engine fails with exactly one of these kinds.
var (
	// ErrNotFound indicates an unknown book or user identifier.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrDuplicate indicates an identifier collision when creating a book or user.
	ErrDuplicate = NewKind("DUPLICATE_IDENTIFIER")
	// ErrUnavailable indicates a borrow attempt on a book that is checked out.
	ErrUnavailable = NewKind("BOOK_UNAVAILABLE")
	// ErrNotBorrowed indicates a return of a book the user does not hold.
	ErrNotBorrowed = NewKind("NOT_BORROWED_BY_USER")
	// ErrOverpayment indicates a fine payment exceeding the user's balance.
	// No part of such a payment is applied.
	ErrOverpayment = NewKind("OVERPAYMENT_REJECTED")
	// ErrCheckedOut indicates a removal attempt on a book that is on loan.
	ErrCheckedOut = NewKind("BOOK_CHECKED_OUT")
	// ErrBadRequest indicates the caller supplied invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrInternal indicates an invariant violation inside the service.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional human-readable message.
//
// Matching semantics: errors.Is(err, target) matches when target is the kind
// sentinel or anything in the wrapped cause chain; errors.As behaves
// accordingly.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
// Use Wrap to also attach a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind, wrapping cause err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly constructs a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface. The message and cause are joined with
// ": "; when neither is set the kind's name is used.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As traversal.
func (e *Error) Unwrap() error { return e.err }

// Is matches against the kind sentinel as well as the wrapped cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As matches against the kind sentinel as well as the wrapped cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the semantic kind of this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, which may be nil.
func (e *Error) Cause() error { return e.err }
