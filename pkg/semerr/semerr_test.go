package semerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"library/pkg/semerr"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestTaxonomyKindsDistinct(t *testing.T) {
	kinds := []semerr.Kind{
		semerr.ErrNotFound,
		semerr.ErrDuplicate,
		semerr.ErrUnavailable,
		semerr.ErrNotBorrowed,
		semerr.ErrOverpayment,
		semerr.ErrCheckedOut,
		semerr.ErrBadRequest,
		semerr.ErrInternal,
	}
	seen := map[semerr.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("store closed")

	e1 := semerr.With(semerr.ErrNotFound, "book %q not found", "isbn-1")
	require.Equal(t, `book "isbn-1" not found`, e1.Error())

	e2 := semerr.Wrap(semerr.ErrInternal, base, "loading user")
	require.Equal(t, "loading user: store closed", e2.Error())

	e3 := semerr.KindOnly(semerr.ErrUnavailable)
	require.Equal(t, "BOOK_UNAVAILABLE", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := semerr.Wrap(semerr.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, semerr.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, semerr.ErrOverpayment, "errors.Is must not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := semerr.Wrap(semerr.ErrDuplicate, base, "registering")

	var k semerr.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, semerr.ErrDuplicate, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := semerr.Wrap(semerr.ErrCheckedOut, base, "removing book")
	require.Equal(t, semerr.ErrCheckedOut, e.Kind())
	require.Equal(t, "removing book", e.Message())
	require.Equal(t, base, e.Cause())
}
