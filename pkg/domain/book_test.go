package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"library/pkg/domain"
)

func TestNewBookStartsAvailable(t *testing.T) {
	b := domain.NewBook("The Go Programming Language", "Donovan & Kernighan", "978-0134190440")

	require.True(t, b.Available)
	require.Nil(t, b.DueAt, "an available book must not carry a due time")
}

func TestCheckOutCheckInKeepInvariant(t *testing.T) {
	b := domain.NewBook("SICP", "Abelson & Sussman", "978-0262510875")
	due := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	b.CheckOut(due)
	require.False(t, b.Available)
	require.NotNil(t, b.DueAt)
	require.True(t, b.DueAt.Equal(due))

	b.CheckIn()
	require.True(t, b.Available)
	require.Nil(t, b.DueAt, "checking in must clear the due time")
}

func TestOverdueBy(t *testing.T) {
	due := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{
			name: "before due time",
			now:  due.Add(-3 * time.Second),
			want: 0,
		},
		{
			name: "exactly at due time",
			now:  due,
			want: 0,
		},
		{
			name: "past due time",
			now:  due.Add(2 * time.Second),
			want: 2 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := domain.NewBook("t", "a", "i")
			b.CheckOut(due)
			require.Equal(t, tt.want, b.OverdueBy(tt.now))
		})
	}

	t.Run("not checked out", func(t *testing.T) {
		b := domain.NewBook("t", "a", "i")
		require.Equal(t, time.Duration(0), b.OverdueBy(due.Add(time.Hour)))
	})
}

func TestBookCloneDoesNotAlias(t *testing.T) {
	b := domain.NewBook("t", "a", "i")
	b.CheckOut(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	c := b.Clone()
	c.CheckIn()

	require.False(t, b.Available, "clone mutation leaked into the original")
	require.NotNil(t, b.DueAt)
}
