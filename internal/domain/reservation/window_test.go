//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"voltbite/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, start, end string) reservation.Window {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)
	w, err := reservation.NewWindow(s, e)
	require.NoError(t, err)
	return w
}

func TestNewWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("rejects start equal to end", func(t *testing.T) {
		_, err := reservation.NewWindow(start, start)
		assert.ErrorIs(t, err, reservation.ErrInvalidWindow)
	})

	t.Run("rejects start after end", func(t *testing.T) {
		_, err := reservation.NewWindow(start, start.Add(-time.Minute))
		assert.ErrorIs(t, err, reservation.ErrInvalidWindow)
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		loc := time.FixedZone("CET", 3600)
		w, err := reservation.NewWindow(start.In(loc), start.Add(time.Hour).In(loc))
		require.NoError(t, err)
		assert.Equal(t, time.UTC, w.Start().Location())
		assert.True(t, w.Start().Equal(start))
	})
}

func TestWindowOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{
			name: "disjoint windows",
			a:    [2]string{"2025-06-01T10:00:00Z", "2025-06-01T10:30:00Z"},
			b:    [2]string{"2025-06-01T11:00:00Z", "2025-06-01T11:30:00Z"},
			want: false,
		},
		{
			name: "partial overlap",
			a:    [2]string{"2025-06-01T10:00:00Z", "2025-06-01T10:30:00Z"},
			b:    [2]string{"2025-06-01T10:15:00Z", "2025-06-01T10:45:00Z"},
			want: true,
		},
		{
			name: "containment",
			a:    [2]string{"2025-06-01T10:00:00Z", "2025-06-01T11:00:00Z"},
			b:    [2]string{"2025-06-01T10:15:00Z", "2025-06-01T10:20:00Z"},
			want: true,
		},
		{
			name: "identical windows",
			a:    [2]string{"2025-06-01T10:00:00Z", "2025-06-01T10:30:00Z"},
			b:    [2]string{"2025-06-01T10:00:00Z", "2025-06-01T10:30:00Z"},
			want: true,
		},
		{
			name: "back-to-back windows never conflict",
			a:    [2]string{"2025-06-01T10:00:00Z", "2025-06-01T10:30:00Z"},
			b:    [2]string{"2025-06-01T10:30:00Z", "2025-06-01T11:00:00Z"},
			want: false,
		},
		{
			name: "single shared boundary instant",
			a:    [2]string{"2025-06-01T10:30:00Z", "2025-06-01T11:00:00Z"},
			b:    [2]string{"2025-06-01T10:00:00Z", "2025-06-01T10:30:00Z"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustWindow(t, tt.a[0], tt.a[1])
			b := mustWindow(t, tt.b[0], tt.b[1])

			assert.Equal(t, tt.want, a.Overlaps(b))
			// Overlap is symmetric regardless of argument order.
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
		})
	}
}

func TestWindowCovers(t *testing.T) {
	w := mustWindow(t, "2025-06-01T10:00:00Z", "2025-06-01T10:30:00Z")

	assert.True(t, w.Covers(w.Start()), "start is inside the half-open interval")
	assert.False(t, w.Covers(w.End()), "end is outside the half-open interval")
	assert.True(t, w.Covers(w.Start().Add(15*time.Minute)))
	assert.False(t, w.Covers(w.Start().Add(-time.Second)))
}

func TestWindowExtended(t *testing.T) {
	w := mustWindow(t, "2025-06-01T10:00:00Z", "2025-06-01T10:30:00Z")
	extended := w.Extended(5 * time.Minute)

	assert.True(t, extended.Start().Equal(w.Start()))
	assert.Equal(t, 35*time.Minute, extended.Duration())
}

func TestFollowingWindow(t *testing.T) {
	anchor := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	w := reservation.FollowingWindow(anchor, 10*time.Minute)

	assert.True(t, w.Start().Equal(anchor))
	assert.Equal(t, 10*time.Minute, w.Duration())

	// The look-ahead window starts exactly where the reservation ends, so the
	// reservation being extended never conflicts with itself.
	existing := mustWindow(t, "2025-06-01T10:00:00Z", "2025-06-01T10:30:00Z")
	assert.False(t, existing.Overlaps(w))
}
