package reservation

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidWindow = errors.New("window start must be before end")

// Window is the half-open interval [start, end) during which a charger is
// reserved. All instants are UTC; presentation-timezone conversion happens
// outside this package.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}

	return Window{
		start: start.UTC(),
		end:   end.UTC(),
	}, nil
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps reports whether two half-open windows share at least one instant.
// Windows that only touch at a boundary do not overlap, so back-to-back
// reservations are legal.
func (w Window) Overlaps(other Window) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// Covers reports whether t falls inside the window.
func (w Window) Covers(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}

// Extended returns a window whose end is pushed forward by d.
func (w Window) Extended(d time.Duration) Window {
	return Window{start: w.start, end: w.end.Add(d)}
}

// FollowingWindow is the look-ahead interval [anchor, anchor+d) used for
// conflict checks when an end time is about to move.
func FollowingWindow(anchor time.Time, d time.Duration) Window {
	return Window{start: anchor.UTC(), end: anchor.Add(d).UTC()}
}

func (w Window) String() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
