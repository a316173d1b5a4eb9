// Package birthday implements the recurring-date window query used for
// upcoming-birthday lookups. All arithmetic happens in day-of-year space so a
// window can wrap over the year boundary without touching calendar years.
package birthday

import (
	"time"

	"contacthub/internal/domain/entity"
)

// Window is an inclusive range of day-of-year ordinals, possibly wrapping
// past the end of the current year.
type Window struct {
	start   int
	end     int
	yearLen int
	empty   bool
}

// NewWindow builds the window covering the next windowDays days from today.
// With includeToday the window starts at today itself, otherwise at tomorrow.
// windowDays = 0 with includeToday still matches exact-today dates.
func NewWindow(today time.Time, windowDays int, includeToday bool) Window {
	todayDoy := today.YearDay()
	yearLen := yearLength(today.Year())

	start := todayDoy + 1
	if includeToday {
		start = todayDoy
	}
	end := todayDoy + windowDays - 1
	if includeToday && end < todayDoy {
		// A zero-length window that includes today degenerates to today only.
		end = todayDoy
	}

	return Window{
		start:   start,
		end:     end,
		yearLen: yearLen,
		empty:   end < start,
	}
}

// Contains reports whether the date's recurring day-of-year falls inside the
// window. The date's year is ignored; both boundaries are inclusive.
func (w Window) Contains(date time.Time) bool {
	if w.empty {
		return false
	}

	doy := date.YearDay()
	if w.end <= w.yearLen {
		return doy >= w.start && doy <= w.end
	}

	// The window wraps: [start, yearLen] in this year plus [1, end-yearLen]
	// at the start of the next.
	return doy >= w.start || doy <= w.end-w.yearLen
}

// Filter returns the subset of contacts whose birthday falls inside the
// window anchored at today.
func Filter(contacts []*entity.Contact, today time.Time, windowDays int, includeToday bool) []*entity.Contact {
	window := NewWindow(today, windowDays, includeToday)

	var matched []*entity.Contact
	for _, contact := range contacts {
		if window.Contains(contact.Birthday) {
			matched = append(matched, contact)
		}
	}

	return matched
}

// yearLength returns 366 for leap years, otherwise 365.
func yearLength(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}
