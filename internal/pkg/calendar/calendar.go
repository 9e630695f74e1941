// Package calendar holds the pure month-grid logic behind the calendar view:
// Gregorian month layout with weeks starting on Sunday, month navigation with
// year rollover, and per-day event bucketing by exact date equality.
package calendar

import "time"

// DateLayout is the calendar-date format used for bucketing
const DateLayout = "2006-01-02"

// Month identifies one displayed month
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// CurrentMonth returns the month containing now
func CurrentMonth(now time.Time) Month {
	return Month{Year: now.Year(), Month: now.Month()}
}

// Next returns the following month, wrapping December into January of the
// next year.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Prev returns the preceding month, wrapping January into December of the
// previous year.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Cell is one day slot in the month grid. Day 0 marks padding cells outside
// the month.
type Cell struct {
	Day       int    `json:"day"`
	Date      string `json:"date,omitempty"`
	HasEvents bool   `json:"hasEvents"`
}

// Week is a Sunday-through-Saturday row of cells
type Week [7]Cell

// Grid lays out the month as weeks starting on Sunday. eventDates holds the
// dates to mark, keyed by their DateLayout string.
func Grid(m Month, eventDates map[string]bool) []Week {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// time.Weekday counts Sunday as 0, which is exactly the leading offset
	offset := int(first.Weekday())

	var weeks []Week
	var current Week
	slot := offset
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
		current[slot] = Cell{
			Day:       day,
			Date:      date,
			HasEvents: eventDates[date],
		}
		slot++
		if slot == 7 {
			weeks = append(weeks, current)
			current = Week{}
			slot = 0
		}
	}
	if slot != 0 {
		weeks = append(weeks, current)
	}
	return weeks
}

// DatedItem is anything that occurs on a single calendar date
type DatedItem interface {
	DateString() string
}

// ItemsOn filters the already-loaded items down to those on the given date
// (exact date-string equality).
func ItemsOn[T DatedItem](items []T, date string) []T {
	var matched []T
	for _, it := range items {
		if it.DateString() == date {
			matched = append(matched, it)
		}
	}
	return matched
}

// MarkedDates collects the set of dates having at least one item
func MarkedDates[T DatedItem](items []T) map[string]bool {
	marked := make(map[string]bool, len(items))
	for _, it := range items {
		marked[it.DateString()] = true
	}
	return marked
}
