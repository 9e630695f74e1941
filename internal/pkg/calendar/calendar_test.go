package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthNext(t *testing.T) {
	assert.Equal(t, Month{Year: 2026, Month: time.March}, Month{Year: 2026, Month: time.February}.Next())
	assert.Equal(t, Month{Year: 2027, Month: time.January}, Month{Year: 2026, Month: time.December}.Next())
}

func TestMonthPrev(t *testing.T) {
	assert.Equal(t, Month{Year: 2026, Month: time.January}, Month{Year: 2026, Month: time.February}.Prev())
	assert.Equal(t, Month{Year: 2025, Month: time.December}, Month{Year: 2026, Month: time.January}.Prev())
}

func TestCurrentMonth(t *testing.T) {
	now := time.Date(2026, time.August, 29, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, Month{Year: 2026, Month: time.August}, CurrentMonth(now))
}

func TestGridExactWeeks(t *testing.T) {
	// February 2026 starts on a Sunday and has 28 days, so the grid has
	// exactly four full weeks with no padding cells.
	weeks := Grid(Month{Year: 2026, Month: time.February}, nil)

	require.Len(t, weeks, 4)
	assert.Equal(t, 1, weeks[0][0].Day)
	assert.Equal(t, "2026-02-01", weeks[0][0].Date)
	assert.Equal(t, 28, weeks[3][6].Day)
	assert.Equal(t, "2026-02-28", weeks[3][6].Date)
}

func TestGridLeadingAndTrailingPadding(t *testing.T) {
	// September 2026 starts on a Tuesday and has 30 days.
	weeks := Grid(Month{Year: 2026, Month: time.September}, nil)

	require.Len(t, weeks, 5)
	assert.Equal(t, 0, weeks[0][0].Day)
	assert.Equal(t, 0, weeks[0][1].Day)
	assert.Equal(t, 1, weeks[0][2].Day)
	assert.Equal(t, 30, weeks[4][3].Day)
	assert.Equal(t, 0, weeks[4][4].Day)

	days := 0
	for _, week := range weeks {
		for _, cell := range week {
			if cell.Day != 0 {
				days++
			}
		}
	}
	assert.Equal(t, 30, days)
}

func TestGridMarksEventDates(t *testing.T) {
	weeks := Grid(Month{Year: 2026, Month: time.February}, map[string]bool{
		"2026-02-14": true,
	})

	for _, week := range weeks {
		for _, cell := range week {
			if cell.Date == "2026-02-14" {
				assert.True(t, cell.HasEvents)
			} else {
				assert.False(t, cell.HasEvents)
			}
		}
	}
}

type datedString string

func (d datedString) DateString() string { return string(d) }

func TestItemsOn(t *testing.T) {
	items := []datedString{"2026-02-14", "2026-02-15", "2026-02-14"}

	matched := ItemsOn(items, "2026-02-14")
	assert.Len(t, matched, 2)

	assert.Empty(t, ItemsOn(items, "2026-03-01"))
}

func TestMarkedDates(t *testing.T) {
	items := []datedString{"2026-02-14", "2026-02-15", "2026-02-14"}

	marked := MarkedDates(items)
	assert.Len(t, marked, 2)
	assert.True(t, marked["2026-02-14"])
	assert.True(t, marked["2026-02-15"])
	assert.False(t, marked["2026-02-16"])
}
