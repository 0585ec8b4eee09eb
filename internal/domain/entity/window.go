package entity

import (
	"fmt"
	"time"
)

// Business-day rollover: canteen sales run across midnight with the
// theatre show timings, so a sales day is 06:00 to 05:59:59 the next
// calendar day rather than midnight to midnight.
const (
	businessDayStartHour = 6
)

// BusinessDayWindow is the resolved date-time interval for a calendar
// [FromDate, ToDate] selection. Both Start and End are inclusive.
type BusinessDayWindow struct {
	FromDate time.Time `json:"from_date"`
	ToDate   time.Time `json:"to_date"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// ResolveBusinessDayWindow converts a calendar date range into the
// 06:00-to-05:59:59 window. from and to carry no time component.
func ResolveBusinessDayWindow(from, to time.Time) (BusinessDayWindow, error) {
	if to.Before(from) {
		return BusinessDayWindow{}, fmt.Errorf("invalid date range: %s is before %s",
			to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	start := time.Date(from.Year(), from.Month(), from.Day(), businessDayStartHour, 0, 0, 0, from.Location())
	dayAfter := to.AddDate(0, 0, 1)
	end := time.Date(dayAfter.Year(), dayAfter.Month(), dayAfter.Day(), businessDayStartHour-1, 59, 59, 0, to.Location())

	return BusinessDayWindow{
		FromDate: from,
		ToDate:   to,
		Start:    start,
		End:      end,
	}, nil
}

// Contains reports whether t falls inside the window. The boundary
// instants themselves are in range.
func (w BusinessDayWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
