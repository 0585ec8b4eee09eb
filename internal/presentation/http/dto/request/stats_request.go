package request

import (
	"time"
)

// StatsRangeQuery selects an inclusive date range of business days.
// Dates are plain calendar days; the service maps them onto 6 AM
// business day boundaries.
type StatsRangeQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// Range parses both dates in the store's local time zone.
func (q *StatsRangeQuery) Range() (time.Time, time.Time, error) {
	from, err := time.ParseInLocation("2006-01-02", q.From, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.ParseInLocation("2006-01-02", q.To, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
