package domain

import (
	"fmt"
	"time"

	"github.com/parcelado-app/parcelado_backend/internal/apperrors"
)

// Period is a billing period: a (month, year) pair. Month is zero-based
// (January = 0) so clock arithmetic stays simple; the API boundary speaks
// calendar months 1-12 and must convert through NewPeriodFromCalendar and
// CalendarMonth. Years are unbounded.
type Period struct {
	Month int `json:"month"` // 0-11
	Year  int `json:"year"`
}

// NewPeriodFromCalendar builds a Period from a calendar (1-12) month.
// Returns ErrInvalidPeriod when the month is outside that range.
func NewPeriodFromCalendar(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month %d", apperrors.ErrInvalidPeriod, month)
	}
	return Period{Month: month - 1, Year: year}, nil
}

// CurrentPeriod returns the period containing the given instant.
func CurrentPeriod(now time.Time) Period {
	return Period{Month: int(now.Month()) - 1, Year: now.Year()}
}

// CalendarMonth returns the month in calendar form (1-12).
func (p Period) CalendarMonth() int {
	return p.Month + 1
}

// Next returns the period one month ahead, rolling the year at December.
func (p Period) Next() Period {
	if p.Month == 11 {
		return Period{Month: 0, Year: p.Year + 1}
	}
	return Period{Month: p.Month + 1, Year: p.Year}
}

// Previous returns the period one month back, rolling the year at January.
func (p Period) Previous() Period {
	if p.Month == 0 {
		return Period{Month: 11, Year: p.Year - 1}
	}
	return Period{Month: p.Month - 1, Year: p.Year}
}

// MonthsSince returns the number of whole months from start to p. Negative
// when p precedes start.
func (p Period) MonthsSince(start Period) int {
	return (p.Year-start.Year)*12 + (p.Month - start.Month)
}

// Valid reports whether the internal month is within 0-11.
func (p Period) Valid() bool {
	return p.Month >= 0 && p.Month <= 11
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.CalendarMonth())
}
