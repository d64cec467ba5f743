package dto

import (
	"fmt"

	"github.com/parcelado-app/parcelado_backend/internal/apperrors"
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
)

// PeriodQuery binds the viewing period from query parameters. The wire form
// is a calendar (1-12) month; domain code works on 0-11, so every request
// goes through ToDomain and every response through PeriodResponse. Omitting
// both parameters selects the current period; providing only one is an
// error. The calmonth validation is registered at startup on gin's
// validator engine.
type PeriodQuery struct {
	Month int `form:"month" binding:"omitempty,calmonth"`
	Year  int `form:"year"`
}

// IsZero reports whether neither parameter was provided.
func (q PeriodQuery) IsZero() bool {
	return q.Month == 0 && q.Year == 0
}

// ToDomain converts the calendar period to the internal zero-based form.
func (q PeriodQuery) ToDomain() (domain.Period, error) {
	if q.Year <= 0 {
		return domain.Period{}, fmt.Errorf("%w: year %d", apperrors.ErrInvalidPeriod, q.Year)
	}
	return domain.NewPeriodFromCalendar(q.Month, q.Year)
}

// PeriodResponse is the wire form of a period: calendar month 1-12.
type PeriodResponse struct {
	Month int `json:"month"` // 1-12
	Year  int `json:"year"`
}

// ToPeriodResponse converts an internal period back to calendar form.
func ToPeriodResponse(p domain.Period) PeriodResponse {
	return PeriodResponse{Month: p.CalendarMonth(), Year: p.Year}
}
