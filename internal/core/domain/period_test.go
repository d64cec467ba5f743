package domain_test

import (
	"testing"
	"time"

	"github.com/parcelado-app/parcelado_backend/internal/apperrors"
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriodFromCalendar(t *testing.T) {
	tests := []struct {
		name      string
		month     int
		year      int
		want      domain.Period
		wantErr   bool
	}{
		{"january maps to internal month 0", 1, 2024, domain.Period{Month: 0, Year: 2024}, false},
		{"december maps to internal month 11", 12, 2024, domain.Period{Month: 11, Year: 2024}, false},
		{"mid-year month", 6, 2025, domain.Period{Month: 5, Year: 2025}, false},
		{"month zero is rejected", 0, 2024, domain.Period{}, true},
		{"month thirteen is rejected", 13, 2024, domain.Period{}, true},
		{"negative month is rejected", -3, 2024, domain.Period{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := domain.NewPeriodFromCalendar(tt.month, tt.year)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidPeriod)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
			// The conversion must round-trip back to calendar form.
			assert.Equal(t, tt.month, p.CalendarMonth())
		})
	}
}

func TestPeriod_NextPrevious(t *testing.T) {
	tests := []struct {
		name string
		from domain.Period
		next domain.Period
		prev domain.Period
	}{
		{
			name: "mid-year moves by one month",
			from: domain.Period{Month: 5, Year: 2024},
			next: domain.Period{Month: 6, Year: 2024},
			prev: domain.Period{Month: 4, Year: 2024},
		},
		{
			name: "december rolls the year forward",
			from: domain.Period{Month: 11, Year: 2024},
			next: domain.Period{Month: 0, Year: 2025},
			prev: domain.Period{Month: 10, Year: 2024},
		},
		{
			name: "january rolls the year backward",
			from: domain.Period{Month: 0, Year: 2024},
			next: domain.Period{Month: 1, Year: 2024},
			prev: domain.Period{Month: 11, Year: 2023},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.next, tt.from.Next())
			assert.Equal(t, tt.prev, tt.from.Previous())
			// Next and Previous are inverses.
			assert.Equal(t, tt.from, tt.from.Next().Previous())
			assert.Equal(t, tt.from, tt.from.Previous().Next())
		})
	}
}

func TestPeriod_MonthsSince(t *testing.T) {
	start := domain.Period{Month: 0, Year: 2024}

	assert.Equal(t, 0, start.MonthsSince(start))
	assert.Equal(t, 5, domain.Period{Month: 5, Year: 2024}.MonthsSince(start))
	assert.Equal(t, 12, domain.Period{Month: 0, Year: 2025}.MonthsSince(start))
	assert.Equal(t, -1, domain.Period{Month: 11, Year: 2023}.MonthsSince(start))

	// Walking an arbitrary number of Next calls matches the arithmetic.
	v := start
	for i := 0; i <= 30; i++ {
		assert.Equal(t, i, v.MonthsSince(start))
		v = v.Next()
	}
}

func TestCurrentPeriod(t *testing.T) {
	assert.Equal(t, domain.Period{Month: 0, Year: 2024},
		domain.CurrentPeriod(time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, domain.Period{Month: 11, Year: 2025},
		domain.CurrentPeriod(time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC)))
}

func TestPeriod_String(t *testing.T) {
	assert.Equal(t, "2024-01", domain.Period{Month: 0, Year: 2024}.String())
	assert.Equal(t, "2025-12", domain.Period{Month: 11, Year: 2025}.String())
}
