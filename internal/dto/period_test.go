package dto_test

import (
	"testing"

	"github.com/parcelado-app/parcelado_backend/internal/apperrors"
	"github.com/parcelado-app/parcelado_backend/internal/core/domain"
	"github.com/parcelado-app/parcelado_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodQueryToDomain(t *testing.T) {
	testCases := []struct {
		name      string
		month     int
		year      int
		wantMonth int // internal, zero-based
		wantErr   bool
	}{
		{name: "january", month: 1, year: 2024, wantMonth: 0},
		{name: "december", month: 12, year: 2024, wantMonth: 11},
		{name: "mid year", month: 7, year: 2025, wantMonth: 6},
		{name: "zero month", month: 0, year: 2024, wantErr: true},
		{name: "thirteen", month: 13, year: 2024, wantErr: true},
		{name: "negative", month: -3, year: 2024, wantErr: true},
		{name: "missing year", month: 7, year: 0, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := dto.PeriodQuery{Month: tc.month, Year: tc.year}
			period, err := q.ToDomain()

			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidPeriod)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantMonth, period.Month)
			assert.Equal(t, tc.year, period.Year)
		})
	}
}

func TestToPeriodResponseRoundTrip(t *testing.T) {
	// Every calendar month survives the wire -> domain -> wire round trip.
	for month := 1; month <= 12; month++ {
		q := dto.PeriodQuery{Month: month, Year: 2024}
		period, err := q.ToDomain()
		require.NoError(t, err)

		resp := dto.ToPeriodResponse(period)
		assert.Equal(t, month, resp.Month)
		assert.Equal(t, 2024, resp.Year)
	}
}

func TestToPeriodResponseFromInternal(t *testing.T) {
	resp := dto.ToPeriodResponse(domain.Period{Month: 0, Year: 2024})
	assert.Equal(t, 1, resp.Month)

	resp = dto.ToPeriodResponse(domain.Period{Month: 11, Year: 2024})
	assert.Equal(t, 12, resp.Month)
}
