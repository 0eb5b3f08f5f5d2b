package stay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-PlanningService/pkg/calendar"
)

func newCalculator(t *testing.T) (*Calculator, *calendar.Calendar) {
	t.Helper()
	cal, err := calendar.New("Asia/Bangkok")
	require.NoError(t, err)
	return NewCalculator(cal), cal
}

func TestNights(t *testing.T) {
	calc, cal := newCalculator(t)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
		wantErr  error
	}{
		{
			name:     "three nights",
			checkIn:  time.Date(2024, 6, 10, 0, 0, 0, 0, cal.Location()),
			checkOut: time.Date(2024, 6, 13, 0, 0, 0, 0, cal.Location()),
			expected: 3,
		},
		{
			name:     "single night",
			checkIn:  time.Date(2024, 6, 10, 0, 0, 0, 0, cal.Location()),
			checkOut: time.Date(2024, 6, 11, 0, 0, 0, 0, cal.Location()),
			expected: 1,
		},
		{
			name:     "time of day ignored",
			checkIn:  time.Date(2024, 6, 10, 23, 30, 0, 0, cal.Location()),
			checkOut: time.Date(2024, 6, 13, 0, 15, 0, 0, cal.Location()),
			expected: 3,
		},
		{
			name:     "same day is invalid",
			checkIn:  time.Date(2024, 6, 10, 8, 0, 0, 0, cal.Location()),
			checkOut: time.Date(2024, 6, 10, 20, 0, 0, 0, cal.Location()),
			wantErr:  ErrInvalidRange,
		},
		{
			name:     "check-out before check-in is invalid",
			checkIn:  time.Date(2024, 6, 13, 0, 0, 0, 0, cal.Location()),
			checkOut: time.Date(2024, 6, 10, 0, 0, 0, 0, cal.Location()),
			wantErr:  ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nights, err := calc.Nights(tt.checkIn, tt.checkOut)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, nights)
		})
	}
}

func TestDeriveCheckout(t *testing.T) {
	calc, cal := newCalculator(t)

	checkIn := time.Date(2024, 6, 10, 0, 0, 0, 0, cal.Location())

	checkOut, err := calc.DeriveCheckout(checkIn, 3)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 13, 0, 0, 0, 0, cal.Location()), checkOut)
}

func TestDeriveCheckout_InvalidNights(t *testing.T) {
	calc, cal := newCalculator(t)

	checkIn := time.Date(2024, 6, 10, 0, 0, 0, 0, cal.Location())

	for _, nights := range []int{0, -1} {
		_, err := calc.DeriveCheckout(checkIn, nights)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

// Число ночей и производная дата выезда взаимно обратны
func TestNightsAndDeriveCheckoutRoundTrip(t *testing.T) {
	calc, cal := newCalculator(t)

	checkIn := time.Date(2024, 6, 10, 0, 0, 0, 0, cal.Location())

	for nights := 1; nights <= 30; nights++ {
		checkOut, err := calc.DeriveCheckout(checkIn, nights)
		require.NoError(t, err)

		back, err := calc.Nights(checkIn, checkOut)
		require.NoError(t, err)
		assert.Equal(t, nights, back)
	}
}

// Сдвиг обеих дат на одно и то же число дней не меняет длительность
func TestNights_ShiftInvariance(t *testing.T) {
	calc, cal := newCalculator(t)

	checkIn := time.Date(2024, 6, 10, 0, 0, 0, 0, cal.Location())
	checkOut := time.Date(2024, 6, 13, 0, 0, 0, 0, cal.Location())

	base, err := calc.Nights(checkIn, checkOut)
	require.NoError(t, err)

	for _, shift := range []int{1, 7, 30, 365} {
		shifted, err := calc.Nights(checkIn.AddDate(0, 0, shift), checkOut.AddDate(0, 0, shift))
		require.NoError(t, err)
		assert.Equal(t, base, shifted)
	}
}

func TestTotalAmount(t *testing.T) {
	tests := []struct {
		name         string
		ratePerNight float64
		nights       int
		expected     float64
		wantErr      error
	}{
		{
			name:         "three nights at 1200",
			ratePerNight: 1200.00,
			nights:       3,
			expected:     3600.00,
		},
		{
			name:         "single night",
			ratePerNight: 850.50,
			nights:       1,
			expected:     850.50,
		},
		{
			name:         "rounded to currency precision",
			ratePerNight: 99.99,
			nights:       3,
			expected:     299.97,
		},
		{
			name:         "zero rate is allowed",
			ratePerNight: 0,
			nights:       5,
			expected:     0,
		},
		{
			name:         "zero nights is invalid",
			ratePerNight: 1200.00,
			nights:       0,
			wantErr:      ErrInvalidInput,
		},
		{
			name:         "negative rate is invalid",
			ratePerNight: -10.00,
			nights:       2,
			wantErr:      ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := TotalAmount(tt.ratePerNight, tt.nights)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.expected, total, 0.001)
		})
	}
}

func TestNormalize(t *testing.T) {
	calc, cal := newCalculator(t)

	moment := time.Date(2024, 6, 10, 17, 45, 0, 0, cal.Location())
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, cal.Location()), calc.Normalize(moment))
}
