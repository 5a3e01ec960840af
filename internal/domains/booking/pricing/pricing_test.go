package pricing_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"royalpalace/internal/domains/booking/model"
	"royalpalace/internal/domains/booking/pricing"
	"royalpalace/shared/failure"
)

func date(day int) time.Time {
	return time.Date(2026, time.September, day, 0, 0, 0, 0, time.UTC)
}

func TestCalculate(t *testing.T) {
	doubleRate := 200.0

	t.Run("single occupancy without extra bed", func(t *testing.T) {
		quote, err := pricing.Calculate(date(10), date(13), 150, &doubleRate, model.OccupancySingle, false, 30)

		require.NoError(t, err)
		assert.Equal(t, 3, quote.Nights)
		assert.Equal(t, 150.0, quote.NightlyRate)
		assert.Equal(t, 0.0, quote.ExtraBedTotal)
		assert.Equal(t, 450.0, quote.Total)
	})

	t.Run("double occupancy with extra bed", func(t *testing.T) {
		quote, err := pricing.Calculate(date(10), date(13), 150, &doubleRate, model.OccupancyDouble, true, 30)

		require.NoError(t, err)
		assert.Equal(t, 3, quote.Nights)
		assert.Equal(t, 200.0, quote.NightlyRate)
		assert.Equal(t, 90.0, quote.ExtraBedTotal)
		assert.Equal(t, 690.0, quote.Total)
	})

	t.Run("double occupancy falls back to single rate", func(t *testing.T) {
		quote, err := pricing.Calculate(date(10), date(12), 150, nil, model.OccupancyDouble, false, 30)

		require.NoError(t, err)
		assert.Equal(t, 150.0, quote.NightlyRate)
		assert.Equal(t, 300.0, quote.Total)
	})

	t.Run("checkout on checkin day is rejected", func(t *testing.T) {
		_, err := pricing.Calculate(date(10), date(10), 150, &doubleRate, model.OccupancySingle, false, 30)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("checkout before checkin is rejected", func(t *testing.T) {
		_, err := pricing.Calculate(date(13), date(10), 150, &doubleRate, model.OccupancySingle, false, 30)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("time of day does not change the night count", func(t *testing.T) {
		checkIn := time.Date(2026, time.September, 10, 23, 30, 0, 0, time.UTC)
		checkOut := time.Date(2026, time.September, 11, 1, 0, 0, 0, time.UTC)

		quote, err := pricing.Calculate(checkIn, checkOut, 150, nil, model.OccupancySingle, false, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, quote.Nights)
	})
}

func TestCanTransition(t *testing.T) {
	assert.True(t, model.CanTransition(model.StatusConfirmed, model.StatusCancelled))
	assert.True(t, model.CanTransition(model.StatusConfirmed, model.StatusCompleted))
	assert.False(t, model.CanTransition(model.StatusCancelled, model.StatusConfirmed))
	assert.False(t, model.CanTransition(model.StatusCompleted, model.StatusCancelled))
	assert.False(t, model.CanTransition(model.StatusCancelled, model.StatusCompleted))
}
