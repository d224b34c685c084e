package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PlanoriaApp/appointment-scheduler/internal/models"
	ucbooking "github.com/PlanoriaApp/appointment-scheduler/internal/usecase/booking"
)

func statsAppointment(title string, cost float64) models.Appointment {
	return models.Appointment{BusinessID: 1, Title: title, Cost: cost}
}

func TestGetDailyStats(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	t.Run("groups by booking-time title", func(t *testing.T) {
		repo := new(MockRepository)
		uc := ucbooking.NewGetDailyStats(repo, nil)

		repo.On("ListAppointmentsForDate", ctx, uint(1), day).
			Return([]models.Appointment{
				statsAppointment("Haircut", 50),
				statsAppointment("Haircut", 50),
				statsAppointment("Haircut", 50),
				statsAppointment("Beard Trim", 25),
			}, nil)

		stats, err := uc.Execute(ctx, 1, day)
		require.NoError(t, err)

		assert.Equal(t, "2025-06-02", stats.Date)
		assert.Equal(t, 175.0, stats.TotalRevenue)
		assert.Len(t, stats.Services, 2)
		assert.Equal(t, ucbooking.ServiceStats{Count: 3, Revenue: 150}, stats.Services["Haircut"])
		assert.Equal(t, ucbooking.ServiceStats{Count: 1, Revenue: 25}, stats.Services["Beard Trim"])
	})

	t.Run("snapshot cost survives a price change", func(t *testing.T) {
		repo := new(MockRepository)
		uc := ucbooking.NewGetDailyStats(repo, nil)

		// Two bookings of the same service at different historic prices.
		repo.On("ListAppointmentsForDate", ctx, uint(1), day).
			Return([]models.Appointment{
				statsAppointment("Haircut", 50),
				statsAppointment("Haircut", 60),
			}, nil)

		stats, err := uc.Execute(ctx, 1, day)
		require.NoError(t, err)
		assert.Equal(t, ucbooking.ServiceStats{Count: 2, Revenue: 110}, stats.Services["Haircut"])
		assert.Equal(t, 110.0, stats.TotalRevenue)
	})

	t.Run("empty day yields an empty map", func(t *testing.T) {
		repo := new(MockRepository)
		uc := ucbooking.NewGetDailyStats(repo, nil)

		repo.On("ListAppointmentsForDate", ctx, uint(1), day).
			Return([]models.Appointment{}, nil)

		stats, err := uc.Execute(ctx, 1, day)
		require.NoError(t, err)
		assert.Equal(t, 0.0, stats.TotalRevenue)
		assert.NotNil(t, stats.Services)
		assert.Empty(t, stats.Services)
	})

	t.Run("serves from cache without touching the repository", func(t *testing.T) {
		repo := new(MockRepository)
		cache := newRecordingCache()
		uc := ucbooking.NewGetDailyStats(repo, cache)

		repo.On("ListAppointmentsForDate", ctx, uint(1), day).
			Return([]models.Appointment{statsAppointment("Haircut", 50)}, nil).
			Once()

		first, err := uc.Execute(ctx, 1, day)
		require.NoError(t, err)

		second, err := uc.Execute(ctx, 1, day)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		repo.AssertNumberOfCalls(t, "ListAppointmentsForDate", 1)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		repo := new(MockRepository)
		uc := ucbooking.NewGetDailyStats(repo, nil)

		repo.On("ListAppointmentsForDate", ctx, uint(1), day).
			Return([]models.Appointment{}, errors.New("connection reset"))

		_, err := uc.Execute(ctx, 1, day)
		assert.Error(t, err)
	})
}
