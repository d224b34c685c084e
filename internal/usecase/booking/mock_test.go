package booking_test

import (
	"context"
	"fmt"
	"time"

	testifymock "github.com/stretchr/testify/mock"

	domain "github.com/PlanoriaApp/appointment-scheduler/internal/domain/booking"
	"github.com/PlanoriaApp/appointment-scheduler/internal/models"
	ucbooking "github.com/PlanoriaApp/appointment-scheduler/internal/usecase/booking"
)

// MockRepository is a mock implementation of the booking Repository
// interface.
type MockRepository struct {
	testifymock.Mock
}

func (m *MockRepository) GetBusinessByID(ctx context.Context, id uint) (*models.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Business), args.Error(1)
}

func (m *MockRepository) GetBusinessByOwner(ctx context.Context, ownerID uint) (*models.Business, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Business), args.Error(1)
}

func (m *MockRepository) GetServiceByName(ctx context.Context, businessID uint, name string) (*models.Service, error) {
	args := m.Called(ctx, businessID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockRepository) ListWindows(ctx context.Context, businessID uint) ([]models.AvailabilityWindow, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).([]models.AvailabilityWindow), args.Error(1)
}

func (m *MockRepository) ListWindowsForDay(ctx context.Context, businessID uint, dayOfWeek string) ([]models.AvailabilityWindow, error) {
	args := m.Called(ctx, businessID, dayOfWeek)
	return args.Get(0).([]models.AvailabilityWindow), args.Error(1)
}

func (m *MockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) LockAppointmentsForDate(ctx context.Context, businessID uint, date time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, businessID, date)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) ListAppointmentsForDate(ctx context.Context, businessID uint, date time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, businessID, date)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) GetAppointmentForBusiness(ctx context.Context, appointmentID, businessID uint) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) DeleteAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) ListAppointmentsForBusiness(ctx context.Context, businessID uint) ([]models.Appointment, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) ListAppointmentsForCustomer(ctx context.Context, customerID uint) ([]models.Appointment, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) SearchAppointmentsByPhone(ctx context.Context, businessID uint, phone string) ([]models.Appointment, error) {
	args := m.Called(ctx, businessID, phone)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

// InTransaction runs fn against the mock itself; transactional behavior
// is the real repository's concern.
func (m *MockRepository) InTransaction(ctx context.Context, fn func(domain.Repository) error) error {
	m.Called(ctx)
	return fn(m)
}

var _ domain.Repository = (*MockRepository)(nil)

// recordingCache is an in-memory StatsCache that records invalidations.
type recordingCache struct {
	stats       map[string]*ucbooking.DailyStats
	invalidated []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{stats: map[string]*ucbooking.DailyStats{}}
}

func cacheKey(businessID uint, date string) string {
	return fmt.Sprintf("%d:%s", businessID, date)
}

func (c *recordingCache) GetDailyStats(_ context.Context, businessID uint, date string) (*ucbooking.DailyStats, bool) {
	s, ok := c.stats[cacheKey(businessID, date)]
	return s, ok
}

func (c *recordingCache) SetDailyStats(_ context.Context, businessID uint, date string, stats *ucbooking.DailyStats) {
	c.stats[cacheKey(businessID, date)] = stats
}

func (c *recordingCache) InvalidateDay(_ context.Context, businessID uint, date string) {
	delete(c.stats, cacheKey(businessID, date))
	c.invalidated = append(c.invalidated, cacheKey(businessID, date))
}

var _ ucbooking.StatsCache = (*recordingCache)(nil)
