package booking

import (
	"context"
	"time"

	"github.com/PlanoriaApp/appointment-scheduler/internal/models"
)

type Repository interface {
	// -------- Business --------
	GetBusinessByID(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	GetBusinessByOwner(
		ctx context.Context,
		ownerID uint,
	) (*models.Business, error)

	// -------- Service --------
	GetServiceByName(
		ctx context.Context,
		businessID uint,
		name string,
	) (*models.Service, error)

	// -------- Availability --------
	ListWindows(
		ctx context.Context,
		businessID uint,
	) ([]models.AvailabilityWindow, error)

	ListWindowsForDay(
		ctx context.Context,
		businessID uint,
		dayOfWeek string,
	) ([]models.AvailabilityWindow, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// LockAppointmentsForDate reads that day's roster under FOR UPDATE so
	// the validate-then-insert sequence is serialized per business+date.
	LockAppointmentsForDate(
		ctx context.Context,
		businessID uint,
		date time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForDate(
		ctx context.Context,
		businessID uint,
		date time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (read / mutate) --------
	GetAppointmentForBusiness(
		ctx context.Context,
		appointmentID uint,
		businessID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForBusiness(
		ctx context.Context,
		businessID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)

	SearchAppointmentsByPhone(
		ctx context.Context,
		businessID uint,
		phone string,
	) ([]models.Appointment, error)

	// -------- Transactions --------
	InTransaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
