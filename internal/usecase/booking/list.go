package booking

import (
	"context"

	domain "github.com/PlanoriaApp/appointment-scheduler/internal/domain/booking"
	"github.com/PlanoriaApp/appointment-scheduler/internal/models"
)

// Lists come back sorted ascending by (date, start_time); clients group
// by date for display.

type ListAppointmentsForBusiness struct {
	repo domain.Repository
}

func NewListAppointmentsForBusiness(repo domain.Repository) *ListAppointmentsForBusiness {
	return &ListAppointmentsForBusiness{repo: repo}
}

func (uc *ListAppointmentsForBusiness) Execute(
	ctx context.Context,
	businessID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsForBusiness(ctx, businessID)
}

type ListAppointmentsForCustomer struct {
	repo domain.Repository
}

func NewListAppointmentsForCustomer(repo domain.Repository) *ListAppointmentsForCustomer {
	return &ListAppointmentsForCustomer{repo: repo}
}

func (uc *ListAppointmentsForCustomer) Execute(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsForCustomer(ctx, customerID)
}

type SearchAppointmentsByPhone struct {
	repo domain.Repository
}

func NewSearchAppointmentsByPhone(repo domain.Repository) *SearchAppointmentsByPhone {
	return &SearchAppointmentsByPhone{repo: repo}
}

func (uc *SearchAppointmentsByPhone) Execute(
	ctx context.Context,
	businessID uint,
	phone string,
) ([]models.Appointment, error) {
	return uc.repo.SearchAppointmentsByPhone(ctx, businessID, phone)
}
