package booking

import (
	"context"

	"github.com/PlanoriaApp/appointment-scheduler/internal/audit"
	domain "github.com/PlanoriaApp/appointment-scheduler/internal/domain/booking"
	"github.com/PlanoriaApp/appointment-scheduler/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache StatsCache
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache StatsCache,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	businessID uint,
	actorID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointmentForBusiness(ctx, appointmentID, businessID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap); err != nil {
		return err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDay(ctx, businessID, ap.Date.Format("2006-01-02"))
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BusinessID: businessID,
			UserID:     &actorID,
			Action:     "appointment_deleted",
			Entity:     "appointment",
			EntityID:   &ap.ID,
		})
	}

	return nil
}
