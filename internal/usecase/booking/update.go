package booking

import (
	"context"

	"github.com/PlanoriaApp/appointment-scheduler/internal/audit"
	domain "github.com/PlanoriaApp/appointment-scheduler/internal/domain/booking"
	"github.com/PlanoriaApp/appointment-scheduler/internal/httperr"
	"github.com/PlanoriaApp/appointment-scheduler/internal/models"
)

// Only start_time and notes are mutable after booking; date, duration and
// title are fixed at creation.
type UpdateAppointmentInput struct {
	AppointmentID uint
	BusinessID    uint
	ActorID       uint

	StartTime *string
	Notes     *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache StatsCache
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache StatsCache,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForBusiness(
		ctx,
		in.AppointmentID,
		in.BusinessID,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if in.StartTime == nil {
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}
		uc.afterWrite(ctx, ap, in.ActorID)
		return ap, nil
	}

	// Moving the appointment re-runs the full booking validation against
	// the current roster, with the appointment itself excluded.
	startSec, err := domain.ClockSeconds(*in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	candidate := domain.NewInterval(startSec, ap.DurationMin)

	attempt := func() error {
		return uc.repo.InTransaction(ctx, func(tx domain.Repository) error {

			windows, err := tx.ListWindowsForDay(
				ctx,
				ap.BusinessID,
				domain.WeekdayName(ap.Date),
			)
			if err != nil {
				return err
			}

			booked, err := tx.LockAppointmentsForDate(ctx, ap.BusinessID, ap.Date)
			if err != nil {
				return err
			}

			reason := domain.Validate(
				candidate,
				windowIntervals(windows),
				bookedIntervals(booked, ap.ID),
			)
			if reason != domain.ReasonAccepted {
				return httperr.ErrBusiness(string(reason))
			}

			ap.StartTime = domain.FormatClock(candidate.Start)
			ap.StartSec = candidate.Start
			ap.EndSec = candidate.End

			return tx.UpdateAppointment(ctx, ap)
		})
	}

	err = attempt()
	if httperr.IsExclusionConflict(err) {
		err = attempt()
		if httperr.IsExclusionConflict(err) {
			err = httperr.ErrBusiness(string(domain.ReasonOverlappingAppointment))
		}
	}
	if err != nil {
		return nil, err
	}

	uc.afterWrite(ctx, ap, in.ActorID)
	return ap, nil
}

func (uc *UpdateAppointment) afterWrite(
	ctx context.Context,
	ap *models.Appointment,
	actorID uint,
) {
	if uc.cache != nil {
		uc.cache.InvalidateDay(ctx, ap.BusinessID, ap.Date.Format("2006-01-02"))
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BusinessID: ap.BusinessID,
			UserID:     &actorID,
			Action:     "appointment_updated",
			Entity:     "appointment",
			EntityID:   &ap.ID,
		})
	}
}
