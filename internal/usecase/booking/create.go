package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/PlanoriaApp/appointment-scheduler/internal/audit"
	domain "github.com/PlanoriaApp/appointment-scheduler/internal/domain/booking"
	"github.com/PlanoriaApp/appointment-scheduler/internal/httperr"
	"github.com/PlanoriaApp/appointment-scheduler/internal/models"
	"github.com/PlanoriaApp/appointment-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BusinessID uint

	// CustomerID links the booking to an account when the request came
	// from an authenticated customer; phone bookings leave it nil.
	CustomerID    *uint
	CustomerName  string
	CustomerPhone string

	ServiceTitle string

	Date      string // YYYY-MM-DD
	StartTime string // HH:MM or HH:MM:SS

	// DurationMin overrides the service duration when > 0.
	DurationMin int

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache StatsCache
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache StatsCache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	business, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, httperr.ErrBusiness("business_not_found")
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		in.Date,
		timezone.Location(business.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	startSec, err := domain.ClockSeconds(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	service, err := uc.repo.GetServiceByName(ctx, in.BusinessID, in.ServiceTitle)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	durationMin := service.DurationMin
	if in.DurationMin > 0 {
		durationMin = in.DurationMin
	}
	if durationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	candidate := domain.NewInterval(startSec, durationMin)

	attempt := func() (*models.Appointment, error) {
		var created *models.Appointment
		err := uc.repo.InTransaction(ctx, func(tx domain.Repository) error {

			windows, err := tx.ListWindowsForDay(
				ctx,
				in.BusinessID,
				domain.WeekdayName(date),
			)
			if err != nil {
				return err
			}

			booked, err := tx.LockAppointmentsForDate(ctx, in.BusinessID, date)
			if err != nil {
				return err
			}

			reason := domain.Validate(
				candidate,
				windowIntervals(windows),
				bookedIntervals(booked, 0),
			)
			if reason != domain.ReasonAccepted {
				return httperr.ErrBusiness(string(reason))
			}

			ap := &models.Appointment{
				PublicID:      uuid.NewString(),
				BusinessID:    in.BusinessID,
				CustomerID:    in.CustomerID,
				Date:          date,
				StartTime:     domain.FormatClock(candidate.Start),
				DurationMin:   durationMin,
				StartSec:      candidate.Start,
				EndSec:        candidate.End,
				Title:         service.Name,
				Cost:          service.Price,
				CustomerName:  in.CustomerName,
				CustomerPhone: in.CustomerPhone,
				Notes:         in.Notes,
			}

			if err := tx.CreateAppointment(ctx, ap); err != nil {
				return err
			}

			created = ap
			return nil
		})
		return created, err
	}

	created, err := attempt()

	// A concurrent booking can commit between our read and our insert;
	// the exclusion constraint fires and we re-run the full validation
	// once against the winner.
	if httperr.IsExclusionConflict(err) {
		created, err = attempt()
		if httperr.IsExclusionConflict(err) {
			err = httperr.ErrBusiness(string(domain.ReasonOverlappingAppointment))
		}
	}
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDay(ctx, in.BusinessID, in.Date)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BusinessID: in.BusinessID,
			UserID:     in.CustomerID,
			Action:     "appointment_created",
			Entity:     "appointment",
			EntityID:   &created.ID,
		})
	}

	return created, nil
}
