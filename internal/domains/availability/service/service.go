package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	addons "github.com/savioruz/reserva/internal/domains/addons/repository"
	"github.com/savioruz/reserva/internal/domains/availability/dto"
	bookings "github.com/savioruz/reserva/internal/domains/bookings/repository"
	resourcedto "github.com/savioruz/reserva/internal/domains/resources/dto"
	resources "github.com/savioruz/reserva/internal/domains/resources/repository"
	shifts "github.com/savioruz/reserva/internal/domains/shifts/repository"
	"github.com/savioruz/reserva/pkg/clock"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/helper"
	"github.com/savioruz/reserva/pkg/logger"
	"github.com/savioruz/reserva/pkg/postgres"
	"github.com/savioruz/reserva/pkg/timeslot"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service.go -package=mock github.com/savioruz/reserva/internal/domains/availability/service AvailabilityService

// DBTX is satisfied by the pool and by a transaction, so a quote can run inside a booking submission.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type AvailabilityService interface {
	Query(ctx context.Context, req dto.AvailabilityRequest, withTokens bool) (res dto.AvailabilityResponse, err error)
	CalculatePrice(ctx context.Context, req dto.PriceRequest) (res dto.PriceResponse, err error)
	Quote(ctx context.Context, db DBTX, req dto.PriceRequest) (q Quote, err error)
}

const (
	identifier = "service - availability - %s"

	msgDateInPast = "date must not be in the past"
)

type availabilityService struct {
	db        postgres.PgxIface
	resources resources.Querier
	shifts    shifts.Querier
	addons    addons.Querier
	bookings  bookings.Querier
	clock     clock.Clock
	logger    logger.Interface
}

func New(
	db postgres.PgxIface,
	rr resources.Querier,
	sr shifts.Querier,
	ar addons.Querier,
	br bookings.Querier,
	c clock.Clock,
	l logger.Interface,
) AvailabilityService {
	return &availabilityService{
		db:        db,
		resources: rr,
		shifts:    sr,
		addons:    ar,
		bookings:  br,
		clock:     c,
		logger:    l,
	}
}

// Query reports, per resource of the requested kind, whether the window is free on the date.
// Booking tokens are only included for staff callers.
func (s *availabilityService) Query(ctx context.Context, req dto.AvailabilityRequest, withTokens bool) (res dto.AvailabilityResponse, err error) {
	window, err := timeslot.Parse(req.StartTime, req.EndTime)
	if err != nil {
		return res, failure.BadRequestFromString("end_time must be after start_time")
	}

	past, err := helper.IsDateInPast(req.Date, s.clock.Now())
	if err != nil {
		return res, failure.BadRequestFromString("date must be in YYYY-MM-DD format")
	}

	if past {
		return res, failure.BadRequestFromString(msgDateInPast)
	}

	kind := req.Kind
	if kind == "" {
		kind = constant.ResourceKindCourt
	}

	list, err := s.resources.ListResourcesByKind(ctx, s.db, kind)
	if err != nil {
		s.logger.Error(identifier, "query - failed to list resources: "+err.Error())

		return res, failure.InternalError(err)
	}

	found := make(map[string]resources.Resource, len(list))
	for _, r := range list {
		found[r.ID.String()] = r
	}

	rates, err := s.rates(ctx, s.db, found)
	if err != nil {
		return res, err
	}

	taken, err := s.bookings.ListActiveSlotsByDate(ctx, s.db, bookings.ListActiveSlotsByDateParams{
		UsageDate: helper.PgDate(req.Date),
		Kind:      kind,
	})
	if err != nil {
		s.logger.Error(identifier, "query - failed to list booked slots: "+err.Error())

		return res, failure.InternalError(err)
	}

	byResource := make(map[pgtype.UUID][]bookings.ListActiveSlotsByDateRow)
	for _, t := range taken {
		byResource[t.ResourceID] = append(byResource[t.ResourceID], t)
	}

	res = dto.AvailabilityResponse{
		Date:      req.Date,
		StartTime: timeslot.FormatClock(window.Start),
		EndTime:   timeslot.FormatClock(window.End),
		Kind:      kind,
		Resources: make([]dto.ResourceAvailability, 0, len(list)),
	}

	for _, r := range list {
		conflicts := s.conflicts(r, window, rates[r.ID.String()], byResource[r.ID], withTokens)

		res.Resources = append(res.Resources, dto.ResourceAvailability{
			SanID:       r.ID.String(),
			Kind:        r.Kind,
			Name:        r.Name,
			Capacity:    r.Capacity,
			Status:      r.Status,
			StatusLabel: resourcedto.StatusLabel(r.Kind, r.Status),
			IsAvailable: len(conflicts) == 0,
			Bookings:    conflicts,
		})
	}

	return res, nil
}

func (s *availabilityService) conflicts(
	r resources.Resource,
	window timeslot.Range,
	rates []timeslot.Rate,
	taken []bookings.ListActiveSlotsByDateRow,
	withTokens bool,
) []dto.ConflictResponse {
	res := []dto.ConflictResponse{}
	requested := func(reason string) dto.ConflictResponse {
		return dto.ConflictResponse{
			StartTime: timeslot.FormatClock(window.Start),
			EndTime:   timeslot.FormatClock(window.End),
			Reason:    reason,
		}
	}

	if r.Status == constant.ResourceStatusMaintenance {
		return append(res, requested(constant.ReasonResourceDisabled))
	}

	windows := make([]timeslot.Range, 0, len(rates))
	for _, rate := range rates {
		windows = append(windows, rate.Window)
	}

	if !timeslot.Covers(windows, window) {
		res = append(res, requested(constant.ReasonOutsideShift))
	}

	for _, t := range taken {
		booked := timeslot.Range{Start: helper.MinutesFromPgTime(t.StartTime), End: helper.MinutesFromPgTime(t.EndTime)}
		if !booked.Overlaps(window) {
			continue
		}

		c := dto.ConflictResponse{
			StartTime: timeslot.FormatClock(booked.Start),
			EndTime:   timeslot.FormatClock(booked.End),
			Reason:    constant.ReasonAlreadyReserved,
		}

		if withTokens {
			c.MaPD = t.Token
		}

		res = append(res, c)
	}

	return res
}

func (s *availabilityService) CalculatePrice(ctx context.Context, req dto.PriceRequest) (res dto.PriceResponse, err error) {
	q, err := s.Quote(ctx, s.db, req)
	if err != nil {
		return res, err
	}

	return q.Response(), nil
}
