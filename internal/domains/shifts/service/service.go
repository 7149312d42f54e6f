package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/savioruz/reserva/config"
	resources "github.com/savioruz/reserva/internal/domains/resources/repository"
	"github.com/savioruz/reserva/internal/domains/shifts/dto"
	"github.com/savioruz/reserva/internal/domains/shifts/repository"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/helper"
	"github.com/savioruz/reserva/pkg/logger"
	"github.com/savioruz/reserva/pkg/postgres"
	"github.com/savioruz/reserva/pkg/redis"
	"github.com/savioruz/reserva/pkg/timeslot"
)

type ShiftService interface {
	ListByResource(ctx context.Context, resourceID string) (res []dto.ShiftResponse, err error)
	Create(ctx context.Context, resourceID string, req dto.ShiftRequest) (res dto.ShiftResponse, err error)
	Update(ctx context.Context, id string, req dto.ShiftRequest) (res dto.ShiftResponse, err error)
	Delete(ctx context.Context, id string) error
}

const (
	cacheShiftsKey = "shifts"

	identifier = "service - shift - %s"
)

type shiftService struct {
	db        postgres.PgxIface
	repo      repository.Querier
	resources resources.Querier
	cache     redis.IRedisCache
	cfg       *config.Config
	logger    logger.Interface
}

func New(db postgres.PgxIface, repo repository.Querier, rr resources.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) ShiftService {
	return &shiftService{
		db:        db,
		repo:      repo,
		resources: rr,
		cache:     cache,
		cfg:       cfg,
		logger:    l,
	}
}

func (s *shiftService) ListByResource(ctx context.Context, resourceID string) (res []dto.ShiftResponse, err error) {
	cacheKey := helper.BuildCacheKey(cacheShiftsKey, resourceID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	if _, err = s.resource(ctx, s.db, resourceID); err != nil {
		return nil, err
	}

	shifts, err := s.repo.ListShiftsByResource(ctx, s.db, helper.PgUUID(resourceID))
	if err != nil {
		s.logger.Error(identifier, "listByResource - failed to list shifts: "+err.Error())

		return nil, failure.InternalError(err)
	}

	res = make([]dto.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		res = append(res, dto.ShiftResponse{}.FromModel(sh))
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "listByResource - failed to save cache: "+err.Error())
		}
	}()

	return res, nil
}

func (s *shiftService) Create(ctx context.Context, resourceID string, req dto.ShiftRequest) (res dto.ShiftResponse, err error) {
	window, err := timeslot.Parse(req.StartTime, req.EndTime)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "create - failed to begin transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "create - failed to rollback transaction: "+err.Error())
		}
	}(tx, ctx)

	resource, err := s.resource(ctx, tx, resourceID)
	if err != nil {
		return res, err
	}

	if err = s.ensureNoOverlap(ctx, tx, resourceID, "", window); err != nil {
		return res, err
	}

	shift, err := s.repo.CreateShift(ctx, tx, repository.CreateShiftParams{
		ResourceID:   resource.ID,
		Name:         req.Name,
		StartTime:    helper.PgTimeFromMinutes(window.Start),
		EndTime:      helper.PgTimeFromMinutes(window.End),
		PricePerHour: helper.PgInt64(req.PricePerHour),
	})
	if err != nil {
		s.logger.Error(identifier, "create - failed to create shift: "+err.Error())

		return res, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "create - failed to commit transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	s.invalidate(ctx)

	return dto.ShiftResponse{}.FromModel(shift), nil
}

func (s *shiftService) Update(ctx context.Context, id string, req dto.ShiftRequest) (res dto.ShiftResponse, err error) {
	window, err := timeslot.Parse(req.StartTime, req.EndTime)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "update - failed to begin transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "update - failed to rollback transaction: "+err.Error())
		}
	}(tx, ctx)

	current, err := s.repo.GetShiftByID(ctx, tx, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, failure.NotFound("shift not found")
		}

		s.logger.Error(identifier, "update - failed to get shift: "+err.Error())

		return res, failure.InternalError(err)
	}

	if err = s.ensureNoOverlap(ctx, tx, current.ResourceID.String(), id, window); err != nil {
		return res, err
	}

	shift, err := s.repo.UpdateShift(ctx, tx, repository.UpdateShiftParams{
		ID:           current.ID,
		Name:         req.Name,
		StartTime:    helper.PgTimeFromMinutes(window.Start),
		EndTime:      helper.PgTimeFromMinutes(window.End),
		PricePerHour: helper.PgInt64(req.PricePerHour),
	})
	if err != nil {
		s.logger.Error(identifier, "update - failed to update shift: "+err.Error())

		return res, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "update - failed to commit transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	s.invalidate(ctx)

	return dto.ShiftResponse{}.FromModel(shift), nil
}

func (s *shiftService) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.DeleteShift(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		s.logger.Error(identifier, "delete - failed to delete shift: "+err.Error())

		return failure.InternalError(err)
	}

	if rows == 0 {
		return failure.NotFound("shift not found")
	}

	s.invalidate(ctx)

	return nil
}

func (s *shiftService) resource(ctx context.Context, db repository.DBTX, id string) (resources.Resource, error) {
	r, err := s.resources.GetResourceByID(ctx, db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r, failure.NotFound("resource not found")
		}

		s.logger.Error(identifier, "resource - failed to get resource: "+err.Error())

		return r, failure.InternalError(err)
	}

	return r, nil
}

// ensureNoOverlap rejects a window that shares any minute with another shift of the same resource.
func (s *shiftService) ensureNoOverlap(ctx context.Context, db repository.DBTX, resourceID, selfID string, window timeslot.Range) error {
	shifts, err := s.repo.ListShiftsByResource(ctx, db, helper.PgUUID(resourceID))
	if err != nil {
		s.logger.Error(identifier, "ensureNoOverlap - failed to list shifts: "+err.Error())

		return failure.InternalError(err)
	}

	for _, sh := range shifts {
		if sh.ID.String() == selfID {
			continue
		}

		other := timeslot.Range{Start: helper.MinutesFromPgTime(sh.StartTime), End: helper.MinutesFromPgTime(sh.EndTime)}
		if window.Overlaps(other) {
			return failure.Conflict("shift overlaps " + sh.Name + " (" + other.String() + ")")
		}
	}

	return nil
}

func (s *shiftService) invalidate(ctx context.Context) {
	go func() {
		if err := s.cache.Clear(context.WithoutCancel(ctx), helper.BuildCacheKey(cacheShiftsKey, "*")); err != nil {
			s.logger.Error(identifier, "invalidate - failed to clear cache: "+err.Error())
		}
	}()
}
