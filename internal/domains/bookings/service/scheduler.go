package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/savioruz/reserva/internal/domains/bookings/repository"
	"github.com/savioruz/reserva/pkg/clock"
	"github.com/savioruz/reserva/pkg/helper"
	"github.com/savioruz/reserva/pkg/logger"
	"github.com/savioruz/reserva/pkg/metrics"
	"github.com/savioruz/reserva/pkg/postgres"
	"github.com/savioruz/reserva/pkg/redis"
)

type SchedulerService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	clock  clock.Clock
	logger logger.Interface
}

func NewSchedulerService(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, c clock.Clock, l logger.Interface) *SchedulerService {
	return &SchedulerService{
		db:     db,
		repo:   repo,
		cache:  cache,
		clock:  c,
		logger: l,
	}
}

// ExpirePendingBookings expires pending bookings whose first slot has already started and frees their slots.
func (s *SchedulerService) ExpirePendingBookings(ctx context.Context) (expired int, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, err
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "expire - failed to rollback transaction: "+err.Error())
		}
	}(tx, ctx)

	ids, err := s.repo.ExpirePendingBookings(ctx, tx, helper.PgTimestamp(wallClock(s.clock.Now())))
	if err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 0, nil
	}

	if _, err = s.repo.DeactivateSlotsByBookingIDs(ctx, tx, ids); err != nil {
		return 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}

	metrics.RecordExpired(len(ids))

	go func() {
		if err := s.cache.Clear(context.WithoutCancel(ctx), helper.BuildCacheKey(cacheBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "expire - failed to clear cache: "+err.Error())
		}
	}()

	return len(ids), nil
}

// wallClock keeps the local date and time but drops the zone, matching the zone-less usage_date and start_time columns.
func wallClock(t time.Time) time.Time {
	t = helper.ToAppTimezone(t)

	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
