package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/savioruz/reserva/config"
	resmock "github.com/savioruz/reserva/internal/domains/resources/mock"
	resources "github.com/savioruz/reserva/internal/domains/resources/repository"
	"github.com/savioruz/reserva/internal/domains/shifts/dto"
	"github.com/savioruz/reserva/internal/domains/shifts/mock"
	"github.com/savioruz/reserva/internal/domains/shifts/repository"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/helper"
	log "github.com/savioruz/reserva/pkg/logger/mock"
	redis "github.com/savioruz/reserva/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	shifts    *mock.MockQuerier
	resources *resmock.MockQuerier
	pgx       pgxmock.PgxPoolIface
	cache     *redis.MockIRedisCache
	svc       ShiftService
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	mockPgx, err := pgxmock.NewPool()
	require.NoError(t, err)

	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	f := fixture{
		shifts:    mock.NewMockQuerier(ctrl),
		resources: resmock.NewMockQuerier(ctrl),
		pgx:       mockPgx,
		cache:     redis.NewMockIRedisCache(ctrl),
	}

	f.svc = New(mockPgx, f.shifts, f.resources, f.cache, &config.Config{Cache: config.Cache{Duration: 60}}, mockLogger)

	return f
}

func shift(resourceID pgtype.UUID, name string, start, end int) repository.Shift {
	return repository.Shift{
		ID:           pgtype.UUID{Bytes: uuid.New(), Valid: true},
		ResourceID:   resourceID,
		Name:         name,
		StartTime:    helper.PgTimeFromMinutes(start),
		EndTime:      helper.PgTimeFromMinutes(end),
		PricePerHour: helper.PgInt64(100000),
	}
}

func TestShiftService_Create(t *testing.T) {
	ctx := context.Background()
	court := resources.Resource{ID: pgtype.UUID{Bytes: uuid.New(), Valid: true}, Kind: "court"}

	t.Run("error: inverted window", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(ctx, court.ID.String(), dto.ShiftRequest{Name: "Ca toi", StartTime: "22:00", EndTime: "18:00"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: resource not found", func(t *testing.T) {
		f := newFixture(t)
		f.pgx.ExpectBegin()
		f.pgx.ExpectRollback()

		f.resources.EXPECT().GetResourceByID(gomock.Any(), gomock.Any(), court.ID).Return(resources.Resource{}, pgx.ErrNoRows)

		_, err := f.svc.Create(ctx, court.ID.String(), dto.ShiftRequest{Name: "Ca sang", StartTime: "06:00", EndTime: "11:00"})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: overlaps existing shift", func(t *testing.T) {
		f := newFixture(t)
		f.pgx.ExpectBegin()
		f.pgx.ExpectRollback()

		f.resources.EXPECT().GetResourceByID(gomock.Any(), gomock.Any(), court.ID).Return(court, nil)
		f.shifts.EXPECT().ListShiftsByResource(gomock.Any(), gomock.Any(), court.ID).
			Return([]repository.Shift{shift(court.ID, "Ca sang", 360, 660)}, nil)

		_, err := f.svc.Create(ctx, court.ID.String(), dto.ShiftRequest{Name: "Ca trua", StartTime: "10:00", EndTime: "14:00"})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Contains(t, err.Error(), "06:00-11:00")
	})

	t.Run("success: touching shifts allowed", func(t *testing.T) {
		f := newFixture(t)
		f.pgx.ExpectBegin()
		f.pgx.ExpectCommit()
		f.pgx.ExpectRollback()

		done := make(chan struct{})

		f.resources.EXPECT().GetResourceByID(gomock.Any(), gomock.Any(), court.ID).Return(court, nil)
		f.shifts.EXPECT().ListShiftsByResource(gomock.Any(), gomock.Any(), court.ID).
			Return([]repository.Shift{shift(court.ID, "Ca sang", 360, 660)}, nil)
		f.shifts.EXPECT().CreateShift(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.CreateShiftParams) (repository.Shift, error) {
				assert.Equal(t, 660, helper.MinutesFromPgTime(arg.StartTime))

				return shift(court.ID, arg.Name, 660, 840), nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), "reserva:cache:shifts:*").DoAndReturn(func(context.Context, string) error {
			close(done)

			return nil
		})

		res, err := f.svc.Create(ctx, court.ID.String(), dto.ShiftRequest{Name: "Ca trua", StartTime: "11:00", EndTime: "14:00", PricePerHour: 100000})

		require.NoError(t, err)
		assert.Equal(t, "11:00", res.StartTime)
		assert.Equal(t, "14:00", res.EndTime)

		<-done
	})
}

func TestShiftService_Update(t *testing.T) {
	ctx := context.Background()
	resourceID := pgtype.UUID{Bytes: uuid.New(), Valid: true}

	t.Run("success: own window ignored", func(t *testing.T) {
		f := newFixture(t)
		f.pgx.ExpectBegin()
		f.pgx.ExpectCommit()
		f.pgx.ExpectRollback()

		current := shift(resourceID, "Ca sang", 360, 660)
		done := make(chan struct{})

		f.shifts.EXPECT().GetShiftByID(gomock.Any(), gomock.Any(), current.ID).Return(current, nil)
		f.shifts.EXPECT().ListShiftsByResource(gomock.Any(), gomock.Any(), resourceID).Return([]repository.Shift{current}, nil)
		f.shifts.EXPECT().UpdateShift(gomock.Any(), gomock.Any(), gomock.Any()).Return(shift(resourceID, "Ca sang", 360, 720), nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) error {
			close(done)

			return nil
		})

		res, err := f.svc.Update(ctx, current.ID.String(), dto.ShiftRequest{Name: "Ca sang", StartTime: "06:00", EndTime: "12:00"})

		require.NoError(t, err)
		assert.Equal(t, "12:00", res.EndTime)

		<-done
	})

	t.Run("error: not found", func(t *testing.T) {
		f := newFixture(t)
		f.pgx.ExpectBegin()
		f.pgx.ExpectRollback()

		f.shifts.EXPECT().GetShiftByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.Shift{}, pgx.ErrNoRows)

		_, err := f.svc.Update(ctx, uuid.NewString(), dto.ShiftRequest{Name: "Ca sang", StartTime: "06:00", EndTime: "12:00"})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestShiftService_Delete(t *testing.T) {
	f := newFixture(t)

	f.shifts.EXPECT().DeleteShift(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

	err := f.svc.Delete(context.Background(), uuid.NewString())

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
