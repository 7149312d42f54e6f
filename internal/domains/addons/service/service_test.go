package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/savioruz/reserva/config"
	"github.com/savioruz/reserva/internal/domains/addons/dto"
	"github.com/savioruz/reserva/internal/domains/addons/mock"
	"github.com/savioruz/reserva/internal/domains/addons/repository"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/helper"
	log "github.com/savioruz/reserva/pkg/logger/mock"
	redis "github.com/savioruz/reserva/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAddonService(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockRedis := redis.NewMockIRedisCache(ctrl)
	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	svc := New(mockPgx, mockQuerier, mockRedis, &config.Config{Cache: config.Cache{Duration: 60}}, mockLogger)

	racket := repository.Addon{
		ID:        pgtype.UUID{Bytes: uuid.New(), Valid: true},
		Name:      "Thue vot",
		Unit:      "cái",
		UnitPrice: helper.PgInt64(30000),
		Active:    true,
	}

	cleared := func() chan struct{} {
		done := make(chan struct{})

		mockRedis.EXPECT().Clear(gomock.Any(), "reserva:cache:addons:*").DoAndReturn(func(context.Context, string) error {
			close(done)

			return nil
		})

		return done
	}

	t.Run("success: list from cache", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), "reserva:cache:addons:active", gomock.Any()).Return(nil)

		_, err := svc.List(ctx)

		assert.NoError(t, err)
	})

	t.Run("error: list failure", func(t *testing.T) {
		mockRedis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		mockQuerier.EXPECT().ListAddons(gomock.Any(), gomock.Any(), true).Return(nil, errors.New("boom"))

		_, err := svc.List(ctx)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: create defaults", func(t *testing.T) {
		done := cleared()

		mockQuerier.EXPECT().CreateAddon(gomock.Any(), gomock.Any(), repository.CreateAddonParams{
			Name:      "Thue vot",
			Unit:      "cái",
			UnitPrice: helper.PgInt64(30000),
			Active:    true,
		}).Return(racket, nil)

		res, err := svc.Create(ctx, dto.AddonRequest{Name: "Thue vot", UnitPrice: 30000})

		require.NoError(t, err)
		assert.Equal(t, int64(30000), res.UnitPrice)

		<-done
	})

	t.Run("error: update unknown", func(t *testing.T) {
		mockQuerier.EXPECT().GetAddonByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.Addon{}, pgx.ErrNoRows)

		_, err := svc.Update(ctx, uuid.NewString(), dto.AddonRequest{Name: "x"})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success: update keeps active flag", func(t *testing.T) {
		done := cleared()

		mockQuerier.EXPECT().GetAddonByID(gomock.Any(), gomock.Any(), racket.ID).Return(racket, nil)
		mockQuerier.EXPECT().UpdateAddon(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.UpdateAddonParams) (repository.Addon, error) {
				assert.True(t, arg.Active)

				return racket, nil
			})

		_, err := svc.Update(ctx, racket.ID.String(), dto.AddonRequest{Name: "Thue vot", UnitPrice: 35000})

		require.NoError(t, err)

		<-done
	})

	t.Run("error: delete already inactive", func(t *testing.T) {
		mockQuerier.EXPECT().DeactivateAddon(gomock.Any(), gomock.Any(), racket.ID).Return(int64(0), nil)

		err := svc.Delete(ctx, racket.ID.String())

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
