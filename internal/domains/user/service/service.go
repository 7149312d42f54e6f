package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/savioruz/reserva/config"
	"github.com/savioruz/reserva/internal/domains/user/dto"
	"github.com/savioruz/reserva/internal/domains/user/repository"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/helper"
	"github.com/savioruz/reserva/pkg/logger"
	"github.com/savioruz/reserva/pkg/postgres"
	"github.com/savioruz/reserva/pkg/redis"
)

type UserService interface {
	Profile(ctx context.Context, userID string) (res dto.UserProfileResponse, err error)
}

const (
	identifier      = "service - user - %s"
	cacheProfileKey = "user:profile"
)

type userService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	config *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) UserService {
	return &userService{
		db:     db,
		repo:   repo,
		cache:  cache,
		config: cfg,
		logger: l,
	}
}

func (s *userService) Profile(ctx context.Context, userID string) (res dto.UserProfileResponse, err error) {
	id := helper.PgUUID(userID)
	if !id.Valid {
		return res, failure.BadRequestFromString("invalid user id")
	}

	key := helper.BuildCacheKey(cacheProfileKey, userID)

	if err = s.cache.Get(ctx, key, &res); err == nil {
		return res, nil
	}

	user, err := s.repo.GetUserByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, failure.NotFound("user not found")
		}

		s.logger.Error(identifier, "profile - failed to get user: "+err.Error())

		return res, failure.InternalError(err)
	}

	res = dto.UserProfileResponse{}.FromModel(user)

	go func() {
		if cacheErr := s.cache.Save(context.WithoutCancel(ctx), key, res, s.config.Cache.Duration); cacheErr != nil {
			s.logger.Error(identifier, "profile - failed to set cache: "+cacheErr.Error())
		}
	}()

	return res, nil
}
