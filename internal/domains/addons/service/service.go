package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/savioruz/reserva/config"
	"github.com/savioruz/reserva/internal/domains/addons/dto"
	"github.com/savioruz/reserva/internal/domains/addons/repository"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/helper"
	"github.com/savioruz/reserva/pkg/logger"
	"github.com/savioruz/reserva/pkg/postgres"
	"github.com/savioruz/reserva/pkg/redis"
)

type AddonService interface {
	List(ctx context.Context) (res []dto.AddonResponse, err error)
	Create(ctx context.Context, req dto.AddonRequest) (res dto.AddonResponse, err error)
	Update(ctx context.Context, id string, req dto.AddonRequest) (res dto.AddonResponse, err error)
	Delete(ctx context.Context, id string) error
}

const (
	cacheAddonsKey = "addons"
	defaultUnit    = "cái"

	identifier = "service - addon - %s"
)

type addonService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	cfg    *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) AddonService {
	return &addonService{
		db:     db,
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
		logger: l,
	}
}

func (s *addonService) List(ctx context.Context) (res []dto.AddonResponse, err error) {
	cacheKey := helper.BuildCacheKey(cacheAddonsKey, "active")

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	addons, err := s.repo.ListAddons(ctx, s.db, true)
	if err != nil {
		s.logger.Error(identifier, "list - failed to list addons: "+err.Error())

		return nil, failure.InternalError(err)
	}

	res = make([]dto.AddonResponse, 0, len(addons))
	for _, a := range addons {
		res = append(res, dto.AddonResponse{}.FromModel(a))
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "list - failed to save cache: "+err.Error())
		}
	}()

	return res, nil
}

func (s *addonService) Create(ctx context.Context, req dto.AddonRequest) (res dto.AddonResponse, err error) {
	addon, err := s.repo.CreateAddon(ctx, s.db, repository.CreateAddonParams{
		Name:      req.Name,
		Unit:      unitOrDefault(req.Unit),
		UnitPrice: helper.PgInt64(req.UnitPrice),
		Active:    req.Active == nil || *req.Active,
	})
	if err != nil {
		s.logger.Error(identifier, "create - failed to create addon: "+err.Error())

		return res, failure.InternalError(err)
	}

	s.invalidate(ctx)

	return dto.AddonResponse{}.FromModel(addon), nil
}

func (s *addonService) Update(ctx context.Context, id string, req dto.AddonRequest) (res dto.AddonResponse, err error) {
	current, err := s.repo.GetAddonByID(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, failure.NotFound("service not found")
		}

		s.logger.Error(identifier, "update - failed to get addon: "+err.Error())

		return res, failure.InternalError(err)
	}

	active := current.Active
	if req.Active != nil {
		active = *req.Active
	}

	addon, err := s.repo.UpdateAddon(ctx, s.db, repository.UpdateAddonParams{
		ID:        current.ID,
		Name:      req.Name,
		Unit:      unitOrDefault(req.Unit),
		UnitPrice: helper.PgInt64(req.UnitPrice),
		Active:    active,
	})
	if err != nil {
		s.logger.Error(identifier, "update - failed to update addon: "+err.Error())

		return res, failure.InternalError(err)
	}

	s.invalidate(ctx)

	return dto.AddonResponse{}.FromModel(addon), nil
}

// Delete deactivates the addon; booked lines keep referencing it.
func (s *addonService) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.DeactivateAddon(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		s.logger.Error(identifier, "delete - failed to deactivate addon: "+err.Error())

		return failure.InternalError(err)
	}

	if rows == 0 {
		return failure.NotFound("service not found")
	}

	s.invalidate(ctx)

	return nil
}

func (s *addonService) invalidate(ctx context.Context) {
	go func() {
		if err := s.cache.Clear(context.WithoutCancel(ctx), helper.BuildCacheKey(cacheAddonsKey, "*")); err != nil {
			s.logger.Error(identifier, "invalidate - failed to clear cache: "+err.Error())
		}
	}()
}

func unitOrDefault(unit string) string {
	if unit == "" {
		return defaultUnit
	}

	return unit
}
