package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/savioruz/reserva/config"
	"github.com/savioruz/reserva/internal/domains/resources/dto"
	"github.com/savioruz/reserva/internal/domains/resources/repository"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/gdto"
	"github.com/savioruz/reserva/pkg/helper"
	"github.com/savioruz/reserva/pkg/logger"
	"github.com/savioruz/reserva/pkg/postgres"
	"github.com/savioruz/reserva/pkg/redis"
)

type ResourceService interface {
	Create(ctx context.Context, kind string, req dto.ResourceCreateRequest) (res dto.ResourceResponse, err error)
	Get(ctx context.Context, kind, id string) (res dto.ResourceResponse, err error)
	List(ctx context.Context, kind string, req gdto.PaginationRequest) (res gdto.Page[dto.ResourceResponse], err error)
	Update(ctx context.Context, kind, id string, req dto.ResourceUpdateRequest) (res dto.ResourceResponse, err error)
	Delete(ctx context.Context, kind, id string) error
	UpdateTableStatus(ctx context.Context, id string, req dto.TableStatusRequest) (res dto.ResourceResponse, err error)
}

const (
	cacheResourcesKey = "resources"

	identifier = "service - resource - %s"

	msgTableStatusVersioned = "table status must be changed through PUT /tables/:id/status with the current version"
)

var errStaleVersion = failure.Conflict("resource was modified by another request, reload and retry")

type resourceService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	cfg    *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Querier, cache redis.IRedisCache, cfg *config.Config, l logger.Interface) ResourceService {
	return &resourceService{
		db:     db,
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
		logger: l,
	}
}

func (s *resourceService) Create(ctx context.Context, kind string, req dto.ResourceCreateRequest) (res dto.ResourceResponse, err error) {
	status := constant.ResourceStatusAvailable
	if req.Status != "" {
		if status, err = dto.ParseStatus(kind, req.Status); err != nil {
			return res, failure.BadRequest(err)
		}
	}

	resource, err := s.repo.CreateResource(ctx, s.db, repository.CreateResourceParams{
		Kind:        kind,
		Name:        req.Name,
		Capacity:    req.Capacity,
		Status:      status,
		Description: helper.PgString(req.Description),
		Images:      nonNil(req.Images),
	})
	if err != nil {
		s.logger.Error(identifier, "create - failed to create resource: "+err.Error())

		return res, failure.InternalError(err)
	}

	s.invalidate(ctx)

	return dto.ResourceResponse{}.FromModel(resource), nil
}

func (s *resourceService) Get(ctx context.Context, kind, id string) (res dto.ResourceResponse, err error) {
	cacheKey := helper.BuildCacheKey(cacheResourcesKey, "id:"+id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil && res.Kind == kind {
		return res, nil
	}

	resource, err := s.find(ctx, s.db, kind, id)
	if err != nil {
		return res, err
	}

	res = dto.ResourceResponse{}.FromModel(resource)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get - failed to save cache: "+err.Error())
		}
	}()

	return res, nil
}

func (s *resourceService) List(ctx context.Context, kind string, req gdto.PaginationRequest) (res gdto.Page[dto.ResourceResponse], err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{
		"kind":   kind,
		"page":   strconv.Itoa(page),
		"limit":  strconv.Itoa(limit),
		"filter": req.Filter,
	}
	cacheKey := helper.BuildCacheKey(cacheResourcesKey, "list:"+helper.GenerateUniqueKey(keyArgs))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		s.logger.Debug(identifier, "list - cache hit for kind "+kind)

		return res, nil
	}

	total, err := s.repo.CountResources(ctx, s.db, repository.CountResourcesParams{
		Kind:    kind,
		Column2: req.Filter,
	})
	if err != nil {
		s.logger.Error(identifier, "list - failed to count resources: "+err.Error())

		return res, failure.InternalError(err)
	}

	resources, err := s.repo.ListResources(ctx, s.db, repository.ListResourcesParams{
		Kind:    kind,
		Column2: req.Filter,
		Limit:   int32(limit),
		Offset:  int32(helper.CalculateOffset(page, limit)),
	})
	if err != nil {
		s.logger.Error(identifier, "list - failed to list resources: "+err.Error())

		return res, failure.InternalError(err)
	}

	items := make([]dto.ResourceResponse, 0, len(resources))
	for _, r := range resources {
		items = append(items, dto.ResourceResponse{}.FromModel(r))
	}

	res = gdto.NewPage(items, int(total), limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "list - failed to save cache: "+err.Error())
		}
	}()

	return res, nil
}

func (s *resourceService) Update(ctx context.Context, kind, id string, req dto.ResourceUpdateRequest) (res dto.ResourceResponse, err error) {
	// table status is versioned and only changes through UpdateTableStatus
	if kind == constant.ResourceKindTable && req.Status != "" {
		return res, failure.BadRequestFromString(msgTableStatusVersioned)
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

	current, err := s.find(ctx, tx, kind, id)
	if err != nil {
		return res, err
	}

	params := repository.UpdateResourceParams{
		ID:          current.ID,
		Name:        current.Name,
		Capacity:    current.Capacity,
		Status:      current.Status,
		Description: current.Description,
		Images:      nonNil(current.Images),
	}

	if req.Name != "" {
		params.Name = req.Name
	}

	if req.Capacity != nil {
		params.Capacity = *req.Capacity
	}

	if req.Description != nil {
		params.Description = helper.PgString(*req.Description)
	}

	if req.Images != nil {
		params.Images = req.Images
	}

	if req.Status != "" {
		if params.Status, err = dto.ParseStatus(kind, req.Status); err != nil {
			return res, failure.BadRequest(err)
		}
	}

	updated, err := s.repo.UpdateResource(ctx, tx, params)
	if err != nil {
		s.logger.Error(identifier, "update - failed to update resource: "+err.Error())

		return res, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "update - failed to commit transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	s.invalidate(ctx)

	return dto.ResourceResponse{}.FromModel(updated), nil
}

func (s *resourceService) Delete(ctx context.Context, kind, id string) error {
	if _, err := s.find(ctx, s.db, kind, id); err != nil {
		return err
	}

	rows, err := s.repo.DeleteResource(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		s.logger.Error(identifier, "delete - failed to delete resource: "+err.Error())

		return failure.InternalError(err)
	}

	if rows == 0 {
		return failure.NotFound(kind + " not found")
	}

	s.invalidate(ctx)

	return nil
}

func (s *resourceService) UpdateTableStatus(ctx context.Context, id string, req dto.TableStatusRequest) (res dto.ResourceResponse, err error) {
	status, err := dto.ParseStatus(constant.ResourceKindTable, req.Status)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "updateTableStatus - failed to begin transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "updateTableStatus - failed to rollback transaction: "+err.Error())
		}
	}(tx, ctx)

	current, err := s.find(ctx, tx, constant.ResourceKindTable, id)
	if err != nil {
		return res, err
	}

	if current.Version != req.Version {
		return res, errStaleVersion
	}

	updated, err := s.repo.UpdateResourceStatus(ctx, tx, repository.UpdateResourceStatusParams{
		ID:      current.ID,
		Status:  status,
		Version: req.Version,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, errStaleVersion
		}

		s.logger.Error(identifier, "updateTableStatus - failed to update status: "+err.Error())

		return res, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "updateTableStatus - failed to commit transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	s.invalidate(ctx)

	return dto.ResourceResponse{}.FromModel(updated), nil
}

func (s *resourceService) find(ctx context.Context, db repository.DBTX, kind, id string) (res repository.Resource, err error) {
	res, err = s.repo.GetResourceByID(ctx, db, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, failure.NotFound(kind + " not found")
		}

		s.logger.Error(identifier, "find - failed to get resource: "+err.Error())

		return res, failure.InternalError(err)
	}

	if res.Kind != kind {
		return res, failure.NotFound(kind + " not found")
	}

	return res, nil
}

func (s *resourceService) invalidate(ctx context.Context) {
	go func() {
		if err := s.cache.Clear(context.WithoutCancel(ctx), helper.BuildCacheKey(cacheResourcesKey, "*")); err != nil {
			s.logger.Error(identifier, "invalidate - failed to clear cache: "+err.Error())
		}
	}()
}

func nonNil(images []string) []string {
	if images == nil {
		return []string{}
	}

	return images
}
