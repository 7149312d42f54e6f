package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/savioruz/reserva/config"
	availability "github.com/savioruz/reserva/internal/domains/availability/service"
	"github.com/savioruz/reserva/internal/domains/bookings/dto"
	"github.com/savioruz/reserva/internal/domains/bookings/repository"
	"github.com/savioruz/reserva/internal/domains/bookings/status"
	users "github.com/savioruz/reserva/internal/domains/user/repository"
	"github.com/savioruz/reserva/pkg/clock"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/gdto"
	"github.com/savioruz/reserva/pkg/helper"
	"github.com/savioruz/reserva/pkg/logger"
	"github.com/savioruz/reserva/pkg/mail"
	"github.com/savioruz/reserva/pkg/metrics"
	"github.com/savioruz/reserva/pkg/postgres"
	"github.com/savioruz/reserva/pkg/redis"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go -package=mock github.com/savioruz/reserva/internal/domains/bookings/service BookingService

type BookingService interface {
	// Submit drives a draft through pricing and, unless deferred, persists it as a pending booking.
	Submit(ctx context.Context, draft dto.CreateBookingRequest, deferred bool) (sub Submission, err error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingEnvelope, err error)
	Lookup(ctx context.Context, token string) (res dto.BookingResponse, err error)
	Cancel(ctx context.Context, token string, req dto.CancelRequest) (res dto.BookingResponse, err error)
	Receipt(ctx context.Context, token string) (pdf []byte, err error)
	List(ctx context.Context, req dto.ListBookingsRequest) (res gdto.Page[dto.BookingResponse], err error)
	Mine(ctx context.Context, userID string, req gdto.PaginationRequest) (res gdto.Page[dto.BookingResponse], err error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error)
	Export(ctx context.Context, req dto.ExportRequest) (xlsx []byte, err error)
}

const (
	cacheBookingsKey = "bookings"

	identifier = "service - booking - %s"

	tokenAttempts = 5

	msgTokenNotFound = "token not found"
	msgStale         = "booking was modified by another request, reload and retry"
)

type bookingService struct {
	db           postgres.PgxIface
	repo         repository.Repository
	users        users.Querier
	availability availability.AvailabilityService
	cache        redis.IRedisCache
	mailer       mail.Service
	clock        clock.Clock
	cfg          *config.Config
	logger       logger.Interface
}

func New(
	db postgres.PgxIface,
	repo repository.Repository,
	ur users.Querier,
	as availability.AvailabilityService,
	cache redis.IRedisCache,
	m mail.Service,
	c clock.Clock,
	cfg *config.Config,
	l logger.Interface,
) BookingService {
	return &bookingService{
		db:           db,
		repo:         repo,
		users:        ur,
		availability: as,
		cache:        cache,
		mailer:       m,
		clock:        c,
		cfg:          cfg,
		logger:       l,
	}
}

func (s *bookingService) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingEnvelope, err error) {
	sub, err := s.Submit(ctx, req, false)
	if err != nil {
		return res, err
	}

	return dto.BookingEnvelope{Booking: sub.Booking}, nil
}

func (s *bookingService) Lookup(ctx context.Context, token string) (res dto.BookingResponse, err error) {
	booking, err := s.byToken(ctx, s.db, token)
	if err != nil {
		return res, err
	}

	return s.detail(ctx, s.db, booking)
}

// Cancel is the guest cancellation: only a pending booking can be canceled with its token.
func (s *bookingService) Cancel(ctx context.Context, token string, req dto.CancelRequest) (res dto.BookingResponse, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "cancel - failed to begin transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "cancel - failed to rollback transaction: "+err.Error())
		}
	}(tx, ctx)

	booking, err := s.byToken(ctx, tx, token)
	if err != nil {
		return res, err
	}

	updated, err := s.transition(ctx, tx, booking, status.Canceled, req.Reason, constant.BookingCanceledByUser)
	if err != nil {
		return res, err
	}

	res, err = s.detail(ctx, tx, updated)
	if err != nil {
		return res, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "cancel - failed to commit transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	s.afterTransition(ctx, res)

	return res, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "updateStatus - failed to begin transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "updateStatus - failed to rollback transaction: "+err.Error())
		}
	}(tx, ctx)

	booking, err := s.repo.GetBookingByID(ctx, tx, helper.PgUUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, failure.NotFound("booking not found")
		}

		s.logger.Error(identifier, "updateStatus - failed to get booking: "+err.Error())

		return res, failure.InternalError(err)
	}

	to, err := status.Parse(status.Kind(booking.Kind), req.Status)
	if err != nil {
		return res, failure.BadRequestFromString("unknown status " + req.Status)
	}

	updated, err := s.transition(ctx, tx, booking, to, req.Reason, constant.BookingCanceledByAdmin)
	if err != nil {
		return res, err
	}

	res, err = s.detail(ctx, tx, updated)
	if err != nil {
		return res, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "updateStatus - failed to commit transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	s.afterTransition(ctx, res)

	return res, nil
}

func (s *bookingService) List(ctx context.Context, req dto.ListBookingsRequest) (res gdto.Page[dto.BookingResponse], err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	filter := repository.BookingFilter{
		Status:   req.Status,
		Kind:     req.Kind,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Query:    req.Q,
		Limit:    uint64(limit),
		Offset:   uint64(helper.CalculateOffset(page, limit)),
	}

	total, err := s.repo.CountBookings(ctx, s.db, filter)
	if err != nil {
		s.logger.Error(identifier, "list - failed to count bookings: "+err.Error())

		return res, failure.InternalError(err)
	}

	bookings, err := s.repo.ListBookings(ctx, s.db, filter)
	if err != nil {
		s.logger.Error(identifier, "list - failed to list bookings: "+err.Error())

		return res, failure.InternalError(err)
	}

	items := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, dto.BookingResponse{}.FromModel(b))
	}

	return gdto.NewPage(items, int(total), limit), nil
}

func (s *bookingService) Mine(ctx context.Context, userID string, req gdto.PaginationRequest) (res gdto.Page[dto.BookingResponse], err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	}
	cacheKey := helper.BuildCacheKey(cacheBookingsKey, "user:"+userID+":"+helper.GenerateUniqueKey(keyArgs))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		s.logger.Debug(identifier, "mine - cache hit for user "+userID)

		return res, nil
	}

	uid := helper.PgUUID(userID)

	total, err := s.repo.CountBookingsByUserID(ctx, s.db, uid)
	if err != nil {
		s.logger.Error(identifier, "mine - failed to count bookings: "+err.Error())

		return res, failure.InternalError(err)
	}

	bookings, err := s.repo.GetBookingsByUserID(ctx, s.db, repository.GetBookingsByUserIDParams{
		UserID: uid,
		Limit:  int32(limit),
		Offset: int32(helper.CalculateOffset(page, limit)),
	})
	if err != nil {
		s.logger.Error(identifier, "mine - failed to get bookings: "+err.Error())

		return res, failure.InternalError(err)
	}

	items := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, dto.BookingResponse{}.FromModel(b))
	}

	res = gdto.NewPage(items, int(total), limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "mine - failed to save cache: "+err.Error())
		}
	}()

	return res, nil
}

func (s *bookingService) byToken(ctx context.Context, db repository.DBTX, token string) (repository.Booking, error) {
	token = helper.NormalizeBookingToken(token)
	if token == "" {
		return repository.Booking{}, failure.NotFound(msgTokenNotFound)
	}

	booking, err := s.repo.GetBookingByToken(ctx, db, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return booking, failure.NotFound(msgTokenNotFound)
		}

		s.logger.Error(identifier, "byToken - failed to get booking: "+err.Error())

		return booking, failure.InternalError(err)
	}

	return booking, nil
}

func (s *bookingService) detail(ctx context.Context, db repository.DBTX, booking repository.Booking) (res dto.BookingResponse, err error) {
	slots, err := s.repo.GetBookingSlots(ctx, db, booking.ID)
	if err != nil {
		s.logger.Error(identifier, "detail - failed to get slots: "+err.Error())

		return res, failure.InternalError(err)
	}

	addons, err := s.repo.GetBookingAddons(ctx, db, booking.ID)
	if err != nil {
		s.logger.Error(identifier, "detail - failed to get services: "+err.Error())

		return res, failure.InternalError(err)
	}

	return dto.BookingResponse{}.FromModel(booking).WithLines(slots, addons), nil
}

// transition applies the lifecycle table of the booking's kind and frees the slots once the booking is no longer active.
func (s *bookingService) transition(
	ctx context.Context,
	tx pgx.Tx,
	booking repository.Booking,
	to status.Status,
	reason, actor string,
) (repository.Booking, error) {
	kind := status.Kind(booking.Kind)
	from := status.Status(booking.Status)

	if err := status.Transition(kind, from, to); err != nil {
		if errors.Is(err, status.ErrNotCancelable) {
			return booking, failure.Conflict(err.Error())
		}

		return booking, failure.Conflict("cannot move booking from " + status.Label(kind, from) + " to " + status.Label(kind, to))
	}

	params := repository.UpdateBookingStatusParams{
		ID:         booking.ID,
		Status:     string(to),
		FromStatus: string(from),
	}

	if to == status.Canceled {
		params.CancelReason = helper.PgString(reason)
		params.CanceledBy = helper.PgString(actor)
	}

	updated, err := s.repo.UpdateBookingStatus(ctx, tx, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return booking, failure.Conflict(msgStale)
		}

		s.logger.Error(identifier, "transition - failed to update status: "+err.Error())

		return booking, failure.InternalError(err)
	}

	if !status.Active(to) {
		if _, err := s.repo.DeactivateBookingSlots(ctx, tx, booking.ID); err != nil {
			s.logger.Error(identifier, "transition - failed to deactivate slots: "+err.Error())

			return booking, failure.InternalError(err)
		}
	}

	return updated, nil
}

func (s *bookingService) afterTransition(ctx context.Context, res dto.BookingResponse) {
	metrics.RecordTransition(res.Kind, res.Status)

	s.invalidate(ctx)

	if res.Status == string(status.Canceled) {
		s.notify(res, true)
	}
}

func (s *bookingService) invalidate(ctx context.Context) {
	go func() {
		if err := s.cache.Clear(context.WithoutCancel(ctx), helper.BuildCacheKey(cacheBookingsKey, "*")); err != nil {
			s.logger.Error(identifier, "invalidate - failed to clear cache: "+err.Error())
		}
	}()
}

func (s *bookingService) notify(res dto.BookingResponse, canceled bool) {
	to := res.ContactSnapshot.Email
	if !s.cfg.Mail.Enabled || to == "" {
		return
	}

	data := mail.BookingData{
		CustomerName:  res.ContactSnapshot.Name,
		Token:         res.MaPD,
		Status:        res.StatusLabel,
		UsageDate:     res.NgaySuDung,
		PaymentMethod: res.PaymentMethod,
		GrandTotal:    helper.FormatVND(res.Summary.GrandTotal),
		Reason:        res.CancelReason,
		LookupURL:     s.cfg.App.URL + "/bookings/" + res.MaPD,
	}

	for _, sl := range res.Slots {
		data.Lines = append(data.Lines, mail.BookingLine{
			Label:  sl.ResourceName,
			Detail: sl.StartTime + " - " + sl.EndTime,
			Amount: helper.FormatVND(sl.Price),
		})
	}

	for _, sv := range res.Services {
		data.Lines = append(data.Lines, mail.BookingLine{
			Label:  sv.Name,
			Detail: "x" + strconv.Itoa(int(sv.SoLuong)),
			Amount: helper.FormatVND(sv.LineTotal),
		})
	}

	go func() {
		send := s.mailer.SendBookingReceived
		if canceled {
			send = s.mailer.SendBookingCanceled
		}

		if err := send(to, data); err != nil {
			s.logger.Error(identifier, "notify - failed to send mail: "+err.Error())
		}
	}()
}
