package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/savioruz/reserva/config"
	bookingdto "github.com/savioruz/reserva/internal/domains/bookings/dto"
	bookings "github.com/savioruz/reserva/internal/domains/bookings/service"
	"github.com/savioruz/reserva/internal/domains/payments/dto"
	"github.com/savioruz/reserva/pkg/clock"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/logger"
	"github.com/savioruz/reserva/pkg/metrics"
	"github.com/savioruz/reserva/pkg/receipt"
	"github.com/savioruz/reserva/pkg/redis"
	"github.com/savioruz/reserva/pkg/xendit"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go -package=mock github.com/savioruz/reserva/internal/domains/payments/service PaymentService
type PaymentService interface {
	// CreateHold prices a bank transfer draft and keeps it in Redis until the payment is confirmed.
	CreateHold(ctx context.Context, req bookingdto.CreateBookingRequest) (res dto.HoldEnvelope, err error)
	QR(ctx context.Context, holdID string) (png []byte, err error)
	Confirm(ctx context.Context, holdID string) (res bookingdto.BookingEnvelope, err error)
	Abandon(ctx context.Context, holdID string) error
	Callbacks(ctx context.Context, req dto.PaymentCallbackRequest, token string) error
}

const (
	identifier = "service - payments - %s"

	transferPrefix = "RESERVA"
	qrRoute        = "/v1/public/payments/%s/qr"

	holdCreated   = "created"
	holdConfirmed = "confirmed"
	holdAbandoned = "abandoned"
	holdExpired   = "expired"
)

var errHoldNotFound = failure.NotFound("payment hold not found or expired")

// Hold is a priced draft waiting for its bank transfer. No booking row exists while it is held.
type Hold struct {
	ID              string                          `json:"id"`
	Draft           bookingdto.CreateBookingRequest `json:"draft"`
	Amount          int64                           `json:"amount"`
	TransferContent string                          `json:"transfer_content"`
	InvoiceID       string                          `json:"invoice_id,omitempty"`
	PaymentURL      string                          `json:"payment_url,omitempty"`
	ExpiresAt       time.Time                       `json:"expires_at"`
}

type paymentService struct {
	bookings bookings.BookingService
	cache    redis.IRedisCache
	gateway  xendit.Gateway
	clock    clock.Clock
	cfg      *config.Config
	logger   logger.Interface
}

func New(
	b bookings.BookingService,
	c redis.IRedisCache,
	g xendit.Gateway,
	clk clock.Clock,
	cfg *config.Config,
	l logger.Interface,
) PaymentService {
	return &paymentService{
		bookings: b,
		cache:    c,
		gateway:  g,
		clock:    clk,
		cfg:      cfg,
		logger:   l,
	}
}

func holdKey(id string) string {
	return fmt.Sprintf("%s:hold:%s", constant.CacheParentKey, id)
}

func transferContent(holdID string) string {
	code := strings.ToUpper(strings.ReplaceAll(holdID, "-", ""))

	return transferPrefix + " " + code[:10]
}

func (s *paymentService) CreateHold(ctx context.Context, req bookingdto.CreateBookingRequest) (res dto.HoldEnvelope, err error) {
	sub, err := s.bookings.Submit(ctx, req, true)
	if err != nil {
		return res, err
	}

	now := s.clock.Now()
	id := uuid.NewString()

	hold := Hold{
		ID:              id,
		Draft:           sub.Draft,
		Amount:          sub.Quote.GrandTotal,
		TransferContent: transferContent(id),
		ExpiresAt:       now.Add(s.cfg.Payment.HoldDuration),
	}

	if s.cfg.Payment.Gateway == constant.PaymentGatewayXendit {
		inv, err := s.gateway.CreateInvoice(ctx, xendit.InvoiceRequest{
			ExternalID:  id,
			Amount:      hold.Amount,
			Currency:    constant.PaymentCurrencyVND,
			Description: hold.TransferContent,
			PayerEmail:  contactEmail(sub.Draft),
		})
		if err != nil {
			s.logger.Error(identifier, "createHold - failed to create invoice: "+err.Error())

			return res, failure.InternalError(err)
		}

		hold.InvoiceID = inv.ID
		hold.PaymentURL = inv.URL
	}

	if err = s.cache.Save(ctx, holdKey(id), hold, int(s.cfg.Payment.HoldDuration.Seconds())); err != nil {
		s.logger.Error(identifier, "createHold - failed to save hold: "+err.Error())

		return res, failure.InternalError(err)
	}

	metrics.RecordHold(holdCreated)

	return dto.HoldEnvelope{Payment: dto.HoldResponse{
		HoldID:          id,
		Amount:          hold.Amount,
		ExpiresAt:       hold.ExpiresAt.Format(constant.FullDateFormat),
		TransferContent: hold.TransferContent,
		QRURL:           fmt.Sprintf(qrRoute, id),
		PaymentURL:      hold.PaymentURL,
		Bank:            s.bank(),
		Quote:           sub.Quote.Response(),
	}}, nil
}

// QR encodes the transfer instructions so a banking app can prefill them.
func (s *paymentService) QR(ctx context.Context, holdID string) (png []byte, err error) {
	var hold Hold
	if err = s.cache.Get(ctx, holdKey(holdID), &hold); err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, errHoldNotFound
		}

		s.logger.Error(identifier, "qr - failed to get hold: "+err.Error())

		return nil, failure.InternalError(err)
	}

	bank := s.bank()
	payload := strings.Join([]string{
		bank.BankName,
		bank.AccountNumber,
		bank.AccountName,
		fmt.Sprintf("%d", hold.Amount),
		hold.TransferContent,
	}, "|")

	png, err = receipt.QR(payload)
	if err != nil {
		s.logger.Error(identifier, "qr - failed to encode: "+err.Error())

		return nil, failure.InternalError(err)
	}

	return png, nil
}

// Confirm claims the hold and submits its draft. A hold can be claimed once, so a repeated confirm gets 404.
func (s *paymentService) Confirm(ctx context.Context, holdID string) (res bookingdto.BookingEnvelope, err error) {
	var hold Hold
	if err = s.cache.Take(ctx, holdKey(holdID), &hold); err != nil {
		if errors.Is(err, redis.ErrNil) {
			return res, errHoldNotFound
		}

		s.logger.Error(identifier, "confirm - failed to take hold: "+err.Error())

		return res, failure.InternalError(err)
	}

	sub, err := s.bookings.Submit(ctx, hold.Draft, false)
	if err != nil {
		if failure.GetCode(err) >= http.StatusInternalServerError {
			s.restore(ctx, hold)
		}

		return res, err
	}

	metrics.RecordHold(holdConfirmed)

	return bookingdto.BookingEnvelope{Booking: sub.Booking}, nil
}

func (s *paymentService) Abandon(ctx context.Context, holdID string) error {
	if err := s.cache.Delete(ctx, holdKey(holdID)); err != nil {
		s.logger.Error(identifier, "abandon - failed to delete hold: "+err.Error())

		return failure.InternalError(err)
	}

	metrics.RecordHold(holdAbandoned)

	return nil
}

func (s *paymentService) Callbacks(ctx context.Context, req dto.PaymentCallbackRequest, token string) error {
	if !s.gateway.VerifyCallback(token) {
		s.logger.Error(identifier, "callbacks - invalid callback token")

		return failure.Unauthorized("invalid callback token")
	}

	if req.Status != constant.PaymentStatusPaid {
		if err := s.cache.Delete(ctx, holdKey(req.ExternalID)); err != nil {
			s.logger.Error(identifier, "callbacks - failed to drop hold: "+err.Error())

			return failure.InternalError(err)
		}

		metrics.RecordHold(holdExpired)

		return nil
	}

	_, err := s.Confirm(ctx, req.ExternalID)

	return err
}

// restore puts a claimed hold back for its remaining lifetime after a failure that was not the customer's fault.
func (s *paymentService) restore(ctx context.Context, hold Hold) {
	ttl := int(hold.ExpiresAt.Sub(s.clock.Now()).Seconds())
	if ttl <= 0 {
		return
	}

	if err := s.cache.Save(context.WithoutCancel(ctx), holdKey(hold.ID), hold, ttl); err != nil {
		s.logger.Error(identifier, "restore - failed to save hold: "+err.Error())
	}
}

func (s *paymentService) bank() dto.BankAccount {
	return dto.BankAccount{
		BankName:      s.cfg.Payment.BankName,
		AccountNumber: s.cfg.Payment.AccountNumber,
		AccountName:   s.cfg.Payment.AccountName,
	}
}

func contactEmail(d bookingdto.CreateBookingRequest) string {
	if d.ContactSnapshot == nil {
		return ""
	}

	return d.ContactSnapshot.Email
}
