package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/savioruz/reserva/config"
	availability "github.com/savioruz/reserva/internal/domains/availability/service"
	bookingdto "github.com/savioruz/reserva/internal/domains/bookings/dto"
	bookings "github.com/savioruz/reserva/internal/domains/bookings/service"
	bookingmock "github.com/savioruz/reserva/internal/domains/bookings/service/mock"
	"github.com/savioruz/reserva/internal/domains/payments/dto"
	"github.com/savioruz/reserva/pkg/clock"
	"github.com/savioruz/reserva/pkg/failure"
	log "github.com/savioruz/reserva/pkg/logger/mock"
	"github.com/savioruz/reserva/pkg/redis"
	redismock "github.com/savioruz/reserva/pkg/redis/mock"
	"github.com/savioruz/reserva/pkg/xendit"
	xenditmock "github.com/savioruz/reserva/pkg/xendit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	bookings *bookingmock.MockBookingService
	cache    *redismock.MockIRedisCache
	gateway  *xenditmock.MockGateway
	clock    *clock.MockClock
	cfg      *config.Config
	svc      PaymentService
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	f := fixture{
		bookings: bookingmock.NewMockBookingService(ctrl),
		cache:    redismock.NewMockIRedisCache(ctrl),
		gateway:  xenditmock.NewMockGateway(ctrl),
		clock:    clock.NewMockClock(time.Date(2025, 5, 31, 8, 0, 0, 0, time.UTC)),
		cfg:      &config.Config{},
	}

	f.cfg.Payment.HoldDuration = 15 * time.Minute
	f.cfg.Payment.Gateway = "manual"
	f.cfg.Payment.BankName = "VCB"
	f.cfg.Payment.AccountNumber = "0123456789"
	f.cfg.Payment.AccountName = "RESERVA"

	f.svc = New(f.bookings, f.cache, f.gateway, f.clock, f.cfg, mockLogger)

	return f
}

func draft() bookingdto.CreateBookingRequest {
	return bookingdto.CreateBookingRequest{
		NgaySuDung:      "2025-06-01",
		PaymentMethod:   "bank_transfer",
		ContactSnapshot: &bookingdto.ContactSnapshot{Name: "Nguyen Van A", Email: "a@example.com"},
	}
}

func pending(d bookingdto.CreateBookingRequest) bookings.Submission {
	return bookings.Submission{
		Stage: bookings.StagePaymentPending,
		Draft: d,
		Quote: availability.Quote{Kind: "court", SlotsTotal: 200000, ServicesTotal: 60000, GrandTotal: 260000},
	}
}

func (f fixture) expectTake(hold Hold) {
	f.cache.EXPECT().Take(gomock.Any(), holdKey(hold.ID), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, v any) error {
			*v.(*Hold) = hold

			return nil
		})
}

func TestPaymentService_CreateHold(t *testing.T) {
	ctx := context.Background()

	t.Run("error: draft rejected", func(t *testing.T) {
		f := newFixture(t)
		d := draft()

		f.bookings.EXPECT().Submit(gomock.Any(), d, true).Return(bookings.Submission{}, failure.Validation("booking request is invalid", "slot 1: time slot already reserved"))

		_, err := f.svc.CreateHold(ctx, d)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: redis unavailable", func(t *testing.T) {
		f := newFixture(t)
		d := draft()

		f.bookings.EXPECT().Submit(gomock.Any(), d, true).Return(pending(d), nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 900).Return(assert.AnError)

		_, err := f.svc.CreateHold(ctx, d)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: manual bank transfer", func(t *testing.T) {
		f := newFixture(t)
		d := draft()

		f.bookings.EXPECT().Submit(gomock.Any(), d, true).Return(pending(d), nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 900).
			DoAndReturn(func(_ context.Context, key string, v any, _ int) error {
				hold := v.(Hold)

				assert.Equal(t, holdKey(hold.ID), key)
				assert.Equal(t, d, hold.Draft)
				assert.Equal(t, int64(260000), hold.Amount)

				return nil
			})

		res, err := f.svc.CreateHold(ctx, d)

		require.NoError(t, err)
		assert.Equal(t, int64(260000), res.Payment.Amount)
		assert.Equal(t, "2025-05-31T08:15:00Z", res.Payment.ExpiresAt)
		assert.True(t, strings.HasPrefix(res.Payment.TransferContent, "RESERVA "))
		assert.Equal(t, "/v1/public/payments/"+res.Payment.HoldID+"/qr", res.Payment.QRURL)
		assert.Empty(t, res.Payment.PaymentURL)
		assert.Equal(t, "VCB", res.Payment.Bank.BankName)
		assert.Equal(t, int64(260000), res.Payment.Quote.Summary.GrandTotal)
	})

	t.Run("success: xendit invoice", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.Payment.Gateway = "xendit"
		d := draft()

		f.bookings.EXPECT().Submit(gomock.Any(), d, true).Return(pending(d), nil)
		f.gateway.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req xendit.InvoiceRequest) (xendit.Invoice, error) {
				assert.Equal(t, int64(260000), req.Amount)
				assert.Equal(t, "VND", req.Currency)
				assert.Equal(t, "a@example.com", req.PayerEmail)

				return xendit.Invoice{ID: "inv-1", URL: "https://checkout.xendit.co/inv-1"}, nil
			})
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 900).Return(nil)

		res, err := f.svc.CreateHold(ctx, d)

		require.NoError(t, err)
		assert.Equal(t, "https://checkout.xendit.co/inv-1", res.Payment.PaymentURL)
	})
}

func TestPaymentService_QR(t *testing.T) {
	ctx := context.Background()

	t.Run("error: expired hold", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), holdKey("h1"), gomock.Any()).Return(redis.ErrNil)

		_, err := f.svc.QR(ctx, "h1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success: png", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), holdKey("h1"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, v any) error {
				*v.(*Hold) = Hold{ID: "h1", Amount: 260000, TransferContent: "RESERVA ABC"}

				return nil
			})

		png, err := f.svc.QR(ctx, "h1")

		require.NoError(t, err)
		assert.Equal(t, []byte("\x89PNG"), png[:4])
	})
}

func TestPaymentService_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("error: hold already claimed or expired", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Take(gomock.Any(), holdKey("h1"), gomock.Any()).Return(redis.ErrNil)

		_, err := f.svc.Confirm(ctx, "h1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "payment hold not found or expired", err.Error())
	})

	t.Run("error: slot lost while paying", func(t *testing.T) {
		f := newFixture(t)
		hold := Hold{ID: "h1", Draft: draft(), ExpiresAt: f.clock.Now().Add(10 * time.Minute)}

		f.expectTake(hold)
		f.bookings.EXPECT().Submit(gomock.Any(), hold.Draft, false).Return(bookings.Submission{}, failure.Conflict("time slot already reserved"))

		_, err := f.svc.Confirm(ctx, "h1")

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("error: internal failure puts the hold back", func(t *testing.T) {
		f := newFixture(t)
		hold := Hold{ID: "h1", Draft: draft(), ExpiresAt: f.clock.Now().Add(10 * time.Minute)}

		f.expectTake(hold)
		f.bookings.EXPECT().Submit(gomock.Any(), hold.Draft, false).Return(bookings.Submission{}, failure.InternalError(assert.AnError))
		f.cache.EXPECT().Save(gomock.Any(), holdKey("h1"), hold, 600).Return(nil)

		_, err := f.svc.Confirm(ctx, "h1")

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: draft submitted", func(t *testing.T) {
		f := newFixture(t)
		hold := Hold{ID: "h1", Draft: draft()}

		f.expectTake(hold)
		f.bookings.EXPECT().Submit(gomock.Any(), hold.Draft, false).Return(bookings.Submission{
			Stage:   bookings.StageSubmitted,
			Booking: bookingdto.BookingResponse{MaPD: "PD7KQ2M9XA", Status: "pending"},
		}, nil)

		res, err := f.svc.Confirm(ctx, "h1")

		require.NoError(t, err)
		assert.Equal(t, "PD7KQ2M9XA", res.Booking.MaPD)
	})
}

func TestPaymentService_Abandon(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Delete(gomock.Any(), holdKey("h1")).Return(nil)

	require.NoError(t, f.svc.Abandon(context.Background(), "h1"))
}

func TestPaymentService_Callbacks(t *testing.T) {
	ctx := context.Background()

	t.Run("error: bad callback token", func(t *testing.T) {
		f := newFixture(t)

		f.gateway.EXPECT().VerifyCallback("nope").Return(false)

		err := f.svc.Callbacks(ctx, dto.PaymentCallbackRequest{ExternalID: "h1", Status: "PAID"}, "nope")

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("success: expired invoice drops the hold", func(t *testing.T) {
		f := newFixture(t)

		f.gateway.EXPECT().VerifyCallback("tok").Return(true)
		f.cache.EXPECT().Delete(gomock.Any(), holdKey("h1")).Return(nil)

		require.NoError(t, f.svc.Callbacks(ctx, dto.PaymentCallbackRequest{ExternalID: "h1", Status: "EXPIRED"}, "tok"))
	})

	t.Run("success: paid invoice confirms the hold", func(t *testing.T) {
		f := newFixture(t)
		hold := Hold{ID: "h1", Draft: draft()}

		f.gateway.EXPECT().VerifyCallback("tok").Return(true)
		f.expectTake(hold)
		f.bookings.EXPECT().Submit(gomock.Any(), hold.Draft, false).Return(bookings.Submission{Stage: bookings.StageSubmitted}, nil)

		require.NoError(t, f.svc.Callbacks(ctx, dto.PaymentCallbackRequest{ExternalID: "h1", Status: "PAID"}, "tok"))
	})
}
