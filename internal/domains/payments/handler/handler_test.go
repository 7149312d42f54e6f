package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	bookingdto "github.com/savioruz/reserva/internal/domains/bookings/dto"
	"github.com/savioruz/reserva/internal/domains/payments/dto"
	"github.com/savioruz/reserva/internal/domains/payments/service/mock"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/jwt"
	log "github.com/savioruz/reserva/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const draft = `{
	"ngay_su_dung": "2025-06-01",
	"slots": [{"san_id": "5b0c1c38-3c55-4a43-a2a1-5a7d4e3f0c11", "start_time": "16:30", "end_time": "18:00"}],
	"contact_snapshot": {"name": "Nguyen Van A", "phone": "0901234567"}
}`

type fixture struct {
	svc *mock.MockPaymentService
	app *fiber.App
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	jwt.Initialize("reserva", "test-secret", time.Hour, time.Hour)

	f := fixture{
		svc: mock.NewMockPaymentService(ctrl),
		app: fiber.New(),
	}

	New(f.svc, mockLogger, validator.New()).RegisterRoutes(f.app)

	return f
}

func (f fixture) do(t *testing.T, req *http.Request) *http.Response {
	req.Header.Set("Content-Type", "application/json")

	res, err := f.app.Test(req)
	require.NoError(t, err)

	return res
}

func TestHandler_CreateHold(t *testing.T) {
	t.Run("error: cash cannot be held", func(t *testing.T) {
		f := newFixture(t)

		body := strings.Replace(draft, `"ngay_su_dung"`, `"payment_method": "card", "ngay_su_dung"`, 1)
		res := f.do(t, httptest.NewRequest(http.MethodPost, "/public/payments", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("success: defaults to bank transfer", func(t *testing.T) {
		f := newFixture(t)

		f.svc.EXPECT().CreateHold(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req bookingdto.CreateBookingRequest) (dto.HoldEnvelope, error) {
				assert.Equal(t, constant.PaymentMethodBankTransfer, req.PaymentMethod)
				assert.Empty(t, req.UserID)

				return dto.HoldEnvelope{Payment: dto.HoldResponse{HoldID: uuid.NewString()}}, nil
			})

		res := f.do(t, httptest.NewRequest(http.MethodPost, "/public/payments", strings.NewReader(draft)))

		assert.Equal(t, http.StatusCreated, res.StatusCode)
	})
}

func TestHandler_QR(t *testing.T) {
	t.Run("error: hold is not a uuid", func(t *testing.T) {
		f := newFixture(t)

		res := f.do(t, httptest.NewRequest(http.MethodGet, "/public/payments/abc/qr", nil))

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("success: png", func(t *testing.T) {
		f := newFixture(t)
		hold := uuid.NewString()

		f.svc.EXPECT().QR(gomock.Any(), hold).Return([]byte("\x89PNG"), nil)

		res := f.do(t, httptest.NewRequest(http.MethodGet, "/public/payments/"+hold+"/qr", nil))

		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, constant.ContentTypePNG, res.Header.Get("Content-Type"))
	})
}

func TestHandler_Confirm(t *testing.T) {
	t.Run("error: expired hold", func(t *testing.T) {
		f := newFixture(t)
		hold := uuid.NewString()

		f.svc.EXPECT().Confirm(gomock.Any(), hold).Return(bookingdto.BookingEnvelope{}, failure.NotFound("payment hold not found or expired"))

		res := f.do(t, httptest.NewRequest(http.MethodPost, "/public/payments/"+hold+"/confirm", nil))

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("success: booking created", func(t *testing.T) {
		f := newFixture(t)
		hold := uuid.NewString()

		f.svc.EXPECT().Confirm(gomock.Any(), hold).Return(bookingdto.BookingEnvelope{Booking: bookingdto.BookingResponse{MaPD: "PD7KQ2M9XA"}}, nil)

		res := f.do(t, httptest.NewRequest(http.MethodPost, "/public/payments/"+hold+"/confirm", nil))

		assert.Equal(t, http.StatusCreated, res.StatusCode)
	})
}

func TestHandler_Abandon(t *testing.T) {
	f := newFixture(t)
	hold := uuid.NewString()

	f.svc.EXPECT().Abandon(gomock.Any(), hold).Return(nil)

	res := f.do(t, httptest.NewRequest(http.MethodDelete, "/public/payments/"+hold, nil))

	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestHandler_Callbacks(t *testing.T) {
	t.Run("error: missing external id", func(t *testing.T) {
		f := newFixture(t)

		res := f.do(t, httptest.NewRequest(http.MethodPost, "/payments/callbacks", strings.NewReader(`{"status":"PAID"}`)))

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("success: token forwarded", func(t *testing.T) {
		f := newFixture(t)

		f.svc.EXPECT().Callbacks(gomock.Any(), dto.PaymentCallbackRequest{ExternalID: "h1", Status: "PAID"}, "tok").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/payments/callbacks", strings.NewReader(`{"external_id":"h1","status":"PAID"}`))
		req.Header.Set(constant.RequestHeaderCallback, "tok")

		res := f.do(t, req)

		assert.Equal(t, http.StatusOK, res.StatusCode)
	})
}
