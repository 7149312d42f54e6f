package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/savioruz/reserva/internal/domains/bookings/dto"
	"github.com/savioruz/reserva/internal/domains/bookings/service/mock"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/gdto"
	"github.com/savioruz/reserva/pkg/jwt"
	log "github.com/savioruz/reserva/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const body = `{
	"user_id": "%s",
	"ngay_su_dung": "2025-06-01",
	"slots": [{"san_id": "5b0c1c38-3c55-4a43-a2a1-5a7d4e3f0c11", "start_time": "16:30", "end_time": "18:00"}],
	"payment_method": "%s",
	"contact_snapshot": {"name": "Nguyen Van A", "phone": "0901234567"}
}`

type fixture struct {
	svc *mock.MockBookingService
	app *fiber.App
	jwt *jwt.JWT
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	f := fixture{
		svc: mock.NewMockBookingService(ctrl),
		app: fiber.New(),
		jwt: jwt.Initialize("reserva", "test-secret", time.Hour, time.Hour),
	}

	New(f.svc, mockLogger, validator.New()).RegisterRoutes(f.app)

	return f
}

func (f fixture) do(t *testing.T, method, path, payload, token string) *http.Response {
	var reader io.Reader
	if payload != "" {
		reader = strings.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := f.app.Test(req)
	require.NoError(t, err)

	return res
}

func (f fixture) token(t *testing.T, userID, level string) string {
	tok, err := f.jwt.GenerateAccessToken(userID, "someone@example.com", level)
	require.NoError(t, err)

	return tok
}

func TestHandler_Create(t *testing.T) {
	other := uuid.NewString()

	t.Run("error: unknown payment method", func(t *testing.T) {
		f := newFixture(t)

		res := f.do(t, http.MethodPost, "/public/bookings", fmt.Sprintf(body, "", "card"), "")

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("success: guest cannot claim an account", func(t *testing.T) {
		f := newFixture(t)

		f.svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateBookingRequest) (dto.BookingEnvelope, error) {
				assert.Empty(t, req.UserID)

				return dto.BookingEnvelope{Booking: dto.BookingResponse{MaPD: "PD7KQ2M9XA"}}, nil
			})

		res := f.do(t, http.MethodPost, "/public/bookings", fmt.Sprintf(body, other, "cash"), "")
		require.Equal(t, http.StatusCreated, res.StatusCode)

		var out struct {
			Data dto.BookingEnvelope `json:"data"`
		}
		require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
		assert.Equal(t, "PD7KQ2M9XA", out.Data.Booking.MaPD)
	})

	t.Run("success: customer books for themselves", func(t *testing.T) {
		f := newFixture(t)
		me := uuid.NewString()

		f.svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateBookingRequest) (dto.BookingEnvelope, error) {
				assert.Equal(t, me, req.UserID)

				return dto.BookingEnvelope{}, nil
			})

		res := f.do(t, http.MethodPost, "/public/bookings", fmt.Sprintf(body, other, "cash"), f.token(t, me, constant.UserRoleUser))

		assert.Equal(t, http.StatusCreated, res.StatusCode)
	})

	t.Run("success: staff books on behalf of a customer", func(t *testing.T) {
		f := newFixture(t)

		f.svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateBookingRequest) (dto.BookingEnvelope, error) {
				assert.Equal(t, other, req.UserID)

				return dto.BookingEnvelope{}, nil
			})

		res := f.do(t, http.MethodPost, "/public/bookings", fmt.Sprintf(body, other, "bank_transfer"), f.token(t, uuid.NewString(), constant.UserRoleStaff))

		assert.Equal(t, http.StatusCreated, res.StatusCode)
	})
}

func TestHandler_Lookup(t *testing.T) {
	f := newFixture(t)

	f.svc.EXPECT().Lookup(gomock.Any(), "PDNOPE").Return(dto.BookingResponse{}, failure.NotFound("token not found"))

	res := f.do(t, http.MethodGet, "/public/bookings/PDNOPE", "", "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	var out struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.Equal(t, "token not found", out.Error)
}

func TestHandler_Cancel(t *testing.T) {
	f := newFixture(t)

	f.svc.EXPECT().Cancel(gomock.Any(), "PD7KQ2M9XA", dto.CancelRequest{}).
		Return(dto.BookingResponse{}, failure.Conflict("booking can only be canceled while pending"))

	res := f.do(t, http.MethodPut, "/public/bookings/PD7KQ2M9XA/cancel", "", "")

	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestHandler_Receipt(t *testing.T) {
	f := newFixture(t)

	f.svc.EXPECT().Receipt(gomock.Any(), "PD7KQ2M9XA").Return([]byte("%PDF-1.3"), nil)

	res := f.do(t, http.MethodGet, "/public/bookings/PD7KQ2M9XA/receipt", "", "")

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, constant.ContentTypePDF, res.Header.Get("Content-Type"))
}

func TestHandler_StaffRoutes(t *testing.T) {
	t.Run("error: listing needs a token", func(t *testing.T) {
		f := newFixture(t)

		res := f.do(t, http.MethodGet, "/bookings", "", "")

		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("error: customers cannot change status", func(t *testing.T) {
		f := newFixture(t)

		res := f.do(t, http.MethodPut, "/bookings/"+uuid.NewString(), `{"status":"confirmed"}`, f.token(t, uuid.NewString(), constant.UserRoleUser))

		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})

	t.Run("error: invalid id", func(t *testing.T) {
		f := newFixture(t)

		res := f.do(t, http.MethodPut, "/bookings/not-a-uuid", `{"status":"confirmed"}`, f.token(t, uuid.NewString(), constant.UserRoleStaff))

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("success: mine uses the caller", func(t *testing.T) {
		f := newFixture(t)
		me := uuid.NewString()

		f.svc.EXPECT().Mine(gomock.Any(), me, gomock.Any()).Return(gdto.NewPage[dto.BookingResponse](nil, 0, 5), nil)

		res := f.do(t, http.MethodGet, "/bookings/mine?page=1&limit=5", "", f.token(t, me, constant.UserRoleUser))

		assert.Equal(t, http.StatusOK, res.StatusCode)
	})
}
