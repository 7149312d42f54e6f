package service

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/savioruz/reserva/config"
	availabilitydto "github.com/savioruz/reserva/internal/domains/availability/dto"
	availabilitymock "github.com/savioruz/reserva/internal/domains/availability/mock"
	availability "github.com/savioruz/reserva/internal/domains/availability/service"
	"github.com/savioruz/reserva/internal/domains/bookings/dto"
	"github.com/savioruz/reserva/internal/domains/bookings/mock"
	"github.com/savioruz/reserva/internal/domains/bookings/repository"
	usermock "github.com/savioruz/reserva/internal/domains/user/mock"
	users "github.com/savioruz/reserva/internal/domains/user/repository"
	"github.com/savioruz/reserva/pkg/clock"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/gdto"
	"github.com/savioruz/reserva/pkg/helper"
	log "github.com/savioruz/reserva/pkg/logger/mock"
	"github.com/savioruz/reserva/pkg/mail"
	mailmock "github.com/savioruz/reserva/pkg/mail/mock"
	redis "github.com/savioruz/reserva/pkg/redis/mock"
	"github.com/savioruz/reserva/pkg/timeslot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo         *mock.MockRepository
	users        *usermock.MockQuerier
	availability *availabilitymock.MockAvailabilityService
	mailer       *mailmock.MockService
	pgx          pgxmock.PgxPoolIface
	cache        *redis.MockIRedisCache
	cfg          *config.Config
	svc          BookingService
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	mockPgx, err := pgxmock.NewPool()
	require.NoError(t, err)

	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	f := fixture{
		repo:         mock.NewMockRepository(ctrl),
		users:        usermock.NewMockQuerier(ctrl),
		availability: availabilitymock.NewMockAvailabilityService(ctrl),
		mailer:       mailmock.NewMockService(ctrl),
		pgx:          mockPgx,
		cache:        redis.NewMockIRedisCache(ctrl),
		cfg: &config.Config{
			App:   config.App{Name: "reserva", URL: "http://localhost:3000"},
			Cache: config.Cache{Duration: 60},
		},
	}

	now := clock.NewMockClock(time.Date(2025, 5, 31, 8, 0, 0, 0, time.UTC))
	f.svc = New(mockPgx, f.repo, f.users, f.availability, f.cache, f.mailer, now, f.cfg, mockLogger)

	return f
}

func (f fixture) expectInvalidate() chan struct{} {
	done := make(chan struct{})

	f.cache.EXPECT().Clear(gomock.Any(), "reserva:cache:bookings:*").DoAndReturn(func(context.Context, string) error {
		close(done)

		return nil
	})

	return done
}

func newUUID() pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func draft() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		NgaySuDung: "2025-06-01",
		Slots: []availabilitydto.SlotRequest{
			{SanID: uuid.NewString(), StartTime: "16:30", EndTime: "18:00"},
		},
		Services: []availabilitydto.ServiceLineRequest{
			{DichVuID: uuid.NewString(), SoLuong: 2},
		},
		PaymentMethod:   "cash",
		ContactSnapshot: &dto.ContactSnapshot{Name: "Nguyen Van A", Phone: "0901234567"},
	}
}

func quote() availability.Quote {
	return availability.Quote{
		Date: helper.PgDate("2025-06-01"),
		Kind: "court",
		Slots: []availability.QuotedSlot{
			{ResourceID: newUUID(), ResourceName: "San 1", Window: timeslot.Range{Start: 990, End: 1080}, Price: 200000},
		},
		Services: []availability.QuotedService{
			{AddonID: newUUID(), Name: "Nuoc suoi", Unit: "chai", Quantity: 2, UnitPrice: 30000, LineTotal: 60000},
		},
		SlotsTotal:    200000,
		ServicesTotal: 60000,
		GrandTotal:    260000,
	}
}

func booking(kind, status string) repository.Booking {
	return repository.Booking{
		ID:            newUUID(),
		Token:         "PD7KQ2M9XA",
		Kind:          kind,
		UsageDate:     helper.PgDate("2025-06-01"),
		Status:        status,
		PaymentMethod: "cash",
		ContactName:   helper.PgString("Nguyen Van A"),
		ContactPhone:  helper.PgString("0901234567"),
		SlotsTotal:    helper.PgInt64(200000),
		ServicesTotal: helper.PgInt64(60000),
		GrandTotal:    helper.PgInt64(260000),
		Version:       1,
	}
}

func (f fixture) expectDetail(b repository.Booking) {
	f.repo.EXPECT().GetBookingSlots(gomock.Any(), gomock.Any(), b.ID).Return([]repository.GetBookingSlotsRow{
		{
			BookingID:    b.ID,
			ResourceID:   newUUID(),
			ResourceName: "San 1",
			UsageDate:    b.UsageDate,
			StartTime:    helper.PgTimeFromMinutes(990),
			EndTime:      helper.PgTimeFromMinutes(1080),
			Price:        helper.PgInt64(200000),
			Active:       true,
		},
	}, nil)
	f.repo.EXPECT().GetBookingAddons(gomock.Any(), gomock.Any(), b.ID).Return([]repository.BookingAddon{
		{BookingID: b.ID, AddonID: newUUID(), Name: "Nuoc suoi", Quantity: 2, UnitPrice: helper.PgInt64(30000), LineTotal: helper.PgInt64(60000)},
	}, nil)
}

func TestBookingService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("error: cash cannot be deferred", func(t *testing.T) {
		f := newFixture(t)

		sub, err := f.svc.Submit(ctx, draft(), true)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, StageDraft, sub.Stage)
	})

	t.Run("error: guest without contact", func(t *testing.T) {
		f := newFixture(t)
		d := draft()
		d.ContactSnapshot = nil

		_, err := f.svc.Submit(ctx, d, false)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: contact without phone or email", func(t *testing.T) {
		f := newFixture(t)
		d := draft()
		d.ContactSnapshot = &dto.ContactSnapshot{Name: "A"}

		_, err := f.svc.Submit(ctx, d, false)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: quote rejected", func(t *testing.T) {
		f := newFixture(t)
		d := draft()

		f.pgx.ExpectBegin()
		f.pgx.ExpectRollback()

		f.availability.EXPECT().Quote(gomock.Any(), gomock.Any(), d.PriceRequest()).
			Return(availability.Quote{}, failure.Validation("booking request is invalid", "slot 1: time slot already reserved"))

		sub, err := f.svc.Submit(ctx, d, false)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, []string{"slot 1: time slot already reserved"}, failure.GetDetails(err))
		assert.Equal(t, StageDraft, sub.Stage)
		assert.NoError(t, f.pgx.ExpectationsWereMet())
	})

	t.Run("success: deferred stops at payment pending", func(t *testing.T) {
		f := newFixture(t)
		d := draft()
		d.PaymentMethod = "bank_transfer"
		q := quote()

		f.availability.EXPECT().Quote(gomock.Any(), gomock.Any(), d.PriceRequest()).Return(q, nil)

		sub, err := f.svc.Submit(ctx, d, true)

		require.NoError(t, err)
		assert.Equal(t, StagePaymentPending, sub.Stage)
		assert.Equal(t, int64(260000), sub.Quote.GrandTotal)
		assert.Empty(t, sub.Booking.MaPD)
		assert.NoError(t, f.pgx.ExpectationsWereMet())
	})

	t.Run("error: slot taken by a concurrent submission", func(t *testing.T) {
		f := newFixture(t)
		d := draft()
		b := booking("court", "pending")

		f.pgx.ExpectBegin()
		f.pgx.ExpectRollback()

		f.availability.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).Return(quote(), nil)
		f.repo.EXPECT().GetBookingByToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.Booking{}, pgx.ErrNoRows)
		f.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(b, nil)
		f.repo.EXPECT().InsertBookingSlot(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.BookingSlot{}, &pgconn.PgError{Code: "23P01"})

		sub, err := f.svc.Submit(ctx, d, false)

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, "time slot already reserved", err.Error())
		assert.Equal(t, StagePriceConfirmed, sub.Stage)
		assert.NoError(t, f.pgx.ExpectationsWereMet())
	})

	t.Run("success: immediate submission persists a pending booking", func(t *testing.T) {
		f := newFixture(t)
		d := draft()
		q := quote()
		b := booking("court", "pending")
		done := f.expectInvalidate()

		f.pgx.ExpectBegin()
		f.pgx.ExpectCommit()
		f.pgx.ExpectRollback()

		f.availability.EXPECT().Quote(gomock.Any(), gomock.Any(), d.PriceRequest()).Return(q, nil)
		f.repo.EXPECT().GetBookingByToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.Booking{}, pgx.ErrNoRows)
		f.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertBookingParams) (repository.Booking, error) {
				assert.Equal(t, "pending", arg.Status)
				assert.Equal(t, "court", arg.Kind)
				assert.Equal(t, int64(260000), helper.Int64FromPg(arg.GrandTotal))
				assert.Equal(t, "Nguyen Van A", arg.ContactName.String)
				assert.False(t, arg.UserID.Valid)
				assert.Regexp(t, `^PD[A-Z2-9]{8}$`, arg.Token)

				return b, nil
			})
		f.repo.EXPECT().InsertBookingSlot(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertBookingSlotParams) (repository.BookingSlot, error) {
				assert.Equal(t, "16:30", helper.PgTimeToString(arg.StartTime))
				assert.Equal(t, "18:00", helper.PgTimeToString(arg.EndTime))
				assert.Equal(t, int64(200000), helper.Int64FromPg(arg.Price))

				return repository.BookingSlot{}, nil
			})
		f.repo.EXPECT().InsertBookingAddon(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertBookingAddonParams) (repository.BookingAddon, error) {
				assert.Equal(t, int32(2), arg.Quantity)
				assert.Equal(t, int64(60000), helper.Int64FromPg(arg.LineTotal))

				return repository.BookingAddon{}, nil
			})
		f.expectDetail(b)

		sub, err := f.svc.Submit(ctx, d, false)

		require.NoError(t, err)
		assert.Equal(t, StageSubmitted, sub.Stage)
		assert.Equal(t, "PD7KQ2M9XA", sub.Booking.MaPD)
		assert.Equal(t, "pending", sub.Booking.Status)
		assert.True(t, sub.Booking.Cancelable)
		assert.Equal(t, int64(260000), sub.Booking.Summary.GrandTotal)
		assert.Len(t, sub.Booking.Slots, 1)
		assert.Len(t, sub.Booking.Services, 1)

		<-done
		assert.NoError(t, f.pgx.ExpectationsWereMet())
	})

	t.Run("success: account contact and confirmation mail", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.Mail.Enabled = true

		user := users.User{ID: newUUID(), Email: "a@example.com", FullName: "Nguyen Van A", Phone: helper.PgString("0901234567")}
		d := draft()
		d.ContactSnapshot = nil
		d.UserID = user.ID.String()

		b := booking("court", "pending")
		b.UserID = user.ID
		b.ContactEmail = helper.PgString(user.Email)

		done := f.expectInvalidate()
		sent := make(chan struct{})

		f.pgx.ExpectBegin()
		f.pgx.ExpectCommit()
		f.pgx.ExpectRollback()

		f.users.EXPECT().GetUserByID(gomock.Any(), gomock.Any(), user.ID).Return(user, nil)
		f.availability.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).Return(quote(), nil)
		f.repo.EXPECT().GetBookingByToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.Booking{}, pgx.ErrNoRows)
		f.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertBookingParams) (repository.Booking, error) {
				assert.Equal(t, user.ID, arg.UserID)
				assert.Equal(t, "a@example.com", arg.ContactEmail.String)

				return b, nil
			})
		f.repo.EXPECT().InsertBookingSlot(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.BookingSlot{}, nil)
		f.repo.EXPECT().InsertBookingAddon(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.BookingAddon{}, nil)
		f.expectDetail(b)
		f.mailer.EXPECT().SendBookingReceived("a@example.com", gomock.Any()).DoAndReturn(func(string, mail.BookingData) error {
			close(sent)

			return nil
		})

		sub, err := f.svc.Submit(ctx, d, false)

		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), sub.Booking.UserID)

		<-done
		<-sent
	})
}

func TestBookingService_Lookup(t *testing.T) {
	ctx := context.Background()

	t.Run("error: unknown token", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetBookingByToken(gomock.Any(), gomock.Any(), "PDNOPE").Return(repository.Booking{}, pgx.ErrNoRows)

		_, err := f.svc.Lookup(ctx, "pdnope")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "token not found", err.Error())
	})

	t.Run("error: blank token", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Lookup(ctx, "  # ")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success: token is normalised", func(t *testing.T) {
		f := newFixture(t)
		b := booking("table", "pending")

		f.repo.EXPECT().GetBookingByToken(gomock.Any(), gomock.Any(), "PD7KQ2M9XA").Return(b, nil)
		f.expectDetail(b)

		res, err := f.svc.Lookup(ctx, " #pd7kq2m9xa ")

		require.NoError(t, err)
		assert.Equal(t, "DaDat", res.StatusLabel)
		assert.Equal(t, "16:30", res.Slots[0].StartTime)
		assert.Equal(t, int32(2), res.Services[0].SoLuong)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("error: only pending bookings can be canceled", func(t *testing.T) {
		f := newFixture(t)
		b := booking("court", "confirmed")

		f.pgx.ExpectBegin()
		f.pgx.ExpectRollback()

		f.repo.EXPECT().GetBookingByToken(gomock.Any(), gomock.Any(), b.Token).Return(b, nil)

		_, err := f.svc.Cancel(ctx, b.Token, dto.CancelRequest{Reason: "doi lich"})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, "booking can only be canceled while pending", err.Error())
		assert.NoError(t, f.pgx.ExpectationsWereMet())
	})

	t.Run("error: changed concurrently", func(t *testing.T) {
		f := newFixture(t)
		b := booking("court", "pending")

		f.pgx.ExpectBegin()
		f.pgx.ExpectRollback()

		f.repo.EXPECT().GetBookingByToken(gomock.Any(), gomock.Any(), b.Token).Return(b, nil)
		f.repo.EXPECT().UpdateBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.Booking{}, pgx.ErrNoRows)

		_, err := f.svc.Cancel(ctx, b.Token, dto.CancelRequest{})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success: pending booking canceled by the guest", func(t *testing.T) {
		f := newFixture(t)
		b := booking("court", "pending")
		canceled := b
		canceled.Status = "canceled"
		canceled.CanceledBy = helper.PgString("user")
		canceled.CancelReason = helper.PgString("doi lich")
		done := f.expectInvalidate()

		f.pgx.ExpectBegin()
		f.pgx.ExpectCommit()
		f.pgx.ExpectRollback()

		f.repo.EXPECT().GetBookingByToken(gomock.Any(), gomock.Any(), b.Token).Return(b, nil)
		f.repo.EXPECT().UpdateBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.UpdateBookingStatusParams) (repository.Booking, error) {
				assert.Equal(t, "canceled", arg.Status)
				assert.Equal(t, "pending", arg.FromStatus)
				assert.Equal(t, "user", arg.CanceledBy.String)
				assert.Equal(t, "doi lich", arg.CancelReason.String)

				return canceled, nil
			})
		f.repo.EXPECT().DeactivateBookingSlots(gomock.Any(), gomock.Any(), b.ID).Return(int64(1), nil)
		f.expectDetail(canceled)

		res, err := f.svc.Cancel(ctx, "#"+b.Token, dto.CancelRequest{Reason: "doi lich"})

		require.NoError(t, err)
		assert.Equal(t, "canceled", res.Status)
		assert.False(t, res.Cancelable)
		assert.Equal(t, "user", res.CanceledBy)

		<-done
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("error: booking not found", func(t *testing.T) {
		f := newFixture(t)
		id := newUUID()

		f.pgx.ExpectBegin()
		f.pgx.ExpectRollback()

		f.repo.EXPECT().GetBookingByID(gomock.Any(), gomock.Any(), id).Return(repository.Booking{}, pgx.ErrNoRows)

		_, err := f.svc.UpdateStatus(ctx, id.String(), dto.UpdateStatusRequest{Status: "confirmed"})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: unknown status", func(t *testing.T) {
		f := newFixture(t)
		b := booking("table", "pending")

		f.pgx.ExpectBegin()
		f.pgx.ExpectRollback()

		f.repo.EXPECT().GetBookingByID(gomock.Any(), gomock.Any(), b.ID).Return(b, nil)

		_, err := f.svc.UpdateStatus(ctx, b.ID.String(), dto.UpdateStatusRequest{Status: "received"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: transition not allowed", func(t *testing.T) {
		f := newFixture(t)
		b := booking("court", "received")

		f.pgx.ExpectBegin()
		f.pgx.ExpectRollback()

		f.repo.EXPECT().GetBookingByID(gomock.Any(), gomock.Any(), b.ID).Return(b, nil)

		_, err := f.svc.UpdateStatus(ctx, b.ID.String(), dto.UpdateStatusRequest{Status: "confirmed"})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success: table label confirms booking and keeps slots", func(t *testing.T) {
		f := newFixture(t)
		b := booking("table", "pending")
		confirmed := b
		confirmed.Status = "confirmed"
		done := f.expectInvalidate()

		f.pgx.ExpectBegin()
		f.pgx.ExpectCommit()
		f.pgx.ExpectRollback()

		f.repo.EXPECT().GetBookingByID(gomock.Any(), gomock.Any(), b.ID).Return(b, nil)
		f.repo.EXPECT().UpdateBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.UpdateBookingStatusParams) (repository.Booking, error) {
				assert.Equal(t, "confirmed", arg.Status)
				assert.False(t, arg.CanceledBy.Valid)

				return confirmed, nil
			})
		f.expectDetail(confirmed)

		res, err := f.svc.UpdateStatus(ctx, b.ID.String(), dto.UpdateStatusRequest{Status: "DaXacNhan"})

		require.NoError(t, err)
		assert.Equal(t, "confirmed", res.Status)
		assert.Equal(t, "DaXacNhan", res.StatusLabel)

		<-done
	})

	t.Run("success: staff cancel frees slots", func(t *testing.T) {
		f := newFixture(t)
		b := booking("court", "pending")
		canceled := b
		canceled.Status = "canceled"
		canceled.CanceledBy = helper.PgString("admin")
		done := f.expectInvalidate()

		f.pgx.ExpectBegin()
		f.pgx.ExpectCommit()
		f.pgx.ExpectRollback()

		f.repo.EXPECT().GetBookingByID(gomock.Any(), gomock.Any(), b.ID).Return(b, nil)
		f.repo.EXPECT().UpdateBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.UpdateBookingStatusParams) (repository.Booking, error) {
				assert.Equal(t, "admin", arg.CanceledBy.String)

				return canceled, nil
			})
		f.repo.EXPECT().DeactivateBookingSlots(gomock.Any(), gomock.Any(), b.ID).Return(int64(1), nil)
		f.expectDetail(canceled)

		res, err := f.svc.UpdateStatus(ctx, b.ID.String(), dto.UpdateStatusRequest{Status: "canceled", Reason: "khach khong den"})

		require.NoError(t, err)
		assert.Equal(t, "admin", res.CanceledBy)

		<-done
	})
}

func TestBookingService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("error: count failed", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().CountBookings(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), assert.AnError)

		_, err := f.svc.List(ctx, dto.ListBookingsRequest{})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: filters and paging reach the query", func(t *testing.T) {
		f := newFixture(t)
		want := repository.BookingFilter{
			Status:   "pending",
			Kind:     "court",
			DateFrom: "2025-06-01",
			DateTo:   "2025-06-30",
			Query:    "0901",
			Limit:    5,
			Offset:   5,
		}

		f.repo.EXPECT().CountBookings(gomock.Any(), gomock.Any(), want).Return(int64(7), nil)
		f.repo.EXPECT().ListBookings(gomock.Any(), gomock.Any(), want).Return([]repository.Booking{booking("court", "pending")}, nil)

		res, err := f.svc.List(ctx, dto.ListBookingsRequest{
			Page: 2, Limit: 5, Status: "pending", Kind: "court",
			DateFrom: "2025-06-01", DateTo: "2025-06-30", Q: "0901",
		})

		require.NoError(t, err)
		assert.Equal(t, 7, res.TotalItems)
		assert.Equal(t, 2, res.TotalPages)
		assert.Len(t, res.Items, 1)
	})
}

func TestBookingService_Mine(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	t.Run("success: cache hit", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Mine(ctx, userID, gdto.PaginationRequest{})

		require.NoError(t, err)
	})

	t.Run("success: loads and caches", func(t *testing.T) {
		f := newFixture(t)
		saved := make(chan struct{})

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		f.repo.EXPECT().CountBookingsByUserID(gomock.Any(), gomock.Any(), helper.PgUUID(userID)).Return(int64(1), nil)
		f.repo.EXPECT().GetBookingsByUserID(gomock.Any(), gomock.Any(), repository.GetBookingsByUserIDParams{
			UserID: helper.PgUUID(userID),
			Limit:  10,
			Offset: 0,
		}).Return([]repository.Booking{booking("court", "pending")}, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).DoAndReturn(func(context.Context, string, any, int) error {
			close(saved)

			return nil
		})

		res, err := f.svc.Mine(ctx, userID, gdto.PaginationRequest{})

		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalItems)

		<-saved
	})
}

func TestBookingService_Receipt(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	b := booking("court", "pending")

	f.repo.EXPECT().GetBookingByToken(gomock.Any(), gomock.Any(), b.Token).Return(b, nil)
	f.expectDetail(b)

	pdf, err := f.svc.Receipt(ctx, b.Token)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestBookingService_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("error: inverted range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Export(ctx, dto.ExportRequest{DateFrom: "2025-06-30", DateTo: "2025-06-01"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("success: one row per booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ListBookings(gomock.Any(), gomock.Any(), repository.BookingFilter{
			DateFrom: "2025-06-01",
			DateTo:   "2025-06-30",
			Limit:    exportLimit,
		}).Return([]repository.Booking{booking("court", "pending"), booking("table", "confirmed")}, nil)

		xlsx, err := f.svc.Export(ctx, dto.ExportRequest{DateFrom: "2025-06-01", DateTo: "2025-06-30"})
		require.NoError(t, err)

		wb, err := excelize.OpenReader(bytes.NewReader(xlsx))
		require.NoError(t, err)

		rows, err := wb.GetRows(exportSheet)
		require.NoError(t, err)

		require.Len(t, rows, 3)
		assert.Equal(t, "Ma PD", rows[0][0])
		assert.Equal(t, "PD7KQ2M9XA", rows[1][0])
		assert.Equal(t, "DaXacNhan", rows[2][3])
	})
}
