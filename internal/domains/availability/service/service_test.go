package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	addonmock "github.com/savioruz/reserva/internal/domains/addons/mock"
	addons "github.com/savioruz/reserva/internal/domains/addons/repository"
	"github.com/savioruz/reserva/internal/domains/availability/dto"
	bookingmock "github.com/savioruz/reserva/internal/domains/bookings/mock"
	bookings "github.com/savioruz/reserva/internal/domains/bookings/repository"
	resourcemock "github.com/savioruz/reserva/internal/domains/resources/mock"
	resources "github.com/savioruz/reserva/internal/domains/resources/repository"
	shiftmock "github.com/savioruz/reserva/internal/domains/shifts/mock"
	shifts "github.com/savioruz/reserva/internal/domains/shifts/repository"
	"github.com/savioruz/reserva/pkg/clock"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/helper"
	log "github.com/savioruz/reserva/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	resources *resourcemock.MockQuerier
	shifts    *shiftmock.MockQuerier
	addons    *addonmock.MockQuerier
	bookings  *bookingmock.MockRepository
	svc       AvailabilityService
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	mockPgx, err := pgxmock.NewPool()
	require.NoError(t, err)

	mockLogger := log.NewMockInterface(ctrl)
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	f := fixture{
		resources: resourcemock.NewMockQuerier(ctrl),
		shifts:    shiftmock.NewMockQuerier(ctrl),
		addons:    addonmock.NewMockQuerier(ctrl),
		bookings:  bookingmock.NewMockRepository(ctrl),
	}

	now := clock.NewMockClock(time.Date(2025, 5, 31, 8, 0, 0, 0, time.UTC))
	f.svc = New(mockPgx, f.resources, f.shifts, f.addons, f.bookings, now, mockLogger)

	return f
}

func court(name, status string) resources.Resource {
	return resources.Resource{
		ID:     pgtype.UUID{Bytes: uuid.New(), Valid: true},
		Kind:   "court",
		Name:   name,
		Status: status,
	}
}

func shiftFor(r resources.Resource, start, end string, price int64) shifts.Shift {
	s, _ := helper.PgTimeFromString(start)
	e, _ := helper.PgTimeFromString(end)

	return shifts.Shift{
		ID:           pgtype.UUID{Bytes: uuid.New(), Valid: true},
		ResourceID:   r.ID,
		StartTime:    s,
		EndTime:      e,
		PricePerHour: helper.PgInt64(price),
	}
}

func clockTime(s string) pgtype.Time {
	t, _ := helper.PgTimeFromString(s)

	return t
}

func TestAvailabilityService_Query(t *testing.T) {
	ctx := context.Background()

	t.Run("error: end before start", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Query(ctx, dto.AvailabilityRequest{Date: "2025-06-01", StartTime: "11:00", EndTime: "09:00"}, false)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: empty range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Query(ctx, dto.AvailabilityRequest{Date: "2025-06-01", StartTime: "09:00", EndTime: "09:00"}, false)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: date in the past", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Query(ctx, dto.AvailabilityRequest{Date: "2025-05-30", StartTime: "09:00", EndTime: "11:00"}, false)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, msgDateInPast, err.Error())
	})

	t.Run("success: reasons per resource", func(t *testing.T) {
		f := newFixture(t)

		free := court("San 1", "available")
		booked := court("San 2", "available")
		closed := court("San 3", "available")
		repair := court("San 4", "maintenance")

		f.resources.EXPECT().ListResourcesByKind(gomock.Any(), gomock.Any(), "court").
			Return([]resources.Resource{free, booked, closed, repair}, nil)
		f.shifts.EXPECT().ListShiftsByResources(gomock.Any(), gomock.Any(), gomock.Any()).Return([]shifts.Shift{
			shiftFor(free, "06:00", "10:00", 100000),
			shiftFor(free, "10:00", "22:00", 120000),
			shiftFor(booked, "06:00", "22:00", 100000),
			shiftFor(closed, "14:00", "22:00", 100000),
			shiftFor(repair, "06:00", "22:00", 100000),
		}, nil)
		f.bookings.EXPECT().ListActiveSlotsByDate(gomock.Any(), gomock.Any(), bookings.ListActiveSlotsByDateParams{
			UsageDate: helper.PgDate("2025-06-01"),
			Kind:      "court",
		}).Return([]bookings.ListActiveSlotsByDateRow{
			{ResourceID: booked.ID, StartTime: clockTime("10:30"), EndTime: clockTime("12:00"), Token: "PDAAAA2222"},
			{ResourceID: booked.ID, StartTime: clockTime("11:00"), EndTime: clockTime("12:00"), Token: "PDBBBB3333"},
			{ResourceID: free.ID, StartTime: clockTime("11:00"), EndTime: clockTime("12:00"), Token: "PDCCCC4444"},
		}, nil)

		res, err := f.svc.Query(ctx, dto.AvailabilityRequest{Date: "2025-06-01", StartTime: "09:00", EndTime: "11:00"}, false)
		require.NoError(t, err)
		require.Len(t, res.Resources, 4)

		assert.Equal(t, "court", res.Kind)

		assert.True(t, res.Resources[0].IsAvailable, "touching booking at 11:00 must not conflict")
		assert.Empty(t, res.Resources[0].Bookings)

		assert.False(t, res.Resources[1].IsAvailable)
		require.Len(t, res.Resources[1].Bookings, 1)
		assert.Equal(t, "time slot already reserved", res.Resources[1].Bookings[0].Reason)
		assert.Equal(t, "10:30", res.Resources[1].Bookings[0].StartTime)
		assert.Empty(t, res.Resources[1].Bookings[0].MaPD)

		assert.False(t, res.Resources[2].IsAvailable)
		assert.Equal(t, "outside configured shift", res.Resources[2].Bookings[0].Reason)

		assert.False(t, res.Resources[3].IsAvailable)
		assert.Equal(t, "resource unavailable", res.Resources[3].Bookings[0].Reason)
	})

	t.Run("success: staff see tokens", func(t *testing.T) {
		f := newFixture(t)
		booked := court("San 2", "available")

		f.resources.EXPECT().ListResourcesByKind(gomock.Any(), gomock.Any(), "table").Return([]resources.Resource{booked}, nil)
		f.shifts.EXPECT().ListShiftsByResources(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]shifts.Shift{shiftFor(booked, "06:00", "22:00", 0)}, nil)
		f.bookings.EXPECT().ListActiveSlotsByDate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookings.ListActiveSlotsByDateRow{
			{ResourceID: booked.ID, StartTime: clockTime("09:00"), EndTime: clockTime("10:00"), Token: "PDAAAA2222"},
		}, nil)

		res, err := f.svc.Query(ctx, dto.AvailabilityRequest{Date: "2025-06-01", StartTime: "09:00", EndTime: "11:00", Kind: "table"}, true)

		require.NoError(t, err)
		assert.Equal(t, "PDAAAA2222", res.Resources[0].Bookings[0].MaPD)
	})
}

func TestAvailabilityService_CalculatePrice(t *testing.T) {
	ctx := context.Background()

	t.Run("success: slot spans two shifts", func(t *testing.T) {
		f := newFixture(t)
		c := court("San 1", "available")
		racket := addons.Addon{ID: pgtype.UUID{Bytes: uuid.New(), Valid: true}, Name: "Thue vot", Unit: "cái", UnitPrice: helper.PgInt64(30000), Active: true}

		f.resources.EXPECT().GetResourceByID(gomock.Any(), gomock.Any(), c.ID).Return(c, nil)
		f.shifts.EXPECT().ListShiftsByResources(gomock.Any(), gomock.Any(), []pgtype.UUID{c.ID}).Return([]shifts.Shift{
			shiftFor(c, "06:00", "17:00", 100000),
			shiftFor(c, "17:00", "22:00", 150000),
		}, nil)
		f.bookings.EXPECT().CountOverlaps(gomock.Any(), gomock.Any(), bookings.CountOverlapsParams{
			ResourceID: c.ID,
			UsageDate:  helper.PgDate("2025-06-01"),
			StartTime:  clockTime("16:30"),
			EndTime:    clockTime("18:00"),
		}).Return(int64(0), nil)
		f.addons.EXPECT().GetAddonsByIDs(gomock.Any(), gomock.Any(), []pgtype.UUID{racket.ID}).Return([]addons.Addon{racket}, nil)

		res, err := f.svc.CalculatePrice(ctx, dto.PriceRequest{
			NgaySuDung: "2025-06-01",
			Slots:      []dto.SlotRequest{{SanID: c.ID.String(), StartTime: "16:30", EndTime: "18:00"}},
			Services:   []dto.ServiceLineRequest{{DichVuID: racket.ID.String(), SoLuong: 2}},
		})
		require.NoError(t, err)

		assert.Equal(t, dto.Summary{SlotsTotal: 200000, ServicesTotal: 60000, GrandTotal: 260000}, res.Summary)
		assert.Equal(t, res.Summary.SlotsTotal+res.Summary.ServicesTotal, res.Summary.GrandTotal)
		require.Len(t, res.Slots, 1)
		assert.Equal(t, 90, res.Slots[0].Minutes)
		assert.Equal(t, int64(60000), res.Services[0].LineTotal)
	})

	t.Run("error: every problem reported", func(t *testing.T) {
		f := newFixture(t)
		c := court("San 1", "available")
		missing := uuid.New()
		inactive := addons.Addon{ID: pgtype.UUID{Bytes: uuid.New(), Valid: true}, Name: "Nuoc suoi", UnitPrice: helper.PgInt64(10000)}
		active := addons.Addon{ID: pgtype.UUID{Bytes: uuid.New(), Valid: true}, Name: "Thue vot", UnitPrice: helper.PgInt64(30000), Active: true}

		f.resources.EXPECT().GetResourceByID(gomock.Any(), gomock.Any(), c.ID).Return(c, nil)
		f.resources.EXPECT().GetResourceByID(gomock.Any(), gomock.Any(), pgtype.UUID{Bytes: missing, Valid: true}).
			Return(resources.Resource{}, pgx.ErrNoRows)
		f.shifts.EXPECT().ListShiftsByResources(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]shifts.Shift{shiftFor(c, "06:00", "12:00", 100000)}, nil)
		f.bookings.EXPECT().CountOverlaps(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.bookings.EXPECT().CountOverlaps(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.addons.EXPECT().GetAddonsByIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return([]addons.Addon{inactive, active}, nil)

		_, err := f.svc.CalculatePrice(ctx, dto.PriceRequest{
			NgaySuDung: "2025-06-01",
			Slots: []dto.SlotRequest{
				{SanID: c.ID.String(), StartTime: "08:00", EndTime: "09:00"},
				{SanID: c.ID.String(), StartTime: "08:30", EndTime: "09:30"},
				{SanID: c.ID.String(), StartTime: "11:00", EndTime: "13:00"},
				{SanID: missing.String(), StartTime: "08:00", EndTime: "09:00"},
				{SanID: c.ID.String(), StartTime: "10:00", EndTime: "11:00"},
			},
			Services: []dto.ServiceLineRequest{
				{DichVuID: inactive.ID.String(), SoLuong: 1},
				{DichVuID: active.ID.String(), SoLuong: 0},
				{DichVuID: uuid.NewString(), SoLuong: 1},
			},
		})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, []string{
			"slot 2: overlaps another selected slot on San 1",
			"slot 3: outside configured shift",
			"slot 4: resource not found",
			"slot 5: time slot already reserved",
			"service 1: Nuoc suoi is no longer offered",
			"service 2: so_luong must be at least 1",
			"service 3: service not found",
		}, failure.GetDetails(err))
	})

	t.Run("error: details follow request order", func(t *testing.T) {
		f := newFixture(t)
		c := court("San 1", "available")
		repair := court("San 2", "maintenance")

		f.resources.EXPECT().GetResourceByID(gomock.Any(), gomock.Any(), c.ID).Return(c, nil)
		f.resources.EXPECT().GetResourceByID(gomock.Any(), gomock.Any(), repair.ID).Return(repair, nil)
		f.shifts.EXPECT().ListShiftsByResources(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]shifts.Shift{shiftFor(c, "06:00", "12:00", 100000)}, nil)

		_, err := f.svc.CalculatePrice(ctx, dto.PriceRequest{
			NgaySuDung: "2025-06-01",
			Slots: []dto.SlotRequest{
				{SanID: c.ID.String(), StartTime: "13:00", EndTime: "14:00"},
				{SanID: repair.ID.String(), StartTime: "08:00", EndTime: "09:00"},
				{SanID: c.ID.String(), StartTime: "09:00", EndTime: "08:00"},
			},
		})

		assert.Equal(t, []string{
			"slot 1: outside configured shift",
			"slot 2: resource unavailable",
			"slot 3: timeslot: end time must be after start time",
		}, failure.GetDetails(err))
	})

	t.Run("error: service quantity too large", func(t *testing.T) {
		f := newFixture(t)
		c := court("San 1", "available")
		racket := addons.Addon{ID: pgtype.UUID{Bytes: uuid.New(), Valid: true}, Name: "Thue vot", UnitPrice: helper.PgInt64(30000), Active: true}

		f.resources.EXPECT().GetResourceByID(gomock.Any(), gomock.Any(), c.ID).Return(c, nil)
		f.shifts.EXPECT().ListShiftsByResources(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]shifts.Shift{shiftFor(c, "06:00", "22:00", 100000)}, nil)
		f.bookings.EXPECT().CountOverlaps(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.addons.EXPECT().GetAddonsByIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return([]addons.Addon{racket}, nil)

		res, err := f.svc.CalculatePrice(ctx, dto.PriceRequest{
			NgaySuDung: "2025-06-01",
			Slots:      []dto.SlotRequest{{SanID: c.ID.String(), StartTime: "08:00", EndTime: "09:00"}},
			Services:   []dto.ServiceLineRequest{{DichVuID: racket.ID.String(), SoLuong: 400_000_000_000_000}},
		})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, []string{"service 1: so_luong must be at most 1000"}, failure.GetDetails(err))
		assert.Zero(t, res.Summary.ServicesTotal)
	})

	t.Run("error: line total above the amount limit", func(t *testing.T) {
		f := newFixture(t)
		c := court("San 1", "available")
		pricey := addons.Addon{ID: pgtype.UUID{Bytes: uuid.New(), Valid: true}, Name: "Su kien", UnitPrice: helper.PgInt64(999_999_999_999), Active: true}

		f.resources.EXPECT().GetResourceByID(gomock.Any(), gomock.Any(), c.ID).Return(c, nil)
		f.shifts.EXPECT().ListShiftsByResources(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]shifts.Shift{shiftFor(c, "06:00", "22:00", 100000)}, nil)
		f.bookings.EXPECT().CountOverlaps(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.addons.EXPECT().GetAddonsByIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return([]addons.Addon{pricey}, nil)

		_, err := f.svc.CalculatePrice(ctx, dto.PriceRequest{
			NgaySuDung: "2025-06-01",
			Slots:      []dto.SlotRequest{{SanID: c.ID.String(), StartTime: "08:00", EndTime: "09:00"}},
			Services:   []dto.ServiceLineRequest{{DichVuID: pricey.ID.String(), SoLuong: 1000}},
		})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, []string{"service 1: line total is too large"}, failure.GetDetails(err))
	})

	t.Run("error: mixed kinds", func(t *testing.T) {
		f := newFixture(t)
		c := court("San 1", "available")
		tb := court("Ban 1", "available")
		tb.Kind = "table"

		f.resources.EXPECT().GetResourceByID(gomock.Any(), gomock.Any(), c.ID).Return(c, nil)
		f.resources.EXPECT().GetResourceByID(gomock.Any(), gomock.Any(), tb.ID).Return(tb, nil)
		f.shifts.EXPECT().ListShiftsByResources(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]shifts.Shift{shiftFor(c, "06:00", "22:00", 100000)}, nil)
		f.bookings.EXPECT().CountOverlaps(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := f.svc.CalculatePrice(ctx, dto.PriceRequest{
			NgaySuDung: "2025-06-01",
			Slots: []dto.SlotRequest{
				{SanID: c.ID.String(), StartTime: "08:00", EndTime: "09:00"},
				{SanID: tb.ID.String(), StartTime: "08:00", EndTime: "09:00"},
			},
		})

		assert.Equal(t, []string{"slot 2: courts and tables cannot be booked together"}, failure.GetDetails(err))
	})

	t.Run("error: past date", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CalculatePrice(ctx, dto.PriceRequest{
			NgaySuDung: "2024-01-01",
			Slots:      []dto.SlotRequest{{SanID: uuid.NewString(), StartTime: "08:00", EndTime: "09:00"}},
		})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
