package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	addons "github.com/savioruz/reserva/internal/domains/addons/repository"
	"github.com/savioruz/reserva/internal/domains/availability/dto"
	bookings "github.com/savioruz/reserva/internal/domains/bookings/repository"
	resources "github.com/savioruz/reserva/internal/domains/resources/repository"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/helper"
	"github.com/savioruz/reserva/pkg/timeslot"
)

const msgInvalidDraft = "booking request is invalid"

// Quote is a draft that passed every availability and pricing check.
type Quote struct {
	Date          pgtype.Date
	Kind          string
	Slots         []QuotedSlot
	Services      []QuotedService
	SlotsTotal    int64
	ServicesTotal int64
	GrandTotal    int64
}

type QuotedSlot struct {
	ResourceID   pgtype.UUID
	ResourceName string
	Window       timeslot.Range
	Price        int64
}

type QuotedService struct {
	AddonID   pgtype.UUID
	Name      string
	Unit      string
	Quantity  int
	UnitPrice int64
	LineTotal int64
}

func (q Quote) Response() dto.PriceResponse {
	res := dto.PriceResponse{
		NgaySuDung: helper.PgDateToString(q.Date),
		Kind:       q.Kind,
		Summary: dto.Summary{
			SlotsTotal:    q.SlotsTotal,
			ServicesTotal: q.ServicesTotal,
			GrandTotal:    q.GrandTotal,
		},
		Slots:    make([]dto.PricedSlot, 0, len(q.Slots)),
		Services: make([]dto.PricedService, 0, len(q.Services)),
	}

	for _, sl := range q.Slots {
		res.Slots = append(res.Slots, dto.PricedSlot{
			SanID:        sl.ResourceID.String(),
			ResourceName: sl.ResourceName,
			StartTime:    timeslot.FormatClock(sl.Window.Start),
			EndTime:      timeslot.FormatClock(sl.Window.End),
			Minutes:      sl.Window.Minutes(),
			Price:        sl.Price,
		})
	}

	for _, sv := range q.Services {
		res.Services = append(res.Services, dto.PricedService{
			DichVuID:  sv.AddonID.String(),
			Name:      sv.Name,
			Unit:      sv.Unit,
			SoLuong:   sv.Quantity,
			UnitPrice: sv.UnitPrice,
			LineTotal: sv.LineTotal,
		})
	}

	return res
}

// Quote validates every slot and service line of a draft and prices it.
// All problems are collected into the details of a single 400 failure.
func (s *availabilityService) Quote(ctx context.Context, db DBTX, req dto.PriceRequest) (q Quote, err error) {
	q.Date = helper.PgDate(req.NgaySuDung)
	if !q.Date.Valid {
		return q, failure.BadRequestFromString("ngay_su_dung must be a date in YYYY-MM-DD format")
	}

	if past, _ := helper.IsDateInPast(req.NgaySuDung, s.clock.Now()); past {
		return q, failure.BadRequestFromString(msgDateInPast)
	}

	if len(req.Slots) == 0 {
		return q, failure.Validation(msgInvalidDraft, "at least one slot is required")
	}

	// one entry per requested slot so details come out in request order
	slotDetails := make([]string, len(req.Slots))

	type candidate struct {
		index    int
		resource resources.Resource
		window   timeslot.Range
	}

	found := map[string]resources.Resource{}
	candidates := make([]candidate, 0, len(req.Slots))

	for i, slot := range req.Slots {
		window, err := timeslot.Parse(slot.StartTime, slot.EndTime)
		if err != nil {
			slotDetails[i] = err.Error()

			continue
		}

		r, ok := found[slot.SanID]
		if !ok {
			r, err = s.resources.GetResourceByID(ctx, db, helper.PgUUID(slot.SanID))
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					slotDetails[i] = "resource not found"

					continue
				}

				s.logger.Error(identifier, "quote - failed to get resource: "+err.Error())

				return q, failure.InternalError(err)
			}

			found[slot.SanID] = r
		}

		switch {
		case q.Kind == "":
			q.Kind = r.Kind
		case q.Kind != r.Kind:
			slotDetails[i] = "courts and tables cannot be booked together"

			continue
		}

		if r.Status == constant.ResourceStatusMaintenance {
			slotDetails[i] = constant.ReasonResourceDisabled

			continue
		}

		candidates = append(candidates, candidate{index: i, resource: r, window: window})
	}

	rates, err := s.rates(ctx, db, found)
	if err != nil {
		return q, err
	}

	for _, c := range candidates {
		resourceRates := rates[c.resource.ID.String()]

		windows := make([]timeslot.Range, 0, len(resourceRates))
		for _, rate := range resourceRates {
			windows = append(windows, rate.Window)
		}

		if !timeslot.Covers(windows, c.window) {
			slotDetails[c.index] = constant.ReasonOutsideShift

			continue
		}

		if clash := overlapping(q.Slots, c.resource.ID, c.window); clash >= 0 {
			slotDetails[c.index] = "overlaps another selected slot on " + c.resource.Name

			continue
		}

		taken, err := s.bookings.CountOverlaps(ctx, db, bookings.CountOverlapsParams{
			ResourceID: c.resource.ID,
			UsageDate:  q.Date,
			StartTime:  helper.PgTimeFromMinutes(c.window.Start),
			EndTime:    helper.PgTimeFromMinutes(c.window.End),
		})
		if err != nil {
			s.logger.Error(identifier, "quote - failed to count overlaps: "+err.Error())

			return q, failure.InternalError(err)
		}

		if taken > 0 {
			slotDetails[c.index] = constant.ReasonAlreadyReserved

			continue
		}

		price := timeslot.Price(resourceRates, c.window)

		q.Slots = append(q.Slots, QuotedSlot{
			ResourceID:   c.resource.ID,
			ResourceName: c.resource.Name,
			Window:       c.window,
			Price:        price,
		})
		q.SlotsTotal += price
	}

	var details []string

	for i, d := range slotDetails {
		if d != "" {
			details = append(details, fmt.Sprintf("slot %d: %s", i+1, d))
		}
	}

	serviceDetails, err := s.priceServices(ctx, db, req.Services, &q)
	if err != nil {
		return q, err
	}

	details = append(details, serviceDetails...)

	if len(details) == 0 && q.SlotsTotal > constant.MaxAmount-q.ServicesTotal {
		details = append(details, "grand total is too large")
	}

	if len(details) > 0 {
		return q, failure.Validation(msgInvalidDraft, details...)
	}

	q.GrandTotal = q.SlotsTotal + q.ServicesTotal

	return q, nil
}

func (s *availabilityService) rates(ctx context.Context, db DBTX, found map[string]resources.Resource) (map[string][]timeslot.Rate, error) {
	rates := make(map[string][]timeslot.Rate, len(found))
	if len(found) == 0 {
		return rates, nil
	}

	ids := make([]pgtype.UUID, 0, len(found))
	for _, r := range found {
		ids = append(ids, r.ID)
	}

	shifts, err := s.shifts.ListShiftsByResources(ctx, db, ids)
	if err != nil {
		s.logger.Error(identifier, "rates - failed to list shifts: "+err.Error())

		return nil, failure.InternalError(err)
	}

	for _, sh := range shifts {
		key := sh.ResourceID.String()
		rates[key] = append(rates[key], timeslot.Rate{
			Window: timeslot.Range{
				Start: helper.MinutesFromPgTime(sh.StartTime),
				End:   helper.MinutesFromPgTime(sh.EndTime),
			},
			PricePerHour: helper.Int64FromPg(sh.PricePerHour),
		})
	}

	return rates, nil
}

func (s *availabilityService) priceServices(ctx context.Context, db DBTX, lines []dto.ServiceLineRequest, q *Quote) (details []string, err error) {
	if len(lines) == 0 {
		return nil, nil
	}

	ids := make([]pgtype.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, helper.PgUUID(l.DichVuID))
	}

	found, err := s.addons.GetAddonsByIDs(ctx, db, ids)
	if err != nil {
		s.logger.Error(identifier, "priceServices - failed to get addons: "+err.Error())

		return nil, failure.InternalError(err)
	}

	byID := make(map[string]addons.Addon, len(found))
	for _, a := range found {
		byID[a.ID.String()] = a
	}

	for i, l := range lines {
		label := fmt.Sprintf("service %d", i+1)

		a, ok := byID[helper.PgUUID(l.DichVuID).String()]

		switch {
		case !ok:
			details = append(details, label+": service not found")
		case !a.Active:
			details = append(details, label+": "+a.Name+" is no longer offered")
		case l.SoLuong < 1:
			details = append(details, label+": so_luong must be at least 1")
		case l.SoLuong > constant.MaxServiceQuantity:
			details = append(details, fmt.Sprintf("%s: so_luong must be at most %d", label, constant.MaxServiceQuantity))
		default:
			unitPrice := helper.Int64FromPg(a.UnitPrice)

			lineTotal, ok := helper.CalculateLineTotal(unitPrice, l.SoLuong)
			if !ok || lineTotal > constant.MaxAmount-q.ServicesTotal {
				details = append(details, label+": line total is too large")

				continue
			}

			q.Services = append(q.Services, QuotedService{
				AddonID:   a.ID,
				Name:      a.Name,
				Unit:      a.Unit,
				Quantity:  l.SoLuong,
				UnitPrice: unitPrice,
				LineTotal: lineTotal,
			})
			q.ServicesTotal += lineTotal
		}
	}

	return details, nil
}

// overlapping returns the index of an accepted slot on the same resource that shares time with w, or -1.
func overlapping(accepted []QuotedSlot, resourceID pgtype.UUID, w timeslot.Range) int {
	for i, sl := range accepted {
		if sl.ResourceID == resourceID && sl.Window.Overlaps(w) {
			return i
		}
	}

	return -1
}
