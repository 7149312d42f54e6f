package service

import (
	"context"
	"strconv"

	"github.com/savioruz/reserva/internal/domains/bookings/dto"
	"github.com/savioruz/reserva/internal/domains/bookings/repository"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/receipt"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheet = "Bookings"
	exportLimit = 10000
)

var exportHeader = []any{
	"Ma PD", "Kind", "Usage date", "Status", "Payment method",
	"Contact name", "Contact phone", "Contact email",
	"Slots total", "Services total", "Grand total", "Note", "Created at",
}

func (s *bookingService) Receipt(ctx context.Context, token string) (pdf []byte, err error) {
	b, err := s.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}

	r := receipt.Receipt{
		Title:         s.cfg.App.Name,
		Token:         b.MaPD,
		Status:        b.StatusLabel,
		UsageDate:     b.NgaySuDung,
		CustomerName:  b.ContactSnapshot.Name,
		CustomerPhone: b.ContactSnapshot.Phone,
		PaymentMethod: b.PaymentMethod,
		SlotsTotal:    b.Summary.SlotsTotal,
		ServicesTotal: b.Summary.ServicesTotal,
		GrandTotal:    b.Summary.GrandTotal,
		IssuedAt:      s.clock.Now().Format(constant.FullDateFormat),
	}

	for _, sl := range b.Slots {
		r.Lines = append(r.Lines, receipt.Line{
			Label:  sl.ResourceName,
			Detail: sl.StartTime + " - " + sl.EndTime,
			Amount: sl.Price,
		})
	}

	for _, sv := range b.Services {
		r.Lines = append(r.Lines, receipt.Line{
			Label:  sv.Name,
			Detail: "x" + strconv.Itoa(int(sv.SoLuong)),
			Amount: sv.LineTotal,
		})
	}

	pdf, err = receipt.PDF(r)
	if err != nil {
		s.logger.Error(identifier, "receipt - failed to render pdf: "+err.Error())

		return nil, failure.InternalError(err)
	}

	return pdf, nil
}

// Export writes every booking matching the filter into a single sheet workbook.
func (s *bookingService) Export(ctx context.Context, req dto.ExportRequest) (xlsx []byte, err error) {
	if req.DateTo < req.DateFrom {
		return nil, failure.BadRequestFromString("date_to must not be before date_from")
	}

	bookings, err := s.repo.ListBookings(ctx, s.db, repository.BookingFilter{
		Status:   req.Status,
		Kind:     req.Kind,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Limit:    exportLimit,
	})
	if err != nil {
		s.logger.Error(identifier, "export - failed to list bookings: "+err.Error())

		return nil, failure.InternalError(err)
	}

	xlsx, err = workbook(bookings)
	if err != nil {
		s.logger.Error(identifier, "export - failed to build workbook: "+err.Error())

		return nil, failure.InternalError(err)
	}

	return xlsx, nil
}

func workbook(bookings []repository.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(exportHeader))
	if err != nil {
		return nil, err
	}

	if err = f.SetCellStyle(exportSheet, "A1", lastCol+"1", bold); err != nil {
		return nil, err
	}

	for i, b := range bookings {
		res := dto.BookingResponse{}.FromModel(b)

		row := []any{
			res.MaPD, res.Kind, res.NgaySuDung, res.StatusLabel, res.PaymentMethod,
			res.ContactSnapshot.Name, res.ContactSnapshot.Phone, res.ContactSnapshot.Email,
			res.Summary.SlotsTotal, res.Summary.ServicesTotal, res.Summary.GrandTotal,
			res.Note, res.CreatedAt,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		if err = f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
