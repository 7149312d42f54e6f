package receipt

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"github.com/savioruz/reserva/pkg/helper"
	"github.com/skip2/go-qrcode"
)

const (
	qrSize     = 256
	qrImageKey = "qr"
)

type Line struct {
	Label  string
	Detail string
	Amount int64
}

type Receipt struct {
	Title         string
	Token         string
	Status        string
	UsageDate     string
	CustomerName  string
	CustomerPhone string
	PaymentMethod string
	Lines         []Line
	SlotsTotal    int64
	ServicesTotal int64
	GrandTotal    int64
	IssuedAt      string
}

// QR encodes payload as a PNG QR code.
func QR(payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("receipt - qr: %w", err)
	}

	return png, nil
}

// PDF renders a single page A4 receipt with the booking token as a QR code.
func PDF(r Receipt) ([]byte, error) {
	qrPNG, err := QR(r.Token)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(r.Title+" "+r.Token, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(r.Title))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)

	for _, row := range [][2]string{
		{"Booking code", r.Token},
		{"Status", r.Status},
		{"Date", r.UsageDate},
		{"Customer", r.CustomerName},
		{"Phone", r.CustomerPhone},
		{"Payment", r.PaymentMethod},
	} {
		if row[1] == "" {
			continue
		}

		pdf.CellFormat(40, 8, row[0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, tr(row[1]), "", 1, "L", false, 0, "")
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(qrImageKey, opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions(qrImageKey, 150, 20, 40, 40, false, opts, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(70, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(70, 8, "Detail", "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)

	for _, l := range r.Lines {
		pdf.CellFormat(70, 7, tr(l.Label), "", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, tr(l.Detail), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, helper.FormatVND(l.Amount), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)

	for _, total := range []struct {
		label  string
		amount int64
		bold   bool
	}{
		{"Slots", r.SlotsTotal, false},
		{"Services", r.ServicesTotal, false},
		{"Total", r.GrandTotal, true},
	} {
		style := ""
		if total.bold {
			style = "B"
		}

		pdf.SetFont("Arial", style, 11)
		pdf.CellFormat(140, 7, total.label, "T", 0, "R", false, 0, "")
		pdf.CellFormat(0, 7, helper.FormatVND(total.amount), "T", 1, "R", false, 0, "")
	}

	if r.IssuedAt != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "I", 9)
		pdf.Cell(0, 6, "Issued at "+r.IssuedAt)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt - pdf: %w", err)
	}

	return buf.Bytes(), nil
}
