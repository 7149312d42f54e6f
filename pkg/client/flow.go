package client

import (
	"context"
	"errors"
	"net/http"
	"slices"

	availability "github.com/savioruz/reserva/internal/domains/availability/dto"
	bookings "github.com/savioruz/reserva/internal/domains/bookings/dto"
	payments "github.com/savioruz/reserva/internal/domains/payments/dto"
	"github.com/savioruz/reserva/pkg/constant"
)

// Flow walks one user through search, selection, pricing and submission. It is meant to be driven
// from a single goroutine and is not safe for concurrent use.
type Flow struct {
	client *Client

	Query     availability.AvailabilityRequest
	Results   *availability.AvailabilityResponse
	Selection Selection
	Services  []availability.ServiceLineRequest

	// Summary is nil until the current selection has been priced.
	Summary *availability.PriceResponse
	// Problems lists the server's reasons the last pricing attempt was refused.
	Problems []string

	Hold *payments.HoldResponse
}

func NewFlow(c *Client) *Flow {
	return &Flow{client: c}
}

// Search starts a new search window. Anything selected or priced for the previous window is
// discarded before the request goes out. In-flight searches are not cancelled, so when two
// searches overlap the slower response wins even if it belongs to the older query.
func (f *Flow) Search(ctx context.Context, q availability.AvailabilityRequest) error {
	f.Query = q
	f.Results = nil
	f.reset()

	res, err := f.client.Availability(ctx, q)
	if err != nil {
		return err
	}

	f.Results = &res

	return nil
}

// Toggle flips a slot in the selection and reprices.
func (f *Flow) Toggle(ctx context.Context, slot availability.SlotRequest) error {
	if _, err := f.Selection.Toggle(slot); err != nil {
		return err
	}

	return f.reprice(ctx)
}

// SetService sets the quantity of an add-on service. Zero or less removes it.
func (f *Flow) SetService(ctx context.Context, dichVuID string, quantity int) error {
	i := slices.IndexFunc(f.Services, func(s availability.ServiceLineRequest) bool {
		return s.DichVuID == dichVuID
	})

	switch {
	case quantity <= 0 && i >= 0:
		f.Services = slices.Delete(f.Services, i, i+1)
	case quantity > 0 && i >= 0:
		f.Services[i].SoLuong = quantity
	case quantity > 0:
		f.Services = append(f.Services, availability.ServiceLineRequest{DichVuID: dichVuID, SoLuong: quantity})
	}

	return f.reprice(ctx)
}

func (f *Flow) reprice(ctx context.Context) error {
	f.Summary = nil
	f.Problems = nil

	if f.Selection.Len() == 0 {
		return nil
	}

	res, err := f.client.CalculatePrice(ctx, availability.PriceRequest{
		NgaySuDung: f.Query.Date,
		Slots:      f.Selection.Slots(),
		Services:   slices.Clone(f.Services),
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
			f.Problems = apiErr.Details
			if len(f.Problems) == 0 {
				f.Problems = []string{apiErr.Message}
			}
		}

		return err
	}

	f.Summary = &res

	return nil
}

// Draft turns the priced selection into a booking request.
func (f *Flow) Draft(method, note string, contact *bookings.ContactSnapshot) (bookings.CreateBookingRequest, error) {
	if f.Summary == nil {
		return bookings.CreateBookingRequest{}, ErrNotPriced
	}

	return bookings.CreateBookingRequest{
		NgaySuDung:      f.Query.Date,
		Slots:           f.Selection.Slots(),
		Services:        slices.Clone(f.Services),
		PaymentMethod:   method,
		Note:            note,
		ContactSnapshot: contact,
	}, nil
}

// Submit books the selection right away.
func (f *Flow) Submit(ctx context.Context, method, note string, contact *bookings.ContactSnapshot) (bookings.BookingResponse, error) {
	draft, err := f.Draft(method, note, contact)
	if err != nil {
		return bookings.BookingResponse{}, err
	}

	res, err := f.client.CreateBooking(ctx, draft)
	if err != nil {
		return res, err
	}

	f.reset()

	return res, nil
}

// StartPayment asks the server to hold the selection while the user makes a bank transfer.
func (f *Flow) StartPayment(ctx context.Context, note string, contact *bookings.ContactSnapshot) (payments.HoldResponse, error) {
	draft, err := f.Draft(constant.PaymentMethodBankTransfer, note, contact)
	if err != nil {
		return payments.HoldResponse{}, err
	}

	res, err := f.client.CreatePaymentHold(ctx, draft)
	if err != nil {
		return res, err
	}

	f.Hold = &res

	return res, nil
}

// ConfirmPayment turns the held selection into a booking. A hold the server no longer knows is
// dropped so the user can start over.
func (f *Flow) ConfirmPayment(ctx context.Context) (bookings.BookingResponse, error) {
	if f.Hold == nil {
		return bookings.BookingResponse{}, ErrNoHold
	}

	res, err := f.client.ConfirmPayment(ctx, f.Hold.HoldID)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			f.Hold = nil
		}

		return res, err
	}

	f.reset()

	return res, nil
}

// AbandonPayment releases the hold and keeps the selection so the user can go back and change it.
func (f *Flow) AbandonPayment(ctx context.Context) error {
	if f.Hold == nil {
		return nil
	}

	if err := f.client.AbandonPayment(ctx, f.Hold.HoldID); err != nil {
		return err
	}

	f.Hold = nil

	return nil
}

func (f *Flow) reset() {
	f.Selection.Clear()
	f.Services = nil
	f.Summary = nil
	f.Problems = nil
	f.Hold = nil
}
