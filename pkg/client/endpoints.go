package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	availability "github.com/savioruz/reserva/internal/domains/availability/dto"
	bookings "github.com/savioruz/reserva/internal/domains/bookings/dto"
	payments "github.com/savioruz/reserva/internal/domains/payments/dto"
	userdto "github.com/savioruz/reserva/internal/domains/user/dto"
	"github.com/savioruz/reserva/pkg/gdto"
	"github.com/savioruz/reserva/pkg/helper"
)

func (c *Client) Register(ctx context.Context, req userdto.UserRegisterRequest) (res userdto.UserResponse, err error) {
	err = c.publicAPI(ctx, request{method: http.MethodPost, path: "/auth/register", body: req, out: &res})

	return res, err
}

// Login signs in and stores the tokens in the client's session.
func (c *Client) Login(ctx context.Context, req userdto.UserLoginRequest) (res userdto.UserLoginResponse, err error) {
	if err = c.publicAPI(ctx, request{method: http.MethodPost, path: "/auth/login", body: req, out: &res}); err != nil {
		return res, err
	}

	if c.session != nil {
		err = c.session.Set(res)
	}

	return res, err
}

func (c *Client) Logout() error {
	if c.session == nil {
		return nil
	}

	return c.session.Clear()
}

func (c *Client) Availability(ctx context.Context, req availability.AvailabilityRequest) (res availability.AvailabilityResponse, err error) {
	q := url.Values{}
	q.Set("date", req.Date)
	q.Set("start_time", req.StartTime)
	q.Set("end_time", req.EndTime)

	if req.Kind != "" {
		q.Set("kind", req.Kind)
	}

	err = c.publicAPI(ctx, request{method: http.MethodGet, path: "/public/availability", query: q, out: &res})

	return res, err
}

func (c *Client) CalculatePrice(ctx context.Context, req availability.PriceRequest) (res availability.PriceResponse, err error) {
	err = c.publicAPI(ctx, request{method: http.MethodPost, path: "/public/availability/calculate-price", body: req, out: &res})

	return res, err
}

func (c *Client) CreateBooking(ctx context.Context, req bookings.CreateBookingRequest) (bookings.BookingResponse, error) {
	var res bookings.BookingEnvelope
	err := c.api(ctx, request{method: http.MethodPost, path: "/public/bookings", body: req, out: &res})

	return res.Booking, err
}

func (c *Client) LookupBooking(ctx context.Context, token string) (res bookings.BookingResponse, err error) {
	err = c.publicAPI(ctx, request{method: http.MethodGet, path: tokenPath(token), out: &res})

	return res, tokenError(err)
}

func (c *Client) CancelBooking(ctx context.Context, token, reason string) (res bookings.BookingResponse, err error) {
	err = c.publicAPI(ctx, request{
		method: http.MethodPut,
		path:   tokenPath(token) + "/cancel",
		body:   bookings.CancelRequest{Reason: reason},
		out:    &res,
	})

	return res, tokenError(err)
}

func (c *Client) Receipt(ctx context.Context, token string) (pdf []byte, err error) {
	err = c.publicAPI(ctx, request{method: http.MethodGet, path: tokenPath(token) + "/receipt", raw: &pdf})

	return pdf, tokenError(err)
}

// ListBookings is the staff listing. It retries when rate limited.
func (c *Client) ListBookings(ctx context.Context, req bookings.ListBookingsRequest) (res gdto.Page[bookings.BookingResponse], err error) {
	q := pageQuery(req.Page, req.Limit)
	set(q, "status", req.Status)
	set(q, "kind", req.Kind)
	set(q, "date_from", req.DateFrom)
	set(q, "date_to", req.DateTo)
	set(q, "q", req.Q)

	err = c.api(ctx, request{method: http.MethodGet, path: "/bookings", query: q, out: &res, retry: true})

	return res, err
}

// MyBookings lists the signed in user's bookings. It retries when rate limited.
func (c *Client) MyBookings(ctx context.Context, req gdto.PaginationRequest) (res gdto.Page[bookings.BookingResponse], err error) {
	err = c.api(ctx, request{method: http.MethodGet, path: "/bookings/mine", query: pageQuery(req.Page, req.Limit), out: &res, retry: true})

	return res, err
}

func (c *Client) UpdateBookingStatus(ctx context.Context, id string, req bookings.UpdateStatusRequest) (res bookings.BookingResponse, err error) {
	err = c.api(ctx, request{method: http.MethodPut, path: "/bookings/" + url.PathEscape(id), body: req, out: &res})

	return res, err
}

func (c *Client) CreatePaymentHold(ctx context.Context, req bookings.CreateBookingRequest) (payments.HoldResponse, error) {
	var res payments.HoldEnvelope
	err := c.api(ctx, request{method: http.MethodPost, path: "/public/payments", body: req, out: &res})

	return res.Payment, err
}

func (c *Client) ConfirmPayment(ctx context.Context, holdID string) (bookings.BookingResponse, error) {
	var res bookings.BookingEnvelope
	err := c.publicAPI(ctx, request{method: http.MethodPost, path: holdPath(holdID) + "/confirm", out: &res})

	return res.Booking, err
}

func (c *Client) AbandonPayment(ctx context.Context, holdID string) error {
	return c.publicAPI(ctx, request{method: http.MethodDelete, path: holdPath(holdID)})
}

func tokenPath(token string) string {
	return "/public/bookings/" + url.PathEscape(helper.NormalizeBookingToken(token))
}

func holdPath(holdID string) string {
	return "/public/payments/" + url.PathEscape(holdID)
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}

	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}

	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	return q
}

func set(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
