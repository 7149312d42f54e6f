package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	availability "github.com/savioruz/reserva/internal/domains/availability/service"
	"github.com/savioruz/reserva/internal/domains/bookings/dto"
	"github.com/savioruz/reserva/internal/domains/bookings/repository"
	"github.com/savioruz/reserva/internal/domains/bookings/status"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/failure"
	"github.com/savioruz/reserva/pkg/helper"
	"github.com/savioruz/reserva/pkg/metrics"
	"github.com/savioruz/reserva/pkg/postgres"
)

// Stage is how far a draft got through Submit.
type Stage int

const (
	StageDraft Stage = iota
	StagePriceConfirmed
	StagePaymentPending
	StageSubmitted
)

func (s Stage) String() string {
	switch s {
	case StageDraft:
		return "draft"
	case StagePriceConfirmed:
		return "price_confirmed"
	case StagePaymentPending:
		return "payment_pending"
	case StageSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Submission is the result of Submit. Booking is only set once Stage is StageSubmitted.
type Submission struct {
	Stage   Stage
	Draft   dto.CreateBookingRequest
	Quote   availability.Quote
	Booking dto.BookingResponse
}

var (
	errDeferredCash   = failure.BadRequestFromString("only bank transfers can wait for payment confirmation")
	errContactMissing = failure.BadRequestFromString("contact_snapshot needs a name and a phone or email for guest bookings")
	errUnknownUser    = failure.BadRequestFromString("user_id does not belong to a registered user")
)

// Submit is the only way a booking gets created.
//
// Draft -> PriceConfirmed -> Submitted for immediate submission, or
// Draft -> PriceConfirmed -> PaymentPending when deferred. A deferred draft is returned to the
// caller to be held until payment is confirmed, then submitted again with deferred set to false.
func (s *bookingService) Submit(ctx context.Context, draft dto.CreateBookingRequest, deferred bool) (sub Submission, err error) {
	sub.Stage = StageDraft

	if deferred && draft.PaymentMethod != constant.PaymentMethodBankTransfer {
		return sub, errDeferredCash
	}

	if draft, err = s.withContact(ctx, draft); err != nil {
		return sub, err
	}

	sub.Draft = draft

	if deferred {
		if sub.Quote, err = s.availability.Quote(ctx, s.db, draft.PriceRequest()); err != nil {
			return sub, err
		}

		sub.Stage = StagePaymentPending

		return sub, nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "submit - failed to begin transaction: "+err.Error())

		return sub, failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "submit - failed to rollback transaction: "+err.Error())
		}
	}(tx, ctx)

	if sub.Quote, err = s.availability.Quote(ctx, tx, draft.PriceRequest()); err != nil {
		return sub, err
	}

	sub.Stage = StagePriceConfirmed

	booking, err := s.persist(ctx, tx, draft, sub.Quote)
	if err != nil {
		return sub, err
	}

	if sub.Booking, err = s.detail(ctx, tx, booking); err != nil {
		return sub, err
	}

	if err = tx.Commit(ctx); err != nil {
		if postgres.IsConstraintViolation(err) {
			return sub, failure.Conflict(constant.ReasonAlreadyReserved)
		}

		s.logger.Error(identifier, "submit - failed to commit transaction: "+err.Error())

		return sub, failure.InternalError(err)
	}

	sub.Stage = StageSubmitted

	metrics.RecordBooking(booking.Kind, booking.PaymentMethod)
	s.invalidate(ctx)
	s.notify(sub.Booking, false)

	return sub, nil
}

// withContact fills the contact snapshot from the account when the draft carries none.
func (s *bookingService) withContact(ctx context.Context, draft dto.CreateBookingRequest) (dto.CreateBookingRequest, error) {
	if draft.ContactSnapshot != nil && !draft.ContactSnapshot.Empty() {
		c := draft.ContactSnapshot
		if c.Name == "" || (c.Phone == "" && c.Email == "") {
			return draft, errContactMissing
		}

		return draft, nil
	}

	if draft.UserID == "" {
		return draft, errContactMissing
	}

	user, err := s.users.GetUserByID(ctx, s.db, helper.PgUUID(draft.UserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return draft, errUnknownUser
		}

		s.logger.Error(identifier, "withContact - failed to get user: "+err.Error())

		return draft, failure.InternalError(err)
	}

	draft.ContactSnapshot = &dto.ContactSnapshot{
		Name:  user.FullName,
		Phone: user.Phone.String,
		Email: user.Email,
	}

	return draft, nil
}

func (s *bookingService) persist(ctx context.Context, tx pgx.Tx, draft dto.CreateBookingRequest, q availability.Quote) (booking repository.Booking, err error) {
	token, err := s.newToken(ctx, tx)
	if err != nil {
		return booking, err
	}

	params := repository.InsertBookingParams{
		Token:         token,
		Kind:          q.Kind,
		UsageDate:     q.Date,
		Status:        string(status.Pending),
		PaymentMethod: draft.PaymentMethod,
		Note:          helper.PgString(draft.Note),
		SlotsTotal:    helper.PgInt64(q.SlotsTotal),
		ServicesTotal: helper.PgInt64(q.ServicesTotal),
		GrandTotal:    helper.PgInt64(q.GrandTotal),
	}

	if draft.UserID != "" {
		params.UserID = helper.PgUUID(draft.UserID)
	}

	if c := draft.ContactSnapshot; c != nil {
		params.ContactName = helper.PgString(c.Name)
		params.ContactPhone = helper.PgString(c.Phone)
		params.ContactEmail = helper.PgString(c.Email)
	}

	booking, err = s.repo.InsertBooking(ctx, tx, params)
	if err != nil {
		s.logger.Error(identifier, "persist - failed to insert booking: "+err.Error())

		return booking, failure.InternalError(err)
	}

	for _, sl := range q.Slots {
		_, err = s.repo.InsertBookingSlot(ctx, tx, repository.InsertBookingSlotParams{
			BookingID:  booking.ID,
			ResourceID: sl.ResourceID,
			UsageDate:  q.Date,
			StartTime:  helper.PgTimeFromMinutes(sl.Window.Start),
			EndTime:    helper.PgTimeFromMinutes(sl.Window.End),
			Price:      helper.PgInt64(sl.Price),
		})
		if err != nil {
			if postgres.IsConstraintViolation(err) {
				return booking, failure.Conflict(constant.ReasonAlreadyReserved)
			}

			s.logger.Error(identifier, "persist - failed to insert slot: "+err.Error())

			return booking, failure.InternalError(err)
		}
	}

	for _, sv := range q.Services {
		_, err = s.repo.InsertBookingAddon(ctx, tx, repository.InsertBookingAddonParams{
			BookingID: booking.ID,
			AddonID:   sv.AddonID,
			Name:      sv.Name,
			Quantity:  int32(sv.Quantity),
			UnitPrice: helper.PgInt64(sv.UnitPrice),
			LineTotal: helper.PgInt64(sv.LineTotal),
		})
		if err != nil {
			s.logger.Error(identifier, "persist - failed to insert service line: "+err.Error())

			return booking, failure.InternalError(err)
		}
	}

	return booking, nil
}

func (s *bookingService) newToken(ctx context.Context, tx pgx.Tx) (string, error) {
	for range tokenAttempts {
		token, err := helper.GenerateBookingToken()
		if err != nil {
			s.logger.Error(identifier, "newToken - failed to generate token: "+err.Error())

			return "", failure.InternalError(err)
		}

		_, err = s.repo.GetBookingByToken(ctx, tx, token)
		if errors.Is(err, pgx.ErrNoRows) {
			return token, nil
		}

		if err != nil {
			s.logger.Error(identifier, "newToken - failed to check token: "+err.Error())

			return "", failure.InternalError(err)
		}
	}

	return "", failure.InternalError(errors.New("could not allocate a unique booking token"))
}
