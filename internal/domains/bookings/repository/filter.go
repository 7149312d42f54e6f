package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

//go:generate go run go.uber.org/mock/mockgen -source=filter.go -destination=../mock/repository.go -package=mock github.com/savioruz/reserva/internal/domains/bookings/repository Repository

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// likeEscaper makes LIKE wildcards in user input match literally under the default backslash escape.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

var bookingColumns = []string{
	"id", "token", "kind", "user_id", "usage_date", "status", "payment_method", "note",
	"contact_name", "contact_phone", "contact_email",
	"slots_total", "services_total", "grand_total",
	"cancel_reason", "canceled_by", "version", "created_at", "updated_at",
}

// BookingFilter narrows the staff booking list. Zero values are ignored.
type BookingFilter struct {
	Status   string
	Kind     string
	DateFrom string
	DateTo   string
	Query    string
	Limit    uint64
	Offset   uint64
}

// Repository is the sqlc Querier plus the hand-written dynamic queries.
type Repository interface {
	Querier
	ListBookings(ctx context.Context, db DBTX, f BookingFilter) ([]Booking, error)
	CountBookings(ctx context.Context, db DBTX, f BookingFilter) (int64, error)
}

var _ Repository = (*Queries)(nil)

func (f BookingFilter) apply(b sq.SelectBuilder) sq.SelectBuilder {
	if f.Status != "" {
		b = b.Where(sq.Eq{"status": f.Status})
	}

	if f.Kind != "" {
		b = b.Where(sq.Eq{"kind": f.Kind})
	}

	if f.DateFrom != "" {
		b = b.Where(sq.GtOrEq{"usage_date": f.DateFrom})
	}

	if f.DateTo != "" {
		b = b.Where(sq.LtOrEq{"usage_date": f.DateTo})
	}

	if f.Query != "" {
		like := "%" + likeEscaper.Replace(f.Query) + "%"
		b = b.Where(sq.Or{
			sq.ILike{"token": like},
			sq.ILike{"contact_name": like},
			sq.ILike{"contact_phone": like},
			sq.ILike{"contact_email": like},
		})
	}

	return b
}

func (q *Queries) ListBookings(ctx context.Context, db DBTX, f BookingFilter) ([]Booking, error) {
	b := f.apply(psql.Select(bookingColumns...).From("bookings")).
		OrderBy("usage_date DESC", "created_at DESC")

	if f.Limit > 0 {
		b = b.Limit(f.Limit).Offset(f.Offset)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list bookings - build query: %w", err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Booking

	for rows.Next() {
		var i Booking
		if err := rows.Scan(
			&i.ID,
			&i.Token,
			&i.Kind,
			&i.UserID,
			&i.UsageDate,
			&i.Status,
			&i.PaymentMethod,
			&i.Note,
			&i.ContactName,
			&i.ContactPhone,
			&i.ContactEmail,
			&i.SlotsTotal,
			&i.ServicesTotal,
			&i.GrandTotal,
			&i.CancelReason,
			&i.CanceledBy,
			&i.Version,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}

		items = append(items, i)
	}

	return items, rows.Err()
}

func (q *Queries) CountBookings(ctx context.Context, db DBTX, f BookingFilter) (int64, error) {
	query, args, err := f.apply(psql.Select("COUNT(*)").From("bookings")).ToSql()
	if err != nil {
		return 0, fmt.Errorf("count bookings - build query: %w", err)
	}

	var count int64
	err = db.QueryRow(ctx, query, args...).Scan(&count)

	return count, err
}
