package dto

import (
	availability "github.com/savioruz/reserva/internal/domains/availability/dto"
)

type ContactSnapshot struct {
	Name  string `json:"name" validate:"omitempty,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
	Email string `json:"email" validate:"omitempty,email"`
}

func (c ContactSnapshot) Empty() bool {
	return c.Name == "" && c.Phone == "" && c.Email == ""
}

type CreateBookingRequest struct {
	UserID          string                            `json:"user_id" validate:"omitempty,uuid"`
	NgaySuDung      string                            `example:"2025-06-01" json:"ngay_su_dung" validate:"required,datetime=2006-01-02"`
	Slots           []availability.SlotRequest        `json:"slots" validate:"required,min=1,max=24,dive"`
	Services        []availability.ServiceLineRequest `json:"services" validate:"omitempty,max=20,dive"`
	PaymentMethod   string                            `example:"cash" json:"payment_method" validate:"required,oneof=cash bank_transfer"`
	Note            string                            `json:"note" validate:"omitempty,max=500"`
	ContactSnapshot *ContactSnapshot                  `json:"contact_snapshot,omitempty" validate:"omitempty"`
}

func (r CreateBookingRequest) PriceRequest() availability.PriceRequest {
	return availability.PriceRequest{
		NgaySuDung: r.NgaySuDung,
		Slots:      r.Slots,
		Services:   r.Services,
	}
}

type CancelRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type UpdateStatusRequest struct {
	Status string `example:"confirmed" json:"status" validate:"required"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type ListBookingsRequest struct {
	Page     int    `json:"page" query:"page" validate:"omitempty,numeric,min=1"`
	Limit    int    `json:"limit" query:"limit" validate:"omitempty,numeric,min=1,max=100"`
	Status   string `json:"status" query:"status" validate:"omitempty,oneof=pending confirmed canceled received expired"`
	Kind     string `json:"kind" query:"kind" validate:"omitempty,oneof=court table"`
	DateFrom string `json:"date_from" query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `json:"date_to" query:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Q        string `json:"q" query:"q" validate:"omitempty,max=100"`
}

type ExportRequest struct {
	DateFrom string `json:"date_from" query:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo   string `json:"date_to" query:"date_to" validate:"required,datetime=2006-01-02"`
	Status   string `json:"status" query:"status" validate:"omitempty,oneof=pending confirmed canceled received expired"`
	Kind     string `json:"kind" query:"kind" validate:"omitempty,oneof=court table"`
}
