package dto

import (
	availability "github.com/savioruz/reserva/internal/domains/availability/dto"
	"github.com/savioruz/reserva/internal/domains/bookings/repository"
	"github.com/savioruz/reserva/internal/domains/bookings/status"
	"github.com/savioruz/reserva/pkg/constant"
	"github.com/savioruz/reserva/pkg/helper"
)

type SlotResponse struct {
	SanID        string `json:"san_id"`
	ResourceName string `json:"resource_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Price        int64  `json:"price"`
	Active       bool   `json:"active"`
}

type ServiceResponse struct {
	DichVuID  string `json:"dich_vu_id"`
	Name      string `json:"name"`
	SoLuong   int32  `json:"so_luong"`
	UnitPrice int64  `json:"unit_price"`
	LineTotal int64  `json:"line_total"`
}

type BookingResponse struct {
	ID              string               `json:"id"`
	MaPD            string               `json:"ma_pd"`
	Kind            string               `json:"kind"`
	UserID          string               `json:"user_id,omitempty"`
	NgaySuDung      string               `json:"ngay_su_dung"`
	Status          string               `json:"status"`
	StatusLabel     string               `json:"status_label"`
	Cancelable      bool                 `json:"cancelable"`
	PaymentMethod   string               `json:"payment_method"`
	Note            string               `json:"note,omitempty"`
	ContactSnapshot ContactSnapshot      `json:"contact_snapshot"`
	Summary         availability.Summary `json:"summary"`
	Slots           []SlotResponse       `json:"slots,omitempty"`
	Services        []ServiceResponse    `json:"services,omitempty"`
	CancelReason    string               `json:"cancel_reason,omitempty"`
	CanceledBy      string               `json:"canceled_by,omitempty"`
	CreatedAt       string               `json:"created_at"`
	UpdatedAt       string               `json:"updated_at"`
}

// BookingEnvelope is the body of a successful submission.
type BookingEnvelope struct {
	Booking BookingResponse `json:"booking"`
}

func (b BookingResponse) FromModel(m repository.Booking) BookingResponse {
	kind := status.Kind(m.Kind)
	st := status.Status(m.Status)

	res := BookingResponse{
		ID:            m.ID.String(),
		MaPD:          m.Token,
		Kind:          m.Kind,
		NgaySuDung:    helper.PgDateToString(m.UsageDate),
		Status:        m.Status,
		StatusLabel:   status.Label(kind, st),
		Cancelable:    st == status.Pending,
		PaymentMethod: m.PaymentMethod,
		Note:          m.Note.String,
		ContactSnapshot: ContactSnapshot{
			Name:  m.ContactName.String,
			Phone: m.ContactPhone.String,
			Email: m.ContactEmail.String,
		},
		Summary: availability.Summary{
			SlotsTotal:    helper.Int64FromPg(m.SlotsTotal),
			ServicesTotal: helper.Int64FromPg(m.ServicesTotal),
			GrandTotal:    helper.Int64FromPg(m.GrandTotal),
		},
		CancelReason: m.CancelReason.String,
		CanceledBy:   m.CanceledBy.String,
		CreatedAt:    m.CreatedAt.Time.Format(constant.FullDateFormat),
		UpdatedAt:    m.UpdatedAt.Time.Format(constant.FullDateFormat),
	}

	if m.UserID.Valid {
		res.UserID = m.UserID.String()
	}

	return res
}

// WithLines attaches the stored slots and service lines.
func (b BookingResponse) WithLines(slots []repository.GetBookingSlotsRow, addons []repository.BookingAddon) BookingResponse {
	b.Slots = make([]SlotResponse, 0, len(slots))
	for _, sl := range slots {
		b.Slots = append(b.Slots, SlotResponse{
			SanID:        sl.ResourceID.String(),
			ResourceName: sl.ResourceName,
			StartTime:    helper.PgTimeToString(sl.StartTime),
			EndTime:      helper.PgTimeToString(sl.EndTime),
			Price:        helper.Int64FromPg(sl.Price),
			Active:       sl.Active,
		})
	}

	b.Services = make([]ServiceResponse, 0, len(addons))
	for _, a := range addons {
		b.Services = append(b.Services, ServiceResponse{
			DichVuID:  a.AddonID.String(),
			Name:      a.Name,
			SoLuong:   a.Quantity,
			UnitPrice: helper.Int64FromPg(a.UnitPrice),
			LineTotal: helper.Int64FromPg(a.LineTotal),
		})
	}

	return b
}
