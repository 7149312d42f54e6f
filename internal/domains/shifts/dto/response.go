package dto

import (
	"github.com/savioruz/reserva/internal/domains/shifts/repository"
	"github.com/savioruz/reserva/pkg/helper"
)

type ShiftResponse struct {
	ID           string `json:"id"`
	ResourceID   string `json:"resource_id"`
	Name         string `json:"name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	PricePerHour int64  `json:"price_per_hour"`
}

func (s ShiftResponse) FromModel(m repository.Shift) ShiftResponse {
	return ShiftResponse{
		ID:           m.ID.String(),
		ResourceID:   m.ResourceID.String(),
		Name:         m.Name,
		StartTime:    helper.PgTimeToString(m.StartTime),
		EndTime:      helper.PgTimeToString(m.EndTime),
		PricePerHour: helper.Int64FromPg(m.PricePerHour),
	}
}
