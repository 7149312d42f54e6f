package dto

import (
	"github.com/savioruz/reserva/internal/domains/addons/repository"
	"github.com/savioruz/reserva/pkg/helper"
)

type AddonResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	UnitPrice int64  `json:"unit_price"`
	Active    bool   `json:"active"`
}

func (a AddonResponse) FromModel(m repository.Addon) AddonResponse {
	return AddonResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Unit:      m.Unit,
		UnitPrice: helper.Int64FromPg(m.UnitPrice),
		Active:    m.Active,
	}
}
