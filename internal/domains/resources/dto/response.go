package dto

import (
	"github.com/savioruz/reserva/internal/domains/resources/repository"
	"github.com/savioruz/reserva/pkg/constant"
)

type ResourceResponse struct {
	ID          string   `json:"id"`
	Kind        string   `json:"kind"`
	Name        string   `json:"name"`
	Capacity    int32    `json:"capacity"`
	Status      string   `json:"status"`
	StatusLabel string   `json:"status_label"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images"`
	Version     int32    `json:"version"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func (r ResourceResponse) FromModel(m repository.Resource) ResourceResponse {
	images := m.Images
	if images == nil {
		images = []string{}
	}

	return ResourceResponse{
		ID:          m.ID.String(),
		Kind:        m.Kind,
		Name:        m.Name,
		Capacity:    m.Capacity,
		Status:      m.Status,
		StatusLabel: StatusLabel(m.Kind, m.Status),
		Description: m.Description.String,
		Images:      images,
		Version:     m.Version,
		CreatedAt:   m.CreatedAt.Time.Format(constant.FullDateFormat),
		UpdatedAt:   m.UpdatedAt.Time.Format(constant.FullDateFormat),
	}
}
