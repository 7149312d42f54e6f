package gdto

import "github.com/savioruz/reserva/pkg/helper"

type PaginationRequest struct {
	Page   int    `json:"page" query:"page" validate:"omitempty,numeric,min=1"`
	Limit  int    `json:"limit" query:"limit" validate:"omitempty,numeric,min=1,max=100"`
	Filter string `json:"filter" query:"filter" validate:"omitempty,max=100"`
}

// Page is the envelope every paginated listing returns.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

func NewPage[T any](items []T, totalItems, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items:      items,
		TotalItems: totalItems,
		TotalPages: helper.CalculateTotalPages(totalItems, limit),
	}
}
