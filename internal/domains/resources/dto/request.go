package dto

type ResourceCreateRequest struct {
	Name        string   `example:"San 1" json:"name" validate:"required,max=255"`
	Capacity    int32    `example:"4" json:"capacity" validate:"min=0,max=1000"`
	Status      string   `example:"available" json:"status" validate:"omitempty,max=32"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Images      []string `json:"images" validate:"omitempty,max=10,dive,max=512"`
}

type ResourceUpdateRequest struct {
	Name        string   `json:"name" validate:"omitempty,max=255"`
	Capacity    *int32   `json:"capacity" validate:"omitempty,min=0,max=1000"`
	// Status applies to courts only.
	Status      string   `json:"status" validate:"omitempty,max=32"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Images      []string `json:"images" validate:"omitempty,max=10,dive,max=512"`
}

// TableStatusRequest carries the version the caller last read; a stale version is rejected.
type TableStatusRequest struct {
	Status  string `example:"DaDat" json:"status" validate:"required,max=32"`
	Version int32  `example:"3" json:"version" validate:"required,min=1"`
}
