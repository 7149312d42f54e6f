package dto

type AvailabilityRequest struct {
	Date      string `example:"2025-06-01" json:"date" query:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `example:"09:00" json:"start_time" query:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `example:"11:00" json:"end_time" query:"end_time" validate:"required,datetime=15:04"`
	Kind      string `example:"court" json:"kind" query:"kind" validate:"omitempty,oneof=court table"`
}

type SlotRequest struct {
	SanID     string `json:"san_id" validate:"required,uuid"`
	StartTime string `example:"09:00" json:"start_time" validate:"required"`
	EndTime   string `example:"10:30" json:"end_time" validate:"required"`
}

// ServiceLineRequest quantities below one are reported by the pricing step along with the other bad lines.
type ServiceLineRequest struct {
	DichVuID string `json:"dich_vu_id" validate:"required,uuid"`
	SoLuong  int    `json:"so_luong" validate:"max=1000"`
}

type PriceRequest struct {
	NgaySuDung string               `example:"2025-06-01" json:"ngay_su_dung" validate:"required,datetime=2006-01-02"`
	Slots      []SlotRequest        `json:"slots" validate:"required,min=1,max=24,dive"`
	Services   []ServiceLineRequest `json:"services" validate:"omitempty,max=20,dive"`
}
