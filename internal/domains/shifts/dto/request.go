package dto

type ShiftRequest struct {
	Name         string `example:"Ca sang" json:"name" validate:"required,max=100"`
	StartTime    string `example:"06:00" json:"start_time" validate:"required,datetime=15:04"`
	EndTime      string `example:"11:00" json:"end_time" validate:"required,datetime=15:04"`
	PricePerHour int64  `example:"120000" json:"price_per_hour" validate:"min=0"`
}
