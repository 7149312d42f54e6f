package dto

type AddonRequest struct {
	Name      string `example:"Thue vot" json:"name" validate:"required,max=255"`
	Unit      string `example:"cái" json:"unit" validate:"omitempty,max=32"`
	UnitPrice int64  `example:"30000" json:"unit_price" validate:"min=0"`
	Active    *bool  `json:"active"`
}
