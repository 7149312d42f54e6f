package dto

type ConflictResponse struct {
	MaPD      string `json:"ma_pd,omitempty"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}

type ResourceAvailability struct {
	SanID       string             `json:"san_id"`
	Kind        string             `json:"kind"`
	Name        string             `json:"name"`
	Capacity    int32              `json:"capacity"`
	Status      string             `json:"status"`
	StatusLabel string             `json:"status_label"`
	IsAvailable bool               `json:"is_available"`
	Bookings    []ConflictResponse `json:"bookings"`
}

type AvailabilityResponse struct {
	Date      string                 `json:"date"`
	StartTime string                 `json:"start_time"`
	EndTime   string                 `json:"end_time"`
	Kind      string                 `json:"kind"`
	Resources []ResourceAvailability `json:"resources"`
}

type Summary struct {
	SlotsTotal    int64 `json:"slots_total"`
	ServicesTotal int64 `json:"services_total"`
	GrandTotal    int64 `json:"grand_total"`
}

type PricedSlot struct {
	SanID        string `json:"san_id"`
	ResourceName string `json:"resource_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Minutes      int    `json:"minutes"`
	Price        int64  `json:"price"`
}

type PricedService struct {
	DichVuID  string `json:"dich_vu_id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	SoLuong   int    `json:"so_luong"`
	UnitPrice int64  `json:"unit_price"`
	LineTotal int64  `json:"line_total"`
}

type PriceResponse struct {
	NgaySuDung string          `json:"ngay_su_dung"`
	Kind       string          `json:"kind"`
	Summary    Summary         `json:"summary"`
	Slots      []PricedSlot    `json:"slots"`
	Services   []PricedService `json:"services"`
}
