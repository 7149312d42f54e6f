package dto

// PaymentCallbackRequest is the invoice callback body sent by Xendit. ExternalID carries the hold id.
type PaymentCallbackRequest struct {
	ID             string  `json:"id"`
	ExternalID     string  `json:"external_id" validate:"required"`
	Status         string  `json:"status" validate:"required"`
	MerchantName   string  `json:"merchant_name"`
	Amount         int64   `json:"amount"`
	PaidAmount     int64   `json:"paid_amount"`
	PaidAt         *string `json:"paid_at,omitempty"`
	PayerEmail     *string `json:"payer_email,omitempty"`
	Description    string  `json:"description"`
	Currency       *string `json:"currency,omitempty"`
	PaymentMethod  *string `json:"payment_method,omitempty"`
	PaymentChannel *string `json:"payment_channel,omitempty"`
}
