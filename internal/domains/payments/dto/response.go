package dto

import (
	availability "github.com/savioruz/reserva/internal/domains/availability/dto"
)

type BankAccount struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

type HoldResponse struct {
	HoldID          string                     `json:"hold_id"`
	Amount          int64                      `json:"amount"`
	ExpiresAt       string                     `json:"expires_at"`
	TransferContent string                     `json:"transfer_content"`
	QRURL           string                     `json:"qr_url"`
	PaymentURL      string                     `json:"payment_url,omitempty"`
	Bank            BankAccount                `json:"bank"`
	Quote           availability.PriceResponse `json:"quote"`
}

type HoldEnvelope struct {
	Payment HoldResponse `json:"payment"`
}
