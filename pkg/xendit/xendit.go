package xendit

import (
	"context"
	"errors"
	"time"

	"github.com/savioruz/reserva/config"
	x "github.com/xendit/xendit-go/v7"
	"github.com/xendit/xendit-go/v7/invoice"
)

//go:generate go run go.uber.org/mock/mockgen -source=xendit.go -destination=mock/xendit_mock.go -package=mock github.com/savioruz/reserva/pkg/xendit Gateway

var ErrMissingInvoiceID = errors.New("xendit: invoice id is empty")

type InvoiceRequest struct {
	ExternalID  string
	Amount      int64
	Currency    string
	Description string
	PayerEmail  string
}

type Invoice struct {
	ID        string
	URL       string
	Status    string
	ExpiresAt time.Time
}

// Gateway creates hosted payment pages for payment holds.
type Gateway interface {
	CreateInvoice(ctx context.Context, req InvoiceRequest) (Invoice, error)
	VerifyCallback(token string) bool
}

type gateway struct {
	client        *x.APIClient
	callbackToken string
}

func New(cfg *config.Config) Gateway {
	return &gateway{
		client:        x.NewClient(cfg.Xendit.APIKey),
		callbackToken: cfg.Xendit.CallbackToken,
	}
}

func (g *gateway) CreateInvoice(ctx context.Context, req InvoiceRequest) (Invoice, error) {
	create := *invoice.NewCreateInvoiceRequest(req.ExternalID, float64(req.Amount))
	create.SetDescription(req.Description)

	if req.Currency != "" {
		create.SetCurrency(req.Currency)
	}

	if req.PayerEmail != "" {
		create.SetPayerEmail(req.PayerEmail)
	}

	result, _, xerr := g.client.InvoiceApi.CreateInvoice(ctx).CreateInvoiceRequest(create).Execute()
	if xerr != nil {
		return Invoice{}, xerr
	}

	if result.Id == nil {
		return Invoice{}, ErrMissingInvoiceID
	}

	return Invoice{
		ID:        *result.Id,
		URL:       result.InvoiceUrl,
		Status:    result.Status.String(),
		ExpiresAt: result.ExpiryDate,
	}, nil
}

func (g *gateway) VerifyCallback(token string) bool {
	return g.callbackToken != "" && token == g.callbackToken
}
