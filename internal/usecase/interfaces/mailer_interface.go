package interfaces

import (
	"cleanlyquote/internal/domain/entities"
	"context"

	"github.com/shopspring/decimal"
)

type QuoteEmail struct {
	Quote    entities.Quote
	Sender   entities.Tenant
	ShareURL string
}

type PaymentConfirmation struct {
	Amount   decimal.Decimal
	Currency string
	PlanName string
}

// IMailer renders and delivers transactional email (Resend).
// Delivery ordering and retries are the provider's concern.
type IMailer interface {
	SendQuote(ctx context.Context, msg QuoteEmail) (messageID string, err error)
	SendWelcome(ctx context.Context, t entities.Tenant) (messageID string, err error)
	SendPaymentConfirmation(ctx context.Context, t entities.Tenant, p PaymentConfirmation) (messageID string, err error)
}
