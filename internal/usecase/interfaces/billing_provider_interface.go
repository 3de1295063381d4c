package interfaces

import (
	"cleanlyquote/internal/domain/entities"
	"context"
	"errors"
)

var ErrInvalidWebhookSignature = errors.New("invalid webhook signature")

type CheckoutSessionRequest struct {
	CustomerID string
	PriceID    string
	TenantID   string
	Interval   string
	SuccessURL string
	CancelURL  string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// IBillingProvider abstracts the subscription billing provider (Stripe).
type IBillingProvider interface {
	CreateCustomer(ctx context.Context, email, tenantID string) (customerID string, err error)
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (CheckoutSession, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (url string, err error)
}

// IBillingEventVerifier authenticates a raw webhook body and reduces it to a
// BillingEvent. Signature failures wrap ErrInvalidWebhookSignature.
type IBillingEventVerifier interface {
	ParseEvent(payload []byte, signatureHeader string) (entities.BillingEvent, error)
}
