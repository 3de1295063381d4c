package payments

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
)

// StripeSettings configures the Stripe gateway. An empty SecretKey enables
// mock mode, where API calls return synthetic ids without network access.
type StripeSettings struct {
	SecretKey     string
	WebhookSecret string
	// SkipVerify accepts unsigned webhook payloads. Never set in production.
	SkipVerify bool
}

type StripeGateway struct {
	api      *client.API
	settings StripeSettings
	mockMode bool
	log      *zap.SugaredLogger
}

var (
	_ interfaces.IBillingProvider      = (*StripeGateway)(nil)
	_ interfaces.IBillingEventVerifier = (*StripeGateway)(nil)
)

func NewStripeGateway(s StripeSettings, log *zap.SugaredLogger) *StripeGateway {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	g := &StripeGateway{settings: s, log: log}
	if s.SecretKey == "" {
		log.Warnw("[billing][gateway] mock mode enabled, STRIPE_SECRET_KEY not set")
		g.mockMode = true
		return g
	}
	g.api = client.New(s.SecretKey, nil)
	log.Infow("[billing][gateway] Stripe client initialized")
	return g
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, email, tenantID string) (string, error) {
	if g.mockMode {
		return "cus_mock_" + tenantID, nil
	}

	params := &stripe.CustomerParams{
		Email:    stripe.String(email),
		Metadata: map[string]string{"tenant_id": tenantID},
	}
	params.Context = ctx
	c, err := g.api.Customers.New(params)
	if err != nil {
		g.log.Errorw("[billing][gateway] create customer failed", "tenant_id", tenantID, "error", err)
		return "", errors.Wrap(err, "stripe create customer")
	}
	g.log.Infow("[billing][gateway] customer created", "tenant_id", tenantID, "customer_id", c.ID)
	return c.ID, nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req interfaces.CheckoutSessionRequest) (interfaces.CheckoutSession, error) {
	if g.mockMode {
		return interfaces.CheckoutSession{ID: "cs_mock_" + uuid.NewString(), URL: req.SuccessURL}, nil
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer:          stripe.String(req.CustomerID),
		ClientReferenceID: stripe.String(req.TenantID),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(req.PriceID), Quantity: stripe.Int64(1)},
		},
		Metadata: map[string]string{"tenant_id": req.TenantID, "interval": req.Interval},
	}
	params.Context = ctx
	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		g.log.Errorw("[billing][gateway] create checkout session failed", "tenant_id", req.TenantID, "error", err)
		return interfaces.CheckoutSession{}, errors.Wrap(err, "stripe create checkout session")
	}
	return interfaces.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	if g.mockMode {
		return returnURL, nil
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx
	s, err := g.api.BillingPortalSessions.New(params)
	if err != nil {
		g.log.Errorw("[billing][gateway] create portal session failed", "customer_id", customerID, "error", err)
		return "", errors.Wrap(err, "stripe create portal session")
	}
	return s.URL, nil
}

// ParseEvent verifies the Stripe-Signature header and maps the event to its
// provider-neutral form.
func (g *StripeGateway) ParseEvent(payload []byte, signatureHeader string) (entities.BillingEvent, error) {
	var event stripe.Event
	if g.settings.SkipVerify {
		if err := json.Unmarshal(payload, &event); err != nil {
			return entities.BillingEvent{}, errors.Wrap(err, "decode stripe event")
		}
	} else {
		if g.settings.WebhookSecret == "" || signatureHeader == "" {
			return entities.BillingEvent{}, interfaces.ErrInvalidWebhookSignature
		}
		var err error
		event, err = webhook.ConstructEventWithOptions(payload, signatureHeader, g.settings.WebhookSecret,
			webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
		if err != nil {
			return entities.BillingEvent{}, errors.Mark(errors.Wrap(err, "verify stripe signature"), interfaces.ErrInvalidWebhookSignature)
		}
	}
	return toBillingEvent(event)
}

func toBillingEvent(event stripe.Event) (entities.BillingEvent, error) {
	out := entities.BillingEvent{ID: event.ID, ProviderType: string(event.Type), Kind: entities.BillingEventUnknown}
	if event.Data == nil {
		return out, nil
	}
	raw := event.Data.Raw

	switch event.Type {
	case "checkout.session.completed":
		var s stripe.CheckoutSession
		if err := json.Unmarshal(raw, &s); err != nil {
			return out, errors.Wrap(err, "decode checkout session")
		}
		out.Kind = entities.BillingEventCheckoutCompleted
		out.CustomerID = customerID(s.Customer)
		if s.Subscription != nil {
			out.SubscriptionID = s.Subscription.ID
		}
		out.AmountTotal = s.AmountTotal
		out.Currency = string(s.Currency)
	case "customer.subscription.updated", "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(raw, &sub); err != nil {
			return out, errors.Wrap(err, "decode subscription")
		}
		out.Kind = entities.BillingEventSubscriptionUpdated
		if event.Type == "customer.subscription.deleted" {
			out.Kind = entities.BillingEventSubscriptionDeleted
		}
		out.CustomerID = customerID(sub.Customer)
		out.SubscriptionID = sub.ID
		out.Status = string(sub.Status)
	case "invoice.payment_failed":
		var inv stripe.Invoice
		if err := json.Unmarshal(raw, &inv); err != nil {
			return out, errors.Wrap(err, "decode invoice")
		}
		out.Kind = entities.BillingEventInvoicePaymentFailed
		out.CustomerID = customerID(inv.Customer)
	}
	return out, nil
}

func customerID(c *stripe.Customer) string {
	if c == nil {
		return ""
	}
	return c.ID
}
