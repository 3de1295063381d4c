package entities

// BillingEventKind is the provider-neutral kind of a billing webhook event.
type BillingEventKind string

const (
	BillingEventCheckoutCompleted    BillingEventKind = "checkout_completed"
	BillingEventSubscriptionUpdated  BillingEventKind = "subscription_updated"
	BillingEventSubscriptionDeleted  BillingEventKind = "subscription_deleted"
	BillingEventInvoicePaymentFailed BillingEventKind = "invoice_payment_failed"
	BillingEventUnknown              BillingEventKind = "unknown"
)

// BillingEvent is a verified billing provider event, reduced to the fields
// subscription sync needs.
//
// ProviderType keeps the provider's own event name (e.g. "invoice.paid") so
// ignored events can still be logged meaningfully.
type BillingEvent struct {
	ID             string
	Kind           BillingEventKind
	ProviderType   string
	CustomerID     string
	SubscriptionID string
	// Status is the provider's literal subscription status (subscription_updated only).
	Status string
	// AmountTotal is in minor units (checkout_completed only); 0 when unknown.
	AmountTotal int64
	Currency    string
}
