package usecase

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	confirmationPlanName = "Professional"
	// Fallback amount when the checkout event carries no total.
	confirmationDefaultMinorUnits = 2900
	confirmationDefaultCurrency   = "usd"
)

// ISubscriptionSyncUseCase applies verified billing events to tenant
// subscription state.
type ISubscriptionSyncUseCase interface {
	Apply(ctx context.Context, event entities.BillingEvent) error
}

type SubscriptionSyncUseCase struct {
	tenants  interfaces.ITenantRepository
	mailer   interfaces.IMailer
	notifier interfaces.INotifier
	// ledger is optional; without it side effects run once per delivery.
	ledger interfaces.IEventLedger
	log    *zap.SugaredLogger
}

var _ ISubscriptionSyncUseCase = (*SubscriptionSyncUseCase)(nil)

func NewSubscriptionSyncUseCase(tenants interfaces.ITenantRepository, mailer interfaces.IMailer, notifier interfaces.INotifier, ledger interfaces.IEventLedger, log *zap.SugaredLogger) *SubscriptionSyncUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &SubscriptionSyncUseCase{tenants: tenants, mailer: mailer, notifier: notifier, ledger: ledger, log: log}
}

// Apply is idempotent: every state write is an upsert keyed by the billing
// customer id, so redeliveries converge to the same tenant state. Unknown
// event kinds and unknown customers are logged and ignored.
func (u *SubscriptionSyncUseCase) Apply(ctx context.Context, event entities.BillingEvent) error {
	log := u.log.With("event_id", event.ID, "event_type", event.ProviderType, "customer_id", event.CustomerID)

	var change entities.SubscriptionChange
	switch event.Kind {
	case entities.BillingEventCheckoutCompleted:
		subID := event.SubscriptionID
		change = entities.SubscriptionChange{Status: entities.SubscriptionStatusActive, SubscriptionID: &subID}
	case entities.BillingEventSubscriptionUpdated:
		if event.Status == "" {
			log.Warnw("[billing][sync] subscription update without status ignored")
			return nil
		}
		change = entities.SubscriptionChange{Status: event.Status}
	case entities.BillingEventSubscriptionDeleted:
		change = entities.SubscriptionChange{Status: entities.SubscriptionStatusCanceled, ClearSubscriptionID: true}
	case entities.BillingEventInvoicePaymentFailed:
		change = entities.SubscriptionChange{Status: entities.SubscriptionStatusPastDue}
	default:
		log.Infow("[billing][sync] unhandled event ignored")
		return nil
	}

	if event.CustomerID == "" {
		log.Warnw("[billing][sync] event without customer ignored")
		return nil
	}

	matched, err := u.tenants.ApplySubscriptionByCustomerID(ctx, event.CustomerID, change)
	if err != nil {
		return errors.Wrapf(err, "apply %s for customer %s", event.Kind, event.CustomerID)
	}
	if !matched {
		log.Warnw("[billing][sync] no tenant for customer")
		return nil
	}
	log.Infow("[billing][sync] subscription state applied", "status", change.Status)

	first := u.markProcessed(ctx, log, event.ID)
	if event.Kind == entities.BillingEventCheckoutCompleted && first {
		u.dispatchConfirmation(event)
	}
	return nil
}

// markProcessed records the event id after its state change is durable. When
// the ledger is unavailable the delivery is treated as the first one.
func (u *SubscriptionSyncUseCase) markProcessed(ctx context.Context, log *zap.SugaredLogger, eventID string) bool {
	if u.ledger == nil || eventID == "" {
		return true
	}
	first, err := u.ledger.MarkProcessed(ctx, eventID)
	if err != nil {
		log.Warnw("[billing][sync] event ledger unavailable", "error", err)
		return true
	}
	if !first {
		log.Infow("[billing][sync] redelivered event, side effects skipped")
	}
	return first
}

func (u *SubscriptionSyncUseCase) dispatchConfirmation(event entities.BillingEvent) {
	minor := event.AmountTotal
	if minor <= 0 {
		minor = confirmationDefaultMinorUnits
	}
	currency := event.Currency
	if currency == "" {
		currency = confirmationDefaultCurrency
	}
	payment := interfaces.PaymentConfirmation{
		Amount:   decimal.New(minor, -2),
		Currency: currency,
		PlanName: confirmationPlanName,
	}
	customerID := event.CustomerID

	u.notifier.Dispatch("payment-confirmation", func(ctx context.Context) error {
		t, err := u.tenants.GetByStripeCustomerID(ctx, customerID)
		if err != nil {
			return errors.Wrap(err, "load tenant for confirmation")
		}
		if t.ID == "" {
			return nil
		}
		_, err = u.mailer.SendPaymentConfirmation(ctx, t, payment)
		return err
	})
}
