package usecase

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const (
	BillingIntervalMonth = "month"
	BillingIntervalYear  = "year"
)

type BillingSettings struct {
	MonthlyPriceID string
	AnnualPriceID  string
	FrontendURL    string
}

// ISubscriptionUseCase is the tenant self-service side of billing.
type ISubscriptionUseCase interface {
	Status(ctx context.Context, tenant entities.Tenant) (QuotaStatus, error)
	CreateCheckout(ctx context.Context, tenant entities.Tenant, interval string) (interfaces.CheckoutSession, error)
	BillingPortal(ctx context.Context, tenant entities.Tenant) (string, error)
}

type SubscriptionUseCase struct {
	tenants      interfaces.ITenantRepository
	entitlements IEntitlementUseCase
	provider     interfaces.IBillingProvider
	settings     BillingSettings
	log          *zap.SugaredLogger
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(tenants interfaces.ITenantRepository, entitlements IEntitlementUseCase, provider interfaces.IBillingProvider, settings BillingSettings, log *zap.SugaredLogger) *SubscriptionUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &SubscriptionUseCase{tenants: tenants, entitlements: entitlements, provider: provider, settings: settings, log: log}
}

func (u *SubscriptionUseCase) Status(ctx context.Context, tenant entities.Tenant) (QuotaStatus, error) {
	return u.entitlements.Status(ctx, tenant)
}

// CreateCheckout opens a subscription checkout, creating the billing customer
// on first use. The annual interval falls back to the monthly price when no
// annual price is configured.
func (u *SubscriptionUseCase) CreateCheckout(ctx context.Context, tenant entities.Tenant, interval string) (interfaces.CheckoutSession, error) {
	interval = strings.ToLower(strings.TrimSpace(interval))
	if interval == "" {
		interval = BillingIntervalMonth
	}
	if interval != BillingIntervalMonth && interval != BillingIntervalYear {
		return interfaces.CheckoutSession{}, ErrInvalidBillingInterval
	}

	priceID := u.settings.MonthlyPriceID
	if interval == BillingIntervalYear && u.settings.AnnualPriceID != "" {
		priceID = u.settings.AnnualPriceID
	}
	if priceID == "" {
		return interfaces.CheckoutSession{}, ErrPriceNotConfigured
	}

	customerID, err := u.ensureCustomer(ctx, tenant)
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}

	session, err := u.provider.CreateCheckoutSession(ctx, interfaces.CheckoutSessionRequest{
		CustomerID: customerID,
		PriceID:    priceID,
		TenantID:   tenant.ID,
		Interval:   interval,
		SuccessURL: u.settings.FrontendURL + "/app?subscription=success",
		CancelURL:  u.settings.FrontendURL + "/app?subscription=cancelled",
	})
	if err != nil {
		u.log.Errorw("[billing][usecase] checkout session failed", "tenant_id", tenant.ID, "error", err)
		return interfaces.CheckoutSession{}, errors.Mark(errors.Wrap(err, "create checkout session"), ErrBillingProvider)
	}
	u.log.Infow("[billing][usecase] checkout session created", "tenant_id", tenant.ID, "session_id", session.ID, "interval", interval)
	return session, nil
}

func (u *SubscriptionUseCase) BillingPortal(ctx context.Context, tenant entities.Tenant) (string, error) {
	if tenant.StripeCustomerID == nil || *tenant.StripeCustomerID == "" {
		return "", ErrNoBillingCustomer
	}
	url, err := u.provider.CreatePortalSession(ctx, *tenant.StripeCustomerID, u.settings.FrontendURL+"/app")
	if err != nil {
		u.log.Errorw("[billing][usecase] portal session failed", "tenant_id", tenant.ID, "error", err)
		return "", errors.Mark(errors.Wrap(err, "create portal session"), ErrBillingProvider)
	}
	return url, nil
}

func (u *SubscriptionUseCase) ensureCustomer(ctx context.Context, tenant entities.Tenant) (string, error) {
	if tenant.StripeCustomerID != nil && *tenant.StripeCustomerID != "" {
		return *tenant.StripeCustomerID, nil
	}
	customerID, err := u.provider.CreateCustomer(ctx, tenant.Email, tenant.ID)
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "create customer"), ErrBillingProvider)
	}
	if err := u.tenants.SetStripeCustomerID(ctx, tenant.ID, customerID); err != nil {
		return "", errors.Wrapf(err, "save customer id tenant_id=%s", tenant.ID)
	}
	u.log.Infow("[billing][usecase] billing customer created", "tenant_id", tenant.ID, "customer_id", customerID)
	return customerID, nil
}
