package usecase

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/domain/entitlement"
	"cleanlyquote/internal/usecase/interfaces"
	"context"

	"github.com/cockroachdb/errors"
)

// QuotaStatus is a point-in-time entitlement snapshot for a tenant.
type QuotaStatus struct {
	SubscriptionStatus string
	QuoteCount         int
	entitlement.Decision
}

func (s QuotaStatus) IsActive() bool {
	return s.SubscriptionStatus == entities.SubscriptionStatusActive
}

// IEntitlementUseCase answers "may this tenant create another quote?".
//
// Both operations fail closed: when the quote count cannot be read the caller
// gets ErrEntitlementUnavailable and no decision.
type IEntitlementUseCase interface {
	CanCreateQuote(ctx context.Context, tenant entities.Tenant) (QuotaStatus, error)
	Status(ctx context.Context, tenant entities.Tenant) (QuotaStatus, error)
}

type EntitlementUseCase struct {
	quotes interfaces.IQuoteRepository
}

var _ IEntitlementUseCase = (*EntitlementUseCase)(nil)

func NewEntitlementUseCase(quotes interfaces.IQuoteRepository) *EntitlementUseCase {
	return &EntitlementUseCase{quotes: quotes}
}

// CanCreateQuote skips the count for subscribed tenants.
func (u *EntitlementUseCase) CanCreateQuote(ctx context.Context, tenant entities.Tenant) (QuotaStatus, error) {
	if tenant.IsSubscribed() {
		return QuotaStatus{
			SubscriptionStatus: tenant.SubscriptionStatus,
			Decision:           entitlement.QuoteCreation(tenant.SubscriptionStatus, 0),
		}, nil
	}
	return u.Status(ctx, tenant)
}

func (u *EntitlementUseCase) Status(ctx context.Context, tenant entities.Tenant) (QuotaStatus, error) {
	count, err := u.quotes.CountByTenant(ctx, tenant.ID)
	if err != nil {
		return QuotaStatus{}, errors.Mark(errors.Wrapf(err, "count quotes tenant_id=%s", tenant.ID), ErrEntitlementUnavailable)
	}
	return QuotaStatus{
		SubscriptionStatus: tenant.SubscriptionStatus,
		QuoteCount:         count,
		Decision:           entitlement.QuoteCreation(tenant.SubscriptionStatus, count),
	}, nil
}
