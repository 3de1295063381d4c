package interfaces

import (
	"cleanlyquote/internal/domain/entities"
	"context"
	"errors"
)

var ErrEmailAlreadyRegistered = errors.New("email already registered")

// ITenantRepository abstracts persistence for Tenant.
//
// Not-found lookups return a zero Tenant and a nil error.
type ITenantRepository interface {
	Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
	GetByEmail(ctx context.Context, email string) (entities.Tenant, error)
	GetByStripeCustomerID(ctx context.Context, customerID string) (entities.Tenant, error)
	SetStripeCustomerID(ctx context.Context, id, customerID string) error
	// ApplySubscriptionByCustomerID is an idempotent upsert keyed by the billing
	// customer id. matched=false means no tenant owns that customer.
	ApplySubscriptionByCustomerID(ctx context.Context, customerID string, change entities.SubscriptionChange) (matched bool, err error)
	SetSubscriptionStatus(ctx context.Context, id, status string) (entities.Tenant, error)
}
