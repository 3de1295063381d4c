package entities

import "time"

// Subscription statuses this service writes itself. Provider-defined values
// (e.g. "trialing", "unpaid") are stored verbatim from billing events.
const (
	SubscriptionStatusFree     = "free"
	SubscriptionStatusActive   = "active"
	SubscriptionStatusPastDue  = "past_due"
	SubscriptionStatusCanceled = "canceled"
)

type TenantRole string

const (
	TenantRoleOwner TenantRole = "owner"
	TenantRoleAdmin TenantRole = "admin"
)

// Tenant is a registered business account, the unit of ownership.
//
// SubscriptionStatus is the single source of truth for entitlement. It is only
// written by billing event sync or by an explicit admin override.
type Tenant struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	PasswordHash       string     `json:"-"`
	Name               string     `json:"name"`
	BusinessName       string     `json:"business_name"`
	CompanyDisplayName string     `json:"company_display_name"`
	BrandColor         string     `json:"brand_color"`
	Phone              string     `json:"phone"`
	Role               TenantRole `json:"role"`
	SubscriptionStatus string     `json:"subscription_status"`
	SubscriptionID     *string    `json:"subscription_id,omitempty"`
	StripeCustomerID   *string    `json:"stripe_customer_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (t Tenant) IsSubscribed() bool {
	return t.SubscriptionStatus == SubscriptionStatusActive
}

func (t Tenant) IsAdmin() bool {
	return t.Role == TenantRoleAdmin
}

// DisplayName is the business name shown to clients.
func (t Tenant) DisplayName() string {
	switch {
	case t.CompanyDisplayName != "":
		return t.CompanyDisplayName
	case t.BusinessName != "":
		return t.BusinessName
	default:
		return t.Name
	}
}

// SubscriptionChange is the write applied to a tenant by a billing event.
// SubscriptionID is only written when set; ClearSubscriptionID nulls it.
type SubscriptionChange struct {
	Status              string
	SubscriptionID      *string
	ClearSubscriptionID bool
}
