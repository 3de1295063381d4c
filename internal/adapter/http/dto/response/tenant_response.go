package response

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/domain/entitlement"
	"cleanlyquote/internal/usecase"
	"time"
)

// TenantResponse never carries the password hash or billing provider ids.
type TenantResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	BusinessName       string    `json:"businessName"`
	CompanyDisplayName string    `json:"companyDisplayName"`
	BrandColor         string    `json:"brandColor"`
	Phone              string    `json:"phone"`
	Role               string    `json:"role"`
	SubscriptionStatus string    `json:"subscriptionStatus"`
	CreatedAt          time.Time `json:"createdAt"`
}

func FromTenant(t entities.Tenant) TenantResponse {
	return TenantResponse{
		ID:                 t.ID,
		Email:              t.Email,
		Name:               t.Name,
		BusinessName:       t.BusinessName,
		CompanyDisplayName: t.CompanyDisplayName,
		BrandColor:         t.BrandColor,
		Phone:              t.Phone,
		Role:               string(t.Role),
		SubscriptionStatus: t.SubscriptionStatus,
		CreatedAt:          t.CreatedAt,
	}
}

type AuthResponse struct {
	Token string         `json:"token"`
	User  TenantResponse `json:"user"`
}

func FromAuthResult(r usecase.AuthResult) AuthResponse {
	return AuthResponse{Token: r.Token, User: FromTenant(r.Tenant)}
}

type MeResponse struct {
	User            TenantResponse        `json:"user"`
	QuoteCount      int                   `json:"quoteCount"`
	QuotesRemaining entitlement.Remaining `json:"quotesRemaining"`
}

func FromProfile(p usecase.TenantProfile) MeResponse {
	return MeResponse{
		User:            FromTenant(p.Tenant),
		QuoteCount:      p.Quota.QuoteCount,
		QuotesRemaining: p.Quota.Remaining,
	}
}

type SubscriptionStatusResponse struct {
	Status          string                `json:"status"`
	IsActive        bool                  `json:"isActive"`
	QuoteCount      int                   `json:"quoteCount"`
	QuotesRemaining entitlement.Remaining `json:"quotesRemaining"`
	CanCreateQuote  bool                  `json:"canCreateQuote"`
}

func FromQuotaStatus(s usecase.QuotaStatus) SubscriptionStatusResponse {
	status := s.SubscriptionStatus
	if status == "" {
		status = entities.SubscriptionStatusFree
	}
	return SubscriptionStatusResponse{
		Status:          status,
		IsActive:        s.IsActive(),
		QuoteCount:      s.QuoteCount,
		QuotesRemaining: s.Remaining,
		CanCreateQuote:  s.Allowed,
	}
}

type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

type PortalResponse struct {
	URL string `json:"url"`
}

type WebhookAck struct {
	Received bool `json:"received"`
}
