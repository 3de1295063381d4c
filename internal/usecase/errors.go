package usecase

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrInvalidQuoteStatus     = errors.New("invalid quote status")
	ErrNegativePrice          = errors.New("price fields must be non-negative")
	ErrInvalidScheduleDate    = errors.New("invalid scheduled date")
	ErrInvalidScheduleTime    = errors.New("invalid scheduled time")
	ErrScheduleDateRequired   = errors.New("scheduled date is required")
	ErrScheduleRangeRequired  = errors.New("start and end dates are required")
	ErrClientEmailRequired    = errors.New("client email is required to send quote")
	ErrQuoteEmailFailed       = errors.New("failed to send quote email")
	ErrUpgradeRequired        = errors.New("free quote limit reached")
	ErrEntitlementUnavailable = errors.New("entitlement check unavailable")

	ErrShareLinkNotFound      = errors.New("quote not found or link invalid")
	ErrShareLinkExpired       = errors.New("quote link has expired")
	ErrQuoteAlreadyApproved   = errors.New("quote has already been approved")
	ErrQuoteConcurrentUpdate  = errors.New("quote changed while the request was processed")
	ErrChangeMessageRequired  = errors.New("change request message is required")
	ErrInvalidShareExpiration = errors.New("expiresInDays must not be negative")

	ErrChecklistNotFound         = errors.New("no checklist attached to this quote")
	ErrChecklistTemplateNotFound = errors.New("checklist template not found")
	ErrChecklistNameRequired     = errors.New("checklist name is required")

	ErrInvalidID              = errors.New("invalid id")
	ErrClientNotFound         = errors.New("client not found")
	ErrClientNameRequired     = errors.New("client name is required")
	ErrTeamMemberNotFound     = errors.New("team member not found")
	ErrTeamMemberNameRequired = errors.New("team member name is required")

	ErrAdminRequired             = errors.New("admin role required")
	ErrTenantNotFound            = errors.New("tenant not found")
	ErrInvalidSubscriptionStatus = errors.New("invalid subscription status")
	ErrNoBillingCustomer         = errors.New("no subscription found")
	ErrPriceNotConfigured        = errors.New("price not configured")
	ErrInvalidBillingInterval    = errors.New("interval must be month or year")
	ErrBillingProvider           = errors.New("billing provider request failed")

	ErrCredentialsRequired    = errors.New("email and password required")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidToken           = errors.New("invalid token")
)

// QuotaExceededError is returned when a non-subscribed tenant hits the free
// quote limit. It matches ErrUpgradeRequired.
type QuotaExceededError struct {
	QuoteCount int
	Limit      int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("free quote limit reached: %d of %d used", e.QuoteCount, e.Limit)
}

func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrUpgradeRequired
}
