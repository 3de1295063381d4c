package handlers

import (
	"cleanlyquote/internal/domain/entitlement"
	"cleanlyquote/internal/usecase"
	"cleanlyquote/pkg"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple(pkg.KindInvalidInput, "Invalid request payload", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple(pkg.KindUnauthorized, "Authentication required", http.StatusUnauthorized)
	errInternal       = pkg.NewDomainErrorSimple(pkg.KindInternal, "An internal error occurred", http.StatusInternalServerError)

	// Public share-link failures share these exact bodies so a caller cannot
	// learn anything beyond "no such link" or "expired".
	errLinkNotFound = pkg.NewDomainErrorSimple(pkg.KindNotFound, "Quote not found or link invalid", http.StatusNotFound)
	errLinkExpired  = pkg.NewDomainErrorSimple(pkg.KindGone, "This quote link has expired", http.StatusGone)
)

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalid(message string) *pkg.AppError {
	return pkg.NewDomainErrorSimple(pkg.KindInvalidInput, message, http.StatusBadRequest)
}

func notFound(message string) *pkg.AppError {
	return pkg.NewDomainErrorSimple(pkg.KindNotFound, message, http.StatusNotFound)
}

func internal(err error) *pkg.AppError {
	return pkg.NewDomainError(pkg.KindInternal, errInternal.Message, err, http.StatusInternalServerError)
}

func mapQuoteError(err error) *pkg.AppError {
	var quota *usecase.QuotaExceededError
	switch {
	case errors.As(err, &quota):
		return pkg.NewDomainErrorSimple(pkg.KindUpgradeRequired,
			"You've used all your free quotes. Upgrade to Professional for unlimited quotes.",
			http.StatusForbidden).WithDetails(map[string]any{
			"quoteCount":      quota.QuoteCount,
			"limit":           quota.Limit,
			"quotesRemaining": entitlement.Limited(quota.Limit - quota.QuoteCount),
		})
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return invalid("Invalid quote id")
	case errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return invalid("Invalid status. Must be one of: draft, sent, scheduled, approved, changes_requested, completed, cancelled")
	case errors.Is(err, usecase.ErrNegativePrice):
		return invalid("Price fields must be non-negative")
	case errors.Is(err, usecase.ErrInvalidScheduleDate):
		return invalid("Dates must use the YYYY-MM-DD format")
	case errors.Is(err, usecase.ErrInvalidScheduleTime):
		return invalid("Times must use the HH:MM or HH:MM:SS format")
	case errors.Is(err, usecase.ErrScheduleDateRequired):
		return invalid("scheduledDate is required")
	case errors.Is(err, usecase.ErrScheduleRangeRequired):
		return invalid("start and end dates are required (YYYY-MM-DD format)")
	case errors.Is(err, usecase.ErrClientEmailRequired):
		return invalid("Client email is required to send quote")
	case errors.Is(err, usecase.ErrInvalidShareExpiration):
		return invalid("expiresInDays must not be negative")
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return notFound("Quote not found")
	case errors.Is(err, usecase.ErrChecklistNotFound):
		return notFound("No checklist attached to this quote")
	case errors.Is(err, usecase.ErrChecklistTemplateNotFound):
		return notFound("Checklist template not found")
	case errors.Is(err, usecase.ErrQuoteEmailFailed):
		return pkg.NewDomainError(pkg.KindInternal, "Failed to send quote email", err, http.StatusInternalServerError)
	default:
		return internal(err)
	}
}

// mapResourceError covers the client, team and checklist template resources.
func mapResourceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return invalid("Invalid id")
	case errors.Is(err, usecase.ErrClientNameRequired):
		return invalid("Client name is required")
	case errors.Is(err, usecase.ErrTeamMemberNameRequired):
		return invalid("Name is required")
	case errors.Is(err, usecase.ErrChecklistNameRequired):
		return invalid("Checklist name is required")
	case errors.Is(err, usecase.ErrClientNotFound):
		return notFound("Client not found")
	case errors.Is(err, usecase.ErrTeamMemberNotFound):
		return notFound("Team member not found")
	case errors.Is(err, usecase.ErrChecklistTemplateNotFound):
		return notFound("Checklist not found")
	default:
		return internal(err)
	}
}

// mapPublicError never forwards store details to unauthenticated callers.
func mapPublicError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrShareLinkNotFound):
		return errLinkNotFound
	case errors.Is(err, usecase.ErrShareLinkExpired):
		return errLinkExpired
	case errors.Is(err, usecase.ErrQuoteAlreadyApproved):
		return pkg.NewDomainErrorSimple(pkg.KindConflict, "This quote has already been approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteConcurrentUpdate):
		return pkg.NewDomainErrorSimple(pkg.KindConflict, "This quote was just updated, reload and try again", http.StatusConflict)
	case errors.Is(err, usecase.ErrChangeMessageRequired):
		return invalid("Please provide details about the requested changes")
	default:
		return internal(err)
	}
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCredentialsRequired):
		return invalid("Email and password required")
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return invalid("Email already registered")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple(pkg.KindUnauthorized, "Invalid email or password", http.StatusUnauthorized)
	default:
		return internal(err)
	}
}

func mapSubscriptionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillingInterval):
		return invalid("interval must be month or year")
	case errors.Is(err, usecase.ErrNoBillingCustomer):
		return invalid("No subscription found")
	case errors.Is(err, usecase.ErrPriceNotConfigured):
		return pkg.NewDomainError(pkg.KindInternal, "Price not configured", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrBillingProvider):
		return pkg.NewDomainError(pkg.KindInternal, "Billing provider request failed", err, http.StatusInternalServerError)
	default:
		return internal(err)
	}
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAdminRequired):
		return pkg.NewDomainErrorSimple(pkg.KindForbidden, "Admin access required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return notFound("Tenant not found")
	case errors.Is(err, usecase.ErrInvalidSubscriptionStatus):
		return invalid("status must be one of: free, active, past_due, canceled")
	default:
		return internal(err)
	}
}
