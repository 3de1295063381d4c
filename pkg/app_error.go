package pkg

import "fmt"

// Error kinds shared by every resource. Handlers pick one per failure so the
// HTTP status of a given use-case error is deterministic.
const (
	KindInvalidInput = "INVALID_INPUT"
	KindUnauthorized = "UNAUTHORIZED"
	KindForbidden    = "FORBIDDEN"
	KindNotFound     = "NOT_FOUND"
	KindGone         = "GONE"
	KindConflict     = "CONFLICT"
	KindInternal     = "INTERNAL_ERROR"

	// KindUpgradeRequired marks a request refused by the tenant's plan.
	KindUpgradeRequired = "UPGRADE_REQUIRED"
)

// AppError is the error shape returned by HTTP handlers.
//
// Code is machine readable (e.g. UPGRADE_REQUIRED) and is what clients branch on.
// Err is never serialized; it only travels to logs.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string         `json:"code"`
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// WithDetails returns a copy carrying extra machine-readable fields.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Error: e.Message, Details: e.Details}
}
