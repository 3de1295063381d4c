package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	e := NewDomainErrorSimple("UPGRADE_REQUIRED", "Free quote limit reached", http.StatusForbidden).
		WithDetails(map[string]any{"limit": 3})

	body := e.ToHTTPError()
	if body.Code != "UPGRADE_REQUIRED" || body.Error != "Free quote limit reached" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Details["limit"] != 3 {
		t.Fatalf("expected details to be carried, got %+v", body.Details)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("db")
	e := NewDomainError(KindInternal, "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.ToHTTPError().Error != "An internal error occurred" {
		t.Fatalf("cause must not leak into the body")
	}
}
