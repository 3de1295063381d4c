package handlers

import (
	"net/http"
	"testing"

	"cleanlyquote/internal/adapter/http/handlers/mocks"
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/domain/entitlement"
	"cleanlyquote/internal/usecase"
	"cleanlyquote/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

func TestSubscriptionHandler_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISubscriptionUseCase(ctrl)
	h := NewSubscriptionHandler(uc)

	r := authedRouter(freeTenant)
	r.GET("/v1/subscription/status", h.GetStatus)

	uc.EXPECT().Status(gomock.Any(), freeTenant).Return(usecase.QuotaStatus{
		SubscriptionStatus: entities.SubscriptionStatusFree,
		QuoteCount:         3,
		Decision:           entitlement.QuoteCreation(entities.SubscriptionStatusFree, 3),
	}, nil)

	w := do(r, http.MethodGet, "/v1/subscription/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["canCreateQuote"] != false || body["quotesRemaining"] != float64(0) || body["isActive"] != false {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestSubscriptionHandler_CreateCheckout(t *testing.T) {
	t.Run("bad interval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		h := NewSubscriptionHandler(uc)

		r := authedRouter(freeTenant)
		r.POST("/v1/subscription/checkout", h.CreateCheckout)

		if w := do(r, http.MethodPost, "/v1/subscription/checkout", `{"interval":"week"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("defaults to monthly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISubscriptionUseCase(ctrl)
		h := NewSubscriptionHandler(uc)

		r := authedRouter(freeTenant)
		r.POST("/v1/subscription/checkout", h.CreateCheckout)

		uc.EXPECT().CreateCheckout(gomock.Any(), freeTenant, gomock.Any()).
			Return(interfaces.CheckoutSession{ID: "cs_1", URL: "https://checkout.test/cs_1"}, nil)

		w := do(r, http.MethodPost, "/v1/subscription/checkout", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if decode(t, w)["sessionId"] != "cs_1" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestSubscriptionHandler_BillingPortal(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISubscriptionUseCase(ctrl)
	h := NewSubscriptionHandler(uc)

	r := authedRouter(freeTenant)
	r.POST("/v1/subscription/portal", h.BillingPortal)

	uc.EXPECT().BillingPortal(gomock.Any(), freeTenant).Return("", usecase.ErrNoBillingCustomer)
	if w := do(r, http.MethodPost, "/v1/subscription/portal", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
