package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"cleanlyquote/internal/adapter/http/handlers/mocks"
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestShareLinkHandler_RegenerateShareLink(t *testing.T) {
	t.Run("empty body uses default expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIShareLinkUseCase(ctrl)
		h := NewShareLinkHandler(uc, nil)

		r := authedRouter(freeTenant)
		r.POST("/v1/quotes/:id/share/regenerate", h.RegenerateShareLink)

		uc.EXPECT().RegenerateLink(gomock.Any(), "t-1", "q-1", gomock.Nil()).
			Return(entities.ShareLink{Token: "new-token", URL: "https://app.test/quote/new-token"}, nil)

		w := do(r, http.MethodPost, "/v1/quotes/q-1/share/regenerate", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if decode(t, w)["shareUrl"] != "https://app.test/quote/new-token" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("explicit expiry is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIShareLinkUseCase(ctrl)
		h := NewShareLinkHandler(uc, nil)

		r := authedRouter(freeTenant)
		r.POST("/v1/quotes/:id/share/regenerate", h.RegenerateShareLink)

		uc.EXPECT().RegenerateLink(gomock.Any(), "t-1", "q-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, days *int) (entities.ShareLink, error) {
				if days == nil || *days != 7 {
					t.Fatalf("expected 7 days, got %v", days)
				}
				exp := time.Now().Add(7 * 24 * time.Hour)
				return entities.ShareLink{Token: "tok", ExpiresAt: &exp}, nil
			})

		if w := do(r, http.MethodPost, "/v1/quotes/q-1/share/regenerate", `{"expiresInDays":7}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("negative expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIShareLinkUseCase(ctrl)
		h := NewShareLinkHandler(uc, nil)

		r := authedRouter(freeTenant)
		r.POST("/v1/quotes/:id/share/regenerate", h.RegenerateShareLink)

		uc.EXPECT().RegenerateLink(gomock.Any(), "t-1", "q-1", gomock.Any()).
			Return(entities.ShareLink{}, usecase.ErrInvalidShareExpiration)

		if w := do(r, http.MethodPost, "/v1/quotes/q-1/share/regenerate", `{"expiresInDays":-1}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestShareLinkHandler_ViewPublicQuote(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown token", usecase.ErrShareLinkNotFound, http.StatusNotFound},
		{"expired", usecase.ErrShareLinkExpired, http.StatusGone},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIShareLinkUseCase(ctrl)
			h := NewShareLinkHandler(uc, nil)

			r := publicRouter()
			r.GET("/v1/public/quotes/:token", h.ViewPublicQuote)

			uc.EXPECT().ResolvePublic(gomock.Any(), "tok").Return(usecase.PublicQuote{}, tc.err)

			w := do(r, http.MethodGet, "/v1/public/quotes/tok", "")
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			if strings.Contains(w.Body.String(), "connection reset") {
				t.Fatalf("store detail leaked: %s", w.Body.String())
			}
		})
	}

	t.Run("projection hides owner fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIShareLinkUseCase(ctrl)
		h := NewShareLinkHandler(uc, nil)

		r := publicRouter()
		r.GET("/v1/public/quotes/:token", h.ViewPublicQuote)

		uc.EXPECT().ResolvePublic(gomock.Any(), "tok").Return(usecase.PublicQuote{
			Quote: entities.Quote{
				ID: "q-1", TenantID: "t-1", ClientName: "Ann", ShareToken: "tok",
				Status: entities.QuoteStatusSent,
				Prices: entities.PriceBreakdown{TotalPrice: decimal.RequireFromString("120.50")},
			},
			Business: usecase.BusinessCard{Name: "Sparkle Co", Email: "owner@sparkle.test", BrandColor: "#0ea5e9"},
		}, nil)

		w := do(r, http.MethodGet, "/v1/public/quotes/tok", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		for _, hidden := range []string{"userId", "shareToken", "t-1"} {
			if strings.Contains(body, hidden) {
				t.Fatalf("public view exposes %q: %s", hidden, body)
			}
		}
		if !strings.Contains(body, `"totalPrice":120.50`) || !strings.Contains(body, `"name":"Sparkle Co"`) {
			t.Fatalf("unexpected public body %s", body)
		}
	})
}

func TestShareLinkHandler_ApproveQuote(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"approved", nil, http.StatusOK},
		{"already approved", usecase.ErrQuoteAlreadyApproved, http.StatusConflict},
		{"lost race", usecase.ErrQuoteConcurrentUpdate, http.StatusConflict},
		{"expired", usecase.ErrShareLinkExpired, http.StatusGone},
		{"rotated token", usecase.ErrShareLinkNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIShareLinkUseCase(ctrl)
			h := NewShareLinkHandler(uc, nil)

			r := publicRouter()
			r.POST("/v1/public/quotes/:token/approve", h.ApproveQuote)

			now := time.Now().UTC()
			q := entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved, ClientApproved: true, ClientApprovedAt: &now}
			if tc.err != nil {
				q = entities.Quote{}
			}
			uc.EXPECT().Approve(gomock.Any(), "tok").Return(q, tc.err)

			w := do(r, http.MethodPost, "/v1/public/quotes/tok/approve", "")
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			if tc.err == nil && decode(t, w)["clientApproved"] != true {
				t.Fatalf("expected clientApproved in %s", w.Body.String())
			}
		})
	}
}

func TestShareLinkHandler_RequestChanges(t *testing.T) {
	t.Run("missing body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIShareLinkUseCase(ctrl)
		h := NewShareLinkHandler(uc, nil)

		r := publicRouter()
		r.POST("/v1/public/quotes/:token/request-changes", h.RequestChanges)

		if w := do(r, http.MethodPost, "/v1/public/quotes/tok/request-changes", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIShareLinkUseCase(ctrl)
		h := NewShareLinkHandler(uc, nil)

		r := publicRouter()
		r.POST("/v1/public/quotes/:token/request-changes", h.RequestChanges)

		uc.EXPECT().RequestChanges(gomock.Any(), "tok", "   ").Return(entities.Quote{}, usecase.ErrChangeMessageRequired)

		if w := do(r, http.MethodPost, "/v1/public/quotes/tok/request-changes", `{"message":"   "}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIShareLinkUseCase(ctrl)
		h := NewShareLinkHandler(uc, nil)

		r := publicRouter()
		r.POST("/v1/public/quotes/:token/request-changes", h.RequestChanges)

		uc.EXPECT().RequestChanges(gomock.Any(), "tok", "Please add windows").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusChangesRequested}, nil)

		w := do(r, http.MethodPost, "/v1/public/quotes/tok/request-changes", `{"message":"Please add windows"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decode(t, w)["success"] != true {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}
