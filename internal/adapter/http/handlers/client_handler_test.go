package handlers

import (
	"context"
	"net/http"
	"testing"

	"cleanlyquote/internal/adapter/http/handlers/mocks"
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
)

func newClientRouter(t *testing.T) (http.Handler, *mocks.MockIClientUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc)

	r := authedRouter(freeTenant)
	r.GET("/v1/clients", h.ListClients)
	r.POST("/v1/clients", h.CreateClient)
	r.GET("/v1/clients/:id", h.GetClient)
	r.PUT("/v1/clients/:id", h.UpdateClient)
	r.DELETE("/v1/clients/:id", h.DeleteClient)
	r.GET("/v1/clients/:id/quotes", h.ListClientQuotes)
	return r, uc
}

func TestClientHandler_CreateClient(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().Create(gomock.Any(), "t-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, tenantID string, c entities.Client) (entities.Client, error) {
				if c.Name != "Ann" || c.Email == nil || *c.Email != "ann@example.com" {
					t.Fatalf("unexpected client %+v", c)
				}
				c.ID, c.TenantID = "c-1", tenantID
				return c, nil
			})

		w := do(r, http.MethodPost, "/v1/clients", `{"name":"Ann","email":"ann@example.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		client, _ := decode(t, w)["client"].(map[string]any)
		if client["id"] != "c-1" || client["name"] != "Ann" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("malformed email never reaches the use case", func(t *testing.T) {
		r, _ := newClientRouter(t)
		if w := do(r, http.MethodPost, "/v1/clients", `{"name":"Ann","email":"nope"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().Create(gomock.Any(), "t-1", gomock.Any()).Return(entities.Client{}, usecase.ErrClientNameRequired)

		w := do(r, http.MethodPost, "/v1/clients", `{"phone":"555"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decode(t, w)["error"] != "Client name is required" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestClientHandler_Errors(t *testing.T) {
	cases := []struct {
		name   string
		method string
		path   string
		body   string
		setup  func(uc *mocks.MockIClientUseCase)
		want   int
	}{
		{
			name: "get foreign client", method: http.MethodGet, path: "/v1/clients/c-9",
			setup: func(uc *mocks.MockIClientUseCase) {
				uc.EXPECT().Get(gomock.Any(), "t-1", "c-9").Return(entities.Client{}, usecase.ErrClientNotFound)
			},
			want: http.StatusNotFound,
		},
		{
			name: "update missing client", method: http.MethodPut, path: "/v1/clients/c-9", body: `{"notes":"gate code 1234"}`,
			setup: func(uc *mocks.MockIClientUseCase) {
				uc.EXPECT().Update(gomock.Any(), "t-1", "c-9", gomock.Any()).Return(entities.Client{}, usecase.ErrClientNotFound)
			},
			want: http.StatusNotFound,
		},
		{
			name: "delete store failure", method: http.MethodDelete, path: "/v1/clients/c-1",
			setup: func(uc *mocks.MockIClientUseCase) {
				uc.EXPECT().Delete(gomock.Any(), "t-1", "c-1").Return(errors.New("connection reset"))
			},
			want: http.StatusInternalServerError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newClientRouter(t)
			tc.setup(uc)
			if w := do(r, tc.method, tc.path, tc.body); w.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestClientHandler_ListClientQuotes(t *testing.T) {
	r, uc := newClientRouter(t)
	uc.EXPECT().ListQuotes(gomock.Any(), "t-1", "c-1").Return([]entities.Quote{{ID: "q-2"}, {ID: "q-1"}}, nil)

	w := do(r, http.MethodGet, "/v1/clients/c-1/quotes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	quotes, _ := decode(t, w)["quotes"].([]any)
	if len(quotes) != 2 || quotes[0].(map[string]any)["id"] != "q-2" {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestClientHandler_ListClientsEmpty(t *testing.T) {
	r, uc := newClientRouter(t)
	uc.EXPECT().List(gomock.Any(), "t-1").Return(nil, nil)

	w := do(r, http.MethodGet, "/v1/clients", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"clients":[]}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
