package handlers

import (
	"net/http"
	"testing"

	"cleanlyquote/internal/adapter/http/handlers/mocks"
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestChecklistHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIChecklistUseCase(ctrl)
	h := NewChecklistHandler(uc)

	r := authedRouter(freeTenant)
	r.GET("/v1/quotes/:id/checklist", h.GetChecklist)
	r.POST("/v1/quotes/:id/checklist", h.AttachChecklist)
	r.PUT("/v1/quotes/:id/checklist", h.UpdateChecklist)
	r.DELETE("/v1/quotes/:id/checklist", h.DetachChecklist)

	uc.EXPECT().Get(gomock.Any(), "t-1", "q-1").Return(entities.QuoteChecklist{}, nil)
	w := do(r, http.MethodGet, "/v1/quotes/q-1/checklist", "")
	if w.Code != http.StatusOK || decode(t, w)["checklist"] != nil {
		t.Fatalf("expected null checklist, got %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().Attach(gomock.Any(), "t-1", "q-1", gomock.Nil()).Return(entities.QuoteChecklist{ID: "c-1", QuoteID: "q-1", CompletedTasks: []string{}}, nil)
	if w := do(r, http.MethodPost, "/v1/quotes/q-1/checklist", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if w := do(r, http.MethodPut, "/v1/quotes/q-1/checklist", `{"completedTasks":"kitchen"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().UpdateCompletedTasks(gomock.Any(), "t-1", "q-1", []string{"kitchen"}).
		Return(entities.QuoteChecklist{ID: "c-1", QuoteID: "q-1", CompletedTasks: []string{"kitchen"}}, nil)
	if w := do(r, http.MethodPut, "/v1/quotes/q-1/checklist", `{"completedTasks":["kitchen"]}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().Detach(gomock.Any(), "t-1", "q-2").Return(usecase.ErrQuoteNotFound)
	if w := do(r, http.MethodDelete, "/v1/quotes/q-2/checklist", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
