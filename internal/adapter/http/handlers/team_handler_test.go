package handlers

import (
	"context"
	"net/http"
	"testing"

	"cleanlyquote/internal/adapter/http/handlers/mocks"
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase"

	"go.uber.org/mock/gomock"
)

func newTeamRouter(t *testing.T) (http.Handler, *mocks.MockITeamUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockITeamUseCase(ctrl)
	h := NewTeamHandler(uc)

	r := authedRouter(freeTenant)
	r.GET("/v1/team", h.ListTeam)
	r.POST("/v1/team", h.CreateTeamMember)
	r.PUT("/v1/team/:id", h.UpdateTeamMember)
	r.DELETE("/v1/team/:id", h.DeleteTeamMember)
	r.GET("/v1/team/:id/jobs", h.ListMemberJobs)
	return r, uc
}

func TestTeamHandler_CreateTeamMember(t *testing.T) {
	r, uc := newTeamRouter(t)
	uc.EXPECT().Create(gomock.Any(), "t-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, m entities.TeamMember) (entities.TeamMember, error) {
			if m.Name != "Jo" || m.Role != "" {
				t.Fatalf("unexpected member %+v", m)
			}
			m.ID, m.Role = "m-1", entities.DefaultTeamRole
			return m, nil
		})

	w := do(r, http.MethodPost, "/v1/team", `{"name":"Jo"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	member, _ := decode(t, w)["member"].(map[string]any)
	if member["id"] != "m-1" || member["role"] != entities.DefaultTeamRole {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestTeamHandler_UpdateTeamMember(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		r, uc := newTeamRouter(t)
		uc.EXPECT().Update(gomock.Any(), "t-1", "m-1", gomock.Any()).Return(entities.TeamMember{}, usecase.ErrTeamMemberNameRequired)

		if w := do(r, http.MethodPut, "/v1/team/m-1", `{"name":"  "}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown member", func(t *testing.T) {
		r, uc := newTeamRouter(t)
		uc.EXPECT().Update(gomock.Any(), "t-1", "m-9", gomock.Any()).Return(entities.TeamMember{}, usecase.ErrTeamMemberNotFound)

		if w := do(r, http.MethodPut, "/v1/team/m-9", `{"role":"lead"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTeamHandler_ListMemberJobs(t *testing.T) {
	r, uc := newTeamRouter(t)
	day := "2025-03-04"
	uc.EXPECT().ListJobs(gomock.Any(), "t-1", "m-1").Return([]entities.Quote{{ID: "q-1", ScheduledDate: &day}}, nil)

	w := do(r, http.MethodGet, "/v1/team/m-1/jobs", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	jobs, _ := decode(t, w)["jobs"].([]any)
	if len(jobs) != 1 {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestTeamHandler_DeleteTeamMember(t *testing.T) {
	r, uc := newTeamRouter(t)
	uc.EXPECT().Delete(gomock.Any(), "t-1", "m-1").Return(nil)

	w := do(r, http.MethodDelete, "/v1/team/m-1", "")
	if w.Code != http.StatusOK || decode(t, w)["success"] != true {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
