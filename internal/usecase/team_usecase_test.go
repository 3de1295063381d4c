package usecase

import (
	"context"
	"testing"
	"time"

	"cleanlyquote/internal/domain/entities"
	mock_interfaces "cleanlyquote/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
)

type teamFixture struct {
	members *mock_interfaces.MockITeamMemberRepository
	quotes  *mock_interfaces.MockIQuoteRepository
	uc      *TeamUseCase
}

func newTeamFixture(t *testing.T) teamFixture {
	ctrl := gomock.NewController(t)
	members := mock_interfaces.NewMockITeamMemberRepository(ctrl)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewTeamUseCase(members, quotes, nil)
	uc.now = func() time.Time { return fixedNow }
	return teamFixture{members: members, quotes: quotes, uc: uc}
}

func TestTeamUseCase_Create(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		f := newTeamFixture(t)
		if _, err := f.uc.Create(context.Background(), "t-1", entities.TeamMember{}); !errors.Is(err, ErrTeamMemberNameRequired) {
			t.Fatalf("expected ErrTeamMemberNameRequired, got %v", err)
		}
	})

	t.Run("defaults role", func(t *testing.T) {
		f := newTeamFixture(t)
		f.members.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.TeamMember) (entities.TeamMember, error) {
				if m.Role != entities.DefaultTeamRole || m.TenantID != "t-1" || m.ID == "" {
					t.Fatalf("unexpected member: %+v", m)
				}
				return m, nil
			},
		)

		if _, err := f.uc.Create(context.Background(), "t-1", entities.TeamMember{Name: "Maria"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTeamUseCase_Update(t *testing.T) {
	f := newTeamFixture(t)
	f.members.EXPECT().Update(gomock.Any(), "t-1", "m-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, id string, patch entities.TeamMemberPatch) (entities.TeamMember, error) {
			if patch.Role != nil || patch.Name == nil || *patch.Name != "Maria" {
				t.Fatalf("unexpected patch: %+v", patch)
			}
			return entities.TeamMember{ID: id, Name: *patch.Name}, nil
		},
	)

	if _, err := f.uc.Update(context.Background(), "t-1", "m-1", entities.TeamMemberPatch{Name: strPtr(" Maria "), Role: strPtr("")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTeamUseCase_Delete(t *testing.T) {
	t.Run("unassigns jobs before deleting", func(t *testing.T) {
		f := newTeamFixture(t)
		gomock.InOrder(
			f.members.EXPECT().GetByID(gomock.Any(), "t-1", "m-1").Return(entities.TeamMember{ID: "m-1"}, nil),
			f.quotes.EXPECT().ClearReference(gomock.Any(), "t-1", entities.QuoteRefAssignee, "m-1").Return(nil),
			f.members.EXPECT().Delete(gomock.Any(), "t-1", "m-1").Return(true, nil),
		)

		if err := f.uc.Delete(context.Background(), "t-1", "m-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("foreign member", func(t *testing.T) {
		f := newTeamFixture(t)
		f.members.EXPECT().GetByID(gomock.Any(), "t-1", "m-1").Return(entities.TeamMember{}, nil)

		if err := f.uc.Delete(context.Background(), "t-1", "m-1"); !errors.Is(err, ErrTeamMemberNotFound) {
			t.Fatalf("expected ErrTeamMemberNotFound, got %v", err)
		}
	})
}

func TestTeamUseCase_ListJobs(t *testing.T) {
	f := newTeamFixture(t)
	f.members.EXPECT().GetByID(gomock.Any(), "t-1", "m-1").Return(entities.TeamMember{ID: "m-1"}, nil)
	f.quotes.EXPECT().ListByReference(gomock.Any(), "t-1", entities.QuoteRefAssignee, "m-1").Return([]entities.Quote{
		{ID: "late", ScheduledDate: strPtr("2026-03-12"), ScheduledTime: strPtr("08:00:00")},
		{ID: "afternoon", ScheduledDate: strPtr("2026-03-11"), ScheduledTime: strPtr("14:00:00")},
		{ID: "morning", ScheduledDate: strPtr("2026-03-11"), ScheduledTime: strPtr("09:00:00")},
	}, nil)

	jobs, err := f.uc.ListJobs(context.Background(), "t-1", "m-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var order []string
	for _, j := range jobs {
		order = append(order, j.ID)
	}
	if len(order) != 3 || order[0] != "morning" || order[1] != "afternoon" || order[2] != "late" {
		t.Fatalf("unexpected order: %v", order)
	}
}
