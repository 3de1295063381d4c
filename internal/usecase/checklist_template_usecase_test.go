package usecase

import (
	"context"
	"reflect"
	"testing"
	"time"

	"cleanlyquote/internal/domain/entities"
	mock_interfaces "cleanlyquote/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
)

func TestChecklistTemplateUseCase(t *testing.T) {
	newUC := func(t *testing.T) (*mock_interfaces.MockIChecklistTemplateRepository, *ChecklistTemplateUseCase) {
		repo := mock_interfaces.NewMockIChecklistTemplateRepository(gomock.NewController(t))
		uc := NewChecklistTemplateUseCase(repo)
		uc.now = func() time.Time { return fixedNow }
		return repo, uc
	}

	t.Run("create requires a name", func(t *testing.T) {
		_, uc := newUC(t)
		if _, err := uc.Create(context.Background(), "t-1", entities.ChecklistTemplate{}); !errors.Is(err, ErrChecklistNameRequired) {
			t.Fatalf("expected ErrChecklistNameRequired, got %v", err)
		}
	})

	t.Run("create cleans rooms", func(t *testing.T) {
		repo, uc := newUC(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tpl entities.ChecklistTemplate) (entities.ChecklistTemplate, error) {
				want := []entities.ChecklistRoom{
					{Room: "Kitchen", Tasks: []string{"wipe counters", "oven"}},
					{Room: "Bath", Tasks: []string{}},
				}
				if !reflect.DeepEqual(tpl.Rooms, want) {
					t.Fatalf("unexpected rooms: %+v", tpl.Rooms)
				}
				return tpl, nil
			},
		)

		_, err := uc.Create(context.Background(), "t-1", entities.ChecklistTemplate{
			Name: "Standard",
			Rooms: []entities.ChecklistRoom{
				{Room: " Kitchen ", Tasks: []string{" wipe counters", "", "oven"}},
				{Room: " ", Tasks: []string{"orphan"}},
				{Room: "Bath"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("create without rooms stores an empty list", func(t *testing.T) {
		repo, uc := newUC(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tpl entities.ChecklistTemplate) (entities.ChecklistTemplate, error) {
				if tpl.Rooms == nil {
					t.Fatalf("expected non-nil rooms")
				}
				return tpl, nil
			},
		)
		if _, err := uc.Create(context.Background(), "t-1", entities.ChecklistTemplate{Name: "Blank"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update keeps rooms when absent", func(t *testing.T) {
		repo, uc := newUC(t)
		repo.EXPECT().Update(gomock.Any(), "t-1", "tpl-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, id string, patch entities.ChecklistTemplatePatch) (entities.ChecklistTemplate, error) {
				if patch.Rooms != nil {
					t.Fatalf("expected rooms untouched, got %+v", patch.Rooms)
				}
				return entities.ChecklistTemplate{ID: id, Name: *patch.Name}, nil
			},
		)
		if _, err := uc.Update(context.Background(), "t-1", "tpl-1", entities.ChecklistTemplatePatch{Name: strPtr("Move out")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		repo, uc := newUC(t)
		repo.EXPECT().Delete(gomock.Any(), "t-1", "tpl-1").Return(false, nil)
		if err := uc.Delete(context.Background(), "t-1", "tpl-1"); !errors.Is(err, ErrChecklistTemplateNotFound) {
			t.Fatalf("expected ErrChecklistTemplateNotFound, got %v", err)
		}
	})
}
