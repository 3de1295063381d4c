package usecase

import (
	"context"
	"reflect"
	"testing"

	"cleanlyquote/internal/domain/entities"
	mock_interfaces "cleanlyquote/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
)

func TestChecklistUseCase(t *testing.T) {
	var templates *mock_interfaces.MockIChecklistTemplateRepository
	newUC := func(t *testing.T) (*mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockIQuoteChecklistRepository, *ChecklistUseCase) {
		ctrl := gomock.NewController(t)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		checklists := mock_interfaces.NewMockIQuoteChecklistRepository(ctrl)
		templates = mock_interfaces.NewMockIChecklistTemplateRepository(ctrl)
		return quotes, checklists, NewChecklistUseCase(quotes, checklists, templates)
	}

	t.Run("foreign quote", func(t *testing.T) {
		quotes, _, uc := newUC(t)
		quotes.EXPECT().GetByID(gomock.Any(), "t-1", "q-1").Return(entities.Quote{}, nil)

		if _, err := uc.Get(context.Background(), "t-1", "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("attach blank template becomes nil", func(t *testing.T) {
		quotes, checklists, uc := newUC(t)
		quotes.EXPECT().GetByID(gomock.Any(), "t-1", "q-1").Return(entities.Quote{ID: "q-1"}, nil)
		checklists.EXPECT().Attach(gomock.Any(), "q-1", (*entities.ChecklistTemplate)(nil)).Return(entities.QuoteChecklist{ID: "c-1", QuoteID: "q-1"}, nil)

		blank := " "
		c, err := uc.Attach(context.Background(), "t-1", "q-1", &blank)
		if err != nil || c.ID != "c-1" {
			t.Fatalf("unexpected result: %+v err=%v", c, err)
		}
	})

	t.Run("attach snapshots the tenant template", func(t *testing.T) {
		quotes, checklists, uc := newUC(t)
		tpl := entities.ChecklistTemplate{
			ID: "tpl-1", TenantID: "t-1", Name: "Deep clean",
			Rooms: []entities.ChecklistRoom{{Room: "Kitchen", Tasks: []string{"oven"}}},
		}
		quotes.EXPECT().GetByID(gomock.Any(), "t-1", "q-1").Return(entities.Quote{ID: "q-1"}, nil)
		templates.EXPECT().GetByID(gomock.Any(), "t-1", "tpl-1").Return(tpl, nil)
		checklists.EXPECT().Attach(gomock.Any(), "q-1", &tpl).Return(entities.QuoteChecklist{
			ID: "c-1", QuoteID: "q-1", TemplateID: &tpl.ID, TemplateName: &tpl.Name, Rooms: tpl.Rooms,
		}, nil)

		id := " tpl-1 "
		c, err := uc.Attach(context.Background(), "t-1", "q-1", &id)
		if err != nil || c.TemplateName == nil || *c.TemplateName != "Deep clean" || len(c.Rooms) != 1 {
			t.Fatalf("unexpected result: %+v err=%v", c, err)
		}
	})

	t.Run("attach foreign template", func(t *testing.T) {
		quotes, _, uc := newUC(t)
		quotes.EXPECT().GetByID(gomock.Any(), "t-1", "q-1").Return(entities.Quote{ID: "q-1"}, nil)
		templates.EXPECT().GetByID(gomock.Any(), "t-1", "tpl-9").Return(entities.ChecklistTemplate{}, nil)

		id := "tpl-9"
		if _, err := uc.Attach(context.Background(), "t-1", "q-1", &id); !errors.Is(err, ErrChecklistTemplateNotFound) {
			t.Fatalf("expected ErrChecklistTemplateNotFound, got %v", err)
		}
	})

	t.Run("update dedupes tasks", func(t *testing.T) {
		quotes, checklists, uc := newUC(t)
		quotes.EXPECT().GetByID(gomock.Any(), "t-1", "q-1").Return(entities.Quote{ID: "q-1"}, nil)
		checklists.EXPECT().UpdateCompletedTasks(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, tasks []string) (entities.QuoteChecklist, error) {
				if !reflect.DeepEqual(tasks, []string{"kitchen", "bath"}) {
					t.Fatalf("unexpected tasks: %v", tasks)
				}
				return entities.QuoteChecklist{ID: "c-1", CompletedTasks: tasks}, nil
			},
		)

		if _, err := uc.UpdateCompletedTasks(context.Background(), "t-1", "q-1", []string{"kitchen", " bath", "", "kitchen"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update without checklist", func(t *testing.T) {
		quotes, checklists, uc := newUC(t)
		quotes.EXPECT().GetByID(gomock.Any(), "t-1", "q-1").Return(entities.Quote{ID: "q-1"}, nil)
		checklists.EXPECT().UpdateCompletedTasks(gomock.Any(), "q-1", gomock.Any()).Return(entities.QuoteChecklist{}, nil)

		if _, err := uc.UpdateCompletedTasks(context.Background(), "t-1", "q-1", nil); !errors.Is(err, ErrChecklistNotFound) {
			t.Fatalf("expected ErrChecklistNotFound, got %v", err)
		}
	})

	t.Run("detach", func(t *testing.T) {
		quotes, checklists, uc := newUC(t)
		quotes.EXPECT().GetByID(gomock.Any(), "t-1", "q-1").Return(entities.Quote{ID: "q-1"}, nil)
		checklists.EXPECT().DeleteByQuoteID(gomock.Any(), "q-1").Return(nil)

		if err := uc.Detach(context.Background(), "t-1", "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
