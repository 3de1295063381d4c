package usecase

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"strings"

	"github.com/samber/lo"
)

// IChecklistUseCase manages the checklist instance attached to a quote.
// Every operation first checks that the quote belongs to the tenant.
type IChecklistUseCase interface {
	// Get returns a zero QuoteChecklist when none is attached.
	Get(ctx context.Context, tenantID, quoteID string) (entities.QuoteChecklist, error)
	Attach(ctx context.Context, tenantID, quoteID string, templateID *string) (entities.QuoteChecklist, error)
	UpdateCompletedTasks(ctx context.Context, tenantID, quoteID string, tasks []string) (entities.QuoteChecklist, error)
	Detach(ctx context.Context, tenantID, quoteID string) error
}

type ChecklistUseCase struct {
	quotes     interfaces.IQuoteRepository
	checklists interfaces.IQuoteChecklistRepository
	templates  interfaces.IChecklistTemplateRepository
}

var _ IChecklistUseCase = (*ChecklistUseCase)(nil)

func NewChecklistUseCase(quotes interfaces.IQuoteRepository, checklists interfaces.IQuoteChecklistRepository, templates interfaces.IChecklistTemplateRepository) *ChecklistUseCase {
	return &ChecklistUseCase{quotes: quotes, checklists: checklists, templates: templates}
}

func (u *ChecklistUseCase) Get(ctx context.Context, tenantID, quoteID string) (entities.QuoteChecklist, error) {
	if err := u.owned(ctx, tenantID, quoteID); err != nil {
		return entities.QuoteChecklist{}, err
	}
	return u.checklists.GetByQuoteID(ctx, strings.TrimSpace(quoteID))
}

// Attach creates the checklist or switches its template. Completed tasks are
// reset. The template's name and rooms are copied onto the checklist, so later
// template edits do not change checklists already attached.
func (u *ChecklistUseCase) Attach(ctx context.Context, tenantID, quoteID string, templateID *string) (entities.QuoteChecklist, error) {
	if err := u.owned(ctx, tenantID, quoteID); err != nil {
		return entities.QuoteChecklist{}, err
	}
	var template *entities.ChecklistTemplate
	if templateID != nil && strings.TrimSpace(*templateID) != "" {
		tpl, err := u.templates.GetByID(ctx, tenantID, strings.TrimSpace(*templateID))
		if err != nil {
			return entities.QuoteChecklist{}, err
		}
		if tpl.ID == "" {
			return entities.QuoteChecklist{}, ErrChecklistTemplateNotFound
		}
		template = &tpl
	}
	return u.checklists.Attach(ctx, strings.TrimSpace(quoteID), template)
}

func (u *ChecklistUseCase) UpdateCompletedTasks(ctx context.Context, tenantID, quoteID string, tasks []string) (entities.QuoteChecklist, error) {
	if err := u.owned(ctx, tenantID, quoteID); err != nil {
		return entities.QuoteChecklist{}, err
	}
	tasks = lo.Uniq(lo.Compact(lo.Map(tasks, func(s string, _ int) string { return strings.TrimSpace(s) })))

	c, err := u.checklists.UpdateCompletedTasks(ctx, strings.TrimSpace(quoteID), tasks)
	if err != nil {
		return entities.QuoteChecklist{}, err
	}
	if c.ID == "" {
		return entities.QuoteChecklist{}, ErrChecklistNotFound
	}
	return c, nil
}

func (u *ChecklistUseCase) Detach(ctx context.Context, tenantID, quoteID string) error {
	if err := u.owned(ctx, tenantID, quoteID); err != nil {
		return err
	}
	return u.checklists.DeleteByQuoteID(ctx, strings.TrimSpace(quoteID))
}

func (u *ChecklistUseCase) owned(ctx context.Context, tenantID, quoteID string) error {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return ErrInvalidQuoteID
	}
	q, err := u.quotes.GetByID(ctx, tenantID, quoteID)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return ErrQuoteNotFound
	}
	return nil
}
