package interfaces

import (
	"cleanlyquote/internal/domain/entities"
	"context"
)

// IQuoteChecklistRepository abstracts persistence for the checklist attached
// to a quote. The quote id is the natural key (at most one per quote).
type IQuoteChecklistRepository interface {
	GetByQuoteID(ctx context.Context, quoteID string) (entities.QuoteChecklist, error)
	// Attach creates the checklist or replaces its template snapshot, resetting
	// completed tasks. A nil template attaches a blank checklist.
	Attach(ctx context.Context, quoteID string, template *entities.ChecklistTemplate) (entities.QuoteChecklist, error)
	UpdateCompletedTasks(ctx context.Context, quoteID string, tasks []string) (entities.QuoteChecklist, error)
	DeleteByQuoteID(ctx context.Context, quoteID string) error
}
