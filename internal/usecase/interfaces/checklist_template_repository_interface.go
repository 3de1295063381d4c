package interfaces

import (
	"cleanlyquote/internal/domain/entities"
	"context"
)

type IChecklistTemplateRepository interface {
	Create(ctx context.Context, t entities.ChecklistTemplate) (entities.ChecklistTemplate, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.ChecklistTemplate, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.ChecklistTemplate, error)
	Update(ctx context.Context, tenantID, id string, patch entities.ChecklistTemplatePatch) (entities.ChecklistTemplate, error)
	Delete(ctx context.Context, tenantID, id string) (bool, error)
}
