package interfaces

import (
	"cleanlyquote/internal/domain/entities"
	"context"
)

// IClientRepository abstracts persistence for a tenant's client records.
// A client of another tenant behaves like a missing one (zero Client, nil error).
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Client, error)
	// ListByTenant orders clients by name.
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Client, error)
	Update(ctx context.Context, tenantID, id string, patch entities.ClientPatch) (entities.Client, error)
	Delete(ctx context.Context, tenantID, id string) (bool, error)
}
