package interfaces

import (
	"cleanlyquote/internal/domain/entities"
	"context"
)

// ITeamMemberRepository follows the tenant scoping rules of IClientRepository.
type ITeamMemberRepository interface {
	Create(ctx context.Context, m entities.TeamMember) (entities.TeamMember, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.TeamMember, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.TeamMember, error)
	Update(ctx context.Context, tenantID, id string, patch entities.TeamMemberPatch) (entities.TeamMember, error)
	Delete(ctx context.Context, tenantID, id string) (bool, error)
}
