package repository

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"slices"
	"strings"
)

type teamMemberItem struct {
	ID        string  `dynamodbav:"id"`
	TenantID  string  `dynamodbav:"tenant_id"`
	Name      string  `dynamodbav:"name"`
	Email     *string `dynamodbav:"email,omitempty"`
	Role      string  `dynamodbav:"role"`
	CreatedAt string  `dynamodbav:"created_at"`
}

func (m teamMemberItem) owner() string { return m.TenantID }

type TeamMemberDynamoRepository struct {
	table ownedTable[teamMemberItem]
}

var _ interfaces.ITeamMemberRepository = (*TeamMemberDynamoRepository)(nil)

func NewTeamMemberDynamoRepository(ddb DynamoAPI, tables Tables) *TeamMemberDynamoRepository {
	return &TeamMemberDynamoRepository{table: ownedTable[teamMemberItem]{ddb: ddb, name: tables.TeamMembers}}
}

func (r *TeamMemberDynamoRepository) Create(ctx context.Context, m entities.TeamMember) (entities.TeamMember, error) {
	if err := r.table.put(ctx, teamMemberItem{
		ID:        m.ID,
		TenantID:  m.TenantID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		CreatedAt: formatTime(m.CreatedAt),
	}); err != nil {
		return entities.TeamMember{}, err
	}
	return m, nil
}

func (r *TeamMemberDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.TeamMember, error) {
	it, ok, err := r.table.get(ctx, tenantID, id)
	if err != nil || !ok {
		return entities.TeamMember{}, err
	}
	return fromTeamMemberItem(it), nil
}

func (r *TeamMemberDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.TeamMember, error) {
	items, err := r.table.list(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.TeamMember, 0, len(items))
	for _, it := range items {
		out = append(out, fromTeamMemberItem(it))
	}
	slices.SortStableFunc(out, func(a, b entities.TeamMember) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (r *TeamMemberDynamoRepository) Update(ctx context.Context, tenantID, id string, p entities.TeamMemberPatch) (entities.TeamMember, error) {
	u := newUpdateExpr()
	setOptional(u, "name", p.Name)
	setOptional(u, "email", p.Email)
	setOptional(u, "role", p.Role)
	if len(u.sets) == 0 {
		return r.GetByID(ctx, tenantID, id)
	}

	it, ok, err := r.table.update(ctx, tenantID, id, u)
	if err != nil || !ok {
		return entities.TeamMember{}, err
	}
	return fromTeamMemberItem(it), nil
}

func (r *TeamMemberDynamoRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	return r.table.delete(ctx, tenantID, id)
}

func fromTeamMemberItem(it teamMemberItem) entities.TeamMember {
	return entities.TeamMember{
		ID:        it.ID,
		TenantID:  it.TenantID,
		Name:      it.Name,
		Email:     it.Email,
		Role:      it.Role,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
