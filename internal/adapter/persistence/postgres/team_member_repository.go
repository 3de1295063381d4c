package postgres

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"database/sql"
)

const teamMemberColumns = ` id, tenant_id, name, email, role, created_at`

type TeamMemberRepository struct {
	db *sql.DB
}

var _ interfaces.ITeamMemberRepository = (*TeamMemberRepository)(nil)

func NewTeamMemberRepository(db *sql.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) Create(ctx context.Context, m entities.TeamMember) (entities.TeamMember, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO team_members (id, tenant_id, name, email, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING`+teamMemberColumns,
		m.ID, m.TenantID, m.Name, nullString(m.Email), m.Role, m.CreatedAt.UTC())
	return scanTeamMember(row)
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, tenantID, id string) (entities.TeamMember, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+teamMemberColumns+` FROM team_members WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	return optionalRow(scanTeamMember(row))
}

func (r *TeamMemberRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.TeamMember, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT`+teamMemberColumns+` FROM team_members WHERE tenant_id = $1 ORDER BY name`, tenantID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanTeamMember)
}

func (r *TeamMemberRepository) Update(ctx context.Context, tenantID, id string, p entities.TeamMemberPatch) (entities.TeamMember, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE team_members SET
			name  = COALESCE($3, name),
			email = COALESCE($4, email),
			role  = COALESCE($5, role)
		WHERE id = $1 AND tenant_id = $2
		RETURNING`+teamMemberColumns,
		id, tenantID, nullString(p.Name), nullString(p.Email), nullString(p.Role))
	return optionalRow(scanTeamMember(row))
}

func (r *TeamMemberRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	return deleteOwned(ctx, r.db, "team_members", tenantID, id)
}

func scanTeamMember(row rowScanner) (entities.TeamMember, error) {
	var (
		m     entities.TeamMember
		email sql.NullString
	)
	if err := row.Scan(&m.ID, &m.TenantID, &m.Name, &email, &m.Role, &m.CreatedAt); err != nil {
		return entities.TeamMember{}, err
	}
	m.Email = stringPtr(email)
	m.CreatedAt = m.CreatedAt.UTC()
	return m, nil
}
