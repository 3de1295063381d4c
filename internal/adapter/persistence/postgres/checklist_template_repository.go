package postgres

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
)

const templateColumns = ` id, tenant_id, name, rooms, created_at, updated_at`

type ChecklistTemplateRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ interfaces.IChecklistTemplateRepository = (*ChecklistTemplateRepository)(nil)

func NewChecklistTemplateRepository(db *sql.DB) *ChecklistTemplateRepository {
	return &ChecklistTemplateRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (r *ChecklistTemplateRepository) Create(ctx context.Context, t entities.ChecklistTemplate) (entities.ChecklistTemplate, error) {
	rooms, err := roomsJSON(t.Rooms)
	if err != nil {
		return entities.ChecklistTemplate{}, err
	}
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO checklist_templates (id, tenant_id, name, rooms, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING`+templateColumns,
		t.ID, t.TenantID, t.Name, rooms, t.CreatedAt.UTC(), t.UpdatedAt.UTC())
	return scanTemplate(row)
}

func (r *ChecklistTemplateRepository) GetByID(ctx context.Context, tenantID, id string) (entities.ChecklistTemplate, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+templateColumns+` FROM checklist_templates WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	return optionalRow(scanTemplate(row))
}

func (r *ChecklistTemplateRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.ChecklistTemplate, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT`+templateColumns+` FROM checklist_templates WHERE tenant_id = $1 ORDER BY name`, tenantID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanTemplate)
}

func (r *ChecklistTemplateRepository) Update(ctx context.Context, tenantID, id string, p entities.ChecklistTemplatePatch) (entities.ChecklistTemplate, error) {
	var rooms any
	if p.Rooms != nil {
		encoded, err := roomsJSON(p.Rooms)
		if err != nil {
			return entities.ChecklistTemplate{}, err
		}
		rooms = encoded
	}
	row := r.db.QueryRowContext(ctx, `
		UPDATE checklist_templates SET
			name       = COALESCE($3, name),
			rooms      = COALESCE($4::jsonb, rooms),
			updated_at = $5
		WHERE id = $1 AND tenant_id = $2
		RETURNING`+templateColumns,
		id, tenantID, nullString(p.Name), rooms, r.now())
	return optionalRow(scanTemplate(row))
}

func (r *ChecklistTemplateRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	return deleteOwned(ctx, r.db, "checklist_templates", tenantID, id)
}

func scanTemplate(row rowScanner) (entities.ChecklistTemplate, error) {
	var (
		t     entities.ChecklistTemplate
		rooms []byte
	)
	if err := row.Scan(&t.ID, &t.TenantID, &t.Name, &rooms, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return entities.ChecklistTemplate{}, err
	}
	t.Rooms = []entities.ChecklistRoom{}
	if len(rooms) > 0 {
		if err := json.Unmarshal(rooms, &t.Rooms); err != nil {
			return entities.ChecklistTemplate{}, errors.Wrap(err, "decode template rooms")
		}
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func roomsJSON(rooms []entities.ChecklistRoom) (string, error) {
	if rooms == nil {
		rooms = []entities.ChecklistRoom{}
	}
	b, err := json.Marshal(rooms)
	if err != nil {
		return "", errors.Wrap(err, "encode rooms")
	}
	return string(b), nil
}
