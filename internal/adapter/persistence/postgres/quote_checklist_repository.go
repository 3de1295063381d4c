package postgres

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const checklistColumns = ` id, quote_id, template_id, template_name, rooms, completed_tasks, created_at, updated_at`

type QuoteChecklistRepository struct {
	db    *sql.DB
	now   func() time.Time
	newID func() string
}

var _ interfaces.IQuoteChecklistRepository = (*QuoteChecklistRepository)(nil)

func NewQuoteChecklistRepository(db *sql.DB) *QuoteChecklistRepository {
	return &QuoteChecklistRepository{
		db:    db,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (r *QuoteChecklistRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.QuoteChecklist, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+checklistColumns+` FROM quote_checklists WHERE quote_id = $1`, quoteID)
	return optionalChecklist(scanChecklist(row))
}

func (r *QuoteChecklistRepository) Attach(ctx context.Context, quoteID string, template *entities.ChecklistTemplate) (entities.QuoteChecklist, error) {
	var (
		templateID, templateName sql.NullString
		snapshot                 []entities.ChecklistRoom
	)
	if template != nil {
		templateID = sql.NullString{String: template.ID, Valid: true}
		templateName = sql.NullString{String: template.Name, Valid: true}
		snapshot = template.Rooms
	}
	rooms, err := roomsJSON(snapshot)
	if err != nil {
		return entities.QuoteChecklist{}, err
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO quote_checklists (id, quote_id, template_id, template_name, rooms, completed_tasks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, '{}', $6, $6)
		ON CONFLICT (quote_id) DO UPDATE SET
			template_id     = EXCLUDED.template_id,
			template_name   = EXCLUDED.template_name,
			rooms           = EXCLUDED.rooms,
			completed_tasks = '{}',
			updated_at      = EXCLUDED.updated_at
		RETURNING`+checklistColumns,
		r.newID(), quoteID, templateID, templateName, rooms, r.now())
	return scanChecklist(row)
}

func (r *QuoteChecklistRepository) UpdateCompletedTasks(ctx context.Context, quoteID string, tasks []string) (entities.QuoteChecklist, error) {
	if tasks == nil {
		tasks = []string{}
	}
	row := r.db.QueryRowContext(ctx, `
		UPDATE quote_checklists SET completed_tasks = $2, updated_at = $3
		WHERE quote_id = $1
		RETURNING`+checklistColumns,
		quoteID, pq.Array(tasks), r.now())
	return optionalChecklist(scanChecklist(row))
}

func (r *QuoteChecklistRepository) DeleteByQuoteID(ctx context.Context, quoteID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM quote_checklists WHERE quote_id = $1`, quoteID)
	return err
}

func scanChecklist(row rowScanner) (entities.QuoteChecklist, error) {
	var (
		c                        entities.QuoteChecklist
		templateID, templateName sql.NullString
		rooms                    []byte
		tasks                    pq.StringArray
	)
	if err := row.Scan(&c.ID, &c.QuoteID, &templateID, &templateName, &rooms, &tasks, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return entities.QuoteChecklist{}, err
	}
	c.TemplateID = stringPtr(templateID)
	c.TemplateName = stringPtr(templateName)
	c.Rooms = []entities.ChecklistRoom{}
	if len(rooms) > 0 {
		if err := json.Unmarshal(rooms, &c.Rooms); err != nil {
			return entities.QuoteChecklist{}, errors.Wrap(err, "decode checklist rooms")
		}
	}
	c.CompletedTasks = []string(tasks)
	if c.CompletedTasks == nil {
		c.CompletedTasks = []string{}
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}

func optionalChecklist(c entities.QuoteChecklist, err error) (entities.QuoteChecklist, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return entities.QuoteChecklist{}, nil
	}
	return c, err
}
