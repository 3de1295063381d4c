package postgres

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
)

const clientColumns = ` id, tenant_id, name, email, phone, address, notes, created_at, updated_at`

type ClientRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (r *ClientRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO clients (id, tenant_id, name, email, phone, address, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING`+clientColumns,
		c.ID, c.TenantID, c.Name, nullString(c.Email), nullString(c.Phone), nullString(c.Address), nullString(c.Notes),
		c.CreatedAt.UTC(), c.UpdatedAt.UTC())
	return scanClient(row)
}

func (r *ClientRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Client, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+clientColumns+` FROM clients WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	return optionalRow(scanClient(row))
}

func (r *ClientRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT`+clientColumns+` FROM clients WHERE tenant_id = $1 ORDER BY name`, tenantID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanClient)
}

func (r *ClientRepository) Update(ctx context.Context, tenantID, id string, p entities.ClientPatch) (entities.Client, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE clients SET
			name       = COALESCE($3, name),
			email      = COALESCE($4, email),
			phone      = COALESCE($5, phone),
			address    = COALESCE($6, address),
			notes      = COALESCE($7, notes),
			updated_at = $8
		WHERE id = $1 AND tenant_id = $2
		RETURNING`+clientColumns,
		id, tenantID, nullString(p.Name), nullString(p.Email), nullString(p.Phone), nullString(p.Address), nullString(p.Notes), r.now())
	return optionalRow(scanClient(row))
}

func (r *ClientRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	return deleteOwned(ctx, r.db, "clients", tenantID, id)
}

func scanClient(row rowScanner) (entities.Client, error) {
	var (
		c                            entities.Client
		email, phone, address, notes sql.NullString
	)
	if err := row.Scan(&c.ID, &c.TenantID, &c.Name, &email, &phone, &address, &notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return entities.Client{}, err
	}
	c.Email = stringPtr(email)
	c.Phone = stringPtr(phone)
	c.Address = stringPtr(address)
	c.Notes = stringPtr(notes)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}

// optionalRow maps sql.ErrNoRows to the zero value, which callers read as
// not found.
func optionalRow[T any](v T, err error) (T, error) {
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, nil
	}
	return v, err
}

func collect[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// deleteOwned deletes a tenant-scoped row. table is never user input.
func deleteOwned(ctx context.Context, db *sql.DB, table, tenantID, id string) (bool, error) {
	res, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
