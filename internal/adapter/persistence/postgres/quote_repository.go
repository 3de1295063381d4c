package postgres

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

const quoteColumns = `
	id, tenant_id, client_id,
	client_name, client_email, client_phone,
	property_type, property_address, service_type,
	bedrooms, bathrooms, square_feet, services, frequency,
	base_price, addons_price, discount_percent, discount_amount,
	tax_rate, tax_amount, total_price,
	notes, status, sent_at,
	scheduled_date::text, scheduled_time::text, recurring, assigned_to,
	share_token, share_expires_at, client_approved, client_approved_at, change_request,
	created_at, updated_at`

// QuoteRepository persists quotes in the quotes table. Checklists reference
// quotes with ON DELETE CASCADE.
type QuoteRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(db *sql.DB) *QuoteRepository {
	return &QuoteRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (r *QuoteRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	services := string(q.Services)
	if services == "" {
		services = "[]"
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO quotes (
			id, tenant_id, client_id,
			client_name, client_email, client_phone,
			property_type, property_address, service_type,
			bedrooms, bathrooms, square_feet, services, frequency,
			base_price, addons_price, discount_percent, discount_amount,
			tax_rate, tax_amount, total_price,
			notes, status, sent_at,
			scheduled_date, scheduled_time, recurring, assigned_to,
			share_token, share_expires_at, client_approved, client_approved_at, change_request,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24,
			$25::date, $26::time, $27, $28, $29, $30, $31, $32, $33, $34, $35
		) RETURNING`+quoteColumns,
		q.ID, q.TenantID, nullString(q.ClientID),
		q.ClientName, q.ClientEmail, q.ClientPhone,
		q.PropertyType, q.PropertyAddress, q.ServiceType,
		nullInt(q.Bedrooms), numericPtr(q.Bathrooms), nullInt(q.SquareFeet), services, q.Frequency,
		numeric(q.Prices.BasePrice), numeric(q.Prices.AddonsPrice), numeric(q.Prices.DiscountPercent), numeric(q.Prices.DiscountAmount),
		numeric(q.Prices.TaxRate), numeric(q.Prices.TaxAmount), numeric(q.Prices.TotalPrice),
		q.Notes, string(q.Status), nullTime(q.SentAt),
		nullString(q.ScheduledDate), nullString(q.ScheduledTime), q.Recurring, nullString(q.AssignedTo),
		q.ShareToken, nullTime(q.ShareExpiresAt), q.ClientApproved, nullTime(q.ClientApprovedAt), nullString(q.ChangeRequest),
		q.CreatedAt.UTC(), q.UpdatedAt.UTC(),
	)
	return scanQuote(row)
}

func (r *QuoteRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Quote, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+quoteColumns+` FROM quotes WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	return optionalQuote(scanQuote(row))
}

func (r *QuoteRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.Quote, error) {
	return r.list(ctx, `SELECT`+quoteColumns+` FROM quotes WHERE tenant_id = $1 ORDER BY created_at DESC`, tenantID)
}

func (r *QuoteRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quotes WHERE tenant_id = $1`, tenantID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *QuoteRepository) ListScheduled(ctx context.Context, tenantID, startDate, endDate string) ([]entities.Quote, error) {
	return r.list(ctx, `SELECT`+quoteColumns+` FROM quotes
		WHERE tenant_id = $1 AND scheduled_date BETWEEN $2::date AND $3::date
		ORDER BY scheduled_date, scheduled_time NULLS FIRST`, tenantID, startDate, endDate)
}

func (r *QuoteRepository) ListByReference(ctx context.Context, tenantID string, ref entities.QuoteRef, id string) ([]entities.Quote, error) {
	col, err := refColumn(ref)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, `SELECT`+quoteColumns+` FROM quotes
		WHERE tenant_id = $1 AND `+col+` = $2 ORDER BY created_at DESC`, tenantID, id)
}

func (r *QuoteRepository) ClearReference(ctx context.Context, tenantID string, ref entities.QuoteRef, id string) error {
	col, err := refColumn(ref)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `UPDATE quotes SET `+col+` = NULL, updated_at = $3
		WHERE tenant_id = $1 AND `+col+` = $2`, tenantID, id, r.now())
	return err
}

// refColumn maps a reference to its column; the result is safe to splice
// into SQL.
func refColumn(ref entities.QuoteRef) (string, error) {
	switch ref {
	case entities.QuoteRefClient:
		return "client_id", nil
	case entities.QuoteRefAssignee:
		return "assigned_to", nil
	}
	return "", errors.Newf("unknown quote reference %q", ref)
}

func (r *QuoteRepository) list(ctx context.Context, query string, args ...any) ([]entities.Quote, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.Quote{}
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// Update applies the non-nil patch fields; COALESCE keeps the stored value
// for every NULL argument.
func (r *QuoteRepository) Update(ctx context.Context, tenantID, id string, p entities.QuotePatch) (entities.Quote, error) {
	var services any
	if len(p.Services) > 0 {
		services = string(p.Services)
	}
	var status any
	if p.Status != nil {
		status = string(*p.Status)
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE quotes SET
			client_id        = COALESCE($3, client_id),
			client_name      = COALESCE($4, client_name),
			client_email     = COALESCE($5, client_email),
			client_phone     = COALESCE($6, client_phone),
			property_type    = COALESCE($7, property_type),
			property_address = COALESCE($8, property_address),
			service_type     = COALESCE($9, service_type),
			bedrooms         = COALESCE($10, bedrooms),
			bathrooms        = COALESCE($11::numeric, bathrooms),
			square_feet      = COALESCE($12, square_feet),
			services         = COALESCE($13::jsonb, services),
			frequency        = COALESCE($14, frequency),
			base_price       = COALESCE($15::numeric, base_price),
			addons_price     = COALESCE($16::numeric, addons_price),
			discount_percent = COALESCE($17::numeric, discount_percent),
			discount_amount  = COALESCE($18::numeric, discount_amount),
			tax_rate         = COALESCE($19::numeric, tax_rate),
			tax_amount       = COALESCE($20::numeric, tax_amount),
			total_price      = COALESCE($21::numeric, total_price),
			notes            = COALESCE($22, notes),
			status           = COALESCE($23, status),
			scheduled_date   = COALESCE($24::date, scheduled_date),
			scheduled_time   = COALESCE($25::time, scheduled_time),
			recurring        = COALESCE($26, recurring),
			assigned_to      = COALESCE($27, assigned_to),
			updated_at       = $28
		WHERE id = $1 AND tenant_id = $2
		RETURNING`+quoteColumns,
		id, tenantID,
		nullString(p.ClientID), nullString(p.ClientName), nullString(p.ClientEmail), nullString(p.ClientPhone),
		nullString(p.PropertyType), nullString(p.PropertyAddress), nullString(p.ServiceType),
		nullInt(p.Bedrooms), numericPtr(p.Bathrooms), nullInt(p.SquareFeet), services, nullString(p.Frequency),
		numericPtr(p.BasePrice), numericPtr(p.AddonsPrice), numericPtr(p.DiscountPercent), numericPtr(p.DiscountAmount),
		numericPtr(p.TaxRate), numericPtr(p.TaxAmount), numericPtr(p.TotalPrice),
		nullString(p.Notes), status,
		nullString(p.ScheduledDate), nullString(p.ScheduledTime), nullString(p.Recurring), nullString(p.AssignedTo),
		r.now(),
	)
	return optionalQuote(scanQuote(row))
}

func (r *QuoteRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	return deleteOwned(ctx, r.db, "quotes", tenantID, id)
}

func (r *QuoteRepository) MarkSent(ctx context.Context, tenantID, id string, sentAt time.Time) (entities.Quote, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE quotes SET sent_at = $3, status = $4, updated_at = $5
		WHERE id = $1 AND tenant_id = $2
		RETURNING`+quoteColumns,
		id, tenantID, sentAt.UTC(), string(entities.QuoteStatusSent), r.now())
	return optionalQuote(scanQuote(row))
}

func (r *QuoteRepository) UpdateStatus(ctx context.Context, tenantID, id string, status entities.QuoteStatus) (entities.Quote, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE quotes SET status = $3, updated_at = $4
		WHERE id = $1 AND tenant_id = $2
		RETURNING`+quoteColumns,
		id, tenantID, string(status), r.now())
	return optionalQuote(scanQuote(row))
}

func (r *QuoteRepository) Schedule(ctx context.Context, tenantID, id string, s entities.Schedule) (entities.Quote, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE quotes SET
			scheduled_date = $3::date,
			scheduled_time = $4::time,
			recurring      = $5,
			assigned_to    = $6,
			status         = CASE WHEN status = $7 THEN $8 ELSE status END,
			updated_at     = $9
		WHERE id = $1 AND tenant_id = $2
		RETURNING`+quoteColumns,
		id, tenantID, s.Date, blankToNull(s.Time), s.Recurring, blankToNull(s.AssignedTo),
		string(entities.QuoteStatusDraft), string(entities.QuoteStatusScheduled), r.now())
	return optionalQuote(scanQuote(row))
}

func (r *QuoteRepository) Unschedule(ctx context.Context, tenantID, id string) (entities.Quote, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE quotes SET
			scheduled_date = NULL,
			scheduled_time = NULL,
			assigned_to    = NULL,
			recurring      = $3,
			status         = $4,
			updated_at     = $5
		WHERE id = $1 AND tenant_id = $2
		RETURNING`+quoteColumns,
		id, tenantID, entities.RecurringNone, string(entities.QuoteStatusDraft), r.now())
	return optionalQuote(scanQuote(row))
}

func (r *QuoteRepository) GetByShareToken(ctx context.Context, token string) (entities.Quote, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+quoteColumns+` FROM quotes WHERE share_token = $1`, token)
	return optionalQuote(scanQuote(row))
}

func (r *QuoteRepository) RotateShareToken(ctx context.Context, tenantID, id, token string, expiresAt *time.Time) (entities.Quote, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE quotes SET share_token = $3, share_expires_at = $4, updated_at = $5
		WHERE id = $1 AND tenant_id = $2
		RETURNING`+quoteColumns,
		id, tenantID, token, nullTime(expiresAt), r.now())
	return optionalQuote(scanQuote(row))
}

func (r *QuoteRepository) ApproveByShareToken(ctx context.Context, id, token string, at time.Time) (entities.Quote, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE quotes SET
			client_approved    = TRUE,
			client_approved_at = $3,
			status             = $4,
			updated_at         = $3
		WHERE id = $1 AND share_token = $2
		  AND client_approved = FALSE
		  AND (share_expires_at IS NULL OR share_expires_at >= $3)
		RETURNING`+quoteColumns,
		id, token, at.UTC(), string(entities.QuoteStatusApproved))
	return appliedQuote(scanQuote(row))
}

func (r *QuoteRepository) RequestChangesByShareToken(ctx context.Context, id, token, message string, at time.Time) (entities.Quote, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE quotes SET
			change_request = $3,
			status         = $4,
			updated_at     = $5
		WHERE id = $1 AND share_token = $2
		  AND (share_expires_at IS NULL OR share_expires_at >= $5)
		RETURNING`+quoteColumns,
		id, token, message, string(entities.QuoteStatusChangesRequested), at.UTC())
	return appliedQuote(scanQuote(row))
}

func scanQuote(row rowScanner) (entities.Quote, error) {
	var (
		q                                    entities.Quote
		clientID, assignedTo, changeRequest  sql.NullString
		scheduledDate, scheduledTime, status sql.NullString
		bedrooms, squareFeet                 sql.NullInt64
		bathrooms                            decimal.NullDecimal
		services                             []byte
		sentAt, shareExpiresAt, approvedAt   sql.NullTime
	)
	err := row.Scan(
		&q.ID, &q.TenantID, &clientID,
		&q.ClientName, &q.ClientEmail, &q.ClientPhone,
		&q.PropertyType, &q.PropertyAddress, &q.ServiceType,
		&bedrooms, &bathrooms, &squareFeet, &services, &q.Frequency,
		&q.Prices.BasePrice, &q.Prices.AddonsPrice, &q.Prices.DiscountPercent, &q.Prices.DiscountAmount,
		&q.Prices.TaxRate, &q.Prices.TaxAmount, &q.Prices.TotalPrice,
		&q.Notes, &status, &sentAt,
		&scheduledDate, &scheduledTime, &q.Recurring, &assignedTo,
		&q.ShareToken, &shareExpiresAt, &q.ClientApproved, &approvedAt, &changeRequest,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return entities.Quote{}, err
	}

	q.ClientID = stringPtr(clientID)
	q.Bedrooms = intPtr(bedrooms)
	if bathrooms.Valid {
		d := bathrooms.Decimal
		q.Bathrooms = &d
	}
	q.SquareFeet = intPtr(squareFeet)
	q.Services = json.RawMessage(services)
	q.Status = entities.QuoteStatus(status.String)
	q.SentAt = timePtr(sentAt)
	q.ScheduledDate = stringPtr(scheduledDate)
	q.ScheduledTime = stringPtr(scheduledTime)
	q.AssignedTo = stringPtr(assignedTo)
	q.ShareExpiresAt = timePtr(shareExpiresAt)
	q.ClientApprovedAt = timePtr(approvedAt)
	q.ChangeRequest = stringPtr(changeRequest)
	q.CreatedAt = q.CreatedAt.UTC()
	q.UpdatedAt = q.UpdatedAt.UTC()
	return q, nil
}

func optionalQuote(q entities.Quote, err error) (entities.Quote, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quote{}, nil
	}
	return q, err
}

func appliedQuote(q entities.Quote, err error) (entities.Quote, bool, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quote{}, false, nil
	}
	if err != nil {
		return entities.Quote{}, false, err
	}
	return q, true, nil
}

func blankToNull(p *string) sql.NullString {
	if p == nil || *p == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}
