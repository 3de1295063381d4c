package postgres

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const tenantColumns = `
	id, email, password_hash, name, business_name, company_display_name,
	brand_color, phone, role, subscription_status, subscription_id, stripe_customer_id,
	created_at, updated_at`

type TenantRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ interfaces.ITenantRepository = (*TenantRepository)(nil)

func NewTenantRepository(db *sql.DB) *TenantRepository {
	return &TenantRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (r *TenantRepository) Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO tenants (
			id, email, password_hash, name, business_name, company_display_name,
			brand_color, phone, role, subscription_status, subscription_id, stripe_customer_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING`+tenantColumns,
		t.ID, t.Email, t.PasswordHash, t.Name, t.BusinessName, t.CompanyDisplayName,
		t.BrandColor, t.Phone, string(t.Role), t.SubscriptionStatus, nullString(t.SubscriptionID), nullString(t.StripeCustomerID),
		t.CreatedAt.UTC(), t.UpdatedAt.UTC(),
	)
	created, err := scanTenant(row)
	if isUniqueViolation(err, "tenants_email_key") {
		return entities.Tenant{}, interfaces.ErrEmailAlreadyRegistered
	}
	return created, err
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	return optionalTenant(scanTenant(r.db.QueryRowContext(ctx, `SELECT`+tenantColumns+` FROM tenants WHERE id = $1`, id)))
}

func (r *TenantRepository) GetByEmail(ctx context.Context, email string) (entities.Tenant, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return optionalTenant(scanTenant(r.db.QueryRowContext(ctx, `SELECT`+tenantColumns+` FROM tenants WHERE lower(email) = $1`, email)))
}

func (r *TenantRepository) GetByStripeCustomerID(ctx context.Context, customerID string) (entities.Tenant, error) {
	return optionalTenant(scanTenant(r.db.QueryRowContext(ctx, `SELECT`+tenantColumns+` FROM tenants WHERE stripe_customer_id = $1`, customerID)))
}

func (r *TenantRepository) SetStripeCustomerID(ctx context.Context, id, customerID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tenants SET stripe_customer_id = $2, updated_at = $3 WHERE id = $1`,
		id, customerID, r.now())
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return errors.Newf("tenant %s not found", id)
	}
	return nil
}

func (r *TenantRepository) ApplySubscriptionByCustomerID(ctx context.Context, customerID string, change entities.SubscriptionChange) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tenants SET
			subscription_status = $2,
			subscription_id     = CASE WHEN $3::boolean THEN NULL ELSE COALESCE($4, subscription_id) END,
			updated_at          = $5
		WHERE stripe_customer_id = $1`,
		customerID, change.Status, change.ClearSubscriptionID, nullString(change.SubscriptionID), r.now())
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *TenantRepository) SetSubscriptionStatus(ctx context.Context, id, status string) (entities.Tenant, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE tenants SET subscription_status = $2, updated_at = $3 WHERE id = $1 RETURNING`+tenantColumns,
		id, status, r.now())
	return optionalTenant(scanTenant(row))
}

func scanTenant(row rowScanner) (entities.Tenant, error) {
	var (
		t                 entities.Tenant
		role              string
		subID, customerID sql.NullString
	)
	err := row.Scan(
		&t.ID, &t.Email, &t.PasswordHash, &t.Name, &t.BusinessName, &t.CompanyDisplayName,
		&t.BrandColor, &t.Phone, &role, &t.SubscriptionStatus, &subID, &customerID,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return entities.Tenant{}, err
	}
	t.Role = entities.TenantRole(role)
	t.SubscriptionID = stringPtr(subID)
	t.StripeCustomerID = stringPtr(customerID)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func optionalTenant(t entities.Tenant, err error) (entities.Tenant, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Tenant{}, nil
	}
	return t, err
}
