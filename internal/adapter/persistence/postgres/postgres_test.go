package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow      = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	quoteColNames = []string{
		"id", "tenant_id", "client_id",
		"client_name", "client_email", "client_phone",
		"property_type", "property_address", "service_type",
		"bedrooms", "bathrooms", "square_feet", "services", "frequency",
		"base_price", "addons_price", "discount_percent", "discount_amount",
		"tax_rate", "tax_amount", "total_price",
		"notes", "status", "sent_at",
		"scheduled_date", "scheduled_time", "recurring", "assigned_to",
		"share_token", "share_expires_at", "client_approved", "client_approved_at", "change_request",
		"created_at", "updated_at",
	}
	tenantColNames = []string{
		"id", "email", "password_hash", "name", "business_name", "company_display_name",
		"brand_color", "phone", "role", "subscription_status", "subscription_id", "stripe_customer_id",
		"created_at", "updated_at",
	}
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func quoteRow(status string, approved bool) []driver.Value {
	return []driver.Value{
		"q-1", "tenant-a", nil,
		"Dana", "dana@example.com", "",
		"house", "1 Main St", "standard",
		int64(3), []byte("2.5"), nil, []byte(`["oven"]`), "weekly",
		[]byte("120.50"), []byte("0"), []byte("10.00"), []byte("12.05"),
		[]byte("8.250"), []byte("8.95"), []byte("117.40"),
		"", status, nil,
		"2026-03-12", "09:30:00", "weekly", nil,
		"tok-1", nil, approved, nil, nil,
		fixedNow, fixedNow,
	}
}

func TestQuoteRepository_GetByIDPreservesScale(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuoteRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM quotes WHERE id = \$1 AND tenant_id = \$2`).
		WithArgs("q-1", "tenant-a").
		WillReturnRows(sqlmock.NewRows(quoteColNames).AddRow(quoteRow("draft", false)...))

	q, err := repo.GetByID(context.Background(), "tenant-a", "q-1")
	require.NoError(t, err)
	assert.Equal(t, "120.50", entities.DecimalText(q.Prices.BasePrice))
	assert.Equal(t, "8.250", entities.DecimalText(q.Prices.TaxRate))
	assert.Equal(t, "2.5", entities.DecimalText(*q.Bathrooms))
	assert.Equal(t, 3, *q.Bedrooms)
	assert.Nil(t, q.SquareFeet)
	assert.JSONEq(t, `["oven"]`, string(q.Services))
	assert.Equal(t, "09:30:00", *q.ScheduledTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepository_GetByIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuoteRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM quotes`).
		WithArgs("q-1", "tenant-b").
		WillReturnError(sql.ErrNoRows)

	q, err := repo.GetByID(context.Background(), "tenant-b", "q-1")
	require.NoError(t, err)
	assert.Empty(t, q.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepository_CreateSendsDecimalText(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuoteRepository(db)

	q := entities.Quote{
		ID: "q-1", TenantID: "tenant-a", ClientName: "Dana", ClientEmail: "dana@example.com",
		Prices: entities.PriceBreakdown{
			BasePrice:  decimal.RequireFromString("120.50"),
			TotalPrice: decimal.RequireFromString("117.40"),
		},
		Status: entities.QuoteStatusDraft, Recurring: entities.RecurringNone, ShareToken: "tok-1",
		CreatedAt: fixedNow, UpdatedAt: fixedNow,
	}

	args := make([]driver.Value, 35)
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}
	args[12] = "[]"
	args[14] = "120.50"
	args[20] = "117.40"

	mock.ExpectQuery(`INSERT INTO quotes`).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows(quoteColNames).AddRow(quoteRow("draft", false)...))

	created, err := repo.Create(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, "q-1", created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepository_ApproveRejected(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuoteRepository(db)

	mock.ExpectQuery(`UPDATE quotes SET\s+client_approved\s+= TRUE.+client_approved = FALSE.+share_expires_at >= \$3`).
		WithArgs("q-1", "tok-1", fixedNow, "approved").
		WillReturnError(sql.ErrNoRows)

	q, applied, err := repo.ApproveByShareToken(context.Background(), "q-1", "tok-1", fixedNow)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Empty(t, q.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepository_ApproveApplied(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuoteRepository(db)

	mock.ExpectQuery(`UPDATE quotes SET`).
		WithArgs("q-1", "tok-1", fixedNow, "approved").
		WillReturnRows(sqlmock.NewRows(quoteColNames).AddRow(quoteRow("approved", true)...))

	q, applied, err := repo.ApproveByShareToken(context.Background(), "q-1", "tok-1", fixedNow)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.True(t, q.ClientApproved)
	assert.Equal(t, entities.QuoteStatusApproved, q.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepository_SchedulePromotesOnlyDrafts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuoteRepository(db)
	repo.now = func() time.Time { return fixedNow }

	mock.ExpectQuery(`status\s+= CASE WHEN status = \$7 THEN \$8 ELSE status END`).
		WithArgs("q-1", "tenant-a", "2026-03-12", sql.NullString{}, "weekly", sql.NullString{}, "draft", "scheduled", fixedNow).
		WillReturnRows(sqlmock.NewRows(quoteColNames).AddRow(quoteRow("scheduled", false)...))

	q, err := repo.Schedule(context.Background(), "tenant-a", "q-1", entities.Schedule{Date: "2026-03-12", Recurring: "weekly"})
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusScheduled, q.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepository_ListScheduledOrdersByTimeColumn(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuoteRepository(db)

	mock.ExpectQuery(`scheduled_time::text.+FROM quotes\s+WHERE tenant_id = \$1 AND scheduled_date BETWEEN \$2::date AND \$3::date\s+ORDER BY scheduled_date, scheduled_time NULLS FIRST`).
		WithArgs("tenant-a", "2026-03-01", "2026-03-31").
		WillReturnRows(sqlmock.NewRows(quoteColNames).AddRow(quoteRow("scheduled", false)...))

	quotes, err := repo.ListScheduled(context.Background(), "tenant-a", "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "09:30:00", *quotes[0].ScheduledTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepository_ListByReference(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuoteRepository(db)

	mock.ExpectQuery(`FROM quotes\s+WHERE tenant_id = \$1 AND assigned_to = \$2 ORDER BY created_at DESC`).
		WithArgs("tenant-a", "m-1").
		WillReturnRows(sqlmock.NewRows(quoteColNames).AddRow(quoteRow("scheduled", false)...))

	quotes, err := repo.ListByReference(context.Background(), "tenant-a", entities.QuoteRefAssignee, "m-1")
	require.NoError(t, err)
	assert.Len(t, quotes, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepository_ClearReference(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuoteRepository(db)
	repo.now = func() time.Time { return fixedNow }

	mock.ExpectExec(`UPDATE quotes SET client_id = NULL, updated_at = \$3\s+WHERE tenant_id = \$1 AND client_id = \$2`).
		WithArgs("tenant-a", "c-1", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.ClearReference(context.Background(), "tenant-a", entities.QuoteRefClient, "c-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepository_ReferenceRejectsUnknownColumn(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuoteRepository(db)

	_, err := repo.ListByReference(context.Background(), "tenant-a", entities.QuoteRef("tenant_id"), "x")
	require.Error(t, err)
	require.Error(t, repo.ClearReference(context.Background(), "tenant-a", entities.QuoteRef("id; DROP TABLE quotes"), "x"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuoteRepository(db)

	mock.ExpectExec(`DELETE FROM quotes WHERE id = \$1 AND tenant_id = \$2`).
		WithArgs("q-1", "tenant-a").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), "tenant-a", "q-1")
	require.NoError(t, err)
	assert.False(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantRepository_CreateDuplicateEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTenantRepository(db)

	mock.ExpectQuery(`INSERT INTO tenants`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "tenants_email_key"})

	_, err := repo.Create(context.Background(), entities.Tenant{ID: "t-1", Email: "owner@example.com"})
	assert.True(t, errors.Is(err, interfaces.ErrEmailAlreadyRegistered))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantRepository_GetByEmailNormalizes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTenantRepository(db)

	mock.ExpectQuery(`WHERE lower\(email\) = \$1`).
		WithArgs("owner@example.com").
		WillReturnRows(sqlmock.NewRows(tenantColNames).AddRow(
			"t-1", "owner@example.com", "hash", "Owner", "Sparkle", "", "#10b981", "", "owner", "free", nil, nil, fixedNow, fixedNow,
		))

	tenant, err := repo.GetByEmail(context.Background(), "  Owner@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "t-1", tenant.ID)
	assert.Nil(t, tenant.StripeCustomerID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantRepository_ApplySubscriptionByCustomerID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTenantRepository(db)
	repo.now = func() time.Time { return fixedNow }

	subID := "sub_1"
	mock.ExpectExec(`UPDATE tenants SET.+WHERE stripe_customer_id = \$1`).
		WithArgs("cus_1", "active", false, sql.NullString{String: subID, Valid: true}, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE tenants SET`).
		WithArgs("cus_unknown", "canceled", true, sql.NullString{}, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 0))

	matched, err := repo.ApplySubscriptionByCustomerID(context.Background(), "cus_1", entities.SubscriptionChange{Status: "active", SubscriptionID: &subID})
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = repo.ApplySubscriptionByCustomerID(context.Background(), "cus_unknown", entities.SubscriptionChange{Status: "canceled", ClearSubscriptionID: true})
	require.NoError(t, err)
	assert.False(t, matched)
	require.NoError(t, mock.ExpectationsWereMet())
}

var checklistColNames = []string{"id", "quote_id", "template_id", "template_name", "rooms", "completed_tasks", "created_at", "updated_at"}

func TestQuoteChecklistRepository_AttachSnapshotsTemplate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuoteChecklistRepository(db)
	repo.now = func() time.Time { return fixedNow }
	repo.newID = func() string { return "c-1" }

	rooms := `[{"room":"Kitchen","tasks":["oven"]}]`
	mock.ExpectQuery(`INSERT INTO quote_checklists .+ON CONFLICT \(quote_id\) DO UPDATE SET.+template_name\s+= EXCLUDED.template_name.+rooms\s+= EXCLUDED.rooms`).
		WithArgs("c-1", "q-1", sql.NullString{String: "deep-clean", Valid: true}, sql.NullString{String: "Deep clean", Valid: true}, rooms, fixedNow).
		WillReturnRows(sqlmock.NewRows(checklistColNames).
			AddRow("c-1", "q-1", "deep-clean", "Deep clean", []byte(rooms), []byte("{}"), fixedNow, fixedNow))

	template := entities.ChecklistTemplate{
		ID: "deep-clean", Name: "Deep clean",
		Rooms: []entities.ChecklistRoom{{Room: "Kitchen", Tasks: []string{"oven"}}},
	}
	c, err := repo.Attach(context.Background(), "q-1", &template)
	require.NoError(t, err)
	assert.Equal(t, "deep-clean", *c.TemplateID)
	assert.Equal(t, "Deep clean", *c.TemplateName)
	assert.Equal(t, template.Rooms, c.Rooms)
	assert.Equal(t, []string{}, c.CompletedTasks)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteChecklistRepository_AttachBlank(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuoteChecklistRepository(db)
	repo.now = func() time.Time { return fixedNow }
	repo.newID = func() string { return "c-1" }

	mock.ExpectQuery(`INSERT INTO quote_checklists`).
		WithArgs("c-1", "q-1", sql.NullString{}, sql.NullString{}, "[]", fixedNow).
		WillReturnRows(sqlmock.NewRows(checklistColNames).
			AddRow("c-1", "q-1", nil, nil, []byte("[]"), []byte("{}"), fixedNow, fixedNow))

	c, err := repo.Attach(context.Background(), "q-1", nil)
	require.NoError(t, err)
	assert.Nil(t, c.TemplateName)
	assert.Equal(t, []entities.ChecklistRoom{}, c.Rooms)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteChecklistRepository_UpdateCompletedTasksMissing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuoteChecklistRepository(db)

	mock.ExpectQuery(`UPDATE quote_checklists SET completed_tasks`).
		WillReturnError(sql.ErrNoRows)

	c, err := repo.UpdateCompletedTasks(context.Background(), "q-1", []string{"kitchen"})
	require.NoError(t, err)
	assert.Empty(t, c.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_UpdateForeignTenant(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewClientRepository(db)
	repo.now = func() time.Time { return fixedNow }

	name := "Ann"
	mock.ExpectQuery(`UPDATE clients SET.+WHERE id = \$1 AND tenant_id = \$2`).
		WithArgs("c-1", "tenant-b", sql.NullString{String: name, Valid: true}, sql.NullString{}, sql.NullString{}, sql.NullString{}, sql.NullString{}, fixedNow).
		WillReturnError(sql.ErrNoRows)

	c, err := repo.Update(context.Background(), "tenant-b", "c-1", entities.ClientPatch{Name: &name})
	require.NoError(t, err)
	assert.Empty(t, c.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_ListByTenant(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery(`FROM clients WHERE tenant_id = \$1 ORDER BY name`).
		WithArgs("tenant-a").
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "email", "phone", "address", "notes", "created_at", "updated_at"}).
			AddRow("c-1", "tenant-a", "Ann", "ann@example.com", nil, nil, nil, fixedNow, fixedNow).
			AddRow("c-2", "tenant-a", "Bob", nil, "555", nil, "back door", fixedNow, fixedNow))

	clients, err := repo.ListByTenant(context.Background(), "tenant-a")
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "ann@example.com", *clients[0].Email)
	assert.Nil(t, clients[1].Email)
	assert.Equal(t, "back door", *clients[1].Notes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamMemberRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTeamMemberRepository(db)

	mock.ExpectExec(`DELETE FROM team_members WHERE id = \$1 AND tenant_id = \$2`).
		WithArgs("m-1", "tenant-a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), "tenant-a", "m-1")
	require.NoError(t, err)
	assert.True(t, deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChecklistTemplateRepository_UpdateKeepsRooms(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewChecklistTemplateRepository(db)
	repo.now = func() time.Time { return fixedNow }

	name := "Move out"
	mock.ExpectQuery(`rooms\s+= COALESCE\(\$4::jsonb, rooms\)`).
		WithArgs("tpl-1", "tenant-a", sql.NullString{String: name, Valid: true}, nil, fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "rooms", "created_at", "updated_at"}).
			AddRow("tpl-1", "tenant-a", name, []byte(`[{"room":"Bath","tasks":["tub"]}]`), fixedNow, fixedNow))

	tpl, err := repo.Update(context.Background(), "tenant-a", "tpl-1", entities.ChecklistTemplatePatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, []entities.ChecklistRoom{{Room: "Bath", Tasks: []string{"tub"}}}, tpl.Rooms)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS tenants`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}
