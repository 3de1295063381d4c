// Package postgres implements the repository interfaces on PostgreSQL
// through database/sql and lib/pq.
package postgres

import (
	"cleanlyquote/internal/domain/entities"
	"context"
	"database/sql"
	_ "embed"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

//go:embed schema.sql
var schema string

const uniqueViolation = "23505"

// Migrate creates the tables and indexes when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "apply schema")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == uniqueViolation && (constraint == "" || pqErr.Constraint == constraint)
}

// numeric renders a decimal argument as text so the column keeps its scale.
func numeric(d decimal.Decimal) string {
	return entities.DecimalText(d)
}

func numericPtr(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return numeric(*d)
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func nullTime(p *time.Time) sql.NullTime {
	if p == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: p.UTC(), Valid: true}
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func stringPtr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	s := n.String
	return &s
}

func timePtr(n sql.NullTime) *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time.UTC()
	return &t
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
