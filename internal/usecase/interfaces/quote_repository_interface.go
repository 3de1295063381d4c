package interfaces

import (
	"cleanlyquote/internal/domain/entities"
	"context"
	"time"
)

// IQuoteRepository abstracts persistence for Quote (DynamoDB or Postgres).
//
// Conventions shared by every implementation:
//   - lookups and owner writes are scoped by tenant id; a quote of another
//     tenant behaves exactly like a missing one (zero Quote, nil error)
//   - public writes are conditional updates guarded by the share token, so the
//     store decides races between concurrent token holders
//   - prices are stored as exact decimals
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Quote, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Quote, error)
	CountByTenant(ctx context.Context, tenantID string) (int, error)
	ListScheduled(ctx context.Context, tenantID, startDate, endDate string) ([]entities.Quote, error)
	Update(ctx context.Context, tenantID, id string, patch entities.QuotePatch) (entities.Quote, error)
	Delete(ctx context.Context, tenantID, id string) (bool, error)

	// ListByReference returns the tenant's quotes whose ref column equals refID.
	ListByReference(ctx context.Context, tenantID string, ref entities.QuoteRef, refID string) ([]entities.Quote, error)
	// ClearReference nulls the ref column on every quote pointing at refID.
	ClearReference(ctx context.Context, tenantID string, ref entities.QuoteRef, refID string) error

	MarkSent(ctx context.Context, tenantID, id string, sentAt time.Time) (entities.Quote, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status entities.QuoteStatus) (entities.Quote, error)
	// Schedule writes the slot and promotes draft quotes to scheduled; other statuses are kept.
	Schedule(ctx context.Context, tenantID, id string, s entities.Schedule) (entities.Quote, error)
	// Unschedule clears the slot and forces status back to draft.
	Unschedule(ctx context.Context, tenantID, id string) (entities.Quote, error)

	// GetByShareToken resolves a token without tenant scoping. The result is
	// always consistent with the latest token rotation.
	GetByShareToken(ctx context.Context, token string) (entities.Quote, error)
	RotateShareToken(ctx context.Context, tenantID, id, token string, expiresAt *time.Time) (entities.Quote, error)
	// ApproveByShareToken flips client_approved only while the token still
	// matches, the quote is not approved and the link is not expired at `at`.
	// applied=false means the guard rejected the write.
	ApproveByShareToken(ctx context.Context, id, token string, at time.Time) (q entities.Quote, applied bool, err error)
	RequestChangesByShareToken(ctx context.Context, id, token, message string, at time.Time) (q entities.Quote, applied bool, err error)
}
