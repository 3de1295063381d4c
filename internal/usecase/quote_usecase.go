package usecase

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/domain/entitlement"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ShareURLFunc builds the public proposal URL for a share token.
type ShareURLFunc func(token string) string

type QuoteCreated struct {
	Quote      entities.Quote
	QuoteCount int
	Remaining  entitlement.Remaining
}

type QuoteSent struct {
	Quote     entities.Quote
	MessageID string
}

// IQuoteUseCase exposes the owner side of the quote lifecycle.
//
// Owner writes are trusted: apart from input validation they are applied
// unconditionally within the tenant's scope.
type IQuoteUseCase interface {
	Create(ctx context.Context, tenant entities.Tenant, q entities.Quote) (QuoteCreated, error)
	List(ctx context.Context, tenantID string) ([]entities.Quote, error)
	Get(ctx context.Context, tenantID, id string) (entities.Quote, error)
	Update(ctx context.Context, tenantID, id string, patch entities.QuotePatch) (entities.Quote, error)
	Delete(ctx context.Context, tenantID, id string) error
	Send(ctx context.Context, tenant entities.Tenant, id string) (QuoteSent, error)

	ListSchedule(ctx context.Context, tenantID, startDate, endDate string) ([]entities.Quote, error)
	Schedule(ctx context.Context, tenantID, id string, s entities.Schedule) (entities.Quote, error)
	Unschedule(ctx context.Context, tenantID, id string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status entities.QuoteStatus) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo         interfaces.IQuoteRepository
	entitlements IEntitlementUseCase
	mailer       interfaces.IMailer
	shareURL     ShareURLFunc
	log          *zap.SugaredLogger
	now          func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, entitlements IEntitlementUseCase, mailer interfaces.IMailer, shareURL ShareURLFunc, log *zap.SugaredLogger) *QuoteUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &QuoteUseCase{
		repo:         repo,
		entitlements: entitlements,
		mailer:       mailer,
		shareURL:     shareURL,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create enforces the free-tier quota before inserting.
//
// The check and the insert are not atomic: two concurrent creates at count
// limit-1 may both pass. On DynamoDB the count also reads an eventually
// consistent index, so a create issued right after another may see the older
// count. The limit is soft.
func (u *QuoteUseCase) Create(ctx context.Context, tenant entities.Tenant, q entities.Quote) (QuoteCreated, error) {
	if q.Status == "" {
		q.Status = entities.QuoteStatusDraft
	}
	if !q.Status.Valid() {
		return QuoteCreated{}, ErrInvalidQuoteStatus
	}
	if err := validatePrices(q.Prices); err != nil {
		return QuoteCreated{}, err
	}
	if q.ScheduledDate != nil {
		clock, err := validateSlot(*q.ScheduledDate, q.ScheduledTime)
		if err != nil {
			return QuoteCreated{}, err
		}
		q.ScheduledTime = clock
	}

	quota, err := u.entitlements.CanCreateQuote(ctx, tenant)
	if err != nil {
		return QuoteCreated{}, err
	}
	if !quota.Allowed {
		u.log.Infow("[quote][usecase] create denied by quota", "tenant_id", tenant.ID, "quote_count", quota.QuoteCount)
		return QuoteCreated{}, &QuotaExceededError{QuoteCount: quota.QuoteCount, Limit: entitlement.FreeQuoteLimit}
	}

	now := u.now()
	q.ID = uuid.NewString()
	q.TenantID = tenant.ID
	q.ShareToken = uuid.NewString()
	q.ShareExpiresAt = nil
	q.ClientApproved = false
	q.ClientApprovedAt = nil
	q.ChangeRequest = nil
	q.SentAt = nil
	if len(q.Services) == 0 {
		q.Services = json.RawMessage("[]")
	}
	if q.Recurring == "" {
		q.Recurring = entities.RecurringNone
	}
	q.CreatedAt = now
	q.UpdatedAt = now

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return QuoteCreated{}, errors.Wrap(err, "create quote")
	}

	// The recount may lag the insert; never report fewer quotes than the
	// pre-create count plus the one just written.
	count, err := u.repo.CountByTenant(ctx, tenant.ID)
	if err != nil {
		u.log.Warnw("[quote][usecase] recount after create failed", "tenant_id", tenant.ID, "error", err)
	}
	count = max(count, quota.QuoteCount+1)
	return QuoteCreated{
		Quote:      created,
		QuoteCount: count,
		Remaining:  entitlement.QuoteCreation(tenant.SubscriptionStatus, count).Remaining,
	}, nil
}

func (u *QuoteUseCase) List(ctx context.Context, tenantID string) ([]entities.Quote, error) {
	return u.repo.ListByTenant(ctx, tenantID)
}

func (u *QuoteUseCase) Get(ctx context.Context, tenantID, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// Update applies a partial update. Fields absent from the patch keep their value.
func (u *QuoteUseCase) Update(ctx context.Context, tenantID, id string, patch entities.QuotePatch) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	for _, v := range patch.Prices() {
		if v.IsNegative() {
			return entities.Quote{}, ErrNegativePrice
		}
	}
	if patch.ScheduledDate != nil {
		if err := validateDate(*patch.ScheduledDate); err != nil {
			return entities.Quote{}, err
		}
	}
	clock, err := canonicalTime(patch.ScheduledTime)
	if err != nil {
		return entities.Quote{}, err
	}
	patch.ScheduledTime = clock
	return u.found(u.repo.Update(ctx, tenantID, id, patch))
}

func (u *QuoteUseCase) Delete(ctx context.Context, tenantID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	ok, err := u.repo.Delete(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrQuoteNotFound
	}
	return nil
}

// Send emails the quote with its share link and only then marks it sent.
// A failed dispatch leaves the quote untouched.
func (u *QuoteUseCase) Send(ctx context.Context, tenant entities.Tenant, id string) (QuoteSent, error) {
	q, err := u.Get(ctx, tenant.ID, id)
	if err != nil {
		return QuoteSent{}, err
	}
	if strings.TrimSpace(q.ClientEmail) == "" {
		return QuoteSent{}, ErrClientEmailRequired
	}

	msgID, err := u.mailer.SendQuote(ctx, interfaces.QuoteEmail{
		Quote:    q,
		Sender:   tenant,
		ShareURL: u.shareURL(q.ShareToken),
	})
	if err != nil {
		u.log.Errorw("[quote][usecase] send email failed", "quote_id", q.ID, "error", err)
		return QuoteSent{}, errors.Mark(errors.Wrap(err, "send quote email"), ErrQuoteEmailFailed)
	}

	sent, err := u.found(u.repo.MarkSent(ctx, tenant.ID, q.ID, u.now()))
	if err != nil {
		return QuoteSent{}, err
	}
	u.log.Infow("[quote][usecase] quote sent", "quote_id", q.ID, "message_id", msgID)
	return QuoteSent{Quote: sent, MessageID: msgID}, nil
}

func (u *QuoteUseCase) ListSchedule(ctx context.Context, tenantID, startDate, endDate string) ([]entities.Quote, error) {
	startDate, endDate = strings.TrimSpace(startDate), strings.TrimSpace(endDate)
	if startDate == "" || endDate == "" {
		return nil, ErrScheduleRangeRequired
	}
	if err := validateDate(startDate); err != nil {
		return nil, err
	}
	if err := validateDate(endDate); err != nil {
		return nil, err
	}
	return u.repo.ListScheduled(ctx, tenantID, startDate, endDate)
}

// Schedule promotes draft quotes to scheduled; other statuses are preserved
// while the slot fields are always written.
func (u *QuoteUseCase) Schedule(ctx context.Context, tenantID, id string, s entities.Schedule) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	s.Date = strings.TrimSpace(s.Date)
	if s.Date == "" {
		return entities.Quote{}, ErrScheduleDateRequired
	}
	clock, err := validateSlot(s.Date, s.Time)
	if err != nil {
		return entities.Quote{}, err
	}
	s.Time = clock
	if s.Recurring == "" {
		s.Recurring = entities.RecurringNone
	}
	return u.found(u.repo.Schedule(ctx, tenantID, id, s))
}

func (u *QuoteUseCase) Unschedule(ctx context.Context, tenantID, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	return u.found(u.repo.Unschedule(ctx, tenantID, id))
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, tenantID, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	return u.found(u.repo.UpdateStatus(ctx, tenantID, id, status))
}

func (u *QuoteUseCase) found(q entities.Quote, err error) (entities.Quote, error) {
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func validatePrices(p entities.PriceBreakdown) error {
	for _, v := range []decimal.Decimal{p.BasePrice, p.AddonsPrice, p.DiscountPercent, p.DiscountAmount, p.TaxRate, p.TaxAmount, p.TotalPrice} {
		if v.IsNegative() {
			return ErrNegativePrice
		}
	}
	return nil
}

// validateSlot checks the date and returns the canonical form of clock.
func validateSlot(date string, clock *string) (*string, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return canonicalTime(clock)
}

func validateDate(s string) error {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return ErrInvalidScheduleDate
	}
	return nil
}

// canonicalTime rewrites a wall-clock time to HH:MM:SS. Nil and empty
// values pass through unchanged.
func canonicalTime(s *string) (*string, error) {
	if s == nil || *s == "" {
		return s, nil
	}
	c, ok := entities.CanonicalTime(strings.TrimSpace(*s))
	if !ok {
		return nil, ErrInvalidScheduleTime
	}
	return &c, nil
}
