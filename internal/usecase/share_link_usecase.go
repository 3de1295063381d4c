package usecase

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BusinessCard is the tenant identity shown next to a public quote.
type BusinessCard struct {
	Name       string
	Email      string
	BrandColor string
}

type PublicQuote struct {
	Quote    entities.Quote
	Business BusinessCard
}

// IShareLinkUseCase manages the share token of a quote and the public,
// token-authenticated operations reachable through it.
//
// The token is the only credential on the public side. Every unknown, rotated
// or malformed token is reported as ErrShareLinkNotFound so callers cannot
// tell them apart.
type IShareLinkUseCase interface {
	GetLink(ctx context.Context, tenantID, quoteID string) (entities.ShareLink, error)
	RegenerateLink(ctx context.Context, tenantID, quoteID string, expiresInDays *int) (entities.ShareLink, error)

	ResolvePublic(ctx context.Context, token string) (PublicQuote, error)
	Approve(ctx context.Context, token string) (entities.Quote, error)
	RequestChanges(ctx context.Context, token, message string) (entities.Quote, error)
}

type ShareLinkUseCase struct {
	quotes   interfaces.IQuoteRepository
	tenants  interfaces.ITenantRepository
	shareURL ShareURLFunc
	log      *zap.SugaredLogger
	now      func() time.Time
}

var _ IShareLinkUseCase = (*ShareLinkUseCase)(nil)

func NewShareLinkUseCase(quotes interfaces.IQuoteRepository, tenants interfaces.ITenantRepository, shareURL ShareURLFunc, log *zap.SugaredLogger) *ShareLinkUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ShareLinkUseCase{
		quotes:   quotes,
		tenants:  tenants,
		shareURL: shareURL,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *ShareLinkUseCase) GetLink(ctx context.Context, tenantID, quoteID string) (entities.ShareLink, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.ShareLink{}, ErrInvalidQuoteID
	}
	q, err := u.quotes.GetByID(ctx, tenantID, quoteID)
	if err != nil {
		return entities.ShareLink{}, err
	}
	if q.ID == "" {
		return entities.ShareLink{}, ErrQuoteNotFound
	}
	return u.link(q), nil
}

// RegenerateLink rotates the token. nil or zero expiresInDays means the link
// never expires. The previous token stops resolving as soon as the write commits.
func (u *ShareLinkUseCase) RegenerateLink(ctx context.Context, tenantID, quoteID string, expiresInDays *int) (entities.ShareLink, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.ShareLink{}, ErrInvalidQuoteID
	}
	var expiresAt *time.Time
	if expiresInDays != nil && *expiresInDays != 0 {
		if *expiresInDays < 0 {
			return entities.ShareLink{}, ErrInvalidShareExpiration
		}
		at := u.now().AddDate(0, 0, *expiresInDays)
		expiresAt = &at
	}

	q, err := u.quotes.RotateShareToken(ctx, tenantID, quoteID, uuid.NewString(), expiresAt)
	if err != nil {
		return entities.ShareLink{}, err
	}
	if q.ID == "" {
		return entities.ShareLink{}, ErrQuoteNotFound
	}
	u.log.Infow("[share][usecase] share token rotated", "quote_id", q.ID, "expires_at", expiresAt)
	return u.link(q), nil
}

func (u *ShareLinkUseCase) ResolvePublic(ctx context.Context, token string) (PublicQuote, error) {
	q, err := u.resolve(ctx, token)
	if err != nil {
		return PublicQuote{}, err
	}

	owner, err := u.tenants.GetByID(ctx, q.TenantID)
	if err != nil {
		return PublicQuote{}, errors.Wrap(err, "load quote owner")
	}
	return PublicQuote{
		Quote: q,
		Business: BusinessCard{
			Name:       owner.DisplayName(),
			Email:      owner.Email,
			BrandColor: owner.BrandColor,
		},
	}, nil
}

// Approve marks the quote approved by its client. The conditional write in
// the store decides concurrent approvals: exactly one caller wins and every
// other caller gets ErrQuoteAlreadyApproved.
func (u *ShareLinkUseCase) Approve(ctx context.Context, token string) (entities.Quote, error) {
	q, err := u.resolve(ctx, token)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ClientApproved {
		return entities.Quote{}, ErrQuoteAlreadyApproved
	}

	approved, applied, err := u.quotes.ApproveByShareToken(ctx, q.ID, q.ShareToken, u.now())
	if err != nil {
		return entities.Quote{}, err
	}
	if !applied {
		return entities.Quote{}, u.classifyRejected(ctx, token, true)
	}
	u.log.Infow("[share][usecase] quote approved by client", "quote_id", approved.ID)
	return approved, nil
}

func (u *ShareLinkUseCase) RequestChanges(ctx context.Context, token, message string) (entities.Quote, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.Quote{}, ErrChangeMessageRequired
	}
	q, err := u.resolve(ctx, token)
	if err != nil {
		return entities.Quote{}, err
	}

	updated, applied, err := u.quotes.RequestChangesByShareToken(ctx, q.ID, q.ShareToken, message, u.now())
	if err != nil {
		return entities.Quote{}, err
	}
	if !applied {
		return entities.Quote{}, u.classifyRejected(ctx, token, false)
	}
	u.log.Infow("[share][usecase] change request received", "quote_id", updated.ID)
	return updated, nil
}

// resolve maps a token to a live quote: unknown tokens are NotFound and
// expired links are Gone.
func (u *ShareLinkUseCase) resolve(ctx context.Context, token string) (entities.Quote, error) {
	token = strings.TrimSpace(token)
	if _, err := uuid.Parse(token); err != nil {
		return entities.Quote{}, ErrShareLinkNotFound
	}
	q, err := u.quotes.GetByShareToken(ctx, token)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrShareLinkNotFound
	}
	if q.ShareExpired(u.now()) {
		return entities.Quote{}, ErrShareLinkExpired
	}
	return q, nil
}

// classifyRejected explains why a guarded public write did not apply, based
// on the state after the race.
func (u *ShareLinkUseCase) classifyRejected(ctx context.Context, token string, approving bool) error {
	q, err := u.resolve(ctx, token)
	if err != nil {
		return err
	}
	if approving && q.ClientApproved {
		return ErrQuoteAlreadyApproved
	}
	return ErrQuoteConcurrentUpdate
}

func (u *ShareLinkUseCase) link(q entities.Quote) entities.ShareLink {
	return entities.ShareLink{
		Token:     q.ShareToken,
		URL:       u.shareURL(q.ShareToken),
		ExpiresAt: q.ShareExpiresAt,
	}
}
