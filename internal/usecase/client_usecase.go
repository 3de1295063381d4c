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

// IClientUseCase manages the tenant's client address book.
type IClientUseCase interface {
	List(ctx context.Context, tenantID string) ([]entities.Client, error)
	Get(ctx context.Context, tenantID, id string) (entities.Client, error)
	Create(ctx context.Context, tenantID string, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, tenantID, id string, patch entities.ClientPatch) (entities.Client, error)
	// Delete removes the client and detaches it from the tenant's quotes.
	Delete(ctx context.Context, tenantID, id string) error
	ListQuotes(ctx context.Context, tenantID, id string) ([]entities.Quote, error)
}

type ClientUseCase struct {
	clients interfaces.IClientRepository
	quotes  interfaces.IQuoteRepository
	log     *zap.SugaredLogger
	now     func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(clients interfaces.IClientRepository, quotes interfaces.IQuoteRepository, log *zap.SugaredLogger) *ClientUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ClientUseCase{
		clients: clients,
		quotes:  quotes,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *ClientUseCase) List(ctx context.Context, tenantID string) ([]entities.Client, error) {
	return u.clients.ListByTenant(ctx, tenantID)
}

func (u *ClientUseCase) Get(ctx context.Context, tenantID, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidID
	}
	return u.found(u.clients.GetByID(ctx, tenantID, id))
}

func (u *ClientUseCase) Create(ctx context.Context, tenantID string, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Client{}, ErrClientNameRequired
	}
	now := u.now()
	c.ID = uuid.NewString()
	c.TenantID = tenantID
	c.Email = blankToNil(c.Email)
	c.Phone = blankToNil(c.Phone)
	c.Address = blankToNil(c.Address)
	c.Notes = blankToNil(c.Notes)
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.clients.Create(ctx, c)
	if err != nil {
		return entities.Client{}, errors.Wrap(err, "create client")
	}
	return created, nil
}

func (u *ClientUseCase) Update(ctx context.Context, tenantID, id string, patch entities.ClientPatch) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidID
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.Client{}, ErrClientNameRequired
		}
		patch.Name = &name
	}
	return u.found(u.clients.Update(ctx, tenantID, id, patch))
}

// Delete unlinks quotes first so a failure never leaves quotes pointing at a
// deleted client.
func (u *ClientUseCase) Delete(ctx context.Context, tenantID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	if _, err := u.Get(ctx, tenantID, id); err != nil {
		return err
	}
	if err := u.quotes.ClearReference(ctx, tenantID, entities.QuoteRefClient, id); err != nil {
		return errors.Wrap(err, "unlink client quotes")
	}
	ok, err := u.clients.Delete(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrClientNotFound
	}
	u.log.Infow("[client][usecase] client deleted", "tenant_id", tenantID, "client_id", id)
	return nil
}

func (u *ClientUseCase) ListQuotes(ctx context.Context, tenantID, id string) ([]entities.Quote, error) {
	if _, err := u.Get(ctx, tenantID, id); err != nil {
		return nil, err
	}
	return u.quotes.ListByReference(ctx, tenantID, entities.QuoteRefClient, strings.TrimSpace(id))
}

func (u *ClientUseCase) found(c entities.Client, err error) (entities.Client, error) {
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
