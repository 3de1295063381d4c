package repository

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"slices"
	"strings"
	"time"
)

type clientItem struct {
	ID        string  `dynamodbav:"id"`
	TenantID  string  `dynamodbav:"tenant_id"`
	Name      string  `dynamodbav:"name"`
	Email     *string `dynamodbav:"email,omitempty"`
	Phone     *string `dynamodbav:"phone,omitempty"`
	Address   *string `dynamodbav:"address,omitempty"`
	Notes     *string `dynamodbav:"notes,omitempty"`
	CreatedAt string  `dynamodbav:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at"`
}

func (c clientItem) owner() string { return c.TenantID }

// ClientDynamoRepository stores the tenant's client records.
type ClientDynamoRepository struct {
	table ownedTable[clientItem]
	now   func() time.Time
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoAPI, tables Tables) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		table: ownedTable[clientItem]{ddb: ddb, name: tables.Clients},
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := r.table.put(ctx, clientItem{
		ID:        c.ID,
		TenantID:  c.TenantID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Client, error) {
	it, ok, err := r.table.get(ctx, tenantID, id)
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.Client, error) {
	items, err := r.table.list(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(items))
	for _, it := range items {
		out = append(out, fromClientItem(it))
	}
	slices.SortStableFunc(out, func(a, b entities.Client) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, tenantID, id string, p entities.ClientPatch) (entities.Client, error) {
	u := newUpdateExpr().set("updated_at", str(formatTime(r.now())))
	setOptional(u, "name", p.Name)
	setOptional(u, "email", p.Email)
	setOptional(u, "phone", p.Phone)
	setOptional(u, "address", p.Address)
	setOptional(u, "notes", p.Notes)

	it, ok, err := r.table.update(ctx, tenantID, id, u)
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	return r.table.delete(ctx, tenantID, id)
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:        it.ID,
		TenantID:  it.TenantID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   it.Address,
		Notes:     it.Notes,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
