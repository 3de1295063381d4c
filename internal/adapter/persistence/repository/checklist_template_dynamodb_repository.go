package repository

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

type templateItem struct {
	ID        string     `dynamodbav:"id"`
	TenantID  string     `dynamodbav:"tenant_id"`
	Name      string     `dynamodbav:"name"`
	Rooms     []roomItem `dynamodbav:"rooms"`
	CreatedAt string     `dynamodbav:"created_at"`
	UpdatedAt string     `dynamodbav:"updated_at"`
}

func (t templateItem) owner() string { return t.TenantID }

type ChecklistTemplateDynamoRepository struct {
	table ownedTable[templateItem]
	now   func() time.Time
}

var _ interfaces.IChecklistTemplateRepository = (*ChecklistTemplateDynamoRepository)(nil)

func NewChecklistTemplateDynamoRepository(ddb DynamoAPI, tables Tables) *ChecklistTemplateDynamoRepository {
	return &ChecklistTemplateDynamoRepository{
		table: ownedTable[templateItem]{ddb: ddb, name: tables.ChecklistTemplates},
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *ChecklistTemplateDynamoRepository) Create(ctx context.Context, t entities.ChecklistTemplate) (entities.ChecklistTemplate, error) {
	if err := r.table.put(ctx, templateItem{
		ID:        t.ID,
		TenantID:  t.TenantID,
		Name:      t.Name,
		Rooms:     toRoomItems(t.Rooms),
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
	}); err != nil {
		return entities.ChecklistTemplate{}, err
	}
	return t, nil
}

func (r *ChecklistTemplateDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.ChecklistTemplate, error) {
	it, ok, err := r.table.get(ctx, tenantID, id)
	if err != nil || !ok {
		return entities.ChecklistTemplate{}, err
	}
	return fromTemplateItem(it), nil
}

func (r *ChecklistTemplateDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.ChecklistTemplate, error) {
	items, err := r.table.list(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ChecklistTemplate, 0, len(items))
	for _, it := range items {
		out = append(out, fromTemplateItem(it))
	}
	slices.SortStableFunc(out, func(a, b entities.ChecklistTemplate) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (r *ChecklistTemplateDynamoRepository) Update(ctx context.Context, tenantID, id string, p entities.ChecklistTemplatePatch) (entities.ChecklistTemplate, error) {
	u := newUpdateExpr().set("updated_at", str(formatTime(r.now())))
	setOptional(u, "name", p.Name)
	if p.Rooms != nil {
		rooms, err := attributevalue.Marshal(toRoomItems(p.Rooms))
		if err != nil {
			return entities.ChecklistTemplate{}, err
		}
		u.set("rooms", rooms)
	}

	it, ok, err := r.table.update(ctx, tenantID, id, u)
	if err != nil || !ok {
		return entities.ChecklistTemplate{}, err
	}
	return fromTemplateItem(it), nil
}

func (r *ChecklistTemplateDynamoRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	return r.table.delete(ctx, tenantID, id)
}

func fromTemplateItem(it templateItem) entities.ChecklistTemplate {
	return entities.ChecklistTemplate{
		ID:        it.ID,
		TenantID:  it.TenantID,
		Name:      it.Name,
		Rooms:     fromRoomItems(it.Rooms),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
