package usecase

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// IChecklistTemplateUseCase manages reusable room-by-room checklists.
type IChecklistTemplateUseCase interface {
	List(ctx context.Context, tenantID string) ([]entities.ChecklistTemplate, error)
	Get(ctx context.Context, tenantID, id string) (entities.ChecklistTemplate, error)
	Create(ctx context.Context, tenantID string, t entities.ChecklistTemplate) (entities.ChecklistTemplate, error)
	Update(ctx context.Context, tenantID, id string, patch entities.ChecklistTemplatePatch) (entities.ChecklistTemplate, error)
	// Delete leaves attached checklists intact; they keep their snapshot.
	Delete(ctx context.Context, tenantID, id string) error
}

type ChecklistTemplateUseCase struct {
	repo interfaces.IChecklistTemplateRepository
	now  func() time.Time
}

var _ IChecklistTemplateUseCase = (*ChecklistTemplateUseCase)(nil)

func NewChecklistTemplateUseCase(repo interfaces.IChecklistTemplateRepository) *ChecklistTemplateUseCase {
	return &ChecklistTemplateUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *ChecklistTemplateUseCase) List(ctx context.Context, tenantID string) ([]entities.ChecklistTemplate, error) {
	return u.repo.ListByTenant(ctx, tenantID)
}

func (u *ChecklistTemplateUseCase) Get(ctx context.Context, tenantID, id string) (entities.ChecklistTemplate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ChecklistTemplate{}, ErrInvalidID
	}
	return u.found(u.repo.GetByID(ctx, tenantID, id))
}

func (u *ChecklistTemplateUseCase) Create(ctx context.Context, tenantID string, t entities.ChecklistTemplate) (entities.ChecklistTemplate, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return entities.ChecklistTemplate{}, ErrChecklistNameRequired
	}
	now := u.now()
	t.ID = uuid.NewString()
	t.TenantID = tenantID
	t.Rooms = cleanRooms(t.Rooms)
	t.CreatedAt = now
	t.UpdatedAt = now

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return entities.ChecklistTemplate{}, errors.Wrap(err, "create checklist template")
	}
	return created, nil
}

func (u *ChecklistTemplateUseCase) Update(ctx context.Context, tenantID, id string, patch entities.ChecklistTemplatePatch) (entities.ChecklistTemplate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ChecklistTemplate{}, ErrInvalidID
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.ChecklistTemplate{}, ErrChecklistNameRequired
		}
		patch.Name = &name
	}
	if patch.Rooms != nil {
		patch.Rooms = cleanRooms(patch.Rooms)
	}
	return u.found(u.repo.Update(ctx, tenantID, id, patch))
}

func (u *ChecklistTemplateUseCase) Delete(ctx context.Context, tenantID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	ok, err := u.repo.Delete(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrChecklistTemplateNotFound
	}
	return nil
}

func (u *ChecklistTemplateUseCase) found(t entities.ChecklistTemplate, err error) (entities.ChecklistTemplate, error) {
	if err != nil {
		return entities.ChecklistTemplate{}, err
	}
	if t.ID == "" {
		return entities.ChecklistTemplate{}, ErrChecklistTemplateNotFound
	}
	return t, nil
}

// cleanRooms trims names, drops unnamed rooms and blank tasks, and never
// returns nil.
func cleanRooms(rooms []entities.ChecklistRoom) []entities.ChecklistRoom {
	out := make([]entities.ChecklistRoom, 0, len(rooms))
	for _, r := range rooms {
		r.Room = strings.TrimSpace(r.Room)
		if r.Room == "" {
			continue
		}
		r.Tasks = lo.Compact(lo.Map(r.Tasks, func(s string, _ int) string { return strings.TrimSpace(s) }))
		if r.Tasks == nil {
			r.Tasks = []string{}
		}
		out = append(out, r)
	}
	return out
}
