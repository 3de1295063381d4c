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

// ITeamUseCase manages the cleaners a tenant can assign quotes to. Access is
// gated on the paid plan at the route level.
type ITeamUseCase interface {
	List(ctx context.Context, tenantID string) ([]entities.TeamMember, error)
	Get(ctx context.Context, tenantID, id string) (entities.TeamMember, error)
	Create(ctx context.Context, tenantID string, member entities.TeamMember) (entities.TeamMember, error)
	Update(ctx context.Context, tenantID, id string, patch entities.TeamMemberPatch) (entities.TeamMember, error)
	// Delete removes the member and unassigns their quotes.
	Delete(ctx context.Context, tenantID, id string) error
	// ListJobs returns the quotes assigned to the member in schedule order.
	ListJobs(ctx context.Context, tenantID, id string) ([]entities.Quote, error)
}

type TeamUseCase struct {
	members interfaces.ITeamMemberRepository
	quotes  interfaces.IQuoteRepository
	log     *zap.SugaredLogger
	now     func() time.Time
}

var _ ITeamUseCase = (*TeamUseCase)(nil)

func NewTeamUseCase(members interfaces.ITeamMemberRepository, quotes interfaces.IQuoteRepository, log *zap.SugaredLogger) *TeamUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &TeamUseCase{
		members: members,
		quotes:  quotes,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *TeamUseCase) List(ctx context.Context, tenantID string) ([]entities.TeamMember, error) {
	return u.members.ListByTenant(ctx, tenantID)
}

func (u *TeamUseCase) Get(ctx context.Context, tenantID, id string) (entities.TeamMember, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TeamMember{}, ErrInvalidID
	}
	return u.found(u.members.GetByID(ctx, tenantID, id))
}

func (u *TeamUseCase) Create(ctx context.Context, tenantID string, m entities.TeamMember) (entities.TeamMember, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return entities.TeamMember{}, ErrTeamMemberNameRequired
	}
	m.Role = strings.TrimSpace(m.Role)
	if m.Role == "" {
		m.Role = entities.DefaultTeamRole
	}
	m.ID = uuid.NewString()
	m.TenantID = tenantID
	m.Email = blankToNil(m.Email)
	m.CreatedAt = u.now()

	created, err := u.members.Create(ctx, m)
	if err != nil {
		return entities.TeamMember{}, errors.Wrap(err, "create team member")
	}
	return created, nil
}

func (u *TeamUseCase) Update(ctx context.Context, tenantID, id string, patch entities.TeamMemberPatch) (entities.TeamMember, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TeamMember{}, ErrInvalidID
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.TeamMember{}, ErrTeamMemberNameRequired
		}
		patch.Name = &name
	}
	if patch.Role != nil && strings.TrimSpace(*patch.Role) == "" {
		patch.Role = nil
	}
	return u.found(u.members.Update(ctx, tenantID, id, patch))
}

func (u *TeamUseCase) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := u.Get(ctx, tenantID, id); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if err := u.quotes.ClearReference(ctx, tenantID, entities.QuoteRefAssignee, id); err != nil {
		return errors.Wrap(err, "unassign team member quotes")
	}
	ok, err := u.members.Delete(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTeamMemberNotFound
	}
	u.log.Infow("[team][usecase] member removed", "tenant_id", tenantID, "member_id", id)
	return nil
}

func (u *TeamUseCase) ListJobs(ctx context.Context, tenantID, id string) ([]entities.Quote, error) {
	if _, err := u.Get(ctx, tenantID, id); err != nil {
		return nil, err
	}
	jobs, err := u.quotes.ListByReference(ctx, tenantID, entities.QuoteRefAssignee, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	entities.SortBySchedule(jobs)
	return jobs, nil
}

func (u *TeamUseCase) found(m entities.TeamMember, err error) (entities.TeamMember, error) {
	if err != nil {
		return entities.TeamMember{}, err
	}
	if m.ID == "" {
		return entities.TeamMember{}, ErrTeamMemberNotFound
	}
	return m, nil
}
