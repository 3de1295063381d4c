package usecase

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"strings"

	"go.uber.org/zap"
)

var adminAssignableStatuses = map[string]struct{}{
	entities.SubscriptionStatusFree:     {},
	entities.SubscriptionStatusActive:   {},
	entities.SubscriptionStatusPastDue:  {},
	entities.SubscriptionStatusCanceled: {},
}

// IAdminUseCase holds operations reserved to admin-role tenants.
type IAdminUseCase interface {
	// SetSubscriptionStatus overrides a tenant's entitlement without a billing event.
	SetSubscriptionStatus(ctx context.Context, actor entities.Tenant, tenantID, status string) (entities.Tenant, error)
}

type AdminUseCase struct {
	tenants interfaces.ITenantRepository
	log     *zap.SugaredLogger
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(tenants interfaces.ITenantRepository, log *zap.SugaredLogger) *AdminUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &AdminUseCase{tenants: tenants, log: log}
}

func (u *AdminUseCase) SetSubscriptionStatus(ctx context.Context, actor entities.Tenant, tenantID, status string) (entities.Tenant, error) {
	if !actor.IsAdmin() {
		return entities.Tenant{}, ErrAdminRequired
	}
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Tenant{}, ErrTenantNotFound
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if _, ok := adminAssignableStatuses[status]; !ok {
		return entities.Tenant{}, ErrInvalidSubscriptionStatus
	}

	t, err := u.tenants.SetSubscriptionStatus(ctx, tenantID, status)
	if err != nil {
		return entities.Tenant{}, err
	}
	if t.ID == "" {
		return entities.Tenant{}, ErrTenantNotFound
	}
	u.log.Infow("[admin][usecase] subscription overridden", "actor_id", actor.ID, "tenant_id", t.ID, "status", status)
	return t, nil
}
