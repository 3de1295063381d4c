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
	"golang.org/x/crypto/bcrypt"
)

const passwordHashCost = 10

const DefaultBrandColor = "#10b981"

type SignupInput struct {
	Email        string
	Password     string
	Name         string
	BusinessName string
	Phone        string
}

type AuthResult struct {
	Tenant entities.Tenant
	Token  string
}

type TenantProfile struct {
	Tenant entities.Tenant
	Quota  QuotaStatus
}

// IAuthUseCase signs tenants up and in, and resolves bearer tokens.
type IAuthUseCase interface {
	Signup(ctx context.Context, in SignupInput) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Authenticate(ctx context.Context, token string) (entities.Tenant, error)
	Me(ctx context.Context, tenant entities.Tenant) (TenantProfile, error)
}

type AuthUseCase struct {
	tenants      interfaces.ITenantRepository
	tokens       interfaces.ITokenIssuer
	entitlements IEntitlementUseCase
	mailer       interfaces.IMailer
	notifier     interfaces.INotifier
	log          *zap.SugaredLogger
	now          func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(tenants interfaces.ITenantRepository, tokens interfaces.ITokenIssuer, entitlements IEntitlementUseCase, mailer interfaces.IMailer, notifier interfaces.INotifier, log *zap.SugaredLogger) *AuthUseCase {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &AuthUseCase{
		tenants:      tenants,
		tokens:       tokens,
		entitlements: entitlements,
		mailer:       mailer,
		notifier:     notifier,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *AuthUseCase) Signup(ctx context.Context, in SignupInput) (AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return AuthResult{}, ErrCredentialsRequired
	}

	existing, err := u.tenants.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if existing.ID != "" {
		return AuthResult{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordHashCost)
	if err != nil {
		return AuthResult{}, errors.Wrap(err, "hash password")
	}

	now := u.now()
	created, err := u.tenants.Create(ctx, entities.Tenant{
		ID:                 uuid.NewString(),
		Email:              email,
		PasswordHash:       string(hash),
		Name:               strings.TrimSpace(in.Name),
		BusinessName:       strings.TrimSpace(in.BusinessName),
		Phone:              strings.TrimSpace(in.Phone),
		BrandColor:         DefaultBrandColor,
		Role:               entities.TenantRoleOwner,
		SubscriptionStatus: entities.SubscriptionStatusFree,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if errors.Is(err, interfaces.ErrEmailAlreadyRegistered) {
		return AuthResult{}, ErrEmailAlreadyRegistered
	}
	if err != nil {
		return AuthResult{}, errors.Wrap(err, "create tenant")
	}

	token, err := u.tokens.Issue(created.ID)
	if err != nil {
		return AuthResult{}, errors.Wrap(err, "issue token")
	}

	welcome := created
	u.notifier.Dispatch("welcome-email", func(ctx context.Context) error {
		_, err := u.mailer.SendWelcome(ctx, welcome)
		return err
	})
	u.log.Infow("[auth][usecase] tenant signed up", "tenant_id", created.ID)
	return AuthResult{Tenant: created, Token: token}, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrCredentialsRequired
	}
	t, err := u.tenants.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if t.ID == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := u.tokens.Issue(t.ID)
	if err != nil {
		return AuthResult{}, errors.Wrap(err, "issue token")
	}
	return AuthResult{Tenant: t, Token: token}, nil
}

// Authenticate resolves a bearer token to a freshly loaded tenant, so
// subscription changes apply to the very next request.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (entities.Tenant, error) {
	tenantID, err := u.tokens.Verify(token)
	if err != nil {
		return entities.Tenant{}, errors.Mark(err, ErrInvalidToken)
	}
	t, err := u.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return entities.Tenant{}, err
	}
	if t.ID == "" {
		return entities.Tenant{}, ErrInvalidToken
	}
	return t, nil
}

func (u *AuthUseCase) Me(ctx context.Context, tenant entities.Tenant) (TenantProfile, error) {
	quota, err := u.entitlements.Status(ctx, tenant)
	if err != nil {
		return TenantProfile{}, err
	}
	return TenantProfile{Tenant: tenant, Quota: quota}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
