package usecase

import (
	"context"
	"testing"
	"time"

	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	mock_interfaces "cleanlyquote/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	tenants  *mock_interfaces.MockITenantRepository
	tokens   *mock_interfaces.MockITokenIssuer
	quotes   *mock_interfaces.MockIQuoteRepository
	mailer   *mock_interfaces.MockIMailer
	notifier *mock_interfaces.MockINotifier
	uc       *AuthUseCase
}

func newAuthFixture(t *testing.T) authFixture {
	ctrl := gomock.NewController(t)
	f := authFixture{
		tenants:  mock_interfaces.NewMockITenantRepository(ctrl),
		tokens:   mock_interfaces.NewMockITokenIssuer(ctrl),
		quotes:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		mailer:   mock_interfaces.NewMockIMailer(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
	}
	f.uc = NewAuthUseCase(f.tenants, f.tokens, NewEntitlementUseCase(f.quotes), f.mailer, f.notifier, nil)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func TestAuthUseCase_Signup(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		f := newAuthFixture(t)
		if _, err := f.uc.Signup(context.Background(), SignupInput{Email: "a@example.com"}); !errors.Is(err, ErrCredentialsRequired) {
			t.Fatalf("expected ErrCredentialsRequired, got %v", err)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tenants.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(entities.Tenant{ID: "t-1"}, nil)

		_, err := f.uc.Signup(context.Background(), SignupInput{Email: " A@Example.com ", Password: "secret"})
		if !errors.Is(err, ErrEmailAlreadyRegistered) {
			t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
		}
	})

	t.Run("email taken by concurrent signup", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tenants.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(entities.Tenant{}, nil)
		f.tenants.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Tenant{}, interfaces.ErrEmailAlreadyRegistered)

		_, err := f.uc.Signup(context.Background(), SignupInput{Email: "a@example.com", Password: "secret"})
		if !errors.Is(err, ErrEmailAlreadyRegistered) {
			t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
		}
	})

	t.Run("success sends welcome in background", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tenants.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(entities.Tenant{}, nil)
		f.tenants.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tn entities.Tenant) (entities.Tenant, error) {
				if tn.Email != "a@example.com" || tn.SubscriptionStatus != entities.SubscriptionStatusFree || tn.Role != entities.TenantRoleOwner {
					t.Fatalf("unexpected tenant: %+v", tn)
				}
				if bcrypt.CompareHashAndPassword([]byte(tn.PasswordHash), []byte("secret")) != nil {
					t.Fatalf("expected bcrypt hash of the password")
				}
				return tn, nil
			},
		)
		f.tokens.EXPECT().Issue(gomock.Any()).Return("jwt", nil)
		f.notifier.EXPECT().Dispatch("welcome-email", gomock.Any()).Do(runInline)
		f.mailer.EXPECT().SendWelcome(gomock.Any(), gomock.Any()).Return("msg", nil)

		res, err := f.uc.Signup(context.Background(), SignupInput{Email: "a@example.com", Password: "secret", Name: "Ann"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "jwt" || res.Tenant.ID == "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tenants.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(entities.Tenant{}, nil)

		if _, err := f.uc.Login(context.Background(), "a@example.com", "secret"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tenants.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(entities.Tenant{ID: "t-1", PasswordHash: string(hash)}, nil)

		if _, err := f.uc.Login(context.Background(), "a@example.com", "nope"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tenants.EXPECT().GetByEmail(gomock.Any(), "a@example.com").Return(entities.Tenant{ID: "t-1", PasswordHash: string(hash)}, nil)
		f.tokens.EXPECT().Issue("t-1").Return("jwt", nil)

		res, err := f.uc.Login(context.Background(), "A@example.com", "secret")
		if err != nil || res.Token != "jwt" {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	t.Run("bad token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Verify("garbage").Return("", errors.New("malformed"))

		if _, err := f.uc.Authenticate(context.Background(), "garbage"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("tenant deleted", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Verify("jwt").Return("t-1", nil)
		f.tenants.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Tenant{}, nil)

		if _, err := f.uc.Authenticate(context.Background(), "jwt"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("me reports quota", func(t *testing.T) {
		f := newAuthFixture(t)
		f.quotes.EXPECT().CountByTenant(gomock.Any(), "t-1").Return(2, nil)

		p, err := f.uc.Me(context.Background(), entities.Tenant{ID: "t-1", SubscriptionStatus: entities.SubscriptionStatusFree})
		if err != nil || p.Quota.Remaining.Count != 1 {
			t.Fatalf("unexpected profile: %+v err=%v", p, err)
		}
	})
}
