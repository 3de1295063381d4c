package usecase

import (
	"context"
	"testing"
	"time"

	"cleanlyquote/internal/domain/entities"
	mock_interfaces "cleanlyquote/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

type shareFixture struct {
	quotes  *mock_interfaces.MockIQuoteRepository
	tenants *mock_interfaces.MockITenantRepository
	uc      *ShareLinkUseCase
}

func newShareFixture(t *testing.T) shareFixture {
	ctrl := gomock.NewController(t)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	tenants := mock_interfaces.NewMockITenantRepository(ctrl)
	uc := NewShareLinkUseCase(quotes, tenants, testShareURL, nil)
	uc.now = func() time.Time { return fixedNow }
	return shareFixture{quotes: quotes, tenants: tenants, uc: uc}
}

func TestShareLinkUseCase_Links(t *testing.T) {
	t.Run("get link", func(t *testing.T) {
		f := newShareFixture(t)
		f.quotes.EXPECT().GetByID(gomock.Any(), "t-1", "q-1").Return(entities.Quote{ID: "q-1", ShareToken: "tok"}, nil)

		link, err := f.uc.GetLink(context.Background(), "t-1", "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link.Token != "tok" || link.URL != "https://example.test/proposal/tok" || link.ExpiresAt != nil {
			t.Fatalf("unexpected link: %+v", link)
		}
	})

	t.Run("get link of foreign quote", func(t *testing.T) {
		f := newShareFixture(t)
		f.quotes.EXPECT().GetByID(gomock.Any(), "t-1", "q-1").Return(entities.Quote{}, nil)

		if _, err := f.uc.GetLink(context.Background(), "t-1", "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("regenerate with expiry", func(t *testing.T) {
		f := newShareFixture(t)
		days := 7
		f.quotes.EXPECT().RotateShareToken(gomock.Any(), "t-1", "q-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _, id, token string, expiresAt *time.Time) (entities.Quote, error) {
				if _, err := uuid.Parse(token); err != nil {
					t.Fatalf("expected uuid token, got %q", token)
				}
				if expiresAt == nil || !expiresAt.Equal(fixedNow.AddDate(0, 0, 7)) {
					t.Fatalf("unexpected expiry: %v", expiresAt)
				}
				return entities.Quote{ID: id, ShareToken: token, ShareExpiresAt: expiresAt}, nil
			},
		)

		link, err := f.uc.RegenerateLink(context.Background(), "t-1", "q-1", &days)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link.ExpiresAt == nil {
			t.Fatalf("expected expiry on link")
		}
	})

	t.Run("regenerate without expiry", func(t *testing.T) {
		f := newShareFixture(t)
		f.quotes.EXPECT().RotateShareToken(gomock.Any(), "t-1", "q-1", gomock.Any(), gomock.Nil()).
			Return(entities.Quote{ID: "q-1", ShareToken: "new"}, nil)

		link, err := f.uc.RegenerateLink(context.Background(), "t-1", "q-1", nil)
		if err != nil || link.Token != "new" || link.ExpiresAt != nil {
			t.Fatalf("unexpected result: %+v err=%v", link, err)
		}
	})

	t.Run("regenerate with zero days never expires", func(t *testing.T) {
		f := newShareFixture(t)
		f.quotes.EXPECT().RotateShareToken(gomock.Any(), "t-1", "q-1", gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, _, id, token string, _ *time.Time) (entities.Quote, error) {
				return entities.Quote{ID: id, ShareToken: token}, nil
			})

		zero := 0
		link, err := f.uc.RegenerateLink(context.Background(), "t-1", "q-1", &zero)
		if err != nil || link.ExpiresAt != nil {
			t.Fatalf("expected a non-expiring link, got %+v err=%v", link, err)
		}
	})

	t.Run("regenerate rejects negative days", func(t *testing.T) {
		f := newShareFixture(t)
		days := -3
		if _, err := f.uc.RegenerateLink(context.Background(), "t-1", "q-1", &days); !errors.Is(err, ErrInvalidShareExpiration) {
			t.Fatalf("expected ErrInvalidShareExpiration, got %v", err)
		}
	})
}

func TestShareLinkUseCase_ResolvePublic(t *testing.T) {
	token := uuid.NewString()

	t.Run("malformed token never reaches the store", func(t *testing.T) {
		f := newShareFixture(t)
		if _, err := f.uc.ResolvePublic(context.Background(), "not-a-token"); !errors.Is(err, ErrShareLinkNotFound) {
			t.Fatalf("expected ErrShareLinkNotFound, got %v", err)
		}
	})

	t.Run("rotated token", func(t *testing.T) {
		f := newShareFixture(t)
		f.quotes.EXPECT().GetByShareToken(gomock.Any(), token).Return(entities.Quote{}, nil)

		if _, err := f.uc.ResolvePublic(context.Background(), token); !errors.Is(err, ErrShareLinkNotFound) {
			t.Fatalf("expected ErrShareLinkNotFound, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		f := newShareFixture(t)
		past := fixedNow.Add(-time.Minute)
		f.quotes.EXPECT().GetByShareToken(gomock.Any(), token).Return(entities.Quote{ID: "q-1", ShareToken: token, ShareExpiresAt: &past}, nil)

		if _, err := f.uc.ResolvePublic(context.Background(), token); !errors.Is(err, ErrShareLinkExpired) {
			t.Fatalf("expected ErrShareLinkExpired, got %v", err)
		}
	})

	t.Run("with business card", func(t *testing.T) {
		f := newShareFixture(t)
		f.quotes.EXPECT().GetByShareToken(gomock.Any(), token).Return(entities.Quote{ID: "q-1", TenantID: "t-1", ShareToken: token}, nil)
		f.tenants.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Tenant{ID: "t-1", Name: "Sam", BusinessName: "Sparkle Co", Email: "sam@example.com", BrandColor: "#123456"}, nil)

		pub, err := f.uc.ResolvePublic(context.Background(), token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pub.Business.Name != "Sparkle Co" || pub.Business.Email != "sam@example.com" || pub.Business.BrandColor != "#123456" {
			t.Fatalf("unexpected business card: %+v", pub.Business)
		}
	})
}

func TestShareLinkUseCase_Approve(t *testing.T) {
	token := uuid.NewString()

	t.Run("expired", func(t *testing.T) {
		f := newShareFixture(t)
		past := fixedNow.Add(-time.Hour)
		f.quotes.EXPECT().GetByShareToken(gomock.Any(), token).Return(entities.Quote{ID: "q-1", ShareToken: token, ShareExpiresAt: &past}, nil)

		if _, err := f.uc.Approve(context.Background(), token); !errors.Is(err, ErrShareLinkExpired) {
			t.Fatalf("expected ErrShareLinkExpired, got %v", err)
		}
	})

	t.Run("already approved", func(t *testing.T) {
		f := newShareFixture(t)
		f.quotes.EXPECT().GetByShareToken(gomock.Any(), token).Return(entities.Quote{ID: "q-1", ShareToken: token, ClientApproved: true}, nil)

		if _, err := f.uc.Approve(context.Background(), token); !errors.Is(err, ErrQuoteAlreadyApproved) {
			t.Fatalf("expected ErrQuoteAlreadyApproved, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newShareFixture(t)
		f.quotes.EXPECT().GetByShareToken(gomock.Any(), token).Return(entities.Quote{ID: "q-1", ShareToken: token}, nil)
		f.quotes.EXPECT().ApproveByShareToken(gomock.Any(), "q-1", token, fixedNow).
			Return(entities.Quote{ID: "q-1", ClientApproved: true, ClientApprovedAt: &fixedNow, Status: entities.QuoteStatusApproved}, true, nil)

		q, err := f.uc.Approve(context.Background(), token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q.ClientApproved || q.Status != entities.QuoteStatusApproved {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("lost race is a conflict", func(t *testing.T) {
		f := newShareFixture(t)
		gomock.InOrder(
			f.quotes.EXPECT().GetByShareToken(gomock.Any(), token).Return(entities.Quote{ID: "q-1", ShareToken: token}, nil),
			f.quotes.EXPECT().ApproveByShareToken(gomock.Any(), "q-1", token, fixedNow).Return(entities.Quote{}, false, nil),
			f.quotes.EXPECT().GetByShareToken(gomock.Any(), token).Return(entities.Quote{ID: "q-1", ShareToken: token, ClientApproved: true}, nil),
		)

		if _, err := f.uc.Approve(context.Background(), token); !errors.Is(err, ErrQuoteAlreadyApproved) {
			t.Fatalf("expected ErrQuoteAlreadyApproved, got %v", err)
		}
	})

	t.Run("rotated during approval", func(t *testing.T) {
		f := newShareFixture(t)
		gomock.InOrder(
			f.quotes.EXPECT().GetByShareToken(gomock.Any(), token).Return(entities.Quote{ID: "q-1", ShareToken: token}, nil),
			f.quotes.EXPECT().ApproveByShareToken(gomock.Any(), "q-1", token, fixedNow).Return(entities.Quote{}, false, nil),
			f.quotes.EXPECT().GetByShareToken(gomock.Any(), token).Return(entities.Quote{}, nil),
		)

		if _, err := f.uc.Approve(context.Background(), token); !errors.Is(err, ErrShareLinkNotFound) {
			t.Fatalf("expected ErrShareLinkNotFound, got %v", err)
		}
	})
}

func TestShareLinkUseCase_RequestChanges(t *testing.T) {
	token := uuid.NewString()

	t.Run("blank message", func(t *testing.T) {
		f := newShareFixture(t)
		if _, err := f.uc.RequestChanges(context.Background(), token, "   "); !errors.Is(err, ErrChangeMessageRequired) {
			t.Fatalf("expected ErrChangeMessageRequired, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		f := newShareFixture(t)
		past := fixedNow.Add(-time.Second)
		f.quotes.EXPECT().GetByShareToken(gomock.Any(), token).Return(entities.Quote{ID: "q-1", ShareToken: token, ShareExpiresAt: &past}, nil)

		if _, err := f.uc.RequestChanges(context.Background(), token, "move to friday"); !errors.Is(err, ErrShareLinkExpired) {
			t.Fatalf("expected ErrShareLinkExpired, got %v", err)
		}
	})

	t.Run("trims and stores", func(t *testing.T) {
		f := newShareFixture(t)
		f.quotes.EXPECT().GetByShareToken(gomock.Any(), token).Return(entities.Quote{ID: "q-1", ShareToken: token}, nil)
		f.quotes.EXPECT().RequestChangesByShareToken(gomock.Any(), "q-1", token, "move to friday", fixedNow).
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusChangesRequested}, true, nil)

		q, err := f.uc.RequestChanges(context.Background(), token, "  move to friday \n")
		if err != nil || q.Status != entities.QuoteStatusChangesRequested {
			t.Fatalf("unexpected result: %+v err=%v", q, err)
		}
	})
}
