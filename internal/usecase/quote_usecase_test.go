package usecase

import (
	"context"
	"testing"
	"time"

	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/domain/entitlement"
	"cleanlyquote/internal/usecase/interfaces"
	mock_interfaces "cleanlyquote/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func testShareURL(token string) string { return "https://example.test/proposal/" + token }

type quoteFixture struct {
	repo   *mock_interfaces.MockIQuoteRepository
	mailer *mock_interfaces.MockIMailer
	uc     *QuoteUseCase
}

func newQuoteFixture(t *testing.T) quoteFixture {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	mailer := mock_interfaces.NewMockIMailer(ctrl)
	uc := NewQuoteUseCase(repo, NewEntitlementUseCase(repo), mailer, testShareURL, nil)
	uc.now = func() time.Time { return fixedNow }
	return quoteFixture{repo: repo, mailer: mailer, uc: uc}
}

func strPtr(s string) *string { return &s }

func TestQuoteUseCase_Create(t *testing.T) {
	freeTenant := entities.Tenant{ID: "t-1", SubscriptionStatus: entities.SubscriptionStatusFree}

	t.Run("quota exhausted", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.repo.EXPECT().CountByTenant(gomock.Any(), "t-1").Return(entitlement.FreeQuoteLimit, nil)

		_, err := f.uc.Create(context.Background(), freeTenant, entities.Quote{ClientName: "Ann"})
		if !errors.Is(err, ErrUpgradeRequired) {
			t.Fatalf("expected ErrUpgradeRequired, got %v", err)
		}
		var qe *QuotaExceededError
		if !errors.As(err, &qe) || qe.QuoteCount != 3 || qe.Limit != 3 {
			t.Fatalf("expected quota details, got %+v", qe)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		f := newQuoteFixture(t)
		_, err := f.uc.Create(context.Background(), freeTenant, entities.Quote{Status: "archived"})
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		f := newQuoteFixture(t)
		q := entities.Quote{Prices: entities.PriceBreakdown{TotalPrice: decimal.RequireFromString("-1")}}
		_, err := f.uc.Create(context.Background(), freeTenant, q)
		if !errors.Is(err, ErrNegativePrice) {
			t.Fatalf("expected ErrNegativePrice, got %v", err)
		}
	})

	t.Run("count failure fails closed", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.repo.EXPECT().CountByTenant(gomock.Any(), "t-1").Return(0, errors.New("db"))

		_, err := f.uc.Create(context.Background(), freeTenant, entities.Quote{})
		if !errors.Is(err, ErrEntitlementUnavailable) {
			t.Fatalf("expected ErrEntitlementUnavailable, got %v", err)
		}
	})

	t.Run("success defaults", func(t *testing.T) {
		f := newQuoteFixture(t)
		gomock.InOrder(
			f.repo.EXPECT().CountByTenant(gomock.Any(), "t-1").Return(2, nil),
			f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
				func(_ context.Context, q entities.Quote) (entities.Quote, error) {
					if q.ID == "" || q.TenantID != "t-1" || q.Status != entities.QuoteStatusDraft {
						t.Fatalf("unexpected quote: %+v", q)
					}
					if _, err := uuid.Parse(q.ShareToken); err != nil {
						t.Fatalf("expected uuid share token, got %q", q.ShareToken)
					}
					if q.Recurring != entities.RecurringNone || string(q.Services) != "[]" {
						t.Fatalf("expected defaults, got %+v", q)
					}
					if !q.CreatedAt.Equal(fixedNow) {
						t.Fatalf("expected fixed clock timestamps")
					}
					return q, nil
				},
			),
			f.repo.EXPECT().CountByTenant(gomock.Any(), "t-1").Return(3, nil),
		)

		res, err := f.uc.Create(context.Background(), freeTenant, entities.Quote{ClientName: "Ann", ShareToken: "forged"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.QuoteCount != 3 || res.Remaining.Unlimited || res.Remaining.Count != 0 {
			t.Fatalf("unexpected counters: %+v", res)
		}
		if res.Quote.ShareToken == "forged" {
			t.Fatalf("share token must be generated server side")
		}
	})

	t.Run("active tenant keeps supplied status", func(t *testing.T) {
		f := newQuoteFixture(t)
		active := entities.Tenant{ID: "t-2", SubscriptionStatus: entities.SubscriptionStatusActive}
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusSent {
					t.Fatalf("expected sent status, got %s", q.Status)
				}
				return q, nil
			},
		)
		f.repo.EXPECT().CountByTenant(gomock.Any(), "t-2").Return(40, nil)

		res, err := f.uc.Create(context.Background(), active, entities.Quote{Status: entities.QuoteStatusSent})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Remaining.Unlimited || res.QuoteCount != 40 {
			t.Fatalf("unexpected counters: %+v", res)
		}
	})

	t.Run("lagging recount still counts the new quote", func(t *testing.T) {
		f := newQuoteFixture(t)
		gomock.InOrder(
			f.repo.EXPECT().CountByTenant(gomock.Any(), "t-1").Return(2, nil),
			f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil }),
			f.repo.EXPECT().CountByTenant(gomock.Any(), "t-1").Return(2, nil),
		)

		res, err := f.uc.Create(context.Background(), freeTenant, entities.Quote{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.QuoteCount != 3 || res.Remaining.Unlimited || res.Remaining.Count != 0 {
			t.Fatalf("expected count 3 and none remaining, got %+v", res)
		}
	})

	t.Run("scheduled time is canonicalized", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.repo.EXPECT().CountByTenant(gomock.Any(), "t-1").Return(0, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ScheduledTime == nil || *q.ScheduledTime != "09:00:00" {
					t.Fatalf("expected 09:00:00, got %v", q.ScheduledTime)
				}
				return q, nil
			},
		)
		f.repo.EXPECT().CountByTenant(gomock.Any(), "t-1").Return(1, nil)

		_, err := f.uc.Create(context.Background(), freeTenant, entities.Quote{ScheduledDate: strPtr("2026-03-12"), ScheduledTime: strPtr("9:00")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("recount failure still succeeds", func(t *testing.T) {
		f := newQuoteFixture(t)
		gomock.InOrder(
			f.repo.EXPECT().CountByTenant(gomock.Any(), "t-1").Return(1, nil),
			f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil }),
			f.repo.EXPECT().CountByTenant(gomock.Any(), "t-1").Return(0, errors.New("db")),
		)

		res, err := f.uc.Create(context.Background(), freeTenant, entities.Quote{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.QuoteCount != 2 || res.Remaining.Count != 1 {
			t.Fatalf("expected inferred count, got %+v", res)
		}
	})
}

func TestQuoteUseCase_GetUpdateDelete(t *testing.T) {
	t.Run("get other tenant is not found", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "t-1", "q-9").Return(entities.Quote{}, nil)

		_, err := f.uc.Get(context.Background(), "t-1", "q-9")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("get blank id", func(t *testing.T) {
		f := newQuoteFixture(t)
		_, err := f.uc.Get(context.Background(), "t-1", "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("update rejects invalid status", func(t *testing.T) {
		f := newQuoteFixture(t)
		bad := entities.QuoteStatus("paid")
		_, err := f.uc.Update(context.Background(), "t-1", "q-1", entities.QuotePatch{Status: &bad})
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("update rejects negative price", func(t *testing.T) {
		f := newQuoteFixture(t)
		neg := decimal.RequireFromString("-0.01")
		_, err := f.uc.Update(context.Background(), "t-1", "q-1", entities.QuotePatch{TaxAmount: &neg})
		if !errors.Is(err, ErrNegativePrice) {
			t.Fatalf("expected ErrNegativePrice, got %v", err)
		}
	})

	t.Run("update passes patch through", func(t *testing.T) {
		f := newQuoteFixture(t)
		base := decimal.RequireFromString("120.50")
		patch := entities.QuotePatch{BasePrice: &base, Notes: strPtr("gate code 1234")}
		f.repo.EXPECT().Update(gomock.Any(), "t-1", "q-1", patch).Return(entities.Quote{ID: "q-1"}, nil)

		q, err := f.uc.Update(context.Background(), "t-1", "q-1", patch)
		if err != nil || q.ID != "q-1" {
			t.Fatalf("unexpected result: %+v err=%v", q, err)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.repo.EXPECT().Delete(gomock.Any(), "t-1", "q-1").Return(false, nil)

		if err := f.uc.Delete(context.Background(), "t-1", "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_Send(t *testing.T) {
	tenant := entities.Tenant{ID: "t-1", Email: "owner@example.com", BusinessName: "Sparkle"}

	t.Run("missing client email", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "t-1", "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		_, err := f.uc.Send(context.Background(), tenant, "q-1")
		if !errors.Is(err, ErrClientEmailRequired) {
			t.Fatalf("expected ErrClientEmailRequired, got %v", err)
		}
	})

	t.Run("email failure leaves quote untouched", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "t-1", "q-1").Return(entities.Quote{ID: "q-1", ClientEmail: "c@example.com", ShareToken: "tok"}, nil)
		f.mailer.EXPECT().SendQuote(gomock.Any(), gomock.Any()).Return("", errors.New("provider down"))

		_, err := f.uc.Send(context.Background(), tenant, "q-1")
		if !errors.Is(err, ErrQuoteEmailFailed) {
			t.Fatalf("expected ErrQuoteEmailFailed, got %v", err)
		}
	})

	t.Run("success marks sent", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "t-1", "q-1").Return(entities.Quote{ID: "q-1", ClientEmail: "c@example.com", ShareToken: "tok"}, nil)
		f.mailer.EXPECT().SendQuote(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg interfaces.QuoteEmail) (string, error) {
				if msg.ShareURL != "https://example.test/proposal/tok" || msg.Sender.ID != "t-1" {
					t.Fatalf("unexpected email: %+v", msg)
				}
				return "msg-1", nil
			},
		)
		f.repo.EXPECT().MarkSent(gomock.Any(), "t-1", "q-1", fixedNow).Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)

		res, err := f.uc.Send(context.Background(), tenant, "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MessageID != "msg-1" || res.Quote.Status != entities.QuoteStatusSent {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestQuoteUseCase_Scheduling(t *testing.T) {
	t.Run("schedule requires date", func(t *testing.T) {
		f := newQuoteFixture(t)
		_, err := f.uc.Schedule(context.Background(), "t-1", "q-1", entities.Schedule{})
		if !errors.Is(err, ErrScheduleDateRequired) {
			t.Fatalf("expected ErrScheduleDateRequired, got %v", err)
		}
	})

	t.Run("schedule rejects malformed date", func(t *testing.T) {
		f := newQuoteFixture(t)
		_, err := f.uc.Schedule(context.Background(), "t-1", "q-1", entities.Schedule{Date: "03/10/2026"})
		if !errors.Is(err, ErrInvalidScheduleDate) {
			t.Fatalf("expected ErrInvalidScheduleDate, got %v", err)
		}
	})

	t.Run("schedule rejects malformed time", func(t *testing.T) {
		f := newQuoteFixture(t)
		_, err := f.uc.Schedule(context.Background(), "t-1", "q-1", entities.Schedule{Date: "2026-03-10", Time: strPtr("9am")})
		if !errors.Is(err, ErrInvalidScheduleTime) {
			t.Fatalf("expected ErrInvalidScheduleTime, got %v", err)
		}
	})

	t.Run("schedule defaults recurring", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.repo.EXPECT().Schedule(gomock.Any(), "t-1", "q-1", entities.Schedule{Date: "2026-03-10", Time: strPtr("09:30:00"), Recurring: entities.RecurringNone}).
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusScheduled}, nil)

		q, err := f.uc.Schedule(context.Background(), "t-1", "q-1", entities.Schedule{Date: "2026-03-10", Time: strPtr("09:30")})
		if err != nil || q.Status != entities.QuoteStatusScheduled {
			t.Fatalf("unexpected result: %+v err=%v", q, err)
		}
	})

	t.Run("update canonicalizes time", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.repo.EXPECT().Update(gomock.Any(), "t-1", "q-1", entities.QuotePatch{ScheduledTime: strPtr("07:05:00")}).
			Return(entities.Quote{ID: "q-1"}, nil)

		if _, err := f.uc.Update(context.Background(), "t-1", "q-1", entities.QuotePatch{ScheduledTime: strPtr("7:05")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unschedule missing", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.repo.EXPECT().Unschedule(gomock.Any(), "t-1", "q-1").Return(entities.Quote{}, nil)

		_, err := f.uc.Unschedule(context.Background(), "t-1", "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("status update validates", func(t *testing.T) {
		f := newQuoteFixture(t)
		_, err := f.uc.UpdateStatus(context.Background(), "t-1", "q-1", "done")
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("list schedule needs range", func(t *testing.T) {
		f := newQuoteFixture(t)
		_, err := f.uc.ListSchedule(context.Background(), "t-1", "2026-03-01", "")
		if !errors.Is(err, ErrScheduleRangeRequired) {
			t.Fatalf("expected ErrScheduleRangeRequired, got %v", err)
		}
	})

	t.Run("list schedule", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.repo.EXPECT().ListScheduled(gomock.Any(), "t-1", "2026-03-01", "2026-03-31").Return([]entities.Quote{{ID: "q-1"}}, nil)

		jobs, err := f.uc.ListSchedule(context.Background(), "t-1", "2026-03-01", "2026-03-31")
		if err != nil || len(jobs) != 1 {
			t.Fatalf("unexpected result: %+v err=%v", jobs, err)
		}
	})
}
