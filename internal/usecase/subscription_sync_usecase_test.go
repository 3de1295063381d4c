package usecase

import (
	"context"
	"testing"

	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	mock_interfaces "cleanlyquote/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
)

type syncFixture struct {
	tenants  *mock_interfaces.MockITenantRepository
	mailer   *mock_interfaces.MockIMailer
	notifier *mock_interfaces.MockINotifier
	ledger   *mock_interfaces.MockIEventLedger
}

func newSyncFixture(t *testing.T) syncFixture {
	ctrl := gomock.NewController(t)
	return syncFixture{
		tenants:  mock_interfaces.NewMockITenantRepository(ctrl),
		mailer:   mock_interfaces.NewMockIMailer(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
		ledger:   mock_interfaces.NewMockIEventLedger(ctrl),
	}
}

// runInline executes dispatched tasks synchronously.
func runInline(_ string, task func(ctx context.Context) error) {
	_ = task(context.Background())
}

func checkoutEvent() entities.BillingEvent {
	return entities.BillingEvent{
		ID:             "evt_1",
		Kind:           entities.BillingEventCheckoutCompleted,
		ProviderType:   "checkout.session.completed",
		CustomerID:     "cus_1",
		SubscriptionID: "sub_1",
		AmountTotal:    4900,
		Currency:       "usd",
	}
}

func TestSubscriptionSyncUseCase_Checkout(t *testing.T) {
	t.Run("activates and confirms", func(t *testing.T) {
		f := newSyncFixture(t)
		uc := NewSubscriptionSyncUseCase(f.tenants, f.mailer, f.notifier, nil, nil)

		f.tenants.EXPECT().ApplySubscriptionByCustomerID(gomock.Any(), "cus_1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, c entities.SubscriptionChange) (bool, error) {
				if c.Status != entities.SubscriptionStatusActive || c.SubscriptionID == nil || *c.SubscriptionID != "sub_1" {
					t.Fatalf("unexpected change: %+v", c)
				}
				return true, nil
			},
		)
		f.notifier.EXPECT().Dispatch("payment-confirmation", gomock.Any()).Do(runInline)
		f.tenants.EXPECT().GetByStripeCustomerID(gomock.Any(), "cus_1").Return(entities.Tenant{ID: "t-1", Email: "o@example.com"}, nil)
		f.mailer.EXPECT().SendPaymentConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tn entities.Tenant, p interfaces.PaymentConfirmation) (string, error) {
				if tn.ID != "t-1" || p.Amount.String() != "49" || p.PlanName != "Professional" {
					t.Fatalf("unexpected confirmation: %+v %+v", tn, p)
				}
				return "msg", nil
			},
		)

		if err := uc.Apply(context.Background(), checkoutEvent()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("redelivery without ledger confirms once per delivery", func(t *testing.T) {
		f := newSyncFixture(t)
		uc := NewSubscriptionSyncUseCase(f.tenants, f.mailer, f.notifier, nil, nil)

		f.tenants.EXPECT().ApplySubscriptionByCustomerID(gomock.Any(), "cus_1", gomock.Any()).Return(true, nil).Times(2)
		f.notifier.EXPECT().Dispatch("payment-confirmation", gomock.Any()).Times(2)

		for i := 0; i < 2; i++ {
			if err := uc.Apply(context.Background(), checkoutEvent()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	})

	t.Run("ledger suppresses repeated confirmation", func(t *testing.T) {
		f := newSyncFixture(t)
		uc := NewSubscriptionSyncUseCase(f.tenants, f.mailer, f.notifier, f.ledger, nil)

		f.tenants.EXPECT().ApplySubscriptionByCustomerID(gomock.Any(), "cus_1", gomock.Any()).Return(true, nil).Times(2)
		gomock.InOrder(
			f.ledger.EXPECT().MarkProcessed(gomock.Any(), "evt_1").Return(true, nil),
			f.ledger.EXPECT().MarkProcessed(gomock.Any(), "evt_1").Return(false, nil),
		)
		f.notifier.EXPECT().Dispatch("payment-confirmation", gomock.Any()).Times(1)

		for i := 0; i < 2; i++ {
			if err := uc.Apply(context.Background(), checkoutEvent()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	})

	t.Run("ledger failure falls back to sending", func(t *testing.T) {
		f := newSyncFixture(t)
		uc := NewSubscriptionSyncUseCase(f.tenants, f.mailer, f.notifier, f.ledger, nil)

		f.tenants.EXPECT().ApplySubscriptionByCustomerID(gomock.Any(), "cus_1", gomock.Any()).Return(true, nil)
		f.ledger.EXPECT().MarkProcessed(gomock.Any(), "evt_1").Return(false, errors.New("redis down"))
		f.notifier.EXPECT().Dispatch("payment-confirmation", gomock.Any())

		if err := uc.Apply(context.Background(), checkoutEvent()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown customer is ignored", func(t *testing.T) {
		f := newSyncFixture(t)
		uc := NewSubscriptionSyncUseCase(f.tenants, f.mailer, f.notifier, f.ledger, nil)

		f.tenants.EXPECT().ApplySubscriptionByCustomerID(gomock.Any(), "cus_1", gomock.Any()).Return(false, nil)

		if err := uc.Apply(context.Background(), checkoutEvent()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		f := newSyncFixture(t)
		uc := NewSubscriptionSyncUseCase(f.tenants, f.mailer, f.notifier, f.ledger, nil)

		f.tenants.EXPECT().ApplySubscriptionByCustomerID(gomock.Any(), "cus_1", gomock.Any()).Return(false, errors.New("db"))

		if err := uc.Apply(context.Background(), checkoutEvent()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing amount uses plan default", func(t *testing.T) {
		f := newSyncFixture(t)
		uc := NewSubscriptionSyncUseCase(f.tenants, f.mailer, f.notifier, nil, nil)
		ev := checkoutEvent()
		ev.AmountTotal = 0

		f.tenants.EXPECT().ApplySubscriptionByCustomerID(gomock.Any(), "cus_1", gomock.Any()).Return(true, nil)
		f.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Do(runInline)
		f.tenants.EXPECT().GetByStripeCustomerID(gomock.Any(), "cus_1").Return(entities.Tenant{ID: "t-1"}, nil)
		f.mailer.EXPECT().SendPaymentConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Tenant, p interfaces.PaymentConfirmation) (string, error) {
				if p.Amount.String() != "29" {
					t.Fatalf("expected default amount, got %s", p.Amount)
				}
				return "", nil
			},
		)

		if err := uc.Apply(context.Background(), ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSubscriptionSyncUseCase_OtherEvents(t *testing.T) {
	cases := []struct {
		name   string
		event  entities.BillingEvent
		status string
		clear  bool
	}{
		{name: "updated keeps provider literal", event: entities.BillingEvent{ID: "evt_2", Kind: entities.BillingEventSubscriptionUpdated, CustomerID: "cus_1", Status: "trialing"}, status: "trialing"},
		{name: "deleted cancels", event: entities.BillingEvent{ID: "evt_3", Kind: entities.BillingEventSubscriptionDeleted, CustomerID: "cus_1"}, status: entities.SubscriptionStatusCanceled, clear: true},
		{name: "payment failed", event: entities.BillingEvent{ID: "evt_4", Kind: entities.BillingEventInvoicePaymentFailed, CustomerID: "cus_1"}, status: entities.SubscriptionStatusPastDue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newSyncFixture(t)
			uc := NewSubscriptionSyncUseCase(f.tenants, f.mailer, f.notifier, f.ledger, nil)

			f.tenants.EXPECT().ApplySubscriptionByCustomerID(gomock.Any(), "cus_1", gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, c entities.SubscriptionChange) (bool, error) {
					if c.Status != tc.status || c.ClearSubscriptionID != tc.clear || c.SubscriptionID != nil {
						t.Fatalf("unexpected change: %+v", c)
					}
					return true, nil
				},
			)
			f.ledger.EXPECT().MarkProcessed(gomock.Any(), tc.event.ID).Return(true, nil)

			if err := uc.Apply(context.Background(), tc.event); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	t.Run("unknown kind ignored", func(t *testing.T) {
		f := newSyncFixture(t)
		uc := NewSubscriptionSyncUseCase(f.tenants, f.mailer, f.notifier, f.ledger, nil)

		err := uc.Apply(context.Background(), entities.BillingEvent{ID: "evt_5", Kind: entities.BillingEventUnknown, ProviderType: "invoice.paid", CustomerID: "cus_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
