package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/domain/entitlement"
	"cleanlyquote/internal/usecase"

	"github.com/shopspring/decimal"
)

func sampleQuote() entities.Quote {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	change := "please move to friday"
	return entities.Quote{
		ID:          "q-1",
		TenantID:    "t-1",
		ClientName:  "Ann",
		ClientEmail: "ann@example.com",
		Prices: entities.PriceBreakdown{
			BasePrice:       decimal.RequireFromString("120.50"),
			AddonsPrice:     decimal.RequireFromString("15.00"),
			DiscountPercent: decimal.RequireFromString("10"),
			DiscountAmount:  decimal.RequireFromString("13.55"),
			TaxRate:         decimal.RequireFromString("8.875"),
			TaxAmount:       decimal.RequireFromString("10.82"),
			TotalPrice:      decimal.RequireFromString("132.77"),
		},
		Status:        entities.QuoteStatusSent,
		ShareToken:    "6f1c2a8e-3b4d-4e5f-8a9b-0c1d2e3f4a5b",
		ChangeRequest: &change,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestFromQuote_KeepsDecimalText(t *testing.T) {
	b, err := json.Marshal(FromQuote(sampleQuote()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(b)
	for _, want := range []string{`"basePrice":120.50`, `"addonsPrice":15.00`, `"taxRate":8.875`, `"totalPrice":132.77`, `"services":[]`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in %s", want, body)
		}
	}
}

func TestFromPublicQuote_HidesOwnerFields(t *testing.T) {
	b, err := json.Marshal(FromPublicQuote(usecase.PublicQuote{
		Quote:    sampleQuote(),
		Business: usecase.BusinessCard{Name: "Sparkle Co", Email: "owner@sparkle.test", BrandColor: "#10b981"},
	}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(b)
	for _, leak := range []string{"shareToken", "userId", "changeRequest", "t-1", "6f1c2a8e"} {
		if strings.Contains(body, leak) {
			t.Fatalf("public view leaked %q: %s", leak, body)
		}
	}
	if !strings.Contains(body, `"name":"Sparkle Co"`) {
		t.Fatalf("expected business card in %s", body)
	}
}

func TestQuoteCreatedResponse_Remaining(t *testing.T) {
	cases := []struct {
		remaining entitlement.Remaining
		want      string
	}{
		{entitlement.Unlimited(), `"quotesRemaining":"unlimited"`},
		{entitlement.Limited(2), `"quotesRemaining":2`},
		{entitlement.Limited(-1), `"quotesRemaining":0`},
	}
	for _, tc := range cases {
		b, err := json.Marshal(FromQuoteCreated(usecase.QuoteCreated{Quote: sampleQuote(), QuoteCount: 1, Remaining: tc.remaining}))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !strings.Contains(string(b), tc.want) {
			t.Fatalf("expected %s in %s", tc.want, b)
		}
	}
}

func TestFromChecklist_NullWhenDetached(t *testing.T) {
	b, _ := json.Marshal(FromChecklist(entities.QuoteChecklist{}))
	if string(b) != `{"checklist":null}` {
		t.Fatalf("expected null checklist, got %s", b)
	}
}

func TestFromChecklist_CarriesTemplateSnapshot(t *testing.T) {
	name := "Deep clean"
	b, _ := json.Marshal(FromChecklist(entities.QuoteChecklist{
		ID:           "c-1",
		TemplateName: &name,
		Rooms:        []entities.ChecklistRoom{{Room: "Kitchen"}},
	}))
	for _, want := range []string{`"templateName":"Deep clean"`, `"rooms":[{"room":"Kitchen","tasks":[]}]`, `"completedTasks":[]`} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("expected %s in %s", want, b)
		}
	}
}
