package entities

import (
	"cmp"
	"encoding/json"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a quote.
//
// Owner (tenant) writes may move a quote to any valid status. Only the two
// public transitions (approve, request changes) are guarded, since they are
// reachable by anyone holding the share link.
type QuoteStatus string

const (
	QuoteStatusDraft            QuoteStatus = "draft"
	QuoteStatusSent             QuoteStatus = "sent"
	QuoteStatusScheduled        QuoteStatus = "scheduled"
	QuoteStatusApproved         QuoteStatus = "approved"
	QuoteStatusChangesRequested QuoteStatus = "changes_requested"
	QuoteStatusCompleted        QuoteStatus = "completed"
	QuoteStatusCancelled        QuoteStatus = "cancelled"
)

var quoteStatuses = map[QuoteStatus]struct{}{
	QuoteStatusDraft:            {},
	QuoteStatusSent:             {},
	QuoteStatusScheduled:        {},
	QuoteStatusApproved:         {},
	QuoteStatusChangesRequested: {},
	QuoteStatusCompleted:        {},
	QuoteStatusCancelled:        {},
}

func (s QuoteStatus) Valid() bool {
	_, ok := quoteStatuses[s]
	return ok
}

// StatusAfterSchedule is the status a quote takes when it is scheduled:
// only drafts are promoted, anything further along keeps its status.
func (s QuoteStatus) StatusAfterSchedule() QuoteStatus {
	if s == QuoteStatusDraft {
		return QuoteStatusScheduled
	}
	return s
}

const RecurringNone = "none"

// PriceBreakdown holds the monetary fields of a quote.
//
// Totals are computed by the caller and persisted verbatim. Values are kept as
// fixed-point decimals end to end so read/modify/write cycles never drift.
type PriceBreakdown struct {
	BasePrice       decimal.Decimal `json:"base_price"`
	AddonsPrice     decimal.Decimal `json:"addons_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalPrice      decimal.Decimal `json:"total_price"`
}

// DecimalText renders d keeping its scale, so "120.50" stays "120.50".
func DecimalText(d decimal.Decimal) string {
	if e := d.Exponent(); e < 0 {
		return d.StringFixed(-e)
	}
	return d.String()
}

// CanonicalTime normalizes a wall-clock time written as H:MM, HH:MM or
// HH:MM:SS to HH:MM:SS. Stored times are always canonical so they order
// correctly as text.
func CanonicalTime(s string) (string, bool) {
	for _, layout := range []string{time.TimeOnly, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.TimeOnly), true
		}
	}
	return "", false
}

// SortBySchedule orders quotes by scheduled date, then time. Untimed jobs
// come first within a day.
func SortBySchedule(quotes []Quote) {
	slices.SortStableFunc(quotes, func(a, b Quote) int {
		return cmp.Or(
			cmp.Compare(deref(a.ScheduledDate), deref(b.ScheduledDate)),
			cmp.Compare(clockKey(a.ScheduledTime), clockKey(b.ScheduledTime)),
		)
	})
}

func clockKey(s *string) string {
	if s == nil {
		return ""
	}
	if c, ok := CanonicalTime(*s); ok {
		return c
	}
	return *s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// QuoteRef names a quote column that points at another record.
type QuoteRef string

const (
	QuoteRefClient   QuoteRef = "client_id"
	QuoteRefAssignee QuoteRef = "assigned_to"
)

func (r QuoteRef) Valid() bool {
	return r == QuoteRefClient || r == QuoteRefAssignee
}

// Schedule is the calendar slot of a quote. Date is YYYY-MM-DD, Time is HH:MM:SS.
type Schedule struct {
	Date       string  `json:"scheduled_date"`
	Time       *string `json:"scheduled_time,omitempty"`
	Recurring  string  `json:"recurring"`
	AssignedTo *string `json:"assigned_to,omitempty"`
}

// Quote is a price quote owned by exactly one tenant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI tenant_id-index: tenant_id (listing, counting, schedule range)
//   - GSI share_token-index: share_token (public lookups)
//
// Storage model (Postgres): table quotes, unique index on share_token,
// quote_checklists cascades on delete.
type Quote struct {
	ID       string  `json:"id"`
	TenantID string  `json:"tenant_id"`
	ClientID *string `json:"client_id,omitempty"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`

	PropertyType    string           `json:"property_type"`
	PropertyAddress string           `json:"property_address"`
	ServiceType     string           `json:"service_type"`
	Bedrooms        *int             `json:"bedrooms,omitempty"`
	Bathrooms       *decimal.Decimal `json:"bathrooms,omitempty"`
	SquareFeet      *int             `json:"square_feet,omitempty"`
	Services        json.RawMessage  `json:"services"`
	Frequency       string           `json:"frequency"`

	Prices PriceBreakdown `json:"prices"`

	Notes  string      `json:"notes"`
	Status QuoteStatus `json:"status"`
	SentAt *time.Time  `json:"sent_at,omitempty"`

	ScheduledDate *string `json:"scheduled_date,omitempty"`
	ScheduledTime *string `json:"scheduled_time,omitempty"`
	Recurring     string  `json:"recurring"`
	AssignedTo    *string `json:"assigned_to,omitempty"`

	ShareToken       string     `json:"share_token"`
	ShareExpiresAt   *time.Time `json:"share_expires_at,omitempty"`
	ClientApproved   bool       `json:"client_approved"`
	ClientApprovedAt *time.Time `json:"client_approved_at,omitempty"`
	ChangeRequest    *string    `json:"change_request,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShareExpired reports whether the share link no longer grants access.
func (q Quote) ShareExpired(now time.Time) bool {
	return q.ShareExpiresAt != nil && q.ShareExpiresAt.Before(now)
}

// QuotePatch carries the owner-editable fields of a quote. Nil fields are left
// untouched by the store.
type QuotePatch struct {
	ClientID        *string
	ClientName      *string
	ClientEmail     *string
	ClientPhone     *string
	PropertyType    *string
	PropertyAddress *string
	ServiceType     *string
	Bedrooms        *int
	Bathrooms       *decimal.Decimal
	SquareFeet      *int
	Services        json.RawMessage
	Frequency       *string

	BasePrice       *decimal.Decimal
	AddonsPrice     *decimal.Decimal
	DiscountPercent *decimal.Decimal
	DiscountAmount  *decimal.Decimal
	TaxRate         *decimal.Decimal
	TaxAmount       *decimal.Decimal
	TotalPrice      *decimal.Decimal

	Notes         *string
	Status        *QuoteStatus
	ScheduledDate *string
	ScheduledTime *string
	Recurring     *string
	AssignedTo    *string
}

// Prices returns the non-nil monetary fields of the patch, keyed by storage name.
func (p QuotePatch) Prices() map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for name, v := range map[string]*decimal.Decimal{
		"base_price":       p.BasePrice,
		"addons_price":     p.AddonsPrice,
		"discount_percent": p.DiscountPercent,
		"discount_amount":  p.DiscountAmount,
		"tax_rate":         p.TaxRate,
		"tax_amount":       p.TaxAmount,
		"total_price":      p.TotalPrice,
	} {
		if v != nil {
			out[name] = *v
		}
	}
	return out
}

// ShareLink is the owner view of a quote's public link.
type ShareLink struct {
	Token     string     `json:"share_token"`
	URL       string     `json:"share_url"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
