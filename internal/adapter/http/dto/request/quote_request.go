package request

import (
	"cleanlyquote/internal/domain/entities"
	"encoding/json"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// QuoteRequest is the body of quote create and update calls.
//
// Every field is optional so the same payload serves partial updates.
// addonTotal and total are accepted as aliases of addonsPrice and totalPrice;
// the explicit names win when both are sent. Prices may be JSON numbers or
// strings and keep their exact decimal text.
type QuoteRequest struct {
	ClientID        *string          `json:"clientId"`
	ClientName      *string          `json:"clientName"`
	ClientEmail     *string          `json:"clientEmail" binding:"omitempty,email"`
	ClientPhone     *string          `json:"clientPhone"`
	PropertyType    *string          `json:"propertyType"`
	PropertyAddress *string          `json:"propertyAddress"`
	ServiceType     *string          `json:"serviceType"`
	Bedrooms        *int             `json:"bedrooms" binding:"omitempty,min=0"`
	Bathrooms       *decimal.Decimal `json:"bathrooms"`
	SquareFeet      *int             `json:"squareFeet" binding:"omitempty,min=0"`
	Services        json.RawMessage  `json:"services"`
	Frequency       *string          `json:"frequency"`

	BasePrice       *decimal.Decimal `json:"basePrice"`
	AddonsPrice     *decimal.Decimal `json:"addonsPrice"`
	AddonTotal      *decimal.Decimal `json:"addonTotal"`
	DiscountPercent *decimal.Decimal `json:"discountPercent"`
	DiscountAmount  *decimal.Decimal `json:"discountAmount"`
	TaxRate         *decimal.Decimal `json:"taxRate"`
	TaxAmount       *decimal.Decimal `json:"taxAmount"`
	TotalPrice      *decimal.Decimal `json:"totalPrice"`
	Total           *decimal.Decimal `json:"total"`

	Notes  *string `json:"notes"`
	Status *string `json:"status" binding:"omitempty,quote_status"`

	ScheduledDate *string `json:"scheduledDate"`
	ScheduledTime *string `json:"scheduledTime"`
	Recurring     *string `json:"recurring"`
	AssignedTo    *string `json:"assignedTo"`
}

func (r QuoteRequest) addons() *decimal.Decimal {
	if r.AddonsPrice != nil {
		return r.AddonsPrice
	}
	return r.AddonTotal
}

func (r QuoteRequest) total() *decimal.Decimal {
	if r.TotalPrice != nil {
		return r.TotalPrice
	}
	return r.Total
}

// ToQuote builds a new quote. Missing prices default to zero.
func (r QuoteRequest) ToQuote() entities.Quote {
	return entities.Quote{
		ClientID:        blankToNil(r.ClientID),
		ClientName:      lo.FromPtr(r.ClientName),
		ClientEmail:     strings.TrimSpace(lo.FromPtr(r.ClientEmail)),
		ClientPhone:     lo.FromPtr(r.ClientPhone),
		PropertyType:    lo.FromPtr(r.PropertyType),
		PropertyAddress: lo.FromPtr(r.PropertyAddress),
		ServiceType:     lo.FromPtr(r.ServiceType),
		Bedrooms:        r.Bedrooms,
		Bathrooms:       r.Bathrooms,
		SquareFeet:      r.SquareFeet,
		Services:        r.Services,
		Frequency:       lo.FromPtr(r.Frequency),
		Prices: entities.PriceBreakdown{
			BasePrice:       lo.FromPtr(r.BasePrice),
			AddonsPrice:     lo.FromPtr(r.addons()),
			DiscountPercent: lo.FromPtr(r.DiscountPercent),
			DiscountAmount:  lo.FromPtr(r.DiscountAmount),
			TaxRate:         lo.FromPtr(r.TaxRate),
			TaxAmount:       lo.FromPtr(r.TaxAmount),
			TotalPrice:      lo.FromPtr(r.total()),
		},
		Notes:         lo.FromPtr(r.Notes),
		Status:        entities.QuoteStatus(lo.FromPtr(r.Status)),
		ScheduledDate: blankToNil(r.ScheduledDate),
		ScheduledTime: blankToNil(r.ScheduledTime),
		Recurring:     lo.FromPtr(r.Recurring),
		AssignedTo:    blankToNil(r.AssignedTo),
	}
}

// ToPatch keeps nil for every field the client did not send.
func (r QuoteRequest) ToPatch() entities.QuotePatch {
	p := entities.QuotePatch{
		ClientID:        r.ClientID,
		ClientName:      r.ClientName,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		PropertyType:    r.PropertyType,
		PropertyAddress: r.PropertyAddress,
		ServiceType:     r.ServiceType,
		Bedrooms:        r.Bedrooms,
		Bathrooms:       r.Bathrooms,
		SquareFeet:      r.SquareFeet,
		Services:        r.Services,
		Frequency:       r.Frequency,
		BasePrice:       r.BasePrice,
		AddonsPrice:     r.addons(),
		DiscountPercent: r.DiscountPercent,
		DiscountAmount:  r.DiscountAmount,
		TaxRate:         r.TaxRate,
		TaxAmount:       r.TaxAmount,
		TotalPrice:      r.total(),
		Notes:           r.Notes,
		ScheduledDate:   r.ScheduledDate,
		ScheduledTime:   r.ScheduledTime,
		Recurring:       r.Recurring,
		AssignedTo:      r.AssignedTo,
	}
	if p.ClientEmail != nil {
		p.ClientEmail = lo.ToPtr(strings.TrimSpace(*p.ClientEmail))
	}
	if r.Status != nil {
		p.Status = lo.ToPtr(entities.QuoteStatus(*r.Status))
	}
	return p
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return lo.ToPtr(strings.TrimSpace(*s))
}
