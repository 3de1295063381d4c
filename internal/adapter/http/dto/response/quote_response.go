package response

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/domain/entitlement"
	"cleanlyquote/internal/usecase"
	"encoding/json"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ClientQuoteFields is the only field set a share-token holder ever sees.
// QuoteResponse embeds it, so owner and public views are built from one
// projection and cannot drift apart.
type ClientQuoteFields struct {
	ID              string          `json:"id"`
	ClientName      string          `json:"clientName"`
	ClientEmail     string          `json:"clientEmail"`
	ClientPhone     string          `json:"clientPhone"`
	PropertyType    string          `json:"propertyType"`
	PropertyAddress string          `json:"propertyAddress"`
	ServiceType     string          `json:"serviceType"`
	Bedrooms        *int            `json:"bedrooms"`
	Bathrooms       *json.Number    `json:"bathrooms"`
	SquareFeet      *int            `json:"squareFeet"`
	Services        json.RawMessage `json:"services"`
	Frequency       string          `json:"frequency"`

	BasePrice       json.Number `json:"basePrice"`
	AddonsPrice     json.Number `json:"addonsPrice"`
	DiscountPercent json.Number `json:"discountPercent"`
	DiscountAmount  json.Number `json:"discountAmount"`
	TaxRate         json.Number `json:"taxRate"`
	TaxAmount       json.Number `json:"taxAmount"`
	TotalPrice      json.Number `json:"totalPrice"`

	Notes            string     `json:"notes"`
	Status           string     `json:"status"`
	ScheduledDate    *string    `json:"scheduledDate"`
	ScheduledTime    *string    `json:"scheduledTime"`
	ClientApproved   bool       `json:"clientApproved"`
	ClientApprovedAt *time.Time `json:"clientApprovedAt"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// QuoteResponse is the owner view of a quote.
type QuoteResponse struct {
	ClientQuoteFields
	UserID         string     `json:"userId"`
	ClientID       *string    `json:"clientId"`
	SentAt         *time.Time `json:"sentAt"`
	Recurring      string     `json:"recurring"`
	AssignedTo     *string    `json:"assignedTo"`
	ShareToken     string     `json:"shareToken"`
	ShareExpiresAt *time.Time `json:"shareExpiresAt"`
	ChangeRequest  *string    `json:"changeRequest"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func money(d decimal.Decimal) json.Number {
	return json.Number(entities.DecimalText(d))
}

func clientFields(q entities.Quote) ClientQuoteFields {
	services := q.Services
	if len(services) == 0 {
		services = json.RawMessage("[]")
	}
	var bathrooms *json.Number
	if q.Bathrooms != nil {
		bathrooms = lo.ToPtr(money(*q.Bathrooms))
	}
	return ClientQuoteFields{
		ID:               q.ID,
		ClientName:       q.ClientName,
		ClientEmail:      q.ClientEmail,
		ClientPhone:      q.ClientPhone,
		PropertyType:     q.PropertyType,
		PropertyAddress:  q.PropertyAddress,
		ServiceType:      q.ServiceType,
		Bedrooms:         q.Bedrooms,
		Bathrooms:        bathrooms,
		SquareFeet:       q.SquareFeet,
		Services:         services,
		Frequency:        q.Frequency,
		BasePrice:        money(q.Prices.BasePrice),
		AddonsPrice:      money(q.Prices.AddonsPrice),
		DiscountPercent:  money(q.Prices.DiscountPercent),
		DiscountAmount:   money(q.Prices.DiscountAmount),
		TaxRate:          money(q.Prices.TaxRate),
		TaxAmount:        money(q.Prices.TaxAmount),
		TotalPrice:       money(q.Prices.TotalPrice),
		Notes:            q.Notes,
		Status:           string(q.Status),
		ScheduledDate:    q.ScheduledDate,
		ScheduledTime:    q.ScheduledTime,
		ClientApproved:   q.ClientApproved,
		ClientApprovedAt: q.ClientApprovedAt,
		CreatedAt:        q.CreatedAt,
	}
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ClientQuoteFields: clientFields(q),
		UserID:            q.TenantID,
		ClientID:          q.ClientID,
		SentAt:            q.SentAt,
		Recurring:         q.Recurring,
		AssignedTo:        q.AssignedTo,
		ShareToken:        q.ShareToken,
		ShareExpiresAt:    q.ShareExpiresAt,
		ChangeRequest:     q.ChangeRequest,
		UpdatedAt:         q.UpdatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	return lo.Map(qs, func(q entities.Quote, _ int) QuoteResponse { return FromQuote(q) })
}

type QuoteEnvelope struct {
	Quote QuoteResponse `json:"quote"`
}

type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}

type QuoteCreatedResponse struct {
	Quote           QuoteResponse         `json:"quote"`
	QuoteCount      int                   `json:"quoteCount"`
	QuotesRemaining entitlement.Remaining `json:"quotesRemaining"`
}

func FromQuoteCreated(c usecase.QuoteCreated) QuoteCreatedResponse {
	return QuoteCreatedResponse{
		Quote:           FromQuote(c.Quote),
		QuoteCount:      c.QuoteCount,
		QuotesRemaining: c.Remaining,
	}
}

type QuoteSentResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Quote   QuoteResponse `json:"quote"`
	EmailID string        `json:"emailId"`
}

func FromQuoteSent(s usecase.QuoteSent) QuoteSentResponse {
	return QuoteSentResponse{
		Success: true,
		Message: "Quote sent to " + s.Quote.ClientEmail,
		Quote:   FromQuote(s.Quote),
		EmailID: s.MessageID,
	}
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
