// Package email renders transactional messages with html/template and sends
// them through Resend.
package email

import (
	"bytes"
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/domain/entitlement"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	brandGreen   = "#10b981"
	supportEmail = "support@getcleanlyquote.com"
)

type Settings struct {
	APIKey      string
	From        string
	FrontendURL string
}

// ResendMailer implements IMailer. Without an API key it runs in mock mode
// and only logs what it would have sent.
type ResendMailer struct {
	client    *resend.Client
	settings  Settings
	templates map[string]*template.Template
	now       func() time.Time
	log       *zap.SugaredLogger
}

var _ interfaces.IMailer = (*ResendMailer)(nil)

func NewResendMailer(s Settings, log *zap.SugaredLogger) (*ResendMailer, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	m := &ResendMailer{
		settings:  s,
		templates: map[string]*template.Template{},
		now:       func() time.Time { return time.Now().UTC() },
		log:       log,
	}
	for _, name := range []string{"quote", "welcome", "payment_confirmation"} {
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s template", name)
		}
		m.templates[name] = t
	}
	if s.APIKey == "" {
		log.Warnw("[email][mailer] mock mode enabled, RESEND_API_KEY not set")
		return m, nil
	}
	m.client = resend.NewClient(s.APIKey)
	return m, nil
}

var templateFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string { return "$" + d.StringFixed(2) },
	"positive": func(d decimal.Decimal) bool {
		return d.IsPositive()
	},
}

type envelope struct {
	Preheader    string
	Accent       string
	Year         int
	SupportEmail string
	Data         any
}

func (m *ResendMailer) SendQuote(ctx context.Context, msg interfaces.QuoteEmail) (string, error) {
	q := msg.Quote
	sender := msg.Sender.DisplayName()
	if sender == "" {
		sender = "Your Cleaning Professional"
	}
	accent := msg.Sender.BrandColor
	if accent == "" {
		accent = brandGreen
	}
	total := "$" + q.Prices.TotalPrice.StringFixed(2)

	var bathrooms string
	if q.Bathrooms != nil {
		bathrooms = entities.DecimalText(*q.Bathrooms)
	}
	data := struct {
		Quote           entities.Quote
		SenderName      string
		ClientFirstName string
		PropertyType    string
		Bathrooms       string
		Frequency       string
		Services        []string
		ShareURL        string
	}{
		Quote:           q,
		SenderName:      sender,
		ClientFirstName: firstName(q.ClientName),
		PropertyType:    fallback(q.PropertyType, "Home"),
		Bathrooms:       bathrooms,
		Frequency:       frequencyLabel(q.Frequency),
		Services:        serviceNames(q.Services),
		ShareURL:        msg.ShareURL,
	}

	html, err := m.render("quote", envelope{
		Preheader: fmt.Sprintf("Quote for %s services - %s", fallback(q.PropertyType, "cleaning"), total),
		Accent:    accent,
		Data:      data,
	})
	if err != nil {
		return "", err
	}

	return m.send(ctx, &resend.SendEmailRequest{
		From:    m.settings.From,
		To:      []string{q.ClientEmail},
		ReplyTo: msg.Sender.Email,
		Subject: fmt.Sprintf("Your Cleaning Quote from %s - %s", sender, total),
		Html:    html,
		Text:    fmt.Sprintf("Your quote from %s totals %s. View it at %s", sender, total, msg.ShareURL),
	})
}

func (m *ResendMailer) SendWelcome(ctx context.Context, t entities.Tenant) (string, error) {
	html, err := m.render("welcome", envelope{
		Preheader: "Your professional quote builder is ready!",
		Accent:    brandGreen,
		Data: map[string]any{
			"FirstName":    firstName(t.Name),
			"FreeQuotes":   entitlement.FreeQuoteLimit,
			"DashboardURL": m.settings.FrontendURL + "/app",
		},
	})
	if err != nil {
		return "", err
	}
	return m.send(ctx, &resend.SendEmailRequest{
		From:    m.settings.From,
		To:      []string{t.Email},
		Subject: "Welcome to CleanlyQuote!",
		Html:    html,
	})
}

func (m *ResendMailer) SendPaymentConfirmation(ctx context.Context, t entities.Tenant, p interfaces.PaymentConfirmation) (string, error) {
	amount := p.Amount.StringFixed(2)
	if strings.EqualFold(p.Currency, "usd") || p.Currency == "" {
		amount = "$" + amount
	} else {
		amount = amount + " " + strings.ToUpper(p.Currency)
	}
	html, err := m.render("payment_confirmation", envelope{
		Preheader: "Your CleanlyQuote " + p.PlanName + " subscription is now active!",
		Accent:    brandGreen,
		Data: map[string]any{
			"FirstName":    firstName(t.Name),
			"PlanName":     p.PlanName,
			"Amount":       amount,
			"DashboardURL": m.settings.FrontendURL + "/app",
		},
	})
	if err != nil {
		return "", err
	}
	return m.send(ctx, &resend.SendEmailRequest{
		From:    m.settings.From,
		To:      []string{t.Email},
		Subject: "Payment Confirmed - Welcome to CleanlyQuote " + p.PlanName + "!",
		Html:    html,
	})
}

func (m *ResendMailer) render(name string, env envelope) (string, error) {
	env.Year = m.now().Year()
	env.SupportEmail = supportEmail
	var buf bytes.Buffer
	if err := m.templates[name].ExecuteTemplate(&buf, "layout", env); err != nil {
		return "", errors.Wrapf(err, "render %s email", name)
	}
	return buf.String(), nil
}

func (m *ResendMailer) send(ctx context.Context, req *resend.SendEmailRequest) (string, error) {
	if m.client == nil {
		id := "mock-" + uuid.NewString()
		m.log.Infow("[email][mailer] mock send", "to", req.To, "subject", req.Subject, "message_id", id)
		return id, nil
	}
	resp, err := m.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		m.log.Errorw("[email][mailer] send failed", "to", req.To, "subject", req.Subject, "error", err)
		return "", errors.Wrap(err, "resend send")
	}
	m.log.Infow("[email][mailer] sent", "to", req.To, "message_id", resp.Id)
	return resp.Id, nil
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return "there"
}

func fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func frequencyLabel(f string) string {
	if f == "" {
		return "One-time"
	}
	return strings.ToUpper(f[:1]) + f[1:]
}

// serviceNames accepts a JSON array of strings or of objects with a name.
func serviceNames(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		var s string
		if json.Unmarshal(it, &s) == nil {
			if s != "" {
				out = append(out, s)
			}
			continue
		}
		var obj struct {
			Name string `json:"name"`
		}
		if json.Unmarshal(it, &obj) == nil && obj.Name != "" {
			out = append(out, obj.Name)
		}
	}
	return out
}
