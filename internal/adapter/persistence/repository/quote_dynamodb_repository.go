package repository

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"slices"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

const (
	quotesTenantIndex = "tenant_id-index"
	quotesShareIndex  = "share_token-index"
)

type quoteItem struct {
	ID       string  `dynamodbav:"id"`
	TenantID string  `dynamodbav:"tenant_id"`
	ClientID *string `dynamodbav:"client_id,omitempty"`

	ClientName  string `dynamodbav:"client_name"`
	ClientEmail string `dynamodbav:"client_email"`
	ClientPhone string `dynamodbav:"client_phone"`

	PropertyType    string  `dynamodbav:"property_type"`
	PropertyAddress string  `dynamodbav:"property_address"`
	ServiceType     string  `dynamodbav:"service_type"`
	Bedrooms        *int    `dynamodbav:"bedrooms,omitempty"`
	Bathrooms       *string `dynamodbav:"bathrooms,omitempty"`
	SquareFeet      *int    `dynamodbav:"square_feet,omitempty"`
	Services        string  `dynamodbav:"services"`
	Frequency       string  `dynamodbav:"frequency"`

	// Prices are string attributes holding the exact decimal text.
	BasePrice       string `dynamodbav:"base_price"`
	AddonsPrice     string `dynamodbav:"addons_price"`
	DiscountPercent string `dynamodbav:"discount_percent"`
	DiscountAmount  string `dynamodbav:"discount_amount"`
	TaxRate         string `dynamodbav:"tax_rate"`
	TaxAmount       string `dynamodbav:"tax_amount"`
	TotalPrice      string `dynamodbav:"total_price"`

	Notes  string  `dynamodbav:"notes"`
	Status string  `dynamodbav:"status"`
	SentAt *string `dynamodbav:"sent_at,omitempty"`

	ScheduledDate *string `dynamodbav:"scheduled_date,omitempty"`
	ScheduledTime *string `dynamodbav:"scheduled_time,omitempty"`
	Recurring     string  `dynamodbav:"recurring"`
	AssignedTo    *string `dynamodbav:"assigned_to,omitempty"`

	ShareToken       string  `dynamodbav:"share_token"`
	ShareExpiresAt   *string `dynamodbav:"share_expires_at,omitempty"`
	ClientApproved   bool    `dynamodbav:"client_approved"`
	ClientApprovedAt *string `dynamodbav:"client_approved_at,omitempty"`
	ChangeRequest    *string `dynamodbav:"change_request,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI tenant_id-index: PK tenant_id (listing, counting, schedule range)
//   - GSI share_token-index: PK share_token (public lookups)
//
// Owner writes carry "tenant_id = :tenant_id" in their condition so a quote of
// another tenant behaves like a missing one. Checklists live in their own
// table keyed by quote_id and are removed in the same transaction as the quote.
type QuoteDynamoRepository struct {
	ddb             DynamoAPI
	tableName       string
	checklistsTable string
	now             func() time.Time
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tables Tables) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:             ddb,
		tableName:       tables.Quotes,
		checklistsTable: tables.Checklists,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Quote, error) {
	q, err := r.getByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.TenantID != tenantID {
		return entities.Quote{}, nil
	}
	return q, nil
}

func (r *QuoteDynamoRepository) getByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": str(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}
	return unmarshalQuote(out.Item)
}

func (r *QuoteDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.Quote, error) {
	quotes, err := r.queryTenant(ctx, tenantID, nil)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(quotes, func(a, b entities.Quote) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return quotes, nil
}

func (r *QuoteDynamoRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesTenantIndex),
		KeyConditionExpression: aws.String("#tenant_id = :tenant_id"),
		ExpressionAttributeNames: map[string]string{
			"#tenant_id": "tenant_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant_id": str(tenantID),
		},
		Select: types.SelectCount,
	})
	total := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func (r *QuoteDynamoRepository) ListScheduled(ctx context.Context, tenantID, startDate, endDate string) ([]entities.Quote, error) {
	quotes, err := r.queryTenant(ctx, tenantID, &queryFilter{
		expr:   "#scheduled_date BETWEEN :start AND :end",
		names:  map[string]string{"#scheduled_date": "scheduled_date"},
		values: map[string]types.AttributeValue{":start": str(startDate), ":end": str(endDate)},
	})
	if err != nil {
		return nil, err
	}
	entities.SortBySchedule(quotes)
	return quotes, nil
}

// ListByReference returns the tenant's quotes whose ref column equals refID,
// newest first.
func (r *QuoteDynamoRepository) ListByReference(ctx context.Context, tenantID string, ref entities.QuoteRef, refID string) ([]entities.Quote, error) {
	if !ref.Valid() {
		return nil, errors.Newf("unknown quote reference %q", ref)
	}
	quotes, err := r.queryTenant(ctx, tenantID, &queryFilter{
		expr:   "#ref = :ref",
		names:  map[string]string{"#ref": string(ref)},
		values: map[string]types.AttributeValue{":ref": str(refID)},
	})
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(quotes, func(a, b entities.Quote) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return quotes, nil
}

// ClearReference removes the ref column from every quote pointing at refID.
// Each write re-checks the value, so a quote re-pointed in between is kept.
func (r *QuoteDynamoRepository) ClearReference(ctx context.Context, tenantID string, ref entities.QuoteRef, refID string) error {
	quotes, err := r.ListByReference(ctx, tenantID, ref, refID)
	if err != nil {
		return err
	}
	for _, q := range quotes {
		u := newUpdateExpr().
			remove(string(ref)).
			value(":ref", str(refID))
		if _, err := r.conditionalUpdate(ctx, q.ID, u, "#tenant_id = :tenant_id AND #"+string(ref)+" = :ref", tenantID); err != nil {
			return errors.Wrapf(err, "clear %s on quote %s", ref, q.ID)
		}
	}
	return nil
}

type queryFilter struct {
	expr   string
	names  map[string]string
	values map[string]types.AttributeValue
}

func (r *QuoteDynamoRepository) queryTenant(ctx context.Context, tenantID string, f *queryFilter) ([]entities.Quote, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesTenantIndex),
		KeyConditionExpression: aws.String("#tenant_id = :tenant_id"),
		ExpressionAttributeNames: map[string]string{
			"#tenant_id": "tenant_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant_id": str(tenantID),
		},
	}
	if f != nil {
		in.FilterExpression = aws.String(f.expr)
		for k, v := range f.names {
			in.ExpressionAttributeNames[k] = v
		}
		for k, v := range f.values {
			in.ExpressionAttributeValues[k] = v
		}
	}

	var out []entities.Quote
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			q, err := unmarshalQuote(item)
			if err != nil {
				return nil, err
			}
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, tenantID, id string, patch entities.QuotePatch) (entities.Quote, error) {
	u := newUpdateExpr()
	setStr := func(attr string, v *string) {
		if v != nil {
			u.set(attr, str(*v))
		}
	}
	setInt := func(attr string, v *int) {
		if v != nil {
			u.set(attr, &types.AttributeValueMemberN{Value: strconv.Itoa(*v)})
		}
	}

	setStr("client_id", patch.ClientID)
	setStr("client_name", patch.ClientName)
	setStr("client_email", patch.ClientEmail)
	setStr("client_phone", patch.ClientPhone)
	setStr("property_type", patch.PropertyType)
	setStr("property_address", patch.PropertyAddress)
	setStr("service_type", patch.ServiceType)
	setInt("bedrooms", patch.Bedrooms)
	if patch.Bathrooms != nil {
		u.set("bathrooms", str(entities.DecimalText(*patch.Bathrooms)))
	}
	setInt("square_feet", patch.SquareFeet)
	if len(patch.Services) > 0 {
		u.set("services", str(string(patch.Services)))
	}
	setStr("frequency", patch.Frequency)
	for attr, v := range patch.Prices() {
		u.set(attr, str(entities.DecimalText(v)))
	}
	setStr("notes", patch.Notes)
	if patch.Status != nil {
		u.set("status", str(string(*patch.Status)))
	}
	setStr("scheduled_date", patch.ScheduledDate)
	setStr("scheduled_time", patch.ScheduledTime)
	setStr("recurring", patch.Recurring)
	setStr("assigned_to", patch.AssignedTo)

	return r.ownerUpdate(ctx, tenantID, id, u)
}

// Delete removes the quote and its checklist atomically.
func (r *QuoteDynamoRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName:           aws.String(r.tableName),
					Key:                 map[string]types.AttributeValue{"id": str(id)},
					ConditionExpression: aws.String("attribute_exists(#id) AND #tenant_id = :tenant_id"),
					ExpressionAttributeNames: map[string]string{
						"#id":        "id",
						"#tenant_id": "tenant_id",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":tenant_id": str(tenantID),
					},
				},
			},
			{
				Delete: &types.Delete{
					TableName: aws.String(r.checklistsTable),
					Key:       map[string]types.AttributeValue{"quote_id": str(id)},
				},
			},
		},
	})
	if err != nil {
		if _, ok := isTransactionConditionFailed(err); ok {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *QuoteDynamoRepository) MarkSent(ctx context.Context, tenantID, id string, sentAt time.Time) (entities.Quote, error) {
	u := newUpdateExpr().
		set("sent_at", str(formatTime(sentAt))).
		set("status", str(string(entities.QuoteStatusSent)))
	return r.ownerUpdate(ctx, tenantID, id, u)
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, tenantID, id string, status entities.QuoteStatus) (entities.Quote, error) {
	return r.ownerUpdate(ctx, tenantID, id, newUpdateExpr().set("status", str(string(status))))
}

// Schedule first tries to promote a draft in the same write; when the quote
// is past draft the condition fails and only the slot is written.
func (r *QuoteDynamoRepository) Schedule(ctx context.Context, tenantID, id string, s entities.Schedule) (entities.Quote, error) {
	slot := func() *updateExpr {
		u := newUpdateExpr().
			set("scheduled_date", str(s.Date)).
			set("recurring", str(s.Recurring))
		if s.Time != nil && *s.Time != "" {
			u.set("scheduled_time", str(*s.Time))
		} else {
			u.remove("scheduled_time")
		}
		if s.AssignedTo != nil && *s.AssignedTo != "" {
			u.set("assigned_to", str(*s.AssignedTo))
		} else {
			u.remove("assigned_to")
		}
		return u
	}

	promote := slot().
		set("status", str(string(entities.QuoteStatusScheduled))).
		value(":draft", str(string(entities.QuoteStatusDraft)))
	q, err := r.conditionalUpdate(ctx, id, promote, "#tenant_id = :tenant_id AND #status = :draft", tenantID)
	if err != nil || q.ID != "" {
		return q, err
	}
	return r.ownerUpdate(ctx, tenantID, id, slot())
}

func (r *QuoteDynamoRepository) Unschedule(ctx context.Context, tenantID, id string) (entities.Quote, error) {
	u := newUpdateExpr().
		set("recurring", str(entities.RecurringNone)).
		set("status", str(string(entities.QuoteStatusDraft))).
		remove("scheduled_date").
		remove("scheduled_time").
		remove("assigned_to")
	return r.ownerUpdate(ctx, tenantID, id, u)
}

// GetByShareToken reads the token index and confirms the hit with a strongly
// consistent read, so a token that was just rotated away never resolves.
func (r *QuoteDynamoRepository) GetByShareToken(ctx context.Context, token string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesShareIndex),
		KeyConditionExpression: aws.String("#share_token = :share_token"),
		ExpressionAttributeNames: map[string]string{
			"#share_token": "share_token",
			"#id":          "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":share_token": str(token),
		},
		ProjectionExpression: aws.String("#id"),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	for _, item := range out.Items {
		var ref struct {
			ID string `dynamodbav:"id"`
		}
		if err := attributevalue.UnmarshalMap(item, &ref); err != nil {
			return entities.Quote{}, err
		}
		q, err := r.getByID(ctx, ref.ID)
		if err != nil {
			return entities.Quote{}, err
		}
		if q.ID != "" && q.ShareToken == token {
			return q, nil
		}
	}
	return entities.Quote{}, nil
}

func (r *QuoteDynamoRepository) RotateShareToken(ctx context.Context, tenantID, id, token string, expiresAt *time.Time) (entities.Quote, error) {
	u := newUpdateExpr().set("share_token", str(token))
	if expiresAt != nil {
		u.set("share_expires_at", str(formatTime(*expiresAt)))
	} else {
		u.remove("share_expires_at")
	}
	return r.ownerUpdate(ctx, tenantID, id, u)
}

func (r *QuoteDynamoRepository) ApproveByShareToken(ctx context.Context, id, token string, at time.Time) (entities.Quote, bool, error) {
	u := newUpdateExpr().
		set("client_approved", boolAV(true)).
		set("client_approved_at", str(formatTime(at))).
		set("status", str(string(entities.QuoteStatusApproved))).
		name("share_token").
		name("share_expires_at").
		value(":token", str(token)).
		value(":now", str(formatTime(at))).
		value(":not_approved", boolAV(false))
	return r.publicUpdate(ctx, id, u, "#client_approved = :not_approved")
}

func (r *QuoteDynamoRepository) RequestChangesByShareToken(ctx context.Context, id, token, message string, at time.Time) (entities.Quote, bool, error) {
	u := newUpdateExpr().
		set("change_request", str(message)).
		set("status", str(string(entities.QuoteStatusChangesRequested))).
		name("share_token").
		name("share_expires_at").
		value(":token", str(token)).
		value(":now", str(formatTime(at)))
	return r.publicUpdate(ctx, id, u, "")
}

// publicUpdate applies a token-guarded write. The guard requires the token to
// still match and the link to be unexpired at :now.
func (r *QuoteDynamoRepository) publicUpdate(ctx context.Context, id string, u *updateExpr, extra string) (entities.Quote, bool, error) {
	cond := "#share_token = :token AND (attribute_not_exists(#share_expires_at) OR #share_expires_at >= :now)"
	if extra != "" {
		cond += " AND " + extra
	}
	q, err := r.conditionalUpdate(ctx, id, u, cond, "")
	if err != nil {
		return entities.Quote{}, false, err
	}
	return q, q.ID != "", nil
}

func (r *QuoteDynamoRepository) ownerUpdate(ctx context.Context, tenantID, id string, u *updateExpr) (entities.Quote, error) {
	return r.conditionalUpdate(ctx, id, u, "#tenant_id = :tenant_id", tenantID)
}

// conditionalUpdate runs UpdateItem guarded by attribute_exists(id) plus cond.
// A failed condition yields a zero Quote and a nil error.
func (r *QuoteDynamoRepository) conditionalUpdate(ctx context.Context, id string, u *updateExpr, cond, tenantID string) (entities.Quote, error) {
	u.set("updated_at", str(formatTime(r.now())))
	u.name("id")
	if tenantID != "" {
		u.name("tenant_id").value(":tenant_id", str(tenantID))
	}
	condition := "attribute_exists(#id)"
	if cond != "" {
		condition += " AND " + cond
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": str(id),
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(u.String()),
		ExpressionAttributeValues: u.attrValues(),
		ExpressionAttributeNames:  u.names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	return unmarshalQuote(out.Attributes)
}

func unmarshalQuote(av map[string]types.AttributeValue) (entities.Quote, error) {
	var it quoteItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.Quote) quoteItem {
	services := string(q.Services)
	if services == "" {
		services = "[]"
	}
	var bathrooms *string
	if q.Bathrooms != nil {
		s := entities.DecimalText(*q.Bathrooms)
		bathrooms = &s
	}
	return quoteItem{
		ID:               q.ID,
		TenantID:         q.TenantID,
		ClientID:         q.ClientID,
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
		BasePrice:        entities.DecimalText(q.Prices.BasePrice),
		AddonsPrice:      entities.DecimalText(q.Prices.AddonsPrice),
		DiscountPercent:  entities.DecimalText(q.Prices.DiscountPercent),
		DiscountAmount:   entities.DecimalText(q.Prices.DiscountAmount),
		TaxRate:          entities.DecimalText(q.Prices.TaxRate),
		TaxAmount:        entities.DecimalText(q.Prices.TaxAmount),
		TotalPrice:       entities.DecimalText(q.Prices.TotalPrice),
		Notes:            q.Notes,
		Status:           string(q.Status),
		SentAt:           formatTimePtr(q.SentAt),
		ScheduledDate:    q.ScheduledDate,
		ScheduledTime:    q.ScheduledTime,
		Recurring:        q.Recurring,
		AssignedTo:       q.AssignedTo,
		ShareToken:       q.ShareToken,
		ShareExpiresAt:   formatTimePtr(q.ShareExpiresAt),
		ClientApproved:   q.ClientApproved,
		ClientApprovedAt: formatTimePtr(q.ClientApprovedAt),
		ChangeRequest:    q.ChangeRequest,
		CreatedAt:        formatTime(q.CreatedAt),
		UpdatedAt:        formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	var prices entities.PriceBreakdown
	for _, f := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&prices.BasePrice, it.BasePrice},
		{&prices.AddonsPrice, it.AddonsPrice},
		{&prices.DiscountPercent, it.DiscountPercent},
		{&prices.DiscountAmount, it.DiscountAmount},
		{&prices.TaxRate, it.TaxRate},
		{&prices.TaxAmount, it.TaxAmount},
		{&prices.TotalPrice, it.TotalPrice},
	} {
		if f.src == "" {
			continue
		}
		d, err := decimal.NewFromString(f.src)
		if err != nil {
			return entities.Quote{}, errors.Wrapf(err, "quote %s: bad price %q", it.ID, f.src)
		}
		*f.dst = d
	}

	var bathrooms *decimal.Decimal
	if it.Bathrooms != nil {
		d, err := decimal.NewFromString(*it.Bathrooms)
		if err != nil {
			return entities.Quote{}, errors.Wrapf(err, "quote %s: bad bathrooms %q", it.ID, *it.Bathrooms)
		}
		bathrooms = &d
	}

	return entities.Quote{
		ID:               it.ID,
		TenantID:         it.TenantID,
		ClientID:         it.ClientID,
		ClientName:       it.ClientName,
		ClientEmail:      it.ClientEmail,
		ClientPhone:      it.ClientPhone,
		PropertyType:     it.PropertyType,
		PropertyAddress:  it.PropertyAddress,
		ServiceType:      it.ServiceType,
		Bedrooms:         it.Bedrooms,
		Bathrooms:        bathrooms,
		SquareFeet:       it.SquareFeet,
		Services:         json.RawMessage(it.Services),
		Frequency:        it.Frequency,
		Prices:           prices,
		Notes:            it.Notes,
		Status:           entities.QuoteStatus(it.Status),
		SentAt:           parseTimePtr(it.SentAt),
		ScheduledDate:    it.ScheduledDate,
		ScheduledTime:    it.ScheduledTime,
		Recurring:        it.Recurring,
		AssignedTo:       it.AssignedTo,
		ShareToken:       it.ShareToken,
		ShareExpiresAt:   parseTimePtr(it.ShareExpiresAt),
		ClientApproved:   it.ClientApproved,
		ClientApprovedAt: parseTimePtr(it.ClientApprovedAt),
		ChangeRequest:    it.ChangeRequest,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}, nil
}
