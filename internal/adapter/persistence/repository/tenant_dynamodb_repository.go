package repository

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
)

const (
	emailKeyPrefix    = "email#"
	customerKeyPrefix = "stripe_customer#"
)

type tenantItem struct {
	ID                 string  `dynamodbav:"id"`
	Email              string  `dynamodbav:"email"`
	PasswordHash       string  `dynamodbav:"password_hash"`
	Name               string  `dynamodbav:"name"`
	BusinessName       string  `dynamodbav:"business_name"`
	CompanyDisplayName string  `dynamodbav:"company_display_name"`
	BrandColor         string  `dynamodbav:"brand_color"`
	Phone              string  `dynamodbav:"phone"`
	Role               string  `dynamodbav:"role"`
	SubscriptionStatus string  `dynamodbav:"subscription_status"`
	SubscriptionID     *string `dynamodbav:"subscription_id,omitempty"`
	StripeCustomerID   *string `dynamodbav:"stripe_customer_id,omitempty"`
	CreatedAt          string  `dynamodbav:"created_at"`
	UpdatedAt          string  `dynamodbav:"updated_at"`
}

// lookupItem maps a unique attribute (email, billing customer) to its tenant.
type lookupItem struct {
	ID       string `dynamodbav:"id"`
	TenantID string `dynamodbav:"tenant_id"`
}

// TenantDynamoRepository persists tenants in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Besides tenant items the table holds lookup items keyed "email#<email>" and
// "stripe_customer#<id>". They are written in the same transaction as the
// tenant change, which makes both attributes unique without a GSI.
type TenantDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ITenantRepository = (*TenantDynamoRepository)(nil)

func NewTenantDynamoRepository(ddb DynamoAPI, tables Tables) *TenantDynamoRepository {
	return &TenantDynamoRepository{
		ddb:       ddb,
		tableName: tables.Tenants,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *TenantDynamoRepository) Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	item, err := attributevalue.MarshalMap(toTenantItem(t))
	if err != nil {
		return entities.Tenant{}, err
	}
	lookup, err := attributevalue.MarshalMap(lookupItem{ID: emailKey(t.Email), TenantID: t.ID})
	if err != nil {
		return entities.Tenant{}, err
	}

	notExists := aws.String("attribute_not_exists(#id)")
	names := map[string]string{"#id": "id"}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: item, ConditionExpression: notExists, ExpressionAttributeNames: names}},
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: lookup, ConditionExpression: notExists, ExpressionAttributeNames: names}},
		},
	})
	if err != nil {
		if idx, ok := isTransactionConditionFailed(err); ok && idx == 1 {
			return entities.Tenant{}, interfaces.ErrEmailAlreadyRegistered
		}
		return entities.Tenant{}, err
	}
	return t, nil
}

func (r *TenantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	if id == "" || strings.Contains(id, "#") {
		return entities.Tenant{}, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": str(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Tenant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Tenant{}, nil
	}

	var it tenantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Tenant{}, err
	}
	return fromTenantItem(it), nil
}

func (r *TenantDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Tenant, error) {
	return r.getByLookup(ctx, emailKey(email))
}

func (r *TenantDynamoRepository) GetByStripeCustomerID(ctx context.Context, customerID string) (entities.Tenant, error) {
	return r.getByLookup(ctx, customerKeyPrefix+customerID)
}

func (r *TenantDynamoRepository) getByLookup(ctx context.Context, key string) (entities.Tenant, error) {
	tenantID, err := r.resolveLookup(ctx, key)
	if err != nil || tenantID == "" {
		return entities.Tenant{}, err
	}
	return r.GetByID(ctx, tenantID)
}

func (r *TenantDynamoRepository) resolveLookup(ctx context.Context, key string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": str(key)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}
	var l lookupItem
	if err := attributevalue.UnmarshalMap(out.Item, &l); err != nil {
		return "", err
	}
	return l.TenantID, nil
}

// SetStripeCustomerID stores the customer id and its lookup item together.
func (r *TenantDynamoRepository) SetStripeCustomerID(ctx context.Context, id, customerID string) error {
	lookup, err := attributevalue.MarshalMap(lookupItem{ID: customerKeyPrefix + customerID, TenantID: id})
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(r.tableName),
					Key:                 map[string]types.AttributeValue{"id": str(id)},
					ConditionExpression: aws.String("attribute_exists(#id)"),
					UpdateExpression:    aws.String("SET #stripe_customer_id = :cus, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":                 "id",
						"#stripe_customer_id": "stripe_customer_id",
						"#updated_at":         "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":cus":        str(customerID),
						":updated_at": str(formatTime(r.now())),
					},
				},
			},
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: lookup}},
		},
	})
	if err != nil {
		if _, ok := isTransactionConditionFailed(err); ok {
			return errors.Newf("tenant %s not found", id)
		}
		return err
	}
	return nil
}

func (r *TenantDynamoRepository) ApplySubscriptionByCustomerID(ctx context.Context, customerID string, change entities.SubscriptionChange) (bool, error) {
	tenantID, err := r.resolveLookup(ctx, customerKeyPrefix+customerID)
	if err != nil || tenantID == "" {
		return false, err
	}

	u := newUpdateExpr().set("subscription_status", str(change.Status))
	switch {
	case change.ClearSubscriptionID:
		u.remove("subscription_id")
	case change.SubscriptionID != nil:
		u.set("subscription_id", str(*change.SubscriptionID))
	}
	t, err := r.update(ctx, tenantID, u)
	if err != nil {
		return false, err
	}
	return t.ID != "", nil
}

func (r *TenantDynamoRepository) SetSubscriptionStatus(ctx context.Context, id, status string) (entities.Tenant, error) {
	return r.update(ctx, id, newUpdateExpr().set("subscription_status", str(status)))
}

func (r *TenantDynamoRepository) update(ctx context.Context, id string, u *updateExpr) (entities.Tenant, error) {
	u.set("updated_at", str(formatTime(r.now()))).name("id")

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"id": str(id)},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(u.String()),
		ExpressionAttributeNames:  u.names,
		ExpressionAttributeValues: u.attrValues(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Tenant{}, nil
		}
		return entities.Tenant{}, err
	}

	var it tenantItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Tenant{}, err
	}
	return fromTenantItem(it), nil
}

func emailKey(email string) string {
	return emailKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}

func toTenantItem(t entities.Tenant) tenantItem {
	return tenantItem{
		ID:                 t.ID,
		Email:              t.Email,
		PasswordHash:       t.PasswordHash,
		Name:               t.Name,
		BusinessName:       t.BusinessName,
		CompanyDisplayName: t.CompanyDisplayName,
		BrandColor:         t.BrandColor,
		Phone:              t.Phone,
		Role:               string(t.Role),
		SubscriptionStatus: t.SubscriptionStatus,
		SubscriptionID:     t.SubscriptionID,
		StripeCustomerID:   t.StripeCustomerID,
		CreatedAt:          formatTime(t.CreatedAt),
		UpdatedAt:          formatTime(t.UpdatedAt),
	}
}

func fromTenantItem(it tenantItem) entities.Tenant {
	return entities.Tenant{
		ID:                 it.ID,
		Email:              it.Email,
		PasswordHash:       it.PasswordHash,
		Name:               it.Name,
		BusinessName:       it.BusinessName,
		CompanyDisplayName: it.CompanyDisplayName,
		BrandColor:         it.BrandColor,
		Phone:              it.Phone,
		Role:               entities.TenantRole(it.Role),
		SubscriptionStatus: it.SubscriptionStatus,
		SubscriptionID:     it.SubscriptionID,
		StripeCustomerID:   it.StripeCustomerID,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
