package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tenantIndex = "tenant_id-index"

// ownedItem is a stored record that belongs to one tenant.
type ownedItem interface {
	owner() string
}

// ownedTable holds the CRUD shared by the per-tenant tables (clients, team
// members, checklist templates). Every read and write is scoped to the
// tenant; a record of another tenant behaves like a missing one.
//
// Table requirements:
//   - PK: id (string)
//   - GSI tenant_id-index: PK tenant_id
type ownedTable[I ownedItem] struct {
	ddb  DynamoAPI
	name string
}

func (t ownedTable[I]) put(ctx context.Context, item I) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(t.name),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	return err
}

func (t ownedTable[I]) get(ctx context.Context, tenantID, id string) (I, bool, error) {
	var zero I
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            map[string]types.AttributeValue{"id": str(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, false, err
	}
	if len(out.Item) == 0 {
		return zero, false, nil
	}
	var it I
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return zero, false, err
	}
	if it.owner() != tenantID {
		return zero, false, nil
	}
	return it, true, nil
}

func (t ownedTable[I]) list(ctx context.Context, tenantID string) ([]I, error) {
	p := dynamodb.NewQueryPaginator(t.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(t.name),
		IndexName:                 aws.String(tenantIndex),
		KeyConditionExpression:    aws.String("#tenant_id = :tenant_id"),
		ExpressionAttributeNames:  map[string]string{"#tenant_id": "tenant_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":tenant_id": str(tenantID)},
	})
	out := []I{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []I
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// update applies u when the record exists and belongs to tenantID. ok is
// false when the condition fails.
func (t ownedTable[I]) update(ctx context.Context, tenantID, id string, u *updateExpr) (I, bool, error) {
	var zero I
	u.name("id").name("tenant_id").value(":tenant_id", str(tenantID))
	out, err := t.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(t.name),
		Key:                       map[string]types.AttributeValue{"id": str(id)},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #tenant_id = :tenant_id"),
		UpdateExpression:          aws.String(u.String()),
		ExpressionAttributeNames:  u.names,
		ExpressionAttributeValues: u.attrValues(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return zero, false, nil
		}
		return zero, false, err
	}
	var it I
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return zero, false, err
	}
	return it, true, nil
}

func (t ownedTable[I]) delete(ctx context.Context, tenantID, id string) (bool, error) {
	_, err := t.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(t.name),
		Key:                       map[string]types.AttributeValue{"id": str(id)},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #tenant_id = :tenant_id"),
		ExpressionAttributeNames:  map[string]string{"#id": "id", "#tenant_id": "tenant_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":tenant_id": str(tenantID)},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// setOptional sets attr when v is non-nil, leaving it untouched otherwise.
func setOptional(u *updateExpr, attr string, v *string) {
	if v != nil {
		u.set(attr, str(*v))
	}
}
