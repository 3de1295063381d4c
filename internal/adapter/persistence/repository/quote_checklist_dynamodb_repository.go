package repository

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase/interfaces"
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type checklistItem struct {
	QuoteID        string     `dynamodbav:"quote_id"`
	ID             string     `dynamodbav:"id"`
	TemplateID     *string    `dynamodbav:"template_id,omitempty"`
	TemplateName   *string    `dynamodbav:"template_name,omitempty"`
	Rooms          []roomItem `dynamodbav:"rooms"`
	CompletedTasks []string   `dynamodbav:"completed_tasks"`
	CreatedAt      string     `dynamodbav:"created_at"`
	UpdatedAt      string     `dynamodbav:"updated_at"`
}

type roomItem struct {
	Room  string   `dynamodbav:"room"`
	Tasks []string `dynamodbav:"tasks"`
}

func toRoomItems(rooms []entities.ChecklistRoom) []roomItem {
	out := make([]roomItem, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, roomItem{Room: r.Room, Tasks: nonNil(r.Tasks)})
	}
	return out
}

func fromRoomItems(items []roomItem) []entities.ChecklistRoom {
	out := make([]entities.ChecklistRoom, 0, len(items))
	for _, it := range items {
		out = append(out, entities.ChecklistRoom{Room: it.Room, Tasks: nonNil(it.Tasks)})
	}
	return out
}

// QuoteChecklistDynamoRepository persists checklists keyed by quote id.
//
// Table requirements:
//   - PK: quote_id (string)
type QuoteChecklistDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
	newID     func() string
}

var _ interfaces.IQuoteChecklistRepository = (*QuoteChecklistDynamoRepository)(nil)

func NewQuoteChecklistDynamoRepository(ddb DynamoAPI, tables Tables) *QuoteChecklistDynamoRepository {
	return &QuoteChecklistDynamoRepository{
		ddb:       ddb,
		tableName: tables.Checklists,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (r *QuoteChecklistDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.QuoteChecklist, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"quote_id": str(quoteID)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteChecklist{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteChecklist{}, nil
	}
	return unmarshalChecklist(out.Item)
}

// Attach upserts the checklist. id and created_at survive a template change;
// completed tasks are always reset and the template snapshot replaced.
func (r *QuoteChecklistDynamoRepository) Attach(ctx context.Context, quoteID string, template *entities.ChecklistTemplate) (entities.QuoteChecklist, error) {
	var snapshot []entities.ChecklistRoom
	if template != nil {
		snapshot = template.Rooms
	}
	rooms, err := attributevalue.Marshal(toRoomItems(snapshot))
	if err != nil {
		return entities.QuoteChecklist{}, err
	}

	now := str(formatTime(r.now()))
	u := newUpdateExpr().
		set("completed_tasks", &types.AttributeValueMemberL{Value: []types.AttributeValue{}}).
		set("rooms", rooms).
		set("updated_at", now).
		name("id").
		name("created_at").
		value(":new_id", str(r.newID())).
		value(":now", now)
	if template != nil {
		u.set("template_id", str(template.ID)).set("template_name", str(template.Name))
	} else {
		u.remove("template_id").remove("template_name")
	}
	u.sets = append(u.sets,
		"#id = if_not_exists(#id, :new_id)",
		"#created_at = if_not_exists(#created_at, :now)",
	)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"quote_id": str(quoteID)},
		UpdateExpression:          aws.String(u.String()),
		ExpressionAttributeNames:  u.names,
		ExpressionAttributeValues: u.attrValues(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.QuoteChecklist{}, err
	}
	return unmarshalChecklist(out.Attributes)
}

func (r *QuoteChecklistDynamoRepository) UpdateCompletedTasks(ctx context.Context, quoteID string, tasks []string) (entities.QuoteChecklist, error) {
	list, err := attributevalue.Marshal(nonNil(tasks))
	if err != nil {
		return entities.QuoteChecklist{}, err
	}
	u := newUpdateExpr().
		set("completed_tasks", list).
		set("updated_at", str(formatTime(r.now()))).
		name("quote_id")

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"quote_id": str(quoteID)},
		ConditionExpression:       aws.String("attribute_exists(#quote_id)"),
		UpdateExpression:          aws.String(u.String()),
		ExpressionAttributeNames:  u.names,
		ExpressionAttributeValues: u.attrValues(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.QuoteChecklist{}, nil
		}
		return entities.QuoteChecklist{}, err
	}
	return unmarshalChecklist(out.Attributes)
}

func (r *QuoteChecklistDynamoRepository) DeleteByQuoteID(ctx context.Context, quoteID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       map[string]types.AttributeValue{"quote_id": str(quoteID)},
	})
	return err
}

func unmarshalChecklist(av map[string]types.AttributeValue) (entities.QuoteChecklist, error) {
	var it checklistItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.QuoteChecklist{}, err
	}
	return entities.QuoteChecklist{
		ID:             it.ID,
		QuoteID:        it.QuoteID,
		TemplateID:     it.TemplateID,
		TemplateName:   it.TemplateName,
		Rooms:          fromRoomItems(it.Rooms),
		CompletedTasks: nonNil(it.CompletedTasks),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
