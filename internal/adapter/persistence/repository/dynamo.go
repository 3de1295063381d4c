package repository

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
)

// timeLayout is fixed width so stored timestamps compare lexicographically
// in condition expressions (share_expires_at > :now).
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, opts ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, opts ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

type Tables struct {
	Tenants            string
	Quotes             string
	Checklists         string
	Clients            string
	TeamMembers        string
	ChecklistTemplates string
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := parseTime(*s)
	return &t
}

func str(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

func boolAV(v bool) types.AttributeValue {
	return &types.AttributeValueMemberBOOL{Value: v}
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// isTransactionConditionFailed reports whether a transaction was cancelled
// because one of its conditions failed; idx receives the failing item index.
func isTransactionConditionFailed(err error) (idx int, ok bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return -1, false
	}
	for i, r := range tce.CancellationReasons {
		if r.Code != nil && *r.Code == "ConditionalCheckFailed" {
			return i, true
		}
	}
	return -1, false
}

// updateExpr accumulates SET/REMOVE clauses for UpdateItem.
type updateExpr struct {
	sets    []string
	removes []string
	names   map[string]string
	values  map[string]types.AttributeValue
}

func newUpdateExpr() *updateExpr {
	return &updateExpr{names: map[string]string{}, values: map[string]types.AttributeValue{}}
}

func (u *updateExpr) set(attr string, v types.AttributeValue) *updateExpr {
	u.names["#"+attr] = attr
	u.values[":"+attr] = v
	u.sets = append(u.sets, "#"+attr+" = :"+attr)
	return u
}

func (u *updateExpr) remove(attr string) *updateExpr {
	u.names["#"+attr] = attr
	u.removes = append(u.removes, "#"+attr)
	return u
}

// name registers an attribute referenced only by a condition.
func (u *updateExpr) name(attr string) *updateExpr {
	u.names["#"+attr] = attr
	return u
}

func (u *updateExpr) value(key string, v types.AttributeValue) *updateExpr {
	u.values[key] = v
	return u
}

func (u *updateExpr) String() string {
	var b strings.Builder
	if len(u.sets) > 0 {
		b.WriteString("SET ")
		b.WriteString(strings.Join(u.sets, ", "))
	}
	if len(u.removes) > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("REMOVE ")
		b.WriteString(strings.Join(u.removes, ", "))
	}
	return b.String()
}

func (u *updateExpr) attrValues() map[string]types.AttributeValue {
	if len(u.values) == 0 {
		return nil
	}
	return u.values
}
