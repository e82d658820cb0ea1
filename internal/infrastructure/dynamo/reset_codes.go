package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/vrentals-api/internal/domain"
)

// batchWriteLimit is the maximum number of requests in one BatchWriteItem call.
const batchWriteLimit = 25

// ResetCodeRepo manages password-reset codes.
// PK: email, SK: code. expires_at is the table's TTL attribute.
type ResetCodeRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewResetCodeRepo(client *dynamodb.Client, tableName string) *ResetCodeRepo {
	return &ResetCodeRepo{client: client, tableName: tableName}
}

func (r *ResetCodeRepo) Put(ctx context.Context, c *domain.ResetCode) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal reset code: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// Get returns the record for the exact (email, code) pair. Expired records
// that TTL has not yet swept are returned as-is; callers check ExpiresAt.
func (r *ResetCodeRepo) Get(ctx context.Context, email, code string) (*domain.ResetCode, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            compositeKey(attrEmail, email, attrCode, code),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("reset code not found: %w", domain.ErrNotFound)
	}
	var c domain.ResetCode
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteByEmail removes every code issued to email.
func (r *ResetCodeRepo) DeleteByEmail(ctx context.Context, email string) error {
	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    aws.String("#e = :e"),
		ProjectionExpression:      aws.String("#e, #c"),
		ExpressionAttributeNames:  map[string]string{"#e": attrEmail, "#c": attrCode},
		ExpressionAttributeValues: map[string]types.AttributeValue{":e": &types.AttributeValueMemberS{Value: email}},
		ConsistentRead:            aws.Bool(true),
	}
	var keys []map[string]types.AttributeValue
	for {
		out, err := r.client.Query(ctx, input)
		if err != nil {
			return err
		}
		keys = append(keys, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	for _, batch := range chunk(keys, batchWriteLimit) {
		reqs := make([]types.WriteRequest, len(batch))
		for i, k := range batch {
			reqs[i] = types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: k}}
		}
		if err := r.batchDelete(ctx, reqs); err != nil {
			return err
		}
	}
	return nil
}

// batchDelete resubmits unprocessed items until DynamoDB accepts them all.
func (r *ResetCodeRepo) batchDelete(ctx context.Context, reqs []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: reqs}
	for len(pending[r.tableName]) > 0 {
		out, err := r.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return fmt.Errorf("batch delete reset codes: %w", err)
		}
		pending = out.UnprocessedItems
	}
	return nil
}

func chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for size < len(items) {
		items, out = items[size:], append(out, items[:size])
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}
