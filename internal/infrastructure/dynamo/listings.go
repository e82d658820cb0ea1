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

// ListingRepo provides typed DynamoDB operations for the listings table.
// Every item carries feed="all" so the feed GSI returns all listings
// ordered by listing_id, which is a ULID and therefore creation-ordered.
type ListingRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewListingRepo(client *dynamodb.Client, tableName string) *ListingRepo {
	return &ListingRepo{client: client, tableName: tableName}
}

func (r *ListingRepo) Put(ctx context.Context, l *domain.Listing) error {
	item, err := attributevalue.MarshalMap(l)
	if err != nil {
		return fmt.Errorf("marshal listing: %w", err)
	}
	item[attrFeed] = &types.AttributeValueMemberS{Value: feedPartition}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListNewestFirst reads the whole feed, following LastEvaluatedKey until
// the index is exhausted.
func (r *ListingRepo) ListNewestFirst(ctx context.Context) ([]domain.Listing, error) {
	input := r.feedQuery()
	var listings []domain.Listing
	for {
		out, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []domain.Listing
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		listings = append(listings, page...)
		if len(out.LastEvaluatedKey) == 0 {
			return listings, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// IsEmpty reports whether the feed holds no listings.
func (r *ListingRepo) IsEmpty(ctx context.Context) (bool, error) {
	input := r.feedQuery()
	input.Limit = aws.Int32(1)
	out, err := r.client.Query(ctx, input)
	if err != nil {
		return false, err
	}
	return len(out.Items) == 0, nil
}

func (r *ListingRepo) SetSold(ctx context.Context, listingID string, sold bool) error {
	return updateExisting(ctx, r.client, r.tableName, attrListingID, listingID, map[string]interface{}{
		attrSold: sold,
	})
}

func (r *ListingRepo) feedQuery() *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(indexFeed),
		KeyConditionExpression:    aws.String("#f = :f"),
		ExpressionAttributeNames:  map[string]string{"#f": attrFeed},
		ExpressionAttributeValues: map[string]types.AttributeValue{":f": &types.AttributeValueMemberS{Value: feedPartition}},
		ScanIndexForward:          aws.Bool(false),
	}
}
