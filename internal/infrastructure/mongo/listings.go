package mongoinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/vrentals-api/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ListingRepo stores listings keyed by their ULID, so sorting on _id
// descending yields newest first.
type ListingRepo struct {
	coll *mongo.Collection
}

func NewListingRepo(db *mongo.Database) *ListingRepo {
	return &ListingRepo{coll: db.Collection(collListings)}
}

func (r *ListingRepo) Put(ctx context.Context, l *domain.Listing) error {
	_, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: l.ListingID}}, l, options.Replace().SetUpsert(true))
	return err
}

func (r *ListingRepo) ListNewestFirst(ctx context.Context) ([]domain.Listing, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var listings []domain.Listing
	if err := cur.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *ListingRepo) IsEmpty(ctx context.Context) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func (r *ListingRepo) SetSold(ctx context.Context, listingID string, sold bool) error {
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: listingID}}, bson.D{{Key: "$set", Value: bson.D{
		{Key: "sold", Value: sold},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("listing not found: %w", domain.ErrNotFound)
	}
	return nil
}
