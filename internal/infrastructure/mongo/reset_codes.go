package mongoinfra

import (
	"context"
	"errors"
	"fmt"

	"github.com/vrentals-api/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ResetCodeRepo stores password-reset codes. The TTL index on expires_at
// only garbage-collects; Get still returns a code the sweeper has not
// reached, and callers compare ExpiresAt themselves.
type ResetCodeRepo struct {
	coll *mongo.Collection
}

func NewResetCodeRepo(db *mongo.Database) *ResetCodeRepo {
	return &ResetCodeRepo{coll: db.Collection(collResetCodes)}
}

func (r *ResetCodeRepo) Put(ctx context.Context, c *domain.ResetCode) error {
	_, err := r.coll.ReplaceOne(ctx, codeFilter(c.Email, c.Code), c, options.Replace().SetUpsert(true))
	return err
}

func (r *ResetCodeRepo) Get(ctx context.Context, email, code string) (*domain.ResetCode, error) {
	var c domain.ResetCode
	err := r.coll.FindOne(ctx, codeFilter(email, code)).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("reset code not found: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ResetCodeRepo) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.coll.DeleteMany(ctx, bson.D{{Key: "email", Value: email}})
	return err
}

func codeFilter(email, code string) bson.D {
	return bson.D{{Key: "email", Value: email}, {Key: "code", Value: code}}
}
