package dynamo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdateExpr_SingleField(t *testing.T) {
	ue, err := buildUpdateExpr(map[string]interface{}{"password_hash": "h"})
	require.NoError(t, err)
	assert.Equal(t, "SET #f0 = :v0", ue.Expr)
	assert.Equal(t, map[string]string{"#f0": "password_hash"}, ue.Names)
	_, ok := ue.Values[":v0"]
	assert.True(t, ok)
}

func TestBuildUpdateExpr_MultipleFields_Deterministic(t *testing.T) {
	updates := map[string]interface{}{
		"sold":       true,
		"updated_at": "2026-01-01T00:00:00Z",
		"price":      "₹7,000/month",
	}
	ue1, err := buildUpdateExpr(updates)
	require.NoError(t, err)
	ue2, err := buildUpdateExpr(updates)
	require.NoError(t, err)

	assert.Equal(t, ue1.Expr, ue2.Expr)
	assert.Equal(t, "price", ue1.Names["#f0"])
	assert.Equal(t, "sold", ue1.Names["#f1"])
	assert.Equal(t, "updated_at", ue1.Names["#f2"])
	assert.Equal(t, "SET #f0 = :v0, #f1 = :v1, #f2 = :v2", ue1.Expr)
}

func TestBuildUpdateExpr_ValuesMarshalledCorrectly(t *testing.T) {
	ue, err := buildUpdateExpr(map[string]interface{}{"sold": true})
	require.NoError(t, err)
	av, ok := ue.Values[":v0"]
	require.True(t, ok)
	boolVal, isBool := av.(*types.AttributeValueMemberBOOL)
	require.True(t, isBool)
	assert.True(t, boolVal.Value)
}

func TestBuildUpdateExpr_EmptyMap_ReturnsError(t *testing.T) {
	_, err := buildUpdateExpr(map[string]interface{}{})
	assert.ErrorContains(t, err, "no fields to update")
}

func TestCompositeKey(t *testing.T) {
	k := compositeKey("email", "a@x.com", "code", "123456")
	require.Len(t, k, 2)
	assert.Equal(t, "a@x.com", k["email"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "123456", k["code"].(*types.AttributeValueMemberS).Value)
}

func TestIsConditionFailed(t *testing.T) {
	wrapped := fmt.Errorf("update: %w", &types.ConditionalCheckFailedException{})
	assert.True(t, isConditionFailed(wrapped))
	assert.False(t, isConditionFailed(errors.New("throttled")))
	assert.False(t, isConditionFailed(nil))
}

func TestChunk(t *testing.T) {
	items := make([]int, 53)
	batches := chunk(items, 25)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 25)
	assert.Len(t, batches[1], 25)
	assert.Len(t, batches[2], 3)
	assert.Empty(t, chunk([]int{}, 25))
}

func TestGSI_WithSortKey(t *testing.T) {
	g := gsi(indexFeed, attrFeed, attrListingID)
	require.Len(t, g.KeySchema, 2)
	assert.Equal(t, attrFeed, *g.KeySchema[0].AttributeName)
	assert.Equal(t, types.KeyTypeHash, g.KeySchema[0].KeyType)
	assert.Equal(t, attrListingID, *g.KeySchema[1].AttributeName)
	assert.Equal(t, types.KeyTypeRange, g.KeySchema[1].KeyType)
}
