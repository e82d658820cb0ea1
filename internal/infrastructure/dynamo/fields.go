package dynamo

// DynamoDB attribute and index names shared across repos.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	attrUserID       = "user_id"
	attrEmail        = "email"
	attrPasswordHash = "password_hash"
	attrUpdatedAt    = "updated_at"
	attrListingID    = "listing_id"
	attrSold         = "sold"
	attrFeed         = "feed"
	attrCode         = "code"
	attrExpiresAt    = "expires_at"

	indexEmail = "email-index"
	indexFeed  = "feed-listing_id-index"

	// feedPartition is the constant GSI hash value every listing carries so
	// the whole feed can be read with one Query ordered by listing_id (ULID).
	feedPartition = "all"
)
