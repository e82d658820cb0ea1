package domain

import "time"

// ResetCode is a password-reset one-time code.
// PK: email, SK: code. Several live codes may exist for one email.
// ExpiresAt is authoritative; the store-level TTL only garbage-collects.
type ResetCode struct {
	Email     string    `json:"email" dynamodbav:"email" bson:"email"`
	Code      string    `json:"code" dynamodbav:"code" bson:"code"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"created_at" bson:"created_at"`
	ExpiresAt time.Time `json:"expiresAt" dynamodbav:"expires_at,unixtime" bson:"expires_at"`
}

// ExpiredAt reports whether the code is no longer usable at t.
func (c *ResetCode) ExpiredAt(t time.Time) bool {
	return !t.Before(c.ExpiresAt)
}
