package domain

import (
	"strings"
	"time"
)

type User struct {
	UserID       string    `json:"id" dynamodbav:"user_id" bson:"_id"`
	Username     string    `json:"username" dynamodbav:"username" bson:"username"`
	Email        string    `json:"email" dynamodbav:"email" bson:"email"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash" bson:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" dynamodbav:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" dynamodbav:"updated_at" bson:"updated_at"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// NormalizeEmail is applied to every email before it reaches a store, so
// registration, login and reset all look up the same key.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
