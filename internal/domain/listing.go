package domain

import "time"

// ContactPlaceholder replaces a listing's contact number for anonymous viewers.
const ContactPlaceholder = "Login to view contact number"

type Listing struct {
	ListingID     string    `json:"id" dynamodbav:"listing_id" bson:"_id"`
	Title         string    `json:"title" dynamodbav:"title" bson:"title"`
	Description   string    `json:"description" dynamodbav:"description" bson:"description"`
	Price         string    `json:"price" dynamodbav:"price" bson:"price"`
	ImageURL      string    `json:"imageUrl" dynamodbav:"image_url" bson:"image_url"`
	ContactNumber string    `json:"contactNumber" dynamodbav:"contact_number" bson:"contact_number"`
	OwnerID       *string   `json:"ownerId" dynamodbav:"owner_id" bson:"owner_id"`
	Sold          bool      `json:"sold" dynamodbav:"sold" bson:"sold"`
	CreatedAt     time.Time `json:"createdAt" dynamodbav:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" dynamodbav:"updated_at" bson:"updated_at"`
}

// CreateListingRequest carries the text fields of a new listing; the image
// travels separately as a stream.
type CreateListingRequest struct {
	Title         string `validate:"required"`
	Description   string `validate:"required"`
	Price         string `validate:"required"`
	ContactNumber string `validate:"required"`
}
