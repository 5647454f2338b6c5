package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishListEntry snapshots a property a user has saved. At most one entry
// exists per (requesterEmail, propertyId) pair, enforced by a unique
// compound index.
type WishListEntry struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RequesterEmail     string             `bson:"requesterEmail" json:"requesterEmail"`
	PropertyID         string             `bson:"propertyId" json:"propertyId"`
	PropertyTitle      string             `bson:"propertyTitle,omitempty" json:"propertyTitle,omitempty"`
	PropertyLocation   string             `bson:"propertyLocation,omitempty" json:"propertyLocation,omitempty"`
	PropertyImage      string             `bson:"propertyImage,omitempty" json:"propertyImage,omitempty"`
	AgentName          string             `bson:"agentName,omitempty" json:"agentName,omitempty"`
	AgentEmail         string             `bson:"agentEmail,omitempty" json:"agentEmail,omitempty"`
	VerificationStatus string             `bson:"propertyVerificationStatus,omitempty" json:"propertyVerificationStatus,omitempty"`
	PriceRangeMin      float64            `bson:"priceRangeMin,omitempty" json:"priceRangeMin,omitempty"`
	PriceRangeMax      float64            `bson:"priceRangeMax,omitempty" json:"priceRangeMax,omitempty"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
}
