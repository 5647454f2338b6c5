package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is left by a user against a single property. Reviews are created
// and deleted, never updated.
type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ReviewerEmail string             `bson:"reviewerEmail" json:"reviewerEmail"`
	ReviewerName  string             `bson:"reviewerName,omitempty" json:"reviewerName,omitempty"`
	ReviewerPhoto string             `bson:"reviewerPhoto,omitempty" json:"reviewerPhoto,omitempty"`
	PropertyID    string             `bson:"propertyId" json:"propertyId"`
	PropertyTitle string             `bson:"propertyTitle,omitempty" json:"propertyTitle,omitempty"`
	AgentName     string             `bson:"agentName,omitempty" json:"agentName,omitempty"`
	Rating        float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Comment       string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
