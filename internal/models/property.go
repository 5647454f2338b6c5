package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Verification lifecycle of a listing. Admins move a pending listing to
// verified or rejected; no further transitions are modeled.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Property is a listing posted by an agent.
type Property struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title              string             `bson:"propertyTitle" json:"propertyTitle"`
	Location           string             `bson:"propertyLocation" json:"propertyLocation"`
	Image              string             `bson:"propertyImage,omitempty" json:"propertyImage,omitempty"`
	Description        string             `bson:"propertyDescription,omitempty" json:"propertyDescription,omitempty"`
	AgentName          string             `bson:"agentName,omitempty" json:"agentName,omitempty"`
	AgentEmail         string             `bson:"agentEmail" json:"agentEmail"`
	AgentPhoto         string             `bson:"agentPhoto,omitempty" json:"agentPhoto,omitempty"`
	PriceRangeMin      float64            `bson:"priceRangeMin" json:"priceRangeMin"`
	PriceRangeMax      float64            `bson:"priceRangeMax" json:"priceRangeMax"`
	VerificationStatus string             `bson:"propertyVerificationStatus" json:"propertyVerificationStatus"`
	Advertised         bool               `bson:"isAdvertised" json:"isAdvertised"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
}
