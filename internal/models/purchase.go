package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Purchase lifecycle: a record is created as initiated when the buyer makes
// an offer and patched to bought once the payment completes. The two writes
// are independent; a record stuck in initiated is retryable.
const (
	PurchaseInitiated = "initiated"
	PurchaseBought    = "bought"
)

// PurchaseRecord ties a buyer's offer and its eventual payment to a property.
type PurchaseRecord struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BuyerEmail       string             `bson:"buyerEmail" json:"buyerEmail"`
	BuyerName        string             `bson:"buyerName,omitempty" json:"buyerName,omitempty"`
	PropertyID       string             `bson:"propertyId" json:"propertyId"`
	PropertyTitle    string             `bson:"propertyTitle,omitempty" json:"propertyTitle,omitempty"`
	PropertyLocation string             `bson:"propertyLocation,omitempty" json:"propertyLocation,omitempty"`
	PropertyImage    string             `bson:"propertyImage,omitempty" json:"propertyImage,omitempty"`
	AgentEmail       string             `bson:"agentEmail,omitempty" json:"agentEmail,omitempty"`
	OfferedAmount    float64            `bson:"offeredAmount" json:"offeredAmount"`
	Status           string             `bson:"status" json:"status"`
	TransactionID    string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaymentDate      string             `bson:"paymentDate,omitempty" json:"paymentDate,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}
