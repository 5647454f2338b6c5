package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SiamIslamSagor/prime-property-plus-server/internal/models"
)

var (
	// ErrNotFound is returned when a lookup addresses an absent document.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate document")
)

// UserRepository persists accounts keyed by unique email.
type UserRepository interface {
	Insert(ctx context.Context, u *models.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (int64, error)
}

// PropertyRepository persists listings and their lifecycle patches.
type PropertyRepository interface {
	Insert(ctx context.Context, p *models.Property) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	FindAll(ctx context.Context) ([]models.Property, error)
	FindVerified(ctx context.Context) ([]models.Property, error)
	FindAdvertised(ctx context.Context) ([]models.Property, error)
	FindByAgent(ctx context.Context, email string) ([]models.Property, error)
	SetVerificationStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error)
	SetAdvertised(ctx context.Context, id primitive.ObjectID, advertised bool) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// ReviewRepository persists property reviews. No update path exists.
type ReviewRepository interface {
	Insert(ctx context.Context, r *models.Review) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]models.Review, error)
	FindByReviewer(ctx context.Context, email string) ([]models.Review, error)
	FindByProperty(ctx context.Context, propertyID string) ([]models.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// WishListRepository persists saved-property snapshots, unique per
// (requesterEmail, propertyId).
type WishListRepository interface {
	Insert(ctx context.Context, w *models.WishListEntry) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.WishListEntry, error)
	FindByRequester(ctx context.Context, email string) ([]models.WishListEntry, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// PurchaseRepository persists purchase records and their payment patches.
type PurchaseRepository interface {
	Insert(ctx context.Context, p *models.PurchaseRecord) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.PurchaseRecord, error)
	FindByBuyer(ctx context.Context, email string) ([]models.PurchaseRecord, error)
	FindByAgent(ctx context.Context, email string) ([]models.PurchaseRecord, error)
	SetPayment(ctx context.Context, id primitive.ObjectID, transactionID, paymentDate string) (int64, error)
}
