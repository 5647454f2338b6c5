package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SiamIslamSagor/prime-property-plus-server/internal/models"
)

type mongoWishListRepo struct {
	col *mongo.Collection
}

func NewMongoWishListRepo(db *mongo.Database, collection string) WishListRepository {
	col := db.Collection(collection)
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{
			{Key: "requesterEmail", Value: 1},
			{Key: "propertyId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return &mongoWishListRepo{col: col}
}

func (r *mongoWishListRepo) Insert(ctx context.Context, w *models.WishListEntry) (primitive.ObjectID, error) {
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, w)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoWishListRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.WishListEntry, error) {
	var w models.WishListEntry
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&w)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *mongoWishListRepo) FindByRequester(ctx context.Context, email string) ([]models.WishListEntry, error) {
	cur, err := r.col.Find(ctx, bson.M{"requesterEmail": email})
	if err != nil {
		return nil, err
	}
	entries := []models.WishListEntry{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mongoWishListRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
