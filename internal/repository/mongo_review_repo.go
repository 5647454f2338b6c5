package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SiamIslamSagor/prime-property-plus-server/internal/models"
)

type mongoReviewRepo struct {
	col *mongo.Collection
}

func NewMongoReviewRepo(db *mongo.Database, collection string) ReviewRepository {
	return &mongoReviewRepo{col: db.Collection(collection)}
}

func (r *mongoReviewRepo) Insert(ctx context.Context, rev *models.Review) (primitive.ObjectID, error) {
	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, rev)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoReviewRepo) FindAll(ctx context.Context) ([]models.Review, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *mongoReviewRepo) FindByReviewer(ctx context.Context, email string) ([]models.Review, error) {
	return r.findMany(ctx, bson.M{"reviewerEmail": email})
}

func (r *mongoReviewRepo) FindByProperty(ctx context.Context, propertyID string) ([]models.Review, error) {
	return r.findMany(ctx, bson.M{"propertyId": propertyID})
}

func (r *mongoReviewRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *mongoReviewRepo) findMany(ctx context.Context, filter bson.M) ([]models.Review, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
