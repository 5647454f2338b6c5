package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SiamIslamSagor/prime-property-plus-server/internal/models"
)

type mongoPropertyRepo struct {
	col *mongo.Collection
}

func NewMongoPropertyRepo(db *mongo.Database, collection string) PropertyRepository {
	return &mongoPropertyRepo{col: db.Collection(collection)}
}

func (r *mongoPropertyRepo) Insert(ctx context.Context, p *models.Property) (primitive.ObjectID, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoPropertyRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	var p models.Property
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoPropertyRepo) FindAll(ctx context.Context) ([]models.Property, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *mongoPropertyRepo) FindVerified(ctx context.Context) ([]models.Property, error) {
	return r.findMany(ctx, bson.M{"propertyVerificationStatus": models.VerificationVerified})
}

func (r *mongoPropertyRepo) FindAdvertised(ctx context.Context) ([]models.Property, error) {
	return r.findMany(ctx, bson.M{
		"isAdvertised":               true,
		"propertyVerificationStatus": models.VerificationVerified,
	})
}

func (r *mongoPropertyRepo) FindByAgent(ctx context.Context, email string) ([]models.Property, error) {
	return r.findMany(ctx, bson.M{"agentEmail": email})
}

func (r *mongoPropertyRepo) SetVerificationStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"propertyVerificationStatus": status}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *mongoPropertyRepo) SetAdvertised(ctx context.Context, id primitive.ObjectID, advertised bool) (int64, error) {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"isAdvertised": advertised}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *mongoPropertyRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *mongoPropertyRepo) findMany(ctx context.Context, filter bson.M) ([]models.Property, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	props := []models.Property{}
	if err := cur.All(ctx, &props); err != nil {
		return nil, err
	}
	return props, nil
}
