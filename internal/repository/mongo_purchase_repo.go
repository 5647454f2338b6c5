package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SiamIslamSagor/prime-property-plus-server/internal/models"
)

type mongoPurchaseRepo struct {
	col *mongo.Collection
}

func NewMongoPurchaseRepo(db *mongo.Database, collection string) PurchaseRepository {
	return &mongoPurchaseRepo{col: db.Collection(collection)}
}

func (r *mongoPurchaseRepo) Insert(ctx context.Context, p *models.PurchaseRecord) (primitive.ObjectID, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoPurchaseRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PurchaseRecord, error) {
	var p models.PurchaseRecord
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoPurchaseRepo) FindByBuyer(ctx context.Context, email string) ([]models.PurchaseRecord, error) {
	return r.findMany(ctx, bson.M{"buyerEmail": email})
}

func (r *mongoPurchaseRepo) FindByAgent(ctx context.Context, email string) ([]models.PurchaseRecord, error) {
	return r.findMany(ctx, bson.M{"agentEmail": email})
}

func (r *mongoPurchaseRepo) SetPayment(ctx context.Context, id primitive.ObjectID, transactionID, paymentDate string) (int64, error) {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"transactionId": transactionID,
		"paymentDate":   paymentDate,
		"status":        models.PurchaseBought,
	}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *mongoPurchaseRepo) findMany(ctx context.Context, filter bson.M) ([]models.PurchaseRecord, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	records := []models.PurchaseRecord{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
