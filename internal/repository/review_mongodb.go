package repository

import (
	"context"

	"github.com/grazeweb/my-eshop-app/internal/domain"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBReviewRepositoryImpl struct {
	db *mongo.Database
}

func CreateReviewRepository(db *mongo.Database) ReviewRepository {
	return &MongoDBReviewRepositoryImpl{db: db}
}

func (r *MongoDBReviewRepositoryImpl) AddReview(ctx context.Context, data domain.Review) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("reviews").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddReview").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBReviewRepositoryImpl) GetReviewsByProductID(ctx context.Context, productID string) (data []domain.Review, err error) {
	filter := bson.D{{Key: "product_id", Value: productID}}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("reviews").Find(ctx, filter, findOptions)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsByProductID").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsByProductID").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBReviewRepositoryImpl) GetReviewedProductIDs(ctx context.Context) (ids []string, err error) {
	values, err := r.db.Collection("reviews").Distinct(ctx, "product_id", bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewedProductIDs").Msg("")
		return
	}

	for _, value := range values {
		if id, ok := value.(string); ok {
			ids = append(ids, id)
		}
	}

	return ids, nil
}
