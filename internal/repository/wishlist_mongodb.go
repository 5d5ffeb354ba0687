package repository

import (
	"context"

	"github.com/grazeweb/my-eshop-app/internal/domain"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBWishlistRepositoryImpl struct {
	db *mongo.Database
}

func CreateWishlistRepository(db *mongo.Database) WishlistRepository {
	return &MongoDBWishlistRepositoryImpl{db: db}
}

// AddProduct unions the product id into the user's wishlist document,
// creating the document on first add. $addToSet makes repeated adds a
// no-op.
func (r *MongoDBWishlistRepositoryImpl) AddProduct(ctx context.Context, userID string, productID string) (err error) {
	filter := bson.D{{Key: "_id", Value: userID}}
	update := bson.D{{Key: "$addToSet", Value: bson.D{{Key: "product_ids", Value: productID}}}}

	_, err = r.db.Collection("wishlists").UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return
}

// RemoveProduct pulls the product id out of the set. Removing an absent id
// is a no-op.
func (r *MongoDBWishlistRepositoryImpl) RemoveProduct(ctx context.Context, userID string, productID string) (err error) {
	filter := bson.D{{Key: "_id", Value: userID}}
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "product_ids", Value: productID}}}}

	_, err = r.db.Collection("wishlists").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "RemoveProduct").Msg("")
		return
	}

	return
}

func (r *MongoDBWishlistRepositoryImpl) GetWishlist(ctx context.Context, userID string) (data domain.Wishlist, err error) {
	filter := bson.D{{Key: "_id", Value: userID}}

	err = r.db.Collection("wishlists").FindOne(ctx, filter).Decode(&data)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.Wishlist{UserID: userID}, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetWishlist").Msg("")
		return
	}

	return data, nil
}
