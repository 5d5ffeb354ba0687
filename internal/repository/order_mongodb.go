package repository

import (
	"context"
	"time"

	"github.com/grazeweb/my-eshop-app/internal/domain"
	"github.com/grazeweb/my-eshop-app/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	pkgdto "github.com/grazeweb/my-eshop-app/pkg/dto"
)

type MongoDBOrderRepositoryImpl struct {
	db *mongo.Database
}

func CreateOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoDBOrderRepositoryImpl{db: db}
}

// HandleTrx runs fn inside a single MongoDB transaction. The session
// context is handed to fn, so any repository call made with it joins the
// same transaction.
func (r *MongoDBOrderRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if err := fn(sessCtx); err != nil {
			return nil, err
		}
		return nil, nil
	})

	return err
}

func (r *MongoDBOrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("orders").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrderByID(ctx context.Context, id string) (data domain.Order, err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return data, errs.ErrNotFound
	}

	filter := bson.D{{Key: "_id", Value: orderID}}

	err = r.db.Collection("orders").FindOne(ctx, filter).Decode(&data)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")
		return data, err
	}

	return data, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrderByNumber(ctx context.Context, orderNumber string) (data domain.Order, err error) {
	filter := bson.D{{Key: "order_number", Value: orderNumber}}

	err = r.db.Collection("orders").FindOne(ctx, filter).Decode(&data)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByNumber").Msg("")
		return data, err
	}

	return data, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrdersByUserID(ctx context.Context, userID string) (data []domain.Order, err error) {
	filter := bson.D{{Key: "user_id", Value: userID}}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection("orders").Find(ctx, filter, findOptions)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUserID").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUserID").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrders(ctx context.Context, param pkgdto.Filter) (data []domain.Order, count int64, err error) {
	filter := bson.D{}
	if param.Status != "" {
		filter = append(filter, bson.E{Key: "status", Value: param.Status})
	}

	count, err = r.db.Collection("orders").CountDocuments(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if param.Limit != 0 && param.Page != 0 {
		findOptions.SetLimit(int64(param.Limit))
		findOptions.SetSkip((int64(param.Page) - 1) * int64(param.Limit))
	}

	cursor, err := r.db.Collection("orders").Find(ctx, filter, findOptions)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	return data, count, nil
}

// UpdateOrderStatus writes the new status only when the order is still in
// the expected current status. A lost race surfaces as ErrConflict instead
// of a silent double transition.
func (r *MongoDBOrderRepositoryImpl) UpdateOrderStatus(ctx context.Context, id string, from domain.OrderStatus, to domain.OrderStatus) (err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrNotFound
	}

	filter := bson.D{
		{Key: "_id", Value: orderID},
		{Key: "status", Value: from},
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: to},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}

	result, err := r.db.Collection("orders").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrConflict
	}

	return
}

func (r *MongoDBOrderRepositoryImpl) HasDeliveredOrderWithProduct(ctx context.Context, userID string, productID string) (bool, error) {
	filter := bson.D{
		{Key: "user_id", Value: userID},
		{Key: "status", Value: domain.OrderStatusDelivered},
		{Key: "items.product_id", Value: productID},
	}

	count, err := r.db.Collection("orders").CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "HasDeliveredOrderWithProduct").Msg("")
		return false, err
	}

	return count > 0, nil
}
