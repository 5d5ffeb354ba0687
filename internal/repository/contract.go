package repository

import (
	"context"

	"github.com/grazeweb/my-eshop-app/internal/domain"
	"github.com/grazeweb/my-eshop-app/internal/dto"
	pkgdto "github.com/grazeweb/my-eshop-app/pkg/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, count int64, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	GetProductsByIDs(ctx context.Context, ids []string) (data []domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	DecrementProductStock(ctx context.Context, id string, quantity int64) (err error)
	IncrementProductUnitsSold(ctx context.Context, id string, quantity int64) (err error)
	SetProductRating(ctx context.Context, id string, rating float64) (err error)
	GetCategories(ctx context.Context) (data []domain.Category, err error)
}

type OrderRepository interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error

	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
	GetOrderByID(ctx context.Context, id string) (data domain.Order, err error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (data domain.Order, err error)
	GetOrdersByUserID(ctx context.Context, userID string) (data []domain.Order, err error)
	GetOrders(ctx context.Context, filter pkgdto.Filter) (data []domain.Order, count int64, err error)
	UpdateOrderStatus(ctx context.Context, id string, from domain.OrderStatus, to domain.OrderStatus) (err error)
	HasDeliveredOrderWithProduct(ctx context.Context, userID string, productID string) (bool, error)
}

type ReviewRepository interface {
	AddReview(ctx context.Context, data domain.Review) (id primitive.ObjectID, err error)
	GetReviewsByProductID(ctx context.Context, productID string) (data []domain.Review, err error)
	GetReviewedProductIDs(ctx context.Context) (ids []string, err error)
}

type WishlistRepository interface {
	AddProduct(ctx context.Context, userID string, productID string) (err error)
	RemoveProduct(ctx context.Context, userID string, productID string) (err error)
	GetWishlist(ctx context.Context, userID string) (data domain.Wishlist, err error)
}

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id int64, err error)
	GetUserByEmail(ctx context.Context, email string) (data domain.User, err error)
	GetUserByID(ctx context.Context, id int64) (data domain.User, err error)
	GetUserByExternalID(ctx context.Context, externalID string) (data domain.User, err error)
	UpdateUserAddress(ctx context.Context, data domain.User) (err error)
	GetUsers(ctx context.Context, filter pkgdto.Filter) (data []domain.User, err error)
	CountUsers(ctx context.Context) (count int64, err error)
}

type ProductSearchRepository interface {
	IndexProduct(ctx context.Context, data dto.ProductResponse) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	SearchProducts(ctx context.Context, filter pkgdto.Filter) (data []dto.ProductResponse, count int, err error)
}
