package service

import (
	"context"

	"github.com/grazeweb/my-eshop-app/internal/domain"
	"github.com/grazeweb/my-eshop-app/internal/dto"
	"gopkg.in/gomail.v2"

	pkgdto "github.com/grazeweb/my-eshop-app/pkg/dto"
	"github.com/grazeweb/my-eshop-app/pkg/response"
)

// EventPublisher writes one message to the domain event stream.
type EventPublisher interface {
	Publish(msg []byte, key string) error
}

// Mailer delivers transactional mail.
type Mailer interface {
	Send(message *gomail.Message) error
}

type ProductService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest) (err error)
	UpdateProduct(ctx context.Context, data dto.ProductRequest) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	GetProductByID(ctx context.Context, id string) (data dto.ProductResponse, err error)
	SearchProducts(ctx context.Context, filter pkgdto.Filter) (resp response.PaginationResponse, err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (resp response.PaginationResponse, err error)
	GetCategories(ctx context.Context) (data []dto.CategoryResponse, err error)
	ConsumeEvents()
}

type OrderService interface {
	CreateOrder(ctx context.Context, req dto.OrderRequest, cart domain.Cart) (resp dto.OrderResponse, err error)
	GetOrderByID(ctx context.Context, id string, userID string, isAdmin bool) (resp dto.OrderResponse, err error)
	GetUserOrders(ctx context.Context, userID string) (resp []dto.OrderResponse, err error)
	GetOrders(ctx context.Context, filter pkgdto.Filter) (resp response.PaginationResponse, err error)
	UpdateOrderStatus(ctx context.Context, req dto.OrderStatusRequest) (err error)
	HasPurchasedProduct(ctx context.Context, userID string, productID string) (bool, error)
	GetAccountSummary(ctx context.Context, userID string) (resp dto.AccountSummaryResponse, err error)
}

type CartService interface {
	GetCart(userID string) dto.CartResponse
	AddItem(ctx context.Context, userID string, req dto.CartItemRequest) (dto.CartResponse, error)
	UpdateItemQuantity(userID string, productID string, quantity int64) dto.CartResponse
	RemoveItem(userID string, productID string) dto.CartResponse
	ClearCart(userID string)
	Snapshot(userID string) domain.Cart
}

type ReviewService interface {
	AddReview(ctx context.Context, req dto.ReviewRequest) (err error)
	GetProductReviews(ctx context.Context, productID string) (resp dto.ProductReviewsResponse, err error)
	RefreshProductRatings()
}

type WishlistService interface {
	AddProduct(ctx context.Context, userID string, productID string) (err error)
	RemoveProduct(ctx context.Context, userID string, productID string) (err error)
	GetWishlist(ctx context.Context, userID string) (resp dto.WishlistResponse, err error)
}

type UserService interface {
	AddUser(ctx context.Context, data dto.UserRequest) (err error)
	Login(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error)
	GetProfile(ctx context.Context, externalID string) (resp dto.UserResponse, err error)
	SaveAddress(ctx context.Context, req dto.AddressRequest) (err error)
	GetUsers(ctx context.Context, filter pkgdto.Filter) (resp response.PaginationResponse, err error)
}

type MediaService interface {
	UploadProductImage(ctx context.Context, filename string, content []byte) (url string, err error)
}

type PolicyService interface {
	GeneratePolicy(ctx context.Context, req dto.PolicyRequest) (resp dto.PolicyResponse, err error)
}
