package service

import (
	"context"
	"encoding/json"

	"github.com/grazeweb/my-eshop-app/internal/domain"
	"github.com/grazeweb/my-eshop-app/internal/dto"
	pkgdto "github.com/grazeweb/my-eshop-app/pkg/dto"
	"github.com/grazeweb/my-eshop-app/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/gomail.v2"
)

type fakeProductRepository struct {
	products map[string]*domain.Product
}

func newFakeProductRepository(products ...domain.Product) *fakeProductRepository {
	repo := &fakeProductRepository{products: make(map[string]*domain.Product)}
	for i := range products {
		p := products[i]
		repo.products[p.ID.Hex()] = &p
	}
	return repo
}

func (r *fakeProductRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	data.ID = id
	r.products[id.Hex()] = &data
	return id, nil
}

func (r *fakeProductRepository) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]domain.Product, int64, error) {
	var data []domain.Product
	for _, p := range r.products {
		data = append(data, *p)
	}
	return data, int64(len(data)), nil
}

func (r *fakeProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, errs.ErrNotFound
	}
	return *p, nil
}

func (r *fakeProductRepository) GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	var data []domain.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			data = append(data, *p)
		}
	}
	return data, nil
}

func (r *fakeProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	if _, ok := r.products[data.ID.Hex()]; !ok {
		return errs.ErrNotFound
	}
	r.products[data.ID.Hex()] = &data
	return nil
}

func (r *fakeProductRepository) DeleteProduct(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return errs.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepository) DecrementProductStock(ctx context.Context, id string, quantity int64) error {
	p, ok := r.products[id]
	if !ok || p.Stock < quantity {
		return errs.ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

func (r *fakeProductRepository) IncrementProductUnitsSold(ctx context.Context, id string, quantity int64) error {
	p, ok := r.products[id]
	if !ok {
		return errs.ErrNotFound
	}
	p.UnitsSold += quantity
	return nil
}

func (r *fakeProductRepository) SetProductRating(ctx context.Context, id string, rating float64) error {
	p, ok := r.products[id]
	if !ok {
		return errs.ErrNotFound
	}
	p.Rating = rating
	return nil
}

func (r *fakeProductRepository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return nil, nil
}

type fakeOrderRepository struct {
	orders map[string]*domain.Order
}

func newFakeOrderRepository(orders ...domain.Order) *fakeOrderRepository {
	repo := &fakeOrderRepository{orders: make(map[string]*domain.Order)}
	for i := range orders {
		o := orders[i]
		if o.ID.IsZero() {
			o.ID = primitive.NewObjectID()
		}
		repo.orders[o.ID.Hex()] = &o
	}
	return repo
}

func (r *fakeOrderRepository) HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (r *fakeOrderRepository) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	data.ID = id
	r.orders[id.Hex()] = &data
	return id, nil
}

func (r *fakeOrderRepository) GetOrderByID(ctx context.Context, id string) (domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return domain.Order{}, errs.ErrNotFound
	}
	return *o, nil
}

func (r *fakeOrderRepository) GetOrderByNumber(ctx context.Context, orderNumber string) (domain.Order, error) {
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			return *o, nil
		}
	}
	return domain.Order{}, errs.ErrNotFound
}

func (r *fakeOrderRepository) GetOrdersByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	var data []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			data = append(data, *o)
		}
	}
	return data, nil
}

func (r *fakeOrderRepository) GetOrders(ctx context.Context, filter pkgdto.Filter) ([]domain.Order, int64, error) {
	var data []domain.Order
	for _, o := range r.orders {
		data = append(data, *o)
	}
	return data, int64(len(data)), nil
}

func (r *fakeOrderRepository) UpdateOrderStatus(ctx context.Context, id string, from domain.OrderStatus, to domain.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return errs.ErrNotFound
	}
	if o.Status != from {
		return errs.ErrConflict
	}
	o.Status = to
	return nil
}

func (r *fakeOrderRepository) HasDeliveredOrderWithProduct(ctx context.Context, userID string, productID string) (bool, error) {
	for _, o := range r.orders {
		if o.UserID != userID || o.Status != domain.OrderStatusDelivered {
			continue
		}
		for _, item := range o.Items {
			if item.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

type fakeReviewRepository struct {
	reviews       []domain.Review
	failProductID string
}

func (r *fakeReviewRepository) AddReview(ctx context.Context, data domain.Review) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.reviews = append(r.reviews, data)
	return data.ID, nil
}

func (r *fakeReviewRepository) GetReviewsByProductID(ctx context.Context, productID string) ([]domain.Review, error) {
	if r.failProductID != "" && r.failProductID == productID {
		return nil, errs.ErrInternalServer
	}
	var data []domain.Review
	for _, review := range r.reviews {
		if review.ProductID == productID {
			data = append(data, review)
		}
	}
	return data, nil
}

func (r *fakeReviewRepository) GetReviewedProductIDs(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, review := range r.reviews {
		if !seen[review.ProductID] {
			seen[review.ProductID] = true
			ids = append(ids, review.ProductID)
		}
	}
	return ids, nil
}

type fakeWishlistRepository struct {
	wishlists map[string]*domain.Wishlist
}

func newFakeWishlistRepository() *fakeWishlistRepository {
	return &fakeWishlistRepository{wishlists: make(map[string]*domain.Wishlist)}
}

func (r *fakeWishlistRepository) AddProduct(ctx context.Context, userID string, productID string) error {
	w, ok := r.wishlists[userID]
	if !ok {
		w = &domain.Wishlist{UserID: userID}
		r.wishlists[userID] = w
	}
	if !w.Contains(productID) {
		w.ProductIDs = append(w.ProductIDs, productID)
	}
	return nil
}

func (r *fakeWishlistRepository) RemoveProduct(ctx context.Context, userID string, productID string) error {
	w, ok := r.wishlists[userID]
	if !ok {
		return nil
	}
	for i, id := range w.ProductIDs {
		if id == productID {
			w.ProductIDs = append(w.ProductIDs[:i], w.ProductIDs[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeWishlistRepository) GetWishlist(ctx context.Context, userID string) (domain.Wishlist, error) {
	w, ok := r.wishlists[userID]
	if !ok {
		return domain.Wishlist{UserID: userID}, nil
	}
	return *w, nil
}

type fakeUserRepository struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[int64]*domain.User)}
}

func (r *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	r.users[data.ID] = &data
	return data.ID, nil
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return *u, nil
		}
	}
	return domain.User{}, nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, errs.ErrAccountNotFound
	}
	return *u, nil
}

func (r *fakeUserRepository) GetUserByExternalID(ctx context.Context, externalID string) (domain.User, error) {
	for _, u := range r.users {
		if u.ExternalID == externalID {
			return *u, nil
		}
	}
	return domain.User{}, errs.ErrAccountNotFound
}

func (r *fakeUserRepository) UpdateUserAddress(ctx context.Context, data domain.User) error {
	for _, u := range r.users {
		if u.ExternalID == data.ExternalID {
			u.AddressLine = data.AddressLine
			u.AddressCity = data.AddressCity
			u.AddressZip = data.AddressZip
			return nil
		}
	}
	return errs.ErrAccountNotFound
}

func (r *fakeUserRepository) GetUsers(ctx context.Context, filter pkgdto.Filter) ([]domain.User, error) {
	var data []domain.User
	for _, u := range r.users {
		data = append(data, *u)
	}
	if filter.Limit != 0 && filter.Page != 0 {
		offset := (filter.Page - 1) * filter.Limit
		if offset >= len(data) {
			return nil, nil
		}
		end := offset + filter.Limit
		if end > len(data) {
			end = len(data)
		}
		data = data[offset:end]
	}
	return data, nil
}

func (r *fakeUserRepository) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type publishedEvent struct {
	Key     string
	Message dto.KafkaMessage
}

type fakePublisher struct {
	events []publishedEvent
	raw    [][]byte
}

func (p *fakePublisher) Publish(msg []byte, key string) error {
	p.raw = append(p.raw, msg)

	var decoded dto.KafkaMessage
	if err := json.Unmarshal(msg, &decoded); err != nil {
		return err
	}

	p.events = append(p.events, publishedEvent{Key: key, Message: decoded})
	return nil
}

type fakeMailer struct {
	sent []*gomail.Message
}

func (m *fakeMailer) Send(message *gomail.Message) error {
	m.sent = append(m.sent, message)
	return nil
}
