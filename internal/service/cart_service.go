package service

import (
	"context"
	"sync"

	"github.com/grazeweb/my-eshop-app/config"
	"github.com/grazeweb/my-eshop-app/internal/domain"
	"github.com/grazeweb/my-eshop-app/internal/dto"
	"github.com/grazeweb/my-eshop-app/internal/repository"
)

// CartServiceImpl owns one cart per signed-in user for the lifetime of the
// process. Carts are deliberately not persisted.
type CartServiceImpl struct {
	mu          sync.Mutex
	carts       map[string]*domain.Cart
	productRepo repository.ProductRepository
	config      config.Config
}

func CreateCartService(productRepo repository.ProductRepository, config config.Config) CartService {
	return &CartServiceImpl{
		carts:       make(map[string]*domain.Cart),
		productRepo: productRepo,
		config:      config,
	}
}

func (s *CartServiceImpl) cart(userID string) *domain.Cart {
	cart, ok := s.carts[userID]
	if !ok {
		cart = &domain.Cart{}
		s.carts[userID] = cart
	}
	return cart
}

func (s *CartServiceImpl) toResponse(cart *domain.Cart) dto.CartResponse {
	items := make([]domain.CartItem, len(cart.Items))
	copy(items, cart.Items)

	return dto.CartResponse{
		Items:  items,
		Totals: cart.Totals(s.config.ShippingConfig.Policy, s.config.ShippingConfig.FlatFee),
	}
}

func (s *CartServiceImpl) GetCart(userID string) dto.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.toResponse(s.cart(userID))
}

// AddItem denormalizes the product into the cart line so later price or fee
// edits do not change what the shopper already agreed to.
func (s *CartServiceImpl) AddItem(ctx context.Context, userID string, req dto.CartItemRequest) (dto.CartResponse, error) {
	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return dto.CartResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(userID)
	cart.Add(domain.CartItem{
		ProductID:   product.ID.Hex(),
		Name:        product.Name,
		Price:       product.Price,
		Image:       product.Image,
		ShippingFee: product.ShippingFee,
		Quantity:    req.Quantity,
	})

	return s.toResponse(cart), nil
}

func (s *CartServiceImpl) UpdateItemQuantity(userID string, productID string, quantity int64) dto.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(userID)
	cart.UpdateQuantity(productID, quantity)

	return s.toResponse(cart)
}

func (s *CartServiceImpl) RemoveItem(userID string, productID string) dto.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(userID)
	cart.Remove(productID)

	return s.toResponse(cart)
}

func (s *CartServiceImpl) ClearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart(userID).Clear()
}

// Snapshot returns a copy of the cart for checkout; the live cart stays
// untouched until the order goes through.
func (s *CartServiceImpl) Snapshot(userID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(userID)
	items := make([]domain.CartItem, len(cart.Items))
	copy(items, cart.Items)

	return domain.Cart{Items: items}
}
