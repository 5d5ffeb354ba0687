package service

import (
	"context"

	"github.com/grazeweb/my-eshop-app/internal/dto"
	"github.com/grazeweb/my-eshop-app/internal/repository"
)

type WishlistServiceImpl struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func CreateWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) WishlistService {
	return &WishlistServiceImpl{wishlistRepo: wishlistRepo, productRepo: productRepo}
}

func (s *WishlistServiceImpl) AddProduct(ctx context.Context, userID string, productID string) (err error) {
	if _, err = s.productRepo.GetProductByID(ctx, productID); err != nil {
		return
	}

	return s.wishlistRepo.AddProduct(ctx, userID, productID)
}

func (s *WishlistServiceImpl) RemoveProduct(ctx context.Context, userID string, productID string) (err error) {
	return s.wishlistRepo.RemoveProduct(ctx, userID, productID)
}

func (s *WishlistServiceImpl) GetWishlist(ctx context.Context, userID string) (resp dto.WishlistResponse, err error) {
	wishlist, err := s.wishlistRepo.GetWishlist(ctx, userID)
	if err != nil {
		return
	}

	resp.ProductIDs = wishlist.ProductIDs
	if resp.ProductIDs == nil {
		resp.ProductIDs = []string{}
	}

	return resp, nil
}
