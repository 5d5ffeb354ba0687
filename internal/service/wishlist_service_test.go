package service

import (
	"context"
	"testing"

	"github.com/grazeweb/my-eshop-app/internal/domain"
	"github.com/grazeweb/my-eshop-app/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWishlistAddUnknownProduct(t *testing.T) {
	svc := CreateWishlistService(newFakeWishlistRepository(), newFakeProductRepository())

	err := svc.AddProduct(context.Background(), "u1", "missing")

	assert.Equal(t, errs.ErrNotFound, err)
}

func TestWishlistAddAndRemove(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID(), Name: "Widget"}
	svc := CreateWishlistService(newFakeWishlistRepository(), newFakeProductRepository(product))

	err := svc.AddProduct(context.Background(), "u1", product.ID.Hex())
	require.NoError(t, err)

	resp, err := svc.GetWishlist(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{product.ID.Hex()}, resp.ProductIDs)

	err = svc.RemoveProduct(context.Background(), "u1", product.ID.Hex())
	require.NoError(t, err)

	resp, err = svc.GetWishlist(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, resp.ProductIDs)
}

func TestWishlistEmptyIsNotNil(t *testing.T) {
	svc := CreateWishlistService(newFakeWishlistRepository(), newFakeProductRepository())

	resp, err := svc.GetWishlist(context.Background(), "u1")
	require.NoError(t, err)

	assert.NotNil(t, resp.ProductIDs)
	assert.Empty(t, resp.ProductIDs)
}
