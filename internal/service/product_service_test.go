package service

import (
	"context"
	"testing"

	"github.com/grazeweb/my-eshop-app/internal/domain"
	"github.com/grazeweb/my-eshop-app/internal/dto"
	pkgdto "github.com/grazeweb/my-eshop-app/pkg/dto"
	"github.com/grazeweb/my-eshop-app/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeSearchRepository struct {
	indexed map[string]dto.ProductResponse
}

func newFakeSearchRepository() *fakeSearchRepository {
	return &fakeSearchRepository{indexed: make(map[string]dto.ProductResponse)}
}

func (r *fakeSearchRepository) IndexProduct(ctx context.Context, data dto.ProductResponse) error {
	r.indexed[data.ID] = data
	return nil
}

func (r *fakeSearchRepository) DeleteProduct(ctx context.Context, id string) error {
	delete(r.indexed, id)
	return nil
}

func (r *fakeSearchRepository) SearchProducts(ctx context.Context, filter pkgdto.Filter) ([]dto.ProductResponse, int, error) {
	var data []dto.ProductResponse
	for _, p := range r.indexed {
		data = append(data, p)
	}
	return data, len(data), nil
}

func TestAddProductPublishesUpsertEvent(t *testing.T) {
	productRepo := newFakeProductRepository()
	publisher := &fakePublisher{}

	svc := CreateProductService(productRepo, newFakeSearchRepository(), testConfig(), nil, publisher)

	err := svc.AddProduct(context.Background(), dto.ProductRequest{Name: "Widget", Price: 10, Stock: 3})
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "product_upserted", publisher.events[0].Message.EventType)
	assert.Len(t, productRepo.products, 1)
}

func TestUpdateProductRejectsMalformedID(t *testing.T) {
	svc := CreateProductService(newFakeProductRepository(), newFakeSearchRepository(), testConfig(), nil, &fakePublisher{})

	err := svc.UpdateProduct(context.Background(), dto.ProductRequest{ID: "not-an-object-id"})

	assert.Equal(t, errs.ErrNotFound, err)
}

func TestDeleteProductPublishesDeleteEvent(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID(), Name: "Widget"}
	productRepo := newFakeProductRepository(product)
	publisher := &fakePublisher{}

	svc := CreateProductService(productRepo, newFakeSearchRepository(), testConfig(), nil, publisher)

	err := svc.DeleteProduct(context.Background(), product.ID.Hex())
	require.NoError(t, err)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "product_deleted", publisher.events[0].Message.EventType)
	assert.Empty(t, productRepo.products)
}

func TestSearchProductsUsesReadModel(t *testing.T) {
	searchRepo := newFakeSearchRepository()
	searchRepo.indexed["p1"] = dto.ProductResponse{ID: "p1", Name: "Widget"}

	svc := CreateProductService(newFakeProductRepository(), searchRepo, testConfig(), nil, &fakePublisher{})

	resp, err := svc.SearchProducts(context.Background(), pkgdto.Filter{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.Metadata.TotalCount)
	assert.Equal(t, 1, resp.Metadata.Page)
}
