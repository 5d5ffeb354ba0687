package service

import (
	"context"
	"testing"

	"github.com/grazeweb/my-eshop-app/internal/domain"
	"github.com/grazeweb/my-eshop-app/internal/dto"
	"github.com/grazeweb/my-eshop-app/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSummarizeReviews(t *testing.T) {
	reviews := []domain.Review{
		{Rating: 5}, {Rating: 5}, {Rating: 4}, {Rating: 3},
	}

	summary := SummarizeReviews(reviews, 0)

	assert.Equal(t, 4, summary.Count)
	assert.InDelta(t, 4.25, summary.Average, 0.001)

	require.Len(t, summary.Histogram, 5)
	assert.Equal(t, 5, summary.Histogram[0].Star)
	assert.Equal(t, 2, summary.Histogram[0].Count)
	assert.InDelta(t, 50.0, summary.Histogram[0].Percentage, 0.001)
	assert.Equal(t, 1, summary.Histogram[1].Count)
	assert.Equal(t, 1, summary.Histogram[2].Count)
	assert.Equal(t, 0, summary.Histogram[3].Count)
	assert.Equal(t, 0, summary.Histogram[4].Count)

	var percentageSum float64
	for _, bucket := range summary.Histogram {
		percentageSum += bucket.Percentage
	}
	assert.InDelta(t, 100.0, percentageSum, 0.01)
}

func TestSummarizeReviewsFallsBackWithoutReviews(t *testing.T) {
	summary := SummarizeReviews(nil, 4.7)

	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 4.7, summary.Average)
	require.Len(t, summary.Histogram, 5)
	for _, bucket := range summary.Histogram {
		assert.Equal(t, 0, bucket.Count)
		assert.Equal(t, 0.0, bucket.Percentage)
	}
}

func TestAddReviewValidation(t *testing.T) {
	svc := CreateReviewService(&fakeReviewRepository{}, newFakeOrderRepository(), newFakeProductRepository(), &fakePublisher{})

	type TestCase struct {
		Name    string
		Request dto.ReviewRequest
	}

	testCases := []TestCase{
		{Name: "rating too low", Request: dto.ReviewRequest{Rating: 0, Title: "t", Content: "c"}},
		{Name: "rating too high", Request: dto.ReviewRequest{Rating: 6, Title: "t", Content: "c"}},
		{Name: "missing title", Request: dto.ReviewRequest{Rating: 5, Content: "c"}},
		{Name: "missing content", Request: dto.ReviewRequest{Rating: 5, Title: "t"}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := svc.AddReview(context.Background(), tc.Request)
			assert.Equal(t, errs.ErrClient, err)
		})
	}
}

func TestAddReviewRequiresDeliveredPurchase(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID(), Name: "Widget"}
	productRepo := newFakeProductRepository(product)

	svc := CreateReviewService(&fakeReviewRepository{}, newFakeOrderRepository(), productRepo, &fakePublisher{})

	err := svc.AddReview(context.Background(), dto.ReviewRequest{
		ProductID: product.ID.Hex(),
		AuthorID:  "u1",
		Rating:    5,
		Title:     "Great",
		Content:   "Works well",
	})

	assert.Equal(t, errs.ErrReviewRequiresPurchase, err)
}

func TestAddReviewAfterDelivery(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID(), Name: "Widget"}
	productRepo := newFakeProductRepository(product)
	reviewRepo := &fakeReviewRepository{}
	publisher := &fakePublisher{}

	orderRepo := newFakeOrderRepository(domain.Order{
		ID:     primitive.NewObjectID(),
		UserID: "u1",
		Status: domain.OrderStatusDelivered,
		Items:  []domain.OrderItem{{ProductID: product.ID.Hex(), Quantity: 1}},
	})

	svc := CreateReviewService(reviewRepo, orderRepo, productRepo, publisher)

	err := svc.AddReview(context.Background(), dto.ReviewRequest{
		ProductID: product.ID.Hex(),
		AuthorID:  "u1",
		Rating:    5,
		Title:     "Great",
		Content:   "Works well",
	})
	require.NoError(t, err)

	require.Len(t, reviewRepo.reviews, 1)
	assert.Equal(t, "u1", reviewRepo.reviews[0].AuthorID)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "review_added", publisher.events[0].Message.EventType)
}

func TestRefreshProductRatings(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID(), Name: "Widget", Rating: 1.0}
	productRepo := newFakeProductRepository(product)

	reviewRepo := &fakeReviewRepository{reviews: []domain.Review{
		{ProductID: product.ID.Hex(), Rating: 5},
		{ProductID: product.ID.Hex(), Rating: 4},
	}}

	svc := CreateReviewService(reviewRepo, newFakeOrderRepository(), productRepo, &fakePublisher{})
	svc.RefreshProductRatings()

	updated, err := productRepo.GetProductByID(context.Background(), product.ID.Hex())
	require.NoError(t, err)
	assert.InDelta(t, 4.5, updated.Rating, 0.001)
}

func TestRefreshProductRatingsSurvivesBadProduct(t *testing.T) {
	bad := domain.Product{ID: primitive.NewObjectID(), Name: "Broken", Rating: 1.0}
	good := domain.Product{ID: primitive.NewObjectID(), Name: "Widget", Rating: 1.0}
	productRepo := newFakeProductRepository(bad, good)

	reviewRepo := &fakeReviewRepository{
		reviews: []domain.Review{
			{ProductID: bad.ID.Hex(), Rating: 2},
			{ProductID: good.ID.Hex(), Rating: 5},
			{ProductID: good.ID.Hex(), Rating: 4},
		},
		failProductID: bad.ID.Hex(),
	}

	svc := CreateReviewService(reviewRepo, newFakeOrderRepository(), productRepo, &fakePublisher{})
	svc.RefreshProductRatings()

	updated, err := productRepo.GetProductByID(context.Background(), good.ID.Hex())
	require.NoError(t, err)
	assert.InDelta(t, 4.5, updated.Rating, 0.001, "a failing product must not stop later refreshes")
}
