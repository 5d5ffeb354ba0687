package service

import (
	"context"
	"math"
	"time"

	"github.com/grazeweb/my-eshop-app/internal/domain"
	"github.com/grazeweb/my-eshop-app/internal/dto"
	"github.com/grazeweb/my-eshop-app/internal/repository"
	"github.com/rs/zerolog/log"

	"github.com/grazeweb/my-eshop-app/pkg/errs"
)

type ReviewServiceImpl struct {
	reviewRepo  repository.ReviewRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	publisher   EventPublisher
}

func CreateReviewService(reviewRepo repository.ReviewRepository, orderRepo repository.OrderRepository, productRepo repository.ProductRepository, publisher EventPublisher) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// SummarizeReviews computes the display aggregate for a product's reviews:
// count, mean rating and a per-star histogram. With no reviews the average
// falls back to the product's cached rating.
func SummarizeReviews(reviews []domain.Review, fallbackRating float64) dto.ReviewSummary {
	summary := dto.ReviewSummary{
		Count:   len(reviews),
		Average: fallbackRating,
	}

	var counts [5]int
	var total int
	for _, review := range reviews {
		if review.Rating >= 1 && review.Rating <= 5 {
			counts[review.Rating-1]++
		}
		total += review.Rating
	}

	if summary.Count > 0 {
		summary.Average = float64(total) / float64(summary.Count)
	}

	for star := 5; star >= 1; star-- {
		bucket := dto.RatingBucket{
			Star:  star,
			Count: counts[star-1],
		}
		if summary.Count > 0 {
			bucket.Percentage = math.Round(float64(bucket.Count)/float64(summary.Count)*10000) / 100
		}
		summary.Histogram = append(summary.Histogram, bucket)
	}

	return summary
}

func (s *ReviewServiceImpl) AddReview(ctx context.Context, req dto.ReviewRequest) (err error) {
	if req.Rating < 1 || req.Rating > 5 || req.Title == "" || req.Content == "" {
		return errs.ErrClient
	}

	if _, err = s.productRepo.GetProductByID(ctx, req.ProductID); err != nil {
		return
	}

	purchased, err := s.orderRepo.HasDeliveredOrderWithProduct(ctx, req.AuthorID, req.ProductID)
	if err != nil {
		return
	}
	if !purchased {
		return errs.ErrReviewRequiresPurchase
	}

	review := domain.Review{
		AuthorID:     req.AuthorID,
		AuthorName:   req.AuthorName,
		AuthorAvatar: req.AuthorAvatar,
		ProductID:    req.ProductID,
		Rating:       req.Rating,
		Title:        req.Title,
		Content:      req.Content,
		CreatedAt:    time.Now().Unix(),
	}

	reviewID, err := s.reviewRepo.AddReview(ctx, review)
	if err != nil {
		return
	}

	review.ID = reviewID
	if err := publishEvent(s.publisher, eventReviewAdded, req.ProductID, review); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddReview").Msg("")
	}

	return nil
}

func (s *ReviewServiceImpl) GetProductReviews(ctx context.Context, productID string) (resp dto.ProductReviewsResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}

	reviews, err := s.reviewRepo.GetReviewsByProductID(ctx, productID)
	if err != nil {
		return
	}

	resp.Reviews = reviews
	resp.Summary = SummarizeReviews(reviews, product.Rating)

	return resp, nil
}

// RefreshProductRatings writes the live review average back into each
// product's cached rating field. Runs on a schedule.
func (s *ReviewServiceImpl) RefreshProductRatings() {
	log.Info().Str("component", "RefreshProductRatings").Msg("cron starts")

	ctx := context.Background()

	productIDs, err := s.reviewRepo.GetReviewedProductIDs(ctx)
	if err != nil {
		return
	}

	for _, productID := range productIDs {
		reviews, err := s.reviewRepo.GetReviewsByProductID(ctx, productID)
		if err != nil {
			// One bad product must not stall the rest of the sweep.
			log.Error().Err(err).Str("component", "RefreshProductRatings").Str("productID", productID).Msg("")
			continue
		}

		if len(reviews) == 0 {
			continue
		}

		summary := SummarizeReviews(reviews, 0)
		if err := s.productRepo.SetProductRating(ctx, productID, summary.Average); err != nil {
			// A deleted product has no rating worth refreshing.
			if err != errs.ErrNotFound {
				log.Error().Err(err).Str("component", "RefreshProductRatings").Str("productID", productID).Msg("")
			}
			continue
		}
	}

	log.Info().Str("component", "RefreshProductRatings").Msg("cron ends")
}
