package dto

import "github.com/grazeweb/my-eshop-app/internal/domain"

type ReviewRequest struct {
	ProductID string `json:"-"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Content   string `json:"content"`

	AuthorID     string  `json:"-"`
	AuthorName   string  `json:"-"`
	AuthorAvatar *string `json:"-"`
}

type RatingBucket struct {
	Star       int     `json:"star"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ReviewSummary struct {
	Count     int            `json:"count"`
	Average   float64        `json:"average"`
	Histogram []RatingBucket `json:"histogram"`
}

type ProductReviewsResponse struct {
	Reviews []domain.Review `json:"reviews"`
	Summary ReviewSummary   `json:"summary"`
}
