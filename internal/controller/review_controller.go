package controller

import (
	"github.com/grazeweb/my-eshop-app/internal/dto"
	"github.com/grazeweb/my-eshop-app/internal/service"
	"github.com/grazeweb/my-eshop-app/pkg/response"
	"github.com/grazeweb/my-eshop-app/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ReviewController struct {
	service service.ReviewService
}

func CreateReviewController(e *echo.Group, service service.ReviewService, isLoggedIn echo.MiddlewareFunc) {
	c := ReviewController{
		service: service,
	}
	e.GET("/products/:id/reviews", c.GetProductReviews)
	e.POST("/products/:id/reviews", c.AddReview, isLoggedIn)
}

func (c *ReviewController) GetProductReviews(e echo.Context) error {
	productID := e.Param("id")

	resp, err := c.service.GetProductReviews(e.Request().Context(), productID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ReviewController) AddReview(e echo.Context) error {
	_, userName, externalID, _ := utils.ExtractTokenUser(e)
	productID := e.Param("id")

	payload := dto.ReviewRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddReview").Msg("")
	}

	payload.ProductID = productID
	payload.AuthorID = externalID
	payload.AuthorName = userName

	err = c.service.AddReview(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
