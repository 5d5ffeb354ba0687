package controller

import (
	"github.com/grazeweb/my-eshop-app/internal/dto"
	"github.com/grazeweb/my-eshop-app/internal/service"
	"github.com/grazeweb/my-eshop-app/pkg/response"
	"github.com/grazeweb/my-eshop-app/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type WishlistController struct {
	service service.WishlistService
}

func CreateWishlistController(e *echo.Group, service service.WishlistService, isLoggedIn echo.MiddlewareFunc) {
	c := WishlistController{
		service: service,
	}
	e.GET("/wishlist", c.GetWishlist, isLoggedIn)
	e.POST("/wishlist", c.AddProduct, isLoggedIn)
	e.DELETE("/wishlist/:productId", c.RemoveProduct, isLoggedIn)
}

func (c *WishlistController) GetWishlist(e echo.Context) error {
	_, _, externalID, _ := utils.ExtractTokenUser(e)

	resp, err := c.service.GetWishlist(e.Request().Context(), externalID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *WishlistController) AddProduct(e echo.Context) error {
	_, _, externalID, _ := utils.ExtractTokenUser(e)

	payload := dto.WishlistRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	err = c.service.AddProduct(e.Request().Context(), externalID, payload.ProductID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *WishlistController) RemoveProduct(e echo.Context) error {
	_, _, externalID, _ := utils.ExtractTokenUser(e)
	productID := e.Param("productId")

	err := c.service.RemoveProduct(e.Request().Context(), externalID, productID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
