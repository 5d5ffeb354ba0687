package controller

import (
	"github.com/grazeweb/my-eshop-app/internal/dto"
	"github.com/grazeweb/my-eshop-app/internal/service"
	"github.com/grazeweb/my-eshop-app/pkg/response"
	"github.com/grazeweb/my-eshop-app/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CartController struct {
	service service.CartService
}

func CreateCartController(e *echo.Group, service service.CartService, isLoggedIn echo.MiddlewareFunc) {
	c := CartController{
		service: service,
	}
	e.GET("/cart", c.GetCart, isLoggedIn)
	e.POST("/cart/items", c.AddItem, isLoggedIn)
	e.PUT("/cart/items/:productId", c.UpdateItemQuantity, isLoggedIn)
	e.DELETE("/cart/items/:productId", c.RemoveItem, isLoggedIn)
	e.DELETE("/cart", c.ClearCart, isLoggedIn)
}

func (c *CartController) GetCart(e echo.Context) error {
	_, _, externalID, _ := utils.ExtractTokenUser(e)

	return response.WriteSuccessResponse(e, "", c.service.GetCart(externalID))
}

func (c *CartController) AddItem(e echo.Context) error {
	_, _, externalID, _ := utils.ExtractTokenUser(e)

	payload := dto.CartItemRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddItem").Msg("")
	}

	resp, err := c.service.AddItem(e.Request().Context(), externalID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) UpdateItemQuantity(e echo.Context) error {
	_, _, externalID, _ := utils.ExtractTokenUser(e)
	productID := e.Param("productId")

	payload := dto.CartQuantityRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateItemQuantity").Msg("")
	}

	resp := c.service.UpdateItemQuantity(externalID, productID, payload.Quantity)

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) RemoveItem(e echo.Context) error {
	_, _, externalID, _ := utils.ExtractTokenUser(e)
	productID := e.Param("productId")

	resp := c.service.RemoveItem(externalID, productID)

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) ClearCart(e echo.Context) error {
	_, _, externalID, _ := utils.ExtractTokenUser(e)

	c.service.ClearCart(externalID)

	return response.WriteSuccessResponse(e, "", nil)
}
