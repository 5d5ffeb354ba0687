package controller

import (
	"github.com/grazeweb/my-eshop-app/internal/dto"
	internalmiddleware "github.com/grazeweb/my-eshop-app/internal/middleware"
	"github.com/grazeweb/my-eshop-app/internal/service"
	pkgdto "github.com/grazeweb/my-eshop-app/pkg/dto"
	"github.com/grazeweb/my-eshop-app/pkg/response"
	"github.com/grazeweb/my-eshop-app/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service     service.OrderService
	cartService service.CartService
	userService service.UserService
}

func CreateOrderController(e *echo.Group, service service.OrderService, cartService service.CartService, userService service.UserService, isLoggedIn echo.MiddlewareFunc) {
	c := OrderController{
		service:     service,
		cartService: cartService,
		userService: userService,
	}

	e.POST("/orders", c.AddOrder, isLoggedIn)
	e.GET("/orders", c.GetUserOrders, isLoggedIn)
	e.GET("/orders/:id", c.GetOrderByID, isLoggedIn)
	e.GET("/orders/purchased/:productId", c.HasPurchasedProduct, isLoggedIn)

	e.GET("/admin/orders", c.GetOrders, isLoggedIn, internalmiddleware.IsAdmin)
	e.PUT("/admin/orders/:id/status", c.UpdateOrderStatus, isLoggedIn, internalmiddleware.IsAdmin)
}

// AddOrder places an order from the caller's current cart. The cart is
// cleared only after the order is committed, so a failed submit leaves the
// cart intact for a retry.
func (c *OrderController) AddOrder(e echo.Context) error {
	_, userName, externalID, _ := utils.ExtractTokenUser(e)

	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
	}

	profile, err := c.userService.GetProfile(e.Request().Context(), externalID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload.UserID = externalID
	payload.CustomerName = userName
	payload.CustomerEmail = profile.Email

	cart := c.cartService.Snapshot(externalID)

	resp, err := c.service.CreateOrder(e.Request().Context(), payload, cart)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	if payload.SaveAddress {
		err = c.userService.SaveAddress(e.Request().Context(), dto.AddressRequest{
			ExternalID: externalID,
			Address:    payload.ShippingAddress.Address,
			City:       payload.ShippingAddress.City,
			Zip:        payload.ShippingAddress.Zip,
		})
		if err != nil {
			log.Error().Err(err).Str("component", "AddOrder").Msg("")
		}
	}

	c.cartService.ClearCart(externalID)

	return response.WriteSuccessResponse(e, "order placed", resp)
}

func (c *OrderController) GetUserOrders(e echo.Context) error {
	_, _, externalID, _ := utils.ExtractTokenUser(e)

	resp, err := c.service.GetUserOrders(e.Request().Context(), externalID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) GetOrderByID(e echo.Context) error {
	_, _, externalID, isAdmin := utils.ExtractTokenUser(e)
	id := e.Param("id")

	resp, err := c.service.GetOrderByID(e.Request().Context(), id, externalID, isAdmin)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) HasPurchasedProduct(e echo.Context) error {
	_, _, externalID, _ := utils.ExtractTokenUser(e)
	productID := e.Param("productId")

	purchased, err := c.service.HasPurchasedProduct(e.Request().Context(), externalID, productID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", map[string]bool{"purchased": purchased})
}

func (c *OrderController) GetOrders(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrders").Msg("")
	}

	resp, err := c.service.GetOrders(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly retrieved orders record", resp)
}

func (c *OrderController) UpdateOrderStatus(e echo.Context) error {
	id := e.Param("id")

	payload := dto.OrderStatusRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
	}

	payload.OrderID = id
	err = c.service.UpdateOrderStatus(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
