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

type UserController struct {
	service      service.UserService
	orderService service.OrderService
}

func CreateUserController(e *echo.Group, service service.UserService, orderService service.OrderService, isLoggedIn echo.MiddlewareFunc) {
	uc := UserController{
		service:      service,
		orderService: orderService,
	}
	e.POST("/users/register", uc.AddUser)
	e.POST("/users/login", uc.Login)
	e.GET("/users/me", uc.GetProfile, isLoggedIn)
	e.PUT("/users/me/address", uc.SaveAddress, isLoggedIn)
	e.GET("/users/me/summary", uc.GetAccountSummary, isLoggedIn)
	e.GET("/users", uc.GetUsers, isLoggedIn, internalmiddleware.IsAdmin)
}

func (c *UserController) AddUser(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
	}

	err = c.service.AddUser(e.Request().Context(), payload)

	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	respPayload, err := c.service.Login(e.Request().Context(), payload)

	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *UserController) GetProfile(e echo.Context) error {
	_, _, externalID, _ := utils.ExtractTokenUser(e)

	resp, err := c.service.GetProfile(e.Request().Context(), externalID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) SaveAddress(e echo.Context) error {
	_, _, externalID, _ := utils.ExtractTokenUser(e)

	payload := dto.AddressRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SaveAddress").Msg("")
	}

	payload.ExternalID = externalID
	err = c.service.SaveAddress(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *UserController) GetAccountSummary(e echo.Context) error {
	_, _, externalID, _ := utils.ExtractTokenUser(e)

	resp, err := c.orderService.GetAccountSummary(e.Request().Context(), externalID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) GetUsers(e echo.Context) error {
	payload := pkgdto.Filter{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
	}

	resp, err := c.service.GetUsers(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
