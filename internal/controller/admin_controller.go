package controller

import (
	"io"

	"github.com/grazeweb/my-eshop-app/internal/dto"
	internalmiddleware "github.com/grazeweb/my-eshop-app/internal/middleware"
	"github.com/grazeweb/my-eshop-app/internal/service"
	"github.com/grazeweb/my-eshop-app/pkg/errs"
	"github.com/grazeweb/my-eshop-app/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	mediaService  service.MediaService
	policyService service.PolicyService
}

func CreateAdminController(e *echo.Group, mediaService service.MediaService, policyService service.PolicyService, isLoggedIn echo.MiddlewareFunc) {
	c := AdminController{
		mediaService:  mediaService,
		policyService: policyService,
	}
	e.POST("/admin/media", c.UploadProductImage, isLoggedIn, internalmiddleware.IsAdmin)
	e.POST("/admin/policies", c.GeneratePolicy, isLoggedIn, internalmiddleware.IsAdmin)
}

func (c *AdminController) UploadProductImage(e echo.Context) error {
	fileHeader, err := e.FormFile("file")
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("component", "UploadProductImage").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInternalServer, nil)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Str("component", "UploadProductImage").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInternalServer, nil)
	}

	url, err := c.mediaService.UploadProductImage(e.Request().Context(), fileHeader.Filename, content)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", dto.MediaResponse{URL: url})
}

func (c *AdminController) GeneratePolicy(e echo.Context) error {
	payload := dto.PolicyRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "GeneratePolicy").Msg("")
	}

	resp, err := c.policyService.GeneratePolicy(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
