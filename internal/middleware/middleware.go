package middleware

import (
	"github.com/grazeweb/my-eshop-app/pkg/errs"
	"github.com/grazeweb/my-eshop-app/pkg/response"
	"github.com/grazeweb/my-eshop-app/pkg/utils"
	"github.com/labstack/echo/v4"
)

// IsAdmin rejects requests whose JWT lacks the admin claim. It must run
// after the JWT middleware has populated the token in the context.
func IsAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, _, _, isAdmin := utils.ExtractTokenUser(c)
		if !isAdmin {
			return response.WriteErrorResponse(c, errs.ErrUnauthorized, nil)
		}

		return next(c)
	}
}
