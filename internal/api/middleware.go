package api

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Akshat190/qr-main/internal/entity"
	"github.com/Akshat190/qr-main/internal/service"
)

// JWTMiddleware authenticates requests and stashes the parsed claims on the
// context for the handlers behind it.
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &service.Claims{}
		},
	})
}

// RequireOwner rejects authenticated callers that lack the owner role.
func RequireOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := claimsFrom(c)
		if !ok || claims.Role != entity.RoleOwner {
			return c.JSON(403, map[string]string{"error": "owner access required"})
		}
		return next(c)
	}
}

func claimsFrom(c echo.Context) (*service.Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*service.Claims)
	return claims, ok
}
