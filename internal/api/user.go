package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Akshat190/qr-main/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a user account --> POST /auth/register
func (h *UserHandler) Register(c echo.Context) error {
	body := struct {
		Email          string `json:"email"`
		Password       string `json:"password"`
		Role           string `json:"role"`
		RestaurantName string `json:"restaurant_name"`
	}{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	user, token, err := h.userService.Register(c.Request().Context(), body.Email, body.Password, body.Role, body.RestaurantName)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(201, map[string]interface{}{"user": user, "token": token})
}

// Login logs in a user --> POST /auth/login
func (h *UserHandler) Login(c echo.Context) error {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	user, token, err := h.userService.Login(c.Request().Context(), body.Email, body.Password)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(200, map[string]interface{}{"user": user, "token": token})
}

// Me returns the authenticated user --> GET /auth/me
func (h *UserHandler) Me(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	user, err := h.userService.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(200, map[string]interface{}{"user": user})
}
