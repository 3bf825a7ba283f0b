package api

import (
	"github.com/labstack/echo/v4"

	"github.com/Akshat190/qr-main/internal/entity"
	"github.com/Akshat190/qr-main/internal/service"
)

type MenuHandler struct {
	menuService *service.MenuService
}

func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List returns a restaurant's menu --> GET /menu/:restaurantId
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.menuService.List(c.Request().Context(), c.Param("restaurantId"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(200, items)
}

// Get returns one menu item --> GET /menu/:restaurantId/:id
func (h *MenuHandler) Get(c echo.Context) error {
	item, err := h.menuService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return jsonError(c, err)
	}
	if item.RestaurantID != c.Param("restaurantId") {
		return jsonError(c, entity.ErrMenuItemNotFound)
	}
	return c.JSON(200, item)
}

// Create adds a menu item to the owner's restaurant --> POST /menu
func (h *MenuHandler) Create(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	item := entity.MenuItem{}
	if err := c.Bind(&item); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.menuService.Create(c.Request().Context(), claims.RestaurantID, &item)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(201, created)
}

// Delete removes a menu item --> DELETE /menu/:id
func (h *MenuHandler) Delete(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	if err := h.menuService.Delete(c.Request().Context(), claims.RestaurantID, c.Param("id")); err != nil {
		return jsonError(c, err)
	}

	return c.NoContent(204)
}
