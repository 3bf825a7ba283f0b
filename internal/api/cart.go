package api

import (
	"github.com/labstack/echo/v4"

	"github.com/Akshat190/qr-main/internal/cart"
	"github.com/Akshat190/qr-main/internal/service"
)

// CartHandler exposes the session cart. Sessions are identified by the
// X-Session-ID header the client generates when it scans the QR code.
type CartHandler struct {
	carts       *cart.Store
	menuService *service.MenuService
}

func NewCartHandler(carts *cart.Store, menuService *service.MenuService) *CartHandler {
	return &CartHandler{
		carts:       carts,
		menuService: menuService,
	}
}

type cartResponse struct {
	Items      []cart.Item `json:"items"`
	TotalPrice float64     `json:"total_price"`
	TotalTime  int         `json:"total_time"`
}

func toCartResponse(c *cart.Cart) cartResponse {
	return cartResponse{
		Items:      c.Items,
		TotalPrice: c.TotalPrice(),
		TotalTime:  c.TotalTime(),
	}
}

func sessionID(c echo.Context) (string, bool) {
	id := c.Request().Header.Get("X-Session-ID")
	return id, id != ""
}

// Get returns the session cart with its derived totals --> GET /cart
func (h *CartHandler) Get(c echo.Context) error {
	sid, ok := sessionID(c)
	if !ok {
		return c.JSON(400, map[string]string{"error": "X-Session-ID header is required"})
	}

	crt, err := h.carts.Load(c.Request().Context(), sid)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(200, toCartResponse(crt))
}

// AddItem adds one unit of a menu item --> POST /cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	sid, ok := sessionID(c)
	if !ok {
		return c.JSON(400, map[string]string{"error": "X-Session-ID header is required"})
	}

	body := struct {
		MenuItemID string `json:"menu_item_id"`
	}{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	ctx := c.Request().Context()
	item, err := h.menuService.Get(ctx, body.MenuItemID)
	if err != nil {
		return jsonError(c, err)
	}

	crt, err := h.carts.Load(ctx, sid)
	if err != nil {
		return jsonError(c, err)
	}

	crt.AddItem(*item)
	if err := h.carts.Save(ctx, sid, crt); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(200, toCartResponse(crt))
}

// UpdateQuantity sets an entry's quantity --> PATCH /cart/items/:id
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	sid, ok := sessionID(c)
	if !ok {
		return c.JSON(400, map[string]string{"error": "X-Session-ID header is required"})
	}

	body := struct {
		Quantity int `json:"quantity"`
	}{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	ctx := c.Request().Context()
	crt, err := h.carts.Load(ctx, sid)
	if err != nil {
		return jsonError(c, err)
	}

	crt.UpdateQuantity(c.Param("id"), body.Quantity)
	if err := h.carts.Save(ctx, sid, crt); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(200, toCartResponse(crt))
}

// RemoveItem deletes an entry --> DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sid, ok := sessionID(c)
	if !ok {
		return c.JSON(400, map[string]string{"error": "X-Session-ID header is required"})
	}

	ctx := c.Request().Context()
	crt, err := h.carts.Load(ctx, sid)
	if err != nil {
		return jsonError(c, err)
	}

	crt.RemoveItem(c.Param("id"))
	if err := h.carts.Save(ctx, sid, crt); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(200, toCartResponse(crt))
}

// Clear empties the session cart --> DELETE /cart
func (h *CartHandler) Clear(c echo.Context) error {
	sid, ok := sessionID(c)
	if !ok {
		return c.JSON(400, map[string]string{"error": "X-Session-ID header is required"})
	}

	if err := h.carts.Delete(c.Request().Context(), sid); err != nil {
		return jsonError(c, err)
	}

	return c.NoContent(204)
}
