package api

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Akshat190/qr-main/internal/entity"
	"github.com/Akshat190/qr-main/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type OrderHandler struct {
	orderService  *service.OrderService
	reportService *service.ReportService
}

func NewOrderHandler(orderService *service.OrderService, reportService *service.ReportService) *OrderHandler {
	return &OrderHandler{
		orderService:  orderService,
		reportService: reportService,
	}
}

// CreateOrder submits a table-side order --> POST /orders/:restaurantId
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	req := service.SubmitRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	order, err := h.orderService.Submit(c.Request().Context(), c.Param("restaurantId"), &req)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(201, order)
}

// GetOrder returns one order for the confirmation screen --> GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	order, err := h.orderService.GetOrder(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(200, order)
}

// ListActive returns the owner's pending orders --> GET /orders/active
func (h *OrderHandler) ListActive(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	orders, err := h.orderService.ListActive(c.Request().Context(), claims.RestaurantID)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(200, orders)
}

// UpdateStatus applies a status transition --> PATCH /orders/:id
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	body := struct {
		Status entity.Status `json:"status"`
	}{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), claims.RestaurantID, id, body.Status)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(200, order)
}

// DeleteOrder removes an order --> DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.orderService.Delete(c.Request().Context(), claims.RestaurantID, id); err != nil {
		return jsonError(c, err)
	}

	return c.NoContent(204)
}

// Revenue returns the month-to-date revenue counter --> GET /orders/revenue
func (h *OrderHandler) Revenue(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	total, err := h.orderService.Revenue(c.Request().Context(), claims.RestaurantID, time.Now())
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(200, map[string]float64{"revenue": total})
}

// ExportMonthly streams the month's orders as an XLSX download --> GET /orders/monthly
func (h *OrderHandler) ExportMonthly(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}

	data, filename, err := h.reportService.ExportMonth(c.Request().Context(), claims.RestaurantID, time.Now())
	if err != nil {
		return jsonError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Blob(200, xlsxContentType, data)
}
