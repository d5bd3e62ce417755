package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AGASocial/bottcierge/internal/logging"
	"github.com/AGASocial/bottcierge/internal/models"
	"github.com/AGASocial/bottcierge/internal/service"
)

type OrderHandler struct {
	Svc *service.OrderService
}

func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req service.CreateOrderInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if userID, _ := c.Get("user_id").(string); userID != "" && req.UserID == "" {
		req.UserID = userID
	}

	order, err := h.Svc.Create(ctx, req)
	if err != nil {
		l.Warn("create order failed", "error", err)
		return httpError(err)
	}

	l.Info("order created", "order_id", order.ID, "order_number", order.OrderNumber)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) AddItem(c echo.Context) error {
	var req service.AddItemInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.AddItem(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) RemoveItem(c echo.Context) error {
	order, err := h.Svc.RemoveItem(c.Request().Context(), c.Param("orderId"), c.Param("itemId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateItemQuantity(c echo.Context) error {
	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil || req.Quantity == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity is required")
	}

	order, err := h.Svc.UpdateItemQuantity(c.Request().Context(), c.Param("orderId"), c.Param("itemId"), *req.Quantity)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		l.Warn("status update rejected", "order_id", c.Param("id"), "status", req.Status, "error", err)
		return httpError(err)
	}

	l.Info("order status updated", "order_id", order.ID, "status", order.Status)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) SetTip(c echo.Context) error {
	var req struct {
		AdditionalTip *float64 `json:"additionalTip"`
	}
	if err := c.Bind(&req); err != nil || req.AdditionalTip == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "additionalTip is required")
	}

	order, err := h.Svc.SetTip(c.Request().Context(), c.Param("id"), *req.AdditionalTip)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Bill(c echo.Context) error {
	bill, err := h.Svc.Bill(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bill)
}
