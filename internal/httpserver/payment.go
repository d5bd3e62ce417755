package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AGASocial/bottcierge/internal/logging"
	"github.com/AGASocial/bottcierge/internal/service"
)

type PaymentHandler struct {
	Svc *service.PaymentService
}

func (h *PaymentHandler) Pay(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.pay")

	var req service.PayInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	payment, err := h.Svc.Pay(ctx, req)
	if err != nil {
		l.Warn("payment rejected", "order_id", req.OrderID, "error", err)
		return httpError(err)
	}

	l.Info("payment processed", "order_id", req.OrderID, "payment_id", payment.ID, "status", payment.Status)
	return c.JSON(http.StatusOK, echo.Map{
		"success":       payment.Status == "completed",
		"orderId":       payment.OrderID,
		"transactionId": payment.TransactionID,
		"paymentStatus": payment.Status,
		"timestamp":     payment.CreatedAt,
	})
}

func (h *PaymentHandler) Get(c echo.Context) error {
	payment, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, payment)
}
