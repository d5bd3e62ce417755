package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AGASocial/bottcierge/internal/models"
	"github.com/AGASocial/bottcierge/internal/service"
)

type TableHandler struct {
	Svc *service.TableService
}

func (h *TableHandler) List(c echo.Context) error {
	tables, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tables)
}

func (h *TableHandler) Get(c echo.Context) error {
	table, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, table)
}

func (h *TableHandler) GetByQR(c echo.Context) error {
	table, err := h.Svc.GetByQR(c.Request().Context(), c.Param("code"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, table)
}

func (h *TableHandler) UpdateStatus(c echo.Context) error {
	var req struct {
		Status models.TableStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	table, err := h.Svc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, table)
}

func (h *TableHandler) Reserve(c echo.Context) error {
	var req service.ReservationInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	table, err := h.Svc.Reserve(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, table)
}

func (h *TableHandler) CancelReservation(c echo.Context) error {
	table, err := h.Svc.CancelReservation(c.Request().Context(), c.Param("id"), c.Param("reservationId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, table)
}
