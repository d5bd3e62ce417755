package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AGASocial/bottcierge/internal/service"
)

type ServiceRequestHandler struct {
	Svc *service.ServiceRequestService
}

func (h *ServiceRequestHandler) Create(c echo.Context) error {
	var req service.ServiceRequestInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	request, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, request)
}

func (h *ServiceRequestHandler) List(c echo.Context) error {
	requests, err := h.Svc.List(c.Request().Context(), c.QueryParam("tableId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *ServiceRequestHandler) UpdateStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	request, err := h.Svc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, request)
}
