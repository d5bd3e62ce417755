package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AGASocial/bottcierge/internal/service"
)

type StaffHandler struct {
	Svc *service.StaffService
}

func (h *StaffHandler) List(c echo.Context) error {
	staff, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) Get(c echo.Context) error {
	member, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *StaffHandler) Create(c echo.Context) error {
	var req service.StaffInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	member, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, member)
}

func (h *StaffHandler) Update(c echo.Context) error {
	var req service.StaffInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	member, err := h.Svc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *StaffHandler) PatchMetrics(c echo.Context) error {
	var req service.PatchMetricsInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	member, err := h.Svc.PatchMetrics(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *StaffHandler) Deactivate(c echo.Context) error {
	member, err := h.Svc.Deactivate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, member)
}
