package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AGASocial/bottcierge/internal/service"
)

type VenueHandler struct {
	Svc *service.VenueService
}

func (h *VenueHandler) List(c echo.Context) error {
	venues, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, venues)
}

func (h *VenueHandler) Get(c echo.Context) error {
	venue, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) Update(c echo.Context) error {
	var req service.VenueInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	venue, err := h.Svc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, venue)
}
