package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AGASocial/bottcierge/internal/search"
	"github.com/AGASocial/bottcierge/internal/service"
)

type MenuHandler struct {
	Svc    *service.MenuService
	Search *search.Client
}

func (h *MenuHandler) ListCategories(c echo.Context) error {
	categories, err := h.Svc.ListCategories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *MenuHandler) GetCategory(c echo.Context) error {
	category, err := h.Svc.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *MenuHandler) PatchCategory(c echo.Context) error {
	var req service.PatchCategoryInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	category, err := h.Svc.PatchCategory(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *MenuHandler) ListCategoryProducts(c echo.Context) error {
	products, err := h.Svc.ListProductsByCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *MenuHandler) ListProducts(c echo.Context) error {
	products, err := h.Svc.ListProducts(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *MenuHandler) GetProduct(c echo.Context) error {
	product, err := h.Svc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *MenuHandler) CreateProduct(c echo.Context) error {
	var req service.ProductInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *MenuHandler) ReplaceProduct(c echo.Context) error {
	var req service.ProductInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.ReplaceProduct(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *MenuHandler) PatchProduct(c echo.Context) error {
	var req service.PatchProductInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.PatchProduct(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *MenuHandler) SearchProducts(c echo.Context) error {
	if h.Search == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "search is not configured")
	}

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), 20)
	if page < 1 {
		page = 1
	}

	total, products, err := h.Search.SearchProducts(c.Request().Context(), q, (page-1)*size, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
