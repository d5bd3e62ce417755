package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AGASocial/bottcierge/internal/models"
)

func TestListCategories(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/menu/categories", nil)
	require.NoError(t, env.Menu.ListCategories(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []models.MenuCategory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 3)
}

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)

	load := map[string]interface{}{
		"name":    "Patron Silver",
		"brand":   "Patron",
		"type":    "spirit",
		"section": "main-bar",
		"sizes": []map[string]interface{}{
			{"name": "Shot", "currentPrice": 16, "isAvailable": true},
		},
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/menu/products", load)
	require.NoError(t, env.Menu.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	require.NotEmpty(t, product.ID)
	require.Equal(t, "available", product.Status)
	require.NotEmpty(t, product.Sizes[0].ID)
}

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/menu/products", map[string]interface{}{"name": "No Sizes"})
	requireHTTPError(t, env.Menu.CreateProduct(c), http.StatusBadRequest)

	load := map[string]interface{}{
		"sizes": []map[string]interface{}{{"name": "Shot", "currentPrice": 10}},
	}
	_, c = env.doJSONRequest(http.MethodPost, "/menu/products", load)
	requireHTTPError(t, env.Menu.CreateProduct(c), http.StatusBadRequest)
}

func TestPatchProduct(t *testing.T) {
	env := newTestEnv(t)
	product := env.seededProduct("Grey Goose Vodka")

	load := map[string]interface{}{"status": "out-of-stock"}
	rec, c := env.doJSONRequest(http.MethodPatch, "/menu/products/"+product.ID, load)
	c.SetParamNames("id")
	c.SetParamValues(product.ID)
	require.NoError(t, env.Menu.PatchProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "out-of-stock", got.Status)
	// untouched fields survive the patch
	require.Equal(t, "Grey Goose Vodka", got.Name)
	require.Len(t, got.Sizes, 2)
}

func TestListCategoryProducts(t *testing.T) {
	env := newTestEnv(t)
	product := env.seededProduct("Grey Goose Vodka")

	rec, c := env.doJSONRequest(http.MethodGet, "/menu/categories/"+product.Category+"/products", nil)
	c.SetParamNames("id")
	c.SetParamValues(product.Category)
	require.NoError(t, env.Menu.ListCategoryProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	require.Equal(t, "Grey Goose Vodka", products[0].Name)

	_, c = env.doJSONRequest(http.MethodGet, "/menu/categories/nope/products", nil)
	c.SetParamNames("id")
	c.SetParamValues("nope")
	requireHTTPError(t, env.Menu.ListCategoryProducts(c), http.StatusNotFound)
}

func TestSearchUnavailableWithoutBackend(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/menu/products/search?q=vodka", nil)
	requireHTTPError(t, env.Menu.SearchProducts(c), http.StatusServiceUnavailable)
}
