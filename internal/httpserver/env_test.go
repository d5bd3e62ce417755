package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AGASocial/bottcierge/internal/models"
	"github.com/AGASocial/bottcierge/internal/repo"
	"github.com/AGASocial/bottcierge/internal/service"
	"github.com/AGASocial/bottcierge/internal/store"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB

	Auth     *AuthHandler
	Menu     *MenuHandler
	Orders   *OrderHandler
	Tables   *TableHandler
	Staff    *StaffHandler
	Venues   *VenueHandler
	Payments *PaymentHandler
	Requests *ServiceRequestHandler
}

// newTestEnv wires the handlers against a fresh in-memory database seeded
// with the demo venue. Kafka and elasticsearch stay nil; both sides are
// optional in the services.
func newTestEnv(t *testing.T) *testEnv {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := store.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, store.Seed(db))

	repos := repo.NewStore(db)

	tokenSvc := &service.TokenService{
		Tokens:        repos.Tokens,
		JWTSecret:     []byte("test-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
	}
	orderSvc := &service.OrderService{
		Orders:   repos.Orders,
		Tables:   repos.Tables,
		Products: repos.Products,
	}

	env := &testEnv{
		T:  t,
		E:  echo.New(),
		DB: db,
		Auth: &AuthHandler{
			Auth:   &service.AuthService{Users: repos.Users, Tokens: tokenSvc},
			Tokens: tokenSvc,
		},
		Menu:   &MenuHandler{Svc: &service.MenuService{Products: repos.Products, Categories: repos.Categories}},
		Orders: &OrderHandler{Svc: orderSvc},
		Tables: &TableHandler{Svc: &service.TableService{Tables: repos.Tables}},
		Staff:  &StaffHandler{Svc: &service.StaffService{Staff: repos.Staff}},
		Venues: &VenueHandler{Svc: &service.VenueService{Venues: repos.Venues}},
		Payments: &PaymentHandler{Svc: &service.PaymentService{
			Payments: repos.Payments,
			Orders:   repos.Orders,
			Tables:   repos.Tables,
			Venues:   repos.Venues,
			OrderSvc: orderSvc,
			Gateway:  service.MockGateway{},
		}},
		Requests: &ServiceRequestHandler{Svc: &service.ServiceRequestService{Requests: repos.ServiceRequests, Tables: repos.Tables}},
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return env
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}, cookies ...*http.Cookie) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, code, he.Code)
}

// seededTable returns the demo table with the given number.
func (env *testEnv) seededTable(number string) models.Table {
	var table models.Table
	require.NoError(env.T, env.DB.Where("number = ?", number).First(&table).Error)
	return table
}

// seededProduct returns the demo product with the given name.
func (env *testEnv) seededProduct(name string) models.Product {
	var product models.Product
	require.NoError(env.T, env.DB.Where("name = ?", name).First(&product).Error)
	return product
}

// createDraftOrder creates an order on the given table through the handler.
func (env *testEnv) createDraftOrder(tableID string) models.Order {
	rec, c := env.doJSONRequest(http.MethodPost, "/orders", map[string]string{"tableId": tableID})
	require.NoError(env.T, env.Orders.Create(c))
	require.Equal(env.T, http.StatusCreated, rec.Code)

	var order models.Order
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &order))
	return order
}

// addItem adds qty units of a product size to the order through the handler.
func (env *testEnv) addItem(orderID, productID, sizeID string, qty int) models.Order {
	load := map[string]interface{}{
		"productId": productID,
		"sizeId":    sizeID,
		"quantity":  qty,
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/orders/"+orderID+"/items", load)
	c.SetParamNames("id")
	c.SetParamValues(orderID)
	require.NoError(env.T, env.Orders.AddItem(c))
	require.Equal(env.T, http.StatusOK, rec.Code)

	var order models.Order
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &order))
	return order
}

// setStatus drives the order through the handler to the given status.
func (env *testEnv) setStatus(orderID string, status models.OrderStatus) models.Order {
	rec, c := env.doJSONRequest(http.MethodPatch, "/orders/"+orderID+"/status", map[string]models.OrderStatus{"status": status})
	c.SetParamNames("id")
	c.SetParamValues(orderID)
	require.NoError(env.T, env.Orders.UpdateStatus(c))
	require.Equal(env.T, http.StatusOK, rec.Code)

	var order models.Order
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &order))
	return order
}
