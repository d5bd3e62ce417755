package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AGASocial/bottcierge/internal/models"
)

type payResponse struct {
	Success       bool   `json:"success"`
	OrderID       string `json:"orderId"`
	TransactionID string `json:"transactionId"`
	PaymentStatus string `json:"paymentStatus"`
}

func (env *testEnv) pay(load map[string]interface{}) (*payResponse, error) {
	rec, c := env.doJSONRequest(http.MethodPost, "/payments", load)
	if err := env.Payments.Pay(c); err != nil {
		return nil, err
	}
	require.Equal(env.T, http.StatusOK, rec.Code)

	var resp payResponse
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	return &resp, nil
}

func (env *testEnv) orderByID(id string) models.Order {
	var order models.Order
	require.NoError(env.T, env.DB.Where("id = ?", id).First(&order).Error)
	return order
}

func TestPaymentBelowMinimumSpend(t *testing.T) {
	env := newTestEnv(t)
	table := env.seededTable("101") // main-floor, 500 minimum
	product := env.seededProduct("Grey Goose Vodka")
	shot := sizeByName(t, product, "Shot")

	order := env.createDraftOrder(table.ID)
	env.addItem(order.ID, product.ID, shot.ID, 25) // 350

	_, err := env.pay(map[string]interface{}{"orderId": order.ID, "method": "cash"})
	requireHTTPError(t, err, http.StatusBadRequest)

	require.Equal(t, models.OrderDraft, env.orderByID(order.ID).Status)
}

func TestPaymentMeetsMinimumSpend(t *testing.T) {
	env := newTestEnv(t)
	table := env.seededTable("101")
	product := env.seededProduct("Grey Goose Vodka")
	double := sizeByName(t, product, "Double")

	order := env.createDraftOrder(table.ID)
	env.addItem(order.ID, product.ID, double.ID, 25) // 600

	resp, err := env.pay(map[string]interface{}{"orderId": order.ID, "method": "cash"})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, "completed", resp.PaymentStatus)
	require.NotEmpty(t, resp.TransactionID)

	require.Equal(t, models.OrderPaid, env.orderByID(order.ID).Status)
}

func TestMinimumSpendWaivedAfterSettledOrder(t *testing.T) {
	env := newTestEnv(t)
	table := env.seededTable("102") // mezzanine, 250 minimum
	product := env.seededProduct("Grey Goose Vodka")
	double := sizeByName(t, product, "Double")
	shot := sizeByName(t, product, "Shot")

	first := env.createDraftOrder(table.ID)
	env.addItem(first.ID, product.ID, double.ID, 11) // 264
	_, err := env.pay(map[string]interface{}{"orderId": first.ID, "method": "cash"})
	require.NoError(t, err)

	// top-up order on the same table is exempt from the minimum
	second := env.createDraftOrder(table.ID)
	env.addItem(second.ID, product.ID, shot.ID, 1) // 14
	resp, err := env.pay(map[string]interface{}{"orderId": second.ID, "method": "cash"})
	require.NoError(t, err)
	require.True(t, resp.Success)
}

func TestPaymentDeclinedCard(t *testing.T) {
	env := newTestEnv(t)
	table := env.seededTable("102")
	product := env.seededProduct("Grey Goose Vodka")
	double := sizeByName(t, product, "Double")

	order := env.createDraftOrder(table.ID)
	env.addItem(order.ID, product.ID, double.ID, 11) // 264

	resp, err := env.pay(map[string]interface{}{
		"orderId": order.ID,
		"method":  "card",
		"card":    map[string]interface{}{"number": "4000000000000000", "expMonth": 12, "expYear": 2030, "cvv": "123"},
	})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "failed", resp.PaymentStatus)
	require.Empty(t, resp.TransactionID)

	// a declined charge leaves the order open
	require.Equal(t, models.OrderDraft, env.orderByID(order.ID).Status)
}

func TestPaymentCardSucceeds(t *testing.T) {
	env := newTestEnv(t)
	table := env.seededTable("102")
	product := env.seededProduct("Espresso Martini")
	glass := sizeByName(t, product, "Glass")

	order := env.createDraftOrder(table.ID)
	env.addItem(order.ID, product.ID, glass.ID, 15) // 270

	resp, err := env.pay(map[string]interface{}{
		"orderId": order.ID,
		"method":  "card",
		"tip":     20,
		"card":    map[string]interface{}{"number": "4242424242424242", "expMonth": 12, "expYear": 2030, "cvv": "123"},
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	paid := env.orderByID(order.ID)
	require.Equal(t, models.OrderPaid, paid.Status)
	require.Equal(t, 20.0, paid.AdditionalTip)
}

func TestPaymentValidation(t *testing.T) {
	env := newTestEnv(t)
	table := env.seededTable("102")
	product := env.seededProduct("Grey Goose Vodka")
	double := sizeByName(t, product, "Double")

	empty := env.createDraftOrder(table.ID)
	_, err := env.pay(map[string]interface{}{"orderId": empty.ID, "method": "cash"})
	requireHTTPError(t, err, http.StatusBadRequest)

	order := env.createDraftOrder(table.ID)
	env.addItem(order.ID, product.ID, double.ID, 11)

	_, err = env.pay(map[string]interface{}{"orderId": order.ID, "method": "crypto"})
	requireHTTPError(t, err, http.StatusBadRequest)

	_, err = env.pay(map[string]interface{}{"orderId": "nope", "method": "cash"})
	requireHTTPError(t, err, http.StatusNotFound)

	// paying twice conflicts
	_, err = env.pay(map[string]interface{}{"orderId": order.ID, "method": "cash"})
	require.NoError(t, err)
	_, err = env.pay(map[string]interface{}{"orderId": order.ID, "method": "cash"})
	requireHTTPError(t, err, http.StatusConflict)
}
