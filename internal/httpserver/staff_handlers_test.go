package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AGASocial/bottcierge/internal/models"
)

func TestCreateStaffMember(t *testing.T) {
	env := newTestEnv(t)

	load := map[string]interface{}{
		"firstName": "Marco",
		"lastName":  "Ruiz",
		"role":      "server",
		"sections":  []string{"mezzanine"},
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/staff", load)
	require.NoError(t, env.Staff.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var member models.Staff
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &member))
	require.True(t, member.IsActive)
	require.Equal(t, "active", member.Status)
	require.Equal(t, []string{"mezzanine"}, member.Sections)
}

func TestCreateStaffRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	load := map[string]string{"firstName": "Marco", "lastName": "Ruiz", "role": "bouncer"}
	_, c := env.doJSONRequest(http.MethodPost, "/staff", load)
	requireHTTPError(t, env.Staff.Create(c), http.StatusBadRequest)
}

func TestPatchStaffMetrics(t *testing.T) {
	env := newTestEnv(t)

	var member models.Staff
	require.NoError(t, env.DB.Where("first_name = ?", "Jane").First(&member).Error)

	load := map[string]interface{}{"ordersServed": 151}
	rec, c := env.doJSONRequest(http.MethodPatch, "/staff/"+member.ID+"/metrics", load)
	c.SetParamNames("id")
	c.SetParamValues(member.ID)
	require.NoError(t, env.Staff.PatchMetrics(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Staff
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 151, got.Metrics.OrdersServed)
	// other metrics untouched
	require.Equal(t, 4.8, got.Metrics.AverageRating)
}

func TestDeactivateStaffMember(t *testing.T) {
	env := newTestEnv(t)

	var member models.Staff
	require.NoError(t, env.DB.Where("first_name = ?", "Jane").First(&member).Error)

	rec, c := env.doJSONRequest(http.MethodPost, "/staff/"+member.ID+"/deactivate", nil)
	c.SetParamNames("id")
	c.SetParamValues(member.ID)
	require.NoError(t, env.Staff.Deactivate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Staff
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.False(t, got.IsActive)
	require.Equal(t, "inactive", got.Status)
}

func TestServiceRequestLifecycle(t *testing.T) {
	env := newTestEnv(t)
	table := env.seededTable("101")

	load := map[string]string{"tableId": table.ID, "type": "water"}
	rec, c := env.doJSONRequest(http.MethodPost, "/service-requests", load)
	require.NoError(t, env.Requests.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var req models.ServiceRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &req))
	require.Equal(t, "pending", req.Status)

	rec, c = env.doJSONRequest(http.MethodPatch, "/service-requests/"+req.ID+"/status", map[string]string{"status": "acknowledged"})
	c.SetParamNames("id")
	c.SetParamValues(req.ID)
	require.NoError(t, env.Requests.UpdateStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &req))
	require.Equal(t, "acknowledged", req.Status)

	_, c = env.doJSONRequest(http.MethodPatch, "/service-requests/"+req.ID+"/status", map[string]string{"status": "ignored"})
	c.SetParamNames("id")
	c.SetParamValues(req.ID)
	requireHTTPError(t, env.Requests.UpdateStatus(c), http.StatusBadRequest)
}

func TestServiceRequestValidation(t *testing.T) {
	env := newTestEnv(t)
	table := env.seededTable("101")

	// missing type
	_, c := env.doJSONRequest(http.MethodPost, "/service-requests", map[string]string{"tableId": table.ID})
	requireHTTPError(t, env.Requests.Create(c), http.StatusBadRequest)

	// unknown table
	_, c = env.doJSONRequest(http.MethodPost, "/service-requests", map[string]string{"tableId": "nope", "type": "water"})
	requireHTTPError(t, env.Requests.Create(c), http.StatusNotFound)
}
