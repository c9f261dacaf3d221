package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetflow/internal/testutils"
)

func createTrip(t *testing.T, ctx *testutils.TestContext, token string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := testutils.PerformRequest(ctx.Router, http.MethodPost, "/trips", body, testutils.AuthHeaders(token))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return testutils.DecodeJSON(t, w)
}

func TestCreateTripAlwaysStartsAsDraft(t *testing.T) {
	ctx := testutils.SetupTestContext(t)
	alice := testutils.RegisterManager(t, ctx, "Alice", "alice@x.com", "Acme")

	trip := createTrip(t, ctx, alice.Token, map[string]interface{}{
		"vehicleId":   1,
		"driverId":    1,
		"origin":      "Nairobi",
		"destination": "Mombasa",
		"status":      "Dispatched", // must be ignored
	})
	assert.Equal(t, "Draft", trip["status"])
	assert.Equal(t, float64(0), trip["cargoWeight"])
	assert.Equal(t, float64(0), trip["estimatedCost"])

	// Negative numerics clamp to zero
	trip = createTrip(t, ctx, alice.Token, map[string]interface{}{
		"vehicleId":     2,
		"driverId":      2,
		"origin":        "Kisumu",
		"destination":   "Nakuru",
		"cargoWeight":   -10,
		"estimatedCost": -500,
	})
	assert.Equal(t, float64(0), trip["cargoWeight"])
	assert.Equal(t, float64(0), trip["estimatedCost"])

	// Missing fields
	w := testutils.PerformRequest(ctx.Router, http.MethodPost, "/trips", map[string]interface{}{
		"vehicleId": 1,
		"origin":    "Nairobi",
	}, testutils.AuthHeaders(alice.Token))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTripStatus(t *testing.T) {
	ctx := testutils.SetupTestContext(t)
	alice := testutils.RegisterManager(t, ctx, "Alice", "alice@x.com", "Acme")
	carol := testutils.RegisterManager(t, ctx, "Carol", "carol@x.com", "Globex")

	trip := createTrip(t, ctx, alice.Token, map[string]interface{}{
		"vehicleId": 1, "driverId": 1, "origin": "Nairobi", "destination": "Mombasa",
	})
	path := fmt.Sprintf("/trips/%v/status", trip["id"])

	w := testutils.PerformRequest(ctx.Router, http.MethodPatch, path, map[string]interface{}{"status": "Dispatched"}, testutils.AuthHeaders(alice.Token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dispatched", testutils.DecodeJSON(t, w)["status"])

	w = testutils.PerformRequest(ctx.Router, http.MethodPatch, path, map[string]interface{}{"status": "Parked"}, testutils.AuthHeaders(alice.Token))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutils.PerformRequest(ctx.Router, http.MethodPatch, path, map[string]interface{}{"status": "Cancelled"}, testutils.AuthHeaders(carol.Token))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTripListScopedByTenant(t *testing.T) {
	ctx := testutils.SetupTestContext(t)
	alice := testutils.RegisterManager(t, ctx, "Alice", "alice@x.com", "Acme")
	carol := testutils.RegisterManager(t, ctx, "Carol", "carol@x.com", "Globex")

	createTrip(t, ctx, alice.Token, map[string]interface{}{
		"vehicleId": 1, "driverId": 1, "origin": "Nairobi", "destination": "Mombasa",
	})

	w := testutils.PerformRequest(ctx.Router, http.MethodGet, "/trips", nil, testutils.AuthHeaders(carol.Token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, testutils.DecodeJSONArray(t, w), 0)

	w = testutils.PerformRequest(ctx.Router, http.MethodGet, "/trips", nil, testutils.AuthHeaders(alice.Token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, testutils.DecodeJSONArray(t, w), 1)
}
