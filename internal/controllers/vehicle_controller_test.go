package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetflow/internal/middleware"
	"fleetflow/internal/testutils"
)

func createVehicle(t *testing.T, ctx *testutils.TestContext, token string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := testutils.PerformRequest(ctx.Router, http.MethodPost, "/vehicles", body, testutils.AuthHeaders(token))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return testutils.DecodeJSON(t, w)
}

func TestCreateVehicleDefaults(t *testing.T) {
	ctx := testutils.SetupTestContext(t)
	alice := testutils.RegisterManager(t, ctx, "Alice", "alice@x.com", "Acme")

	vehicle := createVehicle(t, ctx, alice.Token, map[string]interface{}{
		"model":    "Hiace",
		"plate":    "KAA1",
		"type":     "Van",
		"capacity": 1000,
	})
	assert.Equal(t, "Available", vehicle["status"])
	assert.Equal(t, float64(0), vehicle["odometer"])
	assert.Equal(t, float64(1000), vehicle["capacity"])

	// Missing capacity
	w := testutils.PerformRequest(ctx.Router, http.MethodPost, "/vehicles", map[string]interface{}{
		"model": "Actros", "plate": "KBB2", "type": "Truck",
	}, testutils.AuthHeaders(alice.Token))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Invalid type
	w = testutils.PerformRequest(ctx.Router, http.MethodPost, "/vehicles", map[string]interface{}{
		"model": "Boat", "plate": "KCC3", "type": "Boat", "capacity": 10,
	}, testutils.AuthHeaders(alice.Token))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Negative capacity
	w = testutils.PerformRequest(ctx.Router, http.MethodPost, "/vehicles", map[string]interface{}{
		"model": "Actros", "plate": "KDD4", "type": "Truck", "capacity": -5,
	}, testutils.AuthHeaders(alice.Token))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDuplicatePlateScopedToOrganisation(t *testing.T) {
	ctx := testutils.SetupTestContext(t)
	alice := testutils.RegisterManager(t, ctx, "Alice", "alice@x.com", "Acme")
	carol := testutils.RegisterManager(t, ctx, "Carol", "carol@x.com", "Globex")

	createVehicle(t, ctx, alice.Token, map[string]interface{}{
		"model": "Hiace", "plate": "KAA1", "type": "Van", "capacity": 1000,
	})

	// Same plate in the same org conflicts
	w := testutils.PerformRequest(ctx.Router, http.MethodPost, "/vehicles", map[string]interface{}{
		"model": "Hiace", "plate": "KAA1", "type": "Van", "capacity": 500,
	}, testutils.AuthHeaders(alice.Token))
	assert.Equal(t, http.StatusConflict, w.Code)

	// Same plate in another org is fine
	createVehicle(t, ctx, carol.Token, map[string]interface{}{
		"model": "Hiace", "plate": "KAA1", "type": "Van", "capacity": 500,
	})
}

func TestVehiclesSharedWithinTenant(t *testing.T) {
	ctx := testutils.SetupTestContext(t)
	alice := testutils.RegisterManager(t, ctx, "Alice", "alice@x.com", "Acme")
	bob := testutils.RegisterDispatcher(t, ctx, "Bob", "bob@x.com", alice.OrganisationID)

	created := createVehicle(t, ctx, bob.Token, map[string]interface{}{
		"model": "Hiace", "plate": "KAA1", "type": "Van", "capacity": 1000,
	})

	w := testutils.PerformRequest(ctx.Router, http.MethodGet, "/vehicles", nil, testutils.AuthHeaders(alice.Token))
	require.Equal(t, http.StatusOK, w.Code)
	vehicles := testutils.DecodeJSONArray(t, w)
	require.Len(t, vehicles, 1)
	assert.Equal(t, created["id"], vehicles[0]["id"])
}

func TestUpdateVehicleStatus(t *testing.T) {
	ctx := testutils.SetupTestContext(t)
	alice := testutils.RegisterManager(t, ctx, "Alice", "alice@x.com", "Acme")
	carol := testutils.RegisterManager(t, ctx, "Carol", "carol@x.com", "Globex")

	vehicle := createVehicle(t, ctx, alice.Token, map[string]interface{}{
		"model": "Hiace", "plate": "KAA1", "type": "Van", "capacity": 1000,
	})
	path := fmt.Sprintf("/vehicles/%v/status", vehicle["id"])

	w := testutils.PerformRequest(ctx.Router, http.MethodPatch, path, map[string]interface{}{"status": "Retired"}, testutils.AuthHeaders(alice.Token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Retired", testutils.DecodeJSON(t, w)["status"])

	// Idempotent: same status again succeeds
	w = testutils.PerformRequest(ctx.Router, http.MethodPatch, path, map[string]interface{}{"status": "Retired"}, testutils.AuthHeaders(alice.Token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Retired", testutils.DecodeJSON(t, w)["status"])

	// Invalid value
	w = testutils.PerformRequest(ctx.Router, http.MethodPatch, path, map[string]interface{}{"status": "Broken"}, testutils.AuthHeaders(alice.Token))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Cross-tenant: Carol gets 404 and the vehicle is unmodified
	w = testutils.PerformRequest(ctx.Router, http.MethodPatch, path, map[string]interface{}{"status": "Available"}, testutils.AuthHeaders(carol.Token))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutils.PerformRequest(ctx.Router, http.MethodGet, "/vehicles", nil, testutils.AuthHeaders(alice.Token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Retired", testutils.DecodeJSONArray(t, w)[0]["status"])
}

func TestMissingOrganisationContextIsForbidden(t *testing.T) {
	ctx := testutils.SetupTestContext(t)

	// Valid token, but no resolvable organisation.
	token, err := middleware.GenerateToken(42, "manager", "", 0)
	require.NoError(t, err)

	for _, path := range []string{"/vehicles", "/drivers", "/trips", "/maintenance", "/expenses"} {
		w := testutils.PerformRequest(ctx.Router, http.MethodGet, path, nil, testutils.AuthHeaders(token))
		assert.Equal(t, http.StatusForbidden, w.Code, "GET %s", path)
	}
}
