package admin

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthub/internal/hubapi"
	"smarthub/internal/session"
	"smarthub/internal/testutil"
)

func TestHandler_AdminOnly(t *testing.T) {
	env := testutil.NewEnv(t)
	backend := testutil.NewBackend(t)
	NewHandler(NewService(backend.Client)).RegisterRoutes(env.V1)
	env.SignIn(t, "c1", &session.Session{ID: 3, Role: session.RoleUser})

	w := env.Do(t, http.MethodGet, "/api/v1/admin/users", "c1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.Do(t, http.MethodGet, "/api/v1/admin/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_UpdateComplaint(t *testing.T) {
	env := testutil.NewEnv(t)
	backend := testutil.NewBackend(t)
	NewHandler(NewService(backend.Client)).RegisterRoutes(env.V1)
	env.SignIn(t, "a1", &session.Session{ID: 1, Role: session.RoleAdmin})

	backend.Handle("PUT /api/admin/complaints/9", func(w http.ResponseWriter, r *http.Request) {
		var upd hubapi.ComplaintUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&upd))
		assert.Equal(t, hubapi.ComplaintUpdate{Status: ComplaintResolved, Response: "refunded"}, upd)
		testutil.WriteJSON(w, http.StatusOK, hubapi.Complaint{ComplaintID: 9, Status: upd.Status, Response: upd.Response})
	})

	w := env.Do(t, http.MethodPut, "/api/v1/admin/complaints/9", "a1", UpdateComplaintRequest{Status: ComplaintResolved, Response: " refunded "})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.Do(t, http.MethodPut, "/api/v1/admin/complaints/9", "a1", UpdateComplaintRequest{Status: "CLOSED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
