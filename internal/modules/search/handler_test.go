package search

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthub/internal/domain"
	"smarthub/internal/hubapi"
	"smarthub/internal/session"
	"smarthub/internal/testutil"
)

func setup(t *testing.T) (*testutil.Env, *testutil.Backend) {
	env := testutil.NewEnv(t)
	backend := testutil.NewBackend(t)
	NewHandler(NewService(backend.Client, env.Sessions.Store())).RegisterRoutes(env.V1)
	return env, backend
}

func TestSearch_PassesFilters(t *testing.T) {
	env, backend := setup(t)
	backend.Handle("GET /api/provider/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Plumbing", r.URL.Query().Get("type"))
		assert.Equal(t, "Pune", r.URL.Query().Get("location"))
		testutil.WriteJSON(w, http.StatusOK, []hubapi.Provider{{ProviderID: 5, FullName: "Asha", ServiceType: "Plumbing", Price: 450}})
	})

	w := env.Do(t, http.MethodGet, "/api/v1/search?type=Plumbing&location=Pune", "c1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Providers []hubapi.Provider `json:"providers"`
	}
	testutil.Decode(t, w, &data)
	require.Len(t, data.Providers, 1)
	assert.Equal(t, "Asha", data.Providers[0].FullName)
}

func TestSearch_BackendDown(t *testing.T) {
	env, backend := setup(t)
	backend.Server.Close()

	w := env.Do(t, http.MethodGet, "/api/v1/search", "c1", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "NETWORK_ERROR", testutil.Decode(t, w, nil).Error.Code)
}

func TestSelect_WritesPendingBooking(t *testing.T) {
	env, backend := setup(t)
	backend.JSON("GET /api/provider/profile/5", http.StatusOK, hubapi.Provider{ProviderID: 5, FullName: "Asha", ServiceType: "Plumbing", Price: 450})
	env.SignIn(t, "c1", &session.Session{ID: 3, Role: session.RoleUser})

	w := env.Do(t, http.MethodPost, "/api/v1/search/select", "c1", SelectRequest{ProviderID: 5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"redirectUrl":"/booking"`)

	var pending domain.PendingBooking
	ok, err := env.Sessions.Store().GetJSON(context.Background(), "c1", domain.StateKeyPendingBooking, &pending)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.PendingBooking{
		ProviderID:   5,
		Service:      "Plumbing",
		Rate:         "₹450",
		Location:     "Not specified",
		ProviderName: "Asha",
	}, pending)
}

func TestSelect_OnlyUsers(t *testing.T) {
	env, _ := setup(t)
	env.SignIn(t, "c1", &session.Session{ID: 7, Role: session.RoleProvider})

	w := env.Do(t, http.MethodPost, "/api/v1/search/select", "c1", SelectRequest{ProviderID: 5})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
