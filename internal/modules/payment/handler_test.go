package payment

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthub/internal/domain"
	"smarthub/internal/session"
	"smarthub/internal/testutil"
)

func setup(t *testing.T) (*testutil.Env, *testutil.Backend) {
	env := testutil.NewEnv(t)
	backend := testutil.NewBackend(t)
	NewHandler(NewService(backend.Client, env.Sessions.Store(), 0, t.Logf)).RegisterRoutes(env.V1)
	env.SignIn(t, "c1", &session.Session{ID: 3, Role: session.RoleUser})
	return env, backend
}

func TestHandler_PendingMissing(t *testing.T) {
	env, _ := setup(t)

	w := env.Do(t, http.MethodGet, "/api/v1/payment/pending", "c1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := testutil.Decode(t, w, nil)
	assert.Equal(t, "No payment information found", resp.Error.Message)
	assert.Equal(t, BookingsPagePath, resp.Error.ActionURL)
}

func TestHandler_PayFlow(t *testing.T) {
	env, backend := setup(t)
	require.NoError(t, env.Sessions.Store().PutJSON(context.Background(), "c1", domain.StateKeyPendingPayment, domain.PendingPayment{BookingID: 12, Rate: "₹500"}))
	backend.JSON("PUT /api/bookings/12/status", http.StatusOK, map[string]interface{}{"bookingId": 12, "status": "PAID"})

	w := env.Do(t, http.MethodPost, "/api/v1/payment", "c1", PayRequest{Email: "a@b.c", CardNumber: "4242424242424242", Expiry: "01/30", CVC: "999", Name: "A"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res PayResult
	testutil.Decode(t, w, &res)
	assert.Equal(t, SuccessPagePath, res.RedirectURL)
	assert.Equal(t, "Payment completed for Booking ID: 12", res.Message)

	w = env.Do(t, http.MethodGet, "/api/v1/payment/pending", "c1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_FormError(t *testing.T) {
	env, _ := setup(t)
	require.NoError(t, env.Sessions.Store().PutJSON(context.Background(), "c1", domain.StateKeyPendingPayment, domain.PendingPayment{BookingID: 12}))

	w := env.Do(t, http.MethodPost, "/api/v1/payment", "c1", PayRequest{Email: "a@b.c", CardNumber: "4242", Expiry: "01/30", CVC: "999", Name: "A"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Card number must be 16 digits", testutil.Decode(t, w, nil).Error.Message)
}
