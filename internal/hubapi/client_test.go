package hubapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListNotifications(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/notifications/7", r.URL.Path)
		_, _ = io.WriteString(w, `[{"notificationId":1,"receiverId":7,"type":"BOOKING_REQUEST","status":"UNREAD","relatedBookingId":42}]`)
	}))
	defer srv.Close()

	list, err := NewClient(srv.URL).ListNotifications(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Unread())
	require.NotNil(t, list[0].RelatedBookingID)
	assert.Equal(t, int64(42), *list[0].RelatedBookingID)
}

func TestClient_UpdateBookingStatus_UsesConfiguredVerb(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, method, r.Method)
				assert.Equal(t, "/api/bookings/42/status", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var body map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, map[string]string{"status": "ACCEPTED"}, body)

				_, _ = io.WriteString(w, `{"bookingId":42,"status":"ACCEPTED"}`)
			}))
			defer srv.Close()

			b, err := NewClient(srv.URL, WithStatusMethod(method)).UpdateBookingStatus(context.Background(), 42, BookingAccepted)
			require.NoError(t, err)
			assert.Equal(t, BookingAccepted, b.Status)
		})
	}
}

func TestClient_SearchProviders_Query(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/provider/search", r.URL.Path)
		assert.Equal(t, "Plumber", r.URL.Query().Get("type"))
		assert.Equal(t, "Pune", r.URL.Query().Get("location"))
		_, _ = io.WriteString(w, `[{"providerId":3,"fullName":"Asha","serviceType":"Plumber","price":500}]`)
	}))
	defer srv.Close()

	list, err := NewClient(srv.URL).SearchProviders(context.Background(), "Plumber", "Pune")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 500.0, list[0].Price)
}

func TestClient_Non2xxBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"User not found"}`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Login(context.Background(), LoginRequest{Mobile: "9999999999"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "User not found", apiErr.Message)
}

func TestClient_EmptyErrorBodyGetsGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetProviderProfile(context.Background(), 1)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, defaultErrorMessage, apiErr.Message)
	assert.True(t, IsNotFound(err))
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).ListAllBookings(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}
