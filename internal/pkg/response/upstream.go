package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smarthub/internal/hubapi"
)

// Upstream reports a failed backend call as a toast. The backend's own
// message is shown for 4xx answers; anything else gets fallback.
func Upstream(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)

	if errors.Is(err, hubapi.ErrNetwork) {
		Error(c, http.StatusBadGateway, "NETWORK_ERROR", "Unable to connect to server. Please check your connection.")
		return
	}

	var apiErr *hubapi.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusNotFound:
			Error(c, http.StatusNotFound, "NOT_FOUND", apiErr.Message)
			return
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			if len(apiErr.Details) > 0 {
				ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", apiErr.Message, apiErr.Details)
				return
			}
			Error(c, http.StatusBadRequest, "VALIDATION_ERROR", apiErr.Message)
			return
		}
	}

	Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", fallback)
}
