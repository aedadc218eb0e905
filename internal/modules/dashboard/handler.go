package dashboard

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"smarthub/internal/feed"
	"smarthub/internal/middleware"
	"smarthub/internal/pkg/response"
	"smarthub/internal/session"
	"smarthub/internal/shell"
)

// FeedMounter starts the notification feed for a client.
type FeedMounter interface {
	Mount(clientID string, s *session.Session) (*feed.Feed, error)
}

type View struct {
	Layout shell.Layout   `json:"layout"`
	Feed   *feed.Snapshot `json:"feed,omitempty"`
}

type Handler struct {
	feeds FeedMounter
}

func NewHandler(feeds FeedMounter) *Handler {
	return &Handler{feeds: feeds}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.GET("/dashboard", middleware.RequireSession(), h.GetDashboard)
}

// GetDashboard renders the shell for the page at ?path= and mounts the
// notification feed when the layout shows one.
// @Summary		Dashboard shell
// @Tags		Dashboard
// @Param		path	query	string	false	"current page path, used for the active menu item"
// @Success		200	{object}	View
// @Router		/dashboard [GET]
func (h *Handler) GetDashboard(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	clientID := middleware.ClientID(c)

	path := c.Query("path")
	if path == "" {
		path = shell.HomePath(sess.Role)
	}

	view := View{Layout: shell.Render(sess, path)}
	if view.Layout.ShowFeed {
		f, err := h.feeds.Mount(clientID, sess)
		switch {
		case err == nil:
			snap := f.Snapshot()
			view.Feed = &snap
		case errors.Is(err, feed.ErrNotMountable):
		default:
			log.Printf("dashboard_feed_mount_failed client_id=%s user_id=%d error=%q", clientID, sess.ID, err)
		}
	}

	response.Success(c, http.StatusOK, view)
}
