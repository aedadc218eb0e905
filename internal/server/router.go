package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smarthub/internal/config"
	"smarthub/internal/feed"
	"smarthub/internal/hubapi"
	"smarthub/internal/middleware"
	"smarthub/internal/modules/admin"
	"smarthub/internal/modules/auth"
	"smarthub/internal/modules/booking"
	"smarthub/internal/modules/complaint"
	"smarthub/internal/modules/dashboard"
	"smarthub/internal/modules/notification"
	"smarthub/internal/modules/payment"
	"smarthub/internal/modules/provider"
	"smarthub/internal/modules/review"
	"smarthub/internal/modules/search"
	"smarthub/internal/pkg/jwt"
	"smarthub/internal/session"
)

// Deps is everything the router needs; cmd/web builds it.
type Deps struct {
	Config   *config.Config
	Tokens   *jwt.Service
	Sessions *session.Provider
	Backend  *hubapi.Client
	Hub      *feed.Hub
	Feeds    *feed.Manager
}

func NewRouter(d Deps) *gin.Engine {
	cfg := d.Config
	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Logger(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.ClientCookie(d.Tokens, cfg.CookieName, cfg.CookieSecure),
		middleware.LoadSession(d.Sessions),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"feeds":   d.Feeds.Count(),
			"sockets": d.Hub.Count(),
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	store := d.Sessions.Store()
	v1 := r.Group("/api/v1")

	auth.NewHandler(auth.NewService(d.Backend, d.Sessions, cfg.RedirectDelay, log.Printf)).RegisterRoutes(v1)
	dashboard.NewHandler(d.Feeds).RegisterRoutes(v1)

	notifications := notification.NewService(d.Feeds)
	notification.NewHandler(notifications).RegisterRoutes(v1)
	notification.NewWSHandler(notifications, d.Hub, d.Sessions, cfg.CORSAllowedOrigins).RegisterRoutes(v1)

	search.NewHandler(search.NewService(d.Backend, store)).RegisterRoutes(v1)
	booking.NewHandler(booking.NewService(d.Backend, store, log.Printf)).RegisterRoutes(v1)
	payment.NewHandler(payment.NewService(d.Backend, store, cfg.PaymentDelay, log.Printf)).RegisterRoutes(v1)
	review.NewHandler(review.NewService(d.Backend)).RegisterRoutes(v1)
	complaint.NewHandler(d.Backend).RegisterRoutes(v1)
	provider.NewHandler(provider.NewService(d.Backend, d.Feeds, log.Printf)).RegisterRoutes(v1)
	admin.NewHandler(admin.NewService(d.Backend)).RegisterRoutes(v1)

	return r
}
