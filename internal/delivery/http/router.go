package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"clubsite/internal/delivery/http/controllers"
)

// Controllers bundles every route controller wired by the router.
type Controllers struct {
	Auth          *controllers.AuthController
	Contact       *controllers.ContactController
	Subscribe     *controllers.SubscribeController
	Suggestions   *controllers.SuggestionsController
	Gallery       *controllers.GalleryController
	Highlights    *controllers.HighlightsController
	Events        *controllers.EventsController
	Notifications *controllers.NotificationsController
	Team          *controllers.TeamController
	Health        *controllers.HealthController
	Ping          *controllers.PingController
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// Forms (writes propagate upstream failure)
	mux.HandleFunc("POST /contact", c.Contact.Create)
	mux.HandleFunc("POST /subscribe", c.Subscribe.Create)
	mux.HandleFunc("POST /suggestions", c.Suggestions.Create)

	// Public content (reads degrade to empty results)
	mux.HandleFunc("GET /gallery", c.Gallery.List)
	mux.HandleFunc("GET /highlights", c.Highlights.List)
	mux.HandleFunc("GET /events", c.Events.List)
	mux.HandleFunc("GET /notifications/unread", c.Notifications.UnreadCount)
	mux.HandleFunc("GET /team", c.Team.List)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Diagnostics
	mux.HandleFunc("GET /health", c.Health.Check)
	mux.HandleFunc("GET /ping", c.Ping.Ping)
	mux.HandleFunc("GET /connectivity-check", c.Ping.ConnectivityCheck)
	mux.HandleFunc("OPTIONS /connectivity-check", c.Ping.ConnectivityCheckPreflight)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
