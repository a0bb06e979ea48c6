package main

import (
	"net/http"
	"os"
	"time"

	"clubsite/config"
	"clubsite/internal/adapters/appwrite"
	"clubsite/internal/adapters/email"
	delivery "clubsite/internal/delivery/http"
	"clubsite/internal/delivery/http/controllers"
	"clubsite/internal/delivery/http/middleware"
)

// @title Club Website API
// @version 1.0
// @description Server-side routes for the club marketing website. Every route validates input, forwards to the hosted document/storage service, and reshapes the response.
// @BasePath /

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	gateway := appwrite.New(cfg.Appwrite, &http.Client{Timeout: 15 * time.Second})
	mailer := email.NewMailer(cfg.Email)

	router := delivery.NewRouter(delivery.Controllers{
		Auth:          controllers.NewAuthController(logger, cfg, gateway),
		Contact:       controllers.NewContactController(logger, cfg, gateway, mailer),
		Subscribe:     controllers.NewSubscribeController(logger, cfg, gateway),
		Suggestions:   controllers.NewSuggestionsController(logger, cfg, gateway),
		Gallery:       controllers.NewGalleryController(logger, cfg, gateway, gateway),
		Highlights:    controllers.NewHighlightsController(logger, cfg, gateway),
		Events:        controllers.NewEventsController(logger, cfg, gateway, gateway),
		Notifications: controllers.NewNotificationsController(logger, cfg, gateway),
		Team:          controllers.NewTeamController(logger, cfg, gateway, gateway),
		Health:        controllers.NewHealthController(logger, cfg, gateway),
		Ping:          controllers.NewPingController(logger, cfg, gateway),
	})

	var handler http.Handler = router
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	addr := ":" + cfg.Port
	logger.Info("starting server", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
