package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"clubsite/config"
	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

// ConnectivityResponse is the body for GET /connectivity-check.
type ConnectivityResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// PingResponse is the body for GET /ping: the configured (non-secret)
// connection identifiers plus the upstream version when reachable.
type PingResponse struct {
	Status    string         `json:"status"`
	Endpoint  string         `json:"endpoint"`
	Project   string         `json:"project"`
	Health    map[string]any `json:"health"`
	Timestamp string         `json:"timestamp"`
}

// PingController serves the connectivity diagnostics.
type PingController struct {
	Logger *slog.Logger
	Cfg    *config.Config
	Prober domain.HealthProber
}

func NewPingController(logger *slog.Logger, cfg *config.Config, prober domain.HealthProber) *PingController {
	return &PingController{Logger: logger, Cfg: cfg, Prober: prober}
}

func setOpenCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// ConnectivityCheck godoc
// @Summary Open connectivity ping
// @Description Open-CORS endpoint so external onboarding wizards can verify the site is reachable.
// @Tags diagnostics
// @Produce json
// @Success 200 {object} ConnectivityResponse
// @Router /connectivity-check [get]
func (c *PingController) ConnectivityCheck(w http.ResponseWriter, r *http.Request) {
	setOpenCORS(w)
	helpers.WriteJSON(w, http.StatusOK, ConnectivityResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// ConnectivityCheckPreflight answers the CORS preflight for the open ping.
func (c *PingController) ConnectivityCheckPreflight(w http.ResponseWriter, r *http.Request) {
	setOpenCORS(w)
	w.WriteHeader(http.StatusNoContent)
}

// Ping godoc
// @Summary Upstream connectivity diagnostic
// @Description Reports the configured endpoint and project, and the document service's version when reachable.
// @Tags diagnostics
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (c *PingController) Ping(w http.ResponseWriter, r *http.Request) {
	health := map[string]any{}
	if c.Cfg.Appwrite.Endpoint == "" {
		health["error"] = "endpoint not configured"
	} else if version, err := c.Prober.Version(r.Context()); err != nil {
		c.Logger.Warn("version probe failed", "err", err)
		health["error"] = "Health check failed"
	} else {
		health["version"] = version
	}
	helpers.WriteJSON(w, http.StatusOK, PingResponse{
		Status:    "ok",
		Endpoint:  c.Cfg.Appwrite.Endpoint,
		Project:   c.Cfg.Appwrite.ProjectID,
		Health:    health,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
