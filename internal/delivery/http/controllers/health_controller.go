package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"clubsite/config"
	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

// HealthConfigStatus reports which core configuration values are present,
// without exposing their values.
type HealthConfigStatus struct {
	EndpointSet bool `json:"endpointSet"`
	ProjectSet  bool `json:"projectSet"`
	DatabaseSet bool `json:"databaseSet"`
}

// HealthResponse is the response body for GET /health. Each dependency is
// probed and reported individually; the overall status code is always 200.
type HealthResponse struct {
	Config      HealthConfigStatus `json:"config"`
	Database    any                `json:"database"`
	Collections any                `json:"collections"`
	Buckets     any                `json:"buckets"`
}

// HealthController runs the per-dependency diagnostic probes.
type HealthController struct {
	Logger *slog.Logger
	Cfg    *config.Config
	Prober domain.HealthProber
}

func NewHealthController(logger *slog.Logger, cfg *config.Config, prober domain.HealthProber) *HealthController {
	return &HealthController{Logger: logger, Cfg: cfg, Prober: prober}
}

func probeStatus(info domain.ResourceInfo, err error) map[string]any {
	if err == nil {
		return map[string]any{"status": "ok", "name": info.Name}
	}
	var se *domain.ServiceError
	if errors.As(err, &se) {
		return map[string]any{"status": "error", "httpStatus": se.StatusCode}
	}
	return map[string]any{"status": "error", "message": err.Error()}
}

// Check godoc
// @Summary Diagnostic health report
// @Description Checks configuration presence and probes the database, every configured collection, and every configured bucket. Always returns 200; failures are reported per dependency.
// @Tags diagnostics
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	aw := c.Cfg.Appwrite
	resp := HealthResponse{
		Config: HealthConfigStatus{
			EndpointSet: aw.Endpoint != "",
			ProjectSet:  aw.ProjectID != "",
			DatabaseSet: aw.DatabaseID != "",
		},
	}

	complete := aw.Endpoint != "" && aw.ProjectID != "" && aw.DatabaseID != "" && aw.APIKey != ""

	if complete {
		info, err := c.Prober.GetDatabase(r.Context())
		resp.Database = probeStatus(info, err)
	} else {
		resp.Database = map[string]any{"status": "incomplete_config"}
	}

	collections := map[string]string{
		"events":        c.Cfg.Collections.Events,
		"highlights":    c.Cfg.Collections.Highlights,
		"team":          c.Cfg.Collections.Team,
		"gallery":       c.Cfg.Collections.Gallery,
		"suggestions":   c.Cfg.Collections.Suggestions,
		"notifications": c.Cfg.Collections.Notifications,
		"subscribers":   c.Cfg.Collections.Subscribers,
		"messages":      c.Cfg.Collections.Messages,
	}
	if complete {
		results := make(map[string]any, len(collections))
		for label, id := range collections {
			if id == "" {
				results[label] = map[string]any{"status": "missing_env"}
				continue
			}
			info, err := c.Prober.GetCollection(r.Context(), id)
			results[label] = probeStatus(info, err)
		}
		resp.Collections = results
	} else {
		resp.Collections = map[string]any{"status": "incomplete_config"}
	}

	buckets := map[string]string{
		"team":    c.Cfg.Buckets.Team,
		"events":  c.Cfg.Buckets.Events,
		"gallery": c.Cfg.Buckets.Gallery,
	}
	if complete {
		results := make(map[string]any, len(buckets))
		for label, id := range buckets {
			if id == "" {
				results[label] = map[string]any{"status": "missing_env"}
				continue
			}
			info, err := c.Prober.GetBucket(r.Context(), id)
			results[label] = probeStatus(info, err)
		}
		resp.Buckets = results
	} else {
		resp.Buckets = map[string]any{"status": "incomplete_config"}
	}

	helpers.WriteJSON(w, http.StatusOK, resp)
}
