package controllers

import (
	"log/slog"
	"net/http"

	"clubsite/config"
	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

// HighlightsResponse is the response body for GET /highlights. Message is
// set when the collection is not configured; Error when the upstream fetch
// failed. Both cases return 200 with an empty list.
type HighlightsResponse struct {
	Highlights []domain.Highlight `json:"highlights"`
	Message    string             `json:"message,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// HighlightsController serves the public highlights listing.
type HighlightsController struct {
	Logger *slog.Logger
	Cfg    *config.Config
	Store  domain.DocumentStore
}

func NewHighlightsController(logger *slog.Logger, cfg *config.Config, store domain.DocumentStore) *HighlightsController {
	return &HighlightsController{Logger: logger, Cfg: cfg, Store: store}
}

// List godoc
// @Summary List highlights
// @Description Lists up to 100 highlights, newest first. An unconfigured collection yields an empty result with a message, not an error; upstream failures degrade to an empty list.
// @Tags content
// @Produce json
// @Success 200 {object} HighlightsResponse
// @Router /highlights [get]
func (c *HighlightsController) List(w http.ResponseWriter, r *http.Request) {
	collection := c.Cfg.Collections.Highlights
	if !collectionConfigured(collection) {
		helpers.WriteJSON(w, http.StatusOK, HighlightsResponse{
			Highlights: []domain.Highlight{},
			Message:    "Collection not configured",
		})
		return
	}

	list, err := c.Store.ListDocuments(r.Context(), domain.Anonymous, collection,
		domain.QueryLimit(100),
		domain.QueryOrderDesc("createdAt"),
	)
	if err != nil {
		logUpstream(c.Logger, "listDocuments", collection, err)
		helpers.WriteJSON(w, http.StatusOK, HighlightsResponse{
			Highlights: []domain.Highlight{},
			Error:      "Failed to fetch",
		})
		return
	}

	highlights := make([]domain.Highlight, 0, len(list.Documents))
	for _, d := range list.Documents {
		highlights = append(highlights, domain.HighlightFromDocument(d))
	}
	helpers.WriteJSON(w, http.StatusOK, HighlightsResponse{Highlights: highlights})
}
