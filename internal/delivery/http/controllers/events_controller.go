package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"clubsite/config"
	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

// EventsResponse is the response body for GET /events: the full listing
// plus upcoming/past partitions, all sorted newest first.
type EventsResponse struct {
	Upcoming []domain.Event `json:"upcoming"`
	Past     []domain.Event `json:"past"`
	All      []domain.Event `json:"all"`
	Message  string         `json:"message,omitempty"`
	Error    string         `json:"error,omitempty"`
}

func emptyEventsResponse() EventsResponse {
	return EventsResponse{
		Upcoming: []domain.Event{},
		Past:     []domain.Event{},
		All:      []domain.Event{},
	}
}

// EventsController serves the public events listing.
type EventsController struct {
	Logger *slog.Logger
	Cfg    *config.Config
	Store  domain.DocumentStore
	Files  domain.FileURLResolver
}

func NewEventsController(logger *slog.Logger, cfg *config.Config, store domain.DocumentStore, files domain.FileURLResolver) *EventsController {
	return &EventsController{Logger: logger, Cfg: cfg, Store: store, Files: files}
}

// List godoc
// @Summary List events
// @Description Lists up to 100 events split into upcoming and past. Upstream failures degrade to empty lists with an error field.
// @Tags content
// @Produce json
// @Success 200 {object} EventsResponse
// @Router /events [get]
func (c *EventsController) List(w http.ResponseWriter, r *http.Request) {
	collection := c.Cfg.Collections.Events
	if !collectionConfigured(collection) {
		resp := emptyEventsResponse()
		resp.Message = "Collection not configured. Run setup script."
		helpers.WriteJSON(w, http.StatusOK, resp)
		return
	}

	list, err := c.Store.ListDocuments(r.Context(), domain.Anonymous, collection, domain.QueryLimit(100))
	if err != nil {
		logUpstream(c.Logger, "listDocuments", collection, err)
		resp := emptyEventsResponse()
		resp.Error = "Failed to fetch events"
		helpers.WriteJSON(w, http.StatusOK, resp)
		return
	}

	events := make([]domain.Event, 0, len(list.Documents))
	for _, d := range list.Documents {
		events = append(events, domain.EventFromDocument(d, c.Files, c.Cfg.Buckets.Events))
	}
	upcoming, past := domain.SplitEvents(events, time.Now())
	resp := EventsResponse{
		Upcoming: upcoming,
		Past:     past,
		All:      events,
	}
	if resp.Upcoming == nil {
		resp.Upcoming = []domain.Event{}
	}
	if resp.Past == nil {
		resp.Past = []domain.Event{}
	}
	helpers.WriteJSON(w, http.StatusOK, resp)
}
