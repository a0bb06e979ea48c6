package controllers

import (
	"log/slog"
	"net/http"

	"clubsite/config"
	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

// UnreadCountResponse is the response body for GET /notifications/unread.
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// NotificationsController serves the unread notification count.
type NotificationsController struct {
	Logger *slog.Logger
	Cfg    *config.Config
	Store  domain.DocumentStore
}

func NewNotificationsController(logger *slog.Logger, cfg *config.Config, store domain.DocumentStore) *NotificationsController {
	return &NotificationsController{Logger: logger, Cfg: cfg, Store: store}
}

// UnreadCount godoc
// @Summary Count unread notifications
// @Description Returns the number of unread notifications. Any failure degrades to a count of zero.
// @Tags content
// @Produce json
// @Success 200 {object} UnreadCountResponse
// @Router /notifications/unread [get]
func (c *NotificationsController) UnreadCount(w http.ResponseWriter, r *http.Request) {
	collection := c.Cfg.Collections.Notifications
	if !collectionConfigured(collection) {
		helpers.WriteJSON(w, http.StatusOK, UnreadCountResponse{Count: 0})
		return
	}

	list, err := c.Store.ListDocuments(r.Context(), domain.Anonymous, collection,
		domain.QueryEqual("read", false),
		domain.QueryLimit(100),
	)
	if err != nil {
		logUpstream(c.Logger, "listDocuments", collection, err)
		helpers.WriteJSON(w, http.StatusOK, UnreadCountResponse{Count: 0})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, UnreadCountResponse{Count: list.Total})
}
