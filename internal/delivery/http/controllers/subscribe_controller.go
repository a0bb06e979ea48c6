package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"clubsite/config"
	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

// SubscribeRequest is the request body for POST /subscribe.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator. Only a cheap syntactic check is wanted
// here; the form is best-effort.
func (s SubscribeRequest) Validate() []string {
	if s.Email == "" || !strings.Contains(s.Email, "@") {
		return []string{"Invalid email address"}
	}
	return nil
}

// SubscribeResponse is the success response body for POST /subscribe.
type SubscribeResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// SubscribeController handles newsletter signups.
type SubscribeController struct {
	Logger *slog.Logger
	Cfg    *config.Config
	Store  domain.DocumentStore
}

func NewSubscribeController(logger *slog.Logger, cfg *config.Config, store domain.DocumentStore) *SubscribeController {
	return &SubscribeController{Logger: logger, Cfg: cfg, Store: store}
}

// Create godoc
// @Summary Subscribe to the newsletter
// @Description Creates a subscriber record in anonymous mode, relying on the collection's public-create permission. Duplicate emails are not checked.
// @Tags forms
// @Accept json
// @Produce json
// @Param body body SubscribeRequest true "Subscriber email"
// @Success 200 {object} SubscribeResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /subscribe [post]
func (c *SubscribeController) Create(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	collection := c.Cfg.Collections.Subscribers
	if !collectionConfigured(collection) {
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Server misconfigured: subscribers collection not set")
		return
	}

	sub := domain.Subscriber{Email: req.Email}
	doc, err := c.Store.CreateDocument(r.Context(), domain.Anonymous, collection, sub.DocumentData())
	if err != nil {
		logUpstream(c.Logger, "createDocument", collection, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to subscribe")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, SubscribeResponse{Success: true, ID: doc.ID})
}
