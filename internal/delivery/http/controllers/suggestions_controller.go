package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"clubsite/config"
	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

// SuggestionRequest is the request body for POST /suggestions. Anonymous
// defaults to true when omitted; name and email are only meaningful for
// non-anonymous submissions.
type SuggestionRequest struct {
	Content   string `json:"content"`
	Anonymous *bool  `json:"anonymous"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// Validate implements Validator.
func (s SuggestionRequest) Validate() []string {
	if strings.TrimSpace(s.Content) == "" {
		return []string{"Content is required"}
	}
	return nil
}

func (s SuggestionRequest) anonymous() bool {
	return s.Anonymous == nil || *s.Anonymous
}

// SuggestionResponse is the success response body for POST /suggestions.
type SuggestionResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// suggestionUpstreamError carries the upstream error body on a 502.
type suggestionUpstreamError struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// SuggestionsController handles the suggestion box.
type SuggestionsController struct {
	Logger *slog.Logger
	Cfg    *config.Config
	Store  domain.DocumentStore
}

func NewSuggestionsController(logger *slog.Logger, cfg *config.Config, store domain.DocumentStore) *SuggestionsController {
	return &SuggestionsController{Logger: logger, Cfg: cfg, Store: store}
}

// Create godoc
// @Summary Submit a suggestion
// @Description Stores a free-text suggestion with status Pending. Name and email are omitted from the stored record for anonymous submissions.
// @Tags forms
// @Accept json
// @Produce json
// @Param body body SuggestionRequest true "Suggestion"
// @Success 201 {object} SuggestionResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Failure 502 {object} suggestionUpstreamError
// @Router /suggestions [post]
func (c *SuggestionsController) Create(w http.ResponseWriter, r *http.Request) {
	var req SuggestionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	aw := c.Cfg.Appwrite
	collection := c.Cfg.Collections.Suggestions
	if aw.Endpoint == "" || aw.ProjectID == "" || aw.DatabaseID == "" || aw.APIKey == "" || !collectionConfigured(collection) {
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Server misconfigured: missing document service configuration")
		return
	}

	suggestion := domain.Suggestion{
		Content:   req.Content,
		Anonymous: req.anonymous(),
		Name:      req.Name,
		Email:     req.Email,
	}
	doc, err := c.Store.CreateDocument(r.Context(), domain.Privileged, collection, suggestion.DocumentData())
	if err != nil {
		logUpstream(c.Logger, "createDocument", collection, err)
		var se *domain.ServiceError
		if errors.As(err, &se) {
			helpers.WriteJSON(w, http.StatusBadGateway, suggestionUpstreamError{
				Error:   "Failed to create suggestion",
				Details: se.Body,
			})
			return
		}
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to create suggestion")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, SuggestionResponse{OK: true, ID: doc.ID})
}
