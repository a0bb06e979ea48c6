package controllers

import (
	"log/slog"
	"net/http"

	"clubsite/config"
	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

// TeamResponse is the response body for GET /team. Members are sorted
// ascending by display order and carry derived image URLs.
type TeamResponse struct {
	Members []domain.TeamMember `json:"members"`
	Error   string              `json:"error,omitempty"`
}

// TeamController serves the public team roster. The listing itself runs
// privileged server-side so the roster collection can stay locked down.
type TeamController struct {
	Logger *slog.Logger
	Cfg    *config.Config
	Store  domain.DocumentStore
	Files  domain.FileURLResolver
}

func NewTeamController(logger *slog.Logger, cfg *config.Config, store domain.DocumentStore, files domain.FileURLResolver) *TeamController {
	return &TeamController{Logger: logger, Cfg: cfg, Store: store, Files: files}
}

// List godoc
// @Summary List team members
// @Description Lists the team roster sorted by display order, with image URLs derived from stored photo ids. Upstream failures return 500 with an empty list.
// @Tags content
// @Produce json
// @Success 200 {object} TeamResponse
// @Failure 500 {object} TeamResponse
// @Router /team [get]
func (c *TeamController) List(w http.ResponseWriter, r *http.Request) {
	collection := c.Cfg.Collections.Team
	if !collectionConfigured(collection) {
		helpers.WriteJSON(w, http.StatusInternalServerError, TeamResponse{
			Members: []domain.TeamMember{},
			Error:   "Server misconfigured: team collection not set",
		})
		return
	}

	list, err := c.Store.ListDocuments(r.Context(), domain.Privileged, collection)
	if err != nil {
		logUpstream(c.Logger, "listDocuments", collection, err)
		helpers.WriteJSON(w, http.StatusInternalServerError, TeamResponse{
			Members: []domain.TeamMember{},
			Error:   "Failed to fetch team",
		})
		return
	}

	members := make([]domain.TeamMember, 0, len(list.Documents))
	for _, d := range list.Documents {
		members = append(members, domain.TeamMemberFromDocument(d, c.Files, c.Cfg.Buckets.Team))
	}
	domain.SortTeamMembers(members)
	helpers.WriteJSON(w, http.StatusOK, TeamResponse{Members: members})
}
