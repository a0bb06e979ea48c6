package controllers

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"clubsite/config"
	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

// galleryCacheTTL is how long a successful gallery listing is served from
// memory. The cache is advisory: it is not invalidated on writes, so a new
// upload becomes visible once the window elapses.
const galleryCacheTTL = 600 * time.Second

// GalleryResponse is the response body for GET /gallery. Docs is always
// present; Error is set when the upstream fetch failed and the list
// degraded to empty.
type GalleryResponse struct {
	Docs  []domain.GalleryImage `json:"docs"`
	Error string                `json:"error,omitempty"`
}

// GalleryController serves the public gallery listing.
type GalleryController struct {
	Logger *slog.Logger
	Cfg    *config.Config
	Store  domain.DocumentStore
	Files  domain.FileURLResolver

	mu       sync.Mutex
	cached   *GalleryResponse
	cachedAt time.Time
	ttl      time.Duration
}

func NewGalleryController(logger *slog.Logger, cfg *config.Config, store domain.DocumentStore, files domain.FileURLResolver) *GalleryController {
	return &GalleryController{
		Logger: logger,
		Cfg:    cfg,
		Store:  store,
		Files:  files,
		ttl:    galleryCacheTTL,
	}
}

// List godoc
// @Summary List gallery images
// @Description Lists gallery records with derived public image URLs. Successful responses are cached for 10 minutes. Upstream failures degrade to an empty list with an error field, never a 5xx.
// @Tags content
// @Produce json
// @Success 200 {object} GalleryResponse
// @Router /gallery [get]
func (c *GalleryController) List(w http.ResponseWriter, r *http.Request) {
	if resp, ok := c.fromCache(); ok {
		helpers.WriteJSON(w, http.StatusOK, resp)
		return
	}

	collection := c.Cfg.Collections.Gallery
	if !collectionConfigured(collection) {
		helpers.WriteJSON(w, http.StatusOK, GalleryResponse{
			Docs:  []domain.GalleryImage{},
			Error: "Gallery collection not configured",
		})
		return
	}

	list, err := c.Store.ListDocuments(r.Context(), domain.Anonymous, collection)
	if err != nil {
		logUpstream(c.Logger, "listDocuments", collection, err)
		helpers.WriteJSON(w, http.StatusOK, GalleryResponse{
			Docs:  []domain.GalleryImage{},
			Error: "Failed to fetch gallery",
		})
		return
	}

	docs := make([]domain.GalleryImage, 0, len(list.Documents))
	for _, d := range list.Documents {
		docs = append(docs, domain.GalleryImageFromDocument(d, c.Files, c.Cfg.Buckets.Gallery))
	}
	resp := GalleryResponse{Docs: docs}
	c.storeCache(resp)
	helpers.WriteJSON(w, http.StatusOK, resp)
}

func (c *GalleryController) fromCache() (GalleryResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cached != nil && time.Since(c.cachedAt) < c.ttl {
		return *c.cached, true
	}
	return GalleryResponse{}, false
}

// storeCache keeps only successful listings; degraded responses are
// recomputed on every request.
func (c *GalleryController) storeCache(resp GalleryResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = &resp
	c.cachedAt = time.Now()
}
