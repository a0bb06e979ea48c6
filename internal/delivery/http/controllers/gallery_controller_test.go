package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubsite/internal/domain"
)

func galleryDoc(id, title, fileID string) domain.Document {
	fields := map[string]any{"title": title}
	if fileID != "" {
		fields["fileId"] = fileID
	}
	return domain.Document{ID: id, CreatedAt: "2026-01-01T00:00:00.000+00:00", Fields: fields}
}

func TestGalleryList_Success(t *testing.T) {
	store := &fakeStore{listResult: domain.DocumentList{
		Total: 2,
		Documents: []domain.Document{
			galleryDoc("g-1", "Orientation", "f-1"),
			galleryDoc("g-2", "", ""),
		},
	}}
	ctrl := NewGalleryController(testLogger(), testConfig(), store, fakeResolver{})

	req := httptest.NewRequest(http.MethodGet, "/gallery", nil)
	rec := httptest.NewRecorder()
	ctrl.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp GalleryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Docs, 2)
	assert.Empty(t, resp.Error)
	assert.Equal(t, "Orientation", resp.Docs[0].Title)
	require.NotNil(t, resp.Docs[0].ImageURL)
	assert.Equal(t, "https://files.test/bucket-gallery/f-1", *resp.Docs[0].ImageURL)
	assert.Equal(t, "Untitled", resp.Docs[1].Title)
	assert.Nil(t, resp.Docs[1].ImageURL)

	require.Len(t, store.listCalls, 1)
	assert.Equal(t, domain.Anonymous, store.listCalls[0].mode)
}

func TestGalleryList_CachesSuccessfulListing(t *testing.T) {
	store := &fakeStore{listResult: domain.DocumentList{
		Total:     1,
		Documents: []domain.Document{galleryDoc("g-1", "Orientation", "f-1")},
	}}
	ctrl := NewGalleryController(testLogger(), testConfig(), store, fakeResolver{})

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		ctrl.List(rec, httptest.NewRequest(http.MethodGet, "/gallery", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Len(t, store.listCalls, 1, "repeat requests within the TTL must be served from cache")
}

func TestGalleryList_CacheExpires(t *testing.T) {
	store := &fakeStore{listResult: domain.DocumentList{
		Total:     1,
		Documents: []domain.Document{galleryDoc("g-1", "Orientation", "f-1")},
	}}
	ctrl := NewGalleryController(testLogger(), testConfig(), store, fakeResolver{})
	ctrl.ttl = 10 * time.Millisecond

	rec := httptest.NewRecorder()
	ctrl.List(rec, httptest.NewRequest(http.MethodGet, "/gallery", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	time.Sleep(20 * time.Millisecond)

	rec = httptest.NewRecorder()
	ctrl.List(rec, httptest.NewRequest(http.MethodGet, "/gallery", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Len(t, store.listCalls, 2)
}

func TestGalleryList_FailureDegradesAndIsNotCached(t *testing.T) {
	store := &fakeStore{listErr: &domain.ServiceError{StatusCode: 500, Body: "boom"}}
	ctrl := NewGalleryController(testLogger(), testConfig(), store, fakeResolver{})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		ctrl.List(rec, httptest.NewRequest(http.MethodGet, "/gallery", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp GalleryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Docs)
		assert.NotNil(t, resp.Docs, "docs must be an empty array, not null")
		assert.Equal(t, "Failed to fetch gallery", resp.Error)
	}

	assert.Len(t, store.listCalls, 2, "degraded responses are recomputed each request")
}

func TestGalleryList_UnconfiguredCollection(t *testing.T) {
	cfg := testConfig()
	cfg.Collections.Gallery = ""
	store := &fakeStore{}
	ctrl := NewGalleryController(testLogger(), cfg, store, fakeResolver{})

	rec := httptest.NewRecorder()
	ctrl.List(rec, httptest.NewRequest(http.MethodGet, "/gallery", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Gallery collection not configured")
	assert.Zero(t, store.calls())
}
