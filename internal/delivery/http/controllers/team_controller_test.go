package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubsite/internal/domain"
)

func teamDoc(id, name string, order int) domain.Document {
	return domain.Document{
		ID: id,
		Fields: map[string]any{
			"name":     name,
			"role":     "Member",
			"category": "tech",
			"photoId":  id + ".jpg",
			"order":    float64(order),
		},
	}
}

func TestTeamList_SortedWithImageURLs(t *testing.T) {
	store := &fakeStore{listResult: domain.DocumentList{
		Total: 3,
		Documents: []domain.Document{
			teamDoc("m-3", "Cleo", 3),
			teamDoc("m-1", "Ada", 1),
			teamDoc("m-2", "Bea", 2),
		},
	}}
	ctrl := NewTeamController(testLogger(), testConfig(), store, fakeResolver{})

	rec := httptest.NewRecorder()
	ctrl.List(rec, httptest.NewRequest(http.MethodGet, "/team", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TeamResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Members, 3)
	assert.Equal(t, "Ada", resp.Members[0].Name)
	assert.Equal(t, "Bea", resp.Members[1].Name)
	assert.Equal(t, "Cleo", resp.Members[2].Name)
	assert.Equal(t, "https://files.test/bucket-team/m-1", resp.Members[0].ImageURL,
		"photo extension must be stripped before the file id is resolved")

	require.Len(t, store.listCalls, 1)
	assert.Equal(t, domain.Privileged, store.listCalls[0].mode,
		"roster listing runs server-side with elevated access")
}

func TestTeamList_UpstreamFailureReturns500(t *testing.T) {
	store := &fakeStore{listErr: &domain.ServiceError{StatusCode: 500, Body: "boom"}}
	ctrl := NewTeamController(testLogger(), testConfig(), store, fakeResolver{})

	rec := httptest.NewRecorder()
	ctrl.List(rec, httptest.NewRequest(http.MethodGet, "/team", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp TeamResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Members)
	assert.Empty(t, resp.Members)
	assert.Equal(t, "Failed to fetch team", resp.Error)
}

func TestTeamList_MisconfiguredCollection(t *testing.T) {
	cfg := testConfig()
	cfg.Collections.Team = ""
	store := &fakeStore{}
	ctrl := NewTeamController(testLogger(), cfg, store, fakeResolver{})

	rec := httptest.NewRecorder()
	ctrl.List(rec, httptest.NewRequest(http.MethodGet, "/team", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "team collection not set")
	assert.Zero(t, store.calls())
}
