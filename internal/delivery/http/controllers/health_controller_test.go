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

func TestHealthCheck_IncompleteConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Appwrite.APIKey = ""
	ctrl := NewHealthController(testLogger(), cfg, &fakeProber{})

	rec := httptest.NewRecorder()
	ctrl.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	cfgStatus := resp["config"].(map[string]any)
	assert.Equal(t, true, cfgStatus["endpointSet"])
	assert.Equal(t, true, cfgStatus["projectSet"])
	assert.Equal(t, true, cfgStatus["databaseSet"])

	database := resp["database"].(map[string]any)
	assert.Equal(t, "incomplete_config", database["status"])
	collections := resp["collections"].(map[string]any)
	assert.Equal(t, "incomplete_config", collections["status"])
}

func TestHealthCheck_ProbesEveryDependency(t *testing.T) {
	prober := &fakeProber{
		collectionErr: map[string]error{
			"col-gallery": &domain.ServiceError{StatusCode: 404, Body: "not found"},
		},
		bucketErr: map[string]error{
			"bucket-events": domain.ErrServiceUnreachable,
		},
	}
	ctrl := NewHealthController(testLogger(), testConfig(), prober)

	rec := httptest.NewRecorder()
	ctrl.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code, "health always reports via the body, never the status code")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	database := resp["database"].(map[string]any)
	assert.Equal(t, "ok", database["status"])
	assert.Equal(t, "main", database["name"])

	collections := resp["collections"].(map[string]any)
	events := collections["events"].(map[string]any)
	assert.Equal(t, "ok", events["status"])
	gallery := collections["gallery"].(map[string]any)
	assert.Equal(t, "error", gallery["status"])
	assert.Equal(t, float64(404), gallery["httpStatus"])

	buckets := resp["buckets"].(map[string]any)
	eventsBucket := buckets["events"].(map[string]any)
	assert.Equal(t, "error", eventsBucket["status"])
	assert.NotEmpty(t, eventsBucket["message"])
	teamBucket := buckets["team"].(map[string]any)
	assert.Equal(t, "ok", teamBucket["status"])
}

func TestHealthCheck_MissingCollectionEnv(t *testing.T) {
	cfg := testConfig()
	cfg.Collections.Highlights = ""
	ctrl := NewHealthController(testLogger(), cfg, &fakeProber{})

	rec := httptest.NewRecorder()
	ctrl.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	collections := resp["collections"].(map[string]any)
	highlights := collections["highlights"].(map[string]any)
	assert.Equal(t, "missing_env", highlights["status"])
}
