package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubsite/internal/domain"
)

func TestLogin_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing email", body: `{"password":"pw"}`},
		{name: "missing password", body: `{"email":"admin@example.com"}`},
		{name: "empty body", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &fakeSessions{}
			ctrl := NewAuthController(testLogger(), testConfig(), sessions)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			ctrl.Login(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, sessions.calls)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	sessions := &fakeSessions{err: &domain.ServiceError{StatusCode: 401, Body: "invalid credentials"}}
	ctrl := NewAuthController(testLogger(), testConfig(), sessions)

	body := `{"email":"admin@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
	assert.Empty(t, rec.Result().Cookies(), "no session cookie on failed login")
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	sessions := &fakeSessions{session: domain.Session{
		ID:     "sess-1",
		UserID: "user-1",
		Secret: "opaque-secret",
	}}
	ctrl := NewAuthController(testLogger(), testConfig(), sessions)

	body := `{"email":"admin@example.com","password":"correct"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "user-1", resp.UserID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "session", cookie.Name)
	assert.Equal(t, "opaque-secret", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.False(t, cookie.Secure, "secure flag is off outside production")
	assert.Equal(t, 60*60*24*30, cookie.MaxAge)
}

func TestLogin_SecureCookieInProduction(t *testing.T) {
	sessions := &fakeSessions{session: domain.Session{UserID: "user-1", Secret: "s"}}
	cfg := testConfig()
	cfg.Environment = "production"
	ctrl := NewAuthController(testLogger(), cfg, sessions)

	body := `{"email":"admin@example.com","password":"correct"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}
