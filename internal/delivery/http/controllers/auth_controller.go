package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"clubsite/config"
	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

// sessionCookieName is the cookie carrying the opaque session secret issued
// by the external auth service.
const sessionCookieName = "session"

// sessionMaxAge is 30 days in seconds.
const sessionMaxAge = 60 * 60 * 24 * 30

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the success response body for POST /auth/login.
type LoginResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
}

// AuthController handles admin login against the external auth service.
type AuthController struct {
	Logger   *slog.Logger
	Cfg      *config.Config
	Sessions domain.SessionCreator
}

func NewAuthController(logger *slog.Logger, cfg *config.Config, sessions domain.SessionCreator) *AuthController {
	return &AuthController{Logger: logger, Cfg: cfg, Sessions: sessions}
}

// Login godoc
// @Summary Log in
// @Description Creates a session against the external auth service and sets an http-only session cookie valid for 30 days. Invalid credentials return 401 without a cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	session, err := c.Sessions.CreateEmailPasswordSession(r.Context(), req.Email, req.Password)
	if err != nil {
		c.Logger.Warn("login rejected", "err", err)
		helpers.WriteJSONError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Secret,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   c.Cfg.Environment == "production",
		MaxAge:   sessionMaxAge,
	})
	helpers.WriteJSON(w, http.StatusOK, LoginResponse{Success: true, UserID: session.UserID})
}
