package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"clubsite/config"
	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

// ContactRequest is the request body for POST /contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate implements Validator.
func (c ContactRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(c.Subject) == "" {
		errs = append(errs, "subject is required")
	}
	if strings.TrimSpace(c.Message) == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// ContactResponse is the success response body for POST /contact.
type ContactResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ContactController handles the contact form.
type ContactController struct {
	Logger *slog.Logger
	Cfg    *config.Config
	Store  domain.DocumentStore
	Mailer domain.Mailer
}

func NewContactController(logger *slog.Logger, cfg *config.Config, store domain.DocumentStore, mailer domain.Mailer) *ContactController {
	return &ContactController{Logger: logger, Cfg: cfg, Store: store, Mailer: mailer}
}

// Create godoc
// @Summary Submit a contact message
// @Description Stores a contact form submission. All fields are required. A notification email to the club inbox is sent best-effort.
// @Tags forms
// @Accept json
// @Produce json
// @Param body body ContactRequest true "Contact message"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /contact [post]
func (c *ContactController) Create(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	collection := c.Cfg.Collections.Messages
	if !collectionConfigured(collection) {
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Server misconfigured: messages collection not set")
		return
	}

	msg := domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	doc, err := c.Store.CreateDocument(r.Context(), domain.Privileged, collection, msg.DocumentData(time.Now()))
	if err != nil {
		logUpstream(c.Logger, "createDocument", collection, err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	c.notify(msg)
	helpers.WriteJSON(w, http.StatusOK, ContactResponse{Success: true, ID: doc.ID})
}

// notify emails the club inbox about the new message. Failures are logged
// and never surfaced to the submitter.
func (c *ContactController) notify(msg domain.ContactMessage) {
	to := c.Cfg.Email.NotifyAddress
	if c.Mailer == nil || to == "" {
		return
	}
	subject := fmt.Sprintf("New contact message: %s", msg.Subject)
	text := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
	if err := c.Mailer.Send(to, subject, "", text); err != nil {
		c.Logger.Warn("contact notification email failed", "err", err)
	}
}
