package appwrite

import (
	"context"
	"fmt"
	"net/http"

	"clubsite/internal/domain"
)

// CreateEmailPasswordSession authenticates email/password against the
// external auth service and returns the issued session. Rejected
// credentials surface as an error matching domain.ErrInvalidCredentials.
func (c *Client) CreateEmailPasswordSession(ctx context.Context, email, password string) (domain.Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	var raw struct {
		ID     string `json:"$id"`
		UserID string `json:"userId"`
		Secret string `json:"secret"`
		Expire string `json:"expire"`
	}
	if err := c.do(ctx, domain.Privileged, http.MethodPost, "/account/sessions/email", nil, body, &raw); err != nil {
		return domain.Session{}, fmt.Errorf("create session: %w", err)
	}
	return domain.Session{ID: raw.ID, UserID: raw.UserID, Secret: raw.Secret, Expire: raw.Expire}, nil
}
