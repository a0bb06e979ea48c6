package appwrite

import (
	"context"
	"fmt"
	"net/http"

	"clubsite/internal/domain"
)

// Version returns the service version from the open health endpoint.
func (c *Client) Version(ctx context.Context) (string, error) {
	var raw struct {
		Version string `json:"version"`
	}
	if err := c.do(ctx, domain.Anonymous, http.MethodGet, "/health/version", nil, nil, &raw); err != nil {
		return "", fmt.Errorf("health version: %w", err)
	}
	return raw.Version, nil
}

type resourceRaw struct {
	ID   string `json:"$id"`
	Name string `json:"name"`
}

// GetDatabase checks that the configured database exists.
func (c *Client) GetDatabase(ctx context.Context) (domain.ResourceInfo, error) {
	var raw resourceRaw
	if err := c.do(ctx, domain.Privileged, http.MethodGet, "/databases/"+c.cfg.DatabaseID, nil, nil, &raw); err != nil {
		return domain.ResourceInfo{}, fmt.Errorf("get database: %w", err)
	}
	return domain.ResourceInfo{ID: raw.ID, Name: raw.Name}, nil
}

// GetCollection checks that a collection exists.
func (c *Client) GetCollection(ctx context.Context, id string) (domain.ResourceInfo, error) {
	var raw resourceRaw
	path := fmt.Sprintf("/databases/%s/collections/%s", c.cfg.DatabaseID, id)
	if err := c.do(ctx, domain.Privileged, http.MethodGet, path, nil, nil, &raw); err != nil {
		return domain.ResourceInfo{}, fmt.Errorf("get collection %s: %w", id, err)
	}
	return domain.ResourceInfo{ID: raw.ID, Name: raw.Name}, nil
}

// GetBucket checks that a storage bucket exists.
func (c *Client) GetBucket(ctx context.Context, id string) (domain.ResourceInfo, error) {
	var raw resourceRaw
	if err := c.do(ctx, domain.Privileged, http.MethodGet, "/storage/buckets/"+id, nil, nil, &raw); err != nil {
		return domain.ResourceInfo{}, fmt.Errorf("get bucket %s: %w", id, err)
	}
	return domain.ResourceInfo{ID: raw.ID, Name: raw.Name}, nil
}

// UpdateCollectionPermissions replaces a collection's permission set.
// Used by the fixperms maintenance command only.
func (c *Client) UpdateCollectionPermissions(ctx context.Context, id, name string, permissions []string) error {
	body := map[string]any{
		"name":        name,
		"permissions": permissions,
	}
	path := fmt.Sprintf("/databases/%s/collections/%s", c.cfg.DatabaseID, id)
	if err := c.do(ctx, domain.Privileged, http.MethodPut, path, nil, body, nil); err != nil {
		return fmt.Errorf("update collection %s permissions: %w", id, err)
	}
	return nil
}
