package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"clubsite/config"
	"clubsite/internal/domain"
)

// Client is the typed gateway to the hosted document/object-store service.
// Every call picks its auth mode: domain.Anonymous sends only the project
// header and relies on per-collection public-read permissions;
// domain.Privileged also attaches the server API key. A write issued in
// anonymous mode surfaces the service's permission-denied response as a
// *domain.ServiceError rather than being swallowed.
type Client struct {
	cfg    config.Appwrite
	client *http.Client
}

// Interface conformance for the gateway ports.
var (
	_ domain.DocumentStore  = (*Client)(nil)
	_ domain.FileStore      = (*Client)(nil)
	_ domain.SessionCreator = (*Client)(nil)
	_ domain.HealthProber   = (*Client)(nil)
)

// New returns a Client for the given connection parameters. A nil
// *http.Client falls back to http.DefaultClient.
func New(cfg config.Appwrite, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{cfg: cfg, client: client}
}

// do issues one request and decodes a 2xx JSON response into out (skipped
// when out is nil). Transport failures wrap domain.ErrServiceUnreachable;
// non-2xx responses become *domain.ServiceError.
func (c *Client) do(ctx context.Context, mode domain.AuthMode, method, path string, query url.Values, body any, out any) error {
	u := c.cfg.Endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Appwrite-Project", c.cfg.ProjectID)
	if mode == domain.Privileged {
		req.Header.Set("X-Appwrite-Key", c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &domain.ServiceError{StatusCode: resp.StatusCode, Body: string(detail)}
	}
	if out == nil {
		return nil
	}
	return decodeJSON(resp.Body, out)
}

func decodeJSON(r io.Reader, out any) error {
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// documentFromMap splits a raw document into identity, timestamps, and
// collection attributes, stripping the service's internal metadata.
func documentFromMap(m map[string]any) domain.Document {
	d := domain.Document{Fields: make(map[string]any, len(m))}
	for k, v := range m {
		switch k {
		case "$id":
			d.ID, _ = v.(string)
		case "$createdAt":
			d.CreatedAt, _ = v.(string)
		case "$updatedAt":
			d.UpdatedAt, _ = v.(string)
		case "$permissions", "$databaseId", "$collectionId", "$sequence":
			// internal metadata, never exposed
		default:
			d.Fields[k] = v
		}
	}
	return d
}

func (c *Client) documentsPath(collection string) string {
	return fmt.Sprintf("/databases/%s/collections/%s/documents", c.cfg.DatabaseID, collection)
}

// ListDocuments fetches one page of documents plus the total count.
// Queries use the service's query syntax; see domain.QueryLimit and friends.
func (c *Client) ListDocuments(ctx context.Context, mode domain.AuthMode, collection string, queries ...string) (domain.DocumentList, error) {
	var query url.Values
	if len(queries) > 0 {
		query = url.Values{"queries[]": queries}
	}
	var raw struct {
		Total     int              `json:"total"`
		Documents []map[string]any `json:"documents"`
	}
	if err := c.do(ctx, mode, http.MethodGet, c.documentsPath(collection), query, nil, &raw); err != nil {
		return domain.DocumentList{}, fmt.Errorf("list documents in %s: %w", collection, err)
	}
	list := domain.DocumentList{Total: raw.Total, Documents: make([]domain.Document, 0, len(raw.Documents))}
	for _, m := range raw.Documents {
		list.Documents = append(list.Documents, documentFromMap(m))
	}
	return list, nil
}

// GetDocument fetches a single document. A missing id yields domain.ErrNotFound.
func (c *Client) GetDocument(ctx context.Context, mode domain.AuthMode, collection, id string) (domain.Document, error) {
	var raw map[string]any
	if err := c.do(ctx, mode, http.MethodGet, c.documentsPath(collection)+"/"+id, nil, nil, &raw); err != nil {
		return domain.Document{}, fmt.Errorf("get document %s/%s: %w", collection, id, err)
	}
	return documentFromMap(raw), nil
}

// CreateDocument creates a document with a service-assigned id and returns
// the stored record. Schema violations yield domain.ErrValidationRejected.
func (c *Client) CreateDocument(ctx context.Context, mode domain.AuthMode, collection string, data map[string]any) (domain.Document, error) {
	body := map[string]any{
		"documentId": "unique()",
		"data":       data,
	}
	var raw map[string]any
	if err := c.do(ctx, mode, http.MethodPost, c.documentsPath(collection), nil, body, &raw); err != nil {
		return domain.Document{}, fmt.Errorf("create document in %s: %w", collection, err)
	}
	return documentFromMap(raw), nil
}

// UpdateDocument patches the given attributes on an existing document and
// returns the updated record.
func (c *Client) UpdateDocument(ctx context.Context, mode domain.AuthMode, collection, id string, data map[string]any) (domain.Document, error) {
	var raw map[string]any
	if err := c.do(ctx, mode, http.MethodPatch, c.documentsPath(collection)+"/"+id, nil, map[string]any{"data": data}, &raw); err != nil {
		return domain.Document{}, fmt.Errorf("update document %s/%s: %w", collection, id, err)
	}
	return documentFromMap(raw), nil
}

// DeleteDocument removes a document. Only maintenance commands call this;
// the serving path never deletes.
func (c *Client) DeleteDocument(ctx context.Context, mode domain.AuthMode, collection, id string) error {
	if err := c.do(ctx, mode, http.MethodDelete, c.documentsPath(collection)+"/"+id, nil, nil, nil); err != nil {
		return fmt.Errorf("delete document %s/%s: %w", collection, id, err)
	}
	return nil
}
