package appwrite

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"clubsite/internal/domain"
)

// FileViewURL builds the public view URL for a stored file. Pure string
// construction; the URLs are stable and unsigned.
func (c *Client) FileViewURL(bucket, fileID string) string {
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view?project=%s",
		c.cfg.Endpoint, bucket, fileID, c.cfg.ProjectID)
}

// CreateFile uploads content into a bucket as a multipart request. An empty
// fileID gets a generated one. Used by maintenance commands only.
func (c *Client) CreateFile(ctx context.Context, bucket, fileID, filename string, content io.Reader) (domain.File, error) {
	if fileID == "" {
		fileID = uuid.NewString()
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("fileId", fileID); err != nil {
		return domain.File{}, fmt.Errorf("create file %s/%s: %w", bucket, fileID, err)
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return domain.File{}, fmt.Errorf("create file %s/%s: %w", bucket, fileID, err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return domain.File{}, fmt.Errorf("create file %s/%s: %w", bucket, fileID, err)
	}
	if err := mw.Close(); err != nil {
		return domain.File{}, fmt.Errorf("create file %s/%s: %w", bucket, fileID, err)
	}

	u := fmt.Sprintf("%s/storage/buckets/%s/files", c.cfg.Endpoint, bucket)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &buf)
	if err != nil {
		return domain.File{}, fmt.Errorf("create file %s/%s: %w", bucket, fileID, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Appwrite-Project", c.cfg.ProjectID)
	req.Header.Set("X-Appwrite-Key", c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.File{}, fmt.Errorf("create file %s/%s: %w: %v", bucket, fileID, domain.ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return domain.File{}, &domain.ServiceError{StatusCode: resp.StatusCode, Body: string(detail)}
	}

	var raw struct {
		ID       string `json:"$id"`
		BucketID string `json:"bucketId"`
		Name     string `json:"name"`
		Size     int64  `json:"sizeOriginal"`
	}
	if err := decodeJSON(resp.Body, &raw); err != nil {
		return domain.File{}, fmt.Errorf("create file %s/%s: %w", bucket, fileID, err)
	}
	return domain.File{ID: raw.ID, Bucket: raw.BucketID, Name: raw.Name, Size: raw.Size}, nil
}
