// Command cleanup deletes every record in the gallery collection and
// recreates a small placeholder album structure, uploading a placeholder
// cover image for each album. Individual item failures are logged and do
// not stop the run.
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"os"

	"clubsite/config"
	"clubsite/internal/adapters/appwrite"
	"clubsite/internal/domain"
)

// placeholderPNG is a 1x1 transparent PNG used as album cover until real
// photos are uploaded.
const placeholderPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

var albums = []string{
	"Inauguration",
	"Workshops",
	"Hackathons",
	"Guest Lectures",
}

func main() {
	logger := config.NewLogger()
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	aw := cfg.Appwrite
	if aw.Endpoint == "" || aw.ProjectID == "" || aw.DatabaseID == "" || aw.APIKey == "" {
		logger.Error("missing document service configuration")
		os.Exit(1)
	}
	collection := cfg.Collections.Gallery
	bucket := cfg.Buckets.Gallery
	if collection == "" || collection == "TBD" || bucket == "" {
		logger.Error("gallery collection or bucket not configured")
		os.Exit(1)
	}

	gw := appwrite.New(aw, nil)
	ctx := context.Background()
	failures := 0

	list, err := gw.ListDocuments(ctx, domain.Privileged, collection, domain.QueryLimit(100))
	if err != nil {
		logger.Error("failed to list gallery documents", "err", err)
		os.Exit(1)
	}
	logger.Info("cleaning gallery collection", "documents", len(list.Documents))

	for _, doc := range list.Documents {
		if err := gw.DeleteDocument(ctx, domain.Privileged, collection, doc.ID); err != nil {
			logger.Error("failed to delete gallery document", "id", doc.ID, "err", err)
			failures++
			continue
		}
		logger.Info("deleted gallery document", "id", doc.ID, "title", doc.String("title"))
	}

	cover, err := base64.StdEncoding.DecodeString(placeholderPNG)
	if err != nil {
		logger.Error("failed to decode placeholder image", "err", err)
		os.Exit(1)
	}

	for _, title := range albums {
		file, err := gw.CreateFile(ctx, bucket, "", "placeholder.png", bytes.NewReader(cover))
		if err != nil {
			logger.Error("failed to upload album cover", "album", title, "err", err)
			failures++
			continue
		}
		doc, err := gw.CreateDocument(ctx, domain.Privileged, collection, map[string]any{
			"title":  title,
			"fileId": file.ID,
		})
		if err != nil {
			logger.Error("failed to create album record", "album", title, "err", err)
			failures++
			continue
		}
		logger.Info("created album", "album", title, "id", doc.ID, "fileId", file.ID)
	}

	if failures > 0 {
		logger.Warn("cleanup finished with failures", "failures", failures)
		os.Exit(1)
	}
	logger.Info("cleanup finished")
}
