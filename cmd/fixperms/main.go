// Command fixperms resets every configured collection to the expected
// permission set: public read, authenticated create/update/delete. It
// fetches each collection first to preserve its name, logs per collection,
// and continues past individual failures.
package main

import (
	"context"
	"os"

	"clubsite/config"
	"clubsite/internal/adapters/appwrite"
)

var permissions = []string{
	`read("any")`,
	`create("users")`,
	`update("users")`,
	`delete("users")`,
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

	collections := map[string]string{
		"events":        cfg.Collections.Events,
		"highlights":    cfg.Collections.Highlights,
		"team":          cfg.Collections.Team,
		"gallery":       cfg.Collections.Gallery,
		"suggestions":   cfg.Collections.Suggestions,
		"notifications": cfg.Collections.Notifications,
		"subscribers":   cfg.Collections.Subscribers,
		"messages":      cfg.Collections.Messages,
	}

	gw := appwrite.New(aw, nil)
	ctx := context.Background()
	failures := 0

	for label, id := range collections {
		if id == "" || id == "TBD" {
			logger.Warn("skipping unconfigured collection", "collection", label)
			continue
		}
		info, err := gw.GetCollection(ctx, id)
		if err != nil {
			logger.Error("failed to fetch collection", "collection", label, "id", id, "err", err)
			failures++
			continue
		}
		if err := gw.UpdateCollectionPermissions(ctx, id, info.Name, permissions); err != nil {
			logger.Error("failed to update permissions", "collection", label, "id", id, "err", err)
			failures++
			continue
		}
		logger.Info("updated permissions", "collection", label, "name", info.Name)
	}

	if failures > 0 {
		logger.Warn("permission repair finished with failures", "failures", failures)
		os.Exit(1)
	}
	logger.Info("permission repair finished")
}
