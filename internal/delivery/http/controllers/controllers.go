package controllers

import (
	"errors"
	"log/slog"

	"clubsite/internal/domain"
)

// logUpstream logs a failed gateway call with enough context to diagnose
// (operation, collection, upstream status). The privileged key never
// appears in gateway errors, so the raw error is safe to log.
func logUpstream(logger *slog.Logger, op, collection string, err error) {
	var se *domain.ServiceError
	if errors.As(err, &se) {
		logger.Error("upstream call failed",
			"op", op,
			"collection", collection,
			"status", se.StatusCode,
		)
		return
	}
	logger.Error("upstream call failed",
		"op", op,
		"collection", collection,
		"err", err,
	)
}

// collectionConfigured reports whether a collection id is usable. "TBD" is
// the placeholder value left by the environment setup scripts.
func collectionConfigured(id string) bool {
	return id != "" && id != "TBD"
}
