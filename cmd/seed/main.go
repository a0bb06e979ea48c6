// Command seed populates the team and events collections with initial data.
// It is idempotent: records matched by name or title are skipped. It runs
// out-of-band and is never triggered by user traffic.
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"clubsite/config"
	"clubsite/internal/adapters/appwrite"
	"clubsite/internal/domain"
)

type teamSeed struct {
	Name     string
	Role     string
	Phone    string
	Email    string
	Category string // raw roster label, mapped to the closed category set
	Order    int
}

type eventSeed struct {
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
	Status      domain.EventStatus
}

var teamRows = []teamSeed{
	{Name: "Vishal Kumar", Role: "President", Phone: "6299200082", Category: "Core Council", Order: 1},
	{Name: "Umesh Patel", Role: "Vice President", Phone: "7974389476", Category: "Core Council", Order: 2},
	{Name: "Kinshuk Verma", Role: "Tech Lead", Phone: "9084359829", Category: "Technical", Order: 3},
	{Name: "Arnav Singh", Role: "Developer", Email: "arnavsingh67@gmail.com", Category: "Technical", Order: 4},
	{Name: "Aarchi Sharma", Role: "Event Head", Phone: "6266091145", Category: "Events", Order: 5},
	{Name: "Parul Ajit", Role: "Event Head", Phone: "8602691174", Category: "Events", Order: 6},
	{Name: "Prakhar Sahu", Role: "Media Relations Head", Category: "Media & PR", Order: 7},
	{Name: "Abhijeet Sarkar", Role: "Editor Head", Category: "Creative", Order: 8},
	{Name: "Prince Kumar", Role: "Discipline Head", Category: "Operations", Order: 9},
	{Name: "Heer", Role: "Stage Lead Head", Category: "Operations", Order: 10},
}

var eventRows = []eventSeed{
	{
		Title:       "Intro to Machine Learning",
		Description: "A beginner-friendly workshop covering Python basics and ML concepts.",
		Date:        "2025-11-25T10:00:00Z",
		Time:        "10:00",
		Location:    "Computer Lab 1",
		Status:      domain.EventUpcoming,
	},
	{
		Title:       "AI Innovation Hackathon",
		Description: "24-hour coding battle to build GenAI solutions. Prizes worth 10k.",
		Date:        "2025-12-10T09:00:00Z",
		Time:        "09:00",
		Location:    "Main Auditorium",
		Status:      domain.EventUpcoming,
	},
	{
		Title:       "Guest Lecture: Future of AI",
		Description: "An interactive session with industry experts on the ethics of AI.",
		Date:        "2025-12-20T11:00:00Z",
		Time:        "11:00",
		Location:    "Seminar Hall B",
		Status:      domain.EventUpcoming,
	},
	{
		Title:       "Club Orientation",
		Description: "Welcome session for new members. Introduction to Core Council.",
		Date:        "2025-11-22T15:00:00Z",
		Time:        "15:00",
		Location:    "Campus Lawns",
		Status:      domain.EventCompleted,
	},
}

// mapCategory converts a raw roster label into the closed category set.
func mapCategory(role, raw string) domain.TeamCategory {
	c := strings.ToLower(raw)
	r := strings.ToLower(role)
	switch {
	case strings.Contains(c, "faculty"):
		return domain.CategoryFaculty
	case strings.Contains(c, "core"):
		return domain.CategoryLeadership
	case strings.Contains(c, "finance"):
		return domain.CategoryFinance
	case strings.Contains(c, "technical"):
		return domain.CategoryTech
	case strings.Contains(c, "event"):
		return domain.CategoryEventHeads
	case strings.Contains(c, "media"):
		return domain.CategoryMedia
	case strings.Contains(c, "creative"):
		return domain.CategoryEditors
	case strings.Contains(c, "pr"):
		return domain.CategoryPR
	case strings.Contains(c, "operations"):
		if strings.Contains(r, "stage") || strings.Contains(r, "anchor") {
			return domain.CategoryStage
		}
		return domain.CategoryDiscipline
	}
	if strings.Contains(r, "president") {
		return domain.CategoryLeadership
	}
	return domain.CategoryTech
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
		logger.Error("missing document service configuration; set APPWRITE_ENDPOINT, APPWRITE_PROJECT_ID, APPWRITE_DATABASE_ID, APPWRITE_API_KEY")
		os.Exit(1)
	}
	if cfg.Collections.Team == "" || cfg.Collections.Team == "TBD" ||
		cfg.Collections.Events == "" || cfg.Collections.Events == "TBD" {
		logger.Error("team/events collection ids are unset or TBD; update the environment before seeding")
		os.Exit(1)
	}

	gw := appwrite.New(aw, nil)
	ctx := context.Background()
	failures := 0

	existing := existingValues(ctx, gw, logger, cfg.Collections.Team, "name")
	for _, row := range teamRows {
		if existing[row.Name] {
			logger.Info("skipping existing team member", "name", row.Name)
			continue
		}
		data := map[string]any{
			"name":     row.Name,
			"role":     row.Role,
			"category": string(mapCategory(row.Role, row.Category)),
			"order":    row.Order,
		}
		if row.Phone != "" {
			data["phone"] = row.Phone
		}
		if row.Email != "" {
			data["email"] = row.Email
		}
		doc, err := gw.CreateDocument(ctx, domain.Privileged, cfg.Collections.Team, data)
		if err != nil {
			logger.Error("failed to create team member", "name", row.Name, "err", err)
			failures++
			continue
		}
		logger.Info("created team member", "name", row.Name, "id", doc.ID)
	}

	existing = existingValues(ctx, gw, logger, cfg.Collections.Events, "title")
	for _, row := range eventRows {
		if existing[row.Title] {
			logger.Info("skipping existing event", "title", row.Title)
			continue
		}
		data := map[string]any{
			"title":       row.Title,
			"description": row.Description,
			"date":        row.Date,
			"time":        row.Time,
			"location":    row.Location,
			"status":      string(row.Status),
		}
		doc, err := gw.CreateDocument(ctx, domain.Privileged, cfg.Collections.Events, data)
		if err != nil {
			logger.Error("failed to create event", "title", row.Title, "err", err)
			failures++
			continue
		}
		logger.Info("created event", "title", row.Title, "id", doc.ID)
	}

	if failures > 0 {
		logger.Warn("seeding finished with failures", "failures", failures)
		os.Exit(1)
	}
	logger.Info("seeding finished")
}

// existingValues lists the collection and collects the given string field,
// so reruns can skip records that are already present.
func existingValues(ctx context.Context, gw *appwrite.Client, logger *slog.Logger, collection, field string) map[string]bool {
	values := map[string]bool{}
	list, err := gw.ListDocuments(ctx, domain.Privileged, collection, domain.QueryLimit(100))
	if err != nil {
		logger.Warn("could not list existing documents; seeding may duplicate", "collection", collection, "err", err)
		return values
	}
	for _, d := range list.Documents {
		if v := d.String(field); v != "" {
			values[v] = true
		}
	}
	return values
}
