package domain

import "strings"

// SuggestionStatusPending is the status every new suggestion starts in.
const SuggestionStatusPending = "Pending"

// Suggestion is a free-text suggestion submitted through the site.
// Write-only from this system: created, never read back.
type Suggestion struct {
	Content   string
	Anonymous bool
	Name      string
	Email     string
}

// DocumentData builds the stored record for a new suggestion. Name and
// email are omitted entirely for anonymous submissions.
func (s Suggestion) DocumentData() map[string]any {
	data := map[string]any{
		"content":   strings.TrimSpace(s.Content),
		"anonymous": s.Anonymous,
		"status":    SuggestionStatusPending,
	}
	if !s.Anonymous {
		if s.Name != "" {
			data["name"] = s.Name
		}
		if s.Email != "" {
			data["email"] = s.Email
		}
	}
	return data
}
