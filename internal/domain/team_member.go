package domain

import (
	"sort"
	"strings"
)

// TeamCategory is the closed set of team sections shown on the site.
type TeamCategory string

const (
	CategoryFaculty    TeamCategory = "faculty"
	CategoryLeadership TeamCategory = "leadership"
	CategoryFinance    TeamCategory = "finance"
	CategoryTech       TeamCategory = "tech"
	CategoryEventHeads TeamCategory = "event_heads"
	CategoryStage      TeamCategory = "stage"
	CategoryMedia      TeamCategory = "media"
	CategoryEditors    TeamCategory = "editors"
	CategoryPR         TeamCategory = "pr"
	CategoryDiscipline TeamCategory = "discipline"
)

// Valid reports whether c is one of the known categories.
func (c TeamCategory) Valid() bool {
	switch c {
	case CategoryFaculty, CategoryLeadership, CategoryFinance, CategoryTech,
		CategoryEventHeads, CategoryStage, CategoryMedia, CategoryEditors,
		CategoryPR, CategoryDiscipline:
		return true
	}
	return false
}

// TeamMember is a roster entry. Created by maintenance commands or an admin
// UI; the serving path only reads it.
type TeamMember struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Role      string       `json:"role"`
	Category  TeamCategory `json:"category"`
	PhotoID   string       `json:"photoId,omitempty"`
	Email     string       `json:"email,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	Instagram string       `json:"instagram,omitempty"`
	LinkedIn  string       `json:"linkedin,omitempty"`
	GitHub    string       `json:"github,omitempty"`
	Order     int          `json:"order"`
	ImageURL  string       `json:"imageUrl,omitempty"`
	CreatedAt string       `json:"createdAt,omitempty"`
}

// stripFileExtension removes a trailing ".ext" from a stored photo id.
// Some legacy roster rows carry the original upload filename instead of the
// bare file id.
func stripFileExtension(id string) string {
	if i := strings.LastIndex(id, "."); i > 0 {
		return id[:i]
	}
	return id
}

// TeamMemberFromDocument projects a stored roster record into a TeamMember,
// deriving the public image URL from the photo id.
func TeamMemberFromDocument(d Document, files FileURLResolver, bucket string) TeamMember {
	m := TeamMember{
		ID:        d.ID,
		Name:      d.String("name"),
		Role:      d.String("role"),
		Category:  TeamCategory(d.String("category")),
		PhotoID:   d.String("photoId"),
		Email:     d.String("email"),
		Phone:     d.String("phone"),
		Instagram: d.String("instagram"),
		LinkedIn:  d.String("linkedin"),
		GitHub:    d.String("github"),
		Order:     d.Int("order"),
		CreatedAt: d.CreatedAt,
	}
	if fileID := stripFileExtension(m.PhotoID); fileID != "" {
		m.ImageURL = files.FileViewURL(bucket, fileID)
	}
	return m
}

// SortTeamMembers orders members ascending by display order, in place.
func SortTeamMembers(members []TeamMember) {
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Order < members[j].Order
	})
}
