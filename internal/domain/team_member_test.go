package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResolver builds recognizable URLs without touching the network.
type fakeResolver struct {
	calls int
}

func (f *fakeResolver) FileViewURL(bucket, fileID string) string {
	f.calls++
	return fmt.Sprintf("https://files.test/%s/%s", bucket, fileID)
}

func TestTeamMemberFromDocument(t *testing.T) {
	resolver := &fakeResolver{}
	doc := Document{
		ID:        "m-1",
		CreatedAt: "2025-05-01T00:00:00Z",
		Fields: map[string]any{
			"name":     "Kinshuk Verma",
			"role":     "Tech Lead",
			"category": "tech",
			"photoId":  "kinshuk.jpg",
			"phone":    "9084359829",
			"order":    float64(3),
		},
	}

	m := TeamMemberFromDocument(doc, resolver, "team")

	assert.Equal(t, "m-1", m.ID)
	assert.Equal(t, "Kinshuk Verma", m.Name)
	assert.Equal(t, CategoryTech, m.Category)
	assert.Equal(t, 3, m.Order)
	// legacy records store the upload filename; the extension is stripped
	// before the URL is built
	assert.Equal(t, "https://files.test/team/kinshuk", m.ImageURL)
}

func TestTeamMemberFromDocument_NoPhoto(t *testing.T) {
	resolver := &fakeResolver{}
	m := TeamMemberFromDocument(Document{ID: "m-2", Fields: map[string]any{"name": "Heer"}}, resolver, "team")
	assert.Empty(t, m.ImageURL)
	assert.Zero(t, resolver.calls)
}

func TestSortTeamMembers(t *testing.T) {
	members := []TeamMember{
		{Name: "c", Order: 7},
		{Name: "a", Order: 1},
		{Name: "b", Order: 4},
	}
	SortTeamMembers(members)
	require.Len(t, members, 3)
	assert.Equal(t, []int{1, 4, 7}, []int{members[0].Order, members[1].Order, members[2].Order})
}

func TestTeamCategory_Valid(t *testing.T) {
	assert.True(t, CategoryLeadership.Valid())
	assert.True(t, CategoryEventHeads.Valid())
	assert.False(t, TeamCategory("core_council").Valid())
	assert.False(t, TeamCategory("").Valid())
}
