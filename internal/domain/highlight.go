package domain

// Highlight is a published club highlight or blog post. Read-only from the
// serving path; Slug is the unique human-readable key.
type Highlight struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	Date      string `json:"date"`
	Slug      string `json:"slug"`
	ImageID   string `json:"imageId,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// HighlightFromDocument projects a stored highlight record into a Highlight.
func HighlightFromDocument(d Document) Highlight {
	return Highlight{
		ID:        d.ID,
		Title:     d.String("title"),
		Excerpt:   d.String("excerpt"),
		Content:   d.String("content"),
		Author:    d.String("author"),
		Date:      d.String("date"),
		Slug:      d.String("slug"),
		ImageID:   d.String("imageId"),
		CreatedAt: d.CreatedAt,
	}
}
