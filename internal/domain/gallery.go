package domain

// GalleryImage is one gallery entry with its derived public image URL.
// ImageURL is nil when the record has no file attached.
type GalleryImage struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	FileID    string  `json:"fileId,omitempty"`
	ImageURL  *string `json:"imageUrl"`
	CreatedAt string  `json:"createdAt"`
}

// GalleryImageFromDocument projects a stored gallery record. Untitled
// records get the "Untitled" placeholder the site expects.
func GalleryImageFromDocument(d Document, files FileURLResolver, bucket string) GalleryImage {
	g := GalleryImage{
		ID:        d.ID,
		Title:     d.String("title"),
		FileID:    d.String("fileId"),
		CreatedAt: d.CreatedAt,
	}
	if g.Title == "" {
		g.Title = "Untitled"
	}
	if g.FileID != "" {
		url := files.FileViewURL(bucket, g.FileID)
		g.ImageURL = &url
	}
	return g
}
