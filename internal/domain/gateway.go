package domain

import (
	"context"
	"fmt"
	"io"
)

// AuthMode selects how a gateway call authenticates against the document
// service. Anonymous relies on the service's per-collection public-read
// permission; Privileged attaches the server-held API key.
type AuthMode int

const (
	Anonymous AuthMode = iota
	Privileged
)

// Document is a stored record as returned by the document service. The
// service assigns ID and timestamps at creation time; they are immutable.
// Fields holds the collection attributes only, with the service's internal
// metadata ($permissions, $databaseId, $collectionId) already stripped.
type Document struct {
	ID        string
	CreatedAt string
	UpdatedAt string
	Fields    map[string]any
}

// String returns the named attribute as a string, or "" when absent or not
// a string.
func (d Document) String(key string) string {
	s, _ := d.Fields[key].(string)
	return s
}

// Bool returns the named attribute as a bool, or false when absent.
func (d Document) Bool(key string) bool {
	b, _ := d.Fields[key].(bool)
	return b
}

// Int returns the named attribute as an int. JSON numbers decode as
// float64, so both are accepted.
func (d Document) Int(key string) int {
	switch v := d.Fields[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// DocumentList is one page of documents plus the collection's total count.
type DocumentList struct {
	Total     int
	Documents []Document
}

// DocumentStore is the typed gateway to the document service's collections.
type DocumentStore interface {
	ListDocuments(ctx context.Context, mode AuthMode, collection string, queries ...string) (DocumentList, error)
	GetDocument(ctx context.Context, mode AuthMode, collection, id string) (Document, error)
	CreateDocument(ctx context.Context, mode AuthMode, collection string, data map[string]any) (Document, error)
	UpdateDocument(ctx context.Context, mode AuthMode, collection, id string, data map[string]any) (Document, error)
	DeleteDocument(ctx context.Context, mode AuthMode, collection, id string) error
}

// File is a stored file descriptor returned by the storage service.
type File struct {
	ID     string
	Bucket string
	Name   string
	Size   int64
}

// FileURLResolver constructs public view URLs for stored files. The
// construction is pure string concatenation; implementations never issue a
// network call.
type FileURLResolver interface {
	FileViewURL(bucket, fileID string) string
}

// FileStore is the typed gateway to the storage service's buckets.
// CreateFile is used by maintenance commands only, never by the serving path.
type FileStore interface {
	FileURLResolver
	CreateFile(ctx context.Context, bucket, fileID, filename string, content io.Reader) (File, error)
}

// Session is an authenticated session issued by the external auth service.
// Secret is the opaque value stored in the session cookie.
type Session struct {
	ID     string
	UserID string
	Secret string
	Expire string
}

// SessionCreator creates sessions against the external auth service.
type SessionCreator interface {
	CreateEmailPasswordSession(ctx context.Context, email, password string) (Session, error)
}

// ResourceInfo describes a database, collection, or bucket for diagnostics.
type ResourceInfo struct {
	ID   string
	Name string
}

// HealthProber exposes the lightweight existence checks used by the health
// and ping routes.
type HealthProber interface {
	Version(ctx context.Context) (string, error)
	GetDatabase(ctx context.Context) (ResourceInfo, error)
	GetCollection(ctx context.Context, id string) (ResourceInfo, error)
	GetBucket(ctx context.Context, id string) (ResourceInfo, error)
}

// Query builders for ListDocuments, in the document service's query syntax.

func QueryLimit(n int) string {
	return fmt.Sprintf("limit(%d)", n)
}

func QueryOrderDesc(field string) string {
	return fmt.Sprintf("orderDesc(%q)", field)
}

func QueryOrderAsc(field string) string {
	return fmt.Sprintf("orderAsc(%q)", field)
}

// QueryEqual encodes an equality filter. Strings are quoted; bools and
// numbers are rendered bare.
func QueryEqual(field string, value any) string {
	if s, ok := value.(string); ok {
		return fmt.Sprintf("equal(%q,%q)", field, s)
	}
	return fmt.Sprintf("equal(%q,%v)", field, value)
}
