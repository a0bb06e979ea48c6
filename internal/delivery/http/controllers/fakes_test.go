package controllers

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"clubsite/config"
	"clubsite/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "development",
		Appwrite: config.Appwrite{
			Endpoint:   "https://cloud.example.com/v1",
			ProjectID:  "proj-1",
			APIKey:     "secret-key",
			DatabaseID: "db-1",
		},
		Collections: config.Collections{
			Events:        "col-events",
			Team:          "col-team",
			Gallery:       "col-gallery",
			Highlights:    "col-highlights",
			Suggestions:   "col-suggestions",
			Notifications: "col-notifications",
			Subscribers:   "col-subscribers",
			Messages:      "col-messages",
		},
		Buckets: config.Buckets{
			Team:    "bucket-team",
			Events:  "bucket-events",
			Gallery: "bucket-gallery",
		},
	}
}

type listCall struct {
	mode       domain.AuthMode
	collection string
	queries    []string
}

type createCall struct {
	mode       domain.AuthMode
	collection string
	data       map[string]any
}

// fakeStore implements domain.DocumentStore for handler tests.
type fakeStore struct {
	listResult   domain.DocumentList
	listErr      error
	createResult domain.Document
	createErr    error

	listCalls   []listCall
	createCalls []createCall
}

func (f *fakeStore) ListDocuments(_ context.Context, mode domain.AuthMode, collection string, queries ...string) (domain.DocumentList, error) {
	f.listCalls = append(f.listCalls, listCall{mode: mode, collection: collection, queries: queries})
	if f.listErr != nil {
		return domain.DocumentList{}, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeStore) GetDocument(_ context.Context, _ domain.AuthMode, _, _ string) (domain.Document, error) {
	return domain.Document{}, domain.ErrNotFound
}

func (f *fakeStore) CreateDocument(_ context.Context, mode domain.AuthMode, collection string, data map[string]any) (domain.Document, error) {
	f.createCalls = append(f.createCalls, createCall{mode: mode, collection: collection, data: data})
	if f.createErr != nil {
		return domain.Document{}, f.createErr
	}
	return f.createResult, nil
}

func (f *fakeStore) UpdateDocument(_ context.Context, _ domain.AuthMode, _, _ string, _ map[string]any) (domain.Document, error) {
	return domain.Document{}, domain.ErrNotFound
}

func (f *fakeStore) DeleteDocument(_ context.Context, _ domain.AuthMode, _, _ string) error {
	return domain.ErrNotFound
}

func (f *fakeStore) calls() int {
	return len(f.listCalls) + len(f.createCalls)
}

// fakeResolver implements domain.FileURLResolver.
type fakeResolver struct{}

func (fakeResolver) FileViewURL(bucket, fileID string) string {
	return fmt.Sprintf("https://files.test/%s/%s", bucket, fileID)
}

// fakeMailer implements domain.Mailer and records sends.
type fakeMailer struct {
	sendErr error
	sent    []string // "to|subject"
}

func (f *fakeMailer) Send(to, subject, _, _ string) error {
	f.sent = append(f.sent, to+"|"+subject)
	return f.sendErr
}

// fakeSessions implements domain.SessionCreator.
type fakeSessions struct {
	session domain.Session
	err     error
	calls   int
}

func (f *fakeSessions) CreateEmailPasswordSession(_ context.Context, _, _ string) (domain.Session, error) {
	f.calls++
	if f.err != nil {
		return domain.Session{}, f.err
	}
	return f.session, nil
}

// fakeProber implements domain.HealthProber.
type fakeProber struct {
	version       string
	versionErr    error
	databaseErr   error
	collectionErr map[string]error
	bucketErr     map[string]error
}

func (f *fakeProber) Version(_ context.Context) (string, error) {
	if f.versionErr != nil {
		return "", f.versionErr
	}
	return f.version, nil
}

func (f *fakeProber) GetDatabase(_ context.Context) (domain.ResourceInfo, error) {
	if f.databaseErr != nil {
		return domain.ResourceInfo{}, f.databaseErr
	}
	return domain.ResourceInfo{ID: "db-1", Name: "main"}, nil
}

func (f *fakeProber) GetCollection(_ context.Context, id string) (domain.ResourceInfo, error) {
	if err := f.collectionErr[id]; err != nil {
		return domain.ResourceInfo{}, err
	}
	return domain.ResourceInfo{ID: id, Name: "collection " + id}, nil
}

func (f *fakeProber) GetBucket(_ context.Context, id string) (domain.ResourceInfo, error) {
	if err := f.bucketErr[id]; err != nil {
		return domain.ResourceInfo{}, err
	}
	return domain.ResourceInfo{ID: id, Name: "bucket " + id}, nil
}
