package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Appwrite holds connection parameters for the hosted document/storage service.
type Appwrite struct {
	Endpoint   string
	ProjectID  string
	APIKey     string
	DatabaseID string
}

// Collections maps each entity type to its collection identifier.
// An empty or "TBD" value means the collection is not configured yet;
// routes backed by it respond with an empty result or a misconfiguration
// error instead of crashing the process.
type Collections struct {
	Events        string
	Team          string
	Gallery       string
	Highlights    string
	Suggestions   string
	Notifications string
	Subscribers   string
	Messages      string
}

// Buckets maps each file-bearing entity type to its storage bucket identifier.
type Buckets struct {
	Team    string
	Events  string
	Gallery string
}

// Email holds outbound mail settings for the contact notification mailer.
type Email struct {
	Provider      string // "ses" or "noop"
	FromAddress   string
	FromName      string
	NotifyAddress string
	AWSRegion     string
	AWSAccessKey  string
	AWSSecretKey  string
}

// Config holds all configuration for the application. It is built once at
// startup and passed by reference; it is never mutated afterwards.
type Config struct {
	Environment    string
	Port           string
	SiteURL        string
	AllowedOrigins []string
	Appwrite       Appwrite
	Collections    Collections
	Buckets        Buckets
	Email          Email
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the .env file usually doesn't exist and system
	// environment variables are used instead, so a load failure is
	// only a warning.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		Port:        os.Getenv("PORT"),
		SiteURL:     os.Getenv("SITE_URL"),
		Appwrite: Appwrite{
			Endpoint:   strings.TrimSuffix(os.Getenv("APPWRITE_ENDPOINT"), "/"),
			ProjectID:  os.Getenv("APPWRITE_PROJECT_ID"),
			APIKey:     os.Getenv("APPWRITE_API_KEY"),
			DatabaseID: os.Getenv("APPWRITE_DATABASE_ID"),
		},
		Collections: Collections{
			Events:        os.Getenv("COLLECTION_EVENTS"),
			Team:          os.Getenv("COLLECTION_TEAM"),
			Gallery:       os.Getenv("COLLECTION_GALLERY"),
			Highlights:    os.Getenv("COLLECTION_HIGHLIGHTS"),
			Suggestions:   os.Getenv("COLLECTION_SUGGESTIONS"),
			Notifications: os.Getenv("COLLECTION_NOTIFICATIONS"),
			Subscribers:   os.Getenv("COLLECTION_SUBSCRIBERS"),
			Messages:      os.Getenv("COLLECTION_MESSAGES"),
		},
		Buckets: Buckets{
			Team:    os.Getenv("BUCKET_TEAM"),
			Events:  os.Getenv("BUCKET_EVENTS"),
			Gallery: os.Getenv("BUCKET_GALLERY"),
		},
		Email: Email{
			Provider:      os.Getenv("EMAIL_PROVIDER"),
			FromAddress:   os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:      os.Getenv("EMAIL_FROM_NAME"),
			NotifyAddress: os.Getenv("CONTACT_NOTIFY_ADDRESS"),
			AWSRegion:     os.Getenv("AWS_REGION"),
			AWSAccessKey:  os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretKey:  os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "noop"
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}
