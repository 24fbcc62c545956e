package domain

// Domain contains core models shared by the crawl and publishing pipeline.

import (
	"crypto/sha256"
	"encoding/base64"
	"time"
)

// Story is one extracted news item, ready to be published downstream.
type Story struct {
	ID          string     `json:"id"`
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Image       string     `json:"image,omitempty"`
	Paragraphs  []string   `json:"paragraphs,omitempty"`
	SourceName  string     `json:"source_name,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Keyword     string     `json:"keyword,omitempty"`
}

// StableID derives a short, URL-safe identifier from a value (normally the
// story URL): first 9 bytes of its SHA-256, base64url without padding.
func StableID(value string) string {
	sum := sha256.Sum256([]byte(value))
	return base64.RawURLEncoding.EncodeToString(sum[:9])
}
