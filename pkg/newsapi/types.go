package newsapi

import "time"

// Entity models mirror the backend's JSON records. Optional fields use
// omitempty so create payloads only carry what the caller set.

// Keyword is a tracked search term (or direct source) the backend collects
// articles for.
type Keyword struct {
	ID              int64      `json:"id,omitempty"`
	Keyword         string     `json:"keyword,omitempty"`
	SourceURL       string     `json:"source_url,omitempty"`
	SourceType      string     `json:"source_type,omitempty"`
	Description     string     `json:"description,omitempty"`
	IsActive        bool       `json:"is_active"`
	UpdateFrequency int        `json:"update_frequency,omitempty"`
	HoursBack       int        `json:"hours_back,omitempty"`
	LastUpdated     *time.Time `json:"last_updated,omitempty"`
}

// KeywordPatch is a partial keyword update. Nil fields are left out of the
// PATCH body and keep their server-side value.
type KeywordPatch struct {
	Keyword         *string    `json:"keyword,omitempty"`
	SourceURL       *string    `json:"source_url,omitempty"`
	SourceType      *string    `json:"source_type,omitempty"`
	Description     *string    `json:"description,omitempty"`
	IsActive        *bool      `json:"is_active,omitempty"`
	UpdateFrequency *int       `json:"update_frequency,omitempty"`
	HoursBack       *int       `json:"hours_back,omitempty"`
	LastUpdated     *time.Time `json:"last_updated,omitempty"`
}

// Article is a collected news item, read-only from the client's side.
type Article struct {
	ID             int64      `json:"id,omitempty"`
	Title          string     `json:"title"`
	Content        string     `json:"content,omitempty"`
	Summary        string     `json:"summary,omitempty"`
	Source         string     `json:"source,omitempty"`
	URL            string     `json:"url,omitempty"`
	PublishedDate  *time.Time `json:"published_date,omitempty"`
	Keyword        string     `json:"keyword,omitempty"`
	RelevanceScore int        `json:"relevance_score,omitempty"`
	ImageURL       string     `json:"image_url,omitempty"`
	Category       string     `json:"category,omitempty"`
}

// Feed groups keywords into a public RSS/JSON syndication feed.
type Feed struct {
	ID          int64    `json:"id,omitempty"`
	FeedName    string   `json:"feed_name"`
	Keywords    []string `json:"keywords"`
	FeedType    string   `json:"feed_type,omitempty"`
	PublicURL   string   `json:"public_url,omitempty"`
	IsPublic    bool     `json:"is_public"`
	MaxArticles int      `json:"max_articles,omitempty"`
}

// CollectResult is the backend's response to a collection trigger.
type CollectResult struct {
	Status            string `json:"status"`
	CollectedArticles int    `json:"collected_articles"`
}
