package publishers

import (
	"time"

	"github.com/newsflow-hq/newsflow-go/internal/domain"
)

// Event represents the payload published downstream.
type Event struct {
	Origin      string       `json:"origin"`
	Keyword     string       `json:"keyword"`
	Story       domain.Story `json:"story"`
	CollectedAt time.Time    `json:"collected_at"`
}

// NewEvent constructs an Event for the given origin + keyword + story.
func NewEvent(origin, keyword string, story domain.Story) Event {
	return Event{
		Origin:      origin,
		Keyword:     keyword,
		Story:       story,
		CollectedAt: time.Now().UTC(),
	}
}
