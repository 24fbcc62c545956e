package app

import (
	"testing"
	"time"

	"github.com/newsflow-hq/newsflow-go/pkg/newsapi"
)

func TestDueForUpdate(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	past := func(minutes int) *time.Time {
		ts := now.Add(-time.Duration(minutes) * time.Minute)
		return &ts
	}

	cases := []struct {
		name string
		kw   newsapi.Keyword
		want bool
	}{
		{"never collected", newsapi.Keyword{}, true},
		{"window elapsed", newsapi.Keyword{UpdateFrequency: 10, LastUpdated: past(15)}, true},
		{"window open", newsapi.Keyword{UpdateFrequency: 10, LastUpdated: past(5)}, false},
		{"default frequency elapsed", newsapi.Keyword{LastUpdated: past(12)}, true},
		{"default frequency open", newsapi.Keyword{LastUpdated: past(3)}, false},
	}

	for _, tc := range cases {
		if got := dueForUpdate(tc.kw, now); got != tc.want {
			t.Fatalf("%s: dueForUpdate = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestStoryFromArticle(t *testing.T) {
	published := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	art := newsapi.Article{
		ID:            4,
		Title:         "Headline",
		Content:       "First paragraph.\n\nSecond paragraph.\n\n",
		Source:        "Portal",
		URL:           "https://portal.test/a",
		PublishedDate: &published,
		Keyword:       "clima",
		ImageURL:      "https://cdn.test/a.jpg",
	}

	story := storyFromArticle("id-1", art)
	if story.ID != "id-1" || story.Title != "Headline" || story.Keyword != "clima" {
		t.Fatalf("story identity wrong: %+v", story)
	}
	if len(story.Paragraphs) != 2 || story.Paragraphs[1] != "Second paragraph." {
		t.Fatalf("Paragraphs = %#v", story.Paragraphs)
	}
	if story.Image != "https://cdn.test/a.jpg" || story.SourceName != "Portal" {
		t.Fatalf("metadata wrong: %+v", story)
	}
}

func TestArticleStableIDFallsBackToNumericID(t *testing.T) {
	withURL := articleStableID(newsapi.Article{ID: 1, URL: "https://portal.test/a"})
	withoutURL := articleStableID(newsapi.Article{ID: 1})
	if withURL == withoutURL {
		t.Fatalf("expected different id derivations")
	}
	if withoutURL != "api-1" {
		t.Fatalf("fallback id = %q", withoutURL)
	}
}
