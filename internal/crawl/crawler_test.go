package crawl

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/newsflow-hq/newsflow-go/pkg/newsapi"
)

type fakeFetcher struct {
	pages map[string][]byte
	calls []string
}

func (f *fakeFetcher) Get(_ context.Context, url string) ([]byte, error) {
	f.calls = append(f.calls, url)
	body, ok := f.pages[url]
	if !ok {
		return nil, fmt.Errorf("no page for %s", url)
	}
	return body, nil
}

func rssFeed(items string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>busca</title>` + items + `</channel></rss>`
}

func TestCrawlKeywordExtractsFreshStories(t *testing.T) {
	fresh := time.Now().Add(-1 * time.Hour).Format(time.RFC1123Z)
	stale := time.Now().Add(-48 * time.Hour).Format(time.RFC1123Z)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rss/search" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		q := r.URL.Query().Get("q")
		if q != "enchentes when:8h" {
			t.Fatalf("q = %q", q)
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssFeed(
			`<item><title>Nova enchente</title><link>https://portal.test/a</link><pubDate>`+fresh+`</pubDate></item>`+
				`<item><title>Enchente antiga</title><link>https://portal.test/b</link><pubDate>`+stale+`</pubDate></item>`))
	}))
	defer srv.Close()

	fetcher := &fakeFetcher{pages: map[string][]byte{
		"https://portal.test/a": []byte(`<html><head><meta property="og:image" content="https://cdn.test/a.jpg"></head>` +
			`<body><h1>Nova enchente atinge o centro</h1>` +
			`<p>O nível do rio subiu três metros durante a madrugada desta quinta-feira.</p></body></html>`),
	}}

	svc := NewService(Options{
		SearchBase: srv.URL,
		Fetcher:    fetcher,
		PageDelay:  time.Millisecond,
	})

	stories, err := svc.CrawlKeyword(context.Background(), newsapi.Keyword{ID: 1, Keyword: "enchentes"})
	if err != nil {
		t.Fatalf("CrawlKeyword: %v", err)
	}
	if len(stories) != 1 {
		t.Fatalf("got %d stories, want 1 (stale item filtered): %+v", len(stories), stories)
	}

	story := stories[0]
	if story.Title != "Nova enchente atinge o centro" {
		t.Fatalf("Title = %q", story.Title)
	}
	if story.Image != "https://cdn.test/a.jpg" {
		t.Fatalf("Image = %q", story.Image)
	}
	if story.Keyword != "enchentes" {
		t.Fatalf("Keyword = %q", story.Keyword)
	}
	if story.SourceName != "portal.test" {
		t.Fatalf("SourceName = %q", story.SourceName)
	}
	if story.ID == "" || story.URL != "https://portal.test/a" {
		t.Fatalf("story identity wrong: %+v", story)
	}
}

func TestCrawlKeywordSurvivesPageFetchFailure(t *testing.T) {
	fresh := time.Now().Format(time.RFC1123Z)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssFeed(
			`<item><title>Sem página</title><link>https://portal.test/missing</link><pubDate>`+fresh+`</pubDate></item>`))
	}))
	defer srv.Close()

	svc := NewService(Options{
		SearchBase: srv.URL,
		Fetcher:    &fakeFetcher{},
		PageDelay:  time.Millisecond,
	})

	stories, err := svc.CrawlKeyword(context.Background(), newsapi.Keyword{ID: 1, Keyword: "teste"})
	if err != nil {
		t.Fatalf("CrawlKeyword: %v", err)
	}
	if len(stories) != 1 || stories[0].Title != "Sem página" {
		t.Fatalf("expected feed-only story, got %+v", stories)
	}
}

func TestCrawlKeywordRejectsEmptyTerm(t *testing.T) {
	svc := NewService(Options{Fetcher: &fakeFetcher{}})
	if _, err := svc.CrawlKeyword(context.Background(), newsapi.Keyword{ID: 2}); err == nil {
		t.Fatalf("expected error for empty search term")
	}
}
