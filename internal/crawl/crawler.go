// Package crawl finds fresh news for a keyword via Google News search RSS
// and extracts usable content from each result page.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/newsflow-hq/newsflow-go/internal/domain"
	"github.com/newsflow-hq/newsflow-go/internal/logger"
	"github.com/newsflow-hq/newsflow-go/pkg/newsapi"
)

const (
	defaultSearchBase = "https://news.google.com"
	defaultHoursBack  = 8
	defaultPageDelay  = 500 * time.Millisecond
)

// Options configures a crawl Service.
type Options struct {
	// SearchBase overrides the Google News host, mainly for tests.
	SearchBase string
	// Language and Region become the hl/gl query params of the search URL.
	Language string
	Region   string
	// PageDelay throttles successive article page fetches.
	PageDelay time.Duration
	// Fetcher overrides the page fetcher, mainly for tests.
	Fetcher PageFetcher
}

// Service turns one keyword into a batch of extracted stories.
type Service struct {
	parser     *gofeed.Parser
	fetch      PageFetcher
	searchBase string
	language   string
	region     string
	pageDelay  time.Duration
}

// NewService builds a crawl service with the given options.
func NewService(opts Options) *Service {
	if opts.SearchBase == "" {
		opts.SearchBase = defaultSearchBase
	}
	if opts.Language == "" {
		opts.Language = "pt-BR"
	}
	if opts.Region == "" {
		opts.Region = "BR"
	}
	if opts.PageDelay <= 0 {
		opts.PageDelay = defaultPageDelay
	}
	if opts.Fetcher == nil {
		opts.Fetcher = NewPageFetcher()
	}
	return &Service{
		parser:     gofeed.NewParser(),
		fetch:      opts.Fetcher,
		searchBase: strings.TrimRight(opts.SearchBase, "/"),
		language:   opts.Language,
		region:     opts.Region,
		pageDelay:  opts.PageDelay,
	}
}

// searchURL builds the Google News search RSS URL for a keyword, restricted
// to the last `hours` hours.
func (s *Service) searchURL(keyword string, hours int) string {
	q := url.QueryEscape(fmt.Sprintf("%s when:%dh", keyword, hours))
	return fmt.Sprintf("%s/rss/search?q=%s&hl=%s&gl=%s&ceid=%s:%s",
		s.searchBase, q, s.language, s.region, s.region, s.language)
}

// CrawlKeyword fetches the search feed for kw and extracts a story per
// result. Page fetch failures degrade to feed-only stories rather than
// aborting the batch.
func (s *Service) CrawlKeyword(ctx context.Context, kw newsapi.Keyword) ([]domain.Story, error) {
	if strings.TrimSpace(kw.Keyword) == "" {
		return nil, fmt.Errorf("keyword %d has no search term", kw.ID)
	}

	hours := kw.HoursBack
	if hours <= 0 {
		hours = defaultHoursBack
	}

	feed, err := s.parser.ParseURLWithContext(s.searchURL(kw.Keyword, hours), ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch search feed for %q: %w", kw.Keyword, err)
	}

	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)
	stories := make([]domain.Story, 0, len(feed.Items))

	for i, item := range feed.Items {
		select {
		case <-ctx.Done():
			return stories, ctx.Err()
		default:
		}

		if item.Link == "" {
			continue
		}
		if item.PublishedParsed != nil && item.PublishedParsed.Before(cutoff) {
			continue
		}

		story := domain.Story{
			ID:          domain.StableID(item.Link),
			URL:         item.Link,
			Title:       strings.TrimSpace(item.Title),
			SourceName:  hostnameFromURL(item.Link),
			PublishedAt: item.PublishedParsed,
			Keyword:     kw.Keyword,
		}

		if body, err := s.fetch.Get(ctx, item.Link); err != nil {
			logger.WarnObj("article page fetch failed", "page_error", map[string]any{
				"keyword": kw.Keyword,
				"url":     item.Link,
				"error":   err.Error(),
			})
		} else if ex, err := ExtractPage(body, story.Title); err == nil {
			if ex.Title != "" {
				story.Title = ex.Title
			}
			story.Image = ex.Image
			story.Paragraphs = ex.Paragraphs
		}

		stories = append(stories, story)

		if s.pageDelay > 0 && i < len(feed.Items)-1 {
			timer := time.NewTimer(s.pageDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return stories, ctx.Err()
			case <-timer.C:
			}
		}
	}

	return stories, nil
}

// hostnameFromURL returns the bare host of a URL for use as a source name.
func hostnameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "fonte"
	}
	return strings.TrimPrefix(u.Host, "www.")
}
