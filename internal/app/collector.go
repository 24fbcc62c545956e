package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/newsflow-hq/newsflow-go/internal/config"
	"github.com/newsflow-hq/newsflow-go/internal/crawl"
	"github.com/newsflow-hq/newsflow-go/internal/logger"
	"github.com/newsflow-hq/newsflow-go/internal/storage"
	"github.com/newsflow-hq/newsflow-go/pkg/newsapi"
	"github.com/newsflow-hq/newsflow-go/pkg/publishers"
)

const defaultUpdateFrequencyMinutes = 10

// Collector wires the API client, the keyword crawler, and the publisher
// fanout into a periodic collection loop: every pass it crawls the active
// keywords that are due and forwards fresh stories downstream.
type Collector struct {
	cfg      *config.Config
	api      *newsapi.Client
	crawler  *crawl.Service
	fanout   *publishers.Fanout
	store    storage.Store
	interval time.Duration
	log      logger.Logger
}

// NewCollector builds a collector runtime from config.
func NewCollector(ctx context.Context, cfg *config.Config, log logger.Logger) (*Collector, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	api := newsapi.New(cfg.APIBaseURL, newsapi.WithTimeout(cfg.APITimeout))

	fanout, err := buildFanout(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	store, err := openStore(cfg, log)
	if err != nil {
		return nil, err
	}

	crawler := crawl.NewService(crawl.Options{
		Language: cfg.CrawlLanguage,
		Region:   cfg.CrawlRegion,
	})

	return &Collector{
		cfg:      cfg,
		api:      api,
		crawler:  crawler,
		fanout:   fanout,
		store:    store,
		interval: cfg.PollInterval,
		log:      log,
	}, nil
}

// Close releases the collector's storage handle.
func (c *Collector) Close() error {
	if c == nil || c.store == nil {
		return nil
	}
	return c.store.Close()
}

// Run starts the collection loop until the context is cancelled.
func (c *Collector) Run(ctx context.Context) error {
	if c == nil || c.crawler == nil {
		return fmt.Errorf("collector is not initialized")
	}

	c.log.InfoObj("collector loop starting", "collector_state", map[string]any{
		"publishers_count": c.fanout.Size(),
		"poll_interval":    c.interval.String(),
	})

	if err := c.runOnce(ctx); err != nil {
		c.log.ErrorObj("initial collection failed", "error", err.Error())
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.log.InfoObj("collector loop exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := c.runOnce(ctx); err != nil {
				c.log.ErrorObj("scheduled collection failed", "error", err.Error())
			}
		}
	}
}

// runOnce crawls every due keyword and publishes what it finds.
func (c *Collector) runOnce(ctx context.Context) error {
	start := time.Now()

	keywords, err := c.api.Keywords.List(ctx, &newsapi.KeywordListOptions{OrderBy: "last_updated"})
	if err != nil {
		return fmt.Errorf("list keywords: %w", err)
	}

	now := time.Now().UTC()
	var errs []error
	crawled, published := 0, 0

	for _, kw := range keywords {
		if !kw.IsActive || !dueForUpdate(kw, now) {
			continue
		}

		n, err := c.collectKeyword(ctx, kw)
		published += n
		crawled++
		if err != nil {
			errs = append(errs, fmt.Errorf("keyword %q: %w", kw.Keyword, err))
		}
		if ctx.Err() != nil {
			break
		}
	}

	c.log.InfoObj("collection pass completed", "collection_meta", map[string]any{
		"keywords_total":    len(keywords),
		"keywords_crawled":  crawled,
		"stories_published": published,
		"elapsed_ms":        time.Since(start).Milliseconds(),
	})
	return errors.Join(errs...)
}

// collectKeyword crawls one keyword, publishes unseen stories, and stamps
// the keyword's last_updated through the API.
func (c *Collector) collectKeyword(ctx context.Context, kw newsapi.Keyword) (int, error) {
	stories, err := c.crawler.CrawlKeyword(ctx, kw)
	if err != nil {
		return 0, err
	}

	published := 0
	var errs []error
	for _, story := range stories {
		seen, err := c.store.SeenStory(story.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("seen check %s: %w", story.ID, err))
			continue
		}
		if seen {
			continue
		}

		count, err := c.fanout.Publish(ctx, publishers.NewEvent("collector", kw.Keyword, story))
		if err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", story.ID, err))
		}
		if count == 0 {
			continue
		}
		published++
		if err := c.store.MarkStory(story.ID); err != nil {
			errs = append(errs, fmt.Errorf("mark %s: %w", story.ID, err))
		}
	}

	now := time.Now().UTC()
	if _, err := c.api.Keywords.Update(ctx, kw.ID, newsapi.KeywordPatch{LastUpdated: &now}); err != nil {
		errs = append(errs, fmt.Errorf("stamp last_updated: %w", err))
	}

	return published, errors.Join(errs...)
}

// dueForUpdate reports whether the keyword's update_frequency window has
// elapsed since its last collection.
func dueForUpdate(kw newsapi.Keyword, now time.Time) bool {
	if kw.LastUpdated == nil {
		return true
	}
	freq := kw.UpdateFrequency
	if freq <= 0 {
		freq = defaultUpdateFrequencyMinutes
	}
	return now.Sub(*kw.LastUpdated) >= time.Duration(freq)*time.Minute
}
