package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/newsflow-hq/newsflow-go/internal/config"
	"github.com/newsflow-hq/newsflow-go/internal/domain"
	"github.com/newsflow-hq/newsflow-go/internal/logger"
	"github.com/newsflow-hq/newsflow-go/internal/storage"
	"github.com/newsflow-hq/newsflow-go/pkg/newsapi"
	"github.com/newsflow-hq/newsflow-go/pkg/publishers"
)

// Watcher polls the backend's article listing and forwards records it has
// not seen before to the publisher fanout. It bridges the NewsFlow API to
// downstream queues without touching the crawl pipeline.
type Watcher struct {
	cfg      *config.Config
	api      *newsapi.Client
	fanout   *publishers.Fanout
	store    storage.Store
	interval time.Duration
	log      logger.Logger
}

// NewWatcher builds a watcher runtime from config.
func NewWatcher(ctx context.Context, cfg *config.Config, log logger.Logger) (*Watcher, error) {
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

	return &Watcher{
		cfg:      cfg,
		api:      api,
		fanout:   fanout,
		store:    store,
		interval: cfg.PollInterval,
		log:      log,
	}, nil
}

// Close releases the watcher's storage handle.
func (w *Watcher) Close() error {
	if w == nil || w.store == nil {
		return nil
	}
	return w.store.Close()
}

// Run starts the polling loop until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if w == nil || w.api == nil {
		return fmt.Errorf("watcher is not initialized")
	}

	w.log.InfoObj("watcher loop starting", "watcher_state", map[string]any{
		"publishers_count": w.fanout.Size(),
		"poll_interval":    w.interval.String(),
	})

	if err := w.runOnce(ctx); err != nil {
		w.log.ErrorObj("initial poll failed", "error", err.Error())
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.InfoObj("watcher loop exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := w.runOnce(ctx); err != nil {
				w.log.ErrorObj("scheduled poll failed", "error", err.Error())
			}
		}
	}
}

// runOnce lists current articles and forwards the unseen ones.
func (w *Watcher) runOnce(ctx context.Context) error {
	articles, err := w.api.Articles.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("list articles: %w", err)
	}

	forwarded := 0
	var errs []error
	for _, art := range articles {
		id := articleStableID(art)

		seen, err := w.store.SeenStory(id)
		if err != nil {
			errs = append(errs, fmt.Errorf("seen check %s: %w", id, err))
			continue
		}
		if seen {
			continue
		}

		story := storyFromArticle(id, art)
		count, err := w.fanout.Publish(ctx, publishers.NewEvent("watcher", art.Keyword, story))
		if err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", id, err))
		}
		if count == 0 {
			continue
		}
		forwarded++
		if err := w.store.MarkStory(id); err != nil {
			errs = append(errs, fmt.Errorf("mark %s: %w", id, err))
		}
	}

	w.log.InfoObj("poll pass completed", "poll_meta", map[string]any{
		"articles_listed":    len(articles),
		"articles_forwarded": forwarded,
	})
	return errors.Join(errs...)
}

// articleStableID keys an API article for dedupe: by URL hash when the URL
// is present, by numeric ID otherwise.
func articleStableID(art newsapi.Article) string {
	if art.URL != "" {
		return domain.StableID(art.URL)
	}
	return fmt.Sprintf("api-%d", art.ID)
}

// storyFromArticle converts an API article into the downstream story shape.
func storyFromArticle(id string, art newsapi.Article) domain.Story {
	var paragraphs []string
	for _, p := range strings.Split(art.Content, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	return domain.Story{
		ID:          id,
		URL:         art.URL,
		Title:       art.Title,
		Image:       art.ImageURL,
		Paragraphs:  paragraphs,
		SourceName:  art.Source,
		PublishedAt: art.PublishedDate,
		Keyword:     art.Keyword,
	}
}
