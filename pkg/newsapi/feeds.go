package newsapi

import (
	"context"
	"fmt"
)

// FeedsService covers `/feeds` and the public syndication endpoint. Feeds
// cannot be patched; replace them by delete + create.
type FeedsService struct {
	res resource[Feed]
}

// List fetches all feeds.
func (s *FeedsService) List(ctx context.Context) ([]Feed, error) {
	return s.res.list(ctx, nil)
}

// Create registers a new feed and returns it with its server-assigned ID.
func (s *FeedsService) Create(ctx context.Context, feed Feed) (*Feed, error) {
	return s.res.create(ctx, feed)
}

// Delete removes the feed.
func (s *FeedsService) Delete(ctx context.Context, id int64) error {
	return s.res.delete(ctx, id)
}

// PublicJSON fetches the rendered public feed for a JSON-type feed. Feeds of
// type "rss" render XML on this endpoint and cannot be decoded here.
func (s *FeedsService) PublicJSON(ctx context.Context, id int64) ([]Article, error) {
	var out []Article
	resp, err := s.res.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/publicfeed/%d", id))
	if err != nil {
		return nil, transportError(s.res.name, "public", err)
	}
	if resp.IsError() {
		return nil, statusError(s.res.name, "public", resp)
	}
	return out, nil
}
