package crawl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	fetchTimeout     = 20 * time.Second
	maxHTMLBodyBytes = 1 << 20 // 1 MiB
	userAgent        = "Mozilla/5.0 (compatible; newsflow-go/1.0)"
)

// PageFetcher abstracts article page retrieval so tests can inject fakes.
type PageFetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

type restyFetcher struct {
	client *resty.Client
}

// NewPageFetcher returns the default resty-backed fetcher. Redirects are
// followed, which also unwraps t.co style shorteners.
func NewPageFetcher() PageFetcher {
	client := resty.New().
		SetTimeout(fetchTimeout).
		SetHeader("User-Agent", userAgent)
	return &restyFetcher{client: client}
}

func (f *restyFetcher) Get(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("http fetch: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http fetch status %d", resp.StatusCode())
	}
	body := resp.Body()
	if len(body) > maxHTMLBodyBytes {
		body = body[:maxHTMLBodyBytes]
	}
	return body, nil
}
