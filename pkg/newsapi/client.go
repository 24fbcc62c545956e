// Package newsapi is the Go client for the NewsFlow backend REST API.
//
// A Client is bound to one base URL and exposes a typed service per
// resource. Every operation maps to exactly one HTTP round trip; the client
// keeps no state between calls, performs no retries, and does no caching.
package newsapi

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 30 * time.Second

// Client is the SDK entry point, grouping operations by resource.
type Client struct {
	http *resty.Client

	Keywords *KeywordsService
	Articles *ArticlesService
	Feeds    *FeedsService
}

// Option customizes a Client during construction.
type Option func(*Client)

// New builds a client bound to baseURL.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(baseURL, "/")

	rc := resty.New().
		SetHeader("Accept", "application/json").
		SetTimeout(defaultTimeout)

	c := &Client{http: rc}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.http.SetBaseURL(baseURL)

	c.Keywords = &KeywordsService{res: newResource[Keyword](c.http, "keywords", CapList|CapCreate|CapUpdate|CapDelete)}
	c.Articles = &ArticlesService{res: newResource[Article](c.http, "articles", CapList)}
	c.Feeds = &FeedsService{res: newResource[Feed](c.http, "feeds", CapList|CapCreate|CapDelete)}
	return c
}

// WithRestyClient swaps in a caller-configured resty client. The base URL
// passed to New is still applied afterwards.
func WithRestyClient(rc *resty.Client) Option {
	return func(c *Client) {
		if rc != nil {
			c.http = rc
		}
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// WithHeader sets a header on every outgoing request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if key != "" {
			c.http.SetHeader(key, value)
		}
	}
}
