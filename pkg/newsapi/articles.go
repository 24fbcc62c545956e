package newsapi

import (
	"context"
	"strconv"
)

// defaultArticleLimit matches the backend default, so an unset limit still
// appears explicitly in the query string.
const defaultArticleLimit = 50

// ArticlesService covers `/articles`. Articles are created server-side by
// collection runs; this client can only read them.
type ArticlesService struct {
	res resource[Article]
}

// ArticleListOptions filters an article listing. An empty Keyword is not
// sent at all; a zero Limit falls back to the backend default of 50.
type ArticleListOptions struct {
	Keyword string
	Limit   int
}

// List fetches articles, newest first, as returned by the server. No
// client-side filtering or limiting happens on top of the query parameters.
func (s *ArticlesService) List(ctx context.Context, opts *ArticleListOptions) ([]Article, error) {
	limit := defaultArticleLimit
	query := map[string]string{}
	if opts != nil {
		query["keyword"] = opts.Keyword
		if opts.Limit > 0 {
			limit = opts.Limit
		}
	}
	query["limit"] = strconv.Itoa(limit)
	return s.res.list(ctx, query)
}
