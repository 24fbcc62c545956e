package newsapi

import (
	"context"
	"fmt"
)

// KeywordsService covers `/keywords` plus the collection trigger.
type KeywordsService struct {
	res resource[Keyword]
}

// KeywordListOptions narrows a keyword listing. OrderBy accepts a column
// name, optionally prefixed with "-" for descending order.
type KeywordListOptions struct {
	OrderBy string
}

// List fetches all keywords.
func (s *KeywordsService) List(ctx context.Context, opts *KeywordListOptions) ([]Keyword, error) {
	query := map[string]string{}
	if opts != nil {
		query["order_by"] = opts.OrderBy
	}
	return s.res.list(ctx, query)
}

// Create registers a new keyword and returns it with its server-assigned ID.
func (s *KeywordsService) Create(ctx context.Context, kw Keyword) (*Keyword, error) {
	return s.res.create(ctx, kw)
}

// Update patches the given keyword and returns the updated record.
func (s *KeywordsService) Update(ctx context.Context, id int64, patch KeywordPatch) (*Keyword, error) {
	return s.res.update(ctx, id, patch)
}

// Delete removes the keyword.
func (s *KeywordsService) Delete(ctx context.Context, id int64) error {
	return s.res.delete(ctx, id)
}

// Collect asks the backend to run a collection pass for the keyword now.
func (s *KeywordsService) Collect(ctx context.Context, id int64) (*CollectResult, error) {
	var out CollectResult
	resp, err := s.res.http.R().
		SetContext(ctx).
		SetResult(&out).
		Post(fmt.Sprintf("/collect/%d", id))
	if err != nil {
		return nil, transportError(s.res.name, "collect", err)
	}
	if resp.IsError() {
		return nil, statusError(s.res.name, "collect", resp)
	}
	return &out, nil
}
