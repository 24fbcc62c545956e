package newsapi

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Capability describes which operations a resource supports. The backend
// exposes an uneven surface (articles are read-only, feeds cannot be
// patched), so each service is built with its own set.
type Capability uint8

const (
	CapList Capability = 1 << iota
	CapCreate
	CapUpdate
	CapDelete
)

// Has reports whether c includes flag.
func (c Capability) Has(flag Capability) bool { return c&flag != 0 }

// resource is the shared request plumbing behind every typed service. T is
// the entity type decoded from responses.
type resource[T any] struct {
	http *resty.Client
	name string
	caps Capability
}

func newResource[T any](http *resty.Client, name string, caps Capability) resource[T] {
	return resource[T]{http: http, name: name, caps: caps}
}

// list issues GET /<name>. Empty query values are dropped so the request
// never carries bare `key=` pairs.
func (r resource[T]) list(ctx context.Context, query map[string]string) ([]T, error) {
	if !r.caps.Has(CapList) {
		return nil, fmt.Errorf("list %s: %w", r.name, ErrNotSupported)
	}

	var out []T
	req := r.http.R().SetContext(ctx).SetResult(&out)
	for k, v := range query {
		if v == "" {
			continue
		}
		req.SetQueryParam(k, v)
	}

	resp, err := req.Get("/" + r.name)
	if err != nil {
		return nil, transportError(r.name, "list", err)
	}
	if resp.IsError() {
		return nil, statusError(r.name, "list", resp)
	}
	return out, nil
}

// create issues POST /<name> and decodes the created record.
func (r resource[T]) create(ctx context.Context, payload any) (*T, error) {
	if !r.caps.Has(CapCreate) {
		return nil, fmt.Errorf("create %s: %w", r.name, ErrNotSupported)
	}

	var out T
	resp, err := r.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&out).
		Post("/" + r.name)
	if err != nil {
		return nil, transportError(r.name, "create", err)
	}
	if resp.IsError() {
		return nil, statusError(r.name, "create", resp)
	}
	return &out, nil
}

// update issues PATCH /<name>/{id} with a partial body.
func (r resource[T]) update(ctx context.Context, id int64, payload any) (*T, error) {
	if !r.caps.Has(CapUpdate) {
		return nil, fmt.Errorf("update %s: %w", r.name, ErrNotSupported)
	}

	var out T
	resp, err := r.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&out).
		Patch(fmt.Sprintf("/%s/%d", r.name, id))
	if err != nil {
		return nil, transportError(r.name, "update", err)
	}
	if resp.IsError() {
		return nil, statusError(r.name, "update", resp)
	}
	return &out, nil
}

// delete issues DELETE /<name>/{id}. No body either way.
func (r resource[T]) delete(ctx context.Context, id int64) error {
	if !r.caps.Has(CapDelete) {
		return fmt.Errorf("delete %s: %w", r.name, ErrNotSupported)
	}

	resp, err := r.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/%s/%d", r.name, id))
	if err != nil {
		return transportError(r.name, "delete", err)
	}
	if resp.IsError() {
		return statusError(r.name, "delete", resp)
	}
	return nil
}
