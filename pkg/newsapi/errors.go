package newsapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Kind classifies a failed API call so callers can branch on the failure
// class instead of parsing message text.
type Kind int

const (
	// KindTransport covers DNS, connection, and other network-level failures.
	KindTransport Kind = iota
	// KindTimeout is a context deadline or client timeout expiring mid-call.
	KindTimeout
	// KindValidation is any 4xx other than 404.
	KindValidation
	// KindNotFound is a 404.
	KindNotFound
	// KindServer is any 5xx.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// ErrNotSupported is returned when an operation is invoked on a resource
// whose capability set does not include it.
var ErrNotSupported = errors.New("newsapi: operation not supported for resource")

// Error is the failure type for every API operation.
type Error struct {
	Kind       Kind
	Resource   string
	Op         string
	StatusCode int
	Body       string

	err error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("newsapi: %s %s: %s (status %d): %s", e.Op, e.Resource, e.Kind, e.StatusCode, e.Body)
	}
	if e.err != nil {
		return fmt.Sprintf("newsapi: %s %s: %s: %v", e.Op, e.Resource, e.Kind, e.err)
	}
	return fmt.Sprintf("newsapi: %s %s: %s", e.Op, e.Resource, e.Kind)
}

func (e *Error) Unwrap() error { return e.err }

// AsError unwraps err into *Error when the failure originated in this package.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// statusError maps a non-2xx response to a typed error.
func statusError(res, op string, resp *resty.Response) *Error {
	kind := KindServer
	switch {
	case resp.StatusCode() == http.StatusNotFound:
		kind = KindNotFound
	case resp.StatusCode() >= 400 && resp.StatusCode() < 500:
		kind = KindValidation
	}
	return &Error{
		Kind:       kind,
		Resource:   res,
		Op:         op,
		StatusCode: resp.StatusCode(),
		Body:       bodySnippet(resp.Body()),
	}
}

// transportError maps a failed round trip to a typed error, distinguishing
// timeouts from other network failures.
func transportError(res, op string, err error) *Error {
	kind := KindTransport
	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		kind = KindTimeout
	}
	return &Error{Kind: kind, Resource: res, Op: op, err: err}
}

func bodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
