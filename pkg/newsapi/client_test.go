package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestArticlesListDefaultLimitOmitsEmptyKeyword(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Articles.List(context.Background(), nil); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotQuery != "limit=50" {
		t.Fatalf("query = %q, want limit=50 with no keyword param", gotQuery)
	}
}

func TestArticlesListKeywordAndLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/articles" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("keyword"); got != "climate" {
			t.Fatalf("keyword = %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Fatalf("limit = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":1,"title":"Sea levels rising","keyword":"climate"}]`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	articles, err := c.Articles.List(context.Background(), &ArticleListOptions{Keyword: "climate", Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(articles) != 1 || articles[0].Title != "Sea levels rising" {
		t.Fatalf("unexpected articles: %+v", articles)
	}
}

func TestKeywordsListOrderBy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("order_by"); got != "-last_updated" {
			t.Fatalf("order_by = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Keywords.List(context.Background(), &KeywordListOptions{OrderBy: "-last_updated"}); err != nil {
		t.Fatalf("List: %v", err)
	}
}

func TestKeywordsListNoOptionsSendsNoQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Fatalf("query = %q, want none", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Keywords.List(context.Background(), nil); err != nil {
		t.Fatalf("List: %v", err)
	}
}

func TestKeywordsCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/keywords" {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("Content-Type = %q", ct)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["keyword"] != "energia solar" {
			t.Fatalf("body keyword = %v", body["keyword"])
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":7,"keyword":"energia solar","is_active":true}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	kw, err := c.Keywords.Create(context.Background(), Keyword{Keyword: "energia solar", IsActive: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if kw.ID != 7 {
		t.Fatalf("ID = %d, want 7", kw.ID)
	}
}

func TestKeywordsUpdateSendsOnlyPatchedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/keywords/7" {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body) != 1 {
			t.Fatalf("patch body has %d fields, want 1: %v", len(body), body)
		}
		if body["description"] != "renamed" {
			t.Fatalf("description = %v", body["description"])
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":7,"keyword":"energia solar","description":"renamed","is_active":true}`)
	}))
	defer srv.Close()

	desc := "renamed"
	c := New(srv.URL)
	kw, err := c.Keywords.Update(context.Background(), 7, KeywordPatch{Description: &desc})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if kw.Description != "renamed" {
		t.Fatalf("Description = %q", kw.Description)
	}
}

func TestFeedsDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/feeds/3" {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Feeds.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestKeywordsCollect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/collect/4" {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"status":"success","collected_articles":3}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	res, err := c.Keywords.Collect(context.Background(), 4)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if res.CollectedArticles != 3 {
		t.Fatalf("CollectedArticles = %d", res.CollectedArticles)
	}
}

func TestFeedsPublicJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/publicfeed/2" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":9,"title":"Headline"}]`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	articles, err := c.Feeds.PublicJSON(context.Background(), 2)
	if err != nil {
		t.Fatalf("PublicJSON: %v", err)
	}
	if len(articles) != 1 || articles[0].ID != 9 {
		t.Fatalf("unexpected articles: %+v", articles)
	}
}

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		status int
		kind   Kind
	}{
		{http.StatusNotFound, KindNotFound},
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnprocessableEntity, KindValidation},
		{http.StatusInternalServerError, KindServer},
		{http.StatusBadGateway, KindServer},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", tc.status)
		}))

		c := New(srv.URL)
		_, err := c.Keywords.List(context.Background(), nil)
		srv.Close()
		if err == nil {
			t.Fatalf("status %d: expected error", tc.status)
		}
		apiErr, ok := AsError(err)
		if !ok {
			t.Fatalf("status %d: error is %T, want *Error", tc.status, err)
		}
		if apiErr.Kind != tc.kind {
			t.Fatalf("status %d: kind = %s, want %s", tc.status, apiErr.Kind, tc.kind)
		}
		if apiErr.StatusCode != tc.status {
			t.Fatalf("StatusCode = %d, want %d", apiErr.StatusCode, tc.status)
		}
	}
}

func TestErrorKindTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := New(srv.URL, WithTimeout(50*time.Millisecond))
	_, err := c.Articles.List(context.Background(), nil)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	apiErr, ok := AsError(err)
	if !ok || apiErr.Kind != KindTimeout {
		t.Fatalf("error = %v, want KindTimeout", err)
	}
}

func TestErrorKindTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL)
	_, err := c.Keywords.List(context.Background(), nil)
	if err == nil {
		t.Fatalf("expected transport error")
	}
	apiErr, ok := AsError(err)
	if !ok || apiErr.Kind != KindTransport {
		t.Fatalf("error = %v, want KindTransport", err)
	}
}

func TestCapabilityGuard(t *testing.T) {
	c := New("http://localhost:0")

	// Articles are read-only; exercise the generic guard directly.
	if _, err := c.Articles.res.create(context.Background(), Article{Title: "x"}); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("create on read-only resource: err = %v, want ErrNotSupported", err)
	}
	if err := c.Articles.res.delete(context.Background(), 1); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("delete on read-only resource: err = %v, want ErrNotSupported", err)
	}
	if _, err := c.Feeds.res.update(context.Background(), 1, Feed{}); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("update on feeds: err = %v, want ErrNotSupported", err)
	}
}
