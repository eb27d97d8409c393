package githubtags

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient("test-token")
	c.http.RetryMax = 0
	c.SetBaseURL(server.URL)
	return c
}

func TestTags(t *testing.T) {
	var gotPath, gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `[
			{"ref": "refs/tags/v1.0.0", "object": {"sha": "aaa", "type": "commit"}},
			{"ref": "refs/tags/v1.3.0", "object": {"sha": "bbb", "type": "commit"}},
			{"ref": "refs/tags/v2.0.0", "object": {"sha": "ccc", "type": "tag"}}
		]`)
	}))

	tags, err := c.Tags(context.Background(), "acme", "widget")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if want := "/repos/acme/widget/git/refs/tags"; gotPath != want {
		t.Errorf("wrong request path %q, want %q", gotPath, want)
	}
	if want := "Bearer test-token"; gotAuth != want {
		t.Errorf("wrong Authorization header %q, want %q", gotAuth, want)
	}
	if diff := cmp.Diff([]string{"v1.0.0", "v1.3.0", "v2.0.0"}, tags); diff != "" {
		t.Errorf("wrong tags\n%s", diff)
	}
}

func TestTagsNoToken(t *testing.T) {
	var gotAuth string
	sawAuth := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawAuth = r.Header["Authorization"]
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	c := NewClient("")
	c.http.RetryMax = 0
	c.SetBaseURL(server.URL)

	if _, err := c.Tags(context.Background(), "acme", "widget"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if sawAuth {
		t.Errorf("request unexpectedly carried Authorization header %q", gotAuth)
	}
}

func TestTagsNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	}))

	_, err := c.Tags(context.Background(), "acme", "missing")
	if err == nil {
		t.Fatal("expected error, got none")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T: %s", err, err)
	}
	if fetchErr.Owner != "acme" || fetchErr.Repo != "missing" {
		t.Errorf("error does not name the repository: %#v", fetchErr)
	}
	if fetchErr.StatusCode != http.StatusNotFound {
		t.Errorf("wrong status code %d", fetchErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "acme/missing") {
		t.Errorf("error message %q does not name the repository", err)
	}
}

func TestTagsAccessDenied(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Bad credentials"}`, http.StatusUnauthorized)
	}))

	_, err := c.Tags(context.Background(), "acme", "private")
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T: %v", err, err)
	}
	if fetchErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong status code %d", fetchErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "access denied") {
		t.Errorf("error message %q does not mention access", err)
	}
}
