// Package githubtags looks up the tags a GitHub repository offers,
// through the git references REST API.
package githubtags

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	hclog "github.com/hashicorp/go-hclog"
	retryablehttp "github.com/hashicorp/go-retryablehttp"

	"github.com/qrthey/tf-sources-updater/internal/httpclient"
)

// DefaultBaseURL is the public GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com"

const tagRefPrefix = "refs/tags/"

// FetchError describes a failed tag lookup, naming the repository it
// was for so the failure can be reported precisely.
type FetchError struct {
	Owner      string
	Repo       string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	prefix := fmt.Sprintf("fetching tags for %s/%s", e.Owner, e.Repo)
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", prefix, e.Err)
	}
	switch e.StatusCode {
	case http.StatusNotFound:
		return fmt.Sprintf("%s: repository not found", prefix)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Sprintf("%s: access denied (HTTP %d); check that GITHUB_TOKEN is set and valid", prefix, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected response status %d", prefix, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client fetches tags from the GitHub API, retrying transient
// failures. The zero value is not usable; use NewClient.
type Client struct {
	baseURL string
	token   string
	http    *retryablehttp.Client
}

// NewClient returns a client. token may be empty, in which case
// requests are unauthenticated and subject to the anonymous rate
// limit.
func NewClient(token string) *Client {
	retry := retryablehttp.NewClient()
	retry.HTTPClient = httpclient.New()
	retry.RetryMax = 2
	retry.Logger = hclog.New(&hclog.LoggerOptions{
		Name:   "githubtags",
		Level:  hclog.LevelFromString(os.Getenv("TF_UPDATER_LOG")),
		Output: os.Stderr,
	})

	return &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		http:    retry,
	}
}

// SetBaseURL overrides the API endpoint. Exposed for tests against a
// local server.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

// gitRef is the subset of a git references API object this tool reads.
type gitRef struct {
	Ref string `json:"ref"`
}

// Tags returns the raw tag names of the given repository, in the order
// the API reports them.
func (c *Client) Tags(ctx context.Context, owner, repo string) ([]string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/git/refs/tags", c.baseURL, owner, repo)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Owner: owner, Repo: repo, Err: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Owner: owner, Repo: repo, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Owner: owner, Repo: repo, StatusCode: resp.StatusCode}
	}

	var refs []gitRef
	if err := json.NewDecoder(resp.Body).Decode(&refs); err != nil {
		return nil, &FetchError{Owner: owner, Repo: repo, Err: fmt.Errorf("decoding response: %w", err)}
	}

	tags := make([]string, 0, len(refs))
	for _, r := range refs {
		tags = append(tags, strings.TrimPrefix(r.Ref, tagRefPrefix))
	}
	return tags, nil
}
