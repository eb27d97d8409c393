// Package httpclient builds the HTTP clients this tool uses for
// outgoing requests, so they all share pooling and User-Agent
// behavior.
package httpclient

import (
	"fmt"
	"net/http"

	cleanhttp "github.com/hashicorp/go-cleanhttp"

	"github.com/qrthey/tf-sources-updater/version"
)

const userAgentFormat = "tf-sources-updater/%s"

// UserAgentString returns the User-Agent header value sent with every
// request.
func UserAgentString() string {
	return fmt.Sprintf(userAgentFormat, version.String())
}

// New returns a pooled http.Client that identifies itself as this
// tool on every request that does not already carry a User-Agent.
func New() *http.Client {
	cli := cleanhttp.DefaultPooledClient()
	cli.Transport = &userAgentRoundTripper{
		inner:     cli.Transport,
		userAgent: UserAgentString(),
	}
	return cli
}

type userAgentRoundTripper struct {
	inner     http.RoundTripper
	userAgent string
}

func (rt *userAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if _, ok := req.Header["User-Agent"]; !ok {
		req.Header.Set("User-Agent", rt.userAgent)
	}
	return rt.inner.RoundTrip(req)
}
