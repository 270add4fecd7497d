package client

import (
	"net/http"
	"time"

	"github.com/cupstats/nascar-client/client/internal/frame"
)

// DefaultBaseURL is the public cacher host.
const DefaultBaseURL = "https://cf.nascar.com"

// DefaultUserAgent identifies the SDK to the upstream service.
const DefaultUserAgent = "nascar-client-go/1"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client fetches schedules, results, standings and driver data from the
// NASCAR cacher API. It holds no mutable state after construction and is safe
// for concurrent use; every call is a fresh request.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
	timeout   time.Duration
	debug     bool

	now    func() time.Time
	loc    *time.Location
	frames FrameBuilder
}

// New constructs a Client. With no options it talks to DefaultBaseURL with a
// 30s HTTP timeout.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:   DefaultBaseURL,
		http:      &http.Client{},
		userAgent: DefaultUserAgent,
		timeout:   30 * time.Second,
		now:       time.Now,
		loc:       time.Local,
		frames:    frame.DefaultBuilder{},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}
	if c.debug {
		c.http.Transport = &debugTransport{base: c.http.Transport}
	}
	c.wrapTransportWithUserAgent()

	return c, nil
}

// wrapTransportWithUserAgent installs the outermost transport, which stamps
// User-Agent on every request.
func (c *Client) wrapTransportWithUserAgent() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &userAgentTransport{base: base, userAgent: c.userAgent}
}

// userAgentTransport wraps an http.RoundTripper to set the User-Agent header.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(cloned)
}

// BaseURL returns the host the client sends requests to.
func (c *Client) BaseURL() string { return c.baseURL }

// resolveSeason fills SeasonQuery defaults from the clock at call time and validates it.
func (c *Client) resolveSeason(q SeasonQuery) (int, Series, error) {
	year, series := q.Year, q.Series
	if year == 0 {
		year = c.now().In(c.loc).Year()
	}
	if series == 0 {
		series = SeriesCup
	}
	if err := validateYear(year); err != nil {
		return 0, 0, err
	}
	if err := validateSeries(series); err != nil {
		return 0, 0, err
	}
	return year, series, nil
}
