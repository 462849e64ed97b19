package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moviecatalog/errs"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.sampleapis.com/movies"

	defaultTimeout   = 10 * time.Second
	defaultRateLimit = 5
	defaultRateBurst = 8
)

type ClientOptions struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit caps outbound requests per second. Zero uses the default;
	// a negative value disables limiting.
	RateLimit float64
}

// Client fetches genre lists from the upstream movies API. It does not retry.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

func NewClient(opts ClientOptions) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := rate.Limit(defaultRateLimit)
	switch {
	case opts.RateLimit < 0:
		limit = rate.Inf
	case opts.RateLimit > 0:
		limit = rate.Limit(opts.RateLimit)
	}

	return &Client{
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(limit, defaultRateBurst),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// FetchGenre issues one GET for genre and tags every returned movie with it.
func (c *Client) FetchGenre(ctx context.Context, genre string) ([]Movie, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, upstreamError(genre, err)
	}

	endpoint := c.baseURL + "/" + url.PathEscape(genre)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, upstreamError(genre, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, upstreamError(genre, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, upstreamError(genre, fmt.Errorf("unexpected status: %s", resp.Status))
	}

	var movies []Movie
	if err := json.NewDecoder(resp.Body).Decode(&movies); err != nil {
		return nil, upstreamError(genre, fmt.Errorf("decode response: %w", err))
	}

	for i := range movies {
		movies[i].Genre = genre
	}
	return movies, nil
}

// UpstreamError wraps a failed call to the movies API.
type UpstreamError struct {
	Genre string
	Err   error
}

func upstreamError(genre string, err error) *UpstreamError {
	return &UpstreamError{
		Genre: genre,
		Err:   err,
	}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("catalog: fetch %s: %v", e.Genre, e.Err)
}

// Unwrap exposes both the cause and the application error so errs.ErrorCode
// reports EUPSTREAM.
func (e *UpstreamError) Unwrap() []error {
	return []error{errs.Errorf(errs.EUPSTREAM, "Could not load %s movies", e.Genre), e.Err}
}
