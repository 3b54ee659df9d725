package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Doer is the subset of *http.Client the caller needs
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues a single JSON POST per call and returns the raw response
type Client struct {
	http Doer
}

// Result holds the upstream status and the full, unparsed response body
type Result struct {
	StatusCode int
	Body       []byte
	Latency    time.Duration
}

// OK reports whether the upstream answered with a 2xx status
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NewClient creates a client around doer. A nil doer gets an *http.Client with the given timeout.
func NewClient(doer Doer, timeout time.Duration) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: timeout}
	}
	return &Client{http: doer}
}

// PostJSON marshals payload, posts it to endpoint and reads the whole body.
// Non-2xx statuses are not errors here; callers inspect Result.
func (c *Client) PostJSON(ctx context.Context, endpoint string, payload interface{}) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal upstream request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", RedactURLError(err))
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", RedactURLError(err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       respBody,
		Latency:    time.Since(start),
	}, nil
}

// RedactURLError strips the query string from a *url.Error so API keys
// passed as query parameters never reach logs or clients.
func RedactURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{Op: urlErr.Op, URL: RedactURL(urlErr.URL), Err: urlErr.Err}
}

// RedactURL replaces every query parameter value of rawURL with "REDACTED"
func RedactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	query := parsed.Query()
	for key := range query {
		query.Set(key, "REDACTED")
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
