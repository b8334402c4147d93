package holidaze

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"holidaze/internal/domain/auth"
)

const apiKeyHeader = "X-Noroff-API-Key"

// Client talks to the Holidaze REST API. The caller's bearer token travels in
// the session stored on the request context.
type Client struct {
	base    string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// RPS and Burst throttle outbound calls; RPS <= 0 disables throttling.
	RPS        float64
	Burst      int
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, errors.New("holidaze: base url required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, errors.Wrap(err, "holidaze: invalid base url")
	}
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RPS > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}
	return &Client{base: base, apiKey: opts.APIKey, http: hc, limiter: limiter, logger: opts.Logger}, nil
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// do sends one request. out receives the "data" member of the response and
// may be nil; empty and 204 responses leave it untouched.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "holidaze: rate limit wait")
	}

	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "holidaze: encode %s %s", method, path)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return errors.Wrapf(err, "holidaze: build %s %s", method, path)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s, ok := auth.SessionFromContext(ctx); ok && s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+string(s.Token))
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "holidaze: %s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "holidaze: read %s %s", method, path)
	}
	if c.logger != nil {
		c.logger.DebugContext(ctx, "holidaze api", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, raw, isJSON)
	}
	if resp.StatusCode == http.StatusNoContent || out == nil || len(raw) == 0 || !isJSON {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.Wrapf(err, "holidaze: decode %s %s", method, path)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrapf(err, "holidaze: decode %s %s data", method, path)
	}
	return nil
}

// Ping reports whether the API answers at all; any HTTP status counts.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.base, nil)
	if err != nil {
		return errors.Wrap(err, "holidaze: ping")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "holidaze: ping")
	}
	return resp.Body.Close()
}
