package reddit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Config holds Reddit Ads API client configuration.
type Config struct {
	BaseURL        string
	AccessToken    string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter int
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("reddit api: status %d: %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("reddit api: status %d: %s", e.StatusCode, e.Message)
}

// TransportError means no HTTP response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "reddit api: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client talks JSON to the Reddit Ads API, retrying transport failures and
// 5xx answers with exponential backoff. Rate limiting is returned to the
// caller untouched so the retry hint can be surfaced.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	accessToken    string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		accessToken:    cfg.AccessToken,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("platform", "reddit"),
	}
}

// Do sends body as JSON and decodes the response into out when out is not nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.doRequest(ctx, method, path, payload, out)
		if err == nil || !retryable(err) {
			return err
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"method", method,
			"path", path,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return &TransportError{Err: ctx.Err()}
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doRequest(ctx context.Context, method, path string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "CampaignSyncer/1.0")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var errResp errorResponse
	if len(data) > 0 && json.Unmarshal(data, &errResp) == nil && errResp.Error.Message != "" {
		apiErr.Code = errResp.Error.Code
		apiErr.Message = errResp.Error.Message
	} else if len(data) > 0 {
		apiErr.Message = strings.TrimSpace(string(data))
	}

	return apiErr
}

func parseRetryAfter(v string) int {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return secs
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return int(d.Round(time.Second).Seconds())
		}
	}
	return 0
}

func retryable(err error) bool {
	var transport *TransportError
	if errors.As(err, &transport) {
		return !errors.Is(err, context.Canceled)
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return false
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
