package adsmedia

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the root of the ADSMedia v1 API.
	DefaultBaseURL = "https://api.adsmedia.live/v1"

	// DefaultFromName is the sender display name used when neither the
	// request nor the Config supplies one.
	DefaultFromName = "Go"

	// DefaultTimeout bounds a single outbound call.
	DefaultTimeout = 30 * time.Second
)

// Config holds the configuration for the ADSMedia client.
type Config struct {
	// APIKey is the bearer token sent with every request. Required.
	APIKey string

	// BaseURL is the root URL of the ADSMedia API.
	// Default: "https://api.adsmedia.live/v1"
	BaseURL string

	// DefaultFromName is applied to send and batch requests that leave
	// FromName empty.
	// Default: "Go"
	DefaultFromName string

	// Timeout is applied to the default HTTP client. Ignored when
	// HTTPClient is set.
	// Default: 30 seconds
	Timeout time.Duration

	// HTTPClient is an optional custom HTTP client.
	HTTPClient *http.Client
}

func (c *Config) defaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if c.DefaultFromName == "" {
		c.DefaultFromName = DefaultFromName
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
}

// Client is the ADSMedia API client. It is immutable after construction
// and safe for concurrent use.
type Client struct {
	cfg Config
}

// NewClient creates a new ADSMedia client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	cfg.defaults()
	return &Client{cfg: cfg}, nil
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// DefaultFromName returns the sender name applied to requests without one.
func (c *Client) DefaultFromName() string {
	return c.cfg.DefaultFromName
}

// Send sends a single email. An empty FromName is replaced with the
// client's default sender name.
func (c *Client) Send(ctx context.Context, req SendEmailRequest) (Response, error) {
	if req.FromName == "" {
		req.FromName = c.cfg.DefaultFromName
	}
	return c.do(ctx, http.MethodPost, "/send", nil, req)
}

// SendBatch sends one message to many recipients. Recipient order is kept
// so per-recipient results in the response can be correlated.
func (c *Client) SendBatch(ctx context.Context, req BatchEmailRequest) (Response, error) {
	if req.FromName == "" {
		req.FromName = c.cfg.DefaultFromName
	}
	return c.do(ctx, http.MethodPost, "/send/batch", nil, req)
}

// CheckSuppression asks whether an address is on the suppression list.
func (c *Client) CheckSuppression(ctx context.Context, email string) (Response, error) {
	q := url.Values{}
	q.Set("email", email)
	return c.do(ctx, http.MethodGet, "/suppressions/check", q, nil)
}

// Ping tests connectivity and credentials.
func (c *Client) Ping(ctx context.Context) (Response, error) {
	return c.do(ctx, http.MethodGet, "/ping", nil, nil)
}

// GetUsage returns account usage statistics.
func (c *Client) GetUsage(ctx context.Context) (Response, error) {
	return c.do(ctx, http.MethodGet, "/account/usage", nil, nil)
}

// GetStatus looks up the delivery status of a previously sent message.
func (c *Client) GetStatus(ctx context.Context, query StatusQuery) (Response, error) {
	q := url.Values{}
	if query.MessageID != "" {
		q.Set("message_id", query.MessageID)
	}
	if query.SendID != 0 {
		q.Set("send_id", strconv.FormatInt(query.SendID, 10))
	}
	return c.do(ctx, http.MethodGet, "/send/status", q, nil)
}

// do is the only place that composes URLs and attaches credentials.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload interface{}) (Response, error) {
	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &RemoteCallError{Method: method, Path: path, Err: fmt.Errorf("marshal request: %w", err)}
		}
		bodyReader = bytes.NewReader(data)
	}

	target := c.cfg.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, &RemoteCallError{Method: method, Path: path, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, &RemoteCallError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteCallError{Method: method, Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseRemoteError(method, path, resp.StatusCode, body)
	}

	out, err := decodeResponse(body)
	if err != nil {
		return nil, &RemoteCallError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(body), Err: err}
	}

	return out, nil
}

func decodeResponse(body []byte) (Response, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return Response{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var out Response
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out == nil {
		return nil, errors.New("decode response: body is not a JSON object")
	}
	return out, nil
}
