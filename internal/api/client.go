// Package api is the HTTP transport shared by the content and activation
// clients. A Client is constructed explicitly and passed to its users; there
// is no package-level client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/csheth/tinypal/internal/errors"
)

const (
	defaultTimeout   = 30 * time.Second
	errorBodyPreview = 512
	requestIDHeader  = "X-Request-ID"
)

// Hooks observe every request. Any field may be nil.
type Hooks struct {
	OnRequest  func(req *http.Request)
	OnResponse func(req *http.Request, status int, elapsed time.Duration)
	OnError    func(req *http.Request, err error)
}

// Config describes how to build a Client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Hooks      Hooks
}

// Client posts JSON to the TinyPal service.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	hooks   Hooks
}

// New returns a Client for cfg.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: timeout,
		http:    httpClient,
		hooks:   cfg.Hooks,
	}
}

// BaseURL reports the service root the client posts to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PostJSON marshals body, posts it to path and decodes the response into out.
// Failures are *errors.Error values with KindNetwork, KindTimeout, KindServer
// (carrying the status) or KindDecode. An empty success body leaves out untouched.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	op := errors.Op("api.Post " + path)
	buf, err := json.Marshal(body)
	if err != nil {
		return errors.E(op, errors.KindInvalid, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return errors.E(op, errors.KindInvalid, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if c.hooks.OnRequest != nil {
		c.hooks.OnRequest(req)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		classified := errors.E(op, transportKind(ctx, err), err)
		c.reportError(req, classified)
		return classified
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		classified := errors.E(op, transportKind(ctx, err), err)
		c.reportError(req, classified)
		return classified
	}
	if c.hooks.OnResponse != nil {
		c.hooks.OnResponse(req, resp.StatusCode, time.Since(started))
	}
	if resp.StatusCode >= 400 {
		preview := payload
		if len(preview) > errorBodyPreview {
			preview = preview[:errorBodyPreview]
		}
		classified := errors.E(op, errors.KindServer, errors.Status(resp.StatusCode),
			fmt.Errorf("%s (%s)", resp.Status, strings.TrimSpace(string(preview))))
		c.reportError(req, classified)
		return classified
	}
	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		classified := errors.E(op, errors.KindDecode, err)
		c.reportError(req, classified)
		return classified
	}
	return nil
}

func (c *Client) reportError(req *http.Request, err error) {
	if c.hooks.OnError != nil {
		c.hooks.OnError(req, err)
	}
}

func transportKind(ctx context.Context, err error) errors.Kind {
	if ctx.Err() == context.DeadlineExceeded {
		return errors.KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errors.KindTimeout
	}
	return errors.KindNetwork
}

// LoggingHooks logs requests, responses and failures to logger.
func LoggingHooks(logger *zap.Logger) Hooks {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Hooks{
		OnRequest: func(req *http.Request) {
			logger.Info("API Request",
				zap.String("method", req.Method),
				zap.String("url", req.URL.String()),
				zap.String("request_id", req.Header.Get(requestIDHeader)))
		},
		OnResponse: func(req *http.Request, status int, elapsed time.Duration) {
			logger.Info("API Response",
				zap.Int("status", status),
				zap.String("url", req.URL.String()),
				zap.Duration("elapsed", elapsed))
		},
		OnError: func(req *http.Request, err error) {
			switch errors.GetKind(err) {
			case errors.KindServer:
				logger.Error("Response Error", zap.Int("status", errors.StatusOf(err)), zap.Error(err))
			case errors.KindNetwork, errors.KindTimeout:
				logger.Error("Network Error: No response received", zap.String("url", req.URL.String()), zap.Error(err))
			default:
				logger.Error("Request Error", zap.String("url", req.URL.String()), zap.Error(err))
			}
		},
	}
}
