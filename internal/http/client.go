// Package http implements the transport layer for the Shasta API client:
// request construction, bearer authentication, and the rate-limit retry
// loop with exponential backoff.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/shasta-io/shasta/internal/auth"
	"github.com/shasta-io/shasta/internal/constants"
	"github.com/shasta-io/shasta/pkg/shasta"
)

const defaultUserAgent = "shasta-client-go/1.0"

// Logger interface for transport logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes a single API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    interface{}
}

// Response is the outcome of a request: status code, headers, and the fully
// read body.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client issues requests against a fixed base URL, retrying rate-limited
// attempts with exponential backoff. Only HTTP 429 is retried: other
// failure statuses surface immediately as *shasta.APIError, and transport
// errors propagate without retry.
type Client struct {
	baseURL       string
	tokenManager  auth.TokenManager
	retryClient   *retryablehttp.Client
	userAgent     string
	logger        Logger
	debug         bool
	backoffFactor float64
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the transport logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes the retry budget and the backoff window.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = waitMin
		c.retryClient.RetryWaitMax = waitMax
	}
}

// WithBackoffFactor sets the exponential growth factor of the backoff wait.
func WithBackoffFactor(factor float64) Option {
	return func(c *Client) {
		if factor > 0 {
			c.backoffFactor = factor
		}
	}
}

// WithHTTPClient replaces the underlying standard HTTP client, e.g. to
// inject a custom transport or TLS configuration.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient = httpClient
	}
}

// WithHTTPTimeout sets the per-request timeout of the underlying client.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a transport client for the given base URL. A nil token
// manager sends unauthenticated requests.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	client := &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		tokenManager:  tokenManager,
		retryClient:   retryClient,
		userAgent:     defaultUserAgent,
		backoffFactor: constants.DefaultBackoffFactor,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.CheckRetry = client.checkRetry
	retryClient.Backoff = client.backoff
	retryClient.ErrorHandler = client.errorHandler

	return client
}

// checkRetry retries rate-limited responses only. Transport errors and
// context cancellation abort immediately.
func (c *Client) checkRetry(ctx context.Context, resp *nethttp.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return false, err
	}

	return resp != nil && resp.StatusCode == nethttp.StatusTooManyRequests, nil
}

// backoff waits waitMin * factor^attempt, capped at waitMax. Attempt
// numbers start at 0.
func (c *Client) backoff(waitMin, waitMax time.Duration, attemptNum int, _ *nethttp.Response) time.Duration {
	wait := time.Duration(float64(waitMin) * math.Pow(c.backoffFactor, float64(attemptNum)))
	if wait > waitMax {
		wait = waitMax
	}

	if c.logger != nil {
		c.logger.Warn("Rate limited", map[string]interface{}{
			"attempt": attemptNum,
			"wait":    wait.String(),
		})
	}

	return wait
}

// errorHandler converts an exhausted retry budget into RetryExhaustedError.
// Other errors (transport failures, cancellation) pass through unchanged.
func (c *Client) errorHandler(resp *nethttp.Response, err error, numTries int) (*nethttp.Response, error) {
	if err != nil {
		return resp, err
	}

	lastStatus := 0
	if resp != nil {
		lastStatus = resp.StatusCode
	}

	return resp, &shasta.RetryExhaustedError{
		Attempts:   numTries,
		LastStatus: lastStatus,
	}
}

// Do executes the request. On a non-2xx status the parsed *shasta.APIError
// is returned together with the response so callers can still inspect it.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
		})
	}

	resp, err := c.retryClient.Do(httpReq)
	if err != nil {
		retryErr := &shasta.RetryExhaustedError{}
		if errors.As(err, &retryErr) {
			return readResponse(resp), err
		}

		return nil, fmt.Errorf("request failed: %w", err)
	}

	response := readResponse(resp)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": response.StatusCode,
			"url":    httpReq.URL.String(),
		})
	}

	if response.StatusCode < nethttp.StatusOK || response.StatusCode >= nethttp.StatusMultipleChoices {
		return response, shasta.ParseAPIError(response.StatusCode, response.Body)
	}

	return response, nil
}

// buildRequest assembles the retryable request with URL, headers, and the
// JSON-encoded body.
func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var rawBody []byte

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		rawBody = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// readResponse drains and closes the response body.
func readResponse(resp *nethttp.Response) *Response {
	if resp == nil {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}
