// Package http implements the request pipeline shared by every resource
// client: URL assembly, bearer authentication, retry with a fixed delay,
// response caching, and classification of failures into API errors.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/traduki-io/traduki/internal/constants"
	"github.com/traduki-io/traduki/pkg/traduki"
)

type contextKey string

const noRetryKey contextKey = "traduki-no-retry"

// Client executes HTTP requests against the platform API.
type Client struct {
	baseURL        string
	tokens         traduki.TokenProvider
	httpClient     *retryablehttp.Client
	logger         traduki.Logger
	debug          bool
	defaultHeaders map[string]string
	extraParams    map[string]string
	interceptors   *traduki.InterceptorChain
	cache          *traduki.CacheManager
	retryDelay     time.Duration

	defaultProjectID int64
	defaultPageSize  int
}

// DefaultProjectID is the construction-time fallback project for
// project-scoped calls, zero when unset.
func (c *Client) DefaultProjectID() int64 {
	return c.defaultProjectID
}

// DefaultPageSize is the construction-time fallback list page size, zero
// when unset.
func (c *Client) DefaultPageSize() int {
	return c.defaultPageSize
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request tracing.
func WithLogger(logger traduki.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging at debug level.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig sets the retry attempt budget and the fixed delay
// between attempts.
func WithRetryConfig(maxRetries int, delay time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.retryDelay = delay
	}
}

// WithTimeout bounds each request attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithDefaultHeaders adds headers sent with every request.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for key, value := range headers {
			c.defaultHeaders[key] = value
		}
	}
}

// WithDefaultProjectID sets the fallback project for project-scoped calls
// made with a projectID of zero.
func WithDefaultProjectID(projectID int64) Option {
	return func(c *Client) {
		c.defaultProjectID = projectID
	}
}

// WithDefaultPageSize sets the list page size applied when the caller does
// not choose a limit.
func WithDefaultPageSize(size int) Option {
	return func(c *Client) {
		c.defaultPageSize = size
	}
}

// WithExtraParams adds query parameters sent with every request.
// Per-request parameters win on conflict.
func WithExtraParams(params map[string]string) Option {
	return func(c *Client) {
		for key, value := range params {
			c.extraParams[key] = value
		}
	}
}

// WithInterceptors installs a request/response interceptor chain.
func WithInterceptors(chain *traduki.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithCache installs a response cache for GET requests.
func WithCache(cache *traduki.CacheManager) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// NewClient creates a Client for the given base URL. tokens may be nil for
// unauthenticated use; real API calls will then fail with 401.
func NewClient(baseURL string, tokens traduki.TokenProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		tokens:         tokens,
		httpClient:     retryClient,
		defaultHeaders: make(map[string]string),
		extraParams:    make(map[string]string),
		retryDelay:     constants.DefaultRetryDelay,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.CheckRetry = client.checkRetry
	retryClient.Backoff = client.backoff

	return client
}

// checkRetry retries transport failures and server errors. Client errors,
// including 429, surface immediately.
func (c *Client) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if noRetry, ok := ctx.Value(noRetryKey).(bool); ok && noRetry {
		return false, nil
	}

	if err != nil {
		return true, nil
	}

	return traduki.RetryableStatus(resp.StatusCode), nil
}

// backoff waits a fixed delay between attempts.
func (c *Client) backoff(minDelay, maxDelay time.Duration, attemptNum int, resp *http.Response) time.Duration {
	return c.retryDelay
}

// Request describes one API call.
type Request struct {
	Method string
	Path   string
	Query  url.Values

	// Body is encoded through the date-aware codec when non-nil.
	Body any

	// RawBody is sent verbatim; it takes precedence over Body.
	RawBody []byte

	Headers http.Header

	// NoRetry disables retries for this call.
	NoRetry bool
}

// Response is the outcome of one API call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	RequestID  string
}

// Do executes the request. On non-2xx status it returns both the response
// and an *traduki.APIError classified from the status code.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.buildURL(req.Path, req.Query)

	cacheKey := ""
	if c.cache != nil && req.Method == http.MethodGet {
		cacheKey = c.cache.GetCacheKey(req.Method, req.Path, flattenQuery(req.Query))

		cached, err := c.cache.Get(ctx, cacheKey)
		if err == nil {
			if c.debug && c.logger != nil {
				c.logger.Debug("cache hit", map[string]any{"path": req.Path})
			}

			return &Response{
				StatusCode: http.StatusOK,
				Headers:    make(http.Header),
				Body:       cached,
			}, nil
		}
	}

	body, err := c.requestBody(req)
	if err != nil {
		return nil, err
	}

	if req.NoRetry {
		ctx = context.WithValue(ctx, noRetryKey, true)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	err = c.setHeaders(ctx, httpReq, req)
	if err != nil {
		return nil, err
	}

	interceptReq := &traduki.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: httpReq.Header,
		Body:    body,
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
		if err != nil {
			return nil, err
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API request", map[string]any{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		transportErr := traduki.NewTransportError(err.Error())

		c.runResponseInterceptors(ctx, interceptReq, &traduki.Response{Error: transportErr})

		return nil, transportErr
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, traduki.NewTransportError(fmt.Sprintf("reading response body: %s", err))
	}

	// The platform names the correlation header Request-Id; X-Request-ID is
	// kept as a fallback for proxies that rewrite it.
	requestID := httpResp.Header.Get("Request-Id")
	if requestID == "" {
		requestID = httpResp.Header.Get("X-Request-ID")
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
		RequestID:  requestID,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API response", map[string]any{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
			"request_id":  resp.RequestID,
		})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := c.classifyError(resp)

		c.runResponseInterceptors(ctx, interceptReq, &traduki.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
			Error:      apiErr,
		})

		return resp, apiErr
	}

	c.runResponseInterceptors(ctx, interceptReq, &traduki.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	})

	c.updateCache(ctx, req, cacheKey, resp)

	return resp, nil
}

func (c *Client) runResponseInterceptors(ctx context.Context, req *traduki.Request, resp *traduki.Response) {
	if c.interceptors == nil {
		return
	}

	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil && c.logger != nil {
		c.logger.Warn("response interceptor failed", map[string]any{"error": err.Error()})
	}
}

// updateCache stores successful GET responses and invalidates the cache
// after any mutation.
func (c *Client) updateCache(ctx context.Context, req *Request, cacheKey string, resp *Response) {
	if c.cache == nil {
		return
	}

	if req.Method == http.MethodGet {
		if cacheKey != "" && c.cache.ShouldCache(req.Method, req.Path, resp.StatusCode) {
			_ = c.cache.SetWithETag(ctx, cacheKey, resp.Body, resp.Headers.Get("ETag"), 0)
		}

		return
	}

	_ = c.cache.Invalidate(ctx)
}

// classifyError builds an APIError from a non-2xx response. The body is run
// through the codec so error context keeps typed timestamps.
func (c *Client) classifyError(resp *Response) *traduki.APIError {
	var (
		detail     string
		errContext map[string]any
	)

	decoded, err := traduki.DecodeObject(resp.Body)
	if err == nil {
		errContext = decoded

		if msg, ok := decoded["message"].(string); ok {
			detail = msg
		} else if errObj, ok := decoded["error"].(map[string]any); ok {
			if msg, ok := errObj["message"].(string); ok {
				detail = msg
			}
		}
	}

	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	return traduki.NewAPIError(resp.StatusCode, resp.RequestID, detail, errContext)
}

func (c *Client) requestBody(req *Request) ([]byte, error) {
	if req.RawBody != nil {
		return req.RawBody, nil
	}

	if req.Body == nil {
		return nil, nil
	}

	encoded, err := traduki.Encode(req.Body)
	if err != nil {
		return nil, err
	}

	return encoded, nil
}

// setHeaders applies defaults, per-call headers, and then the fixed
// authentication and identification headers, which always win.
func (c *Client) setHeaders(ctx context.Context, httpReq *retryablehttp.Request, req *Request) error {
	for key, value := range c.defaultHeaders {
		httpReq.Header.Set(key, value)
	}

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Set(key, value)
		}
	}

	if httpReq.Header.Get("Content-Type") == "" && (req.Body != nil || req.RawBody != nil) {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("getting authentication token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	httpReq.Header.Set("User-Agent", constants.UserAgent)

	return nil
}

// buildURL joins the base URL, path, and query. Extra params apply to every
// request; per-request values win on conflict.
func (c *Client) buildURL(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	fullURL := c.baseURL + path

	merged := url.Values{}
	for key, value := range c.extraParams {
		merged.Set(key, value)
	}

	for key, values := range query {
		merged[key] = values
	}

	if len(merged) > 0 {
		fullURL += "?" + merged.Encode()
	}

	return fullURL
}

func flattenQuery(query url.Values) map[string]string {
	if len(query) == 0 {
		return nil
	}

	flat := make(map[string]string, len(query))
	for key, values := range query {
		flat[key] = strings.Join(values, ",")
	}

	return flat
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// PostRaw issues a POST request with a verbatim body and extra headers.
// Used for storage uploads where the payload is not JSON.
func (c *Client) PostRaw(ctx context.Context, path string, body io.Reader, headers http.Header) (*Response, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading upload body: %w", err)
	}

	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, RawBody: raw, Headers: headers})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
