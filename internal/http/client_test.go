package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traduki-io/traduki/pkg/traduki"
)

func TestClient_SendsAuthAndUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "traduki-go/1.2.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "/api/v2/projects", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, traduki.StaticToken("secret-token"))

	resp, err := client.Get(context.Background(), "/api/v2/projects", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_UserAgentNotOverridable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "traduki-go/1.2.0", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil,
		WithDefaultHeaders(map[string]string{"User-Agent": "imposter/9.9"}))

	headers := http.Header{}
	headers.Set("User-Agent", "also-imposter/1.0")

	_, err := client.Do(context.Background(), &Request{
		Method:  http.MethodGet,
		Path:    "/api/v2/projects",
		Headers: headers,
	})
	require.NoError(t, err)
}

func TestClient_QueryMerging(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "override", r.URL.Query().Get("shared"))
		assert.Equal(t, "always", r.URL.Query().Get("global"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, WithExtraParams(map[string]string{
		"global": "always",
		"shared": "default",
	}))

	query := url.Values{}
	query.Set("limit", "25")
	query.Set("shared", "override")

	_, err := client.Get(context.Background(), "/api/v2/projects", query)
	require.NoError(t, err)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, WithRetryConfig(3, time.Millisecond))

	resp, err := client.Get(context.Background(), "/api/v2/projects", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestClient_NoRetryOnClientErrors(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, WithRetryConfig(3, time.Millisecond))

	_, err := client.Get(context.Background(), "/api/v2/projects/999", nil)
	require.Error(t, err)
	assert.True(t, traduki.IsNotFound(err))
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClient_NoRetryOnThrottling(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, WithRetryConfig(3, time.Millisecond))

	_, err := client.Get(context.Background(), "/api/v2/projects", nil)
	require.Error(t, err)
	assert.True(t, traduki.IsThrottled(err))
	assert.Equal(t, int32(1), attempts.Load(), "429 is never retried automatically")
}

func TestClient_NoRetryFlag(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, WithRetryConfig(3, time.Millisecond))

	_, err := client.Do(context.Background(), &Request{
		Method:  http.MethodGet,
		Path:    "/api/v2/projects",
		NoRetry: true,
	})
	require.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClient_ErrorClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Request-Id", "req-42")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{
			"error": {"message": "identifier is taken"},
			"occurredAt": "2024-03-15T10:30:00Z"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	resp, err := client.Post(context.Background(), "/api/v2/projects", map[string]any{"name": "x"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	apiErr := &traduki.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, traduki.KindValidation, apiErr.Kind)
	assert.Equal(t, "req-42", apiErr.RequestID)
	assert.Equal(t, "identifier is taken", apiErr.Detail)

	// Error context went through the codec, so timestamps are typed.
	_, isTimestamp := apiErr.Context["occurredAt"].(traduki.Timestamp)
	assert.True(t, isTimestamp)
}

func TestClient_RequestIDFallbackHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-ID", "proxy-7")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"message": "gone"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/api/v2/projects/1", nil)
	require.Error(t, err)

	apiErr := &traduki.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "proxy-7", apiErr.RequestID)
}

func TestClient_ErrorDetailFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, WithRetryConfig(0, time.Millisecond))

	_, err := client.Get(context.Background(), "/api/v2/projects", nil)
	require.Error(t, err)

	apiErr := &traduki.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Bad Gateway", apiErr.Detail)
	assert.True(t, apiErr.Retryable)
}

func TestClient_TransportErrorIsRetryable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", nil, WithRetryConfig(0, time.Millisecond))

	_, err := client.Get(context.Background(), "/api/v2/projects", nil)
	require.Error(t, err)

	apiErr := &traduki.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.HTTPStatus)
	assert.True(t, apiErr.Retryable)
}

func TestClient_EncodesTimestampsInBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"2024-03-15T10:30:00+00:00"`)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Post(context.Background(), "/api/v2/projects/1/tasks", map[string]any{
		"deadline": time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func TestClient_GetCaching(t *testing.T) {
	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data": [{"id": 1}]}`))
	}))
	defer server.Close()

	manager := traduki.NewCacheManager(traduki.NewMemoryCache(10), nil)
	client := NewClient(server.URL, nil, WithCache(manager))

	ctx := context.Background()

	resp1, err := client.Get(ctx, "/api/v2/projects", nil)
	require.NoError(t, err)

	resp2, err := client.Get(ctx, "/api/v2/projects", nil)
	require.NoError(t, err)

	assert.Equal(t, resp1.Body, resp2.Body)
	assert.Equal(t, int32(1), hits.Load(), "second read is served from cache")
}

func TestClient_MutationInvalidatesCache(t *testing.T) {
	var gets atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets.Add(1)
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	manager := traduki.NewCacheManager(traduki.NewMemoryCache(10), nil)
	client := NewClient(server.URL, nil, WithCache(manager))

	ctx := context.Background()

	_, err := client.Get(ctx, "/api/v2/projects", nil)
	require.NoError(t, err)

	_, err = client.Post(ctx, "/api/v2/projects", map[string]any{"name": "new"})
	require.NoError(t, err)

	_, err = client.Get(ctx, "/api/v2/projects", nil)
	require.NoError(t, err)

	assert.Equal(t, int32(2), gets.Load(), "mutation drops the cached page")
}

func TestClient_RequestInterceptorBlocksCall(t *testing.T) {
	called := false

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	chain := traduki.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *traduki.Request) error {
		return traduki.ErrConfigRequired
	})

	client := NewClient(server.URL, nil, WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/api/v2/projects", nil)
	require.Error(t, err)
	assert.False(t, called)
}

func TestClient_BuildURL(t *testing.T) {
	client := NewClient("https://api.traduki.com", nil)

	query := url.Values{}
	query.Set("limit", "10")

	full := client.buildURL("api/v2/projects", query)
	assert.Equal(t, "https://api.traduki.com/api/v2/projects?limit=10", full)

	full = client.buildURL("/api/v2/projects", nil)
	assert.Equal(t, "https://api.traduki.com/api/v2/projects", full)
}

func TestClient_PostRaw(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "raw bytes", string(body))
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
		assert.Equal(t, "app.json", r.Header.Get("Traduki-API-FileName"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data": {"id": 9}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	headers := http.Header{}
	headers.Set("Content-Type", "application/octet-stream")
	headers.Set("Traduki-API-FileName", "app.json")

	resp, err := client.PostRaw(context.Background(), "/api/v2/storages",
		strings.NewReader("raw bytes"), headers)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
