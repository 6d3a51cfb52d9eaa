package traduki_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traduki-io/traduki/pkg/traduki"
)

var errInterceptorBoom = errors.New("boom")

func TestInterceptorChain_RunsInOrder(t *testing.T) {
	chain := traduki.NewInterceptorChain()

	var order []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *traduki.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *traduki.Request) error {
		order = append(order, "second")

		return nil
	})

	req := &traduki.Request{Method: "GET", Path: "/api/v2/projects"}
	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), req))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	chain := traduki.NewInterceptorChain()

	reached := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *traduki.Request) error {
		return errInterceptorBoom
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *traduki.Request) error {
		reached = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &traduki.Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errInterceptorBoom)
	assert.Contains(t, err.Error(), "request interceptor failed")
	assert.False(t, reached)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	chain := traduki.NewInterceptorChain()

	var seenStatus int

	chain.AddResponseInterceptor(func(ctx context.Context, req *traduki.Request, resp *traduki.Response) error {
		seenStatus = resp.StatusCode

		return nil
	})

	err := chain.ExecuteResponseInterceptors(context.Background(),
		&traduki.Request{Method: "GET"}, &traduki.Response{StatusCode: 200})
	require.NoError(t, err)
	assert.Equal(t, 200, seenStatus)
}

func TestHeaderInterceptor(t *testing.T) {
	interceptor := traduki.HeaderInterceptor(map[string]string{
		"X-Trace-ID": "abc-123",
	})

	req := &traduki.Request{Method: "GET", Path: "/api/v2/projects"}
	require.NoError(t, interceptor(context.Background(), req))
	assert.Equal(t, "abc-123", req.Headers.Get("X-Trace-ID"))
}

func TestRateLimitInterceptor_AllowsBurst(t *testing.T) {
	interceptor := traduki.RateLimitInterceptor(5)

	for i := 0; i < 5; i++ {
		require.NoError(t, interceptor(context.Background(), &traduki.Request{}))
	}
}

func TestRateLimitInterceptor_HonorsCancellation(t *testing.T) {
	interceptor := traduki.RateLimitInterceptor(1)

	// Drain the single token.
	require.NoError(t, interceptor(context.Background(), &traduki.Request{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := interceptor(ctx, &traduki.Request{})
	assert.ErrorIs(t, err, context.Canceled)
}
