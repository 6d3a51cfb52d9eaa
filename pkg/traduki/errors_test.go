package traduki_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/traduki-io/traduki/pkg/traduki"
)

func TestKindForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   traduki.ErrorKind
	}{
		{http.StatusBadRequest, traduki.KindValidation},
		{http.StatusUnauthorized, traduki.KindAuthenticationFailed},
		{http.StatusForbidden, traduki.KindPermissionDenied},
		{http.StatusNotFound, traduki.KindNotFound},
		{http.StatusMethodNotAllowed, traduki.KindMethodNotAllowed},
		{http.StatusTooManyRequests, traduki.KindThrottled},
		{http.StatusConflict, traduki.KindGeneric},
		{http.StatusInternalServerError, traduki.KindGeneric},
		{http.StatusBadGateway, traduki.KindGeneric},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, traduki.KindForStatus(tt.status), "status %d", tt.status)
	}
}

func TestRetryableStatus(t *testing.T) {
	assert.True(t, traduki.RetryableStatus(0), "transport failures are retryable")
	assert.True(t, traduki.RetryableStatus(http.StatusInternalServerError))
	assert.True(t, traduki.RetryableStatus(http.StatusServiceUnavailable))
	assert.False(t, traduki.RetryableStatus(http.StatusTooManyRequests))
	assert.False(t, traduki.RetryableStatus(http.StatusBadRequest))
	assert.False(t, traduki.RetryableStatus(http.StatusNotFound))
}

func TestAPIError_Message(t *testing.T) {
	err := traduki.NewAPIError(http.StatusNotFound, "req-123", "Project Not Found", map[string]any{
		"code": float64(404),
	})

	msg := err.Error()
	assert.Contains(t, msg, "http_status=404")
	assert.Contains(t, msg, "request_id=req-123")
	assert.Contains(t, msg, "detail=Project Not Found")
	assert.Contains(t, msg, "code: 404")
}

func TestAPIError_TransportMessage(t *testing.T) {
	err := traduki.NewTransportError("connection refused")

	msg := err.Error()
	assert.Contains(t, msg, "http_status=none")
	assert.Contains(t, msg, "detail=connection refused")
	assert.Contains(t, msg, "context={}")
	assert.True(t, err.Retryable)
}

func TestAPIError_ContextKeysSorted(t *testing.T) {
	err := traduki.NewAPIError(http.StatusBadRequest, "", "bad", map[string]any{
		"zeta":  1,
		"alpha": 2,
	})

	msg := err.Error()
	assert.Contains(t, msg, "context={alpha: 2, zeta: 1}")
}

func TestErrorPredicates(t *testing.T) {
	notFound := traduki.NewAPIError(http.StatusNotFound, "", "", nil)
	assert.True(t, traduki.IsNotFound(notFound))
	assert.False(t, traduki.IsValidation(notFound))

	auth := traduki.NewAPIError(http.StatusUnauthorized, "", "", nil)
	assert.True(t, traduki.IsAuthenticationFailed(auth))

	denied := traduki.NewAPIError(http.StatusForbidden, "", "", nil)
	assert.True(t, traduki.IsPermissionDenied(denied))

	throttled := traduki.NewAPIError(http.StatusTooManyRequests, "", "", nil)
	assert.True(t, traduki.IsThrottled(throttled))

	// Predicates see through wrapping.
	wrapped := fmt.Errorf("getting project: %w", notFound)
	assert.True(t, traduki.IsNotFound(wrapped))

	// Non-API errors never match.
	assert.False(t, traduki.IsNotFound(fmt.Errorf("plain error")))
}

func TestShouldRetry(t *testing.T) {
	assert.True(t, traduki.ShouldRetry(traduki.NewAPIError(http.StatusBadGateway, "", "", nil)))
	assert.False(t, traduki.ShouldRetry(traduki.NewAPIError(http.StatusTooManyRequests, "", "", nil)))
	assert.True(t, traduki.ShouldRetry(traduki.NewTransportError("timeout")))
	assert.False(t, traduki.ShouldRetry(fmt.Errorf("plain error")))
}

func TestNewResourceUnavailableError(t *testing.T) {
	err := traduki.NewResourceUnavailableError("teams", "public")

	assert.True(t, traduki.IsPermissionDenied(err))
	assert.Equal(t, 0, err.HTTPStatus)
	assert.Contains(t, err.Detail, `"teams"`)
	assert.Contains(t, err.Detail, "public deployment")
}
