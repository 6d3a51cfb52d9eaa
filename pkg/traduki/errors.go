package traduki

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrorKind identifies a failure class in the closed taxonomy.
type ErrorKind int

const (
	// KindGeneric covers any non-2xx status without a dedicated kind.
	KindGeneric ErrorKind = iota

	// KindParsing marks a response body that is not well-formed JSON.
	KindParsing

	// KindAuthenticationFailed maps status 401.
	KindAuthenticationFailed

	// KindPermissionDenied maps status 403.
	KindPermissionDenied

	// KindNotFound maps status 404.
	KindNotFound

	// KindMethodNotAllowed maps status 405.
	KindMethodNotAllowed

	// KindValidation maps status 400.
	KindValidation

	// KindThrottled maps status 429.
	KindThrottled
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindParsing:
		return "parsing_error"
	case KindAuthenticationFailed:
		return "authentication_failed"
	case KindPermissionDenied:
		return "permission_denied"
	case KindNotFound:
		return "not_found"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindValidation:
		return "validation_error"
	case KindThrottled:
		return "throttled"
	case KindGeneric:
		return "api_exception"
	default:
		return "api_exception"
	}
}

// KindForStatus returns the unique error kind for an HTTP status code.
func KindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusUnauthorized:
		return KindAuthenticationFailed
	case http.StatusForbidden:
		return KindPermissionDenied
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusMethodNotAllowed:
		return KindMethodNotAllowed
	case http.StatusTooManyRequests:
		return KindThrottled
	default:
		return KindGeneric
	}
}

// RetryableStatus reports the default retry advisability for a status code:
// true for 5xx and for transport-level failures (status 0), false otherwise.
func RetryableStatus(status int) bool {
	return status == 0 || status >= http.StatusInternalServerError
}

// APIError is the structured failure model raised for every non-2xx response
// and every parsing failure. HTTPStatus is 0 for transport-level errors.
type APIError struct {
	Kind       ErrorKind
	HTTPStatus int
	RequestID  string
	Detail     string
	Context    map[string]any
	Retryable  bool
}

// NewAPIError builds an error for a server response, with the kind and the
// default retry advisability derived from the status code.
func NewAPIError(status int, requestID, detail string, context map[string]any) *APIError {
	return &APIError{
		Kind:       KindForStatus(status),
		HTTPStatus: status,
		RequestID:  requestID,
		Detail:     detail,
		Context:    context,
		Retryable:  RetryableStatus(status),
	}
}

// NewTransportError builds a retryable error for a failure with no HTTP
// status (connection refused, timeout, and similar).
func NewTransportError(detail string) *APIError {
	return &APIError{
		Kind:      KindGeneric,
		Detail:    detail,
		Retryable: true,
	}
}

// Error implements the error interface. The bearer token never appears here.
func (e *APIError) Error() string {
	var b strings.Builder

	if e.HTTPStatus > 0 {
		fmt.Fprintf(&b, "http_status=%d", e.HTTPStatus)
	} else {
		b.WriteString("http_status=none")
	}

	fmt.Fprintf(&b, ", request_id=%s", e.RequestID)
	fmt.Fprintf(&b, ", detail=%s", e.Detail)
	fmt.Fprintf(&b, ", context=%s", formatContext(e.Context))

	return b.String()
}

func formatContext(context map[string]any) string {
	if len(context) == 0 {
		return "{}"
	}

	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var b strings.Builder

	b.WriteString("{")

	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%s: %v", k, context[k])
	}

	b.WriteString("}")

	return b.String()
}

func kindOf(err error) (ErrorKind, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}

	return KindGeneric, false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	kind, ok := kindOf(err)

	return ok && kind == KindNotFound
}

// IsAuthenticationFailed checks if the error is an authentication error.
func IsAuthenticationFailed(err error) bool {
	kind, ok := kindOf(err)

	return ok && kind == KindAuthenticationFailed
}

// IsPermissionDenied checks if the error is a permission error.
func IsPermissionDenied(err error) bool {
	kind, ok := kindOf(err)

	return ok && kind == KindPermissionDenied
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	kind, ok := kindOf(err)

	return ok && kind == KindValidation
}

// IsThrottled checks if the error is a rate-limit error.
func IsThrottled(err error) bool {
	kind, ok := kindOf(err)

	return ok && kind == KindThrottled
}

// IsParsing checks if the error is a parsing error.
func IsParsing(err error) bool {
	kind, ok := kindOf(err)

	return ok && kind == KindParsing
}

// ShouldRetry reports the final retry advisability of an error. Transport
// failures that never reached the taxonomy are considered retryable.
func ShouldRetry(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Retryable
	}

	return false
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrInvalidProtocol       = errors.New("protocol must be http or https")
	ErrBaseURLRequired       = errors.New("base URL is required")
	ErrProjectIDRequired     = errors.New("project ID is required")
	ErrNoMoreItems           = errors.New("no more items")
	ErrInvalidPageSize       = errors.New("page size out of range")
	ErrNegativeOffset        = errors.New("offset must be non-negative")
	ErrCacheKeyNotFound      = errors.New("key not found in cache")
	ErrCacheEntryExpired     = errors.New("cache entry expired")
	ErrCacheValueTooLarge    = errors.New("cache value exceeds size limit")
	ErrCacheDisabled         = errors.New("cache disabled")
	ErrNATSConfigRequired    = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType  = errors.New("unsupported cache type")
	ErrWorkflowStepRequired  = errors.New("workflow steps require an enterprise deployment")
	ErrOperationFailed       = errors.New("operation failed")
	ErrOperationPollTimedOut = errors.New("operation poll timed out")
)

// NewResourceUnavailableError builds the PermissionDenied error raised when
// a resource is accessed on a deployment that does not expose it. No network
// I/O has happened when this is returned.
func NewResourceUnavailableError(resource, deployment string) *APIError {
	return &APIError{
		Kind:   KindPermissionDenied,
		Detail: fmt.Sprintf("resource %q is not available on the %s deployment", resource, deployment),
	}
}
