package constants

import "time"

// Library identity.
const (
	// UserAgent is the fixed identifier sent on every outgoing request.
	// It is never overridable by callers.
	UserAgent = "traduki-go/1.2.0"

	// APIBasePath is the versioned path prefix for all REST endpoints.
	APIBasePath = "api/v2"

	// GraphQLPath is the fixed path for GraphQL queries.
	GraphQLPath = "graphql"
)

// Deployment defaults.
const (
	// DefaultBaseURL is the bare host of the public multi-tenant deployment.
	DefaultBaseURL = "api.traduki.com"

	// DefaultProtocol is the default HTTP scheme.
	DefaultProtocol = "https"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default per-request timeout.
	DefaultHTTPTimeout = 80 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries per call.
	DefaultRetryMax = 3

	// DefaultRetryDelay is the fixed delay between retry attempts.
	DefaultRetryDelay = 1 * time.Second
)

// Pagination limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 25

	// MaxPageSize is the largest page size the server accepts.
	MaxPageSize = 500
)

// Cache sizing.
const (
	// DefaultCacheSize is the default memory cache entry limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 5 * time.Minute

	// MaxCacheValueSize is the maximum size for cached values (1MB).
	MaxCacheValueSize = 1024 * 1024
)

// Operation polling.
const (
	// DefaultPollInterval is used when polling asynchronous operations.
	DefaultPollInterval = 2 * time.Second

	// DefaultPollTimeout bounds a full operation poll loop.
	DefaultPollTimeout = 5 * time.Minute
)

// File permissions for CLI configuration.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)
