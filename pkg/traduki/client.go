package traduki

import (
	"context"
	"time"
)

// Logger is the logging interface the SDK writes through. Implementations
// must never be handed the bearer token; the SDK does not log it.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// TokenProvider yields the bearer token for an outgoing request. It is
// consulted on every call, so implementations backed by a secret store
// re-resolve per request.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticToken is a TokenProvider for a fixed bearer token.
type StaticToken string

// GetToken implements TokenProvider.
func (t StaticToken) GetToken(_ context.Context) (string, error) {
	return string(t), nil
}

// Config is the process-wide client configuration. It is consumed at client
// construction and immutable for that client instance. Construction performs
// no I/O.
type Config struct {
	// Token is the bearer credential sent on every request.
	Token string

	// TokenProvider, when set, takes precedence over Token and is consulted
	// per request.
	TokenProvider TokenProvider

	// BaseURL is the bare API host, no scheme, no trailing slash
	// (default "api.traduki.com").
	BaseURL string

	// Protocol is "http" or "https" (default "https").
	Protocol string

	// Organization is the tenant subdomain of an enterprise deployment.
	// Its presence switches URL composition to {org}.{BaseURL} and selects
	// the enterprise resource variant set.
	Organization string

	// Headers are merged into every outgoing request. Authorization and
	// User-Agent cannot be overridden here.
	Headers map[string]string

	// Timeout is the per-call HTTP timeout.
	Timeout time.Duration

	// RetryDelay is the fixed delay between retry attempts. It is applied
	// only between retries, never before the first attempt.
	RetryDelay time.Duration

	// MaxRetries is the per-call retry budget for transport errors and 5xx.
	MaxRetries int

	// ExtraParams is a free-form map of query parameters merged into every
	// outgoing request (caller-provided values win).
	ExtraParams map[string]string

	// PageSize is the default list page size, in [1, MaxPageSize].
	PageSize int

	// ProjectID is the default project for project-scoped resources; methods
	// taking a projectID of 0 fall back to it.
	ProjectID int64

	// Cache optionally caches GET responses.
	Cache *CacheConfig

	// Interceptors optionally hook every request and response.
	Interceptors *InterceptorChain

	// Debug enables verbose request logging through Logger.
	Debug bool

	// Logger is the structured logger used by the transport. Optional.
	Logger Logger
}

// ContentClients provides access to the translatable-content resources.
type ContentClients interface {
	Projects() ProjectsClient
	SourceFiles() SourceFilesClient
	Strings() StringsClient
	Translations() TranslationsClient
}

// CollaborationClients provides access to the review-workflow resources.
type CollaborationClients interface {
	StringComments() StringCommentsClient
	Labels() LabelsClient
	Screenshots() ScreenshotsClient
	Tasks() TasksClient
	Users() UsersClient
}

// DeliveryClients provides access to the packaging and delivery resources.
type DeliveryClients interface {
	Storages() StoragesClient
	Bundles() BundlesClient
	Distributions() DistributionsClient
}

// KnowledgeClients provides access to the linguistic-asset resources.
type KnowledgeClients interface {
	Glossaries() GlossariesClient
	TranslationMemories() TranslationMemoriesClient
}

// IntegrationClients provides access to the integration resources.
type IntegrationClients interface {
	Webhooks() WebhooksClient
	Reports() ReportsClient
	MachineTranslations() MachineTranslationsClient

	// Billing exists only on the public multi-tenant deployment.
	Billing() BillingClient
}

// EnterpriseClients provides access to resources that exist only on
// enterprise (single-tenant) deployments.
type EnterpriseClients interface {
	Groups() GroupsClient
	Teams() TeamsClient
}

// Client is the single entry point applications hold. Resource handles are
// created lazily and cached per client; repeated access returns the same
// handle. Accessing a resource outside its deployment yields a façade whose
// every method fails with a PermissionDenied error before any network I/O.
type Client interface {
	ContentClients
	CollaborationClients
	DeliveryClients
	KnowledgeClients
	IntegrationClients
	EnterpriseClients

	// GraphQL posts a query to the fixed graphql path and returns the
	// codec-decoded body.
	GraphQL(ctx context.Context, query string, variables map[string]any) (any, error)

	// URL is the effective base URL derived from the configuration:
	// {protocol}://[{organization}.]{baseURL}.
	URL() string
}
