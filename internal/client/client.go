// Package client composes the resource clients behind the public Client
// interface and dispatches between the public and enterprise deployments.
package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/traduki-io/traduki/internal/constants"
	internalhttp "github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

const (
	deploymentPublic     = "public"
	deploymentEnterprise = "enterprise"
)

// Client implements traduki.Client. Resource clients and the shared
// requester are created lazily and memoized; construction performs no I/O.
type Client struct {
	config     *traduki.Config
	baseURL    string
	enterprise bool

	httpOnce   sync.Once
	httpClient *internalhttp.Client

	mu sync.Mutex

	projects            traduki.ProjectsClient
	sourceFiles         traduki.SourceFilesClient
	strings             traduki.StringsClient
	translations        traduki.TranslationsClient
	stringComments      traduki.StringCommentsClient
	labels              traduki.LabelsClient
	screenshots         traduki.ScreenshotsClient
	tasks               traduki.TasksClient
	users               traduki.UsersClient
	storages            traduki.StoragesClient
	bundles             traduki.BundlesClient
	distributions       traduki.DistributionsClient
	glossaries          traduki.GlossariesClient
	translationMemories traduki.TranslationMemoriesClient
	webhooks            traduki.WebhooksClient
	reports             traduki.ReportsClient
	machineTranslations traduki.MachineTranslationsClient
	billing             traduki.BillingClient
	groups              traduki.GroupsClient
	teams               traduki.TeamsClient
}

// New creates a Client from validated configuration.
func New(config *traduki.Config) (*Client, error) {
	if config == nil {
		return nil, traduki.ErrConfigRequired
	}

	protocol := config.Protocol
	if protocol == "" {
		protocol = constants.DefaultProtocol
	}

	host := config.BaseURL
	if host == "" {
		host = constants.DefaultBaseURL
	}

	// The tenant always prefixes the host: {protocol}://{org}.{host}.
	if config.Organization != "" {
		host = config.Organization + "." + host
	}

	if config.Cache != nil {
		if err := config.Cache.Validate(); err != nil {
			return nil, fmt.Errorf("validating cache config: %w", err)
		}
	}

	return &Client{
		config:     config,
		baseURL:    protocol + "://" + host,
		enterprise: config.Organization != "",
	}, nil
}

// requester materializes the shared HTTP client on first use.
func (c *Client) requester() *internalhttp.Client {
	c.httpOnce.Do(func() {
		c.httpClient = c.buildRequester()
	})

	return c.httpClient
}

// deployment names the active deployment variant.
func (c *Client) deployment() string {
	if c.enterprise {
		return deploymentEnterprise
	}

	return deploymentPublic
}

// buildRequester assembles the shared HTTP client from configuration.
func (c *Client) buildRequester() *internalhttp.Client {
	opts := []internalhttp.Option{}

	if c.config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(c.config.Logger))
	}

	if c.config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if c.config.Timeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(c.config.Timeout))
	}

	if c.config.MaxRetries > 0 || c.config.RetryDelay > 0 {
		maxRetries := c.config.MaxRetries
		if maxRetries <= 0 {
			maxRetries = constants.DefaultRetryMax
		}

		delay := c.config.RetryDelay
		if delay <= 0 {
			delay = constants.DefaultRetryDelay
		}

		opts = append(opts, internalhttp.WithRetryConfig(maxRetries, delay))
	}

	if len(c.config.Headers) > 0 {
		opts = append(opts, internalhttp.WithDefaultHeaders(c.config.Headers))
	}

	if len(c.config.ExtraParams) > 0 {
		opts = append(opts, internalhttp.WithExtraParams(c.config.ExtraParams))
	}

	if c.config.Interceptors != nil {
		opts = append(opts, internalhttp.WithInterceptors(c.config.Interceptors))
	}

	if c.config.ProjectID > 0 {
		opts = append(opts, internalhttp.WithDefaultProjectID(c.config.ProjectID))
	}

	if c.config.PageSize > 0 {
		opts = append(opts, internalhttp.WithDefaultPageSize(c.config.PageSize))
	}

	if c.config.Cache != nil {
		// The config was validated at construction, and backends connect on
		// first use, so building the cache here cannot fail.
		cache, err := traduki.NewCacheFromConfig(c.config.Cache)
		if err == nil {
			opts = append(opts, internalhttp.WithCache(traduki.NewCacheManager(cache, nil)))
		}
	}

	tokens := c.config.TokenProvider
	if tokens == nil && c.config.Token != "" {
		tokens = traduki.StaticToken(c.config.Token)
	}

	return internalhttp.NewClient(c.baseURL, tokens, opts...)
}

// URL returns the API base URL.
func (c *Client) URL() string {
	return c.baseURL
}

// Projects returns the projects client.
func (c *Client) Projects() traduki.ProjectsClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.projects == nil {
		c.projects = NewProjectsClient(c.requester())
	}

	return c.projects
}

// SourceFiles returns the source files client.
func (c *Client) SourceFiles() traduki.SourceFilesClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sourceFiles == nil {
		c.sourceFiles = NewSourceFilesClient(c.requester())
	}

	return c.sourceFiles
}

// Strings returns the source strings client.
func (c *Client) Strings() traduki.StringsClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.strings == nil {
		c.strings = NewStringsClient(c.requester())
	}

	return c.strings
}

// Translations returns the translations client.
func (c *Client) Translations() traduki.TranslationsClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.translations == nil {
		c.translations = NewTranslationsClient(c.requester())
	}

	return c.translations
}

// StringComments returns the string comments client.
func (c *Client) StringComments() traduki.StringCommentsClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stringComments == nil {
		c.stringComments = NewStringCommentsClient(c.requester())
	}

	return c.stringComments
}

// Labels returns the labels client.
func (c *Client) Labels() traduki.LabelsClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.labels == nil {
		c.labels = NewLabelsClient(c.requester())
	}

	return c.labels
}

// Screenshots returns the screenshots client.
func (c *Client) Screenshots() traduki.ScreenshotsClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screenshots == nil {
		c.screenshots = NewScreenshotsClient(c.requester())
	}

	return c.screenshots
}

// Tasks returns the tasks client for the active deployment.
func (c *Client) Tasks() traduki.TasksClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tasks == nil {
		if c.enterprise {
			c.tasks = NewEnterpriseTasksClient(c.requester())
		} else {
			c.tasks = NewTasksClient(c.requester())
		}
	}

	return c.tasks
}

// Users returns the users client for the active deployment.
func (c *Client) Users() traduki.UsersClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.users == nil {
		if c.enterprise {
			c.users = NewEnterpriseUsersClient(c.requester())
		} else {
			c.users = NewUsersClient(c.requester())
		}
	}

	return c.users
}

// Storages returns the storages client.
func (c *Client) Storages() traduki.StoragesClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.storages == nil {
		c.storages = NewStoragesClient(c.requester())
	}

	return c.storages
}

// Bundles returns the bundles client.
func (c *Client) Bundles() traduki.BundlesClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.bundles == nil {
		c.bundles = NewBundlesClient(c.requester())
	}

	return c.bundles
}

// Distributions returns the distributions client.
func (c *Client) Distributions() traduki.DistributionsClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.distributions == nil {
		c.distributions = NewDistributionsClient(c.requester())
	}

	return c.distributions
}

// Glossaries returns the glossaries client.
func (c *Client) Glossaries() traduki.GlossariesClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.glossaries == nil {
		c.glossaries = NewGlossariesClient(c.requester())
	}

	return c.glossaries
}

// TranslationMemories returns the translation memories client.
func (c *Client) TranslationMemories() traduki.TranslationMemoriesClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.translationMemories == nil {
		c.translationMemories = NewTranslationMemoriesClient(c.requester())
	}

	return c.translationMemories
}

// Webhooks returns the webhooks client.
func (c *Client) Webhooks() traduki.WebhooksClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.webhooks == nil {
		c.webhooks = NewWebhooksClient(c.requester())
	}

	return c.webhooks
}

// MachineTranslations returns the machine translations client.
func (c *Client) MachineTranslations() traduki.MachineTranslationsClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.machineTranslations == nil {
		c.machineTranslations = NewMachineTranslationsClient(c.requester())
	}

	return c.machineTranslations
}

// Reports returns the reports client for the active deployment.
func (c *Client) Reports() traduki.ReportsClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.reports == nil {
		if c.enterprise {
			c.reports = NewEnterpriseReportsClient(c.requester())
		} else {
			c.reports = NewReportsClient(c.requester())
		}
	}

	return c.reports
}

// Billing returns the billing client. Enterprise deployments have no
// billing API; every call fails with PermissionDenied before network I/O.
func (c *Client) Billing() traduki.BillingClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.billing == nil {
		if c.enterprise {
			c.billing = &unavailableBillingClient{deployment: c.deployment()}
		} else {
			c.billing = NewBillingClient(c.requester())
		}
	}

	return c.billing
}

// Groups returns the groups client. Groups exist only on enterprise.
func (c *Client) Groups() traduki.GroupsClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.groups == nil {
		if c.enterprise {
			c.groups = NewGroupsClient(c.requester())
		} else {
			c.groups = &unavailableGroupsClient{deployment: c.deployment()}
		}
	}

	return c.groups
}

// Teams returns the teams client. Teams exist only on enterprise.
func (c *Client) Teams() traduki.TeamsClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.teams == nil {
		if c.enterprise {
			c.teams = NewTeamsClient(c.requester())
		} else {
			c.teams = &unavailableTeamsClient{deployment: c.deployment()}
		}
	}

	return c.teams
}

// GraphQL executes a GraphQL query against the platform endpoint and returns
// the decoded response with timestamp strings promoted to typed values.
func (c *Client) GraphQL(ctx context.Context, query string, variables map[string]any) (any, error) {
	body := map[string]any{"query": query}
	if len(variables) > 0 {
		body["variables"] = variables
	}

	resp, err := c.requester().Post(ctx, "/"+constants.GraphQLPath, body)
	if err != nil {
		return nil, fmt.Errorf("executing GraphQL query: %w", err)
	}

	result, err := traduki.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing GraphQL response: %w", err)
	}

	return result, nil
}
