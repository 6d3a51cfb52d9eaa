package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// WebhooksClient implements traduki.WebhooksClient.
type WebhooksClient struct {
	httpClient *http.Client
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(httpClient *http.Client) *WebhooksClient {
	return &WebhooksClient{
		httpClient: httpClient,
	}
}

// List implements traduki.WebhooksClient.List.
func (c *WebhooksClient) List(ctx context.Context, projectID int64, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Webhook], error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/webhooks", projectID)

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	var list traduki.ListResponse[traduki.Webhook]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing webhooks list: %w", err)
	}

	return &list, nil
}

// Get implements traduki.WebhooksClient.Get.
func (c *WebhooksClient) Get(ctx context.Context, projectID, webhookID int64) (*traduki.Webhook, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/webhooks/%d", projectID, webhookID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting webhook: %w", err)
	}

	var webhook traduki.Webhook

	err = json.Unmarshal(resp.Body, &webhook)
	if err != nil {
		return nil, fmt.Errorf("parsing webhook: %w", err)
	}

	return &webhook, nil
}

// Add implements traduki.WebhooksClient.Add.
func (c *WebhooksClient) Add(ctx context.Context, projectID int64, request *traduki.WebhookCreateRequest) (*traduki.Webhook, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/webhooks", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}

	var webhook traduki.Webhook

	err = json.Unmarshal(resp.Body, &webhook)
	if err != nil {
		return nil, fmt.Errorf("parsing webhook: %w", err)
	}

	return &webhook, nil
}

// Edit implements traduki.WebhooksClient.Edit.
func (c *WebhooksClient) Edit(ctx context.Context, projectID, webhookID int64, ops []traduki.PatchOperation) (*traduki.Webhook, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/webhooks/%d", projectID, webhookID)

	resp, err := c.httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("updating webhook: %w", err)
	}

	var webhook traduki.Webhook

	err = json.Unmarshal(resp.Body, &webhook)
	if err != nil {
		return nil, fmt.Errorf("parsing webhook: %w", err)
	}

	return &webhook, nil
}

// Delete implements traduki.WebhooksClient.Delete.
func (c *WebhooksClient) Delete(ctx context.Context, projectID, webhookID int64) error {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/webhooks/%d", projectID, webhookID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting webhook: %w", err)
	}

	return nil
}
