package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// ScreenshotsClient implements traduki.ScreenshotsClient.
type ScreenshotsClient struct {
	httpClient *http.Client
}

// NewScreenshotsClient creates a new screenshots client.
func NewScreenshotsClient(httpClient *http.Client) *ScreenshotsClient {
	return &ScreenshotsClient{
		httpClient: httpClient,
	}
}

// List implements traduki.ScreenshotsClient.List.
func (c *ScreenshotsClient) List(ctx context.Context, projectID int64, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Screenshot], error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/screenshots", projectID)

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing screenshots: %w", err)
	}

	var list traduki.ListResponse[traduki.Screenshot]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing screenshots list: %w", err)
	}

	return &list, nil
}

// Get implements traduki.ScreenshotsClient.Get.
func (c *ScreenshotsClient) Get(ctx context.Context, projectID, screenshotID int64) (*traduki.Screenshot, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/screenshots/%d", projectID, screenshotID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting screenshot: %w", err)
	}

	var screenshot traduki.Screenshot

	err = json.Unmarshal(resp.Body, &screenshot)
	if err != nil {
		return nil, fmt.Errorf("parsing screenshot: %w", err)
	}

	return &screenshot, nil
}

// Add implements traduki.ScreenshotsClient.Add.
func (c *ScreenshotsClient) Add(ctx context.Context, projectID int64, request *traduki.ScreenshotCreateRequest) (*traduki.Screenshot, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/screenshots", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating screenshot: %w", err)
	}

	var screenshot traduki.Screenshot

	err = json.Unmarshal(resp.Body, &screenshot)
	if err != nil {
		return nil, fmt.Errorf("parsing screenshot: %w", err)
	}

	return &screenshot, nil
}

// Edit implements traduki.ScreenshotsClient.Edit.
func (c *ScreenshotsClient) Edit(ctx context.Context, projectID, screenshotID int64, ops []traduki.PatchOperation) (*traduki.Screenshot, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/screenshots/%d", projectID, screenshotID)

	resp, err := c.httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("updating screenshot: %w", err)
	}

	var screenshot traduki.Screenshot

	err = json.Unmarshal(resp.Body, &screenshot)
	if err != nil {
		return nil, fmt.Errorf("parsing screenshot: %w", err)
	}

	return &screenshot, nil
}

// Delete implements traduki.ScreenshotsClient.Delete.
func (c *ScreenshotsClient) Delete(ctx context.Context, projectID, screenshotID int64) error {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/screenshots/%d", projectID, screenshotID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting screenshot: %w", err)
	}

	return nil
}
