package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// BundlesClient implements traduki.BundlesClient.
type BundlesClient struct {
	httpClient *http.Client
}

// NewBundlesClient creates a new bundles client.
func NewBundlesClient(httpClient *http.Client) *BundlesClient {
	return &BundlesClient{
		httpClient: httpClient,
	}
}

// List implements traduki.BundlesClient.List.
func (c *BundlesClient) List(ctx context.Context, projectID int64, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Bundle], error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/bundles", projectID)

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing bundles: %w", err)
	}

	var list traduki.ListResponse[traduki.Bundle]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing bundles list: %w", err)
	}

	return &list, nil
}

// Get implements traduki.BundlesClient.Get.
func (c *BundlesClient) Get(ctx context.Context, projectID, bundleID int64) (*traduki.Bundle, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/bundles/%d", projectID, bundleID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting bundle: %w", err)
	}

	var bundle traduki.Bundle

	err = json.Unmarshal(resp.Body, &bundle)
	if err != nil {
		return nil, fmt.Errorf("parsing bundle: %w", err)
	}

	return &bundle, nil
}

// Add implements traduki.BundlesClient.Add.
func (c *BundlesClient) Add(ctx context.Context, projectID int64, request *traduki.BundleCreateRequest) (*traduki.Bundle, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/bundles", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating bundle: %w", err)
	}

	var bundle traduki.Bundle

	err = json.Unmarshal(resp.Body, &bundle)
	if err != nil {
		return nil, fmt.Errorf("parsing bundle: %w", err)
	}

	return &bundle, nil
}

// Edit implements traduki.BundlesClient.Edit.
func (c *BundlesClient) Edit(ctx context.Context, projectID, bundleID int64, ops []traduki.PatchOperation) (*traduki.Bundle, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/bundles/%d", projectID, bundleID)

	resp, err := c.httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("updating bundle: %w", err)
	}

	var bundle traduki.Bundle

	err = json.Unmarshal(resp.Body, &bundle)
	if err != nil {
		return nil, fmt.Errorf("parsing bundle: %w", err)
	}

	return &bundle, nil
}

// Delete implements traduki.BundlesClient.Delete.
func (c *BundlesClient) Delete(ctx context.Context, projectID, bundleID int64) error {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/bundles/%d", projectID, bundleID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting bundle: %w", err)
	}

	return nil
}

// Export implements traduki.BundlesClient.Export.
func (c *BundlesClient) Export(ctx context.Context, projectID, bundleID int64) (*traduki.Operation, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/bundles/%d/exports", projectID, bundleID)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("starting bundle export: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// ExportStatus implements traduki.BundlesClient.ExportStatus.
func (c *BundlesClient) ExportStatus(ctx context.Context, projectID, bundleID int64, exportID string) (*traduki.Operation, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/bundles/%d/exports/%s", projectID, bundleID, exportID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting bundle export status: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// DownloadExport implements traduki.BundlesClient.DownloadExport.
func (c *BundlesClient) DownloadExport(ctx context.Context, projectID, bundleID int64, exportID string) (*traduki.DownloadLink, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/bundles/%d/exports/%s/download", projectID, bundleID, exportID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("requesting bundle download: %w", err)
	}

	var link traduki.DownloadLink

	err = json.Unmarshal(resp.Body, &link)
	if err != nil {
		return nil, fmt.Errorf("parsing download link: %w", err)
	}

	return &link, nil
}
