package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// DistributionsClient implements traduki.DistributionsClient. Distributions
// are addressed by server-assigned hash rather than numeric identifier.
type DistributionsClient struct {
	httpClient *http.Client
}

// NewDistributionsClient creates a new distributions client.
func NewDistributionsClient(httpClient *http.Client) *DistributionsClient {
	return &DistributionsClient{
		httpClient: httpClient,
	}
}

// List implements traduki.DistributionsClient.List.
func (c *DistributionsClient) List(ctx context.Context, projectID int64, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Distribution], error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/distributions", projectID)

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing distributions: %w", err)
	}

	var list traduki.ListResponse[traduki.Distribution]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing distributions list: %w", err)
	}

	return &list, nil
}

// Get implements traduki.DistributionsClient.Get.
func (c *DistributionsClient) Get(ctx context.Context, projectID int64, hash string) (*traduki.Distribution, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/distributions/%s", projectID, hash)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting distribution: %w", err)
	}

	var distribution traduki.Distribution

	err = json.Unmarshal(resp.Body, &distribution)
	if err != nil {
		return nil, fmt.Errorf("parsing distribution: %w", err)
	}

	return &distribution, nil
}

// Add implements traduki.DistributionsClient.Add.
func (c *DistributionsClient) Add(ctx context.Context, projectID int64, request *traduki.DistributionCreateRequest) (*traduki.Distribution, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/distributions", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating distribution: %w", err)
	}

	var distribution traduki.Distribution

	err = json.Unmarshal(resp.Body, &distribution)
	if err != nil {
		return nil, fmt.Errorf("parsing distribution: %w", err)
	}

	return &distribution, nil
}

// Edit implements traduki.DistributionsClient.Edit.
func (c *DistributionsClient) Edit(ctx context.Context, projectID int64, hash string, ops []traduki.PatchOperation) (*traduki.Distribution, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/distributions/%s", projectID, hash)

	resp, err := c.httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("updating distribution: %w", err)
	}

	var distribution traduki.Distribution

	err = json.Unmarshal(resp.Body, &distribution)
	if err != nil {
		return nil, fmt.Errorf("parsing distribution: %w", err)
	}

	return &distribution, nil
}

// Delete implements traduki.DistributionsClient.Delete.
func (c *DistributionsClient) Delete(ctx context.Context, projectID int64, hash string) error {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/distributions/%s", projectID, hash)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting distribution: %w", err)
	}

	return nil
}

// Release implements traduki.DistributionsClient.Release.
func (c *DistributionsClient) Release(ctx context.Context, projectID int64, hash string) (*traduki.DistributionRelease, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/distributions/%s/release", projectID, hash)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("releasing distribution: %w", err)
	}

	var release traduki.DistributionRelease

	err = json.Unmarshal(resp.Body, &release)
	if err != nil {
		return nil, fmt.Errorf("parsing distribution release: %w", err)
	}

	return &release, nil
}

// GetRelease implements traduki.DistributionsClient.GetRelease.
func (c *DistributionsClient) GetRelease(ctx context.Context, projectID int64, hash string) (*traduki.DistributionRelease, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/distributions/%s/release", projectID, hash)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting distribution release: %w", err)
	}

	var release traduki.DistributionRelease

	err = json.Unmarshal(resp.Body, &release)
	if err != nil {
		return nil, fmt.Errorf("parsing distribution release: %w", err)
	}

	return &release, nil
}
