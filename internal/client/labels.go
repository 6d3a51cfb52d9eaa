package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// LabelsClient implements traduki.LabelsClient.
type LabelsClient struct {
	httpClient *http.Client
}

// NewLabelsClient creates a new labels client.
func NewLabelsClient(httpClient *http.Client) *LabelsClient {
	return &LabelsClient{
		httpClient: httpClient,
	}
}

// List implements traduki.LabelsClient.List.
func (c *LabelsClient) List(ctx context.Context, projectID int64, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Label], error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/labels", projectID)

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}

	var list traduki.ListResponse[traduki.Label]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing labels list: %w", err)
	}

	return &list, nil
}

// Get implements traduki.LabelsClient.Get.
func (c *LabelsClient) Get(ctx context.Context, projectID, labelID int64) (*traduki.Label, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/labels/%d", projectID, labelID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting label: %w", err)
	}

	var label traduki.Label

	err = json.Unmarshal(resp.Body, &label)
	if err != nil {
		return nil, fmt.Errorf("parsing label: %w", err)
	}

	return &label, nil
}

// Add implements traduki.LabelsClient.Add.
func (c *LabelsClient) Add(ctx context.Context, projectID int64, request *traduki.LabelCreateRequest) (*traduki.Label, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/labels", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating label: %w", err)
	}

	var label traduki.Label

	err = json.Unmarshal(resp.Body, &label)
	if err != nil {
		return nil, fmt.Errorf("parsing label: %w", err)
	}

	return &label, nil
}

// Edit implements traduki.LabelsClient.Edit.
func (c *LabelsClient) Edit(ctx context.Context, projectID, labelID int64, ops []traduki.PatchOperation) (*traduki.Label, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/labels/%d", projectID, labelID)

	resp, err := c.httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("updating label: %w", err)
	}

	var label traduki.Label

	err = json.Unmarshal(resp.Body, &label)
	if err != nil {
		return nil, fmt.Errorf("parsing label: %w", err)
	}

	return &label, nil
}

// Delete implements traduki.LabelsClient.Delete.
func (c *LabelsClient) Delete(ctx context.Context, projectID, labelID int64) error {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/labels/%d", projectID, labelID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting label: %w", err)
	}

	return nil
}

type labelStringsRequest struct {
	StringIDs []int64 `json:"stringIds"`
}

// AssignToStrings implements traduki.LabelsClient.AssignToStrings.
func (c *LabelsClient) AssignToStrings(ctx context.Context, projectID, labelID int64, stringIDs []int64) ([]traduki.SourceString, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/labels/%d/strings", projectID, labelID)

	resp, err := c.httpClient.Post(ctx, path, &labelStringsRequest{StringIDs: stringIDs})
	if err != nil {
		return nil, fmt.Errorf("assigning label to strings: %w", err)
	}

	var list traduki.ListResponse[traduki.SourceString]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing strings list: %w", err)
	}

	return list.Data, nil
}

// UnassignFromStrings implements traduki.LabelsClient.UnassignFromStrings.
func (c *LabelsClient) UnassignFromStrings(ctx context.Context, projectID, labelID int64, stringIDs []int64) ([]traduki.SourceString, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/labels/%d/strings", projectID, labelID)

	query := url.Values{}
	query.Set("stringIds", traduki.JoinIDs(stringIDs))

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "DELETE",
		Path:   path,
		Query:  query,
	})
	if err != nil {
		return nil, fmt.Errorf("unassigning label from strings: %w", err)
	}

	var list traduki.ListResponse[traduki.SourceString]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing strings list: %w", err)
	}

	return list.Data, nil
}
