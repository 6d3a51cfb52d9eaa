package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// StringsClient implements traduki.StringsClient.
type StringsClient struct {
	httpClient *http.Client
}

// NewStringsClient creates a new source strings client.
func NewStringsClient(httpClient *http.Client) *StringsClient {
	return &StringsClient{
		httpClient: httpClient,
	}
}

// List implements traduki.StringsClient.List.
func (c *StringsClient) List(ctx context.Context, projectID int64, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.SourceString], error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/strings", projectID)

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing strings: %w", err)
	}

	var list traduki.ListResponse[traduki.SourceString]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing strings list: %w", err)
	}

	return &list, nil
}

// ListAll implements traduki.StringsClient.ListAll by walking every page.
func (c *StringsClient) ListAll(ctx context.Context, projectID int64, opts *traduki.ListOptions) ([]traduki.SourceString, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	fetch := func(ctx context.Context, pageOpts *traduki.ListOptions) (*traduki.ListResponse[traduki.SourceString], error) {
		return c.List(ctx, projectID, pageOpts)
	}

	return traduki.NewPaginationIterator(ctx, fetch, withDefaultLimit(c.httpClient, opts)).All()
}

// Get implements traduki.StringsClient.Get.
func (c *StringsClient) Get(ctx context.Context, projectID, stringID int64) (*traduki.SourceString, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/strings/%d", projectID, stringID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting string: %w", err)
	}

	var sourceString traduki.SourceString

	err = json.Unmarshal(resp.Body, &sourceString)
	if err != nil {
		return nil, fmt.Errorf("parsing string: %w", err)
	}

	return &sourceString, nil
}

// Add implements traduki.StringsClient.Add.
func (c *StringsClient) Add(ctx context.Context, projectID int64, request *traduki.StringCreateRequest) (*traduki.SourceString, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/strings", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating string: %w", err)
	}

	var sourceString traduki.SourceString

	err = json.Unmarshal(resp.Body, &sourceString)
	if err != nil {
		return nil, fmt.Errorf("parsing string: %w", err)
	}

	return &sourceString, nil
}

// Edit implements traduki.StringsClient.Edit.
func (c *StringsClient) Edit(ctx context.Context, projectID, stringID int64, ops []traduki.PatchOperation) (*traduki.SourceString, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/strings/%d", projectID, stringID)

	resp, err := c.httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("updating string: %w", err)
	}

	var sourceString traduki.SourceString

	err = json.Unmarshal(resp.Body, &sourceString)
	if err != nil {
		return nil, fmt.Errorf("parsing string: %w", err)
	}

	return &sourceString, nil
}

// BatchEdit implements traduki.StringsClient.BatchEdit. Each patch path
// addresses a string by identifier, e.g. /2814/text.
func (c *StringsClient) BatchEdit(ctx context.Context, projectID int64, ops []traduki.PatchOperation) ([]traduki.SourceString, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/strings", projectID)

	resp, err := c.httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("batch updating strings: %w", err)
	}

	var list traduki.ListResponse[traduki.SourceString]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing strings list: %w", err)
	}

	return list.Data, nil
}

// Delete implements traduki.StringsClient.Delete.
func (c *StringsClient) Delete(ctx context.Context, projectID, stringID int64) error {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/strings/%d", projectID, stringID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting string: %w", err)
	}

	return nil
}
