package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// GroupsClient implements traduki.GroupsClient for enterprise deployments.
type GroupsClient struct {
	httpClient *http.Client
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(httpClient *http.Client) *GroupsClient {
	return &GroupsClient{
		httpClient: httpClient,
	}
}

// List implements traduki.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Group], error) {
	path := "/api/v2/groups"

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	var list traduki.ListResponse[traduki.Group]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing groups list: %w", err)
	}

	return &list, nil
}

// Get implements traduki.GroupsClient.Get.
func (c *GroupsClient) Get(ctx context.Context, groupID int64) (*traduki.Group, error) {
	path := fmt.Sprintf("/api/v2/groups/%d", groupID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting group: %w", err)
	}

	var group traduki.Group

	err = json.Unmarshal(resp.Body, &group)
	if err != nil {
		return nil, fmt.Errorf("parsing group: %w", err)
	}

	return &group, nil
}

// Add implements traduki.GroupsClient.Add.
func (c *GroupsClient) Add(ctx context.Context, request *traduki.GroupCreateRequest) (*traduki.Group, error) {
	path := "/api/v2/groups"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating group: %w", err)
	}

	var group traduki.Group

	err = json.Unmarshal(resp.Body, &group)
	if err != nil {
		return nil, fmt.Errorf("parsing group: %w", err)
	}

	return &group, nil
}

// Edit implements traduki.GroupsClient.Edit.
func (c *GroupsClient) Edit(ctx context.Context, groupID int64, ops []traduki.PatchOperation) (*traduki.Group, error) {
	path := fmt.Sprintf("/api/v2/groups/%d", groupID)

	resp, err := c.httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("updating group: %w", err)
	}

	var group traduki.Group

	err = json.Unmarshal(resp.Body, &group)
	if err != nil {
		return nil, fmt.Errorf("parsing group: %w", err)
	}

	return &group, nil
}

// Delete implements traduki.GroupsClient.Delete.
func (c *GroupsClient) Delete(ctx context.Context, groupID int64) error {
	path := fmt.Sprintf("/api/v2/groups/%d", groupID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting group: %w", err)
	}

	return nil
}
