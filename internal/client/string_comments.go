package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// StringCommentsClient implements traduki.StringCommentsClient.
type StringCommentsClient struct {
	httpClient *http.Client
}

// NewStringCommentsClient creates a new string comments client.
func NewStringCommentsClient(httpClient *http.Client) *StringCommentsClient {
	return &StringCommentsClient{
		httpClient: httpClient,
	}
}

// List implements traduki.StringCommentsClient.List.
func (c *StringCommentsClient) List(ctx context.Context, projectID int64, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.StringComment], error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/comments", projectID)

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	var list traduki.ListResponse[traduki.StringComment]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing comments list: %w", err)
	}

	return &list, nil
}

// Get implements traduki.StringCommentsClient.Get.
func (c *StringCommentsClient) Get(ctx context.Context, projectID, commentID int64) (*traduki.StringComment, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/comments/%d", projectID, commentID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting comment: %w", err)
	}

	var comment traduki.StringComment

	err = json.Unmarshal(resp.Body, &comment)
	if err != nil {
		return nil, fmt.Errorf("parsing comment: %w", err)
	}

	return &comment, nil
}

// Add implements traduki.StringCommentsClient.Add.
func (c *StringCommentsClient) Add(ctx context.Context, projectID int64, request *traduki.StringCommentCreateRequest) (*traduki.StringComment, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/comments", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	var comment traduki.StringComment

	err = json.Unmarshal(resp.Body, &comment)
	if err != nil {
		return nil, fmt.Errorf("parsing comment: %w", err)
	}

	return &comment, nil
}

// Edit implements traduki.StringCommentsClient.Edit.
func (c *StringCommentsClient) Edit(ctx context.Context, projectID, commentID int64, ops []traduki.PatchOperation) (*traduki.StringComment, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/comments/%d", projectID, commentID)

	resp, err := c.httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("updating comment: %w", err)
	}

	var comment traduki.StringComment

	err = json.Unmarshal(resp.Body, &comment)
	if err != nil {
		return nil, fmt.Errorf("parsing comment: %w", err)
	}

	return &comment, nil
}

// Delete implements traduki.StringCommentsClient.Delete.
func (c *StringCommentsClient) Delete(ctx context.Context, projectID, commentID int64) error {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/comments/%d", projectID, commentID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}

	return nil
}
