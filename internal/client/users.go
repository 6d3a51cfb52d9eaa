package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// UsersClient implements traduki.UsersClient for the public deployment.
// Organization-level operations fail with PermissionDenied before any
// network I/O.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client for the public deployment.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// GetAuthenticated implements traduki.UsersClient.GetAuthenticated.
func (c *UsersClient) GetAuthenticated(ctx context.Context) (*traduki.User, error) {
	path := "/api/v2/user"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting authenticated user: %w", err)
	}

	var user traduki.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// ListProjectMembers implements traduki.UsersClient.ListProjectMembers.
func (c *UsersClient) ListProjectMembers(ctx context.Context, projectID int64, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.ProjectMember], error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/members", projectID)

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing project members: %w", err)
	}

	var list traduki.ListResponse[traduki.ProjectMember]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing project members list: %w", err)
	}

	return &list, nil
}

// GetProjectMember implements traduki.UsersClient.GetProjectMember.
func (c *UsersClient) GetProjectMember(ctx context.Context, projectID, memberID int64) (*traduki.ProjectMember, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/members/%d", projectID, memberID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project member: %w", err)
	}

	var member traduki.ProjectMember

	err = json.Unmarshal(resp.Body, &member)
	if err != nil {
		return nil, fmt.Errorf("parsing project member: %w", err)
	}

	return &member, nil
}

// List implements traduki.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.User], error) {
	return nil, traduki.NewResourceUnavailableError("organization users", "public")
}

// Get implements traduki.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID int64) (*traduki.User, error) {
	return nil, traduki.NewResourceUnavailableError("organization users", "public")
}

// Invite implements traduki.UsersClient.Invite.
func (c *UsersClient) Invite(ctx context.Context, request *traduki.UserInviteRequest) (*traduki.User, error) {
	return nil, traduki.NewResourceUnavailableError("organization users", "public")
}

// Edit implements traduki.UsersClient.Edit.
func (c *UsersClient) Edit(ctx context.Context, userID int64, ops []traduki.PatchOperation) (*traduki.User, error) {
	return nil, traduki.NewResourceUnavailableError("organization users", "public")
}

// Delete implements traduki.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, userID int64) error {
	return traduki.NewResourceUnavailableError("organization users", "public")
}

// EnterpriseUsersClient implements traduki.UsersClient for enterprise
// deployments, adding the organization-level operations.
type EnterpriseUsersClient struct {
	*UsersClient
}

// NewEnterpriseUsersClient creates a new users client for enterprise.
func NewEnterpriseUsersClient(httpClient *http.Client) *EnterpriseUsersClient {
	return &EnterpriseUsersClient{
		UsersClient: NewUsersClient(httpClient),
	}
}

// List implements traduki.UsersClient.List.
func (c *EnterpriseUsersClient) List(ctx context.Context, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.User], error) {
	path := "/api/v2/users"

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var list traduki.ListResponse[traduki.User]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing users list: %w", err)
	}

	return &list, nil
}

// Get implements traduki.UsersClient.Get.
func (c *EnterpriseUsersClient) Get(ctx context.Context, userID int64) (*traduki.User, error) {
	path := fmt.Sprintf("/api/v2/users/%d", userID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user traduki.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// Invite implements traduki.UsersClient.Invite.
func (c *EnterpriseUsersClient) Invite(ctx context.Context, request *traduki.UserInviteRequest) (*traduki.User, error) {
	path := "/api/v2/users"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("inviting user: %w", err)
	}

	var user traduki.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// Edit implements traduki.UsersClient.Edit.
func (c *EnterpriseUsersClient) Edit(ctx context.Context, userID int64, ops []traduki.PatchOperation) (*traduki.User, error) {
	path := fmt.Sprintf("/api/v2/users/%d", userID)

	resp, err := c.httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	var user traduki.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// Delete implements traduki.UsersClient.Delete.
func (c *EnterpriseUsersClient) Delete(ctx context.Context, userID int64) error {
	path := fmt.Sprintf("/api/v2/users/%d", userID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}
