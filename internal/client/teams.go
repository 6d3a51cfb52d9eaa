package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// TeamsClient implements traduki.TeamsClient for enterprise deployments.
type TeamsClient struct {
	httpClient *http.Client
}

// NewTeamsClient creates a new teams client.
func NewTeamsClient(httpClient *http.Client) *TeamsClient {
	return &TeamsClient{
		httpClient: httpClient,
	}
}

// List implements traduki.TeamsClient.List.
func (c *TeamsClient) List(ctx context.Context, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Team], error) {
	path := "/api/v2/teams"

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}

	var list traduki.ListResponse[traduki.Team]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing teams list: %w", err)
	}

	return &list, nil
}

// Get implements traduki.TeamsClient.Get.
func (c *TeamsClient) Get(ctx context.Context, teamID int64) (*traduki.Team, error) {
	path := fmt.Sprintf("/api/v2/teams/%d", teamID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting team: %w", err)
	}

	var team traduki.Team

	err = json.Unmarshal(resp.Body, &team)
	if err != nil {
		return nil, fmt.Errorf("parsing team: %w", err)
	}

	return &team, nil
}

// Add implements traduki.TeamsClient.Add.
func (c *TeamsClient) Add(ctx context.Context, request *traduki.TeamCreateRequest) (*traduki.Team, error) {
	path := "/api/v2/teams"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating team: %w", err)
	}

	var team traduki.Team

	err = json.Unmarshal(resp.Body, &team)
	if err != nil {
		return nil, fmt.Errorf("parsing team: %w", err)
	}

	return &team, nil
}

// Edit implements traduki.TeamsClient.Edit.
func (c *TeamsClient) Edit(ctx context.Context, teamID int64, ops []traduki.PatchOperation) (*traduki.Team, error) {
	path := fmt.Sprintf("/api/v2/teams/%d", teamID)

	resp, err := c.httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("updating team: %w", err)
	}

	var team traduki.Team

	err = json.Unmarshal(resp.Body, &team)
	if err != nil {
		return nil, fmt.Errorf("parsing team: %w", err)
	}

	return &team, nil
}

// Delete implements traduki.TeamsClient.Delete.
func (c *TeamsClient) Delete(ctx context.Context, teamID int64) error {
	path := fmt.Sprintf("/api/v2/teams/%d", teamID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}

	return nil
}

type teamMemberRequest struct {
	UserID int64 `json:"userId"`
}

// AddMember implements traduki.TeamsClient.AddMember.
func (c *TeamsClient) AddMember(ctx context.Context, teamID, userID int64) error {
	path := fmt.Sprintf("/api/v2/teams/%d/members", teamID)

	_, err := c.httpClient.Post(ctx, path, &teamMemberRequest{UserID: userID})
	if err != nil {
		return fmt.Errorf("adding team member: %w", err)
	}

	return nil
}

// RemoveMember implements traduki.TeamsClient.RemoveMember.
func (c *TeamsClient) RemoveMember(ctx context.Context, teamID, userID int64) error {
	path := fmt.Sprintf("/api/v2/teams/%d/members/%d", teamID, userID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("removing team member: %w", err)
	}

	return nil
}
