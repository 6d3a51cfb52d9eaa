package client

import (
	"context"

	"github.com/traduki-io/traduki/pkg/traduki"
)

// Resources that exist on only one deployment variant still get a client
// from the composition root, so callers hit a typed PermissionDenied error
// instead of a nil dereference. No network I/O ever happens here.

type unavailableGroupsClient struct {
	deployment string
}

func (c *unavailableGroupsClient) List(ctx context.Context, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Group], error) {
	return nil, traduki.NewResourceUnavailableError("groups", c.deployment)
}

func (c *unavailableGroupsClient) Get(ctx context.Context, groupID int64) (*traduki.Group, error) {
	return nil, traduki.NewResourceUnavailableError("groups", c.deployment)
}

func (c *unavailableGroupsClient) Add(ctx context.Context, request *traduki.GroupCreateRequest) (*traduki.Group, error) {
	return nil, traduki.NewResourceUnavailableError("groups", c.deployment)
}

func (c *unavailableGroupsClient) Edit(ctx context.Context, groupID int64, ops []traduki.PatchOperation) (*traduki.Group, error) {
	return nil, traduki.NewResourceUnavailableError("groups", c.deployment)
}

func (c *unavailableGroupsClient) Delete(ctx context.Context, groupID int64) error {
	return traduki.NewResourceUnavailableError("groups", c.deployment)
}

type unavailableTeamsClient struct {
	deployment string
}

func (c *unavailableTeamsClient) List(ctx context.Context, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Team], error) {
	return nil, traduki.NewResourceUnavailableError("teams", c.deployment)
}

func (c *unavailableTeamsClient) Get(ctx context.Context, teamID int64) (*traduki.Team, error) {
	return nil, traduki.NewResourceUnavailableError("teams", c.deployment)
}

func (c *unavailableTeamsClient) Add(ctx context.Context, request *traduki.TeamCreateRequest) (*traduki.Team, error) {
	return nil, traduki.NewResourceUnavailableError("teams", c.deployment)
}

func (c *unavailableTeamsClient) Edit(ctx context.Context, teamID int64, ops []traduki.PatchOperation) (*traduki.Team, error) {
	return nil, traduki.NewResourceUnavailableError("teams", c.deployment)
}

func (c *unavailableTeamsClient) Delete(ctx context.Context, teamID int64) error {
	return traduki.NewResourceUnavailableError("teams", c.deployment)
}

func (c *unavailableTeamsClient) AddMember(ctx context.Context, teamID, userID int64) error {
	return traduki.NewResourceUnavailableError("teams", c.deployment)
}

func (c *unavailableTeamsClient) RemoveMember(ctx context.Context, teamID, userID int64) error {
	return traduki.NewResourceUnavailableError("teams", c.deployment)
}

type unavailableBillingClient struct {
	deployment string
}

func (c *unavailableBillingClient) GetPlan(ctx context.Context) (*traduki.BillingPlan, error) {
	return nil, traduki.NewResourceUnavailableError("billing", c.deployment)
}

func (c *unavailableBillingClient) GetUsage(ctx context.Context) (*traduki.BillingUsage, error) {
	return nil, traduki.NewResourceUnavailableError("billing", c.deployment)
}
