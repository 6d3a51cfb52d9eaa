package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// BillingClient implements traduki.BillingClient for the public deployment.
type BillingClient struct {
	httpClient *http.Client
}

// NewBillingClient creates a new billing client.
func NewBillingClient(httpClient *http.Client) *BillingClient {
	return &BillingClient{
		httpClient: httpClient,
	}
}

// GetPlan implements traduki.BillingClient.GetPlan.
func (c *BillingClient) GetPlan(ctx context.Context) (*traduki.BillingPlan, error) {
	path := "/api/v2/billing/plan"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting billing plan: %w", err)
	}

	var plan traduki.BillingPlan

	err = json.Unmarshal(resp.Body, &plan)
	if err != nil {
		return nil, fmt.Errorf("parsing billing plan: %w", err)
	}

	return &plan, nil
}

// GetUsage implements traduki.BillingClient.GetUsage.
func (c *BillingClient) GetUsage(ctx context.Context) (*traduki.BillingUsage, error) {
	path := "/api/v2/billing/usage"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting billing usage: %w", err)
	}

	var usage traduki.BillingUsage

	err = json.Unmarshal(resp.Body, &usage)
	if err != nil {
		return nil, fmt.Errorf("parsing billing usage: %w", err)
	}

	return &usage, nil
}
