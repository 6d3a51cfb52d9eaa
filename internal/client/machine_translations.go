package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// MachineTranslationsClient implements traduki.MachineTranslationsClient.
type MachineTranslationsClient struct {
	httpClient *http.Client
}

// NewMachineTranslationsClient creates a new machine translations client.
func NewMachineTranslationsClient(httpClient *http.Client) *MachineTranslationsClient {
	return &MachineTranslationsClient{
		httpClient: httpClient,
	}
}

// List implements traduki.MachineTranslationsClient.List.
func (c *MachineTranslationsClient) List(ctx context.Context, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.MTEngine], error) {
	path := "/api/v2/mts"

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing machine translation engines: %w", err)
	}

	var list traduki.ListResponse[traduki.MTEngine]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing machine translation engines list: %w", err)
	}

	return &list, nil
}

// Get implements traduki.MachineTranslationsClient.Get.
func (c *MachineTranslationsClient) Get(ctx context.Context, mtID int64) (*traduki.MTEngine, error) {
	path := fmt.Sprintf("/api/v2/mts/%d", mtID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting machine translation engine: %w", err)
	}

	var engine traduki.MTEngine

	err = json.Unmarshal(resp.Body, &engine)
	if err != nil {
		return nil, fmt.Errorf("parsing machine translation engine: %w", err)
	}

	return &engine, nil
}
