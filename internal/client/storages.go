package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	nethttp "net/http"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// StoragesClient implements traduki.StoragesClient.
type StoragesClient struct {
	httpClient *http.Client
}

// NewStoragesClient creates a new storages client.
func NewStoragesClient(httpClient *http.Client) *StoragesClient {
	return &StoragesClient{
		httpClient: httpClient,
	}
}

// List implements traduki.StoragesClient.List.
func (c *StoragesClient) List(ctx context.Context, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Storage], error) {
	path := "/api/v2/storages"

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing storages: %w", err)
	}

	var list traduki.ListResponse[traduki.Storage]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing storages list: %w", err)
	}

	return &list, nil
}

// Get implements traduki.StoragesClient.Get.
func (c *StoragesClient) Get(ctx context.Context, storageID int64) (*traduki.Storage, error) {
	path := fmt.Sprintf("/api/v2/storages/%d", storageID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting storage: %w", err)
	}

	var storage traduki.Storage

	err = json.Unmarshal(resp.Body, &storage)
	if err != nil {
		return nil, fmt.Errorf("parsing storage: %w", err)
	}

	return &storage, nil
}

// Add implements traduki.StoragesClient.Add. The file name travels in a
// header because the body is the raw file content.
func (c *StoragesClient) Add(ctx context.Context, fileName string, content io.Reader) (*traduki.Storage, error) {
	path := "/api/v2/storages"

	headers := nethttp.Header{}
	headers.Set("Traduki-API-FileName", url.PathEscape(fileName))
	headers.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.PostRaw(ctx, path, content, headers)
	if err != nil {
		return nil, fmt.Errorf("uploading storage: %w", err)
	}

	var storage traduki.Storage

	err = json.Unmarshal(resp.Body, &storage)
	if err != nil {
		return nil, fmt.Errorf("parsing storage: %w", err)
	}

	return &storage, nil
}

// Delete implements traduki.StoragesClient.Delete.
func (c *StoragesClient) Delete(ctx context.Context, storageID int64) error {
	path := fmt.Sprintf("/api/v2/storages/%d", storageID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting storage: %w", err)
	}

	return nil
}
