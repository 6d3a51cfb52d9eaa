package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// TranslationMemoriesClient implements traduki.TranslationMemoriesClient.
type TranslationMemoriesClient struct {
	httpClient *http.Client
}

// NewTranslationMemoriesClient creates a new translation memories client.
func NewTranslationMemoriesClient(httpClient *http.Client) *TranslationMemoriesClient {
	return &TranslationMemoriesClient{
		httpClient: httpClient,
	}
}

// List implements traduki.TranslationMemoriesClient.List.
func (c *TranslationMemoriesClient) List(ctx context.Context, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.TranslationMemory], error) {
	path := "/api/v2/tms"

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing translation memories: %w", err)
	}

	var list traduki.ListResponse[traduki.TranslationMemory]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing translation memories list: %w", err)
	}

	return &list, nil
}

// Get implements traduki.TranslationMemoriesClient.Get.
func (c *TranslationMemoriesClient) Get(ctx context.Context, tmID int64) (*traduki.TranslationMemory, error) {
	path := fmt.Sprintf("/api/v2/tms/%d", tmID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting translation memory: %w", err)
	}

	var memory traduki.TranslationMemory

	err = json.Unmarshal(resp.Body, &memory)
	if err != nil {
		return nil, fmt.Errorf("parsing translation memory: %w", err)
	}

	return &memory, nil
}

// Add implements traduki.TranslationMemoriesClient.Add.
func (c *TranslationMemoriesClient) Add(ctx context.Context, request *traduki.TranslationMemoryCreateRequest) (*traduki.TranslationMemory, error) {
	path := "/api/v2/tms"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating translation memory: %w", err)
	}

	var memory traduki.TranslationMemory

	err = json.Unmarshal(resp.Body, &memory)
	if err != nil {
		return nil, fmt.Errorf("parsing translation memory: %w", err)
	}

	return &memory, nil
}

// Edit implements traduki.TranslationMemoriesClient.Edit.
func (c *TranslationMemoriesClient) Edit(ctx context.Context, tmID int64, ops []traduki.PatchOperation) (*traduki.TranslationMemory, error) {
	path := fmt.Sprintf("/api/v2/tms/%d", tmID)

	resp, err := c.httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("updating translation memory: %w", err)
	}

	var memory traduki.TranslationMemory

	err = json.Unmarshal(resp.Body, &memory)
	if err != nil {
		return nil, fmt.Errorf("parsing translation memory: %w", err)
	}

	return &memory, nil
}

// Delete implements traduki.TranslationMemoriesClient.Delete.
func (c *TranslationMemoriesClient) Delete(ctx context.Context, tmID int64) error {
	path := fmt.Sprintf("/api/v2/tms/%d", tmID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting translation memory: %w", err)
	}

	return nil
}

type tmExportRequest struct {
	Format traduki.TMExportFormat `json:"format"`
}

// Export implements traduki.TranslationMemoriesClient.Export.
func (c *TranslationMemoriesClient) Export(ctx context.Context, tmID int64, format traduki.TMExportFormat) (*traduki.Operation, error) {
	path := fmt.Sprintf("/api/v2/tms/%d/exports", tmID)

	resp, err := c.httpClient.Post(ctx, path, &tmExportRequest{Format: format})
	if err != nil {
		return nil, fmt.Errorf("starting translation memory export: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// ExportStatus implements traduki.TranslationMemoriesClient.ExportStatus.
func (c *TranslationMemoriesClient) ExportStatus(ctx context.Context, tmID int64, exportID string) (*traduki.Operation, error) {
	path := fmt.Sprintf("/api/v2/tms/%d/exports/%s", tmID, exportID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting translation memory export status: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// DownloadExport implements traduki.TranslationMemoriesClient.DownloadExport.
func (c *TranslationMemoriesClient) DownloadExport(ctx context.Context, tmID int64, exportID string) (*traduki.DownloadLink, error) {
	path := fmt.Sprintf("/api/v2/tms/%d/exports/%s/download", tmID, exportID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("requesting translation memory download: %w", err)
	}

	var link traduki.DownloadLink

	err = json.Unmarshal(resp.Body, &link)
	if err != nil {
		return nil, fmt.Errorf("parsing download link: %w", err)
	}

	return &link, nil
}

type tmImportRequest struct {
	StorageID int64 `json:"storageId"`
}

// Import implements traduki.TranslationMemoriesClient.Import.
func (c *TranslationMemoriesClient) Import(ctx context.Context, tmID, storageID int64) (*traduki.Operation, error) {
	path := fmt.Sprintf("/api/v2/tms/%d/imports", tmID)

	resp, err := c.httpClient.Post(ctx, path, &tmImportRequest{StorageID: storageID})
	if err != nil {
		return nil, fmt.Errorf("starting translation memory import: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}
