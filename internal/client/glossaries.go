package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// GlossariesClient implements traduki.GlossariesClient.
type GlossariesClient struct {
	httpClient *http.Client
}

// NewGlossariesClient creates a new glossaries client.
func NewGlossariesClient(httpClient *http.Client) *GlossariesClient {
	return &GlossariesClient{
		httpClient: httpClient,
	}
}

// List implements traduki.GlossariesClient.List.
func (c *GlossariesClient) List(ctx context.Context, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Glossary], error) {
	path := "/api/v2/glossaries"

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing glossaries: %w", err)
	}

	var list traduki.ListResponse[traduki.Glossary]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing glossaries list: %w", err)
	}

	return &list, nil
}

// Get implements traduki.GlossariesClient.Get.
func (c *GlossariesClient) Get(ctx context.Context, glossaryID int64) (*traduki.Glossary, error) {
	path := fmt.Sprintf("/api/v2/glossaries/%d", glossaryID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting glossary: %w", err)
	}

	var glossary traduki.Glossary

	err = json.Unmarshal(resp.Body, &glossary)
	if err != nil {
		return nil, fmt.Errorf("parsing glossary: %w", err)
	}

	return &glossary, nil
}

// Add implements traduki.GlossariesClient.Add.
func (c *GlossariesClient) Add(ctx context.Context, request *traduki.GlossaryCreateRequest) (*traduki.Glossary, error) {
	path := "/api/v2/glossaries"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating glossary: %w", err)
	}

	var glossary traduki.Glossary

	err = json.Unmarshal(resp.Body, &glossary)
	if err != nil {
		return nil, fmt.Errorf("parsing glossary: %w", err)
	}

	return &glossary, nil
}

// Edit implements traduki.GlossariesClient.Edit.
func (c *GlossariesClient) Edit(ctx context.Context, glossaryID int64, ops []traduki.PatchOperation) (*traduki.Glossary, error) {
	path := fmt.Sprintf("/api/v2/glossaries/%d", glossaryID)

	resp, err := c.httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("updating glossary: %w", err)
	}

	var glossary traduki.Glossary

	err = json.Unmarshal(resp.Body, &glossary)
	if err != nil {
		return nil, fmt.Errorf("parsing glossary: %w", err)
	}

	return &glossary, nil
}

// Delete implements traduki.GlossariesClient.Delete.
func (c *GlossariesClient) Delete(ctx context.Context, glossaryID int64) error {
	path := fmt.Sprintf("/api/v2/glossaries/%d", glossaryID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting glossary: %w", err)
	}

	return nil
}

// ListTerms implements traduki.GlossariesClient.ListTerms.
func (c *GlossariesClient) ListTerms(ctx context.Context, glossaryID int64, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Term], error) {
	path := fmt.Sprintf("/api/v2/glossaries/%d/terms", glossaryID)

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing terms: %w", err)
	}

	var list traduki.ListResponse[traduki.Term]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing terms list: %w", err)
	}

	return &list, nil
}

// AddTerm implements traduki.GlossariesClient.AddTerm.
func (c *GlossariesClient) AddTerm(ctx context.Context, glossaryID int64, request *traduki.TermCreateRequest) (*traduki.Term, error) {
	path := fmt.Sprintf("/api/v2/glossaries/%d/terms", glossaryID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating term: %w", err)
	}

	var term traduki.Term

	err = json.Unmarshal(resp.Body, &term)
	if err != nil {
		return nil, fmt.Errorf("parsing term: %w", err)
	}

	return &term, nil
}

// DeleteTerm implements traduki.GlossariesClient.DeleteTerm.
func (c *GlossariesClient) DeleteTerm(ctx context.Context, glossaryID, termID int64) error {
	path := fmt.Sprintf("/api/v2/glossaries/%d/terms/%d", glossaryID, termID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting term: %w", err)
	}

	return nil
}

type glossaryExportRequest struct {
	Format traduki.GlossaryExportFormat `json:"format"`
}

// Export implements traduki.GlossariesClient.Export.
func (c *GlossariesClient) Export(ctx context.Context, glossaryID int64, format traduki.GlossaryExportFormat) (*traduki.Operation, error) {
	path := fmt.Sprintf("/api/v2/glossaries/%d/exports", glossaryID)

	resp, err := c.httpClient.Post(ctx, path, &glossaryExportRequest{Format: format})
	if err != nil {
		return nil, fmt.Errorf("starting glossary export: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// ExportStatus implements traduki.GlossariesClient.ExportStatus.
func (c *GlossariesClient) ExportStatus(ctx context.Context, glossaryID int64, exportID string) (*traduki.Operation, error) {
	path := fmt.Sprintf("/api/v2/glossaries/%d/exports/%s", glossaryID, exportID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting glossary export status: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// DownloadExport implements traduki.GlossariesClient.DownloadExport.
func (c *GlossariesClient) DownloadExport(ctx context.Context, glossaryID int64, exportID string) (*traduki.DownloadLink, error) {
	path := fmt.Sprintf("/api/v2/glossaries/%d/exports/%s/download", glossaryID, exportID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("requesting glossary download: %w", err)
	}

	var link traduki.DownloadLink

	err = json.Unmarshal(resp.Body, &link)
	if err != nil {
		return nil, fmt.Errorf("parsing download link: %w", err)
	}

	return &link, nil
}

type glossaryImportRequest struct {
	StorageID int64 `json:"storageId"`
}

// Import implements traduki.GlossariesClient.Import.
func (c *GlossariesClient) Import(ctx context.Context, glossaryID, storageID int64) (*traduki.Operation, error) {
	path := fmt.Sprintf("/api/v2/glossaries/%d/imports", glossaryID)

	resp, err := c.httpClient.Post(ctx, path, &glossaryImportRequest{StorageID: storageID})
	if err != nil {
		return nil, fmt.Errorf("starting glossary import: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}
