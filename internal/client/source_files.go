package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// SourceFilesClient implements traduki.SourceFilesClient.
type SourceFilesClient struct {
	httpClient *http.Client
}

// NewSourceFilesClient creates a new source files client.
func NewSourceFilesClient(httpClient *http.Client) *SourceFilesClient {
	return &SourceFilesClient{
		httpClient: httpClient,
	}
}

// ListFiles implements traduki.SourceFilesClient.ListFiles.
func (c *SourceFilesClient) ListFiles(ctx context.Context, projectID int64, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.File], error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/files", projectID)

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	var list traduki.ListResponse[traduki.File]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing files list: %w", err)
	}

	return &list, nil
}

// GetFile implements traduki.SourceFilesClient.GetFile.
func (c *SourceFilesClient) GetFile(ctx context.Context, projectID, fileID int64) (*traduki.File, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/files/%d", projectID, fileID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting file: %w", err)
	}

	var file traduki.File

	err = json.Unmarshal(resp.Body, &file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	return &file, nil
}

// AddFile implements traduki.SourceFilesClient.AddFile.
func (c *SourceFilesClient) AddFile(ctx context.Context, projectID int64, request *traduki.FileCreateRequest) (*traduki.File, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/files", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}

	var file traduki.File

	err = json.Unmarshal(resp.Body, &file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	return &file, nil
}

// UpdateFile implements traduki.SourceFilesClient.UpdateFile.
func (c *SourceFilesClient) UpdateFile(ctx context.Context, projectID, fileID int64, request *traduki.FileUpdateRequest) (*traduki.File, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/files/%d", projectID, fileID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating file content: %w", err)
	}

	var file traduki.File

	err = json.Unmarshal(resp.Body, &file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	return &file, nil
}

// EditFile implements traduki.SourceFilesClient.EditFile.
func (c *SourceFilesClient) EditFile(ctx context.Context, projectID, fileID int64, ops []traduki.PatchOperation) (*traduki.File, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/files/%d", projectID, fileID)

	resp, err := c.httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("updating file: %w", err)
	}

	var file traduki.File

	err = json.Unmarshal(resp.Body, &file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	return &file, nil
}

// DeleteFile implements traduki.SourceFilesClient.DeleteFile.
func (c *SourceFilesClient) DeleteFile(ctx context.Context, projectID, fileID int64) error {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/files/%d", projectID, fileID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}

	return nil
}

// DownloadFile implements traduki.SourceFilesClient.DownloadFile. The server
// responds with a short-lived signed URL.
func (c *SourceFilesClient) DownloadFile(ctx context.Context, projectID, fileID int64) (*traduki.DownloadLink, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/files/%d/download", projectID, fileID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("requesting file download: %w", err)
	}

	var link traduki.DownloadLink

	err = json.Unmarshal(resp.Body, &link)
	if err != nil {
		return nil, fmt.Errorf("parsing download link: %w", err)
	}

	return &link, nil
}

// ListDirectories implements traduki.SourceFilesClient.ListDirectories.
func (c *SourceFilesClient) ListDirectories(ctx context.Context, projectID int64, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Directory], error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/directories", projectID)

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing directories: %w", err)
	}

	var list traduki.ListResponse[traduki.Directory]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing directories list: %w", err)
	}

	return &list, nil
}

// GetDirectory implements traduki.SourceFilesClient.GetDirectory.
func (c *SourceFilesClient) GetDirectory(ctx context.Context, projectID, directoryID int64) (*traduki.Directory, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/directories/%d", projectID, directoryID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting directory: %w", err)
	}

	var directory traduki.Directory

	err = json.Unmarshal(resp.Body, &directory)
	if err != nil {
		return nil, fmt.Errorf("parsing directory: %w", err)
	}

	return &directory, nil
}

// AddDirectory implements traduki.SourceFilesClient.AddDirectory.
func (c *SourceFilesClient) AddDirectory(ctx context.Context, projectID int64, request *traduki.DirectoryCreateRequest) (*traduki.Directory, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/directories", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating directory: %w", err)
	}

	var directory traduki.Directory

	err = json.Unmarshal(resp.Body, &directory)
	if err != nil {
		return nil, fmt.Errorf("parsing directory: %w", err)
	}

	return &directory, nil
}

// DeleteDirectory implements traduki.SourceFilesClient.DeleteDirectory.
func (c *SourceFilesClient) DeleteDirectory(ctx context.Context, projectID, directoryID int64) error {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/directories/%d", projectID, directoryID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting directory: %w", err)
	}

	return nil
}
