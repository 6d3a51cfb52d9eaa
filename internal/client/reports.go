package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// ReportsClient implements traduki.ReportsClient for the public deployment.
// Organization-level reports fail with PermissionDenied before any network
// I/O.
type ReportsClient struct {
	httpClient *http.Client
}

// NewReportsClient creates a new reports client for the public deployment.
func NewReportsClient(httpClient *http.Client) *ReportsClient {
	return &ReportsClient{
		httpClient: httpClient,
	}
}

// Generate implements traduki.ReportsClient.Generate.
func (c *ReportsClient) Generate(ctx context.Context, projectID int64, request *traduki.ReportGenerateRequest) (*traduki.Operation, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/reports", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("starting report generation: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// Status implements traduki.ReportsClient.Status.
func (c *ReportsClient) Status(ctx context.Context, projectID int64, reportID string) (*traduki.Operation, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/reports/%s", projectID, reportID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting report status: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// Download implements traduki.ReportsClient.Download.
func (c *ReportsClient) Download(ctx context.Context, projectID int64, reportID string) (*traduki.DownloadLink, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/reports/%s/download", projectID, reportID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("requesting report download: %w", err)
	}

	var link traduki.DownloadLink

	err = json.Unmarshal(resp.Body, &link)
	if err != nil {
		return nil, fmt.Errorf("parsing download link: %w", err)
	}

	return &link, nil
}

// GenerateOrganizationReport implements traduki.ReportsClient.GenerateOrganizationReport.
func (c *ReportsClient) GenerateOrganizationReport(ctx context.Context, request *traduki.ReportGenerateRequest) (*traduki.Operation, error) {
	return nil, traduki.NewResourceUnavailableError("organization reports", "public")
}

// OrganizationReportStatus implements traduki.ReportsClient.OrganizationReportStatus.
func (c *ReportsClient) OrganizationReportStatus(ctx context.Context, reportID string) (*traduki.Operation, error) {
	return nil, traduki.NewResourceUnavailableError("organization reports", "public")
}

// DownloadOrganizationReport implements traduki.ReportsClient.DownloadOrganizationReport.
func (c *ReportsClient) DownloadOrganizationReport(ctx context.Context, reportID string) (*traduki.DownloadLink, error) {
	return nil, traduki.NewResourceUnavailableError("organization reports", "public")
}

// EnterpriseReportsClient implements traduki.ReportsClient for enterprise
// deployments, adding organization-level reports.
type EnterpriseReportsClient struct {
	*ReportsClient
}

// NewEnterpriseReportsClient creates a new reports client for enterprise.
func NewEnterpriseReportsClient(httpClient *http.Client) *EnterpriseReportsClient {
	return &EnterpriseReportsClient{
		ReportsClient: NewReportsClient(httpClient),
	}
}

// GenerateOrganizationReport implements traduki.ReportsClient.GenerateOrganizationReport.
func (c *EnterpriseReportsClient) GenerateOrganizationReport(ctx context.Context, request *traduki.ReportGenerateRequest) (*traduki.Operation, error) {
	path := "/api/v2/reports"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("starting organization report generation: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// OrganizationReportStatus implements traduki.ReportsClient.OrganizationReportStatus.
func (c *EnterpriseReportsClient) OrganizationReportStatus(ctx context.Context, reportID string) (*traduki.Operation, error) {
	path := "/api/v2/reports/" + reportID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting organization report status: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// DownloadOrganizationReport implements traduki.ReportsClient.DownloadOrganizationReport.
func (c *EnterpriseReportsClient) DownloadOrganizationReport(ctx context.Context, reportID string) (*traduki.DownloadLink, error) {
	path := "/api/v2/reports/" + reportID + "/download"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("requesting organization report download: %w", err)
	}

	var link traduki.DownloadLink

	err = json.Unmarshal(resp.Body, &link)
	if err != nil {
		return nil, fmt.Errorf("parsing download link: %w", err)
	}

	return &link, nil
}
