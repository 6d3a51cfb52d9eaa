package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// TranslationsClient implements traduki.TranslationsClient.
type TranslationsClient struct {
	httpClient *http.Client
}

// NewTranslationsClient creates a new translations client.
func NewTranslationsClient(httpClient *http.Client) *TranslationsClient {
	return &TranslationsClient{
		httpClient: httpClient,
	}
}

// ListByLanguage implements traduki.TranslationsClient.ListByLanguage.
func (c *TranslationsClient) ListByLanguage(ctx context.Context, projectID int64, languageID string, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Translation], error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/translations", projectID)

	query := listQuery(c.httpClient, opts)
	if query == nil {
		query = url.Values{}
	}

	query.Set("languageId", languageID)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing translations: %w", err)
	}

	var list traduki.ListResponse[traduki.Translation]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing translations list: %w", err)
	}

	return &list, nil
}

// ListByString implements traduki.TranslationsClient.ListByString.
func (c *TranslationsClient) ListByString(ctx context.Context, projectID, stringID int64, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Translation], error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/translations", projectID)

	query := listQuery(c.httpClient, opts)
	if query == nil {
		query = url.Values{}
	}

	query.Set("stringId", strconv.FormatInt(stringID, 10))

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing translations: %w", err)
	}

	var list traduki.ListResponse[traduki.Translation]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing translations list: %w", err)
	}

	return &list, nil
}

// Get implements traduki.TranslationsClient.Get.
func (c *TranslationsClient) Get(ctx context.Context, projectID, translationID int64) (*traduki.Translation, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/translations/%d", projectID, translationID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting translation: %w", err)
	}

	var translation traduki.Translation

	err = json.Unmarshal(resp.Body, &translation)
	if err != nil {
		return nil, fmt.Errorf("parsing translation: %w", err)
	}

	return &translation, nil
}

// Add implements traduki.TranslationsClient.Add.
func (c *TranslationsClient) Add(ctx context.Context, projectID int64, request *traduki.TranslationCreateRequest) (*traduki.Translation, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/translations", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating translation: %w", err)
	}

	var translation traduki.Translation

	err = json.Unmarshal(resp.Body, &translation)
	if err != nil {
		return nil, fmt.Errorf("parsing translation: %w", err)
	}

	return &translation, nil
}

// Delete implements traduki.TranslationsClient.Delete.
func (c *TranslationsClient) Delete(ctx context.Context, projectID, translationID int64) error {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/translations/%d", projectID, translationID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting translation: %w", err)
	}

	return nil
}

// ApplyPreTranslation implements traduki.TranslationsClient.ApplyPreTranslation.
func (c *TranslationsClient) ApplyPreTranslation(ctx context.Context, projectID int64, request *traduki.PreTranslationRequest) (*traduki.Operation, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/pre-translations", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("starting pre-translation: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// PreTranslationStatus implements traduki.TranslationsClient.PreTranslationStatus.
func (c *TranslationsClient) PreTranslationStatus(ctx context.Context, projectID int64, preTranslationID string) (*traduki.Operation, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/pre-translations/%s", projectID, preTranslationID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting pre-translation status: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// BuildProjectTranslation implements traduki.TranslationsClient.BuildProjectTranslation.
func (c *TranslationsClient) BuildProjectTranslation(ctx context.Context, projectID int64, request *traduki.BuildRequest) (*traduki.Operation, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/translations/builds", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("starting build: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// BuildStatus implements traduki.TranslationsClient.BuildStatus.
func (c *TranslationsClient) BuildStatus(ctx context.Context, projectID int64, buildID string) (*traduki.Operation, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/translations/builds/%s", projectID, buildID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting build status: %w", err)
	}

	var operation traduki.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// DownloadBuild implements traduki.TranslationsClient.DownloadBuild.
func (c *TranslationsClient) DownloadBuild(ctx context.Context, projectID int64, buildID string) (*traduki.DownloadLink, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/translations/builds/%s/download", projectID, buildID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("requesting build download: %w", err)
	}

	var link traduki.DownloadLink

	err = json.Unmarshal(resp.Body, &link)
	if err != nil {
		return nil, fmt.Errorf("parsing download link: %w", err)
	}

	return &link, nil
}
