package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traduki-io/traduki/pkg/traduki"
)

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, traduki.ErrConfigRequired)
}

func TestNew_PublicDeploymentURL(t *testing.T) {
	client, err := New(&traduki.Config{Token: "tok"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.traduki.com", client.URL())
}

func TestNew_EnterpriseDeploymentURL(t *testing.T) {
	client, err := New(&traduki.Config{Token: "tok", Organization: "acme"})
	require.NoError(t, err)
	assert.Equal(t, "https://acme.api.traduki.com", client.URL())
}

func TestNew_OrganizationPrefixesExplicitBaseURL(t *testing.T) {
	client, err := New(&traduki.Config{
		Token:        "tok",
		Organization: "acme",
		BaseURL:      "api.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://acme.api.example.com", client.URL())

	client, err = New(&traduki.Config{
		Token:        "tok",
		Organization: "acme",
		BaseURL:      "internal.example.com",
		Protocol:     "http",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://acme.internal.example.com", client.URL())
}

func TestClient_ConstructionPerformsNoIO(t *testing.T) {
	// A NATS endpoint nothing listens on: construction must still succeed
	// because cache backends connect on first use.
	client, err := New(&traduki.Config{
		Token: "tok",
		Cache: &traduki.CacheConfig{
			Type: traduki.CacheTypeNATS,
			NATS: &traduki.NATSKVConfig{URL: "nats://127.0.0.1:1", ConnectTimeout: 50 * time.Millisecond},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://api.traduki.com", client.URL())
}

func TestNew_RejectsUnknownCacheType(t *testing.T) {
	_, err := New(&traduki.Config{Token: "tok", Cache: &traduki.CacheConfig{Type: "redis"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, traduki.ErrUnsupportedCacheType)
}

func TestClient_DefaultProjectAndPageSize(t *testing.T) {
	var gotPath, gotLimit string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client, err := New(&traduki.Config{
		Token:     "tok",
		Protocol:  "http",
		BaseURL:   strings.TrimPrefix(server.URL, "http://"),
		ProjectID: 7,
		PageSize:  10,
	})
	require.NoError(t, err)

	ctx := context.Background()

	_, err = client.Strings().List(ctx, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "/api/v2/projects/7/strings", gotPath)
	assert.Equal(t, "10", gotLimit)

	// Explicit arguments win over the configured defaults.
	opts := traduki.NewListOptions()
	opts.Limit = 3

	_, err = client.Strings().List(ctx, 9, opts)
	require.NoError(t, err)
	assert.Equal(t, "/api/v2/projects/9/strings", gotPath)
	assert.Equal(t, "3", gotLimit)
}

func TestClient_ResourceClientsAreMemoized(t *testing.T) {
	client, err := New(&traduki.Config{Token: "tok"})
	require.NoError(t, err)

	assert.Same(t, client.Projects(), client.Projects())
	assert.Same(t, client.Strings(), client.Strings())
	assert.Same(t, client.Tasks(), client.Tasks())
}

func TestClient_PublicDeploymentDispatch(t *testing.T) {
	client, err := New(&traduki.Config{Token: "tok"})
	require.NoError(t, err)

	ctx := context.Background()

	// Enterprise-only resources fail client-side on the public deployment.
	_, err = client.Groups().List(ctx, nil)
	require.Error(t, err)
	assert.True(t, traduki.IsPermissionDenied(err))
	assert.Contains(t, err.Error(), "public deployment")

	_, err = client.Teams().List(ctx, nil)
	assert.True(t, traduki.IsPermissionDenied(err))

	// Tasks use the public variant.
	_, ok := client.Tasks().(*TasksClient)
	assert.True(t, ok)

	_, ok = client.Users().(*UsersClient)
	assert.True(t, ok)
}

func TestClient_EnterpriseDeploymentDispatch(t *testing.T) {
	client, err := New(&traduki.Config{Token: "tok", Organization: "acme"})
	require.NoError(t, err)

	ctx := context.Background()

	// Billing exists only on the public deployment.
	_, err = client.Billing().GetPlan(ctx)
	require.Error(t, err)
	assert.True(t, traduki.IsPermissionDenied(err))
	assert.Contains(t, err.Error(), "enterprise deployment")

	_, ok := client.Tasks().(*EnterpriseTasksClient)
	assert.True(t, ok)

	_, ok = client.Users().(*EnterpriseUsersClient)
	assert.True(t, ok)

	_, ok = client.Reports().(*EnterpriseReportsClient)
	assert.True(t, ok)
}

func TestClient_GraphQL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/graphql", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"viewer": {"username": "alex", "createdAt": "2024-03-15T10:30:00Z"}
			}
		}`))
	}))
	defer server.Close()

	client, err := New(&traduki.Config{
		Token:    "tok",
		Protocol: "http",
		BaseURL:  strings.TrimPrefix(server.URL, "http://"),
	})
	require.NoError(t, err)

	result, err := client.GraphQL(context.Background(),
		`query { viewer { username createdAt } }`, nil)
	require.NoError(t, err)

	obj, ok := result.(map[string]any)
	require.True(t, ok)

	data, ok := obj["data"].(map[string]any)
	require.True(t, ok)
	viewer, ok := data["viewer"].(map[string]any)
	require.True(t, ok)

	// GraphQL responses run through the same timestamp promotion.
	_, isTimestamp := viewer["createdAt"].(traduki.Timestamp)
	assert.True(t, isTimestamp)
}
