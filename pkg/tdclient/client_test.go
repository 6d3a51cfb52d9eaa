package tdclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traduki-io/traduki/pkg/tdclient"
	"github.com/traduki-io/traduki/pkg/traduki"
)

func TestNew_RequiresConfig(t *testing.T) {
	_, err := tdclient.New(nil)
	assert.ErrorIs(t, err, traduki.ErrConfigRequired)
}

func TestNew_RejectsUnknownProtocol(t *testing.T) {
	_, err := tdclient.New(&traduki.Config{Token: "tok", Protocol: "ftp"})
	require.Error(t, err)
	assert.ErrorIs(t, err, traduki.ErrInvalidProtocol)
}

func TestNew_PublicDeployment(t *testing.T) {
	client, err := tdclient.New(&traduki.Config{Token: "tok"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.traduki.com", client.URL())
}

func TestNew_EnterpriseDeployment(t *testing.T) {
	client, err := tdclient.New(&traduki.Config{Token: "tok", Organization: "acme"})
	require.NoError(t, err)
	assert.Equal(t, "https://acme.api.traduki.com", client.URL())
}

func TestNew_SplitsSchemeFromBaseURL(t *testing.T) {
	client, err := tdclient.New(&traduki.Config{
		Token:   "tok",
		BaseURL: "http://localhost:8080/",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", client.URL())
}

func TestNew_RejectsUnknownSchemeInBaseURL(t *testing.T) {
	_, err := tdclient.New(&traduki.Config{Token: "tok", BaseURL: "ftp://example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, traduki.ErrInvalidProtocol)
}

func TestNewWithToken(t *testing.T) {
	client, err := tdclient.NewWithToken("tok")
	require.NoError(t, err)
	assert.Equal(t, "https://api.traduki.com", client.URL())
}

func TestNewEnterprise(t *testing.T) {
	client, err := tdclient.NewEnterprise("tok", "acme")
	require.NoError(t, err)
	assert.Equal(t, "https://acme.api.traduki.com", client.URL())
}

func TestClient_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/v2/projects/1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1, "name": "Website"}`))
	}))
	defer server.Close()

	client, err := tdclient.New(&traduki.Config{Token: "tok", BaseURL: server.URL})
	require.NoError(t, err)

	project, err := client.Projects().Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Website", project.Name)
}
