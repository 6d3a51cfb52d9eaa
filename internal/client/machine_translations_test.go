package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	internalhttp "github.com/traduki-io/traduki/internal/http"
)

func TestMachineTranslationsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/mts", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": 3, "name": "DeepL", "type": "deepl", "supportedLanguageIds": ["en", "de"], "isEnabled": true},
				{"id": 4, "name": "Custom NMT", "type": "custom", "isEnabled": false}
			],
			"pagination": {"offset": 0, "limit": 25}
		}`))
	}))
	defer server.Close()

	mts := NewMachineTranslationsClient(internalhttp.NewClient(server.URL, nil))

	list, err := mts.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "deepl", list.Data[0].Type)
	assert.Equal(t, []string{"en", "de"}, list.Data[0].SupportedLanguageIDs)
	assert.False(t, list.Data[1].IsEnabled)
}

func TestMachineTranslationsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/mts/3", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 3, "name": "DeepL", "type": "deepl", "projectIds": [1, 2], "isEnabled": true}`))
	}))
	defer server.Close()

	mts := NewMachineTranslationsClient(internalhttp.NewClient(server.URL, nil))

	engine, err := mts.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), engine.ID)
	assert.Equal(t, []int64{1, 2}, engine.ProjectIDs)
	assert.True(t, engine.IsEnabled)
}
