package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	internalhttp "github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

func TestProjectsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/projects", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": 1, "name": "Website", "identifier": "website", "sourceLanguageId": "en"},
				{"id": 2, "name": "Mobile App", "identifier": "mobile", "sourceLanguageId": "en"}
			],
			"pagination": {"offset": 0, "limit": 10}
		}`))
	}))
	defer server.Close()

	projects := NewProjectsClient(internalhttp.NewClient(server.URL, nil))

	opts := traduki.NewListOptions()
	opts.Limit = 10

	list, err := projects.List(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, list.Data, 2)
	assert.Equal(t, int64(1), list.Data[0].ID)
	assert.Equal(t, "Website", list.Data[0].Name)
	assert.Equal(t, "mobile", list.Data[1].Identifier)
}

func TestProjectsClient_ListAll(t *testing.T) {
	pages := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++

		offset := r.URL.Query().Get("offset")

		w.Header().Set("Content-Type", "application/json")

		if offset == "" || offset == "0" {
			// Full first page at the default page size.
			items := make([]map[string]any, 25)
			for i := range items {
				items[i] = map[string]any{"id": i + 1, "name": "p"}
			}

			_ = json.NewEncoder(w).Encode(map[string]any{"data": items})

			return
		}

		// Short second page terminates the walk.
		_, _ = w.Write([]byte(`{"data": [{"id": 26, "name": "last"}]}`))
	}))
	defer server.Close()

	projects := NewProjectsClient(internalhttp.NewClient(server.URL, nil))

	all, err := projects.ListAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 26)
	assert.Equal(t, 2, pages)
}

func TestProjectsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/projects/42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 42,
			"name": "Docs",
			"identifier": "docs",
			"sourceLanguageId": "en",
			"targetLanguageIds": ["de", "fr"],
			"createdAt": "2024-03-15T10:30:00+02:00"
		}`))
	}))
	defer server.Close()

	projects := NewProjectsClient(internalhttp.NewClient(server.URL, nil))

	project, err := projects.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), project.ID)
	assert.Equal(t, []string{"de", "fr"}, project.TargetLanguageIDs)
	require.NotNil(t, project.CreatedAt)
	assert.Equal(t, "2024-03-15T10:30:00+02:00", project.CreatedAt.String())
}

func TestProjectsClient_Get_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Project Not Found"}`))
	}))
	defer server.Close()

	projects := NewProjectsClient(internalhttp.NewClient(server.URL, nil))

	_, err := projects.Get(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, traduki.IsNotFound(err))
	assert.Contains(t, err.Error(), "getting project")
}

func TestProjectsClient_Add(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v2/projects", r.URL.Path)

		var req traduki.ProjectCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "New Project", req.Name)
		assert.Equal(t, "en", req.SourceLanguageID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 7, "name": "New Project", "identifier": "new-project"}`))
	}))
	defer server.Close()

	projects := NewProjectsClient(internalhttp.NewClient(server.URL, nil))

	project, err := projects.Add(context.Background(), &traduki.ProjectCreateRequest{
		Name:             "New Project",
		SourceLanguageID: "en",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), project.ID)
}

func TestProjectsClient_Edit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PATCH", r.Method)
		assert.Equal(t, "/api/v2/projects/7", r.URL.Path)

		var ops []traduki.PatchOperation
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ops))
		require.Len(t, ops, 1)
		assert.Equal(t, traduki.PatchOpReplace, ops[0].Op)
		assert.Equal(t, "/name", ops[0].Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "name": "Renamed"}`))
	}))
	defer server.Close()

	projects := NewProjectsClient(internalhttp.NewClient(server.URL, nil))

	project, err := projects.Edit(context.Background(), 7, []traduki.PatchOperation{
		{Op: traduki.PatchOpReplace, Path: "/name", Value: "Renamed"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", project.Name)
}

func TestProjectsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/api/v2/projects/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	projects := NewProjectsClient(internalhttp.NewClient(server.URL, nil))

	require.NoError(t, projects.Delete(context.Background(), 7))
}
