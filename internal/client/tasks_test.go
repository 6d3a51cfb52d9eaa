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

func TestTasksClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/projects/5/tasks", r.URL.Path)
		assert.Equal(t, "todo", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": 1, "title": "Translate homepage", "type": 0, "status": "todo", "languageId": "de"}
			]
		}`))
	}))
	defer server.Close()

	tasks := NewTasksClient(internalhttp.NewClient(server.URL, nil))

	opts := traduki.NewListOptions()
	opts.WithFilter("status", "todo")

	list, err := tasks.List(context.Background(), 5, opts)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, traduki.TaskTypeTranslate, list.Data[0].Type)
	assert.Equal(t, traduki.TaskStatusTodo, list.Data[0].Status)
}

func TestTasksClient_Add_RejectsWorkflowStepOnPublic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should reach the server")
	}))
	defer server.Close()

	tasks := NewTasksClient(internalhttp.NewClient(server.URL, nil))

	_, err := tasks.Add(context.Background(), 5, &traduki.TaskCreateRequest{
		Title:          "Proofread docs",
		Type:           traduki.TaskTypeProofread,
		LanguageID:     "de",
		WorkflowStepID: 31,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, traduki.ErrWorkflowStepRequired)
}

func TestTasksClient_Add(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v2/projects/5/tasks", r.URL.Path)

		var req traduki.TaskCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Translate homepage", req.Title)
		assert.Zero(t, req.WorkflowStepID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 3, "title": "Translate homepage", "type": 0, "status": "todo"}`))
	}))
	defer server.Close()

	tasks := NewTasksClient(internalhttp.NewClient(server.URL, nil))

	task, err := tasks.Add(context.Background(), 5, &traduki.TaskCreateRequest{
		Title:      "Translate homepage",
		Type:       traduki.TaskTypeTranslate,
		LanguageID: "de",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), task.ID)
}

func TestEnterpriseTasksClient_Add_AllowsWorkflowStep(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req traduki.TaskCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(31), req.WorkflowStepID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 4, "title": "Proofread", "type": 1, "status": "todo", "workflowStepId": 31}`))
	}))
	defer server.Close()

	tasks := NewEnterpriseTasksClient(internalhttp.NewClient(server.URL, nil))

	task, err := tasks.Add(context.Background(), 5, &traduki.TaskCreateRequest{
		Title:          "Proofread",
		Type:           traduki.TaskTypeProofread,
		LanguageID:     "de",
		WorkflowStepID: 31,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(31), task.WorkflowStepID)
}

func TestTasksClient_Edit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PATCH", r.Method)
		assert.Equal(t, "/api/v2/projects/5/tasks/3", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 3, "status": "done"}`))
	}))
	defer server.Close()

	tasks := NewTasksClient(internalhttp.NewClient(server.URL, nil))

	task, err := tasks.Edit(context.Background(), 5, 3, []traduki.PatchOperation{
		{Op: traduki.PatchOpReplace, Path: "/status", Value: "done"},
	})
	require.NoError(t, err)
	assert.Equal(t, traduki.TaskStatusDone, task.Status)
}

func TestTasksClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/api/v2/projects/5/tasks/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	tasks := NewTasksClient(internalhttp.NewClient(server.URL, nil))

	require.NoError(t, tasks.Delete(context.Background(), 5, 3))
}
