package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	internalhttp "github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

func TestUsersClient_GetAuthenticated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/user", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 12, "username": "alex", "email": "alex@example.com"}`))
	}))
	defer server.Close()

	users := NewUsersClient(internalhttp.NewClient(server.URL, nil))

	user, err := users.GetAuthenticated(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), user.ID)
	assert.Equal(t, "alex", user.Username)
}

func TestUsersClient_ListProjectMembers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/projects/5/members", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": 12, "username": "alex", "role": "translator"}
			]
		}`))
	}))
	defer server.Close()

	users := NewUsersClient(internalhttp.NewClient(server.URL, nil))

	members, err := users.ListProjectMembers(context.Background(), 5, nil)
	require.NoError(t, err)
	require.Len(t, members.Data, 1)
	assert.Equal(t, traduki.UserRoleTranslator, members.Data[0].Role)
}

func TestUsersClient_OrgOperationsUnavailableOnPublic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should reach the server")
	}))
	defer server.Close()

	users := NewUsersClient(internalhttp.NewClient(server.URL, nil))
	ctx := context.Background()

	_, err := users.List(ctx, nil)
	assert.True(t, traduki.IsPermissionDenied(err))

	_, err = users.Get(ctx, 12)
	assert.True(t, traduki.IsPermissionDenied(err))

	_, err = users.Invite(ctx, &traduki.UserInviteRequest{Email: "new@example.com"})
	assert.True(t, traduki.IsPermissionDenied(err))

	err = users.Delete(ctx, 12)
	assert.True(t, traduki.IsPermissionDenied(err))
}

func TestEnterpriseUsersClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/users", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": 1, "username": "alex"},
				{"id": 2, "username": "sam"}
			]
		}`))
	}))
	defer server.Close()

	users := NewEnterpriseUsersClient(internalhttp.NewClient(server.URL, nil))

	list, err := users.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, list.Data, 2)
}

func TestEnterpriseUsersClient_KeepsPublicOperations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/user", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 12, "username": "alex"}`))
	}))
	defer server.Close()

	users := NewEnterpriseUsersClient(internalhttp.NewClient(server.URL, nil))

	user, err := users.GetAuthenticated(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alex", user.Username)
}
