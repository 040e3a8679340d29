package client_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/internal/client"
	"github.com/taskhive/taskhive/internal/server"
	"github.com/taskhive/taskhive/internal/store"
	"github.com/taskhive/taskhive/internal/task"
)

// newTestServer runs the real router over a fresh store so client tests
// exercise the full wire contract.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(server.NewRouter(server.NewREST(store.New(), logger), logger))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientLifecycle(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL)
	ctx := context.Background()

	created, err := c.CreateTask(ctx, "buy-milk", "2% milk", "high", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, created.Status)
	assert.Equal(t, "high", created.Priority)

	updated, err := c.UpdateStatus(ctx, "buy-milk", "in-progress")
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, updated.Status)

	assigned, err := c.AssignTask(ctx, "buy-milk", "alice")
	require.NoError(t, err)
	require.NotNil(t, assigned.Assignee)
	assert.Equal(t, "alice", *assigned.Assignee)

	_, err = c.AddComment(ctx, "buy-milk", "got 2 gallons")
	require.NoError(t, err)

	comments, err := c.GetComments(ctx, "buy-milk")
	require.NoError(t, err)
	assert.Equal(t, []string{"got 2 gallons"}, comments)

	deleted, err := c.DeleteTask(ctx, "buy-milk")
	require.NoError(t, err)
	assert.Equal(t, []string{"got 2 gallons"}, deleted.Comments)

	_, err = c.GetTask(ctx, "buy-milk")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestClientListAndDeleteAll(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL)
	ctx := context.Background()

	tasks, err := c.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	for _, name := range []string{"one", "two", "three"} {
		_, err := c.CreateTask(ctx, name, "", "", "")
		require.NoError(t, err)
	}

	tasks, err = c.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "one", tasks[0].Name)

	deleted, err := c.DeleteAllTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, deleted, 3)

	tasks, err = c.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestClient_NameWithSpaces(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL)
	ctx := context.Background()

	_, err := c.CreateTask(ctx, "weekly review", "standing item", "", "")
	require.NoError(t, err)

	got, err := c.GetTask(ctx, "weekly review")
	require.NoError(t, err)
	assert.Equal(t, "weekly review", got.Name)
}

func TestClientErrors(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL)
	ctx := context.Background()

	_, err := c.CreateTask(ctx, "buy-milk", "", "", "")
	require.NoError(t, err)

	tests := []struct {
		name       string
		call       func() error
		wantStatus int
		wantMsg    string
	}{
		{
			"duplicate create",
			func() error { _, err := c.CreateTask(ctx, "buy-milk", "", "", ""); return err },
			http.StatusConflict, "already exists",
		},
		{
			"invalid status",
			func() error { _, err := c.UpdateStatus(ctx, "buy-milk", "done"); return err },
			http.StatusBadRequest, "invalid status value",
		},
		{
			"missing task",
			func() error { _, err := c.AssignTask(ctx, "missing", "alice"); return err },
			http.StatusNotFound, "not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var apiErr *client.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantStatus, apiErr.Status)
			assert.Contains(t, apiErr.Message, tt.wantMsg)
			assert.Contains(t, apiErr.Error(), "Status code:")
		})
	}
}

func TestDecodeError_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	t.Cleanup(srv.Close)

	c := client.New(srv.URL)
	_, err := c.ListTasks(context.Background())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "bad gateway", apiErr.Message)
}
