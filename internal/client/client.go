// Package client is the HTTP client for a running taskhive server. It speaks
// the same wire contract the server exposes and surfaces the server's error
// envelope as APIError values.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/taskhive/taskhive/internal/task"
)

// APIError is a non-200 response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (Status code: %d)", e.Message, e.Status)
}

// Client issues task operations against a server base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

type createRequest struct {
	TaskName    string `json:"taskName"`
	Description string `json:"description"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

type taskListResponse struct {
	Tasks []*task.Task `json:"tasks"`
}

type commentsResponse struct {
	Comments []string `json:"comments"`
}

// CreateTask creates a new task and returns the created record.
func (c *Client) CreateTask(ctx context.Context, name, description, priority, dueDate string) (*task.Task, error) {
	body := createRequest{TaskName: name, Description: description, Priority: priority, DueDate: dueDate}
	var t task.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTasks returns all tasks on the server.
func (c *Client) ListTasks(ctx context.Context) ([]*task.Task, error) {
	var resp taskListResponse
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// GetTask fetches a single task by name.
func (c *Client) GetTask(ctx context.Context, name string) (*task.Task, error) {
	var t task.Task
	if err := c.do(ctx, http.MethodGet, taskPath(name), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateStatus sets the task's status.
func (c *Client) UpdateStatus(ctx context.Context, name, status string) (*task.Task, error) {
	body := map[string]string{"status": status}
	var t task.Task
	if err := c.do(ctx, http.MethodPatch, taskPath(name), body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// AssignTask sets the task's assignee.
func (c *Client) AssignTask(ctx context.Context, name, assignee string) (*task.Task, error) {
	body := map[string]string{"assignee": assignee}
	var t task.Task
	if err := c.do(ctx, http.MethodPost, taskPath(name)+"/assign", body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// AddComment appends a comment to the task.
func (c *Client) AddComment(ctx context.Context, name, comment string) (*task.Task, error) {
	body := map[string]string{"comment": comment}
	var t task.Task
	if err := c.do(ctx, http.MethodPost, taskPath(name)+"/comments", body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetComments returns the task's ordered comment list.
func (c *Client) GetComments(ctx context.Context, name string) ([]string, error) {
	var resp commentsResponse
	if err := c.do(ctx, http.MethodGet, taskPath(name)+"/comments", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

// DeleteTask removes the task and returns its final state.
func (c *Client) DeleteTask(ctx context.Context, name string) (*task.Task, error) {
	var t task.Task
	if err := c.do(ctx, http.MethodDelete, taskPath(name), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteAllTasks removes every task and returns the deleted set.
func (c *Client) DeleteAllTasks(ctx context.Context) ([]*task.Task, error) {
	var resp taskListResponse
	if err := c.do(ctx, http.MethodDelete, "/tasks", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

func taskPath(name string) string {
	return "/tasks/" + url.PathEscape(name)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// decodeError pulls the message out of the {"error":{"message":...}} envelope,
// falling back to the raw body for non-JSON responses.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	msg := "Unknown error"
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		msg = envelope.Error.Message
	} else if len(raw) > 0 {
		msg = string(raw)
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
