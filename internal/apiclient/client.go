package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is any non-2xx response, carrying the status code and the short
// message from the body's error field.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// IsAuth reports whether the error is an authentication failure, the signal
// the session layer reacts to.
func (e *APIError) IsAuth() bool {
	return e.Status == http.StatusUnauthorized
}

// Client is a thin typed wrapper over the HTTP API. It applies no timeout
// and never retries; cancellation comes from the caller's context.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// SetToken sets the bearer token used by authenticated calls. An empty
// token sends no Authorization header.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Ping(ctx context.Context) error {
	var out messageEnvelope
	return c.do(ctx, http.MethodGet, "/ping", nil, &out)
}

func (c *Client) Register(ctx context.Context, username, password string) (string, error) {
	var out authEnvelope
	err := c.do(ctx, http.MethodPost, "/register", credentials{Username: username, Password: password}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out authEnvelope
	err := c.do(ctx, http.MethodPost, "/login", credentials{Username: username, Password: password}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var out profileEnvelope
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTask(ctx context.Context, task NewTask) (*Task, error) {
	var out taskEnvelope
	if err := c.do(ctx, http.MethodPost, "/tasks", task, &out); err != nil {
		return nil, err
	}
	return out.Task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int64, patch TaskPatch) (*Task, error) {
	var out taskEnvelope
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return out.Task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	var out deleteEnvelope
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, &out)
}

func (c *Client) BulkDelete(ctx context.Context, ids []int64) ([]BulkDeleteResult, error) {
	body := struct {
		Ids []int64 `json:"ids"`
	}{Ids: ids}

	var out bulkDeleteEnvelope
	if err := c.do(ctx, http.MethodPost, "/tasks/bulk-delete", body, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
