// Package client implements a thin HTTP client for the taskhub JSON API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Todo mirrors the todo resource returned by the server.
type Todo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// User mirrors the user object embedded in auth responses.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}

// Client talks to one taskhub server. Token may be empty until Login or
// Register succeeds.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Token returns the bearer token currently in use.
func (c *Client) Token() string { return c.token }

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var m msgResponse
		if err := json.Unmarshal(data, &m); err == nil && m.Msg != "" {
			return errors.New(m.Msg)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

// Register creates an account and stores the returned token on the client.
func (c *Client) Register(ctx context.Context, displayName, email, password string) (*User, error) {
	var resp authResponse
	body := map[string]string{"displayName": displayName, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp.User, nil
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp.User, nil
}

// ListTodos returns the caller's todos, newest first.
func (c *Client) ListTodos(ctx context.Context) ([]Todo, error) {
	var todos []Todo
	if err := c.do(ctx, http.MethodGet, "/api/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// AddTodo creates a todo with the given title.
func (c *Client) AddTodo(ctx context.Context, title string) (*Todo, error) {
	var todo Todo
	if err := c.do(ctx, http.MethodPost, "/api/todos", map[string]string{"title": title}, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// CompleteTodo marks the todo as done.
func (c *Client) CompleteTodo(ctx context.Context, id string) (*Todo, error) {
	var todo Todo
	body := map[string]bool{"completed": true}
	if err := c.do(ctx, http.MethodPut, "/api/todos/"+id, body, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// DeleteTodo removes the todo.
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/todos/"+id, nil, nil)
}
