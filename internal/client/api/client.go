// Package api implements the HTTP client for the wordvault server. It keeps
// the bearer token obtained at login and attaches it to every word
// operation.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ivanosipov/wordvault/internal/common"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// WordItem is one entry of the server-side word list.
type WordItem struct {
	ID       int64  `json:"id"`
	Word     string `json:"word"`
	Position int64  `json:"position"`
}

// PositionUpdate is one (entry, new position) pair for ReorderWords.
type PositionUpdate struct {
	ID       int64 `json:"id"`
	Position int64 `json:"position"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// IsAuthenticated reports whether a login token is held for this session.
func (c *Client) IsAuthenticated() bool {
	return c.token != ""
}

// Logout drops the session token.
func (c *Client) Logout() {
	c.token = ""
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request: %w", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error performing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return c.mapError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}

	return nil
}

func (c *Client) mapError(resp *http.Response) error {

	var body errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusBadRequest:
		if body.Error.Code == "already_registered" {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("bad request: %s", body.Error.Message)
	default:
		return fmt.Errorf("server error: %s (status %d)", body.Error.Message, resp.StatusCode)
	}
}

func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/register", map[string]string{
		"username": username,
		"password": password,
	}, nil)
}

// Login authenticates and stores the returned bearer token for subsequent
// word operations.
func (c *Client) Login(ctx context.Context, username, password string) error {

	var tok tokenResponse
	err := c.do(ctx, http.MethodPost, "/token", map[string]string{
		"username": username,
		"password": password,
	}, &tok)
	if err != nil {
		return err
	}

	c.token = tok.AccessToken
	return nil
}

func (c *Client) AddWord(ctx context.Context, word string, position int64) error {
	return c.do(ctx, http.MethodPost, "/words", map[string]any{
		"word":     word,
		"position": position,
	}, nil)
}

func (c *Client) ListWords(ctx context.Context) ([]WordItem, error) {
	var list []WordItem
	if err := c.do(ctx, http.MethodGet, "/words", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ReorderWords(ctx context.Context, updates []PositionUpdate) error {
	return c.do(ctx, http.MethodPut, "/words/reorder", updates, nil)
}

func (c *Client) DeleteWord(ctx context.Context, position int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/words/%d", position), nil, nil)
}
