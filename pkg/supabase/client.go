// Package supabase is a thin client for the Supabase PostgREST and auth
// APIs. It is the only place the backend talks HTTP to the data store.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client represents a Supabase client
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// NewClient creates a new Supabase client
func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        url,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// do builds, authorizes, and executes one PostgREST request. When userToken
// is empty the service key authorizes the call; otherwise the user's JWT
// does, so row-level security applies.
func (c *Client) do(ctx context.Context, method, url string, query map[string]interface{}, payload []byte, userToken string, prefer string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	if query != nil {
		q := req.URL.Query()
		for key, value := range query {
			q.Add(key, fmt.Sprintf("%v", value))
		}
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set("apikey", c.ServiceKey)
	token := c.ServiceKey
	if userToken != "" {
		token = userToken
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("supabase error: %s", string(respBody))
	}
	return respBody, nil
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/rest/v1/%s", c.URL, table)
}

// Query executes a query on a Supabase table
func (c *Client) Query(ctx context.Context, table string, query map[string]interface{}) ([]byte, error) {
	return c.QueryWithToken(ctx, table, query, "")
}

// QueryWithToken executes a query with an optional user JWT token for RLS
func (c *Client) QueryWithToken(ctx context.Context, table string, query map[string]interface{}, userToken string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, c.tableURL(table), query, nil, userToken, "")
}

// Insert inserts a record into a Supabase table
func (c *Client) Insert(ctx context.Context, table string, data interface{}) ([]byte, error) {
	return c.InsertWithToken(ctx, table, data, "")
}

// InsertWithToken inserts a record with an optional user JWT token for RLS
func (c *Client) InsertWithToken(ctx context.Context, table string, data interface{}, userToken string) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, c.tableURL(table), nil, payload, userToken, "return=representation")
}

// Update updates a record in a Supabase table by ID
func (c *Client) Update(ctx context.Context, table string, id string, data interface{}) ([]byte, error) {
	return c.UpdateWithToken(ctx, table, id, data, "")
}

// UpdateWithToken updates a record with an optional user JWT token for RLS
func (c *Client) UpdateWithToken(ctx context.Context, table string, id string, data interface{}, userToken string) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s?id=eq.%s", c.tableURL(table), id)
	return c.do(ctx, http.MethodPatch, url, nil, payload, userToken, "return=representation")
}

// Delete deletes a record from a Supabase table by ID
func (c *Client) Delete(ctx context.Context, table string, id string) error {
	return c.DeleteWithToken(ctx, table, id, "")
}

// DeleteWithToken deletes a record with an optional user JWT token for RLS
func (c *Client) DeleteWithToken(ctx context.Context, table string, id string, userToken string) error {
	url := fmt.Sprintf("%s?id=eq.%s", c.tableURL(table), id)
	_, err := c.do(ctx, http.MethodDelete, url, nil, nil, userToken, "")
	return err
}

// Upsert inserts or updates a record in a Supabase table. onConflict names
// the columns that detect conflicts (e.g. "user_id,date").
func (c *Client) Upsert(ctx context.Context, table string, data interface{}, onConflict string) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	query := map[string]interface{}{"on_conflict": onConflict}
	return c.do(ctx, http.MethodPost, c.tableURL(table), query, payload, "",
		"return=representation,resolution=merge-duplicates")
}

// User represents a Supabase user
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// VerifyToken verifies a JWT token with Supabase
func (c *Client) VerifyToken(ctx context.Context, token string) (*User, error) {
	url := fmt.Sprintf("%s/auth/v1/user", c.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("token verification failed (status %d): %s", resp.StatusCode, string(body))
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}
