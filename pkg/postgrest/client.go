// Package postgrest is a minimal client for a PostgREST-compatible data API
// (Supabase's REST layer). It speaks the PostgREST filter syntax directly:
// callers pass query maps like {"user_id": "eq.<id>", "order": "occurred_at.desc"}.
package postgrest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client holds the API endpoint and service-role key. The service key
// bypasses row-level security; all per-user scoping happens in query filters.
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// User is the authenticated identity returned by token verification.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        url,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(method, table string, query map[string]string, body interface{}, prefer string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, fmt.Sprintf("%s/rest/v1/%s", c.URL, table), reader)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for key, value := range query {
		q.Add(key, value)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.ServiceKey))
	if body != nil {
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
		return nil, fmt.Errorf("postgrest error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// Query fetches rows from a table using PostgREST filters.
func (c *Client) Query(table string, query map[string]string) ([]byte, error) {
	return c.do(http.MethodGet, table, query, nil, "")
}

// Insert creates a row and returns its representation.
func (c *Client) Insert(table string, data interface{}) ([]byte, error) {
	return c.do(http.MethodPost, table, nil, data, "return=representation")
}

// Update patches rows matching the query and returns their representation.
func (c *Client) Update(table string, query map[string]string, data interface{}) ([]byte, error) {
	return c.do(http.MethodPatch, table, query, data, "return=representation")
}

// Upsert inserts a row or merges it into the existing row identified by the
// onConflict columns (e.g. "user_id,period,period_type").
func (c *Client) Upsert(table string, data interface{}, onConflict string) ([]byte, error) {
	query := map[string]string{"on_conflict": onConflict}
	return c.do(http.MethodPost, table, query, data, "return=representation,resolution=merge-duplicates")
}

// Delete removes rows matching the query.
func (c *Client) Delete(table string, query map[string]string) error {
	_, err := c.do(http.MethodDelete, table, query, nil, "")
	return err
}

// VerifyToken resolves a user JWT against the auth endpoint.
func (c *Client) VerifyToken(token string) (*User, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/auth/v1/user", c.URL), nil)
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
