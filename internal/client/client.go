// Package client talks to the mission API and maintains a local mirror of
// the mission list for map rendering. The mirror is never authoritative:
// every mutation round-trips through the server before it is applied.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"mission_mapper/internal/models"
)

var (
	// ErrNetwork is returned when a call to the service did not complete.
	ErrNetwork = errors.New("mission service unreachable")

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("mission not found")

	// ErrServer is returned for any other non-success response.
	ErrServer = errors.New("mission service error")
)

// Mission is the wire shape served by the API. Geometry is kept opaque;
// the client hands it to the map layer untouched.
type Mission struct {
	MissionID uint            `json:"mission_id"`
	Name      string          `json:"name"`
	Path      []models.Point  `json:"path"`
	Home      models.Point    `json:"home"`
	Geometry  json.RawMessage `json:"geometry"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Client is a typed HTTP client for the mission API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithHTTPClient creates a client with a caller-supplied http.Client,
// e.g. to control the timeout.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// List fetches every stored mission.
func (c *Client) List(ctx context.Context) ([]Mission, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/missions", nil)
	if err != nil {
		return nil, err
	}

	var missions []Mission
	if err := c.do(req, http.StatusOK, &missions); err != nil {
		return nil, err
	}
	return missions, nil
}

// Get fetches a single mission by id.
func (c *Client) Get(ctx context.Context, id uint) (*Mission, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.missionURL(id), nil)
	if err != nil {
		return nil, err
	}

	var mission Mission
	if err := c.do(req, http.StatusOK, &mission); err != nil {
		return nil, err
	}
	return &mission, nil
}

// Create persists a new mission and returns the server-assigned record.
func (c *Client) Create(ctx context.Context, name string, path []models.Point) (*Mission, error) {
	body, err := json.Marshal(map[string]interface{}{
		"name": name,
		"path": path,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/missions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var mission Mission
	if err := c.do(req, http.StatusCreated, &mission); err != nil {
		return nil, err
	}
	return &mission, nil
}

// Rename updates a mission's name.
func (c *Client) Rename(ctx context.Context, id uint, newName string) error {
	body, err := json.Marshal(map[string]string{"name": newName})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.missionURL(id), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, http.StatusOK, nil)
}

// Delete removes a mission.
func (c *Client) Delete(ctx context.Context, id uint) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.missionURL(id), nil)
	if err != nil {
		return err
	}
	return c.do(req, http.StatusOK, nil)
}

func (c *Client) missionURL(id uint) string {
	return fmt.Sprintf("%s/api/missions/%d", c.baseURL, id)
}

func (c *Client) do(req *http.Request, wantStatus int, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		if resp.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("%w: unexpected status %d", ErrServer, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrServer, err)
	}
	return nil
}
