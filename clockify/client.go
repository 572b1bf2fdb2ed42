package clockify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.clockify.me/api/v1"
	apiKeyHeader   = "X-Api-Key"
)

// Client defines the Clockify API operations used for a transfer.
type Client interface {
	ListWorkspaces(ctx context.Context) ([]Workspace, error)
	ListProjects(ctx context.Context, workspaceID string) ([]Project, error)
	CreateTimeEntry(ctx context.Context, workspaceID string, entry TimeEntry) (Response, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ClientConfig struct {
	BaseURL    string
	APIKey     string
	UserAgent  string
	HTTPClient httpDoer
}

type HTTPClient struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient httpDoer
}

func NewClient(cfg ClientConfig) (*HTTPClient, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	parsedBase, err := url.Parse(baseURL)
	if err != nil || parsedBase.Scheme == "" || parsedBase.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", cfg.BaseURL)
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("API key is required")
	}

	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{}
	}

	return &HTTPClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		userAgent:  strings.TrimSpace(cfg.UserAgent),
		httpClient: doer,
	}, nil
}

type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Project struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ClientName string `json:"clientName,omitempty"`
	Archived   bool   `json:"archived"`
}

// TimeEntry is the create payload. Start and End are sent as RFC 3339 in UTC.
type TimeEntry struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	ProjectID   string    `json:"projectId"`
	Description string    `json:"description"`
}

func (e TimeEntry) MarshalJSON() ([]byte, error) {
	type wire struct {
		Start       string `json:"start"`
		End         string `json:"end"`
		ProjectID   string `json:"projectId"`
		Description string `json:"description"`
	}
	return json.Marshal(wire{
		Start:       e.Start.UTC().Format(time.RFC3339),
		End:         e.End.UTC().Format(time.RFC3339),
		ProjectID:   e.ProjectID,
		Description: e.Description,
	})
}

// Response is the raw outcome of an accepted request.
type Response struct {
	StatusCode int
	Body       []byte
}

// CreatedID returns the "id" field of a created resource, if the body has one.
func (r Response) CreatedID() string {
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(r.Body, &created); err != nil {
		return ""
	}
	return created.ID
}

func (c *HTTPClient) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	var out []Workspace
	if err := c.doJSON(ctx, http.MethodGet, "/workspaces", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListProjects(ctx context.Context, workspaceID string) ([]Project, error) {
	path, err := workspacePath(workspaceID, "projects")
	if err != nil {
		return nil, err
	}
	var out []Project
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateTimeEntry(ctx context.Context, workspaceID string, entry TimeEntry) (Response, error) {
	path, err := workspacePath(workspaceID, "time-entries")
	if err != nil {
		return Response{}, err
	}
	return c.do(ctx, http.MethodPost, path, entry)
}

func workspacePath(workspaceID, resource string) (string, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return "", errors.New("workspace ID is required")
	}
	return fmt.Sprintf("/workspaces/%s/%s", url.PathEscape(workspaceID), resource), nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, endpointPath string, body any, out any) error {
	resp, err := c.do(ctx, method, endpointPath, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("decode response %s %s: %w", method, endpointPath, err)
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, endpointPath string, body any) (Response, error) {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return Response{}, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpointPath, bodyReader)
	if err != nil {
		return Response{}, fmt.Errorf("create request %s %s: %w", method, endpointPath, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, &TransportError{Method: method, Path: endpointPath, Err: err}
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, &TransportError{Method: method, Path: endpointPath, Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, &RemoteError{
			Method:     method,
			Path:       endpointPath,
			StatusCode: resp.StatusCode,
			Body:       responseBody,
		}
	}

	return Response{StatusCode: resp.StatusCode, Body: responseBody}, nil
}
