package clockify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

type fakeDoer struct {
	fn func(*http.Request) (*http.Response, error)
}

func (f fakeDoer) Do(req *http.Request) (*http.Response, error) {
	return f.fn(req)
}

func jsonResponse(status int, payload any) *http.Response {
	body, _ := json.Marshal(payload)
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(string(body))),
		Header:     make(http.Header),
	}
}

func textResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(t *testing.T, doer fakeDoer) *HTTPClient {
	t.Helper()
	client, err := NewClient(ClientConfig{
		BaseURL:    "https://api.clockify.me/api/v1/",
		APIKey:     "secret-key",
		UserAgent:  "clocktransfer-test",
		HTTPClient: doer,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestHTTPClient_KnownEndpointsAndHeaders(t *testing.T) {
	t.Parallel()

	type seenRequest struct {
		method string
		path   string
		apiKey string
	}
	seen := make([]seenRequest, 0, 3)

	doer := fakeDoer{fn: func(r *http.Request) (*http.Response, error) {
		seen = append(seen, seenRequest{method: r.Method, path: r.URL.Path, apiKey: r.Header.Get("X-Api-Key")})

		key := fmt.Sprintf("%s %s", r.Method, r.URL.Path)
		switch key {
		case "GET /api/v1/workspaces":
			return jsonResponse(http.StatusOK, []Workspace{{ID: "ws-1", Name: "Main"}}), nil
		case "GET /api/v1/workspaces/ws-1/projects":
			return jsonResponse(http.StatusOK, []Project{{ID: "p-1", Name: "Project One"}}), nil
		case "POST /api/v1/workspaces/ws-1/time-entries":
			if got := r.Header.Get("Content-Type"); got != "application/json" {
				t.Fatalf("unexpected content type: %q", got)
			}
			var payload map[string]string
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("decode time entry payload: %v", err)
			}
			want := map[string]string{
				"start":       "2024-01-01T13:00:00Z",
				"end":         "2024-01-01T15:30:00Z",
				"projectId":   "p-1",
				"description": "PROJ-1: fixed it",
			}
			for field, value := range want {
				if payload[field] != value {
					t.Fatalf("unexpected %s: want %q, got %q", field, value, payload[field])
				}
			}
			return jsonResponse(http.StatusCreated, map[string]string{"id": "te-9"}), nil
		default:
			return nil, fmt.Errorf("unexpected request %s %s", r.Method, r.URL.String())
		}
	}}

	client := newTestClient(t, doer)
	ctx := context.Background()

	workspaces, err := client.ListWorkspaces(ctx)
	if err != nil {
		t.Fatalf("list workspaces: %v", err)
	}
	if len(workspaces) != 1 || workspaces[0].ID != "ws-1" {
		t.Fatalf("unexpected workspaces: %+v", workspaces)
	}

	projects, err := client.ListProjects(ctx, "ws-1")
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 1 || projects[0].Name != "Project One" {
		t.Fatalf("unexpected projects: %+v", projects)
	}

	start := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)
	resp, err := client.CreateTimeEntry(ctx, "ws-1", TimeEntry{
		Start:       start,
		End:         start.Add(150 * time.Minute),
		ProjectID:   "p-1",
		Description: "PROJ-1: fixed it",
	})
	if err != nil {
		t.Fatalf("create time entry: %v", err)
	}
	if resp.StatusCode != http.StatusCreated || resp.CreatedID() != "te-9" {
		t.Fatalf("unexpected create response: status=%d id=%q", resp.StatusCode, resp.CreatedID())
	}

	if len(seen) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(seen))
	}
	for _, request := range seen {
		if request.apiKey != "secret-key" {
			t.Fatalf("missing api key header for %s %s", request.method, request.path)
		}
	}
}

func TestHTTPClient_NonSuccessStatusIsRemoteError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, fakeDoer{fn: func(r *http.Request) (*http.Response, error) {
		return textResponse(http.StatusBadRequest, `{"message":"project archived"}`), nil
	}})

	_, err := client.CreateTimeEntry(context.Background(), "ws-1", TimeEntry{ProjectID: "p-1"})
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remoteErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", remoteErr.StatusCode)
	}
	if !strings.Contains(remoteErr.Error(), "project archived") {
		t.Fatalf("expected response body in error, got %q", remoteErr.Error())
	}
}

func TestHTTPClient_DoerFailureIsTransportError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	client := newTestClient(t, fakeDoer{fn: func(r *http.Request) (*http.Response, error) {
		return nil, cause
	}})

	_, err := client.ListProjects(context.Background(), "ws-1")
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestHTTPClient_EscapesWorkspaceID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, fakeDoer{fn: func(r *http.Request) (*http.Response, error) {
		if r.URL.EscapedPath() != "/api/v1/workspaces/a%2Fb/projects" {
			t.Fatalf("unexpected escaped path: %q", r.URL.EscapedPath())
		}
		return jsonResponse(http.StatusOK, []Project{}), nil
	}})

	if _, err := client.ListProjects(context.Background(), "a/b"); err != nil {
		t.Fatalf("list projects: %v", err)
	}
}

func TestNewClient_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(ClientConfig{BaseURL: "not a url", APIKey: "k"}); err == nil {
		t.Fatalf("expected invalid base URL error")
	}
	if _, err := NewClient(ClientConfig{BaseURL: DefaultBaseURL}); err == nil {
		t.Fatalf("expected missing API key error")
	}
	client, err := NewClient(ClientConfig{APIKey: "k"})
	if err != nil {
		t.Fatalf("default base URL: %v", err)
	}
	if client.baseURL != DefaultBaseURL {
		t.Fatalf("unexpected base URL: %q", client.baseURL)
	}
}

func TestHTTPClient_RequiresWorkspaceID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, fakeDoer{fn: func(r *http.Request) (*http.Response, error) {
		t.Fatalf("no request expected")
		return nil, nil
	}})
	if _, err := client.CreateTimeEntry(context.Background(), " ", TimeEntry{}); err == nil {
		t.Fatalf("expected workspace ID error")
	}
}
