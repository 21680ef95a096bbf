package github_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ghAdapter "github.com/ericfisherdev/repocanvas/internal/adapter/driven/github"
)

// newTestClient creates a Client backed by the given httptest handler.
func newTestClient(t *testing.T, handler http.Handler) *ghAdapter.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := ghAdapter.NewClientWithHTTPClient(server.Client(), server.URL+"/")
	require.NoError(t, err)

	return client
}

// repoJSON is a helper struct for building GitHub API repository responses.
type repoJSON struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	FullName    string  `json:"full_name"`
	Description *string `json:"description"`
	Stars       int     `json:"stargazers_count"`
	Language    *string `json:"language"`
	HTMLURL     string  `json:"html_url"`
}

func strPtr(s string) *string { return &s }

func TestListUserRepositories_MapsFields(t *testing.T) {
	repos := []repoJSON{
		{
			ID:          1296269,
			Name:        "Hello-World",
			FullName:    "octocat/Hello-World",
			Description: strPtr("My first repository"),
			Stars:       80,
			Language:    strPtr("Go"),
			HTMLURL:     "https://github.com/octocat/Hello-World",
		},
		{
			ID:       42,
			Name:     "empty",
			FullName: "octocat/empty",
		},
	}

	var gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(repos)
	})

	client := newTestClient(t, handler)
	result, err := client.ListUserRepositories(context.Background(), "octocat")

	require.NoError(t, err)
	assert.Equal(t, "/users/octocat/repos", gotPath)
	require.Len(t, result, 2)

	assert.Equal(t, int64(1296269), result[0].ID)
	assert.Equal(t, "Hello-World", result[0].Name)
	assert.Equal(t, "octocat/Hello-World", result[0].FullName)
	assert.Equal(t, "My first repository", result[0].Description)
	assert.Equal(t, 80, result[0].Stars)
	assert.Equal(t, "Go", result[0].Language)
	assert.Equal(t, "https://github.com/octocat/Hello-World", result[0].HTMLURL)

	// Null description and language map to empty strings.
	assert.Equal(t, int64(42), result[1].ID)
	assert.Equal(t, "", result[1].Description)
	assert.Equal(t, "", result[1].Language)
	assert.Equal(t, 0, result[1].Stars)
}

func TestListUserRepositories_EscapesUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantPath string
	}{
		{"dot segments", "x/../../user", "/users/x%2F..%2F..%2Fuser/repos"},
		{"parent segment", "..", "/users/%2E%2E/repos"},
		{"current segment", ".", "/users/%2E/repos"},
		{"query", "octocat?per_page=100", "/users/octocat%3Fper_page=100/repos"},
		{"empty", "", "/users//repos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotQuery string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.EscapedPath()
				gotQuery = r.URL.RawQuery
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode([]repoJSON{})
			})

			client := newTestClient(t, handler)
			_, err := client.ListUserRepositories(context.Background(), tt.username)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, gotPath)
			assert.Empty(t, gotQuery)
		})
	}
}

func TestListUserRepositories_FirstPageOnly(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Link", fmt.Sprintf(`<%s?page=2>; rel="next"`, "http://"+r.Host+r.URL.Path))
		json.NewEncoder(w).Encode([]repoJSON{{ID: 1, Name: "one"}})
	})

	client := newTestClient(t, handler)
	result, err := client.ListUserRepositories(context.Background(), "octocat")

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, int32(1), calls.Load(), "pagination must not be followed")
}

func TestListUserRepositories_EmptyList(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	client := newTestClient(t, handler)
	result, err := client.ListUserRepositories(context.Background(), "nobody-with-repos")

	require.NoError(t, err)
	assert.NotNil(t, result, "should return empty slice, not nil")
	assert.Empty(t, result)
}

func TestListUserRepositories_NonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusForbidden, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				w.Write([]byte(`{"message":"nope"}`))
			})

			client := newTestClient(t, handler)
			result, err := client.ListUserRepositories(context.Background(), "ghost")

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), "ghost")
		})
	}
}

func TestListUserRepositories_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	client, err := ghAdapter.NewClientWithHTTPClient(server.Client(), server.URL)
	require.NoError(t, err)
	server.Close()

	_, err = client.ListUserRepositories(context.Background(), "octocat")
	assert.Error(t, err)
}

func TestNewClient_BaseURL(t *testing.T) {
	_, err := ghAdapter.NewClient("", "")
	require.NoError(t, err)

	_, err = ghAdapter.NewClient("token", "https://ghe.example.com/api/v3")
	require.NoError(t, err)

	_, err = ghAdapter.NewClient("", "://bad")
	assert.Error(t, err)
}
