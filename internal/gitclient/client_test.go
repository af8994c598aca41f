package gitclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(context.Background(), "", WithBaseURL(server.URL))
}

func pageReq(n int) domain.PageRequest {
	return domain.PageRequest{Number: n, Size: 20}
}

func TestClient_SearchRepos(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"total_count": 2,
			"incomplete_results": false,
			"items": [
				{
					"id": 1,
					"name": "linux",
					"full_name": "torvalds/linux",
					"owner": {"login": "torvalds"},
					"description": "Linux kernel source tree",
					"language": "C",
					"stargazers_count": 170000,
					"forks_count": 53000,
					"open_issues_count": 350,
					"fork": false,
					"html_url": "https://github.com/torvalds/linux",
					"updated_at": "2024-06-01T10:00:00Z"
				},
				{
					"id": 2,
					"name": "go",
					"full_name": "golang/go",
					"owner": {"login": "golang"},
					"stargazers_count": 120000
				}
			]
		}`)
	}))

	repos, err := client.SearchRepos(context.Background(), "stars:>=1000", "stars", pageReq(3))

	require.NoError(t, err)
	assert.Equal(t, "/search/repositories", gotPath)
	assert.Contains(t, gotQuery, "page=3")
	assert.Contains(t, gotQuery, "per_page=20")
	assert.Contains(t, gotQuery, "sort=stars")

	require.Len(t, repos, 2)
	assert.Equal(t, "torvalds/linux", repos[0].FullName)
	assert.Equal(t, "torvalds", repos[0].Owner)
	assert.Equal(t, "linux", repos[0].Name)
	assert.Equal(t, "C", repos[0].Language)
	assert.Equal(t, 170000, repos[0].Stars)
	assert.Equal(t, 53000, repos[0].Forks)
	assert.False(t, repos[0].Fork)
	assert.Equal(t, "golang/go", repos[1].FullName)
}

func TestClient_SearchRepos_EmptyQuery(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.SearchRepos(context.Background(), "", "", pageReq(1))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClient_ListUserRepos(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"id": 10, "name": "hello-world", "full_name": "octocat/hello-world", "owner": {"login": "octocat"}},
			{"id": 11, "name": "spoon-knife", "full_name": "octocat/spoon-knife", "owner": {"login": "octocat"}, "fork": true}
		]`)
	}))

	repos, err := client.ListUserRepos(context.Background(), "octocat", pageReq(1))

	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "hello-world", repos[0].Name)
	assert.True(t, repos[1].Fork)
}

func TestClient_ListUserRepos_EmptyLogin(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.ListUserRepos(context.Background(), "", pageReq(1))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClient_ListIssues(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/golang/go/issues", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{
				"number": 101,
				"title": "runtime: crash on arm64",
				"state": "open",
				"user": {"login": "gopher"},
				"labels": [{"name": "NeedsInvestigation"}, {"name": "compiler/runtime"}],
				"comments": 7,
				"html_url": "https://github.com/golang/go/issues/101",
				"created_at": "2024-05-01T00:00:00Z",
				"updated_at": "2024-05-02T00:00:00Z"
			}
		]`)
	}))

	issues, err := client.ListIssues(context.Background(), "golang", "go", domain.IssueClosed, pageReq(2))

	require.NoError(t, err)
	assert.Contains(t, gotQuery, "state=closed")
	assert.Contains(t, gotQuery, "page=2")

	require.Len(t, issues, 1)
	assert.Equal(t, 101, issues[0].Number)
	assert.Equal(t, "runtime: crash on arm64", issues[0].Title)
	assert.Equal(t, "gopher", issues[0].Author)
	assert.Equal(t, []string{"NeedsInvestigation", "compiler/runtime"}, issues[0].Labels)
	assert.Equal(t, 7, issues[0].Comments)
}

func TestClient_ListIssues_InvalidStateDefaultsToOpen(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	}))

	_, err := client.ListIssues(context.Background(), "golang", "go", domain.IssueState("bogus"), pageReq(1))

	require.NoError(t, err)
	assert.Contains(t, gotQuery, "state=open")
}

func TestClient_ListIssues_MissingRepo(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.ListIssues(context.Background(), "golang", "", domain.IssueOpen, pageReq(1))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClient_GetUser(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"login": "octocat",
			"name": "The Octocat",
			"bio": "GitHub mascot",
			"company": "@github",
			"location": "San Francisco",
			"public_repos": 8,
			"followers": 9000,
			"following": 9
		}`)
	}))

	user, err := client.GetUser(context.Background(), "octocat")

	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
	assert.Equal(t, "The Octocat", user.Name)
	assert.Equal(t, "GitHub mascot", user.Bio)
	assert.Equal(t, 9000, user.Followers)
}

func TestClient_GetAuthenticatedUser(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"login": "octocat"}`)
	}))

	user, err := client.GetAuthenticatedUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantClass  domain.ErrorClass
		checkError func(t *testing.T, err error)
	}{
		{
			name:      "401 is an auth failure",
			status:    http.StatusUnauthorized,
			body:      `{"message": "Bad credentials"}`,
			wantClass: domain.ClassAuth,
			checkError: func(t *testing.T, err error) {
				assert.True(t, IsUnauthorized(err))
			},
		},
		{
			name:      "404 is an API failure",
			status:    http.StatusNotFound,
			body:      `{"message": "Not Found"}`,
			wantClass: domain.ClassAPI,
			checkError: func(t *testing.T, err error) {
				assert.True(t, IsNotFound(err))
			},
		},
		{
			name:      "422 is an API failure",
			status:    http.StatusUnprocessableEntity,
			body:      `{"message": "Validation Failed"}`,
			wantClass: domain.ClassAPI,
			checkError: func(t *testing.T, err error) {
				assert.False(t, IsNotFound(err))
				assert.False(t, IsUnauthorized(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))

			_, err := client.GetUser(context.Background(), "nobody")

			require.Error(t, err)
			assert.Equal(t, tt.wantClass, domain.Classify(err))
			tt.checkError(t, err)
		})
	}
}

func TestClient_TransportErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // connection refused from here on
	client := New(context.Background(), "", WithBaseURL(server.URL))

	_, err := client.GetUser(context.Background(), "octocat")

	require.Error(t, err)
	assert.Equal(t, domain.ClassTransport, domain.Classify(err))
	assert.True(t, domain.Classify(err).Transient())
}

func TestClient_UpdatesRateLimiterFromHeaders(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(HeaderRateLimit, "5000")
		w.Header().Set(HeaderRateRemaining, "4312")
		w.Header().Set(HeaderRateReset, "1900000000")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"login": "octocat"}`)
	}))

	_, err := client.GetUser(context.Background(), "octocat")

	require.NoError(t, err)
	assert.Equal(t, 5000, client.RateLimiter().Limit())
	assert.Equal(t, 4312, client.RateLimiter().Remaining())
}
