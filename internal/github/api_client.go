package github

import (
	"net/http"

	"github.com/google/go-github/v60/github"
	"github.com/shurcooL/githubv4"
)

// APIClient implements the Client interface against GitHub's REST and
// GraphQL APIs. Project boards are only reachable through GraphQL; issue
// and assignee operations stay on REST.
type APIClient struct {
	rest   *github.Client
	gql    *githubv4.Client
	dryRun bool
}

// NewAPIClient creates a client from an authenticated HTTP client. With
// dryRun set, every mutating call logs what it would do and returns
// without touching the API.
func NewAPIClient(httpClient *http.Client, dryRun bool) *APIClient {
	return &APIClient{
		rest:   github.NewClient(httpClient),
		gql:    githubv4.NewClient(httpClient),
		dryRun: dryRun,
	}
}
