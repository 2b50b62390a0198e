package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shurcooL/githubv4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graphqlServer(t *testing.T, handler func(query string, variables map[string]interface{}) string) (*APIClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
			return
		}
		fmt.Fprint(w, handler(req.Query, req.Variables))
	}))
	t.Cleanup(srv.Close)

	return &APIClient{gql: githubv4.NewEnterpriseClient(srv.URL, srv.Client())}, srv
}

func itemsPage(firstNumber, count int, hasNext bool, endCursor string) string {
	var nodes []string
	for i := 0; i < count; i++ {
		number := firstNumber + i
		nodes = append(nodes, fmt.Sprintf(
			`{"id":"item_%d","content":{"__typename":"Issue","number":%d}}`, number, number))
	}
	return fmt.Sprintf(
		`{"data":{"organization":{"projectV2":{"items":{"nodes":[%s],"pageInfo":{"hasNextPage":%t,"endCursor":"%s"}}}}}}`,
		strings.Join(nodes, ","), hasNext, endCursor)
}

func TestListProjectItemsPaginates(t *testing.T) {
	var requests int
	client, _ := graphqlServer(t, func(query string, variables map[string]interface{}) string {
		requests++
		cursor, _ := variables["cursor"].(string)
		switch cursor {
		case "":
			return itemsPage(1, 100, true, "cursor_1")
		case "cursor_1":
			return itemsPage(101, 100, true, "cursor_2")
		case "cursor_2":
			return itemsPage(201, 37, false, "")
		default:
			t.Errorf("unexpected cursor %q", cursor)
			return `{"data":null}`
		}
	})

	items, err := client.ListProjectItems(context.Background(), OwnerTypeOrg, "acme", 7)
	require.NoError(t, err)

	assert.Len(t, items, 237)
	assert.Equal(t, 3, requests)
	require.NotNil(t, items[0].IssueNumber)
	assert.Equal(t, 1, *items[0].IssueNumber)
	require.NotNil(t, items[236].IssueNumber)
	assert.Equal(t, 237, *items[236].IssueNumber)
}

func TestListProjectItemsSkipsNonIssueContent(t *testing.T) {
	client, _ := graphqlServer(t, func(query string, variables map[string]interface{}) string {
		return `{"data":{"organization":{"projectV2":{"items":{` +
			`"nodes":[` +
			`{"id":"item_draft","content":{"__typename":"DraftIssue"}},` +
			`{"id":"item_pr","content":{"__typename":"PullRequest"}},` +
			`{"id":"item_31","content":{"__typename":"Issue","number":31}}` +
			`],"pageInfo":{"hasNextPage":false,"endCursor":""}}}}}}`
	})

	items, err := client.ListProjectItems(context.Background(), OwnerTypeOrg, "acme", 7)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Nil(t, items[0].IssueNumber)
	assert.Nil(t, items[1].IssueNumber)
	require.NotNil(t, items[2].IssueNumber)
	assert.Equal(t, 31, *items[2].IssueNumber)
}

func TestListProjectItemsBoundsPagination(t *testing.T) {
	client, _ := graphqlServer(t, func(query string, variables map[string]interface{}) string {
		// Upstream that never reports the last page.
		return itemsPage(1, 1, true, "cursor_again")
	})

	_, err := client.ListProjectItems(context.Background(), OwnerTypeOrg, "acme", 7)
	assert.ErrorContains(t, err, "pagination exceeded")
}

func TestGetProjectSchema(t *testing.T) {
	client, _ := graphqlServer(t, func(query string, variables map[string]interface{}) string {
		return `{"data":{"organization":{"projectV2":{"id":"project_1","fields":{"nodes":[` +
			`{"__typename":"ProjectV2Field","id":"f_title","name":"Title"},` +
			`{"__typename":"ProjectV2SingleSelectField","id":"f_priority","name":"Priority","options":[{"id":"o_low","name":"Low"}]},` +
			`{"__typename":"ProjectV2SingleSelectField","id":"f_status","name":"Status","options":[` +
			`{"id":"o_backlog","name":"Backlog"},{"id":"o_review","name":"In Review"}]}` +
			`]}}}}}`
	})

	schema, err := client.GetProjectSchema(context.Background(), OwnerTypeOrg, "acme", 7)
	require.NoError(t, err)

	assert.Equal(t, "project_1", schema.ProjectID)
	assert.Equal(t, "f_status", schema.StatusFieldID)
	assert.Equal(t, []StatusOption{
		{ID: "o_backlog", Name: "Backlog"},
		{ID: "o_review", Name: "In Review"},
	}, schema.StatusOptions)
}

func TestGetProjectSchemaNoStatusField(t *testing.T) {
	client, _ := graphqlServer(t, func(query string, variables map[string]interface{}) string {
		return `{"data":{"organization":{"projectV2":{"id":"project_1","fields":{"nodes":[` +
			`{"__typename":"ProjectV2Field","id":"f_title","name":"Title"}` +
			`]}}}}}`
	})

	schema, err := client.GetProjectSchema(context.Background(), OwnerTypeOrg, "acme", 7)
	require.NoError(t, err)

	assert.Equal(t, "project_1", schema.ProjectID)
	assert.Equal(t, "", schema.StatusFieldID)
}

func TestGetProjectSchemaProjectNotFound(t *testing.T) {
	client, _ := graphqlServer(t, func(query string, variables map[string]interface{}) string {
		return `{"data":null,"errors":[{"message":"Could not resolve to a ProjectV2 with the number 99."}]}`
	})

	schema, err := client.GetProjectSchema(context.Background(), OwnerTypeOrg, "acme", 99)
	require.NoError(t, err)
	assert.Equal(t, ProjectSchema{}, schema)
}

func TestGetProjectSchemaTransportFailure(t *testing.T) {
	client, srv := graphqlServer(t, func(query string, variables map[string]interface{}) string {
		return `{"data":null}`
	})
	srv.Close()

	_, err := client.GetProjectSchema(context.Background(), OwnerTypeOrg, "acme", 7)
	assert.ErrorContains(t, err, "failed to query project")
}

func TestSetItemStatusDryRun(t *testing.T) {
	var requests int
	client, _ := graphqlServer(t, func(query string, variables map[string]interface{}) string {
		requests++
		return `{"data":null}`
	})
	client.dryRun = true

	err := client.SetItemStatus(context.Background(), "project_1", "item_1", "field_1", "opt_1")
	require.NoError(t, err)
	assert.Equal(t, 0, requests)
}
