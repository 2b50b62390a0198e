package github

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shurcooL/githubv4"
)

const (
	// statusFieldName is matched against field names with strings.Contains,
	// so "Status" also finds fields like "Issue Status".
	statusFieldName = "Status"

	// maxItemPages bounds the pagination loop so a misbehaving upstream
	// that never reports hasNextPage=false cannot spin forever.
	maxItemPages = 100
)

// GraphQL query types for GitHub's API
type (
	// projectV2FieldConfiguration represents a field configuration in a
	// project. Only the single-select variant carries options.
	projectV2FieldConfiguration struct {
		TypeName string `graphql:"__typename"`
		Field    struct {
			ID   string
			Name string
		} `graphql:"... on ProjectV2Field"`
		SingleSelectField struct {
			ID      string
			Name    string
			Options []struct {
				ID   string
				Name string
			}
		} `graphql:"... on ProjectV2SingleSelectField"`
	}

	// projectV2Schema represents a project and its field configurations
	projectV2Schema struct {
		ID     string
		Fields struct {
			Nodes []projectV2FieldConfiguration
		} `graphql:"fields(first: 100)"`
	}

	// projectV2Item represents an item in a project. Content is a union;
	// only the Issue variant carries a number.
	projectV2Item struct {
		ID      string
		Content struct {
			TypeName string `graphql:"__typename"`
			Issue    struct {
				Number int
			} `graphql:"... on Issue"`
		}
	}

	itemPageInfo struct {
		HasNextPage bool
		EndCursor   githubv4.String
	}
)

// GetProjectSchema implements the Client interface
func (c *APIClient) GetProjectSchema(ctx context.Context, ownerType OwnerType, ownerLogin string, projectNumber int) (ProjectSchema, error) {
	project, err := c.queryProjectSchema(ctx, ownerType, ownerLogin, projectNumber)
	if err != nil {
		if isNotResolved(err) {
			slog.Warn("project not found",
				"owner", ownerLogin,
				"project", projectNumber,
				"error", err,
			)
			return ProjectSchema{}, nil
		}
		return ProjectSchema{}, fmt.Errorf("failed to query project: %w", err)
	}

	schema := ProjectSchema{ProjectID: project.ID}
	for _, field := range project.Fields.Nodes {
		if field.TypeName != "ProjectV2SingleSelectField" {
			continue
		}
		if !strings.Contains(field.SingleSelectField.Name, statusFieldName) {
			continue
		}
		schema.StatusFieldID = field.SingleSelectField.ID
		for _, opt := range field.SingleSelectField.Options {
			schema.StatusOptions = append(schema.StatusOptions, StatusOption{
				ID:   opt.ID,
				Name: opt.Name,
			})
		}
		break
	}

	if schema.StatusFieldID == "" {
		slog.Warn("project has no single-select status field",
			"owner", ownerLogin,
			"project", projectNumber,
		)
	}
	return schema, nil
}

func (c *APIClient) queryProjectSchema(ctx context.Context, ownerType OwnerType, ownerLogin string, projectNumber int) (*projectV2Schema, error) {
	variables := map[string]interface{}{
		"login":  githubv4.String(ownerLogin),
		"number": githubv4.Int(projectNumber),
	}

	switch ownerType {
	case OwnerTypeOrg:
		var query struct {
			Organization struct {
				ProjectV2 projectV2Schema `graphql:"projectV2(number: $number)"`
			} `graphql:"organization(login: $login)"`
		}
		if err := c.gql.Query(ctx, &query, variables); err != nil {
			return nil, err
		}
		return &query.Organization.ProjectV2, nil
	case OwnerTypeUser:
		var query struct {
			User struct {
				ProjectV2 projectV2Schema `graphql:"projectV2(number: $number)"`
			} `graphql:"user(login: $login)"`
		}
		if err := c.gql.Query(ctx, &query, variables); err != nil {
			return nil, err
		}
		return &query.User.ProjectV2, nil
	default:
		return nil, fmt.Errorf("invalid owner type")
	}
}

// ListProjectItems implements the Client interface
func (c *APIClient) ListProjectItems(ctx context.Context, ownerType OwnerType, ownerLogin string, projectNumber int) ([]ProjectItem, error) {
	var items []ProjectItem
	var cursor *githubv4.String

	for page := 0; ; page++ {
		if page >= maxItemPages {
			return nil, fmt.Errorf("project item pagination exceeded %d pages, giving up", maxItemPages)
		}

		nodes, pageInfo, err := c.queryItemPage(ctx, ownerType, ownerLogin, projectNumber, cursor)
		if err != nil {
			return nil, fmt.Errorf("failed to query project items: %w", err)
		}

		for _, node := range nodes {
			item := ProjectItem{ID: node.ID}
			if node.Content.TypeName == "Issue" {
				number := node.Content.Issue.Number
				item.IssueNumber = &number
			}
			items = append(items, item)
		}

		if !pageInfo.HasNextPage {
			break
		}
		cursor = githubv4.NewString(pageInfo.EndCursor)
	}

	slog.Debug("fetched project items",
		"owner", ownerLogin,
		"project", projectNumber,
		"count", len(items),
	)
	return items, nil
}

func (c *APIClient) queryItemPage(ctx context.Context, ownerType OwnerType, ownerLogin string, projectNumber int, cursor *githubv4.String) ([]projectV2Item, itemPageInfo, error) {
	variables := map[string]interface{}{
		"login":  githubv4.String(ownerLogin),
		"number": githubv4.Int(projectNumber),
		"cursor": cursor,
	}

	switch ownerType {
	case OwnerTypeOrg:
		var query struct {
			Organization struct {
				ProjectV2 struct {
					Items struct {
						Nodes    []projectV2Item
						PageInfo itemPageInfo
					} `graphql:"items(first: 100, after: $cursor)"`
				} `graphql:"projectV2(number: $number)"`
			} `graphql:"organization(login: $login)"`
		}
		if err := c.gql.Query(ctx, &query, variables); err != nil {
			return nil, itemPageInfo{}, err
		}
		return query.Organization.ProjectV2.Items.Nodes, query.Organization.ProjectV2.Items.PageInfo, nil
	case OwnerTypeUser:
		var query struct {
			User struct {
				ProjectV2 struct {
					Items struct {
						Nodes    []projectV2Item
						PageInfo itemPageInfo
					} `graphql:"items(first: 100, after: $cursor)"`
				} `graphql:"projectV2(number: $number)"`
			} `graphql:"user(login: $login)"`
		}
		if err := c.gql.Query(ctx, &query, variables); err != nil {
			return nil, itemPageInfo{}, err
		}
		return query.User.ProjectV2.Items.Nodes, query.User.ProjectV2.Items.PageInfo, nil
	default:
		return nil, itemPageInfo{}, fmt.Errorf("invalid owner type")
	}
}

// SetItemStatus implements the Client interface
func (c *APIClient) SetItemStatus(ctx context.Context, projectID, itemID, fieldID, optionID string) error {
	if c.dryRun {
		slog.Info("dry run",
			"message", "would update item status",
			"project_id", projectID,
			"item_id", itemID,
			"field_id", fieldID,
			"option_id", optionID,
		)
		return nil
	}

	var mutation struct {
		UpdateProjectV2ItemFieldValue struct {
			ClientMutationID string
		} `graphql:"updateProjectV2ItemFieldValue(input: $input)"`
	}

	option := githubv4.String(optionID)
	input := githubv4.UpdateProjectV2ItemFieldValueInput{
		ProjectID: projectID,
		ItemID:    itemID,
		FieldID:   fieldID,
		Value: githubv4.ProjectV2FieldValue{
			SingleSelectOptionID: &option,
		},
	}

	if err := c.gql.Mutate(ctx, &mutation, input, nil); err != nil {
		return fmt.Errorf("failed to update item status: %w", err)
	}
	return nil
}

// isNotResolved reports whether a GraphQL error means the queried node
// does not exist ("Could not resolve to a ProjectV2 ...") as opposed to a
// transport or auth failure.
func isNotResolved(err error) bool {
	return strings.Contains(err.Error(), "Could not resolve")
}
