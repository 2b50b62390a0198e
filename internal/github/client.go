package github

import (
	"context"
)

// Client defines the interface for interacting with GitHub
type Client interface {
	// GetIssue fetches an issue by number from the repository
	GetIssue(ctx context.Context, owner, repo string, number int) (*IssueRef, error)

	// AddAssignees adds the given logins to an issue's assignee set
	AddAssignees(ctx context.Context, owner, repo string, number int, logins []string) error

	// RemoveAssignees removes the given logins from an issue's assignee set
	RemoveAssignees(ctx context.Context, owner, repo string, number int, logins []string) error

	// GetProjectSchema resolves a project's identity, its status field and
	// the field's options; returns an empty schema when the project or a
	// status-like single-select field cannot be found
	GetProjectSchema(ctx context.Context, ownerType OwnerType, ownerLogin string, projectNumber int) (ProjectSchema, error)

	// ListProjectItems retrieves every item of a project, resolving
	// pagination transparently
	ListProjectItems(ctx context.Context, ownerType OwnerType, ownerLogin string, projectNumber int) ([]ProjectItem, error)

	// SetItemStatus updates a single-select field on a project item
	SetItemStatus(ctx context.Context, projectID, itemID, fieldID, optionID string) error
}
