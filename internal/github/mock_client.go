package github

import (
	"context"
)

// MockClient implements the Client interface for testing
type MockClient struct {
	GetIssueFunc         func(ctx context.Context, owner, repo string, number int) (*IssueRef, error)
	AddAssigneesFunc     func(ctx context.Context, owner, repo string, number int, logins []string) error
	RemoveAssigneesFunc  func(ctx context.Context, owner, repo string, number int, logins []string) error
	GetProjectSchemaFunc func(ctx context.Context, ownerType OwnerType, ownerLogin string, projectNumber int) (ProjectSchema, error)
	ListProjectItemsFunc func(ctx context.Context, ownerType OwnerType, ownerLogin string, projectNumber int) ([]ProjectItem, error)
	SetItemStatusFunc    func(ctx context.Context, projectID, itemID, fieldID, optionID string) error
}

// GetIssue implements the Client interface
func (c *MockClient) GetIssue(ctx context.Context, owner, repo string, number int) (*IssueRef, error) {
	if c.GetIssueFunc != nil {
		return c.GetIssueFunc(ctx, owner, repo, number)
	}
	return nil, nil
}

// AddAssignees implements the Client interface
func (c *MockClient) AddAssignees(ctx context.Context, owner, repo string, number int, logins []string) error {
	if c.AddAssigneesFunc != nil {
		return c.AddAssigneesFunc(ctx, owner, repo, number, logins)
	}
	return nil
}

// RemoveAssignees implements the Client interface
func (c *MockClient) RemoveAssignees(ctx context.Context, owner, repo string, number int, logins []string) error {
	if c.RemoveAssigneesFunc != nil {
		return c.RemoveAssigneesFunc(ctx, owner, repo, number, logins)
	}
	return nil
}

// GetProjectSchema implements the Client interface
func (c *MockClient) GetProjectSchema(ctx context.Context, ownerType OwnerType, ownerLogin string, projectNumber int) (ProjectSchema, error) {
	if c.GetProjectSchemaFunc != nil {
		return c.GetProjectSchemaFunc(ctx, ownerType, ownerLogin, projectNumber)
	}
	return ProjectSchema{}, nil
}

// ListProjectItems implements the Client interface
func (c *MockClient) ListProjectItems(ctx context.Context, ownerType OwnerType, ownerLogin string, projectNumber int) ([]ProjectItem, error) {
	if c.ListProjectItemsFunc != nil {
		return c.ListProjectItemsFunc(ctx, ownerType, ownerLogin, projectNumber)
	}
	return nil, nil
}

// SetItemStatus implements the Client interface
func (c *MockClient) SetItemStatus(ctx context.Context, projectID, itemID, fieldID, optionID string) error {
	if c.SetItemStatusFunc != nil {
		return c.SetItemStatusFunc(ctx, projectID, itemID, fieldID, optionID)
	}
	return nil
}
