package github

import (
	"context"
	"fmt"
	"log/slog"
)

// GetIssue implements the Client interface
func (c *APIClient) GetIssue(ctx context.Context, owner, repo string, number int) (*IssueRef, error) {
	issue, _, err := c.rest.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issue #%d: %w", number, err)
	}

	ref := &IssueRef{
		Number: issue.GetNumber(),
		NodeID: issue.GetNodeID(),
		URL:    issue.GetHTMLURL(),
	}
	for _, assignee := range issue.Assignees {
		ref.Assignees = append(ref.Assignees, assignee.GetLogin())
	}
	return ref, nil
}

// AddAssignees implements the Client interface
func (c *APIClient) AddAssignees(ctx context.Context, owner, repo string, number int, logins []string) error {
	if len(logins) == 0 {
		return nil
	}
	if c.dryRun {
		slog.Info("dry run",
			"message", "would add assignees",
			"issue", number,
			"assignees", logins,
		)
		return nil
	}

	if _, _, err := c.rest.Issues.AddAssignees(ctx, owner, repo, number, logins); err != nil {
		return fmt.Errorf("failed to add assignees to issue #%d: %w", number, err)
	}
	return nil
}

// RemoveAssignees implements the Client interface
func (c *APIClient) RemoveAssignees(ctx context.Context, owner, repo string, number int, logins []string) error {
	if len(logins) == 0 {
		return nil
	}
	if c.dryRun {
		slog.Info("dry run",
			"message", "would remove assignees",
			"issue", number,
			"assignees", logins,
		)
		return nil
	}

	if _, _, err := c.rest.Issues.RemoveAssignees(ctx, owner, repo, number, logins); err != nil {
		return fmt.Errorf("failed to remove assignees from issue #%d: %w", number, err)
	}
	return nil
}
