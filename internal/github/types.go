package github

import (
	"strings"
)

// IssueRef is a verified issue mention resolved against the repository.
type IssueRef struct {
	Number    int
	NodeID    string
	URL       string
	Assignees []string
}

// StatusOption is one choice of a single-select field, in board order.
type StatusOption struct {
	ID   string
	Name string
}

// ProjectSchema holds the identities needed to set an item's status field.
// The zero value means the project or its status field could not be resolved.
type ProjectSchema struct {
	ProjectID     string
	StatusFieldID string
	StatusOptions []StatusOption
}

// OptionID returns the identity of the first option whose name contains
// label, or "" if none does. Substring matching is deliberate: boards name
// the same stage "Review", "In Review" or similar, and the automation
// targets the stage, not the exact label. Board order decides ties.
func (s ProjectSchema) OptionID(label string) string {
	for _, opt := range s.StatusOptions {
		if strings.Contains(opt.Name, label) {
			return opt.ID
		}
	}
	return ""
}

// ProjectItem is one row on a project board. IssueNumber is nil when the
// item wraps something other than an issue (a draft note or pull request).
type ProjectItem struct {
	ID          string
	IssueNumber *int
}

// OwnerType represents the type of project owner (user or organization)
type OwnerType int

const (
	// OwnerTypeUser represents a user-owned project
	OwnerTypeUser OwnerType = iota
	// OwnerTypeOrg represents an organization-owned project
	OwnerTypeOrg
)
