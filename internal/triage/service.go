package triage

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/tberndt/review-triage/internal/github"
)

// Config carries the per-run inputs shared by every component. It is built
// once from the CI environment and passed in; nothing here is mutated
// during a run.
type Config struct {
	Owner            string
	Repo             string
	ProjectOwnerType github.OwnerType
	ProjectOwner     string
	ProjectNumber    int
	Testers          []string
	StatusLabels     StatusLabels
}

// Service drives one triage run end to end: event dispatch, issue
// extraction, reassignment and board status updates.
type Service struct {
	client    github.Client
	extractor *Extractor
	cfg       Config
}

// NewService creates a new triage service
func NewService(client github.Client, cfg Config) *Service {
	if cfg.StatusLabels == (StatusLabels{}) {
		cfg.StatusLabels = DefaultStatusLabels()
	}
	return &Service{
		client:    client,
		extractor: NewExtractor(client),
		cfg:       cfg,
	}
}

// Run dispatches on the trigger event. Events outside the two handled
// shapes are a successful no-op.
func (s *Service) Run(ctx context.Context, ev *Event) error {
	switch {
	case ev.Name == EventPullRequest && ev.Action == ActionReviewRequested:
		return s.handleReviewRequested(ctx, ev)
	case ev.Name == EventPullRequestReview && ev.Action == ActionSubmitted:
		return s.handleReviewSubmitted(ctx, ev)
	}
	slog.Info("nothing to do for event", "event", ev.Name, "action", ev.Action)
	return nil
}

func (s *Service) handleReviewRequested(ctx context.Context, ev *Event) error {
	if len(ev.Reviewers) == 0 {
		slog.Info("no reviewers requested", "pull_request", ev.Number)
		return nil
	}

	status := s.cfg.StatusLabels.Review
	if s.anyTester(ev.Reviewers) {
		status = s.cfg.StatusLabels.Test
	}
	return s.triageLinkedIssues(ctx, ev, ev.Reviewers, status)
}

func (s *Service) handleReviewSubmitted(ctx context.Context, ev *Event) error {
	if ev.ReviewState != VerdictChangesRequested {
		slog.Info("review verdict needs no triage",
			"pull_request", ev.Number,
			"state", ev.ReviewState,
		)
		return nil
	}
	return s.triageLinkedIssues(ctx, ev, []string{ev.Author}, s.cfg.StatusLabels.InProgress)
}

func (s *Service) triageLinkedIssues(ctx context.Context, ev *Event, assignees []string, status string) error {
	issues := s.extractor.LinkedIssues(ctx, s.cfg.Owner, s.cfg.Repo, ev.Body)
	if len(issues) == 0 {
		slog.Info("pull request links no issues", "pull_request", ev.Number)
		return nil
	}

	var hasErrors bool
	for _, issue := range issues {
		if err := s.triageIssue(ctx, issue, assignees, status); err != nil {
			slog.Error("failed to triage issue", "issue", issue.Number, "error", err)
			hasErrors = true
		}
	}
	if hasErrors {
		return fmt.Errorf("one or more issues failed to triage")
	}
	return nil
}

func (s *Service) triageIssue(ctx context.Context, issue github.IssueRef, assignees []string, status string) error {
	slog.Info("triaging issue",
		"issue", issue.Number,
		"assignees", assignees,
		"status", status,
	)

	if err := s.reassign(ctx, issue, assignees); err != nil {
		return err
	}
	return s.setStatus(ctx, issue, status)
}

// reassign replaces the issue's assignee set. Add and remove are both set
// operations, so repeating them for duplicate mentions changes nothing.
func (s *Service) reassign(ctx context.Context, issue github.IssueRef, assignees []string) error {
	var stale []string
	for _, login := range issue.Assignees {
		if !slices.Contains(assignees, login) {
			stale = append(stale, login)
		}
	}

	if err := s.client.RemoveAssignees(ctx, s.cfg.Owner, s.cfg.Repo, issue.Number, stale); err != nil {
		return err
	}
	return s.client.AddAssignees(ctx, s.cfg.Owner, s.cfg.Repo, issue.Number, assignees)
}

// setStatus moves the board entry of the issue to the stage matching
// status. An unresolved schema or a board without the issue downgrades to
// a logged skip; only a failing remote call is an error.
func (s *Service) setStatus(ctx context.Context, issue github.IssueRef, status string) error {
	schema, err := s.client.GetProjectSchema(ctx, s.cfg.ProjectOwnerType, s.cfg.ProjectOwner, s.cfg.ProjectNumber)
	if err != nil {
		return err
	}

	items, err := s.client.ListProjectItems(ctx, s.cfg.ProjectOwnerType, s.cfg.ProjectOwner, s.cfg.ProjectNumber)
	if err != nil {
		return err
	}

	assignment := StatusAssignment{
		ProjectID: schema.ProjectID,
		FieldID:   schema.StatusFieldID,
		OptionID:  schema.OptionID(status),
		ItemID:    findItem(items, issue.Number),
	}
	if missing := assignment.Unresolved(); missing != "" {
		slog.Warn("skipping status update",
			"issue", issue.Number,
			"status", status,
			"missing", missing,
		)
		return nil
	}

	return s.client.SetItemStatus(ctx, assignment.ProjectID, assignment.ItemID, assignment.FieldID, assignment.OptionID)
}

func (s *Service) anyTester(reviewers []string) bool {
	for _, reviewer := range reviewers {
		if slices.Contains(s.cfg.Testers, reviewer) {
			return true
		}
	}
	return false
}

// findItem returns the identity of the first board item wrapping the
// issue number, or "" when the issue is not on the board. Items wrapping
// drafts or pull requests have no number and are passed over.
func findItem(items []github.ProjectItem, number int) string {
	for _, item := range items {
		if item.IssueNumber != nil && *item.IssueNumber == number {
			return item.ID
		}
	}
	return ""
}
