package triage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/go-github/v60/github"
)

// Trigger event and action names as delivered by the CI runner.
const (
	EventPullRequest       = "pull_request"
	EventPullRequestReview = "pull_request_review"

	ActionReviewRequested = "review_requested"
	ActionSubmitted       = "submitted"

	VerdictChangesRequested = "changes_requested"
)

// Event is the subset of a trigger payload the run acts on.
type Event struct {
	Name        string
	Action      string
	Number      int
	Body        string
	Author      string
	Reviewers   []string
	ReviewState string
}

// LoadEvent reads and decodes the trigger payload file written by the CI
// runner (GITHUB_EVENT_PATH).
func LoadEvent(name, path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event payload: %w", err)
	}
	return ParseEvent(name, data)
}

// ParseEvent decodes a raw trigger payload of the named event type.
func ParseEvent(name string, data []byte) (*Event, error) {
	switch name {
	case EventPullRequest:
		var payload github.PullRequestEvent
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("failed to parse %s payload: %w", name, err)
		}
		ev := &Event{
			Name:   name,
			Action: payload.GetAction(),
			Number: payload.GetPullRequest().GetNumber(),
			Body:   payload.GetPullRequest().GetBody(),
			Author: payload.GetPullRequest().GetUser().GetLogin(),
		}
		for _, reviewer := range payload.GetPullRequest().RequestedReviewers {
			ev.Reviewers = append(ev.Reviewers, reviewer.GetLogin())
		}
		return ev, nil
	case EventPullRequestReview:
		var payload github.PullRequestReviewEvent
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("failed to parse %s payload: %w", name, err)
		}
		return &Event{
			Name:        name,
			Action:      payload.GetAction(),
			Number:      payload.GetPullRequest().GetNumber(),
			Body:        payload.GetPullRequest().GetBody(),
			Author:      payload.GetPullRequest().GetUser().GetLogin(),
			ReviewState: payload.GetReview().GetState(),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported event type: %s", name)
	}
}
