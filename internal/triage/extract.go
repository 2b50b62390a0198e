package triage

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/tberndt/review-triage/internal/github"
)

var issueToken = regexp.MustCompile(`#\d+`)

// Extractor resolves issue mentions in free text against the repository's
// issue store.
type Extractor struct {
	client github.Client
}

// NewExtractor creates a new extractor
func NewExtractor(client github.Client) *Extractor {
	return &Extractor{client: client}
}

// LinkedIssues scans body for "#123" tokens and fetches each referenced
// issue, in order of first appearance. A token that does not resolve to a
// real issue is skipped with a diagnostic so one stale mention cannot abort
// the run. Duplicate mentions yield duplicate entries; every downstream
// operation sets state rather than deltas, so repeats are harmless.
func (e *Extractor) LinkedIssues(ctx context.Context, owner, repo, body string) []github.IssueRef {
	var refs []github.IssueRef
	for _, token := range issueToken.FindAllString(body, -1) {
		number, err := strconv.Atoi(strings.TrimPrefix(token, "#"))
		if err != nil {
			continue
		}

		ref, err := e.client.GetIssue(ctx, owner, repo, number)
		if err != nil {
			slog.Warn("skipping issue reference",
				"token", token,
				"error", err,
			)
			continue
		}
		refs = append(refs, *ref)
	}
	return refs
}
