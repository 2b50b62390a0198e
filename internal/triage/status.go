package triage

// StatusLabels are the board stages targeted by each trigger outcome.
type StatusLabels struct {
	Review     string
	Test       string
	InProgress string
}

// DefaultStatusLabels returns the stock label set. Matching against board
// options is by substring, so these also find "In Review", "Ready to Test"
// and similar variants.
func DefaultStatusLabels() StatusLabels {
	return StatusLabels{
		Review:     "Review",
		Test:       "Test",
		InProgress: "In Progress",
	}
}

// StatusAssignment carries every identity needed for one field update. The
// mutation is only safe once all four are resolved: the field and option
// come from the project schema, the item from the board row matching the
// issue.
type StatusAssignment struct {
	ProjectID string
	ItemID    string
	FieldID   string
	OptionID  string
}

// Unresolved names the first missing identity, or "" when the assignment
// is complete.
func (a StatusAssignment) Unresolved() string {
	switch {
	case a.ProjectID == "":
		return "project"
	case a.FieldID == "":
		return "status field"
	case a.OptionID == "":
		return "status option"
	case a.ItemID == "":
		return "project item"
	}
	return ""
}
