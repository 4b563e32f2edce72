package prompt

import "fmt"

// FollowUpAction is one of the canned refinement requests offered after an
// initial explanation. The label goes into the prompt verbatim.
type FollowUpAction string

const (
	ActionMoreDetails FollowUpAction = "More Details"
	ActionSimplified  FollowUpAction = "Simplified Explanation"
	ActionCompare     FollowUpAction = "Compare with Other Tech"
)

func Actions() []FollowUpAction {
	return []FollowUpAction{ActionMoreDetails, ActionSimplified, ActionCompare}
}

func (a FollowUpAction) Valid() bool {
	switch a {
	case ActionMoreDetails, ActionSimplified, ActionCompare:
		return true
	}
	return false
}

const (
	preamble = "You are a friendly in-store sales assistant who explains technical specifications to shoppers in plain language."

	formatClause = "Format the answer as a numbered bullet list with one blank line between items and no extra prose."
)

// Build produces the explanation prompt for a subject. Title and details are
// embedded verbatim; the follow-up clause is present exactly when action is
// non-empty; the output-format clause is always present. Same inputs always
// yield the same string.
func Build(title, details string, action FollowUpAction) string {
	if action == "" {
		return fmt.Sprintf("%s Explain %s: %s %s", preamble, title, details, formatClause)
	}
	return fmt.Sprintf("%s Explain %s: %s Please provide a %s explanation. %s", preamble, title, details, action, formatClause)
}

// Explain is the selection-time prompt, with no follow-up clause.
func Explain(title, details string) string {
	return Build(title, details, "")
}
