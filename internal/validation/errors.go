// Package validation holds the checks run on user input before anything is
// sent to the backend.
package validation

import "fmt"

type Rule string

const (
	RulePhase          Rule = "phase"
	RuleCount          Rule = "count"
	RuleIdentifiers    Rule = "identifiers"
	RuleScores         Rule = "scores"
	RuleExtraTime      Rule = "extra_time"
	RuleDrawResolution Rule = "draw_resolution"
	RuleField          Rule = "field"
)

// Error is a user-facing validation failure. Index is the position of the
// offending prediction in the batch, or -1 when the batch itself is wrong.
type Error struct {
	Rule    Rule
	Index   int
	MatchID string
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fieldError(field, format string, args ...any) *Error {
	return &Error{Rule: RuleField, Index: -1, Field: field, Message: fmt.Sprintf(format, args...)}
}
