package rules

// InvariantViolationError reports a game state that should be unreachable,
// such as asking for a trick winner on an empty trick.
type InvariantViolationError struct {
	Msg string
}

func (e *InvariantViolationError) Error() string {
	return "rules: invariant violation: " + e.Msg
}
