package workflow

import "errors"

var (
	// ErrNoActiveWorkflow indicates plan generation before any workflow started
	ErrNoActiveWorkflow = errors.New("no active workflow")
)
